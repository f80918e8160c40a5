// Copyright 2026 GregTheMadMonk
// This file is part of edu-28, a detector pulse overlap simulator.
//
// edu-28 is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// edu-28 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with edu-28. If not, see <http://www.gnu.org/licenses/>.

// Package report turns raw simulation result vectors into histograms and
// reads and writes the two-column histogram files exchanged with the
// analysis tooling.
package report

import (
	"github.com/cockroachdb/errors"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"
	"gonum.org/v1/gonum/floats"
)

// NumECDFPoints sets the number of points kept when compressing an
// empirical cumulative distribution for charting.
const NumECDFPoints = 300

// Histogram is an equal-width binning of a sample.
type Histogram struct {
	Edges  []float64 // bin left edges plus the final right edge; len(Counts)+1
	Counts []float64 // per-bin count, or density when built with density=true
}

// New bins the sample into the given number of equal-width bins. With
// density enabled the counts are normalized so that the histogram
// integrates to one.
func New(data []float64, bins int, density bool) (Histogram, error) {
	if len(data) == 0 {
		return Histogram{}, errors.New("cannot build a histogram of an empty sample")
	}
	if bins <= 0 {
		return Histogram{}, errors.Newf("bin count must be positive, got %d", bins)
	}

	min, max := floats.Min(data), floats.Max(data)
	if min == max {
		// degenerate sample; widen the range as numpy does
		min -= 0.5
		max += 0.5
	}
	width := (max - min) / float64(bins)

	h := Histogram{
		Edges:  make([]float64, bins+1),
		Counts: make([]float64, bins),
	}
	for i := range h.Edges {
		h.Edges[i] = min + float64(i)*width
	}
	h.Edges[bins] = max

	for _, v := range data {
		idx := int((v - min) / width)
		if idx >= bins {
			// the maximum belongs to the last bin
			idx = bins - 1
		}
		h.Counts[idx]++
	}

	if density {
		norm := float64(len(data)) * width
		for i := range h.Counts {
			h.Counts[i] /= norm
		}
	}
	return h, nil
}

// Centers returns the bin center abscissas.
func (h Histogram) Centers() []float64 {
	centers := make([]float64, len(h.Counts))
	for i := range centers {
		centers[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return centers
}

// ToECDF compresses the cumulative distribution of the histogram into a
// piecewise linear function on [0,1]x[0,1] with at most NumECDFPoints
// points, using the Visvalingam-Whyatt algorithm. Kahan summation keeps
// the accumulated probabilities stable for fine binnings.
func (h Histogram) ToECDF() [][2]float64 {
	total := floats.Sum(h.Counts)
	if total == 0 {
		return nil
	}
	lo := h.Edges[0]
	span := h.Edges[len(h.Edges)-1] - lo

	ls := orb.LineString{}
	ls = append(ls, orb.Point{0.0, 0.0})
	sum := 0.0
	c := 0.0
	for i, count := range h.Counts {
		f := count / total
		x := (h.Edges[i+1] - lo) / span
		y := f - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		ls = append(ls, orb.Point{x, sum})
	}
	ls = append(ls, orb.Point{1.0, 1.0})

	simplifier := simplify.VisvalingamKeep(NumECDFPoints)
	simplified := simplifier.Simplify(ls).(orb.LineString)

	ecdf := make([][2]float64, len(simplified))
	for i := range simplified {
		ecdf[i] = [2]float64(simplified[i])
	}
	return ecdf
}
