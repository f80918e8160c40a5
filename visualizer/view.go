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

// Package visualizer charts the result of a finished simulation run.
package visualizer

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/GregTheMadMonk/edu-28/report"
	"github.com/GregTheMadMonk/edu-28/simulator"
)

// ErrNoTarget marks a visualization request with nowhere to put the
// result.
var ErrNoTarget = errors.New("no output file, no port and no histogram dump requested")

// View is the chartable model of a run: the integral histogram always,
// plus the offset and per-peak amplitude histograms for double-overlap
// runs.
type View struct {
	Title    string
	Integral report.Histogram
	Offset   report.Histogram
	Amp1     report.Histogram
	Amp2     report.Histogram
	Double   bool
}

// channelTitle names the integration window the way the lab tooling
// labels its plots.
func channelTitle(offsetLeft, offsetRight, center float64) string {
	return fmt.Sprintf("Channels %v-%v", center-offsetLeft, center+offsetRight)
}

// NewDoubleView bins the pooled double-overlap results. The integral and
// amplitude histograms are densities over the requested bin count; the
// offset histogram gets one bin per integer position.
func NewDoubleView(results []simulator.RollResult, bins int, density bool, offsetLeft, offsetRight, center float64) (View, error) {
	view := View{
		Title:  channelTitle(offsetLeft, offsetRight, center),
		Double: true,
	}

	var err error
	if view.Integral, err = report.New(simulator.Integrals(results), bins, density); err != nil {
		return View{}, errors.Wrap(err, "integral histogram")
	}

	offsets := simulator.Offsets(results)
	lo, hi := offsets[0], offsets[0]
	for _, o := range offsets {
		if o < lo {
			lo = o
		}
		if o > hi {
			hi = o
		}
	}
	if view.Offset, err = report.New(offsets, int(hi-lo)+1, false); err != nil {
		return View{}, errors.Wrap(err, "offset histogram")
	}

	amp1, amp2 := simulator.Amplitudes(results)
	if view.Amp1, err = report.New(amp1, bins, density); err != nil {
		return View{}, errors.Wrap(err, "first amplitude histogram")
	}
	if view.Amp2, err = report.New(amp2, bins, density); err != nil {
		return View{}, errors.Wrap(err, "second amplitude histogram")
	}
	return view, nil
}

// NewSingleView bins the integrals of a single-pulse run.
func NewSingleView(integrals []float64, bins int, offsetLeft, offsetRight, center float64) (View, error) {
	view := View{
		Title: fmt.Sprintf("Integrating single signal channels %v through %v",
			center-offsetLeft, center+offsetRight),
	}
	var err error
	if view.Integral, err = report.New(integrals, bins, false); err != nil {
		return View{}, errors.Wrap(err, "integral histogram")
	}
	return view, nil
}

// NewHistFileView charts a histogram read back from a dump file.
func NewHistFileView(path string, sep string) (View, error) {
	xs, ns, err := report.ReadHistFile(path, sep)
	if err != nil {
		return View{}, err
	}
	// reconstruct edges around the stored bin centers
	edges := make([]float64, len(xs)+1)
	width := 1.0
	if len(xs) > 1 {
		width = xs[1] - xs[0]
	}
	for i, x := range xs {
		edges[i] = x - width/2
	}
	edges[len(xs)] = xs[len(xs)-1] + width/2
	return View{
		Title:    path,
		Integral: report.Histogram{Edges: edges, Counts: ns},
	}, nil
}
