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

// Package prob samples amplitudes from an empirical probability density
// given as a table of abscissa points E and density values P. Sampling
// uses inverse transform sampling with linear interpolation between the
// tabulated points.
package prob

import (
	"math/rand"
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrDegenerate is reported for distributions that cannot be normalized,
// e.g. tables with mismatched lengths, fewer than two points, a
// non-increasing abscissa, or a zero integral.
var ErrDegenerate = errors.New("degenerate distribution")

// Normalize scales the density P so that its trapezoidal integral over the
// abscissa E equals one. The inputs are not modified; a new density slice
// is returned.
func Normalize(e []float64, p []float64) ([]float64, error) {
	if len(e) != len(p) {
		return nil, errors.Wrapf(ErrDegenerate, "%d abscissa points vs %d density points", len(e), len(p))
	}
	if len(e) < 2 {
		return nil, errors.Wrapf(ErrDegenerate, "need at least 2 points, got %d", len(e))
	}
	integral := 0.0
	for i := 0; i < len(e)-1; i++ {
		integral += (p[i] + p[i+1]) * (e[i+1] - e[i]) / 2
	}
	if integral == 0 {
		return nil, errors.Wrap(ErrDegenerate, "density integrates to zero")
	}
	q := make([]float64, len(p))
	for i, v := range p {
		q[i] = v / integral
	}
	return q, nil
}

// Distribution is a normalized empirical density over an abscissa grid.
// It is immutable after construction and safe to share across workers;
// the cumulative table is computed once so that every draw is a binary
// search plus one interpolation.
type Distribution struct {
	e   []float64
	p   []float64
	cdf []float64
}

// New validates the table, normalizes the density and precomputes the
// cumulative distribution. The cumulative uses the same trapezoidal rule
// as Normalize so that its last entry equals one up to rounding.
func New(e []float64, p []float64) (Distribution, error) {
	for i := 0; i < len(e)-1; i++ {
		if e[i] >= e[i+1] {
			return Distribution{}, errors.Wrapf(ErrDegenerate, "abscissa not strictly increasing at index %d (%v >= %v)", i, e[i], e[i+1])
		}
	}
	q, err := Normalize(e, p)
	if err != nil {
		return Distribution{}, err
	}

	cdf := make([]float64, len(e))
	for i := 1; i < len(e); i++ {
		cdf[i] = cdf[i-1] + (q[i]+q[i-1])*(e[i]-e[i-1])/2
	}

	ec := make([]float64, len(e))
	copy(ec, e)
	return Distribution{e: ec, p: q, cdf: cdf}, nil
}

// E returns the abscissa grid of the distribution.
func (d Distribution) E() []float64 { return d.e }

// P returns the normalized density of the distribution.
func (d Distribution) P() []float64 { return d.p }

// CDF evaluates the cumulative distribution at x by linear interpolation
// between the tabulated cumulative points.
func (d Distribution) CDF(x float64) float64 {
	if x <= d.e[0] {
		return 0.0
	}
	last := len(d.e) - 1
	if x >= d.e[last] {
		return d.cdf[last]
	}
	hi := sort.SearchFloat64s(d.e, x)
	if d.e[hi] == x {
		return d.cdf[hi]
	}
	lo := hi - 1
	t := (x - d.e[lo]) / (d.e[hi] - d.e[lo])
	return d.cdf[lo] + t*(d.cdf[hi]-d.cdf[lo])
}

// Quantile is the inverse cumulative distribution function. Values of u
// below the first or above the last cumulative point are clamped to the
// abscissa range so that rounding in the cumulative table can never
// extrapolate outside the grid.
func (d Distribution) Quantile(u float64) float64 {
	last := len(d.cdf) - 1
	if u <= d.cdf[0] {
		return d.e[0]
	}
	if u >= d.cdf[last] {
		return d.e[last]
	}
	// hi is the smallest index with cdf[hi] >= u; cdf[hi-1] < u holds by
	// construction, so the interpolation denominator is positive.
	hi := sort.SearchFloat64s(d.cdf, u)
	lo := hi - 1
	t := (u - d.cdf[lo]) / (d.cdf[hi] - d.cdf[lo])
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return d.e[lo] + t*(d.e[hi]-d.e[lo])
}

// Sample draws one amplitude from the distribution using the given random
// generator. The generator is the only state touched by a draw.
func (d Distribution) Sample(rg *rand.Rand) float64 {
	return d.Quantile(rg.Float64())
}
