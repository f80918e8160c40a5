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

// Package signal holds discretized pulse shapes on a fixed channel grid
// and the operations to overlay and integrate them. Signals are value
// types; every operation returns a new signal and never mutates its
// inputs, so templates can be shared freely across workers.
package signal

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// ErrGridMisaligned is reported when two signals are overlaid whose
// abscissa grids do not coincide within the overlapping range.
var ErrGridMisaligned = errors.New("signal grids aren't aligned")

// ErrMalformed is reported for signals violating the shape invariants.
var ErrMalformed = errors.New("malformed signal")

// Signal is a discretized pulse shape: ordinate values Y over a strictly
// increasing abscissa grid X.
type Signal struct {
	X []float64
	Y []float64
}

// New builds a signal and validates its shape invariants.
func New(x []float64, y []float64) (Signal, error) {
	s := Signal{X: x, Y: y}
	if err := s.Check(); err != nil {
		return Signal{}, err
	}
	return s, nil
}

// Check validates the shape invariants of the signal.
func (s Signal) Check() error {
	if len(s.X) != len(s.Y) {
		return errors.Wrapf(ErrMalformed, "%d abscissa points vs %d ordinate points", len(s.X), len(s.Y))
	}
	if len(s.X) == 0 {
		return errors.Wrap(ErrMalformed, "empty signal")
	}
	for i := 0; i < len(s.X)-1; i++ {
		if s.X[i] >= s.X[i+1] {
			return errors.Wrapf(ErrMalformed, "abscissa not strictly increasing at index %d (%v >= %v)", i, s.X[i], s.X[i+1])
		}
	}
	return nil
}

// Len returns the number of samples in the signal.
func (s Signal) Len() int { return len(s.X) }

// Clone returns a deep copy of the signal.
func (s Signal) Clone() Signal {
	x := make([]float64, len(s.X))
	y := make([]float64, len(s.Y))
	copy(x, s.X)
	copy(y, s.Y)
	return Signal{X: x, Y: y}
}

// Scale returns a copy of the signal with all ordinates multiplied by amp.
func (s Signal) Scale(amp float64) Signal {
	out := s.Clone()
	for i := range out.Y {
		out.Y[i] *= amp
	}
	return out
}

// Compose overlays s2, shifted by offset and scaled by amp2, onto s1
// scaled by amp1. For every abscissa x2 of s2 the target abscissa
// x2+offset must either exist exactly in s1's grid or fall outside s1's
// abscissa range; a target strictly inside the range but off the grid
// reports ErrGridMisaligned. Out-of-range contributions are dropped; the
// grid is never extended.
func Compose(s1 Signal, s2 Signal, offset float64, amp1 float64, amp2 float64) (Signal, error) {
	out := s1.Scale(amp1)
	lo, hi := s1.X[0], s1.X[len(s1.X)-1]
	for i, x2 := range s2.X {
		x1 := x2 + offset
		if x1 < lo || x1 > hi {
			continue
		}
		j := sort.SearchFloat64s(s1.X, x1)
		if j == len(s1.X) || s1.X[j] != x1 {
			return Signal{}, errors.Wrapf(ErrGridMisaligned, "sample %d maps to abscissa %v inside the grid range [%v, %v] but off the grid", i, x1, lo, hi)
		}
		out.Y[j] += s2.Y[i] * amp2
	}
	return out, nil
}

// Integrate sums the ordinate values whose abscissa lies in [from, to].
// Summing samples instead of computing a true integral matches the
// channel-counting semantics of the detector.
func (s Signal) Integrate(from float64, to float64) float64 {
	sum := 0.0
	for i, x := range s.X {
		if x >= from && x <= to {
			sum += s.Y[i]
		}
	}
	return sum
}

// IntegrateRelative integrates over the window spanning offsetLeft to the
// left and offsetRight to the right of the center channel.
func (s Signal) IntegrateRelative(offsetLeft float64, offsetRight float64, center float64) float64 {
	return s.Integrate(center-offsetLeft, center+offsetRight)
}
