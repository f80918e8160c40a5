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

package signal

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
)

// pulse builds a small test signal on an integer grid.
func pulse(t *testing.T, y ...float64) Signal {
	t.Helper()
	x := make([]float64, len(y))
	for i := range x {
		x[i] = float64(i)
	}
	s, err := New(x, y)
	if err != nil {
		t.Fatalf("valid signal: want nil, got %v", err)
	}
	return s
}

func TestSignal_CheckRejectsMalformed(t *testing.T) {
	if _, err := New([]float64{0, 1}, []float64{1}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("length mismatch: want ErrMalformed, got %v", err)
	}
	if _, err := New(nil, nil); !errors.Is(err, ErrMalformed) {
		t.Fatalf("empty signal: want ErrMalformed, got %v", err)
	}
	if _, err := New([]float64{0, 2, 1}, []float64{1, 1, 1}); !errors.Is(err, ErrMalformed) {
		t.Fatalf("unordered abscissa: want ErrMalformed, got %v", err)
	}
}

func TestSignal_ComposeZeroOffsetDoubles(t *testing.T) {
	s := pulse(t, 1, 4, 2, 0.5)
	composed, err := Compose(s, s, 0, 1, 1)
	if err != nil {
		t.Fatalf("aligned compose: want nil, got %v", err)
	}
	for i := range s.Y {
		if composed.Y[i] != 2*s.Y[i] {
			t.Fatalf("composed ordinate %d: want %v, got %v", i, 2*s.Y[i], composed.Y[i])
		}
	}
	// the input must not be mutated
	if s.Y[1] != 4 {
		t.Fatalf("input signal mutated: want 4, got %v", s.Y[1])
	}
}

func TestSignal_ComposeShiftAndScale(t *testing.T) {
	s := pulse(t, 1, 0, 0, 0)
	composed, err := Compose(s, s, 2, 3, 5)
	if err != nil {
		t.Fatalf("aligned compose: want nil, got %v", err)
	}
	want := []float64{3, 0, 5, 0}
	for i := range want {
		if composed.Y[i] != want[i] {
			t.Fatalf("composed ordinate %d: want %v, got %v", i, want[i], composed.Y[i])
		}
	}
}

func TestSignal_ComposeOutOfRangeDropsContribution(t *testing.T) {
	s := pulse(t, 1, 2, 3)
	composed, err := Compose(s, s, 10, 2, 1)
	if err != nil {
		t.Fatalf("out-of-range compose: want nil, got %v", err)
	}
	for i := range s.Y {
		if composed.Y[i] != 2*s.Y[i] {
			t.Fatalf("composed ordinate %d: want first signal scaled by 2 only, got %v", i, composed.Y[i])
		}
	}
}

func TestSignal_ComposeMisalignedGrid(t *testing.T) {
	s := pulse(t, 1, 2, 3, 4)
	if _, err := Compose(s, s, 0.5, 1, 1); !errors.Is(err, ErrGridMisaligned) {
		t.Fatalf("half-channel offset: want ErrGridMisaligned, got %v", err)
	}

	coarse, err := New([]float64{0, 2, 4}, []float64{1, 1, 1})
	if err != nil {
		t.Fatalf("valid signal: want nil, got %v", err)
	}
	if _, err := Compose(s, coarse, 1, 1, 1); !errors.Is(err, ErrGridMisaligned) {
		t.Fatalf("coarser grid landing off-channel: want ErrGridMisaligned, got %v", err)
	}
}

func TestSignal_IntegrateFullRangeEqualsSum(t *testing.T) {
	s := pulse(t, 0.25, 1, 2, 4, 0.125)
	sum := 0.0
	for _, v := range s.Y {
		sum += v
	}
	if got := s.Integrate(s.X[0], s.X[len(s.X)-1]); got != sum {
		t.Fatalf("full-range integral: want %v, got %v", sum, got)
	}
}

func TestSignal_IntegrateWindow(t *testing.T) {
	s := pulse(t, 1, 2, 4, 8, 16)
	if got := s.Integrate(1, 3); got != 14 {
		t.Fatalf("window [1,3]: want 14, got %v", got)
	}
	// boundaries are inclusive
	if got := s.Integrate(2, 2); got != 4 {
		t.Fatalf("window [2,2]: want 4, got %v", got)
	}
	if got := s.Integrate(10, 20); got != 0 {
		t.Fatalf("empty window: want 0, got %v", got)
	}
}

func TestSignal_IntegrateRelative(t *testing.T) {
	s := pulse(t, 1, 2, 4, 8, 16)
	if got, want := s.IntegrateRelative(1, 1, 2), s.Integrate(1, 3); got != want {
		t.Fatalf("relative window: want %v, got %v", want, got)
	}
	if got := s.IntegrateRelative(0, 0, 3); got != 8 {
		t.Fatalf("single-channel window at 3: want 8, got %v", got)
	}
}

func TestSignal_ScaleAndClone(t *testing.T) {
	s := pulse(t, 1, 2)
	scaled := s.Scale(0.5)
	if scaled.Y[0] != 0.5 || scaled.Y[1] != 1 {
		t.Fatalf("scaled ordinates: want [0.5 1], got %v", scaled.Y)
	}
	if s.Y[0] != 1 {
		t.Fatalf("scale mutated input: want 1, got %v", s.Y[0])
	}

	c := s.Clone()
	c.Y[0] = math.Inf(1)
	if s.Y[0] != 1 {
		t.Fatalf("clone shares storage with input")
	}
}
