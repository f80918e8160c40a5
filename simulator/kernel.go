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

// Package simulator rolls simulated detector events by overlaying randomly
// amplituded, randomly offset copies of a pulse shape template, and runs
// such rolls in bulk across parallel workers.
package simulator

import (
	"math/rand"

	"github.com/GregTheMadMonk/edu-28/signal"
)

//go:generate mockgen -source kernel.go -destination sampler_mock.go -package simulator

// AmplitudeSampler draws one pulse amplitude per call using the supplied
// random generator. prob.Distribution satisfies this interface.
type AmplitudeSampler interface {
	Sample(rg *rand.Rand) float64
}

// Options parameterizes a double-overlap roll.
type Options struct {
	OffsetMin   int     // minimum channel offset of the second peak (inclusive)
	OffsetMax   int     // maximum channel offset of the second peak (inclusive)
	OffsetLeft  float64 // left integration border offset relative to Center
	OffsetRight float64 // right integration border offset relative to Center
	Center      float64 // center channel of the integration window
}

// DefaultOptions returns the detector defaults: 43 offset positions and
// integration around channel 9.
func DefaultOptions() Options {
	return Options{OffsetMin: 0, OffsetMax: 42, Center: 9}
}

// RollResult is the record produced by one double-overlap roll. The
// flattened column order handed to reporting is offset, amp1, amp2,
// integral.
type RollResult struct {
	Offset   int     // channel offset of the second peak
	Amp1     float64 // first peak amplitude
	Amp2     float64 // second peak amplitude
	Integral float64 // integral of the composed signal
}

// Row returns the result as one row of the raw result matrix.
func (r RollResult) Row() [4]float64 {
	return [4]float64{float64(r.Offset), r.Amp1, r.Amp2, r.Integral}
}

// RollDoubleOverlap rolls one event with two overlapping pulses: the
// second peak offset is a uniformly distributed integer in
// [OffsetMin, OffsetMax] and both amplitudes are drawn independently from
// dist. A grid misalignment between template copies is a configuration
// bug and aborts the roll.
func RollDoubleOverlap(rg *rand.Rand, dist AmplitudeSampler, template signal.Signal, opts Options) (RollResult, error) {
	offset := opts.OffsetMin + rg.Intn(opts.OffsetMax-opts.OffsetMin+1)
	amp1 := dist.Sample(rg)
	amp2 := dist.Sample(rg)

	composed, err := signal.Compose(template, template, float64(offset), amp1, amp2)
	if err != nil {
		return RollResult{}, err
	}

	return RollResult{
		Offset:   offset,
		Amp1:     amp1,
		Amp2:     amp2,
		Integral: composed.IntegrateRelative(opts.OffsetLeft, opts.OffsetRight, opts.Center),
	}, nil
}

// RollSingle rolls one single-pulse event. Only the amplitude draw is
// per-event work; scaling and integrating the template is left to the
// caller, which can fold a precomputed base integral into the drawn
// amplitude.
func RollSingle(rg *rand.Rand, dist AmplitudeSampler) float64 {
	return dist.Sample(rg)
}

// Integrals extracts the integral column from a double-overlap result set.
func Integrals(results []RollResult) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = r.Integral
	}
	return out
}

// Offsets extracts the offset column from a double-overlap result set.
func Offsets(results []RollResult) []float64 {
	out := make([]float64, len(results))
	for i, r := range results {
		out[i] = float64(r.Offset)
	}
	return out
}

// Amplitudes extracts the two amplitude columns from a double-overlap
// result set.
func Amplitudes(results []RollResult) ([]float64, []float64) {
	amp1 := make([]float64, len(results))
	amp2 := make([]float64, len(results))
	for i, r := range results {
		amp1[i] = r.Amp1
		amp2[i] = r.Amp2
	}
	return amp1, amp2
}
