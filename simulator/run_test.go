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

package simulator

import (
	"context"
	"math"
	"testing"

	"github.com/cockroachdb/errors"

	"github.com/GregTheMadMonk/edu-28/logger"
	"github.com/GregTheMadMonk/edu-28/prob"
	"github.com/GregTheMadMonk/edu-28/signal"
	"github.com/GregTheMadMonk/edu-28/utils"
)

// flatDistribution builds a constant density over [0, 4].
func flatDistribution(t *testing.T) prob.Distribution {
	t.Helper()
	d, err := prob.New([]float64{0, 1, 2, 3, 4}, []float64{1, 1, 1, 1, 1})
	if err != nil {
		t.Fatalf("valid distribution: want nil, got %v", err)
	}
	return d
}

func runConfig(rolls int) *utils.Config {
	return &utils.Config{
		LogLevel:  "critical",
		Rolls:     rolls,
		UnitSize:  1000,
		Workers:   4,
		OffsetMin: 0,
		OffsetMax: 42,
		Center:    9,
		// single-channel integration window at the center
		OffsetLeft:  0,
		OffsetRight: 0,
		RandomSeed:  -1,
	}
}

// TestRun_DoubleOverlapHitRate checks the analytically known probability
// of the composed signal contributing to the integration window: with a
// template whose only nonzero sample sits at channel 0 and a
// single-channel window at channel 9, only rolls with the second peak
// offset by exactly 9 of the 43 equally likely positions land a nonzero
// integral.
func TestRun_DoubleOverlapHitRate(t *testing.T) {
	const rolls = 200_000
	cfg := runConfig(rolls)
	log := logger.NewLogger(cfg.LogLevel, "test")

	results, err := RunDoubleOverlapBulk(context.Background(), cfg, flatDistribution(t), deltaTemplate(t, 43), log)
	if err != nil {
		t.Fatalf("bulk run: want nil, got %v", err)
	}
	if len(results) != rolls {
		t.Fatalf("result count: want %d, got %d", rolls, len(results))
	}

	hits := 0
	for _, r := range results {
		if r.Integral != 0 {
			if r.Offset != 9 {
				t.Fatalf("nonzero integral with offset %d: only offset 9 can reach channel 9", r.Offset)
			}
			hits++
		}
		if r.Offset < 0 || r.Offset > 42 {
			t.Fatalf("offset outside [0, 42]: got %d", r.Offset)
		}
		if r.Amp1 < 0 || r.Amp1 > 4 || r.Amp2 < 0 || r.Amp2 > 4 {
			t.Fatalf("amplitude outside the distribution support: got %v, %v", r.Amp1, r.Amp2)
		}
	}

	want := 1.0 / 43.0
	got := float64(hits) / float64(rolls)
	if math.Abs(got-want) > 0.003 {
		t.Fatalf("hit rate at channel 9: want %v within 0.003, got %v", want, got)
	}
}

// TestRun_DoubleOverlapOffsetUniformity checks that the drawn offsets
// cover all 43 positions roughly uniformly.
func TestRun_DoubleOverlapOffsetUniformity(t *testing.T) {
	const rolls = 100_000
	cfg := runConfig(rolls)
	log := logger.NewLogger(cfg.LogLevel, "test")

	results, err := RunDoubleOverlapBulk(context.Background(), cfg, flatDistribution(t), deltaTemplate(t, 43), log)
	if err != nil {
		t.Fatalf("bulk run: want nil, got %v", err)
	}

	counts := make(map[int]int)
	for _, r := range results {
		counts[r.Offset]++
	}
	if len(counts) != 43 {
		t.Fatalf("offset positions covered: want 43, got %d", len(counts))
	}
	expected := float64(rolls) / 43.0
	for offset, count := range counts {
		if math.Abs(float64(count)-expected) > 0.2*expected {
			t.Fatalf("offset %d count: want %v within 20%%, got %d", offset, expected, count)
		}
	}
}

func TestRun_SingleBulkScalesBaseIntegral(t *testing.T) {
	const rolls = 10_000
	cfg := runConfig(rolls)
	// template integral over [9, 9] is the ordinate at channel 9
	template := deltaTemplate(t, 43)
	template.Y[9] = 2
	template.Y[0] = 0

	log := logger.NewLogger(cfg.LogLevel, "test")
	integrals, err := RunSingleBulk(context.Background(), cfg, flatDistribution(t), template, log)
	if err != nil {
		t.Fatalf("bulk run: want nil, got %v", err)
	}
	if len(integrals) != rolls {
		t.Fatalf("result count: want %d, got %d", rolls, len(integrals))
	}
	for _, v := range integrals {
		// amplitudes are in [0, 4], the base integral is 2
		if v < 0 || v > 8 {
			t.Fatalf("single integral outside [0, 8]: got %v", v)
		}
	}
}

func TestRun_MisalignedTemplateFailsBatch(t *testing.T) {
	cfg := runConfig(1000)
	// a grid step of 0.4 cannot represent the integer offsets of the roll
	x := make([]float64, 11)
	y := make([]float64, 11)
	for i := range x {
		x[i] = float64(i) * 0.4
		y[i] = 1
	}
	template, err := signal.New(x, y)
	if err != nil {
		t.Fatalf("valid template: want nil, got %v", err)
	}

	log := logger.NewLogger(cfg.LogLevel, "test")
	_, err = RunDoubleOverlapBulk(context.Background(), cfg, flatDistribution(t), template, log)
	if !errors.Is(err, signal.ErrGridMisaligned) {
		t.Fatalf("misaligned template: want ErrGridMisaligned batch failure, got %v", err)
	}
}
