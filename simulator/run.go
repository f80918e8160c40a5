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
	"math/rand"
	"time"

	"github.com/GregTheMadMonk/edu-28/logger"
	"github.com/GregTheMadMonk/edu-28/signal"
	"github.com/GregTheMadMonk/edu-28/utils"
)

// optionsFromConfig extracts the kernel options of a run configuration.
func optionsFromConfig(cfg *utils.Config) Options {
	return Options{
		OffsetMin:   cfg.OffsetMin,
		OffsetMax:   cfg.OffsetMax,
		OffsetLeft:  cfg.OffsetLeft,
		OffsetRight: cfg.OffsetRight,
		Center:      cfg.Center,
	}
}

// unitCount splits the requested roll count into dispatched units. The
// last unit rounds the total up to a multiple of the unit size.
func unitCount(rolls int, unitSize int) int {
	return (rolls + unitSize - 1) / unitSize
}

// RunDoubleOverlapBulk rolls cfg.Rolls double-overlap events (rounded up
// to whole work units) and returns the pooled result records.
func RunDoubleOverlapBulk(ctx context.Context, cfg *utils.Config, dist AmplitudeSampler, template signal.Signal, log logger.Logger) ([]RollResult, error) {
	opts := optionsFromConfig(cfg)
	units := unitCount(cfg.Rolls, cfg.UnitSize)

	log.Noticef("rolling %d double-overlap events in %d units of %d", units*cfg.UnitSize, units, cfg.UnitSize)
	log.Infof("second peak offsets %d..%d, integrating channels %v..%v",
		opts.OffsetMin, opts.OffsetMax, opts.Center-opts.OffsetLeft, opts.Center+opts.OffsetRight)

	start := time.Now()
	results, err := RunBulk(ctx, units, cfg.UnitSize, cfg.Workers, cfg.RandomSeed, func(rg *rand.Rand) (RollResult, error) {
		return RollDoubleOverlap(rg, dist, template, opts)
	})
	if err != nil {
		return nil, err
	}

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("%d rolls finished in %dh %dm %ds", len(results), hours, minutes, seconds)
	return results, nil
}

// RunSingleBulk rolls cfg.Rolls single-pulse events and returns the
// integral of each scaled template. Only the amplitude is drawn per
// event; the template integral over the configured window is computed
// once and folded into every draw.
func RunSingleBulk(ctx context.Context, cfg *utils.Config, dist AmplitudeSampler, template signal.Signal, log logger.Logger) ([]float64, error) {
	opts := optionsFromConfig(cfg)
	units := unitCount(cfg.Rolls, cfg.UnitSize)
	base := template.IntegrateRelative(opts.OffsetLeft, opts.OffsetRight, opts.Center)

	log.Noticef("rolling %d single-pulse events in %d units of %d", units*cfg.UnitSize, units, cfg.UnitSize)
	log.Infof("template integral over channels %v..%v is %v",
		opts.Center-opts.OffsetLeft, opts.Center+opts.OffsetRight, base)

	start := time.Now()
	amps, err := RunBulk(ctx, units, cfg.UnitSize, cfg.Workers, cfg.RandomSeed, func(rg *rand.Rand) (float64, error) {
		return RollSingle(rg, dist), nil
	})
	if err != nil {
		return nil, err
	}

	for i := range amps {
		amps[i] *= base
	}

	hours, minutes, seconds := logger.ParseTime(time.Since(start))
	log.Noticef("%d rolls finished in %dh %dm %ds", len(amps), hours, minutes, seconds)
	return amps, nil
}
