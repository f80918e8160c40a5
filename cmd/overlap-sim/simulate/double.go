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

package simulate

import (
	"github.com/urfave/cli/v2"

	"github.com/GregTheMadMonk/edu-28/logger"
	"github.com/GregTheMadMonk/edu-28/simulator"
	"github.com/GregTheMadMonk/edu-28/utils"
	"github.com/GregTheMadMonk/edu-28/visualizer"
)

// DoubleCommand data structure for the double-overlap simulation app
var DoubleCommand = cli.Command{
	Action: doubleAction,
	Name:   "double",
	Usage:  "roll events with two randomly amplituded, randomly offset pulses",
	Flags: []cli.Flag{
		&utils.DistributionFileFlag,
		&utils.SignalFileFlag,
		&utils.SeparatorFlag,
		&utils.TrimLengthFlag,
		&utils.RollsFlag,
		&utils.UnitSizeFlag,
		&utils.WorkersFlag,
		&utils.OffsetLeftFlag,
		&utils.OffsetRightFlag,
		&utils.CenterFlag,
		&utils.OffsetMinFlag,
		&utils.OffsetMaxFlag,
		&utils.RandomSeedFlag,
		&utils.BinsFlag,
		&utils.DensityFlag,
		&utils.OutputFlag,
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The double command overlays two copies of the pulse shape template with
independently drawn amplitudes and a uniformly drawn integer offset of
the second peak, integrates the composed signal over the configured
channel window and histograms the results.

The histogram is dumped with --output and/or served as charts with
--port; requesting neither is an error.`,
}

// doubleAction implements the double-overlap simulation command.
func doubleAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	if err := checkTarget(cfg); err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Double Overlap")

	dist, template, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	results, err := simulator.RunDoubleOverlapBulk(ctx.Context, cfg, dist, template, log)
	if err != nil {
		return err
	}

	view, err := visualizer.NewDoubleView(results, cfg.Bins, cfg.Density,
		cfg.OffsetLeft, cfg.OffsetRight, cfg.Center)
	if err != nil {
		return err
	}
	return publish(cfg, view, log)
}
