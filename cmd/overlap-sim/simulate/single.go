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

// SingleCommand data structure for the single-pulse simulation app
var SingleCommand = cli.Command{
	Action: singleAction,
	Name:   "single",
	Usage:  "roll events with one randomly amplituded pulse as a reference",
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
		&utils.RandomSeedFlag,
		&utils.BinsFlag,
		&utils.OutputFlag,
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The single command scales the pulse shape template by amplitudes drawn
from the experimental distribution, integrates each scaled pulse over
the configured channel window and histograms the results. It provides
the no-overlap reference for the double command.

The histogram is dumped with --output and/or served as charts with
--port; requesting neither is an error.`,
}

// singleAction implements the single-pulse simulation command.
func singleAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.NoArgs)
	if err != nil {
		return err
	}
	if err := checkTarget(cfg); err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Single Pulse")

	dist, template, err := loadInputs(cfg)
	if err != nil {
		return err
	}

	integrals, err := simulator.RunSingleBulk(ctx.Context, cfg, dist, template, log)
	if err != nil {
		return err
	}

	view, err := visualizer.NewSingleView(integrals, cfg.Bins,
		cfg.OffsetLeft, cfg.OffsetRight, cfg.Center)
	if err != nil {
		return err
	}
	return publish(cfg, view, log)
}
