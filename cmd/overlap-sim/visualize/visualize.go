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

package visualize

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/GregTheMadMonk/edu-28/logger"
	"github.com/GregTheMadMonk/edu-28/utils"
	"github.com/GregTheMadMonk/edu-28/visualizer"
)

// Command data structure for the histogram visualization app
var Command = cli.Command{
	Action:    visualizeAction,
	Name:      "visualize",
	Usage:     "chart a dumped histogram",
	ArgsUsage: "<hist-file>",
	Flags: []cli.Flag{
		&utils.SeparatorFlag,
		&utils.OutputFlag,
		&utils.PortFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The visualize command requires one argument:
<hist-file>

<hist-file> is a histogram dump produced by the double or single
command. The charts are served over HTTP with --port or rendered into
an HTML file with --output; requesting neither is an error.`,
}

// visualizeAction implements the histogram visualization command.
func visualizeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneFileArg)
	if err != nil {
		return err
	}
	if cfg.Output == "" && cfg.Port == 0 {
		return errors.Wrapf(visualizer.ErrNoTarget, "command %q", cfg.CommandName)
	}
	log := logger.NewLogger(cfg.LogLevel, "Visualize")

	view, err := visualizer.NewHistFileView(cfg.Args[0], cfg.Separator)
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		log.Noticef("rendering charts to %s", cfg.Output)
		if err := view.RenderHTML(cfg.Output); err != nil {
			return err
		}
	}
	if cfg.Port != 0 {
		log.Noticef("serving charts on http://localhost:%d", cfg.Port)
		return view.FireUpWeb(strconv.Itoa(cfg.Port))
	}
	return nil
}
