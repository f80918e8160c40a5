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

package analyze

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/GregTheMadMonk/edu-28/logger"
	"github.com/GregTheMadMonk/edu-28/report"
	"github.com/GregTheMadMonk/edu-28/utils"
)

// Command data structure for the histogram analysis app
var Command = cli.Command{
	Action:    analyzeAction,
	Name:      "analyze",
	Usage:     "split the mass of a dumped histogram at a border abscissa",
	ArgsUsage: "<hist-file>",
	Flags: []cli.Flag{
		&utils.BorderFlag,
		&utils.SeparatorFlag,
		&logger.LogLevelFlag,
	},
	Description: `
The analyze command requires one argument:
<hist-file>

<hist-file> is a histogram dump produced by the double or single
command. The mass below and at-or-above the --border abscissa is
reported together with their ratio to the total.`,
}

// analyzeAction implements the histogram analysis command.
func analyzeAction(ctx *cli.Context) error {
	cfg, err := utils.NewConfig(ctx, utils.OneFileArg)
	if err != nil {
		return err
	}
	log := logger.NewLogger(cfg.LogLevel, "Analyze")

	split, err := report.AnalyzeHistFile(cfg.Args[0], cfg.Border, cfg.Separator)
	if err != nil {
		return err
	}

	total := split.Total()
	log.Noticef("histogram %s split at %v", cfg.Args[0], cfg.Border)
	fmt.Printf("below:       %v (%.4f%%)\n", split.Left, 100*split.Left/total)
	fmt.Printf("at or above: %v (%.4f%%)\n", split.Right, 100*split.Right/total)
	fmt.Printf("total:       %v\n", total)
	return nil
}
