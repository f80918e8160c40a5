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

package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/GregTheMadMonk/edu-28/cmd/overlap-sim/analyze"
	"github.com/GregTheMadMonk/edu-28/cmd/overlap-sim/simulate"
	"github.com/GregTheMadMonk/edu-28/cmd/overlap-sim/visualize"
)

// OverlapSimApp data structure
var OverlapSimApp = cli.App{
	Name:      "Overlap Simulator",
	HelpName:  "overlap-sim",
	Usage:     "estimate integrated signal distributions of overlapping detector pulses",
	Copyright: "(c) 2026 GregTheMadMonk",
	Commands: []*cli.Command{
		&simulate.DoubleCommand,
		&simulate.SingleCommand,
		&analyze.Command,
		&visualize.Command,
	},
}

// main implements the overlap-sim functions
func main() {
	if err := OverlapSimApp.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
