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

package utils

import "github.com/urfave/cli/v2"

var (
	// RollsFlag sets the total number of Monte Carlo rolls.
	RollsFlag = cli.IntFlag{
		Name:    "rolls",
		Aliases: []string{"n"},
		Usage:   "total number of Monte Carlo rolls",
		Value:   10_000_000,
	}
	// UnitSizeFlag sets the number of sequential rolls batched into one
	// dispatched work unit.
	UnitSizeFlag = cli.IntFlag{
		Name:  "unit-size",
		Usage: "number of sequential rolls per dispatched work unit",
		Value: 10_000,
	}
	// WorkersFlag sets the number of parallel workers.
	WorkersFlag = cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "number of worker threads that execute in parallel; 0 uses all CPU cores",
		Value:   0,
	}
	// OffsetLeftFlag sets the left integration border offset relative to the center channel.
	OffsetLeftFlag = cli.Float64Flag{
		Name:  "offset-left",
		Usage: "left integration border offset relative to the center channel",
		Value: 0,
	}
	// OffsetRightFlag sets the right integration border offset relative to the center channel.
	OffsetRightFlag = cli.Float64Flag{
		Name:  "offset-right",
		Usage: "right integration border offset relative to the center channel",
		Value: 0,
	}
	// CenterFlag sets the center channel that integration offsets relate to.
	CenterFlag = cli.Float64Flag{
		Name:  "center",
		Usage: "center channel that integration offsets relate to",
		Value: 9,
	}
	// OffsetMinFlag sets the minimum second peak offset.
	OffsetMinFlag = cli.IntFlag{
		Name:  "offset-min",
		Usage: "minimum channel offset of the second peak",
		Value: 0,
	}
	// OffsetMaxFlag sets the maximum second peak offset.
	OffsetMaxFlag = cli.IntFlag{
		Name:  "offset-max",
		Usage: "maximum channel offset of the second peak",
		Value: 42,
	}
	// DistributionFileFlag names the experimental amplitude distribution file.
	DistributionFileFlag = cli.PathFlag{
		Name:  "distribution",
		Usage: "experimental amplitude distribution data file",
	}
	// SignalFileFlag names the pulse shape template file.
	SignalFileFlag = cli.PathFlag{
		Name:  "signal",
		Usage: "pulse shape template data file",
	}
	// SeparatorFlag sets the input file column separator.
	SeparatorFlag = cli.StringFlag{
		Name:  "separator",
		Usage: "column separator of the input data files",
		Value: "\t",
	}
	// TrimLengthFlag trims the amplitude distribution abscissa.
	TrimLengthFlag = cli.Float64Flag{
		Name:  "trim",
		Usage: "trim the amplitude distribution after this abscissa value; 0 disables trimming",
		Value: 20,
	}
	// BinsFlag sets the number of histogram bins.
	BinsFlag = cli.IntFlag{
		Name:  "bins",
		Usage: "number of histogram bins",
		Value: 1001,
	}
	// DensityFlag switches histogram counts to densities.
	DensityFlag = cli.BoolFlag{
		Name:  "density",
		Usage: "normalize histogram counts to a probability density",
		Value: true,
	}
	// OutputFlag names the histogram dump target.
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file for the computed histogram",
	}
	// PortFlag sets the port of the visualization web server.
	PortFlag = cli.IntFlag{
		Name:  "port",
		Usage: "port for serving rendered charts; 0 disables the server",
		Value: 0,
	}
	// RandomSeedFlag sets the base random seed.
	RandomSeedFlag = cli.Int64Flag{
		Name:  "random-seed",
		Usage: "base seed for the worker random generators; negative seeds from the OS entropy source",
		Value: -1,
	}
	// BorderFlag sets the histogram analysis border.
	BorderFlag = cli.Float64Flag{
		Name:  "border",
		Usage: "border separating the left and right histogram mass",
		Value: 0,
	}
)
