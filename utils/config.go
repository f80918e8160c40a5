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

import (
	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/GregTheMadMonk/edu-28/logger"
)

// ArgumentMode determines the arguments a config expects on the command line.
type ArgumentMode int

const (
	// NoArgs expects no positional command line arguments.
	NoArgs ArgumentMode = iota
	// OneFileArg expects exactly one positional file argument.
	OneFileArg
)

// ErrInvalidConfig is reported for structurally invalid run configurations.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds the configuration of one simulator invocation, assembled
// from command line flags.
type Config struct {
	AppName     string
	CommandName string
	Args        []string

	LogLevel         string  // level of the logging
	Rolls            int     // total number of Monte Carlo rolls
	UnitSize         int     // sequential rolls per dispatched work unit
	Workers          int     // number of parallel workers; 0 = all cores
	OffsetLeft       float64 // left integration border offset
	OffsetRight      float64 // right integration border offset
	Center           float64 // center channel of the integration window
	OffsetMin        int     // minimum second peak offset
	OffsetMax        int     // maximum second peak offset
	DistributionFile string  // experimental amplitude distribution file
	SignalFile       string  // pulse shape template file
	Separator        string  // input file column separator
	TrimLength       float64 // distribution abscissa trim; 0 disables
	Bins             int     // number of histogram bins
	Density          bool    // normalize histogram counts to a density
	Output           string  // histogram dump target
	Port             int     // chart server port; 0 disables serving
	RandomSeed       int64   // base random seed; negative = OS entropy
	Border           float64 // histogram analysis border
}

// NewConfig builds a Config from the flags present on the invoked command
// and validates it.
func NewConfig(ctx *cli.Context, mode ArgumentMode) (*Config, error) {
	cfg := createConfigFromFlags(ctx)

	switch mode {
	case NoArgs:
		if ctx.Args().Len() != 0 {
			return nil, errors.Wrapf(ErrInvalidConfig, "command %q expects no arguments", cfg.CommandName)
		}
	case OneFileArg:
		if ctx.Args().Len() != 1 {
			return nil, errors.Wrapf(ErrInvalidConfig, "command %q expects exactly one file argument", cfg.CommandName)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	if cfg.Rolls <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "number of rolls must be positive, got %d", cfg.Rolls)
	}
	if cfg.UnitSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "unit size must be positive, got %d", cfg.UnitSize)
	}
	if cfg.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "worker count must not be negative, got %d", cfg.Workers)
	}
	if cfg.OffsetMax < cfg.OffsetMin {
		return errors.Wrapf(ErrInvalidConfig, "offset range [%d, %d] is empty", cfg.OffsetMin, cfg.OffsetMax)
	}
	if cfg.Bins <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "bin count must be positive, got %d", cfg.Bins)
	}
	return nil
}

// createConfigFromFlags returns a Config instance with user specified
// values or the default ones.
func createConfigFromFlags(ctx *cli.Context) *Config {
	return &Config{
		AppName:     ctx.App.HelpName,
		CommandName: ctx.Command.Name,
		Args:        ctx.Args().Slice(),

		LogLevel:         getFlagValue(ctx, logger.LogLevelFlag).(string),
		Rolls:            getFlagValue(ctx, RollsFlag).(int),
		UnitSize:         getFlagValue(ctx, UnitSizeFlag).(int),
		Workers:          getFlagValue(ctx, WorkersFlag).(int),
		OffsetLeft:       getFlagValue(ctx, OffsetLeftFlag).(float64),
		OffsetRight:      getFlagValue(ctx, OffsetRightFlag).(float64),
		Center:           getFlagValue(ctx, CenterFlag).(float64),
		OffsetMin:        getFlagValue(ctx, OffsetMinFlag).(int),
		OffsetMax:        getFlagValue(ctx, OffsetMaxFlag).(int),
		DistributionFile: getFlagValue(ctx, DistributionFileFlag).(string),
		SignalFile:       getFlagValue(ctx, SignalFileFlag).(string),
		Separator:        getFlagValue(ctx, SeparatorFlag).(string),
		TrimLength:       getFlagValue(ctx, TrimLengthFlag).(float64),
		Bins:             getFlagValue(ctx, BinsFlag).(int),
		Density:          getFlagValue(ctx, DensityFlag).(bool),
		Output:           getFlagValue(ctx, OutputFlag).(string),
		Port:             getFlagValue(ctx, PortFlag).(int),
		RandomSeed:       getFlagValue(ctx, RandomSeedFlag).(int64),
		Border:           getFlagValue(ctx, BorderFlag).(float64),
	}
}

// getFlagValue returns the value specified by the user if the flag is
// present on the invoked command, otherwise the default flag value.
func getFlagValue(ctx *cli.Context, flag interface{}) interface{} {
	cmdFlags := ctx.Command.Flags
	for _, cmdFlag := range cmdFlags {
		switch f := flag.(type) {
		case cli.IntFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int(f.Name)
			}
		case cli.Int64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Int64(f.Name)
			}
		case cli.Float64Flag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Float64(f.Name)
			}
		case cli.StringFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.String(f.Name)
			}
		case cli.PathFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Path(f.Name)
			}
		case cli.BoolFlag:
			if cmdFlag.Names()[0] == f.Name {
				return ctx.Bool(f.Name)
			}
		}
	}

	// flag not present on the command; fall back to its default value
	switch f := flag.(type) {
	case cli.IntFlag:
		return f.Value
	case cli.Int64Flag:
		return f.Value
	case cli.Float64Flag:
		return f.Value
	case cli.StringFlag:
		return f.Value
	case cli.PathFlag:
		return f.Value
	case cli.BoolFlag:
		return f.Value
	default:
		return nil
	}
}
