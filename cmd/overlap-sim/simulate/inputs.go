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
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/GregTheMadMonk/edu-28/logger"
	"github.com/GregTheMadMonk/edu-28/prob"
	"github.com/GregTheMadMonk/edu-28/report"
	"github.com/GregTheMadMonk/edu-28/signal"
	"github.com/GregTheMadMonk/edu-28/utils"
	"github.com/GregTheMadMonk/edu-28/visualizer"
)

// checkTarget rejects runs whose results would go nowhere.
func checkTarget(cfg *utils.Config) error {
	if cfg.Output == "" && cfg.Port == 0 {
		return errors.Wrapf(visualizer.ErrNoTarget, "command %q", cfg.CommandName)
	}
	return nil
}

// loadInputs reads the amplitude distribution and the pulse shape
// template named by the configuration.
func loadInputs(cfg *utils.Config) (prob.Distribution, signal.Signal, error) {
	if cfg.DistributionFile == "" {
		return prob.Distribution{}, signal.Signal{}, errors.Wrap(utils.ErrInvalidConfig, "no amplitude distribution file given")
	}
	if cfg.SignalFile == "" {
		return prob.Distribution{}, signal.Signal{}, errors.Wrap(utils.ErrInvalidConfig, "no pulse shape template file given")
	}

	dist, err := prob.LoadExperimental(cfg.DistributionFile, cfg.Separator, cfg.TrimLength)
	if err != nil {
		return prob.Distribution{}, signal.Signal{}, err
	}
	template, err := signal.LoadShape(cfg.SignalFile, cfg.Separator)
	if err != nil {
		return prob.Distribution{}, signal.Signal{}, err
	}
	return dist, template, nil
}

// publish dumps the integral histogram and/or serves the charts of a
// finished run.
func publish(cfg *utils.Config, view visualizer.View, log logger.Logger) error {
	if cfg.Output != "" {
		log.Noticef("dumping integral histogram to %s", cfg.Output)
		if err := report.WriteHistFile(cfg.Output, view.Integral, cfg.Separator); err != nil {
			return err
		}
	}
	if cfg.Port != 0 {
		log.Noticef("serving charts on http://localhost:%d", cfg.Port)
		return view.FireUpWeb(strconv.Itoa(cfg.Port))
	}
	return nil
}
