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

package signal

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// LoadShape reads a pulse shape template from an experimental data file.
// The first line is a header and is skipped. The first column of every
// row is the channel abscissa; all remaining columns are summed into the
// ordinate. Empty fields count as zero. The shape is not normalized.
func LoadShape(path string, sep string) (Signal, error) {
	file, err := os.Open(path)
	if err != nil {
		return Signal{}, errors.Wrapf(err, "could not open signal file %s", path)
	}
	defer file.Close()

	var x, y []float64

	scanner := bufio.NewScanner(file)
	header := true
	line := 0
	for scanner.Scan() {
		line++
		if header {
			header = false
			continue
		}
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, sep)
		if len(fields) < 2 {
			return Signal{}, errors.Newf("%s:%d: expected at least two columns, got %d", path, line, len(fields))
		}
		abscissa, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return Signal{}, errors.Wrapf(err, "%s:%d: bad abscissa", path, line)
		}
		ordinate := 0.0
		for i, f := range fields[1:] {
			if f == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return Signal{}, errors.Wrapf(err, "%s:%d: bad value in column %d", path, line, i+1)
			}
			ordinate += v
		}
		x = append(x, abscissa)
		y = append(y, ordinate)
	}
	if err := scanner.Err(); err != nil {
		return Signal{}, errors.Wrapf(err, "could not read signal file %s", path)
	}

	return New(x, y)
}
