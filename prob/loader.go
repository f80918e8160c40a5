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

package prob

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// LoadExperimental reads an amplitude distribution from an experimental
// data file. The first line is a header and is skipped. Every following
// row holds the abscissa in its first column; all remaining columns are
// summed into the density value. Empty fields count as zero. Rows with an
// abscissa greater than trim are discarded; a non-positive trim disables
// trimming. The resulting table is normalized.
func LoadExperimental(path string, sep string, trim float64) (Distribution, error) {
	file, err := os.Open(path)
	if err != nil {
		return Distribution{}, errors.Wrapf(err, "could not open experimental data file %s", path)
	}
	defer file.Close()

	var e, p []float64

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
		point := make([]float64, len(fields))
		for i, f := range fields {
			if f == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
			if err != nil {
				return Distribution{}, errors.Wrapf(err, "%s:%d: bad value in column %d", path, line, i)
			}
			point[i] = v
		}
		if len(point) < 2 {
			return Distribution{}, errors.Newf("%s:%d: expected at least two columns, got %d", path, line, len(point))
		}
		density := 0.0
		for _, v := range point[1:] {
			density += v
		}
		if trim > 0 && point[0] > trim {
			continue
		}
		e = append(e, point[0])
		p = append(p, density)
	}
	if err := scanner.Err(); err != nil {
		return Distribution{}, errors.Wrapf(err, "could not read experimental data file %s", path)
	}

	return New(e, p)
}
