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

package report

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// Split holds the result of cutting a histogram at a border abscissa.
type Split struct {
	Left  float64 // mass at abscissas strictly below the border
	Right float64 // mass at abscissas at or above the border
}

// Total returns the mass of the whole histogram.
func (s Split) Total() float64 {
	return s.Left + s.Right
}

// WriteHistFile dumps a histogram as two separated columns, bin center
// and count, one bin per line.
func WriteHistFile(path string, h Histogram, sep string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "could not create histogram file %s", path)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for i, x := range h.Centers() {
		if _, err := fmt.Fprintf(w, "%v%s%v\n", x, sep, h.Counts[i]); err != nil {
			return errors.Wrapf(err, "could not write histogram file %s", path)
		}
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "could not write histogram file %s", path)
	}
	return nil
}

// ReadHistFile reads a two-column histogram dump back into abscissa and
// count slices. Blank lines are skipped.
func ReadHistFile(path string, sep string) ([]float64, []float64, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "could not open histogram file %s", path)
	}
	defer file.Close()

	var xs, ns []float64

	scanner := bufio.NewScanner(file)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		fields := strings.Split(text, sep)
		if len(fields) != 2 {
			return nil, nil, errors.Newf("%s:%d: expected two columns, got %d", path, line, len(fields))
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s:%d: bad abscissa", path, line)
		}
		n, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "%s:%d: bad count", path, line)
		}
		xs = append(xs, x)
		ns = append(ns, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrapf(err, "could not read histogram file %s", path)
	}
	if len(xs) == 0 {
		return nil, nil, errors.Newf("histogram file %s holds no bins", path)
	}
	return xs, ns, nil
}

// AnalyzeHistFile reads a histogram dump and splits its mass at the
// border abscissa.
func AnalyzeHistFile(path string, border float64, sep string) (Split, error) {
	xs, ns, err := ReadHistFile(path, sep)
	if err != nil {
		return Split{}, err
	}
	var s Split
	for i, x := range xs {
		if x < border {
			s.Left += ns[i]
		} else {
			s.Right += ns[i]
		}
	}
	return s, nil
}
