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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shape.tsv")
	require.NoError(t, os.WriteFile(path, []byte("ch\ta\tb\n0\t1\t2\n1\t0\t\n2\t3\t1\n"), 0644))

	s, err := LoadShape(path, "\t")
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2}, s.X)
	assert.Equal(t, []float64{3, 0, 4}, s.Y)
}

func TestLoader_LoadShapeErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadShape(filepath.Join(t.TempDir(), "nope.tsv"), "\t")
		assert.Error(t, err)
	})

	t.Run("bad abscissa", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shape.tsv")
		require.NoError(t, os.WriteFile(path, []byte("ch\ta\nzero\t1\n"), 0644))
		_, err := LoadShape(path, "\t")
		assert.Error(t, err)
	})

	t.Run("unordered grid", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shape.tsv")
		require.NoError(t, os.WriteFile(path, []byte("ch\ta\n1\t1\n0\t1\n"), 0644))
		_, err := LoadShape(path, "\t")
		assert.ErrorIs(t, err, ErrMalformed)
	})
}
