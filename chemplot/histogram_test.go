/*
 * histogram_test.go, part of gomol.
 *
 *
 * Copyright 2024 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemplot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	chem "github.com/rmera/gomol"
)

func molOf(t *testing.T, n int) *chem.Molecule {
	t.Helper()
	c, err := chem.DefaultTable().Element("C")
	require.NoError(t, err)
	m := chem.NewMolecule()
	for i := 0; i < n; i++ {
		require.NoError(t, m.AddAtom(chem.NewAtom(c)))
	}
	return m
}

func TestSizes(t *testing.T) {
	mols := []*chem.Molecule{molOf(t, 3), nil, molOf(t, 1), molOf(t, 0)}
	assert.Equal(t, []int{3, 1, 0}, Sizes(mols))
	assert.Empty(t, Sizes(nil))
}

func TestBins(t *testing.T) {
	assert.Equal(t, 1, bins(4, 4))
	assert.Equal(t, 10, bins(1, 10))
	assert.Equal(t, MaxBins, bins(0, 1000))
}

func TestBasicPlot(t *testing.T) {
	p := basicPlot("Sizes", "Atoms")
	assert.Equal(t, "Sizes", p.Title.Text)
	assert.Equal(t, 3*vg.Millimeter, p.Title.Padding)
	assert.Equal(t, "Atoms", p.X.Label.Text)
	assert.Equal(t, "Molecules", p.Y.Label.Text)
}

func TestSizeHistogram(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"sizes.svg", "sizes.png"} {
		file := filepath.Join(dir, name)
		require.NoError(t, SizeHistogram([]int{3, 5, 5, 9, 12}, 0, "Sizes", file))
		fi, err := os.Stat(file)
		require.NoError(t, err)
		assert.Positive(t, fi.Size())
	}
	//a single size still gets a bin.
	require.NoError(t, SizeHistogram([]int{7, 7}, 0, "", filepath.Join(dir, "one.svg")))
	b, err := os.ReadFile(filepath.Join(dir, "sizes.svg"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestSizeHistogramErrors(t *testing.T) {
	dir := t.TempDir()
	assert.ErrorIs(t, SizeHistogram(nil, 0, "", filepath.Join(dir, "a.svg")), ErrNoData)
	assert.Error(t, SizeHistogram([]int{1, 2}, 0, "", filepath.Join(dir, "a.nope")))
	assert.Error(t, SizeHistogram([]int{1, 2}, 0, "", filepath.Join(dir, "missing", "a.svg")))
}
