/*
 * crystal_test.go, part of gocrystal
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package crystal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmera/gocrystal/m3"
)

func TestGridIndexing(t *testing.T) {
	g, err := NewGrid(4, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, 120, g.Nr())
	//FullRindex and Coords are inverses over the whole grid
	seen := make([]bool, g.Nr())
	var r m3.IntVec
	for r[0] = 0; r[0] < 4; r[0]++ {
		for r[1] = 0; r[1] < 5; r[1]++ {
			for r[2] = 0; r[2] < 6; r[2]++ {
				i := g.FullRindex(r)
				require.False(t, seen[i])
				seen[i] = true
				assert.Equal(t, r, g.Coords(i))
				//in-range points agree between the two index functions
				assert.Equal(t, i, g.FullGindex(r))
			}
		}
	}
	//negative and out-of-range coordinates fold back onto the grid
	assert.Equal(t, g.FullRindex(m3.IntVec{3, 4, 5}), g.FullGindex(m3.IntVec{-1, -1, -1}))
	assert.Equal(t, g.FullRindex(m3.IntVec{0, 0, 0}), g.FullGindex(m3.IntVec{4, 5, 6}))
	assert.Equal(t, g.FullRindex(m3.IntVec{1, 2, 3}), g.FullGindex(m3.IntVec{-3, -8, 9}))

	_, err = NewGrid(0, 4, 4)
	assert.Error(t, err)
}

func TestCircDistSq(t *testing.T) {
	assert.InDelta(t, 0.0, CircDistSq(m3.Vec{0.25, 0, 0}, m3.Vec{0.25, 0, 0}), 1e-14)
	//positions a lattice vector apart are the same position
	assert.InDelta(t, 0.0, CircDistSq(m3.Vec{0.75, 0, 0}, m3.Vec{-0.25, 0, 0}), 1e-14)
	//wrap-around distance: 0.9 to 0.1 is 0.2, not 0.8
	assert.InDelta(t, 0.04, CircDistSq(m3.Vec{0.9, 0, 0}, m3.Vec{0.1, 0, 0}), 1e-12)
	assert.InDelta(t, 0.75, CircDistSq(m3.Vec{0.5, 0.5, 0.5}, m3.Vec{0, 0, 0}), 1e-12)
}

func TestLattice(t *testing.T) {
	lat, err := NewLattice(m3.NewMat([]float64{2, 0, 0, 0, 3, 0, 0, 0, 4}))
	require.NoError(t, err)
	assert.InDelta(t, 24.0, lat.Volume(), 1e-12)
	g := lat.Metric()
	assert.InDelta(t, 4.0, g.At(0, 0), 1e-12)
	assert.InDelta(t, 9.0, g.At(1, 1), 1e-12)
	assert.InDelta(t, 16.0, g.At(2, 2), 1e-12)
	//degenerate bases are rejected
	_, err = NewLattice(m3.NewMat([]float64{1, 0, 0, 2, 0, 0, 0, 0, 1}))
	assert.Error(t, err)
}

func TestSpecies(t *testing.T) {
	sp, err := NewSpecies("Si", []m3.Vec{{0, 0, 0}, {0.25, 0.25, 0.25}})
	require.NoError(t, err)
	assert.Equal(t, 2, sp.NAtoms())
	assert.Equal(t, []float64{1, 1}, sp.MoveScale)
	_, err = NewSpecies("Si", []m3.Vec{{0, 0, 0}}, []float64{1, 0})
	assert.Error(t, err)

	sp.Translate(m3.Vec{-0.25, 0, 0})
	assert.InDelta(t, -0.25, sp.Positions[0][0], 1e-14)
	assert.InDelta(t, 0.0, sp.Positions[1][0], 1e-14)
}

func TestKmeshHelpers(t *testing.T) {
	gam := Gamma()
	require.Len(t, gam, 1)
	assert.Equal(t, 1.0, gam[0].Weight)

	mesh := UniformKmesh(2, 2, 2)
	require.Len(t, mesh, 8)
	var total float64
	for _, q := range mesh {
		total += q.Weight
		for i := 0; i < 3; i++ {
			assert.Less(t, q.K[i], 0.5)
			assert.GreaterOrEqual(t, q.K[i], -0.5)
		}
	}
	assert.InDelta(t, 1.0, total, 1e-12)
}
