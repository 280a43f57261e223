/*
 * symmetrize_test.go, part of gocrystal
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

package symmetry

import (
	"bytes"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	chem "github.com/rmera/gocrystal"
	"github.com/rmera/gocrystal/m3"
)

func cubicSetup(t *testing.T, options ...*Options) *Symmetries {
	t.Helper()
	S := New(options...)
	err := S.Setup(cubicLattice(t), oneSpecies(t, "Na", []m3.Vec{{0, 0, 0}}), grid444(t), chem.Gamma())
	require.NoError(t, err)
	return S
}

func randomField(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	for i := range x {
		x[i] = rng.NormFloat64()
	}
	return x
}

func TestSymmetrizeIdempotent(t *testing.T) {
	S := cubicSetup(t)
	x := randomField(64, 1)
	var sumBefore float64
	for _, v := range x {
		sumBefore += v
	}
	require.NoError(t, S.Symmetrize(x))
	once := append([]float64{}, x...)
	require.NoError(t, S.Symmetrize(x))
	assert.InDeltaSlice(t, once, x, 1e-12, "re-symmetrizing a symmetric field must be a no-op")
	//averaging within classes preserves the total
	var sumAfter float64
	for _, v := range x {
		sumAfter += v
	}
	assert.InDelta(t, sumBefore, sumAfter, 1e-9)
	//symmetry-related points hold the same value now
	nRot := S.NSym()
	for c := 0; c < S.NClasses(); c++ {
		run := S.symmIndex[c*nRot : (c+1)*nRot]
		for _, idx := range run {
			assert.InDelta(t, x[run[0]], x[idx], 1e-12)
		}
	}
}

func TestBackendsAgree(t *testing.T) {
	oSerial := DefaultOptions()
	oSerial.Exec(Serial{})
	oConc := DefaultOptions()
	oConc.Exec(Concurrent{Cpus: 3})
	a := cubicSetup(t, oSerial)
	b := cubicSetup(t, oConc)
	xa := randomField(64, 7)
	xb := append([]float64{}, xa...)
	require.NoError(t, a.Symmetrize(xa))
	require.NoError(t, b.Symmetrize(xb))
	assert.InDeltaSlice(t, xa, xb, 1e-12)
}

func TestSymmetrizeBadInput(t *testing.T) {
	S := cubicSetup(t)
	err := S.Symmetrize(make([]float64, 63))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grid")
	var unready Symmetries
	assert.Error(t, (&unready).Symmetrize(make([]float64, 64)))
}

func TestSymmetrizeForces(t *testing.T) {
	//an atom fixed by the whole group can feel no net force: averaging any
	//force over the full cubic group gives zero
	S := cubicSetup(t)
	f := [][]m3.Vec{{{0.3, -1.2, 0.77}}}
	require.NoError(t, S.SymmetrizeForces(f))
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0.0, f[0][0][i], 1e-12)
	}
}

func TestSymmetrizeForcesIdempotent(t *testing.T) {
	//two atoms related by inversion: forces symmetrize to an
	//equal-and-opposite pair, and stay there
	S := New()
	atoms := oneSpecies(t, "O", []m3.Vec{{0.25, 0, 0}, {0.75, 0, 0}})
	err := S.Setup(cubicLattice(t), atoms, grid444(t), chem.Gamma())
	require.NoError(t, err)
	f := [][]m3.Vec{{{1.5, 0.2, -0.1}, {-0.5, 0.1, 0.4}}}
	require.NoError(t, S.SymmetrizeForces(f))
	once := [][]m3.Vec{append([]m3.Vec{}, f[0]...)}
	//inversion antisymmetry
	for i := 0; i < 3; i++ {
		assert.InDelta(t, -f[0][0][i], f[0][1][i], 1e-12)
	}
	require.NoError(t, S.SymmetrizeForces(f))
	for atom := range f[0] {
		for i := 0; i < 3; i++ {
			assert.InDelta(t, once[0][atom][i], f[0][atom][i], 1e-12)
		}
	}
	//shape errors are rejected
	assert.Error(t, S.SymmetrizeForces([][]m3.Vec{{{1, 0, 0}}}))
	assert.Error(t, S.SymmetrizeForces(nil))
}

func TestDumpMatrices(t *testing.T) {
	S := cubicSetup(t)
	b := new(bytes.Buffer)
	require.NoError(t, S.DumpMatrices(b))
	out := b.String()
	assert.Contains(t, out, "48 symmetry operations")
	assert.Equal(t, 48, strings.Count(out, "lattice coordinates"))
}

func TestIndexCacheRoundTrip(t *testing.T) {
	S := cubicSetup(t)
	b := new(bytes.Buffer)
	require.NoError(t, S.WriteIndexCache(b))
	saved := append([]int{}, S.symmIndex...)
	//mangle the live table, then restore from the cache
	S.symmIndex[0] = 63
	require.NoError(t, S.ReadIndexCache(bytes.NewReader(b.Bytes())))
	assert.Equal(t, saved, S.symmIndex)
	//symmetrization through the restored table still converges to a fixpoint
	x := randomField(64, 3)
	require.NoError(t, S.Symmetrize(x))
	once := append([]float64{}, x...)
	require.NoError(t, S.Symmetrize(x))
	assert.InDeltaSlice(t, once, x, 1e-12)
}

func TestIndexCacheMismatch(t *testing.T) {
	S := cubicSetup(t)
	b := new(bytes.Buffer)
	require.NoError(t, S.WriteIndexCache(b))

	//same group order, different grid: the cache must be refused
	g, err := chem.NewGrid(8, 8, 8)
	require.NoError(t, err)
	other := New()
	require.NoError(t, other.Setup(cubicLattice(t), oneSpecies(t, "Na", []m3.Vec{{0, 0, 0}}), g, chem.Gamma()))
	err = other.ReadIndexCache(bytes.NewReader(b.Bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache was built")

	//garbage input
	assert.Error(t, S.ReadIndexCache(strings.NewReader("not a cache")))
}

func TestConcurrentBackendManyClasses(t *testing.T) {
	//a larger grid, exercising the goroutine split with uneven chunks
	g, err := chem.NewGrid(6, 6, 6)
	require.NoError(t, err)
	S := New()
	require.NoError(t, S.Setup(cubicLattice(t), oneSpecies(t, "Na", []m3.Vec{{0, 0, 0}}), g, chem.Gamma()))
	x := randomField(216, 11)
	require.NoError(t, S.Symmetrize(x))
	//the field is now invariant under every mesh operation
	for _, m := range S.MeshMatrices() {
		for i := range x {
			r := S.grid.Coords(i)
			j := S.grid.FullGindex(m.MulIntVec(r))
			if math.Abs(x[i]-x[j]) > 1e-12 {
				t.Fatalf("field not invariant: point %d vs image %d", i, j)
			}
		}
	}
}
