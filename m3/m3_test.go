package m3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntMatProducts(t *testing.T) {
	//4-fold rotation about z
	rz := IntMat{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	assert.Equal(t, -1, IntMat{{-1, 0, 0}, {0, 1, 0}, {0, 0, 1}}.Det())
	assert.Equal(t, 1, rz.Det())
	//rz^4 == identity
	r4 := rz.Mul(rz).Mul(rz).Mul(rz)
	assert.True(t, r4.IsIdent())
	//transpose of a rotation is its inverse
	assert.True(t, rz.Mul(rz.Transpose()).IsIdent())
	v := rz.MulVec(Vec{1, 0, 0})
	assert.InDeltaSlice(t, []float64{0, 1, 0}, v[:], 1e-12)
	iv := rz.MulIntVec(IntVec{2, 1, 3})
	assert.Equal(t, IntVec{-1, 2, 3}, iv)
}

func TestConjugate(t *testing.T) {
	m := IntMat{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	//conjugating with the identity changes nothing
	assert.Equal(t, m, Conjugate(Ident(), m, Ident()))
	t1 := IntMat{{1, 1, 0}, {0, 1, 0}, {0, 0, 1}}
	tinv := IntMat{{1, -1, 0}, {0, 1, 0}, {0, 0, 1}}
	require.True(t, t1.Mul(tinv).IsIdent())
	c := Conjugate(t1, m, tinv)
	//determinant is invariant under similarity transforms
	assert.Equal(t, m.Det(), c.Det())
	assert.Equal(t, m, Conjugate(tinv, c, t1))
}

func TestMatMetricAndNorm(t *testing.T) {
	r := NewMat([]float64{2, 0, 0, 0, 2, 0, 0, 0, 2})
	g := Zeros()
	g.Metric(r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 4.0
			}
			assert.InDelta(t, want, g.At(i, j), 1e-12)
		}
	}
	d := Zeros()
	d.Sub(g, g)
	assert.InDelta(t, 0.0, d.Norm(), 1e-12)
	inv := Zeros()
	require.NoError(t, inv.Inverse(r))
	assert.InDelta(t, 0.5, inv.At(0, 0), 1e-12)
}

func TestMatMulInt(t *testing.T) {
	r := NewMat([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	d := Ident()
	d[1][0] = 1 //adds lattice vector 1 to lattice vector 0 (column convention)
	p := Zeros()
	p.MulInt(r, d)
	assert.InDelta(t, 1.0, p.At(1, 0), 1e-12)
	assert.InDelta(t, 1.0, p.At(1, 1), 1e-12)
}

func TestPanics(t *testing.T) {
	assert.Panics(t, func() { NewMat([]float64{1, 2, 3}) })
	g := Zeros()
	assert.Panics(t, func() { g.Metric(g) })
}
