/*
 * m3.go, part of gocrystal
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

//Package m3 provides 3-vectors and 3x3 matrices in lattice (fractional)
//coordinates, as used by the symmetry machinery. Real matrices wrap a gonum
//Dense so the rest of the library can lean on gonum for products, norms and
//inverses. Integer matrices are plain arrays, as symmetry operations of a
//lattice are small integer matrices acting on column vectors.
package m3

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

/*Note: functions here panic instead of returning errors. They are "fundamental"
 * functions, so anything going wrong in them means the program is way-most likely
 * wrong anyway, and should crash.*/

//Vec is a point in lattice (fractional) coordinates, or a wavevector in
//reciprocal lattice coordinates.
type Vec [3]float64

//IntVec is a point on the integer real-space grid.
type IntVec [3]int

//Add returns v+w.
func (v Vec) Add(w Vec) Vec {
	return Vec{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

//Sub returns v-w.
func (v Vec) Sub(w Vec) Vec {
	return Vec{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

//Scale returns a*v.
func (v Vec) Scale(a float64) Vec {
	return Vec{a * v[0], a * v[1], a * v[2]}
}

//IntMat is an integer 3x3 matrix acting on column vectors in lattice
//coordinates. Symmetry operations of a (reduced) lattice always fit here.
type IntMat [3][3]int

//Ident returns the 3x3 identity.
func Ident() IntMat {
	return IntMat{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

//Mul returns the matrix product m*n.
func (m IntMat) Mul(n IntMat) IntMat {
	var r IntMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return r
}

//MulVec returns m*v, with v a column vector.
func (m IntMat) MulVec(v Vec) Vec {
	var r Vec
	for i := 0; i < 3; i++ {
		r[i] = float64(m[i][0])*v[0] + float64(m[i][1])*v[1] + float64(m[i][2])*v[2]
	}
	return r
}

//MulIntVec returns m*v for an integer grid point v.
func (m IntMat) MulIntVec(v IntVec) IntVec {
	var r IntVec
	for i := 0; i < 3; i++ {
		r[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2]
	}
	return r
}

//Transpose returns the transpose of m.
func (m IntMat) Transpose() IntMat {
	var r IntMat
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

//Equal returns whether m and n are element-wise identical.
func (m IntMat) Equal(n IntMat) bool {
	return m == n
}

//IsIdent returns whether m is the identity matrix.
func (m IntMat) IsIdent() bool {
	return m == Ident()
}

//Det returns the determinant of m. For a valid symmetry operation it is +1
//or -1.
func (m IntMat) Det() int {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

//Dense returns m as a real matrix.
func (m IntMat) Dense() *Mat {
	r := Zeros()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r.Set(i, j, float64(m[i][j]))
		}
	}
	return r
}

//String formats m row per line, matching the diagnostic dumps.
func (m IntMat) String() string {
	return fmt.Sprintf("[ %2d %2d %2d ]\n[ %2d %2d %2d ]\n[ %2d %2d %2d ]",
		m[0][0], m[0][1], m[0][2],
		m[1][0], m[1][1], m[1][2],
		m[2][0], m[2][1], m[2][2])
}

//The main real-matrix container. Must be able to implement any gonum
//interface.
//Mat is a real 3x3 matrix, columns understood as lattice vectors when it
//holds a lattice basis.
type Mat struct {
	*mat.Dense
}

//Mat2Dense returns the underlying gonum matrix of A.
func Mat2Dense(A *Mat) *mat.Dense {
	return A.Dense
}

//Dense2Mat wraps a gonum 3x3 matrix. It panics if A is not 3x3.
func Dense2Mat(A *mat.Dense) *Mat {
	r, c := A.Dims()
	if r != 3 || c != 3 {
		panic(fmt.Sprintf("m3: Dense2Mat needs a 3x3 matrix, got %dx%d", r, c))
	}
	return &Mat{A}
}

//NewMat generates a Mat from the 9 values in data, row-major. It panics if
//data does not hold exactly 9 values.
func NewMat(data []float64) *Mat {
	if len(data) != 9 {
		panic(fmt.Sprintf("m3: NewMat needs 9 values, got %d", len(data)))
	}
	return &Mat{mat.NewDense(3, 3, data)}
}

//Zeros returns a zero-filled Mat.
func Zeros() *Mat {
	return &Mat{mat.NewDense(3, 3, nil)}
}

//Eye returns the identity Mat.
func Eye() *Mat {
	return NewMat([]float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

//Copy returns a deep copy of F.
func (F *Mat) Copy() *Mat {
	r := Zeros()
	r.Dense.Copy(F.Dense)
	return r
}

//Mul puts the matrix product a*b in the receiver.
func (F *Mat) Mul(a, b *Mat) {
	if F == a || F == b {
		tmp := Zeros()
		tmp.Dense.Mul(a.Dense, b.Dense)
		F.Dense.Copy(tmp.Dense)
		return
	}
	F.Dense.Mul(a.Dense, b.Dense)
}

//MulInt puts a*d in the receiver, with d an integer matrix. Used when
//linearly combining lattice vectors with unimodular transforms.
func (F *Mat) MulInt(a *Mat, d IntMat) {
	F.Mul(a, d.Dense())
}

//Metric puts rᵗ·r in the receiver, the metric tensor of the lattice basis r.
func (F *Mat) Metric(r *Mat) {
	if F == r {
		panic("m3: Metric receiver must differ from its argument")
	}
	F.Dense.Mul(r.Dense.T(), r.Dense)
}

//Sub puts a-b in the receiver.
func (F *Mat) Sub(a, b *Mat) {
	F.Dense.Sub(a.Dense, b.Dense)
}

//Norm returns the Frobenius norm of F.
func (F *Mat) Norm() float64 {
	return mat.Norm(F.Dense, 2)
}

//Inverse puts the inverse of a in the receiver. An error is returned if a
//is singular (or near enough for gonum to complain).
func (F *Mat) Inverse(a *Mat) error {
	return F.Dense.Inverse(a.Dense)
}

//MulVec returns F*v, with v a column vector.
func (F *Mat) MulVec(v Vec) Vec {
	var r Vec
	for i := 0; i < 3; i++ {
		r[i] = F.At(i, 0)*v[0] + F.At(i, 1)*v[1] + F.At(i, 2)*v[2]
	}
	return r
}

//Conjugate returns t*m*tinv, the similarity transform used to carry
//symmetries found in a reduced basis back to the original one.
func Conjugate(t, m, tinv IntMat) IntMat {
	return t.Mul(m).Mul(tinv)
}
