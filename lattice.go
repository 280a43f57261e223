/*
 * lattice.go, part of gocrystal
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
	"math"

	"github.com/rmera/gocrystal/m3"
)

//Lattice holds the real-space lattice basis R, columns being the lattice
//vectors, plus its cached metric tensor. It is immutable once built: every
//function taking a Lattice treats it as read-only.
type Lattice struct {
	r      *m3.Mat
	metric *m3.Mat
}

//NewLattice builds a Lattice from its basis matrix, columns being lattice
//vectors. The basis is copied, so the caller keeps ownership of r.
func NewLattice(r *m3.Mat) (*Lattice, error) {
	L := new(Lattice)
	L.r = r.Copy()
	L.metric = m3.Zeros()
	L.metric.Metric(L.r)
	inv := m3.Zeros()
	if err := inv.Inverse(L.r); err != nil {
		return nil, CError{"Singular lattice basis: lattice vectors are linearly dependent", []string{"NewLattice"}, true}
	}
	return L, nil
}

//R returns a copy of the lattice basis.
func (L *Lattice) R() *m3.Mat {
	return L.r.Copy()
}

//Metric returns a copy of the metric tensor Rᵗ·R.
func (L *Lattice) Metric() *m3.Mat {
	return L.metric.Copy()
}

//Volume returns the unit cell volume, |det R|.
func (L *Lattice) Volume() float64 {
	return math.Abs(mat3Det(L.r))
}

func mat3Det(a *m3.Mat) float64 {
	return a.At(0, 0)*(a.At(1, 1)*a.At(2, 2)-a.At(1, 2)*a.At(2, 1)) -
		a.At(0, 1)*(a.At(1, 0)*a.At(2, 2)-a.At(1, 2)*a.At(2, 0)) +
		a.At(0, 2)*(a.At(1, 0)*a.At(2, 1)-a.At(1, 1)*a.At(2, 0))
}

//CircDistSq returns the squared distance between the fractional coordinates
//a and b under the minimum-image convention: each component difference is
//folded to [-0.5, 0.5) before squaring. This is the "same position"
//criterion used throughout the symmetry search.
func CircDistSq(a, b m3.Vec) float64 {
	var s float64
	for i := 0; i < 3; i++ {
		d := a[i] - b[i]
		d -= math.Floor(d + 0.5)
		s += d * d
	}
	return s
}
