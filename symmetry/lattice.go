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

package symmetry

import "github.com/rmera/gocrystal/m3"

//nCandidates is 3^9, all integer 3x3 matrices with entries in {-1,0,1}.
//Symmetry operations of a reduced lattice basis always have entries in that
//range, which is what makes the exhaustive search below complete.
const nCandidates = 19683

//latticeSymmetries returns the point group of the bare lattice: every
//integer matrix that leaves the metric tensor invariant. The basis is first
//reduced to a minimal-norm equivalent set so the candidate entries can be
//restricted to {-1,0,1}; symmetries found in the reduced basis are carried
//back to the original one with the accumulated transmission matrix.
func (S *Symmetries) latticeSymmetries() []m3.IntMat {
	R := S.lat.R()
	Rreduced, transmission, invTransmission := reduceBasis(R, S.o.tol)

	metric := m3.Zeros()
	metric.Metric(Rreduced)
	var symLattice []m3.IntMat
	var m m3.IntMat
	for c := 0; c < nCandidates; c++ {
		n := c
		for e := 0; e < 9; e++ {
			m[e/3][e%3] = n%3 - 1
			n /= 3
		}
		if metricInvariant(metric, m, S.o.tol) {
			symLattice = append(symLattice, m)
		}
	}

	//If the reduction was non-trivial, transform the symmetries back.
	diff := m3.Zeros()
	diff.Sub(Rreduced, R)
	if diff.Norm() > S.o.tol*Rreduced.Norm() {
		S.log.Debugw("lattice basis was reduced before the point-group search",
			"transmission", transmission.String())
		for i := range symLattice {
			symLattice[i] = m3.Conjugate(transmission, symLattice[i], invTransmission)
		}
	}
	return symLattice
}

//reduceBasis linearly combines lattice vectors until the Frobenius norm of
//the basis stops decreasing, trying one each of the other two vectors added
//to or subtracted from each vector in turn. Only strict decreases beyond tol
//are taken, so the loop terminates: the norm is bounded below and decreases
//at every accepted move. The result is a local fixpoint, not necessarily the
//global minimum, which is enough for the point-group entry bound to hold.
//Returns the reduced basis plus the accumulated unimodular transmission
//matrix and its inverse, so that Rreduced = R·transmission.
func reduceBasis(R *m3.Mat, tol float64) (*m3.Mat, m3.IntMat, m3.IntMat) {
	Rreduced := R.Copy()
	transmission := m3.Ident()
	invTransmission := m3.Ident()
	proposed := m3.Zeros()
	for {
		changed := false
		for k1 := 0; k1 < 3; k1++ {
			k2 := (k1 + 1) % 3
			k3 := (k1 + 2) % 3
			for i := -1; i <= 1; i++ {
				for j := -1; j <= 1; j++ {
					//add/subtract up to one each of the k2'th and k3'th
					//lattice vectors to the k1'th one
					d := m3.Ident()
					dInv := m3.Ident()
					d[k2][k1] = i
					d[k3][k1] = j
					dInv[k2][k1] = -i
					dInv[k3][k1] = -j

					proposed.MulInt(Rreduced, d)
					if proposed.Norm() < Rreduced.Norm()-tol {
						changed = true
						Rreduced.Dense.Copy(proposed.Dense)
						transmission = transmission.Mul(d)
						invTransmission = dInv.Mul(invTransmission)
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return Rreduced, transmission, invTransmission
}

//metricInvariant reports whether ‖metric − mᵗ·metric·m‖ < tol, i.e. whether
//m preserves every length and angle of the lattice.
func metricInvariant(metric *m3.Mat, m m3.IntMat, tol float64) bool {
	md := m.Dense()
	left := m3.Zeros()
	left.Dense.Mul(md.Dense.T(), metric.Dense)
	full := m3.Zeros()
	full.Mul(left, md)
	diff := m3.Zeros()
	diff.Sub(metric, full)
	return diff.Norm() < tol
}
