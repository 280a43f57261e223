/*
 * kpoint.go, part of gocrystal
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

import "github.com/rmera/gocrystal/m3"

//QuantumNumber is one sampled k-point: its wavevector in reciprocal lattice
//coordinates and its sampling weight.
type QuantumNumber struct {
	K      m3.Vec
	Weight float64
}

//Gamma returns the k-point list of a Γ-only calculation.
func Gamma() []QuantumNumber {
	return []QuantumNumber{{K: m3.Vec{0, 0, 0}, Weight: 1.0}}
}

//UniformKmesh returns an unshifted n0 x n1 x n2 uniform k-point mesh with
//equal weights, folded to [-0.5, 0.5).
func UniformKmesh(n0, n1, n2 int) []QuantumNumber {
	n := [3]int{n0, n1, n2}
	w := 1.0 / float64(n0*n1*n2)
	var qnums []QuantumNumber
	for i := 0; i < n[0]; i++ {
		for j := 0; j < n[1]; j++ {
			for k := 0; k < n[2]; k++ {
				kv := m3.Vec{float64(i) / float64(n[0]), float64(j) / float64(n[1]), float64(k) / float64(n[2])}
				for d := 0; d < 3; d++ {
					if kv[d] >= 0.5 {
						kv[d] -= 1.0
					}
				}
				qnums = append(qnums, QuantumNumber{K: kv, Weight: w})
			}
		}
	}
	return qnums
}
