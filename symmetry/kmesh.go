/*
 * kmesh.go, part of gocrystal
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
	"math"

	chem "github.com/rmera/gocrystal"
)

//checkKmesh finds the subgroup of the accepted symmetries that leaves the
//sampled k-point mesh, weights included, invariant. A mesh less symmetric
//than the basis is legal but suspicious, so the condition only warns: the
//calculation proceeds with the full symmetry set, effectively sampling a
//symmetrized superset of the specified mesh.
func (S *Symmetries) checkKmesh() {
	S.symKmesh = S.symKmesh[:0]
	for _, m := range S.sym {
		mt := m.Transpose()
		symmetric := true
		for _, q1 := range S.qnums {
			found := false
			mapped := mt.MulVec(q1.K)
			for _, q2 := range S.qnums {
				if chem.CircDistSq(mapped, q2.K) < S.o.ktol &&
					math.Abs(q1.Weight-q2.Weight) < S.o.ktol {
					found = true
					break
				}
			}
			if !found {
				symmetric = false
				break
			}
		}
		if symmetric {
			S.symKmesh = append(S.symKmesh, m)
		}
	}
	if len(S.symKmesh) < len(S.sym) {
		S.log.Warnf("k-mesh symmetries are a subgroup of size %d (full group: %d); the effectively sampled k-mesh is a superset of the specified one, and results need not match a run with symmetries turned off", len(S.symKmesh), len(S.sym))
		if S.o.printMatrices {
			for _, m := range S.symKmesh {
				S.log.Info("\n" + m.String())
			}
		}
	}
}
