/*
 * basis.go, part of gocrystal
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
	"fmt"

	chem "github.com/rmera/gocrystal"
	"github.com/rmera/gocrystal/m3"
)

//calcSymmetries runs the automatic search: point group of the lattice,
//reduction to the operations respected by the atomic basis, and, unless
//disabled, the search for a symmetry center better than the current origin.
func (S *Symmetries) calcSymmetries() error {
	S.log.Info("Searching for point group symmetries")
	symLattice := S.latticeSymmetries()
	S.log.Infof("%d symmetries of the bravais lattice", len(symLattice))

	var rCenter m3.Vec
	S.sym = S.basisReduce(symLattice, rCenter)
	S.log.Infof("reduced to %d symmetries with basis", len(S.sym))
	S.sortSymmetries()

	if S.o.printMatrices {
		for _, m := range S.sym {
			S.log.Info("\n" + m.String())
		}
	}

	if !S.o.moveAtoms {
		return nil
	}
	//Check atom positions and midpoints of atom pairs, pooled across all
	//species, as candidate symmetry centers.
	var pool []m3.Vec
	for _, sp := range S.species {
		pool = append(pool, sp.Positions...)
	}
	var candidates []m3.Vec
	for n1 := range pool {
		candidates = append(candidates, pool[n1])
		for n2 := 0; n2 < n1; n2++ {
			candidates = append(candidates, pool[n1].Add(pool[n2]).Scale(0.5))
		}
	}
	origSize := len(S.sym)
	for _, proposed := range candidates {
		symTemp := S.basisReduce(symLattice, proposed)
		if len(symTemp) > len(S.sym) {
			rCenter = proposed
			S.sym = symTemp
		}
	}
	if len(S.sym) > origSize {
		//Report the improved center and refuse to continue. The atoms are
		//not translated here: downstream state (initial wavefunctions,
		//restart files) may be keyed to the original coordinates, so the
		//caller has to apply the shift and set up again.
		S.log.Warnf("translating atoms by [ %g %g %g ] (lattice coordinates) increases the symmetry count from %d to %d; translated positions follow",
			-rCenter[0], -rCenter[1], -rCenter[2], origSize, len(S.sym))
		for _, sp := range S.species {
			for _, pos := range sp.Positions {
				p := pos.Sub(rCenter)
				S.log.Warnf("%-4s %12.8f %12.8f %12.8f", sp.Name, p[0], p[1], p[2])
			}
		}
		return Error{fmt.Sprintf("A better symmetry center exists: translating all atoms by [ %g %g %g ] raises the symmetry count from %d to %d. Apply the translation and set up again, or disable the center search with MoveAtoms(false)",
			-rCenter[0], -rCenter[1], -rCenter[2], origSize, len(S.sym)), []string{"calcSymmetries"}, true}
	}
	return nil
}

//basisReduce filters the lattice symmetries to those under which every atom
//of every species maps, within tolerance and around the given center, onto
//an atom of the same species. The first atom without an image rejects the
//candidate.
func (S *Symmetries) basisReduce(symLattice []m3.IntMat, offset m3.Vec) []m3.IntMat {
	var symBasis []m3.IntMat
	for _, m := range symLattice {
		symmetric := true
	atoms:
		for _, sp := range S.species {
			for _, pos1 := range sp.Positions {
				mapped := offset.Add(m.MulVec(pos1.Sub(offset)))
				found := false
				for _, pos2 := range sp.Positions {
					if chem.CircDistSq(mapped, pos2) < S.o.tol {
						found = true
						break
					}
				}
				if !found {
					symmetric = false
					break atoms
				}
			}
		}
		if symmetric {
			symBasis = append(symBasis, m)
		}
	}
	return symBasis
}

//checkManual verifies that the manually supplied symmetry set maps the
//atomic basis onto itself. Unlike the automatic search there is nothing to
//fall back to, so any miss is fatal.
func (S *Symmetries) checkManual() error {
	S.log.Info("Checking manually specified symmetry matrices")
	for i, m := range S.sym {
		for _, sp := range S.species {
			for _, pos1 := range sp.Positions {
				found := false
				mapped := m.MulVec(pos1)
				for _, pos2 := range sp.Positions {
					if chem.CircDistSq(mapped, pos2) < S.o.tol {
						found = true
						break
					}
				}
				if !found {
					return Error{fmt.Sprintf("Manually specified symmetry matrix %d does not agree with the atomic positions:\n%s", i, m.String()), []string{"checkManual"}, true}
				}
			}
		}
	}
	return nil
}
