/*
 * atommap.go, part of gocrystal
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
	"strings"

	chem "github.com/rmera/gocrystal"
)

//initAtomMaps records, for every species, atom and symmetry operation, the
//index of the atom the operation maps it to. Since the symmetry set was
//accepted by basisReduce (or validated by checkManual), an image always
//exists; atoms related by symmetry must also share their move-scale
//constraint, and a mismatch there means the user's constraints contradict
//the claimed symmetry, which is fatal.
func (S *Symmetries) initAtomMaps() error {
	if len(S.sym) == 1 {
		return nil
	}
	if S.o.printMatrices {
		S.log.Info("Mapping of atoms according to symmetries:")
	}
	S.atomMap = make([][][]int, len(S.species))
	for sp, spc := range S.species {
		S.atomMap[sp] = make([][]int, spc.NAtoms())
		for at1, pos1 := range spc.Positions {
			S.atomMap[sp][at1] = make([]int, len(S.sym))
			for iRot, m := range S.sym {
				mapped := m.MulVec(pos1)
				for at2, pos2 := range spc.Positions {
					if chem.CircDistSq(mapped, pos2) < S.o.tol {
						S.atomMap[sp][at1][iRot] = at2
						if spc.MoveScale[at1] != spc.MoveScale[at2] {
							return Error{fmt.Sprintf("Species %s atoms %d and %d are related by symmetry but have different move scale factors %f != %f", spc.Name, at1, at2, spc.MoveScale[at1], spc.MoveScale[at2]), []string{"initAtomMaps"}, true}
						}
					}
				}
			}
			if S.o.printMatrices {
				b := new(strings.Builder)
				fmt.Fprintf(b, "%s %3d:", spc.Name, at1)
				for _, at2 := range S.atomMap[sp][at1] {
					fmt.Fprintf(b, " %3d", at2)
				}
				S.log.Info(b.String())
			}
		}
	}
	return nil
}
