/*
 * symmetrize.go, part of gocrystal
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

	"github.com/rmera/gocrystal/m3"
)

//Symmetrize projects the real-space scalar field x, in place, onto the
//symmetric subspace: every grid point takes the mean of its equivalence
//class. The operation is idempotent, symmetrizing twice changes nothing.
//x must hold one value per grid point in row-major order.
func (S *Symmetries) Symmetrize(x []float64) error {
	if !S.ready {
		return Error{"Symmetrize called before Setup", []string{"Symmetrize"}, true}
	}
	if len(x) != S.grid.Nr() {
		return Error{fmt.Sprintf("field has %d values but the grid has %d points", len(x), S.grid.Nr()), []string{"Symmetrize"}, true}
	}
	if len(S.sym) == 1 {
		return nil
	}
	S.exec.SymmetrizeField(x, S.symmIndex, len(S.sym))
	return nil
}

//SymmetrizeForces symmetrizes the ionic forces f, in place. f[sp][atom] is
//the force covector on an atom in lattice coordinates; each atom receives
//the average, over all symmetry operations, of the transpose-transformed
//force on its symmetry image. Idempotent like Symmetrize.
func (S *Symmetries) SymmetrizeForces(f [][]m3.Vec) error {
	if !S.ready {
		return Error{"SymmetrizeForces called before Setup", []string{"SymmetrizeForces"}, true}
	}
	if len(f) != len(S.species) {
		return Error{fmt.Sprintf("forces for %d species given, structure has %d", len(f), len(S.species)), []string{"SymmetrizeForces"}, true}
	}
	for sp := range f {
		if len(f[sp]) != S.species[sp].NAtoms() {
			return Error{fmt.Sprintf("species %s: forces for %d atoms given, species has %d", S.species[sp].Name, len(f[sp]), S.species[sp].NAtoms()), []string{"SymmetrizeForces"}, true}
		}
	}
	if len(S.sym) <= 1 {
		return nil
	}
	nrotInv := 1.0 / float64(len(S.sym))
	for sp := range f {
		temp := make([]m3.Vec, len(f[sp]))
		for atom := range f[sp] {
			for iRot, m := range S.sym {
				temp[atom] = temp[atom].Add(m.Transpose().MulVec(f[sp][S.atomMap[sp][atom][iRot]]))
			}
		}
		for atom := range f[sp] {
			f[sp][atom] = temp[atom].Scale(nrotInv)
		}
	}
	return nil
}
