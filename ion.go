/*
 * ion.go, part of gocrystal
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
	"fmt"

	"github.com/rmera/gocrystal/m3"
)

//Species is one ionic species: its name and the fractional positions of its
//atoms, together with the per-atom move scale, the factor applied to ionic
//displacements during relaxation (0 freezes an atom). Positions are
//immutable for the lifetime of a calculation, except for the single
//whole-cell translation a caller may apply after the symmetry search
//suggests a better origin (see package symmetry).
type Species struct {
	Name      string
	Positions []m3.Vec
	MoveScale []float64
}

//NewSpecies builds a Species. If movescale is not given, every atom gets a
//move scale of 1.
func NewSpecies(name string, positions []m3.Vec, movescale ...[]float64) (*Species, error) {
	sp := new(Species)
	sp.Name = name
	sp.Positions = make([]m3.Vec, len(positions))
	copy(sp.Positions, positions)
	sp.MoveScale = make([]float64, len(positions))
	if len(movescale) > 0 && movescale[0] != nil {
		if len(movescale[0]) != len(positions) {
			return nil, CError{fmt.Sprintf("Species %s: %d move scales given for %d atoms", name, len(movescale[0]), len(positions)), []string{"NewSpecies"}, true}
		}
		copy(sp.MoveScale, movescale[0])
	} else {
		for i := range sp.MoveScale {
			sp.MoveScale[i] = 1.0
		}
	}
	return sp, nil
}

//NAtoms returns the number of atoms of the species.
func (sp *Species) NAtoms() int {
	return len(sp.Positions)
}

//Translate displaces every atom of the species by d, in lattice coordinates.
//It is meant for the one-time origin shift after a better symmetry center
//has been reported, not for general geometry manipulation.
func (sp *Species) Translate(d m3.Vec) {
	for i := range sp.Positions {
		sp.Positions[i] = sp.Positions[i].Add(d)
	}
}
