/*
 * symmetry.go, part of gocrystal
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
	"go.uber.org/zap"
	"golang.org/x/exp/slices"

	chem "github.com/rmera/gocrystal"
	"github.com/rmera/gocrystal/m3"
)

//Symmetries holds the symmetry set of a structure and the tables derived
//from it. Everything is computed once by Setup and read-only afterwards, so
//the accessors and the Symmetrize* methods are safe for concurrent use.
type Symmetries struct {
	o   *Options
	log *zap.SugaredLogger

	lat     *chem.Lattice
	species []*chem.Species
	grid    *chem.GridInfo
	qnums   []chem.QuantumNumber

	sym      []m3.IntMat //symmetry ops in lattice coordinates, identity first
	symMesh  []m3.IntMat //same ops acting on integer grid coordinates
	symKmesh []m3.IntMat //subgroup leaving the k-mesh invariant
	//atomMap[sp][atom][iRot] is the index of the atom that sym[iRot] sends
	//atom of species sp to.
	atomMap [][][]int
	//symmIndex is the flat equivalence-class table: runs of len(sym) grid
	//indices, one run per orbit of the mesh symmetry group.
	symmIndex []int

	exec  Backend
	ready bool
}

//New creates a Symmetries with the given options (or the defaults).
//Setup must be called before anything else.
func New(options ...*Options) *Symmetries {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	S := new(Symmetries)
	S.o = o
	S.log = o.log
	return S
}

//Setup computes or validates the symmetry set of the given structure and
//builds every derived table. It must run before the expensive part of a
//calculation: all inconsistencies between symmetries, grid, k-mesh and
//constraints are detected here, eagerly, and returned as critical errors.
func (S *Symmetries) Setup(lat *chem.Lattice, species []*chem.Species, grid *chem.GridInfo, qnums []chem.QuantumNumber) error {
	S.lat = lat
	S.species = species
	S.grid = grid
	S.qnums = qnums
	S.log = S.o.log //picks up a logger set after New
	S.log.Info("Setting up symmetries")

	switch S.o.mode {
	case Automatic:
		if err := S.calcSymmetries(); err != nil {
			return errDecorate(err, "Setup")
		}
	case Manual:
		if len(S.o.manual) == 0 {
			return Error{"Manual symmetries requested without supplying any symmetry matrix", []string{"Setup"}, true}
		}
		S.sym = append([]m3.IntMat{}, S.o.manual...)
		S.sortSymmetries()
		if err := S.checkManual(); err != nil {
			return errDecorate(err, "Setup")
		}
	default:
		S.sym = []m3.IntMat{m3.Ident()}
	}

	if err := S.checkFFTbox(); err != nil {
		return errDecorate(err, "Setup")
	}
	S.checkKmesh()
	if err := S.initAtomMaps(); err != nil {
		return errDecorate(err, "Setup")
	}
	S.initSymmIndex()

	S.exec = S.o.backend
	if S.exec == nil {
		S.exec = Concurrent{Cpus: S.o.cpus}
	}
	S.ready = true
	return nil
}

//NSym returns the order of the accepted symmetry group.
func (S *Symmetries) NSym() int {
	return len(S.sym)
}

//Matrices returns the accepted symmetry operations, in lattice coordinates,
//with the identity first. The returned slice is a copy.
func (S *Symmetries) Matrices() []m3.IntMat {
	return append([]m3.IntMat{}, S.sym...)
}

//MeshMatrices returns the symmetry operations transformed to act on integer
//grid coordinates, in the same order as Matrices. The returned slice is a
//copy.
func (S *Symmetries) MeshMatrices() []m3.IntMat {
	return append([]m3.IntMat{}, S.symMesh...)
}

//KmeshMatrices returns the subgroup of Matrices that leaves the sampled
//k-point mesh invariant. The returned slice is a copy.
func (S *Symmetries) KmeshMatrices() []m3.IntMat {
	return append([]m3.IntMat{}, S.symKmesh...)
}

//AtomMap returns, for the sp-th species, the a-th atom and the i-th
//symmetry, the index of the atom that operation sends a to.
func (S *Symmetries) AtomMap(sp, a, i int) int {
	return S.atomMap[sp][a][i]
}

//NClasses returns the number of grid-point equivalence classes. It is zero
//when the symmetry group is trivial, in which case no table is built.
func (S *Symmetries) NClasses() int {
	if len(S.sym) <= 1 {
		return 0
	}
	return len(S.symmIndex) / len(S.sym)
}

//KpointsEquivalent reports whether some accepted symmetry operation maps k1
//onto k2 (as wavevectors in reciprocal lattice coordinates). With the None
//mode it always reports false.
func (S *Symmetries) KpointsEquivalent(k1, k2 m3.Vec) bool {
	if S.o.mode == None {
		return false
	}
	for _, m := range S.sym {
		if chem.CircDistSq(m.Transpose().MulVec(k1), k2) < S.o.ktol {
			return true
		}
	}
	return false
}

//sortSymmetries makes sure the identity comes first in the symmetry set,
//the canonical ordering every downstream consumer assumes. A manual set
//missing the identity gets it prepended: the identity is a symmetry of any
//structure, so this never makes the set wrong.
func (S *Symmetries) sortSymmetries() {
	i := slices.IndexFunc(S.sym, m3.IntMat.IsIdent)
	switch {
	case i < 0:
		S.log.Debug("supplied symmetry set did not include the identity, prepending it")
		S.sym = append([]m3.IntMat{m3.Ident()}, S.sym...)
	case i > 0:
		S.sym[0], S.sym[i] = S.sym[i], S.sym[0]
	}
}
