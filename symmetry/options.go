/*
 * options.go, part of gocrystal
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
	"runtime"

	"github.com/rmera/gocrystal/m3"
	"go.uber.org/zap"
)

//Mode selects how the symmetry set is obtained.
type Mode int

const (
	//Automatic searches lattice and basis symmetries from the structure.
	Automatic Mode = iota
	//Manual takes the matrices supplied with Options.Manual and only
	//validates them against the atomic positions.
	Manual
	//None uses the identity as the only symmetry operation.
	None
)

const (
	//minimum squared circular distance for two fractional positions or
	//matrices to count as distinct
	defaultSymmTol = 1e-4
	//same, for k-points and their weights
	defaultKptTol = 1e-8
)

//Options holds the settings of a symmetry search.
type Options struct {
	mode          Mode
	tol           float64
	ktol          float64
	moveAtoms     bool
	printMatrices bool
	cpus          int
	manual        []m3.IntMat
	backend       Backend
	log           *zap.SugaredLogger
}

//DefaultOptions returns an Options with the default settings: automatic
//search, the standard tolerances, symmetry-center search enabled, and a
//concurrent symmetrization backend using all logical CPUs.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.mode = Automatic
	ret.tol = defaultSymmTol
	ret.ktol = defaultKptTol
	ret.moveAtoms = true
	ret.printMatrices = false
	ret.cpus = runtime.NumCPU()
	ret.backend = nil //resolved against cpus at Setup
	ret.log = zap.NewNop().Sugar()
	return ret
}

//Returns the current mode and sets it, if given.
func (r *Options) Mode(mode ...Mode) Mode {
	ret := r.mode
	if len(mode) > 0 {
		r.mode = mode[0]
	}
	return ret
}

//Returns the position/matrix tolerance and sets it, if a valid (positive)
//value is given.
func (r *Options) Tol(tol ...float64) float64 {
	ret := r.tol
	if len(tol) > 0 && tol[0] > 0 {
		r.tol = tol[0]
	}
	return ret
}

//Returns the k-point tolerance and sets it, if a valid value is given.
func (r *Options) KTol(ktol ...float64) float64 {
	ret := r.ktol
	if len(ktol) > 0 && ktol[0] > 0 {
		r.ktol = ktol[0]
	}
	return ret
}

//Returns whether the search also looks for a better symmetry center among
//atom positions and pair midpoints, and sets it, if given. Finding one is a
//fatal condition: the caller must translate the structure and re-run.
func (r *Options) MoveAtoms(move ...bool) bool {
	ret := r.moveAtoms
	if len(move) > 0 {
		r.moveAtoms = move[0]
	}
	return ret
}

//Returns whether matrices and atom maps are traced through the logger during
//setup, and sets it, if given.
func (r *Options) PrintMatrices(print ...bool) bool {
	ret := r.printMatrices
	if len(print) > 0 {
		r.printMatrices = print[0]
	}
	return ret
}

//Returns the number of goroutines used by the concurrent symmetrization
//backend and sets it, if a valid value is given.
func (r *Options) Cpus(cpus ...int) int {
	ret := r.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		r.cpus = cpus[0]
	}
	return ret
}

//Returns the manually supplied symmetry matrices and sets them, if given.
//Only meaningful together with the Manual mode.
func (r *Options) Manual(matrices ...[]m3.IntMat) []m3.IntMat {
	ret := r.manual
	if len(matrices) > 0 {
		r.manual = matrices[0]
	}
	return ret
}

//Returns the symmetrization backend and sets it, if given. The default (nil)
//resolves to a Concurrent backend over Cpus() goroutines when Setup runs.
func (r *Options) Exec(backend ...Backend) Backend {
	ret := r.backend
	if len(backend) > 0 {
		r.backend = backend[0]
	}
	return ret
}

//Returns the logger used for progress and warnings and sets it, if a
//non-nil one is given. The default logger discards everything.
func (r *Options) Logger(log ...*zap.SugaredLogger) *zap.SugaredLogger {
	ret := r.log
	if len(log) > 0 && log[0] != nil {
		r.log = log[0]
	}
	return ret
}
