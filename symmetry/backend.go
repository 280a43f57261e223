/*
 * backend.go, part of gocrystal
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
	"sync"
)

//Backend runs the per-class averaging of field symmetrization. It is the
//strategy point for execution resources: the library ships a serial and a
//multi-goroutine CPU backend, selected through Options at runtime; an
//accelerator offload would implement the same interface. Classes are
//disjoint, so implementations may process them in any order and in parallel
//without synchronizing on the field.
type Backend interface {
	SymmetrizeField(x []float64, symmIndex []int, nRot int)
}

//Serial processes every equivalence class on the calling goroutine.
type Serial struct{}

//SymmetrizeField replaces each class run of x with its arithmetic mean.
func (Serial) SymmetrizeField(x []float64, symmIndex []int, nRot int) {
	symmetrizeClasses(x, symmIndex, nRot, 0, len(symmIndex)/nRot)
}

//Concurrent splits the equivalence classes among Cpus goroutines. The
//default backend; each class is touched by exactly one goroutine.
type Concurrent struct {
	Cpus int
}

//SymmetrizeField replaces each class run of x with its arithmetic mean,
//fanning the classes out over the configured number of goroutines.
func (c Concurrent) SymmetrizeField(x []float64, symmIndex []int, nRot int) {
	nClasses := len(symmIndex) / nRot
	cpus := c.Cpus
	if cpus < 1 {
		cpus = runtime.NumCPU()
	}
	if cpus > nClasses {
		cpus = nClasses
	}
	var wg sync.WaitGroup
	for w := 0; w < cpus; w++ {
		iStart := w * nClasses / cpus
		iStop := (w + 1) * nClasses / cpus
		wg.Add(1)
		go func(iStart, iStop int) {
			defer wg.Done()
			symmetrizeClasses(x, symmIndex, nRot, iStart, iStop)
		}(iStart, iStop)
	}
	wg.Wait()
}

//symmetrizeClasses is the worker shared by the backends: it averages the
//classes with indices in [iStart, iStop).
func symmetrizeClasses(x []float64, symmIndex []int, nRot, iStart, iStop int) {
	nrotInv := 1.0 / float64(nRot)
	for i := iStart; i < iStop; i++ {
		var sum float64
		for j := 0; j < nRot; j++ {
			sum += x[symmIndex[nRot*i+j]]
		}
		sum *= nrotInv
		for j := 0; j < nRot; j++ {
			x[symmIndex[nRot*i+j]] = sum
		}
	}
}
