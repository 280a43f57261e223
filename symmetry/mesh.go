/*
 * mesh.go, part of gocrystal
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

//checkFFTbox derives, for every accepted symmetry operation, the matrix
//acting on integer grid coordinates: Diag(S)·m with column j divided by
//S[j]. Every entry of the result must be an exact integer, otherwise the
//grid cannot represent the operation and the calculation is malformed: the
//FFT-based operators downstream assume symmetry-consistent grids, so this is
//a hard precondition, not a recoverable condition.
func (S *Symmetries) checkFFTbox() error {
	s := S.grid.S
	S.symMesh = make([]m3.IntMat, len(S.sym))
	for iRot, m := range S.sym {
		var mesh m3.IntMat
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				num := s[i] * m[i][j]
				if num%s[j] != 0 {
					return Error{fmt.Sprintf("FFT grid %dx%dx%d is not commensurate with symmetry matrix %d:\n%s\nchoose grid dimensions that respect the symmetry, or reduce the symmetry mode", s[0], s[1], s[2], iRot, m.String()), []string{"checkFFTbox"}, true}
				}
				mesh[i][j] = num / s[j]
			}
		}
		S.symMesh[iRot] = mesh
	}
	return nil
}

//initSymmIndex partitions all grid points into orbits of the mesh symmetry
//group. The flat table holds one run of len(sym) grid indices per orbit;
//points whose stabilizer is non-trivial repeat inside their run, keeping
//every run the same length so consumers can index it without bookkeeping.
//Each grid point belongs to exactly one run. The scan is sequential: orbit
//membership is discovered in data-dependent order through the done markers,
//which is not worth splitting across goroutines for a one-time setup pass.
func (S *Symmetries) initSymmIndex() {
	if len(S.sym) == 1 {
		return
	}
	nr := S.grid.Nr()
	symmIndex := make([]int, 0, nr)
	done := make([]bool, nr)
	var r m3.IntVec
	for r[0] = 0; r[0] < S.grid.S[0]; r[0]++ {
		for r[1] = 0; r[1] < S.grid.S[1]; r[1]++ {
			for r[2] = 0; r[2] < S.grid.S[2]; r[2]++ {
				if done[S.grid.FullRindex(r)] {
					continue
				}
				for _, m := range S.symMesh {
					index2 := S.grid.FullGindex(m.MulIntVec(r))
					symmIndex = append(symmIndex, index2)
					done[index2] = true
				}
			}
		}
	}
	S.symmIndex = symmIndex
}
