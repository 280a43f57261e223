/*
 * grid.go, part of gocrystal
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

//GridInfo describes the real-space FFT grid: its three dimensions and the
//row-major flat indexing every per-point table in the library uses.
type GridInfo struct {
	S [3]int
}

//NewGrid builds a GridInfo, checking that every dimension is positive.
func NewGrid(s0, s1, s2 int) (*GridInfo, error) {
	if s0 <= 0 || s1 <= 0 || s2 <= 0 {
		return nil, CError{fmt.Sprintf("FFT grid dimensions must be positive, got %d %d %d", s0, s1, s2), []string{"NewGrid"}, true}
	}
	return &GridInfo{S: [3]int{s0, s1, s2}}, nil
}

//Nr returns the total number of real-space grid points.
func (g *GridInfo) Nr() int {
	return g.S[0] * g.S[1] * g.S[2]
}

//FullRindex returns the row-major flat index of the in-range grid point r.
func (g *GridInfo) FullRindex(r m3.IntVec) int {
	return (r[0]*g.S[1]+r[1])*g.S[2] + r[2]
}

//FullGindex returns the row-major flat index of r after folding each
//coordinate into [0, S[i]). Unlike FullRindex it accepts coordinates outside
//the grid, including negatives, as produced by symmetry operations.
func (g *GridInfo) FullGindex(r m3.IntVec) int {
	var w m3.IntVec
	for i := 0; i < 3; i++ {
		w[i] = r[i] % g.S[i]
		if w[i] < 0 {
			w[i] += g.S[i]
		}
	}
	return g.FullRindex(w)
}

//Coords is the inverse of FullRindex: it returns the 3D coordinates of the
//flat index i.
func (g *GridInfo) Coords(i int) m3.IntVec {
	var r m3.IntVec
	r[2] = i % g.S[2]
	i /= g.S[2]
	r[1] = i % g.S[1]
	r[0] = i / g.S[1]
	return r
}
