/*
 * fieldplot.go, part of gocrystal
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

//Package fieldplot renders planar slices of real-space scalar fields as
//heatmaps, mostly as a quick visual check that a field respects the detected
//symmetry (plot a slice before and after symmetrizing and compare).
package fieldplot

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	chem "github.com/rmera/gocrystal"
	"github.com/rmera/gocrystal/m3"
)

//zslice adapts one constant-z plane of a scalar field to plotter.GridXYZ.
type zslice struct {
	field []float64
	grid  *chem.GridInfo
	iz    int
}

func (s zslice) Dims() (int, int) { return s.grid.S[0], s.grid.S[1] }
func (s zslice) X(c int) float64  { return float64(c) }
func (s zslice) Y(r int) float64  { return float64(r) }
func (s zslice) Z(c, r int) float64 {
	return s.field[s.grid.FullRindex(m3.IntVec{c, r, s.iz})]
}

//ZSlice builds a heatmap of the iz-th constant-z plane of field, which must
//hold one value per point of grid, in the library's row-major order.
func ZSlice(field []float64, grid *chem.GridInfo, iz int, title string) (*plot.Plot, error) {
	if len(field) != grid.Nr() {
		return nil, chem.NewError(fmt.Sprintf("field has %d values but the grid has %d points", len(field), grid.Nr()), true, "ZSlice")
	}
	if iz < 0 || iz >= grid.S[2] {
		return nil, chem.NewError(fmt.Sprintf("slice index %d outside grid of depth %d", iz, grid.S[2]), true, "ZSlice")
	}
	h := plotter.NewHeatMap(zslice{field, grid, iz}, palette.Heat(16, 1))
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "grid x"
	p.Y.Label.Text = "grid y"
	p.Add(h)
	return p, nil
}

//SavePNG writes the plot to a PNG file with a fixed 12cm canvas.
func SavePNG(p *plot.Plot, filename string) error {
	if err := p.Save(12*vg.Centimeter, 12*vg.Centimeter, filename); err != nil {
		return chem.NewError(err.Error(), false, "SavePNG")
	}
	return nil
}
