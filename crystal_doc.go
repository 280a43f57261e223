/*
 * crystal_doc.go, part of gocrystal.
 *
 * Copyright 2021 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*Package crystal is the main package of the goCrystal library. It provides the
structural data model of a periodic plane-wave electronic-structure calculation:
the lattice basis, the real-space FFT grid, ionic species with their fractional
positions, and the sampled k-point mesh.


	**goCrystal Capabilities**

    Holds lattice bases and their metric tensors, FFT grid geometry with
	flat row-major indexing, ionic species with per-atom constraint scales,
	and k-point lists with weights.

    Detects the point group and space-group operations of a periodic
	structure, and builds the derived tables (atom maps, grid equivalence
	classes) needed to symmetrize scalar fields and ionic forces (package
	symmetry).

    Renders planar slices of real-space scalar fields (package fieldplot).

The library prioritizes correctness over speed for the one-time setup work,
and concurrency for the per-iteration symmetrization work.
*/
package crystal
