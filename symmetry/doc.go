/*
 * doc.go, part of gocrystal
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

/*Package symmetry detects the crystal symmetries of a periodic structure and
builds the tables needed to enforce them on computed quantities.

The search runs once, during setup: the lattice basis is reduced to a
minimal-norm equivalent set, the point group of the reduced metric is found by
exhaustive enumeration of small integer matrices, and the point group is then
filtered to the operations under which the atomic basis maps onto itself,
optionally around a discovered symmetry center. The accepted operations are
validated against the FFT grid (which must be commensurate, a hard
precondition) and against the k-point mesh (which may be less symmetric, a
warning). From the accepted operations the package derives, and caches for the
rest of the calculation, the per-operation atom maps and the partition of all
grid points into symmetry equivalence classes.

Everything computed by Setup is read-only afterwards, so the symmetrization
entry points may be called concurrently.

Symmetry detection based on the approach of Nikolaj Moll (1999).
*/
package symmetry
