/*
 * dump.go, part of gocrystal
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
	"encoding/binary"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
)

//cache file layout: magic, version, group order, grid dims, table length,
//then the table itself as int32, all little-endian inside a zstd stream.
const (
	cacheMagic   = "GCSY"
	cacheVersion = uint32(1)
)

//DumpMatrices writes a human-readable listing of the accepted symmetry
//matrices, their mesh counterparts and the k-mesh subgroup order to w.
func (S *Symmetries) DumpMatrices(w io.Writer) error {
	if !S.ready {
		return Error{"DumpMatrices called before Setup", []string{"DumpMatrices"}, true}
	}
	_, err := fmt.Fprintf(w, "%d symmetry operations (%d leave the k-mesh invariant)\n", len(S.sym), len(S.symKmesh))
	if err != nil {
		return Error{err.Error(), []string{"DumpMatrices"}, false}
	}
	for i, m := range S.sym {
		_, err = fmt.Fprintf(w, "#%d lattice coordinates:\n%s\nmesh coordinates:\n%s\n", i, m.String(), S.symMesh[i].String())
		if err != nil {
			return Error{err.Error(), []string{"DumpMatrices"}, false}
		}
	}
	return nil
}

//WriteIndexCache writes the equivalence-class table to w, zstd-compressed.
//The table can be large (group order times the grid size) and is fully
//determined by structure, grid and symmetry set, so the cache carries the
//group order and grid dimensions to let ReadIndexCache refuse a stale file.
func (S *Symmetries) WriteIndexCache(w io.Writer) error {
	if !S.ready {
		return Error{"WriteIndexCache called before Setup", []string{"WriteIndexCache"}, true}
	}
	z, err := zstd.NewWriter(w)
	if err != nil {
		return Error{err.Error(), []string{"WriteIndexCache"}, false}
	}
	werr := func() error {
		if _, err := z.Write([]byte(cacheMagic)); err != nil {
			return err
		}
		header := []uint32{cacheVersion, uint32(len(S.sym)),
			uint32(S.grid.S[0]), uint32(S.grid.S[1]), uint32(S.grid.S[2])}
		if err := binary.Write(z, binary.LittleEndian, header); err != nil {
			return err
		}
		if err := binary.Write(z, binary.LittleEndian, int64(len(S.symmIndex))); err != nil {
			return err
		}
		table := make([]int32, len(S.symmIndex))
		for i, v := range S.symmIndex {
			table[i] = int32(v)
		}
		return binary.Write(z, binary.LittleEndian, table)
	}()
	if cerr := z.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		return Error{werr.Error(), []string{"WriteIndexCache"}, false}
	}
	return nil
}

//ReadIndexCache replaces the equivalence-class table with one previously
//written by WriteIndexCache, after checking that it was built for the same
//grid and the same symmetry group order. A mismatch is critical: a stale
//table would silently symmetrize into the wrong subspace.
func (S *Symmetries) ReadIndexCache(r io.Reader) error {
	if !S.ready {
		return Error{"ReadIndexCache called before Setup", []string{"ReadIndexCache"}, true}
	}
	z, err := zstd.NewReader(r)
	if err != nil {
		return Error{err.Error(), []string{"ReadIndexCache"}, false}
	}
	defer z.Close()
	magic := make([]byte, len(cacheMagic))
	if _, err := io.ReadFull(z, magic); err != nil || string(magic) != cacheMagic {
		return Error{"not an equivalence-class cache file", []string{"ReadIndexCache"}, true}
	}
	header := make([]uint32, 5)
	if err := binary.Read(z, binary.LittleEndian, header); err != nil {
		return Error{err.Error(), []string{"ReadIndexCache"}, true}
	}
	if header[0] != cacheVersion {
		return Error{fmt.Sprintf("cache version %d, this library writes version %d", header[0], cacheVersion), []string{"ReadIndexCache"}, true}
	}
	if int(header[1]) != len(S.sym) || int(header[2]) != S.grid.S[0] ||
		int(header[3]) != S.grid.S[1] || int(header[4]) != S.grid.S[2] {
		return Error{fmt.Sprintf("cache was built for group order %d on a %dx%dx%d grid; current setup has order %d on %dx%dx%d", header[1], header[2], header[3], header[4], len(S.sym), S.grid.S[0], S.grid.S[1], S.grid.S[2]), []string{"ReadIndexCache"}, true}
	}
	var n int64
	if err := binary.Read(z, binary.LittleEndian, &n); err != nil {
		return Error{err.Error(), []string{"ReadIndexCache"}, true}
	}
	table := make([]int32, n)
	if err := binary.Read(z, binary.LittleEndian, table); err != nil {
		return Error{err.Error(), []string{"ReadIndexCache"}, true}
	}
	S.symmIndex = make([]int, n)
	for i, v := range table {
		S.symmIndex[i] = int(v)
	}
	return nil
}
