/*
 * main.go, part of gocrystal
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

//symm reads a structure description and reports the symmetries goCrystal
//detects in it: group order, the matrices in lattice and mesh coordinates,
//and the k-mesh subgroup. It is a thin external collaborator around package
//symmetry, useful to validate a structure before a full calculation.
//
//Example structure file:
//
//	lattice:          # lattice vectors, one per line
//	  - [1, 0, 0]
//	  - [0, 1, 0]
//	  - [0, 0, 1]
//	grid: [4, 4, 4]
//	species:
//	  - name: Fe
//	    positions: [[0, 0, 0], [0.5, 0.5, 0.5]]
//	    movescale: [1, 1]   # optional
//	kpoints:              # optional, Γ-only if absent
//	  - k: [0, 0, 0]
//	    weight: 1
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	chem "github.com/rmera/gocrystal"
	"github.com/rmera/gocrystal/m3"
	"github.com/rmera/gocrystal/symmetry"
)

//structureFile is the YAML schema of the structure description.
type structureFile struct {
	Lattice [3][3]float64 `yaml:"lattice"`
	Grid    [3]int        `yaml:"grid"`
	Species []struct {
		Name      string       `yaml:"name"`
		Positions [][3]float64 `yaml:"positions"`
		MoveScale []float64    `yaml:"movescale"`
	} `yaml:"species"`
	Kpoints []struct {
		K      [3]float64 `yaml:"k"`
		Weight float64    `yaml:"weight"`
	} `yaml:"kpoints"`
}

var validModes = []string{"auto", "manual", "none"}

func main() {
	root := &cobra.Command{
		Use:   "symm structure.yaml",
		Short: "detect and report the crystal symmetries of a structure",
		Args:  cobra.ExactArgs(1),
		RunE:  run,
	}
	root.Flags().String("mode", "auto", "symmetry mode: auto, manual or none")
	root.Flags().Bool("move-atoms", true, "search for a better symmetry center")
	root.Flags().Bool("print-matrices", false, "trace matrices and atom maps while searching")
	root.Flags().Float64("tol", 0, "override the position/matrix tolerance")
	root.Flags().String("cache", "", "write the equivalence-class table to this file, zstd-compressed")
	root.Flags().BoolP("verbose", "v", false, "log search progress to stderr")
	viper.SetEnvPrefix("SYMM")
	viper.AutomaticEnv()
	if err := viper.BindPFlags(root.Flags()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	mode := viper.GetString("mode")
	if !slices.Contains(validModes, mode) {
		return fmt.Errorf("unknown mode %q, want one of %v", mode, validModes)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	var sf structureFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	lat, species, grid, qnums, err := buildStructure(&sf)
	if err != nil {
		return err
	}

	o := symmetry.DefaultOptions()
	switch mode {
	case "manual":
		//manual matrices come from a future flag; for now manual mode is
		//only reachable programmatically, so refuse it here
		return fmt.Errorf("manual mode is not supported by this tool")
	case "none":
		o.Mode(symmetry.None)
	}
	o.MoveAtoms(viper.GetBool("move-atoms"))
	o.PrintMatrices(viper.GetBool("print-matrices"))
	if tol := viper.GetFloat64("tol"); tol > 0 {
		o.Tol(tol)
	}
	if viper.GetBool("verbose") {
		zlog, err := zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer zlog.Sync()
		o.Logger(zlog.Sugar())
	}

	S := symmetry.New(o)
	if err := S.Setup(lat, species, grid, qnums); err != nil {
		return err
	}
	if err := S.DumpMatrices(os.Stdout); err != nil {
		return err
	}

	if cache := viper.GetString("cache"); cache != "" {
		f, err := os.Create(cache)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := S.WriteIndexCache(f); err != nil {
			return err
		}
		fmt.Printf("equivalence-class table written to %s\n", cache)
	}
	return nil
}

func buildStructure(sf *structureFile) (*chem.Lattice, []*chem.Species, *chem.GridInfo, []chem.QuantumNumber, error) {
	r := m3.Zeros()
	for j, vec := range sf.Lattice {
		//lattice vectors are the columns of R
		for i := 0; i < 3; i++ {
			r.Set(i, j, vec[i])
		}
	}
	lat, err := chem.NewLattice(r)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	grid, err := chem.NewGrid(sf.Grid[0], sf.Grid[1], sf.Grid[2])
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if len(sf.Species) == 0 {
		return nil, nil, nil, nil, fmt.Errorf("structure file declares no species")
	}
	var species []*chem.Species
	for _, s := range sf.Species {
		pos := make([]m3.Vec, len(s.Positions))
		for i, p := range s.Positions {
			pos[i] = m3.Vec(p)
		}
		sp, err := chem.NewSpecies(s.Name, pos, s.MoveScale)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		species = append(species, sp)
	}
	qnums := chem.Gamma()
	if len(sf.Kpoints) > 0 {
		qnums = qnums[:0]
		for _, q := range sf.Kpoints {
			qnums = append(qnums, chem.QuantumNumber{K: m3.Vec(q.K), Weight: q.Weight})
		}
	}
	return lat, species, grid, qnums, nil
}
