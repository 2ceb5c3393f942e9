/*
 * main.go, part of gomolara.
 *
 * Copyright 2024 The gomolara authors
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

//gomolara samples a molecular orbital of a built-in H2-like test system
//on a voxel grid and extracts its isosurface and an isoline cut, driven
//by a gcfg configuration file:
//
//	gomolara -Surface surface.ini
//	gomolara -Contour contour.ini
//	gomolara -ExampleConfig Surface
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gopkg.in/gcfg.v1"

	molara "github.com/Molara-Lab/gomolara"
	"github.com/Molara-Lab/gomolara/gridio"
	"github.com/Molara-Lab/gomolara/march"
	"github.com/Molara-Lab/gomolara/molplot"
	"github.com/Molara-Lab/gomolara/voxel"
)

type MoleculeConfig struct {
	// Distance between the two centers, in Angstrom.
	Bond float64
	// Orbital index: 0 is the bonding combination, 1 the antibonding one.
	Orbital int
}

type GridConfig struct {
	OriginX, OriginY, OriginZ float64
	StepX, StepY, StepZ       float64
	NX, NY, NZ                int
	Cpus                      int
}

type SurfaceConfig struct {
	Isovalue float64
	GridFile string
}

type ContourConfig struct {
	Isovalue float64
	// Plane offset along z, in Angstrom.
	Offset   float64
	PlotName string
}

type ConfigWrapper struct {
	Molecule MoleculeConfig
	Grid     GridConfig
	Surface  SurfaceConfig
	Contour  ContourConfig
}

func defaultConfig() *ConfigWrapper {
	return &ConfigWrapper{
		Molecule: MoleculeConfig{Bond: 0.74, Orbital: 0},
		Grid: GridConfig{
			OriginX: -3, OriginY: -3, OriginZ: -3,
			StepX: 0.1, StepY: 0.1, StepZ: 0.1,
			NX: 61, NY: 61, NZ: 61,
		},
		Surface: SurfaceConfig{Isovalue: 0.05, GridFile: ""},
		Contour: ContourConfig{Isovalue: 0.05, Offset: 0, PlotName: "contour"},
	}
}

const exampleSurface = `[Molecule]
Bond = 0.74
Orbital = 0

[Grid]
OriginX = -3
OriginY = -3
OriginZ = -3
StepX = 0.1
StepY = 0.1
StepZ = 0.1
NX = 61
NY = 61
NZ = 61
Cpus = 0

[Surface]
Isovalue = 0.05
GridFile = h2.gvx
`

const exampleContour = `[Molecule]
Bond = 0.74
Orbital = 1

[Grid]
OriginX = -3
OriginY = -3
StepX = 0.05
StepY = 0.05
NX = 121
NY = 121

[Contour]
Isovalue = 0.05
Offset = 0
PlotName = h2-contour
`

//testSystem builds a minimal two-center molecule with an STO-3G-like s
//shell on each center, and the chosen symmetric or antisymmetric orbital.
func testSystem(cfg *MoleculeConfig) (*molara.Molecule, *molara.MolecularOrbital, error) {
	exps := []float64{3.42525091, 0.62391373, 0.16885540}
	coeffs := []float64{0.15432897, 0.53532814, 0.44463454}
	newCenter := func(z float64) (*molara.Atom, error) {
		sh, err := molara.NewShell(molara.S, exps, coeffs)
		if err != nil {
			return nil, err
		}
		return &molara.Atom{
			Symbol:   "H",
			Position: [3]float64{0, 0, z},
			Shells:   []*molara.Shell{sh},
		}, nil
	}
	a, err := newCenter(-cfg.Bond / 2)
	if err != nil {
		return nil, nil, err
	}
	b, err := newCenter(cfg.Bond / 2)
	if err != nil {
		return nil, nil, err
	}
	mol, err := molara.NewMolecule([]*molara.Atom{a, b})
	if err != nil {
		return nil, nil, err
	}
	if err := mol.Normalize(molara.NormMolpro); err != nil {
		return nil, nil, err
	}
	c := 1.0
	if cfg.Orbital != 0 {
		c = -1.0
	}
	mo := &molara.MolecularOrbital{Index: cfg.Orbital, Occupation: 2}
	if err := mo.SetCoefficients(mol, []float64{1, c}, molara.OrderCartesian); err != nil {
		return nil, nil, err
	}
	return mol, mo, nil
}

func sampledGrid(cfg *ConfigWrapper) (*voxel.Grid, error) {
	mol, mo, err := testSystem(&cfg.Molecule)
	if err != nil {
		return nil, err
	}
	f, err := mo.Field(mol)
	if err != nil {
		return nil, err
	}
	g, err := voxel.NewGrid(
		[3]float64{cfg.Grid.OriginX, cfg.Grid.OriginY, cfg.Grid.OriginZ},
		[3]float64{cfg.Grid.StepX, cfg.Grid.StepY, cfg.Grid.StepZ},
		[3]int{cfg.Grid.NX, cfg.Grid.NY, cfg.Grid.NZ},
	)
	if err != nil {
		return nil, err
	}
	o := voxel.DefaultOptions()
	if cfg.Grid.Cpus > 0 {
		o.Cpus(cfg.Grid.Cpus)
	}
	voxel.Sample(g, f, o)
	return g, nil
}

func surfaceMain(conf string) {
	cfg := defaultConfig()
	if err := gcfg.ReadFileInto(cfg, conf); err != nil {
		log.Fatal(err.Error())
	}
	g, err := sampledGrid(cfg)
	if err != nil {
		log.Fatal(err.Error())
	}
	mesh, err := march.Cubes(g, cfg.Surface.Isovalue)
	if err != nil {
		log.Fatal(err.Error())
	}
	pos, neg := mesh.Triangles()
	fmt.Printf("isosurface at ±%g: %d positive and %d negative triangles\n",
		cfg.Surface.Isovalue, pos, neg)
	if cfg.Surface.GridFile != "" {
		header := map[string]string{
			"system":  "H2",
			"orbital": fmt.Sprintf("%d", cfg.Molecule.Orbital),
		}
		if err := gridio.Write(cfg.Surface.GridFile, g, header); err != nil {
			log.Fatal(err.Error())
		}
		fmt.Println("sampled grid saved to", cfg.Surface.GridFile)
	}
}

func contourMain(conf string) {
	cfg := defaultConfig()
	if err := gcfg.ReadFileInto(cfg, conf); err != nil {
		log.Fatal(err.Error())
	}
	mol, mo, err := testSystem(&cfg.Molecule)
	if err != nil {
		log.Fatal(err.Error())
	}
	f, err := mo.Field(mol)
	if err != nil {
		log.Fatal(err.Error())
	}
	g, err := voxel.NewGrid2D(
		[3]float64{cfg.Grid.OriginX, cfg.Grid.OriginY, cfg.Contour.Offset},
		[2][3]float64{{cfg.Grid.StepX, 0, 0}, {0, cfg.Grid.StepY, 0}},
		[2]int{cfg.Grid.NX, cfg.Grid.NY},
	)
	if err != nil {
		log.Fatal(err.Error())
	}
	voxel.Sample2D(g, f)
	set, err := march.Squares(g, cfg.Contour.Isovalue)
	if err != nil {
		log.Fatal(err.Error())
	}
	pos, neg := set.Segments()
	fmt.Printf("isolines at ±%g: %d positive and %d negative segments\n",
		cfg.Contour.Isovalue, pos, neg)
	if err := molplot.Isolines(set, [2]int{0, 1}, "MO contour", cfg.Contour.PlotName); err != nil {
		log.Fatal(err.Error())
	}
	fmt.Printf("contour plot saved to %s.png\n", cfg.Contour.PlotName)
}

func main() {
	var surface, contour, exampleConfig string
	flag.StringVar(&surface, "Surface", "",
		"Configuration file for [Surface] mode.")
	flag.StringVar(&contour, "Contour", "",
		"Configuration file for [Contour] mode.")
	flag.StringVar(&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Surface' and 'Contour'.")
	flag.Parse()

	switch {
	case exampleConfig == "Surface":
		fmt.Print(exampleSurface)
	case exampleConfig == "Contour":
		fmt.Print(exampleContour)
	case exampleConfig != "":
		log.Fatalf("Unknown example config type '%s'.", exampleConfig)
	case surface != "":
		surfaceMain(surface)
	case contour != "":
		contourMain(contour)
	default:
		flag.Usage()
		os.Exit(1)
	}
}
