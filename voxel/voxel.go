/*
 * voxel.go, part of gomolara.
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

//Package voxel provides dense regular grids over which scalar fields are
//sampled, in three dimensions or on a two-dimensional cross-section, and
//the sampling itself. Grids are built fresh for every visualization
//request; nothing is cached between calls.
package voxel

import "fmt"

//Grid is a dense, axis-aligned 3D voxel grid. Data holds the sampled
//values in row-major order with z fastest: the value at index (i,j,k)
//lives at Data[(i*N[1]+j)*N[2]+k]. The point of index (i,j,k) is
//Origin + (i,j,k)*Step, in the length unit of the caller (Angstrom for
//wavefunction work).
type Grid struct {
	Origin [3]float64
	Step   [3]float64
	N      [3]int
	Data   []float64
}

//NewGrid returns a zeroed grid with the given origin, per-axis voxel size
//and per-axis voxel counts. Counts must be positive and steps nonzero; a
//single-layer grid is legal (it samples fine, and marches to an empty
//result downstream).
func NewGrid(origin, step [3]float64, n [3]int) (*Grid, error) {
	for a := 0; a < 3; a++ {
		if n[a] <= 0 {
			return nil, fmt.Errorf("voxel: non-positive voxel count %d on axis %d", n[a], a)
		}
		if step[a] == 0 {
			return nil, fmt.Errorf("voxel: zero voxel size on axis %d", a)
		}
	}
	return &Grid{
		Origin: origin,
		Step:   step,
		N:      n,
		Data:   make([]float64, n[0]*n[1]*n[2]),
	}, nil
}

//Idx returns the flat Data index of the voxel (i,j,k).
func (g *Grid) Idx(i, j, k int) int {
	return (i*g.N[1]+j)*g.N[2] + k
}

//At returns the value of the voxel (i,j,k). Panics on out-of-range access,
//like a slice would.
func (g *Grid) At(i, j, k int) float64 {
	return g.Data[g.Idx(i, j, k)]
}

//Set sets the value of the voxel (i,j,k).
func (g *Grid) Set(i, j, k int, v float64) {
	g.Data[g.Idx(i, j, k)] = v
}

//Point returns the spatial position of the voxel (i,j,k).
func (g *Grid) Point(i, j, k int) [3]float64 {
	return [3]float64{
		g.Origin[0] + float64(i)*g.Step[0],
		g.Origin[1] + float64(j)*g.Step[1],
		g.Origin[2] + float64(k)*g.Step[2],
	}
}

//Grid2D is a dense grid over a planar cross-section embedded in 3D space.
//The two step vectors span the plane, so the section can be oriented
//freely. Data is row-major with the second index fastest: the value at
//(i,j) lives at Data[i*N[1]+j].
type Grid2D struct {
	Origin [3]float64
	Step   [2][3]float64
	N      [2]int
	Data   []float64
}

//NewGrid2D returns a zeroed planar grid. Counts must be positive and the
//step vectors must not be zero.
func NewGrid2D(origin [3]float64, step [2][3]float64, n [2]int) (*Grid2D, error) {
	for a := 0; a < 2; a++ {
		if n[a] <= 0 {
			return nil, fmt.Errorf("voxel: non-positive voxel count %d on axis %d", n[a], a)
		}
		if step[a][0] == 0 && step[a][1] == 0 && step[a][2] == 0 {
			return nil, fmt.Errorf("voxel: zero step vector on axis %d", a)
		}
	}
	return &Grid2D{
		Origin: origin,
		Step:   step,
		N:      n,
		Data:   make([]float64, n[0]*n[1]),
	}, nil
}

//Idx returns the flat Data index of the grid point (i,j).
func (g *Grid2D) Idx(i, j int) int {
	return i*g.N[1] + j
}

//At returns the value at the grid point (i,j).
func (g *Grid2D) At(i, j int) float64 {
	return g.Data[g.Idx(i, j)]
}

//Set sets the value at the grid point (i,j).
func (g *Grid2D) Set(i, j int, v float64) {
	g.Data[g.Idx(i, j)] = v
}

//Point returns the spatial position of the grid point (i,j).
func (g *Grid2D) Point(i, j int) [3]float64 {
	fi, fj := float64(i), float64(j)
	return [3]float64{
		g.Origin[0] + fi*g.Step[0][0] + fj*g.Step[1][0],
		g.Origin[1] + fi*g.Step[0][1] + fj*g.Step[1][1],
		g.Origin[2] + fi*g.Step[0][2] + fj*g.Step[1][2],
	}
}
