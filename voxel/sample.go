/*
 * sample.go, part of gomolara.
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

package voxel

import "runtime"

//Field is a scalar field over 3D space. A molecular-orbital evaluator
//bound to one orbital is the typical value; any pure function works. Field
//implementations must be safe for concurrent calls, which pure functions
//are by construction.
type Field func(p [3]float64) float64

//Options contains the options for sampling. Only the number of gorutines
//for the concurrent fill, for now.
type Options struct {
	cpus int
}

//DefaultOptions returns the default sampling options.
func DefaultOptions() *Options {
	ret := new(Options)
	ret.cpus = runtime.NumCPU()
	return ret
}

//Cpus returns the current value of the cpus option (the number of
//gorutines used for the concurrent fill) and sets it, if a valid value is
//given.
func (o *Options) Cpus(cpus ...int) int {
	ret := o.cpus
	if len(cpus) > 0 && cpus[0] > 0 {
		o.cpus = cpus[0]
	}
	return ret
}

//Sample fills the grid with the values of f at every voxel position. This
//is the cost center of the whole pipeline, O(voxels * shells * primitives)
//for wavefunction fields, so the constant-i slabs are farmed out to worker
//gorutines; each worker writes a disjoint range of g.Data, so the result
//is identical to a serial fill.
func Sample(g *Grid, f Field, options ...*Options) {
	var o *Options
	if len(options) > 0 && options[0] != nil {
		o = options[0]
	} else {
		o = DefaultOptions()
	}
	workers := o.cpus
	if workers > g.N[0] {
		workers = g.N[0]
	}
	if workers <= 1 {
		sampleSlabs(g, f, 0, g.N[0])
		return
	}
	done := make(chan bool, workers)
	//Slabs are dealt in contiguous blocks so each worker touches one
	//contiguous piece of Data.
	per := (g.N[0] + workers - 1) / workers
	launched := 0
	for lo := 0; lo < g.N[0]; lo += per {
		hi := lo + per
		if hi > g.N[0] {
			hi = g.N[0]
		}
		go func(lo, hi int) {
			sampleSlabs(g, f, lo, hi)
			done <- true
		}(lo, hi)
		launched++
	}
	for i := 0; i < launched; i++ {
		<-done
	}
}

//sampleSlabs fills the slabs i in [lo,hi).
func sampleSlabs(g *Grid, f Field, lo, hi int) {
	for i := lo; i < hi; i++ {
		x := g.Origin[0] + float64(i)*g.Step[0]
		base := i * g.N[1] * g.N[2]
		for j := 0; j < g.N[1]; j++ {
			y := g.Origin[1] + float64(j)*g.Step[1]
			row := base + j*g.N[2]
			for k := 0; k < g.N[2]; k++ {
				z := g.Origin[2] + float64(k)*g.Step[2]
				g.Data[row+k] = f([3]float64{x, y, z})
			}
		}
	}
}

//Sample2D fills the planar grid with the values of f at every grid point.
//Cross-sections are small compared to volumes, so this one is serial.
func Sample2D(g *Grid2D, f Field) {
	for i := 0; i < g.N[0]; i++ {
		for j := 0; j < g.N[1]; j++ {
			g.Data[g.Idx(i, j)] = f(g.Point(i, j))
		}
	}
}
