/*
 * sample_test.go, part of gomolara.
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

import (
	"math"
	"testing"
)

func wavyField(p [3]float64) float64 {
	return math.Sin(3*p[0])*math.Cos(2*p[1]) + p[2]*p[2]
}

//The concurrent fill must produce bit-identical results to the serial
//one, with any worker count, including more workers than slabs.
func TestSampleSerialParallelAgree(t *testing.T) {
	newGrid := func() *Grid {
		g, err := NewGrid([3]float64{-1, -1, -1}, [3]float64{0.17, 0.21, 0.13}, [3]int{13, 11, 17})
		if err != nil {
			t.Fatal(err)
		}
		return g
	}
	serial := newGrid()
	sampleSlabs(serial, wavyField, 0, serial.N[0])

	for _, cpus := range []int{1, 2, 3, 7, 64} {
		par := newGrid()
		o := DefaultOptions()
		o.Cpus(cpus)
		Sample(par, wavyField, o)
		for i, v := range serial.Data {
			if par.Data[i] != v {
				t.Fatalf("cpus=%d: value %d differs: %v vs %v", cpus, i, par.Data[i], v)
			}
		}
	}

	//nil options fall back to the defaults
	def := newGrid()
	Sample(def, wavyField, nil)
	for i, v := range serial.Data {
		if def.Data[i] != v {
			t.Fatalf("default options: value %d differs", i)
		}
	}
}

func TestSampleEveryPointVisited(t *testing.T) {
	g, err := NewGrid([3]float64{0, 0, 0}, [3]float64{1, 1, 1}, [3]int{4, 3, 2})
	if err != nil {
		t.Fatal(err)
	}
	Sample(g, func(p [3]float64) float64 { return 1 })
	for i, v := range g.Data {
		if v != 1 {
			t.Fatalf("voxel %d not filled", i)
		}
	}
}

func TestOptionsCpus(t *testing.T) {
	o := DefaultOptions()
	if o.Cpus() <= 0 {
		t.Error("default cpu count should be positive")
	}
	o.Cpus(3)
	if o.Cpus() != 3 {
		t.Error("setting the cpu count failed")
	}
	o.Cpus(-1) //invalid values are ignored
	if o.Cpus() != 3 {
		t.Error("an invalid cpu count should leave the option unchanged")
	}
}

func TestSample2D(t *testing.T) {
	g, err := NewGrid2D(
		[3]float64{0, 0, 2},
		[2][3]float64{{0.5, 0, 0}, {0, 0.5, 0}},
		[2]int{5, 5},
	)
	if err != nil {
		t.Fatal(err)
	}
	Sample2D(g, wavyField)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			if g.At(i, j) != wavyField(g.Point(i, j)) {
				t.Fatalf("value at (%d,%d) differs", i, j)
			}
		}
	}
}
