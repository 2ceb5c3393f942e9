/*
 * spherical_test.go, part of gomolara.
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

package molara

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/mat"
)

//The spherical-to-Cartesian matrices have full row rank, so mapping a
//spherical vector to Cartesian components and back through the right
//pseudo-inverse must return the original vector. This catches any linear
//dependence or transcription slip in the tables.
func TestSphericalMatricesRoundTrip(Te *testing.T) {
	for _, k := range []ShellKind{D, F, G} {
		M := sphericalMatrix(k)
		rows, cols := M.Dims()
		fmt.Printf("round trip for %v: %dx%d\n", k, rows, cols)
		if rows != k.Sphericals() || cols != k.Cartesians() {
			Te.Errorf("%v matrix is %dx%d, want %dx%d", k, rows, cols, k.Sphericals(), k.Cartesians())
			continue
		}
		v := mat.NewDense(1, rows, nil)
		for i := 0; i < rows; i++ {
			v.Set(0, i, float64(i)-1.5)
		}
		var cart mat.Dense
		cart.Mul(v, M)

		var mmT, inv, pinv, back mat.Dense
		mmT.Mul(M, M.T())
		if err := inv.Inverse(&mmT); err != nil {
			Te.Errorf("%v matrix is rank deficient: %v", k, err)
			continue
		}
		pinv.Mul(M.T(), &inv)
		back.Mul(&cart, &pinv)
		for i := 0; i < rows; i++ {
			if !closeTo(back.At(0, i), v.At(0, i), 1e-12) {
				Te.Errorf("%v round trip, component %d: got %v, want %v", k, i, back.At(0, i), v.At(0, i))
			}
		}
	}
}

//s and p shells need no transformation, so their segments pass through
//unchanged while a d segment expands from 5 to 6 components.
func TestSphericalToCartesianPassThrough(Te *testing.T) {
	mkshell := func(k ShellKind) *Shell {
		sh, err := NewShell(k, []float64{1.0}, []float64{1.0})
		if err != nil {
			Te.Fatal(err)
		}
		return sh
	}
	shells := []*Shell{mkshell(S), mkshell(P), mkshell(D)}
	raw := []float64{0.7, -0.1, 0.2, 0.3, 1, 2, 3, 4, 5}
	out := sphericalToCartesian(raw, shells)
	if len(out) != 1+3+6 {
		Te.Fatalf("expanded vector has %d components, want 10", len(out))
	}
	for i := 0; i < 4; i++ {
		if out[i] != raw[i] {
			Te.Errorf("s/p component %d changed: %v vs %v", i, out[i], raw[i])
		}
	}
	//the d segment must match an explicit row-vector product
	v := mat.NewDense(1, 5, raw[4:])
	var cart mat.Dense
	cart.Mul(v, sphericalMatrix(D))
	for j := 0; j < 6; j++ {
		if !closeTo(out[4+j], cart.At(0, j), 1e-15) {
			Te.Errorf("d component %d: got %v, want %v", j, out[4+j], cart.At(0, j))
		}
	}
}
