/*
 * spherical.go, part of gomolara.
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
	"math"

	"gonum.org/v1/gonum/mat"
)

//SphericalOrder names the ordering convention of a raw MO coefficient
//vector, as written by the program that produced it.
type SphericalOrder int

const (
	//OrderCartesian means the coefficients are already in the Cartesian
	//component order used for evaluation. No transform is applied.
	OrderCartesian SphericalOrder = iota
	//OrderORCA is the spherical-harmonic ordering of ORCA output. The d, f
	//and g segments are transformed to Cartesian at load time.
	OrderORCA
)

//The spherical-to-Cartesian transformation matrices for the ORCA ordering.
//One matrix per shell kind, rows indexed by spherical component, columns by
//Cartesian component: cartesian = spherical * M, with the coefficient
//segments as row vectors. These are fixed external constants; they are
//never computed at runtime and must not be modified.
var (
	orcaD = mat.NewDense(5, 6, []float64{
		-1. / 2, -1. / 2, 1, 0, 0, 0,
		0, 0, 0, 0, 1, 0,
		0, 0, 0, 0, 0, 1,
		math.Sqrt(3) / 2, -math.Sqrt(3) / 2, 0, 0, 0, 0,
		0, 0, 0, 1, 0, 0,
	})

	orcaF = mat.NewDense(7, 10, []float64{
		0, 0, 1, 0, -3 * math.Sqrt(5) / 10, 0, -3 * math.Sqrt(5) / 10, 0, 0, 0,
		-math.Sqrt(6) / 4, 0, 0, 0, 0, -math.Sqrt(30) / 20, 0, math.Sqrt(30) / 5, 0, 0,
		0, -math.Sqrt(6) / 4, 0, -math.Sqrt(30) / 20, 0, 0, 0, 0, math.Sqrt(30) / 5, 0,
		0, 0, 0, 0, math.Sqrt(3) / 2, 0, -math.Sqrt(3) / 2, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0, 1,
		-math.Sqrt(10) / 4, 0, 0, 0, 0, 3 * math.Sqrt(2) / 4, 0, 0, 0, 0,
		0, math.Sqrt(10) / 4, 0, -3 * math.Sqrt(2) / 4, 0, 0, 0, 0, 0, 0,
	})

	orcaG = mat.NewDense(9, 15, []float64{
		3. / 8, 3. / 8, 1, 0, 0, 0, 0, 0, 0,
		3 * math.Sqrt(105) / 140, -3 * math.Sqrt(105) / 35, -3 * math.Sqrt(105) / 35, 0, 0, 0,

		0, 0, 0, 0, -3 * math.Sqrt(70) / 28, 0, 0, math.Sqrt(70) / 7, 0,
		0, 0, 0, 0, -3 * math.Sqrt(14) / 28, 0,

		0, 0, 0, 0, 0, 0, -3 * math.Sqrt(70) / 28, 0, math.Sqrt(70) / 7,
		0, 0, 0, -3 * math.Sqrt(14) / 28, 0, 0,

		-math.Sqrt(5) / 4, math.Sqrt(5) / 4, 0, 0, 0, 0, 0, 0, 0,
		0, 3 * math.Sqrt(21) / 14, -3 * math.Sqrt(21) / 14, 0, 0, 0,

		0, 0, 0, -math.Sqrt(35) / 14, 0, -math.Sqrt(35) / 14, 0, 0, 0,
		0, 0, 0, 0, 0, 3 * math.Sqrt(7) / 7,

		0, 0, 0, 0, -math.Sqrt(10) / 4, 0, 0, 0, 0,
		0, 0, 0, 0, 3 * math.Sqrt(2) / 4, 0,

		0, 0, 0, 0, 0, 0, math.Sqrt(10) / 4, 0, 0,
		0, 0, 0, -3 * math.Sqrt(2) / 4, 0, 0,

		-math.Sqrt(35) / 8, -math.Sqrt(35) / 8, 0, 0, 0, 0, 0, 0, 0,
		3 * math.Sqrt(3) / 4, 0, 0, 0, 0, 0,

		0, 0, 0, -math.Sqrt(5) / 2, 0, math.Sqrt(5) / 2, 0, 0, 0,
		0, 0, 0, 0, 0, 0,
	})
)

//sphericalMatrix returns the transform matrix for a shell kind, or nil for
//kinds whose spherical and Cartesian orders coincide (s and p).
func sphericalMatrix(k ShellKind) *mat.Dense {
	switch k {
	case D:
		return orcaD
	case F:
		return orcaF
	case G:
		return orcaG
	}
	return nil
}

//sphericalToCartesian expands a raw coefficient vector in the ORCA
//spherical order to the Cartesian order, shell by shell. The shells slice
//must be in canonical order, and len(raw) must match the total spherical
//component count (checked by the caller).
func sphericalToCartesian(raw []float64, shells []*Shell) []float64 {
	out := make([]float64, 0, len(raw))
	idx := 0
	for _, sh := range shells {
		nsph := sh.Kind.Sphericals()
		m := sphericalMatrix(sh.Kind)
		if m == nil {
			out = append(out, raw[idx:idx+nsph]...)
			idx += nsph
			continue
		}
		seg := mat.NewDense(1, nsph, raw[idx:idx+nsph])
		var cart mat.Dense
		cart.Mul(seg, m)
		out = append(out, cart.RawRowView(0)...)
		idx += nsph
	}
	return out
}
