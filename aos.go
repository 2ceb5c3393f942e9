/*
 * aos.go, part of gomolara.
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

import "math"

//The relative scale factors between the Cartesian components of one shell.
//They absorb the normalization differences with respect to the leading,
//axis-aligned component, so a single per-primitive constant serves the
//whole shell.
const (
	sqr3 = 1.73205080756887729
	sqr5 = 2.236067977499789696
	sqr7 = 2.645751311064591
)

//MaxCartesians is the largest number of Cartesian components of a supported
//shell (the 15 of a g shell). Scratch slices for EvalShell must be at least
//this long.
const MaxCartesians = 15

//EvalShell evaluates the Cartesian components of one contracted-Gaussian
//shell at the given point. Point and center are in Bohr, exponents in
//1/Bohr^2. The component values are written to the first n slots of out,
//where n is the component count of the shell kind (1/3/6/10/15 for
//s/p/d/f/g), and n is returned. The component order is the canonical one:
//
//	s
//	px py pz
//	dxx dyy dzz dxy dxz dyz
//	fxxx fyyy fzzz fxxy fxxz fyyx fyyz fzzx fzzy fxyz
//	gxxxx gyyyy gzzzz gxxxy gxxxz gyyyx gyyyz gzzzx gzzzy
//	gxxyy gxxzz gyyzz gxxyz gyyxz gzzxy
//
//An unsupported kind returns an error and leaves out untouched. Panics if
//out is shorter than the component count, or if the primitive slices have
//mismatched lengths.
func EvalShell(point, center [3]float64, exponents, coeffs, norms []float64, kind ShellKind, out []float64) (int, error) {
	n := kind.Cartesians()
	if n < 0 {
		return 0, newError(true, "EvalShell: unsupported shell kind %d", int(kind))
	}
	if len(out) < n {
		panic(ErrShortScratch)
	}
	if len(norms) != len(exponents) || len(coeffs) != len(exponents) {
		panic(ErrShellNotReady)
	}
	dx := point[0] - center[0]
	dy := point[1] - center[1]
	dz := point[2] - center[2]
	dx2, dy2, dz2 := dx*dx, dy*dy, dz*dz
	dxyz := dx * dy * dz
	r2 := dx2 + dy2 + dz2

	var dir [MaxCartesians]float64
	switch kind {
	case S:
		dir[0] = 1
	case P:
		dir[0], dir[1], dir[2] = dx, dy, dz
	case D:
		dir[0], dir[1], dir[2] = dx2, dy2, dz2
		dir[3] = sqr3 * dx * dy
		dir[4] = sqr3 * dx * dz
		dir[5] = sqr3 * dy * dz
	case F:
		dir[0] = dx2 * dx
		dir[1] = dy2 * dy
		dir[2] = dz2 * dz
		dir[3] = sqr5 * dx2 * dy
		dir[4] = sqr5 * dx2 * dz
		dir[5] = sqr5 * dy2 * dx
		dir[6] = sqr5 * dy2 * dz
		dir[7] = sqr5 * dz2 * dx
		dir[8] = sqr5 * dz2 * dy
		dir[9] = sqr5 * sqr3 * dxyz
	case G:
		dir[0] = dx2 * dx2
		dir[1] = dy2 * dy2
		dir[2] = dz2 * dz2
		dir[3] = sqr7 * dx2 * dx * dy
		dir[4] = sqr7 * dx2 * dx * dz
		dir[5] = sqr7 * dy2 * dy * dx
		dir[6] = sqr7 * dy2 * dy * dz
		dir[7] = sqr7 * dz2 * dz * dx
		dir[8] = sqr7 * dz2 * dz * dy
		dir[9] = sqr7 * sqr5 / sqr3 * dx2 * dy2
		dir[10] = sqr7 * sqr5 / sqr3 * dx2 * dz2
		dir[11] = sqr7 * sqr5 / sqr3 * dy2 * dz2
		dir[12] = sqr7 * sqr5 * dx * dxyz
		dir[13] = sqr7 * sqr5 * dy * dxyz
		dir[14] = sqr7 * sqr5 * dz * dxyz
	}
	radial := 0.0
	for i := range exponents {
		radial += coeffs[i] * norms[i] * math.Exp(-exponents[i]*r2)
	}
	for j := 0; j < n; j++ {
		out[j] = dir[j] * radial
	}
	return n, nil
}

//Eval evaluates sh at a point given in Angstrom, converting to Bohr
//internally. The result goes into out as in EvalShell.
func (sh *Shell) Eval(point [3]float64, out []float64) (int, error) {
	p := [3]float64{point[0] * A2Bohr, point[1] * A2Bohr, point[2] * A2Bohr}
	c := [3]float64{sh.center[0] * A2Bohr, sh.center[1] * A2Bohr, sh.center[2] * A2Bohr}
	n, err := EvalShell(p, c, sh.Exponents, sh.Coeffs, sh.Norms, sh.Kind, out)
	if err != nil {
		return n, errDecorate(err, "Shell.Eval")
	}
	return n, nil
}
