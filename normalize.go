/*
 * normalize.go, part of gomolara.
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

//NormMode selects how a shell is normalized. Some quantum-chemistry
//programs write prenormalized primitives to their output, in which case the
//per-primitive constants must be left at 1.
type NormMode int

const (
	//NormNone computes primitive and contracted normalization from scratch.
	NormNone NormMode = iota
	//NormORCA leaves the primitive constants at 1 (ORCA prenormalizes) but
	//still applies the contracted normalization.
	NormORCA
	//NormMolpro behaves like NormNone.
	NormMolpro
)

//fact2 holds the double factorials (2n-1)!! needed for Gaussian
//normalization, fact2[n] = n!!, up to n = 17.
var fact2 = [18]float64{
	1, 1, 2, 3, 8, 15, 48, 105, 384, 945, 3840, 10395,
	46080, 135135, 645120, 2027025, 10321920, 34459425,
}

//oddFact2 returns (2i-1)!!, with the i == 0 case equal to 1.
func oddFact2(i int) float64 {
	if i == 0 {
		return 1
	}
	return fact2[2*i-1]
}

//primitiveNorms returns the normalization constant of the primitive
//Cartesian Gaussian x^i y^j z^k exp(-a r^2) for each exponent.
func primitiveNorms(ijk [3]int, exponents []float64) []float64 {
	m := float64(ijk[0] + ijk[1] + ijk[2])
	fijk := oddFact2(ijk[0]) * oddFact2(ijk[1]) * oddFact2(ijk[2])
	norms := make([]float64, len(exponents))
	for i, a := range exponents {
		norms[i] = math.Sqrt(math.Pow(2, 2*m+1.5) * math.Pow(a, m+1.5) / (fijk * math.Pow(math.Pi, 1.5)))
	}
	return norms
}

//contractedNorm returns the normalization constant of the whole contracted
//Gaussian, given the per-primitive constants.
func contractedNorm(ijk [3]int, exponents, coeffs, norms []float64) float64 {
	m := float64(ijk[0] + ijk[1] + ijk[2])
	fijk := oddFact2(ijk[0]) * oddFact2(ijk[1]) * oddFact2(ijk[2])
	prefactor := math.Pow(math.Pi, 1.5) * fijk / math.Pow(2, m)
	n := 0.0
	for ia := range exponents {
		for ib := range exponents {
			n += coeffs[ia] * coeffs[ib] * norms[ia] * norms[ib] /
				math.Pow(exponents[ia]+exponents[ib], m+1.5)
		}
	}
	return math.Pow(n*prefactor, -0.5)
}

//Normalize fills in the per-primitive normalization constants of the shell
//and rescales its contraction coefficients by the contracted normalization
//constant. The constants are those of the shell's leading component (s, px,
//dxx, ...); the fixed factors between components are part of the
//directional polynomials applied during evaluation. Normalize must be
//called once, before the shell is evaluated; calling it again would rescale
//the coefficients twice.
func (sh *Shell) Normalize(mode NormMode) error {
	ijk := sh.Kind.leadingIJK()
	if sh.Kind.Cartesians() < 0 {
		return newError(true, "Shell.Normalize: unsupported shell kind %d", int(sh.Kind))
	}
	switch mode {
	case NormORCA:
		sh.Norms = make([]float64, len(sh.Exponents))
		for i := range sh.Norms {
			sh.Norms[i] = 1.0
		}
	case NormNone, NormMolpro:
		sh.Norms = primitiveNorms(ijk, sh.Exponents)
	default:
		return newError(true, "Shell.Normalize: unknown normalization mode %d", int(mode))
	}
	n := contractedNorm(ijk, sh.Exponents, sh.Coeffs, sh.Norms)
	for i := range sh.Coeffs {
		sh.Coeffs[i] *= n
	}
	return nil
}
