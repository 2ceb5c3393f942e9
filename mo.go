/*
 * mo.go, part of gomolara.
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

//MolecularOrbital is one molecular orbital: its bookkeeping data and its
//coefficient vector. Two forms of the vector are kept: the raw one as read
//from the quantum-chemistry output (for display), and the Cartesian one
//actually used for evaluation, derived once at load time by
//SetCoefficients. The Cartesian form is never edited directly.
type MolecularOrbital struct {
	Index      int
	Spin       int
	Energy     float64
	Occupation float64
	display    []float64
	coeffs     []float64
}

//SetCoefficients loads the raw coefficient vector for the orbital and
//derives the Cartesian vector used for evaluation. The order tag names the
//convention raw is in. The length of raw must match the molecule exactly:
//NCartesians components for OrderCartesian, NSphericals for OrderORCA.
//A mismatch is a critical error and leaves the orbital unchanged, so a
//malformed orbital can never reach evaluation.
func (mo *MolecularOrbital) SetCoefficients(M *Molecule, raw []float64, order SphericalOrder) error {
	if mo == nil {
		panic(ErrNilOrbital)
	}
	if M == nil {
		panic(ErrNilMolecule)
	}
	switch order {
	case OrderCartesian:
		if want := M.NCartesians(); len(raw) != want {
			return newError(true, "SetCoefficients: %d coefficients given, but the molecule has %d Cartesian components", len(raw), want)
		}
		mo.coeffs = append([]float64(nil), raw...)
	case OrderORCA:
		if want := M.NSphericals(); len(raw) != want {
			return newError(true, "SetCoefficients: %d coefficients given, but the molecule has %d spherical components", len(raw), want)
		}
		mo.coeffs = sphericalToCartesian(raw, M.Shells())
	default:
		return newError(true, "SetCoefficients: the spherical order %d is not supported", int(order))
	}
	mo.display = append([]float64(nil), raw...)
	return nil
}

//DisplayCoefficients returns the raw coefficient vector as loaded, in the
//ordering of the source program. The slice is owned by the orbital.
func (mo *MolecularOrbital) DisplayCoefficients() []float64 {
	return mo.display
}

//Coefficients returns the Cartesian coefficient vector used for
//evaluation. The slice is owned by the orbital and must not be modified.
func (mo *MolecularOrbital) Coefficients() []float64 {
	return mo.coeffs
}

//Eval returns the value of the molecular orbital at a point given in
//Angstrom. The molecule's shells are walked in canonical order and each
//shell's Cartesian components are contracted with the matching slice of the
//coefficient vector. SetCoefficients must have succeeded first.
func (mo *MolecularOrbital) Eval(M *Molecule, point [3]float64) (float64, error) {
	if mo == nil {
		panic(ErrNilOrbital)
	}
	shells := M.Shells()
	if want := M.NCartesians(); len(mo.coeffs) != want {
		return 0, newError(true, "MolecularOrbital.Eval: orbital has %d Cartesian coefficients, but the molecule has %d components; did the molecule change after SetCoefficients?", len(mo.coeffs), want)
	}
	var scratch [MaxCartesians]float64
	sum := 0.0
	i := 0
	for _, sh := range shells {
		n, err := sh.Eval(point, scratch[:])
		if err != nil {
			return 0, errDecorate(err, "MolecularOrbital.Eval")
		}
		for j := 0; j < n; j++ {
			sum += mo.coeffs[i] * scratch[j]
			i++
		}
	}
	return sum, nil
}

//Field binds the orbital and molecule into a plain scalar-field closure for
//grid sampling. All validation happens here, once; the closure itself
//cannot fail. The molecule must not be modified while the field is in use.
func (mo *MolecularOrbital) Field(M *Molecule) (func(p [3]float64) float64, error) {
	if want := M.NCartesians(); len(mo.coeffs) != want {
		return nil, newError(true, "MolecularOrbital.Field: orbital has %d Cartesian coefficients, but the molecule has %d components", len(mo.coeffs), want)
	}
	shells := M.Shells()
	for _, sh := range shells {
		if sh.Kind.Cartesians() < 0 {
			return nil, newError(true, "MolecularOrbital.Field: unsupported shell kind %d", int(sh.Kind))
		}
		if len(sh.Norms) != len(sh.Exponents) {
			return nil, newError(true, "MolecularOrbital.Field: shell %s not normalized", sh.Kind)
		}
	}
	return func(p [3]float64) float64 {
		var scratch [MaxCartesians]float64
		sum := 0.0
		i := 0
		for _, sh := range shells {
			n, _ := sh.Eval(p, scratch[:]) //kinds were validated above
			for j := 0; j < n; j++ {
				sum += mo.coeffs[i] * scratch[j]
				i++
			}
		}
		return sum
	}, nil
}
