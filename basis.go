/*
 * basis.go, part of gomolara.
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

import "fmt"

/**Note: Some functions here panic instead of returning errors. This is because
 * they are "fundamental" functions: if something goes wrong in them, the
 * calling program is way-most likely wrong and should crash. All panics are
 * related to out-of-bounds access or to using a nil object.**/

//ShellKind is the angular-momentum kind of a contracted-Gaussian shell.
//Only the five kinds defined here are supported; anything else surfaces a
//critical error from the evaluators, never a silent skip.
type ShellKind int

const (
	S ShellKind = iota
	P
	D
	F
	G
)

//Cartesians returns the number of Cartesian components of a shell of kind k
//(e.g. 6 for d: dxx, dyy, dzz, dxy, dxz, dyz), or -1 if k is not supported.
func (k ShellKind) Cartesians() int {
	switch k {
	case S:
		return 1
	case P:
		return 3
	case D:
		return 6
	case F:
		return 10
	case G:
		return 15
	}
	return -1
}

//Sphericals returns the number of spherical-harmonic components (2l+1) of a
//shell of kind k, or -1 if k is not supported.
func (k ShellKind) Sphericals() int {
	switch k {
	case S:
		return 1
	case P:
		return 3
	case D:
		return 5
	case F:
		return 7
	case G:
		return 9
	}
	return -1
}

func (k ShellKind) String() string {
	switch k {
	case S:
		return "s"
	case P:
		return "p"
	case D:
		return "d"
	case F:
		return "f"
	case G:
		return "g"
	}
	return "invalid"
}

//leadingIJK returns the Cartesian powers of the leading, axis-aligned
//component of the shell (s, px, dxx, fxxx, gxxxx). The normalization
//constants of a shell are those of its leading component; the relative
//factors between components are part of the directional polynomials.
func (k ShellKind) leadingIJK() [3]int {
	return [3]int{int(k), 0, 0}
}

//Shell is one contracted Gaussian basis function of a single
//angular-momentum kind, centered on an atom. All primitives of the shell
//share the exponent and contraction-coefficient lists. The Norms slice is
//filled by Normalize and must be in place before evaluation.
type Shell struct {
	Kind      ShellKind
	Exponents []float64
	Coeffs    []float64
	Norms     []float64
	center    [3]float64
}

//NewShell returns a Shell of kind k with the given primitive exponents and
//contraction coefficients. It returns an error if the slices are empty or
//their lengths differ, or if any exponent is not positive.
func NewShell(k ShellKind, exponents, coeffs []float64) (*Shell, error) {
	if k.Cartesians() < 0 {
		return nil, newError(true, "NewShell: unsupported shell kind %d", int(k))
	}
	if len(exponents) == 0 || len(exponents) != len(coeffs) {
		return nil, newError(true, "NewShell: %d exponents but %d coefficients given", len(exponents), len(coeffs))
	}
	for i, e := range exponents {
		if e <= 0 {
			return nil, newError(true, "NewShell: exponent %d is not positive: %f", i, e)
		}
	}
	sh := &Shell{Kind: k}
	sh.Exponents = append(sh.Exponents, exponents...)
	sh.Coeffs = append(sh.Coeffs, coeffs...)
	return sh, nil
}

//Center returns the center of the shell, in Angstrom. It equals the position
//of the owning atom as of the last SyncShellCenters call.
func (sh *Shell) Center() [3]float64 {
	return sh.center
}

//Atom is one atom of a molecule: a position, in Angstrom, and the basis
//shells centered on it.
type Atom struct {
	Symbol   string
	Position [3]float64
	Shells   []*Shell
}

//Molecule holds the atoms, and through them the basis shells, needed to
//evaluate molecular orbitals. It owns no coefficients; those belong to
//MolecularOrbital values.
type Molecule struct {
	Atoms []*Atom
}

//NewMolecule makes a Molecule from the given atoms and syncs the shell
//centers to the atom positions. It returns an error if ats is nil.
func NewMolecule(ats []*Atom) (*Molecule, error) {
	if ats == nil {
		return nil, newError(true, "NewMolecule: supplied a nil atom slice")
	}
	M := &Molecule{Atoms: ats}
	M.SyncShellCenters()
	return M, nil
}

//Len returns the number of atoms in the molecule.
func (M *Molecule) Len() int {
	return len(M.Atoms)
}

//Atom returns the atom corresponding to the index i. Panics if out of range.
func (M *Molecule) Atom(i int) *Atom {
	if i >= M.Len() {
		panic("Molecule: requested Atom out of bounds")
	}
	return M.Atoms[i]
}

//Shells returns the shells of all atoms in the canonical evaluation order:
//atoms in molecule order, then each atom's shells in their stored order.
//MO coefficient vectors are laid out in this same order.
func (M *Molecule) Shells() []*Shell {
	if M == nil {
		panic(ErrNilMolecule)
	}
	ret := make([]*Shell, 0, len(M.Atoms))
	for _, at := range M.Atoms {
		ret = append(ret, at.Shells...)
	}
	return ret
}

//NCartesians returns the total number of Cartesian components over all
//shells of all atoms. This is the required length of a Cartesian MO
//coefficient vector.
func (M *Molecule) NCartesians() int {
	n := 0
	for _, sh := range M.Shells() {
		n += sh.Kind.Cartesians()
	}
	return n
}

//NSphericals returns the total number of spherical components over all
//shells of all atoms: the required length of an MO coefficient vector in a
//spherical-harmonic order such as ORCA's.
func (M *Molecule) NSphericals() int {
	n := 0
	for _, sh := range M.Shells() {
		n += sh.Kind.Sphericals()
	}
	return n
}

//SyncShellCenters copies each atom's position to its shells. There is no
//live alias between atoms and shells: after moving atoms, call this before
//evaluating or sampling again.
func (M *Molecule) SyncShellCenters() {
	for _, at := range M.Atoms {
		for _, sh := range at.Shells {
			sh.center = at.Position
		}
	}
}

//Normalize normalizes every shell of the molecule with the given mode.
func (M *Molecule) Normalize(mode NormMode) error {
	for i, sh := range M.Shells() {
		if err := sh.Normalize(mode); err != nil {
			return errDecorate(err, fmt.Sprintf("Molecule.Normalize: shell %s at canonical index %d", sh.Kind, i))
		}
	}
	return nil
}
