/*
 * basis_test.go, part of gomolara.
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
	"math"
	"testing"
)

func TestNewShellValidation(Te *testing.T) {
	cases := []struct {
		name   string
		kind   ShellKind
		exps   []float64
		coeffs []float64
	}{
		{"bad kind", ShellKind(42), []float64{1}, []float64{1}},
		{"length mismatch", S, []float64{1, 2}, []float64{1}},
		{"no primitives", S, []float64{}, []float64{}},
		{"nonpositive exponent", P, []float64{1, -0.5}, []float64{1, 1}},
	}
	for _, c := range cases {
		if _, err := NewShell(c.kind, c.exps, c.coeffs); err == nil {
			Te.Errorf("%s: expected an error", c.name)
		}
	}
	if _, err := NewShell(G, []float64{0.2}, []float64{1}); err != nil {
		Te.Errorf("valid g shell rejected: %v", err)
	}
}

func TestComponentCounts(Te *testing.T) {
	wantCart := map[ShellKind]int{S: 1, P: 3, D: 6, F: 10, G: 15}
	wantSph := map[ShellKind]int{S: 1, P: 3, D: 5, F: 7, G: 9}
	for k, w := range wantCart {
		if k.Cartesians() != w {
			Te.Errorf("%v: %d Cartesian components, want %d", k, k.Cartesians(), w)
		}
		if k.Sphericals() != wantSph[k] {
			Te.Errorf("%v: %d spherical components, want %d", k, k.Sphericals(), wantSph[k])
		}
	}
	if ShellKind(7).Cartesians() >= 0 {
		Te.Error("an unsupported kind should report a negative count")
	}
}

func TestMoleculeCounts(Te *testing.T) {
	mkshell := func(k ShellKind) *Shell {
		sh, err := NewShell(k, []float64{1}, []float64{1})
		if err != nil {
			Te.Fatal(err)
		}
		return sh
	}
	mol, err := NewMolecule([]*Atom{
		{Symbol: "Fe", Position: [3]float64{0, 0, 0}, Shells: []*Shell{mkshell(S), mkshell(D)}},
		{Symbol: "O", Position: [3]float64{1, 0, 0}, Shells: []*Shell{mkshell(P), mkshell(F)}},
	})
	if err != nil {
		Te.Fatal(err)
	}
	if n := mol.NCartesians(); n != 1+6+3+10 {
		Te.Errorf("NCartesians: %d", n)
	}
	if n := mol.NSphericals(); n != 1+5+3+7 {
		Te.Errorf("NSphericals: %d", n)
	}
	shells := mol.Shells()
	wantOrder := []ShellKind{S, D, P, F}
	for i, sh := range shells {
		if sh.Kind != wantOrder[i] {
			Te.Errorf("shell %d is %v, want %v", i, sh.Kind, wantOrder[i])
		}
	}
}

func TestSyncShellCenters(Te *testing.T) {
	sh, err := NewShell(S, []float64{1}, []float64{1})
	if err != nil {
		Te.Fatal(err)
	}
	mol, err := NewMolecule([]*Atom{
		{Symbol: "H", Position: [3]float64{0, 0, 0}, Shells: []*Shell{sh}},
	})
	if err != nil {
		Te.Fatal(err)
	}
	mol.Atom(0).Position = [3]float64{0, 0, 2.5}
	mol.SyncShellCenters()
	if c := sh.Center(); c != [3]float64{0, 0, 2.5} {
		Te.Errorf("shell center not synced: %v", c)
	}
}

func TestAtomOutOfRangePanics(Te *testing.T) {
	mol, err := NewMolecule([]*Atom{{Symbol: "H", Position: [3]float64{}, Shells: nil}})
	if err != nil {
		Te.Fatal(err)
	}
	defer func() {
		if recover() == nil {
			Te.Error("expected a panic for an out-of-range atom index")
		}
	}()
	mol.Atom(3)
}

//A single-primitive s shell has the closed-form normalization
//(2a/pi)^(3/4); after Normalize the product of coefficient and primitive
//constant must reproduce it no matter the starting coefficient.
func TestNormalizeSingleS(Te *testing.T) {
	for _, c0 := range []float64{1.0, 0.3, 7.2} {
		alpha := 0.9
		sh, err := NewShell(S, []float64{alpha}, []float64{c0})
		if err != nil {
			Te.Fatal(err)
		}
		if err := sh.Normalize(NormMolpro); err != nil {
			Te.Fatal(err)
		}
		want := math.Pow(2*alpha/math.Pi, 0.75)
		got := sh.Coeffs[0] * sh.Norms[0]
		fmt.Println("normalized single s:", got, "want", want)
		if !closeTo(got, want, 1e-14) {
			Te.Errorf("c0=%v: got %v, want %v", c0, got, want)
		}
	}
}

//With prenormalized primitives (the ORCA convention) the primitive
//constants stay at 1 and only the contracted rescaling applies.
func TestNormalizeORCAMode(Te *testing.T) {
	sh, err := NewShell(D, []float64{1.5, 0.5}, []float64{0.6, 0.4})
	if err != nil {
		Te.Fatal(err)
	}
	if err := sh.Normalize(NormORCA); err != nil {
		Te.Fatal(err)
	}
	for i, n := range sh.Norms {
		if n != 1 {
			Te.Errorf("primitive constant %d is %v, want 1", i, n)
		}
	}
	//normalizing an already normalized copy must leave it alone
	sh2, err := NewShell(D, sh.Exponents, sh.Coeffs)
	if err != nil {
		Te.Fatal(err)
	}
	if err := sh2.Normalize(NormORCA); err != nil {
		Te.Fatal(err)
	}
	for i := range sh.Coeffs {
		if !closeTo(sh2.Coeffs[i], sh.Coeffs[i], 1e-14) {
			Te.Errorf("renormalizing a normalized shell changed coefficient %d: %v vs %v",
				i, sh2.Coeffs[i], sh.Coeffs[i])
		}
	}
}

func TestNormalizeUnknownMode(Te *testing.T) {
	sh, err := NewShell(S, []float64{1}, []float64{1})
	if err != nil {
		Te.Fatal(err)
	}
	if err := sh.Normalize(NormMode(99)); err == nil {
		Te.Error("expected an error for an unknown normalization mode")
	}
}
