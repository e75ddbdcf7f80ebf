// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dipole

import (
	"math"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gokay-avci/PolySURF/crystal"
)

func Test_noneMode(tst *testing.T) {

	chk.PrintTitle("noneMode: None mode and empty atom lists are no-ops")

	lat, err := crystal.NewLattice(crystal.Vec3{5, 0, 0}, crystal.Vec3{0, 5, 0}, crystal.Vec3{0, 0, 20})
	if err != nil {
		tst.Fatalf("NewLattice: %v", err)
	}
	atoms := []crystal.Atom{{Element: "Na", Frac: crystal.Vec3{0, 0, 0.1}}}
	report := Stabilize(atoms, lat, None, 0)
	if report != "No reconstruction applied." {
		tst.Errorf("unexpected report for None mode: %q", report)
	}

	report = Stabilize(nil, lat, DipoleCorrection, 0)
	if report != "No reconstruction applied." {
		tst.Errorf("unexpected report for empty atoms: %q", report)
	}
}

func Test_polarNaClDipole(tst *testing.T) {

	chk.PrintTitle("polarNaClDipole: a polar NaCl(111)-like stack reduces its dipole after reconstruction")

	lat, err := crystal.NewLattice(crystal.Vec3{4, 0, 0}, crystal.Vec3{0, 4, 0}, crystal.Vec3{0, 0, 40})
	if err != nil {
		tst.Fatalf("NewLattice: %v", err)
	}

	// Alternating Na/Cl planes along z, all-Na top plane makes the stack polar.
	var atoms []crystal.Atom
	zs := []float64{1, 3, 5, 7, 9, 11}
	elements := []string{"Cl", "Na", "Cl", "Na", "Cl", "Na"}
	for i, z := range zs {
		frac := lat.ToFractional(crystal.Vec3{0, 0, z})
		atoms = append(atoms, crystal.Atom{Element: elements[i], Frac: frac})
		frac2 := lat.ToFractional(crystal.Vec3{2, 2, z})
		atoms = append(atoms, crystal.Atom{Element: elements[i], Frac: frac2})
	}
	// Tip the balance: add an extra Na atom in the topmost plane.
	topFrac := lat.ToFractional(crystal.Vec3{2, 0, 11})
	atoms = append(atoms, crystal.Atom{Element: "Na", Frac: topFrac})

	nBefore := len(atoms)
	dipoleBefore := computeDipole(atoms, lat)
	if math.Abs(dipoleBefore) <= dipoleThreshold {
		tst.Fatalf("expected a polar starting configuration, got |D| = %g", math.Abs(dipoleBefore))
	}

	report := Stabilize(atoms, lat, DipoleCorrection, 0)
	if !strings.Contains(report, "Moved") {
		tst.Errorf("expected a relocation report, got %q", report)
	}
	if len(atoms) != nBefore {
		tst.Errorf("atom count changed: before %d, after %d", nBefore, len(atoms))
	}

	dipoleAfter := computeDipole(atoms, lat)
	if math.Abs(dipoleAfter) >= math.Abs(dipoleBefore) {
		tst.Errorf("|D| did not shrink: before %g, after %g", math.Abs(dipoleBefore), math.Abs(dipoleAfter))
	}
}

func computeDipole(atoms []crystal.Atom, lat *crystal.Lattice) float64 {
	var d float64
	for _, a := range atoms {
		d += nominalCharge(a.Element) * lat.ToCartesian(a.Frac)[2]
	}
	return d
}
