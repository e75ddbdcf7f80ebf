// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package molfind

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gokay-avci/PolySURF/crystal"
)

func Test_water01(tst *testing.T) {

	chk.PrintTitle("water01: one wrapped water molecule unwraps to a single 3-atom molecule")

	lat, err := crystal.NewLattice(crystal.Vec3{5, 0, 0}, crystal.Vec3{0, 5, 0}, crystal.Vec3{0, 0, 5})
	if err != nil {
		tst.Fatalf("NewLattice failed: %v", err)
	}

	atoms := []crystal.Atom{
		{Element: "O", Frac: crystal.Vec3{0.02, 0.02, 0.02}},
		{Element: "H", Frac: crystal.Vec3{0.99, 0.02, 0.02}},
		{Element: "H", Frac: crystal.Vec3{0.02, 0.99, 0.02}},
	}
	c := crystal.NewCrystal(lat, atoms)

	molecules, assigned := FindMolecules(c, 1.2)
	if len(molecules) != 1 {
		tst.Fatalf("expected 1 molecule, got %d", len(molecules))
	}
	if len(assigned) != 3 {
		tst.Errorf("expected 3 assigned atoms, got %d", len(assigned))
	}
	mol := molecules[0]
	if len(mol.Atoms) != 3 {
		tst.Fatalf("expected 3 atoms in molecule, got %d", len(mol.Atoms))
	}

	for i := 0; i < len(mol.Atoms); i++ {
		for j := i + 1; j < len(mol.Atoms); j++ {
			d := mol.Atoms[i].Pos.Sub(mol.Atoms[j].Pos)
			if d.Norm() >= 1.2 && i == 0 {
				// O-H pairs must be bonded; H-H need not be.
				tst.Errorf("O-H separation %.3f exceeds cutoff", d.Norm())
			}
		}
	}

	comFrac := lat.ToFractional(mol.COM)
	for i, v := range comFrac {
		if v < 0 || v >= 1 {
			tst.Errorf("COM fractional component %d = %g, want in [0,1)", i, v)
		}
	}
}

func Test_isolated01(tst *testing.T) {

	chk.PrintTitle("isolated01: atoms with no bonds each form a one-element molecule")

	lat, err := crystal.NewLattice(crystal.Vec3{10, 0, 0}, crystal.Vec3{0, 10, 0}, crystal.Vec3{0, 0, 10})
	if err != nil {
		tst.Fatalf("NewLattice failed: %v", err)
	}
	atoms := []crystal.Atom{
		{Element: "Na", Frac: crystal.Vec3{0.1, 0.1, 0.1}},
		{Element: "Cl", Frac: crystal.Vec3{0.9, 0.9, 0.9}},
	}
	c := crystal.NewCrystal(lat, atoms)

	molecules, assigned := FindMolecules(c, 1.0)
	if len(molecules) != 2 {
		tst.Errorf("expected 2 isolated molecules, got %d", len(molecules))
	}
	if len(assigned) != 2 {
		tst.Errorf("expected 2 assigned atoms, got %d", len(assigned))
	}
}
