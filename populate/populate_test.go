// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package populate

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gokay-avci/PolySURF/crystal"
	"github.com/gokay-avci/PolySURF/slabgeom"
)

func cubicMgO(tst *testing.T) *crystal.Crystal {
	a := 4.21
	lat, err := crystal.NewLattice(crystal.Vec3{a, 0, 0}, crystal.Vec3{0, a, 0}, crystal.Vec3{0, 0, a})
	if err != nil {
		tst.Fatalf("NewLattice: %v", err)
	}
	atoms := []crystal.Atom{
		{Element: "Mg", Frac: crystal.Vec3{0, 0, 0}},
		{Element: "Mg", Frac: crystal.Vec3{0.5, 0.5, 0}},
		{Element: "Mg", Frac: crystal.Vec3{0.5, 0, 0.5}},
		{Element: "Mg", Frac: crystal.Vec3{0, 0.5, 0.5}},
		{Element: "O", Frac: crystal.Vec3{0.5, 0.5, 0.5}},
		{Element: "O", Frac: crystal.Vec3{0, 0, 0.5}},
		{Element: "O", Frac: crystal.Vec3{0, 0.5, 0}},
		{Element: "O", Frac: crystal.Vec3{0.5, 0, 0}},
	}
	return crystal.NewCrystal(lat, atoms)
}

func Test_mgo100(tst *testing.T) {

	chk.PrintTitle("mgo100: cubic MgO (1,0,0) slab has the expected layer count and box height")

	c := cubicMgO(tst)
	geo, err := slabgeom.ComputeGeometry(c, 1, 0, 0, 15, 15)
	if err != nil {
		tst.Fatalf("ComputeGeometry: %v", err)
	}
	if geo.NLayers != 7 {
		tst.Errorf("n_layers = %d, want 7", geo.NLayers)
	}
	wantHeight := float64(geo.NLayers)*geo.DHKL + 15
	if math.Abs(geo.Basis.Col(2).Norm()-wantHeight) > 1e-9 {
		tst.Errorf("|c'| = %g, want %g", geo.Basis.Col(2).Norm(), wantHeight)
	}

	atoms, err := Populate(c, geo, nil, 0)
	if err != nil {
		tst.Fatalf("Populate: %v", err)
	}
	if len(atoms) != geo.NLayers*4 {
		tst.Errorf("atom count = %d, want %d", len(atoms), geo.NLayers*4)
	}
	var nMg, nO int
	for _, a := range atoms {
		switch a.Element {
		case "Mg":
			nMg++
		case "O":
			nO++
		}
	}
	if nMg != nO {
		tst.Errorf("Mg:O = %d:%d, want 1:1", nMg, nO)
	}
}

func Test_highIndex310(tst *testing.T) {

	chk.PrintTitle("highIndex310: (3,1,0) on simple cubic still yields a non-empty slab")

	lat, err := crystal.NewLattice(crystal.Vec3{3, 0, 0}, crystal.Vec3{0, 3, 0}, crystal.Vec3{0, 0, 3})
	if err != nil {
		tst.Fatalf("NewLattice: %v", err)
	}
	c := crystal.NewCrystal(lat, []crystal.Atom{{Element: "X", Frac: crystal.Vec3{0, 0, 0}}})

	geo, err := slabgeom.ComputeGeometry(c, 3, 1, 0, 10, 10)
	if err != nil {
		tst.Fatalf("ComputeGeometry: %v", err)
	}

	atoms, err := Populate(c, geo, nil, 0)
	if err != nil {
		tst.Fatalf("Populate: %v", err)
	}
	if len(atoms) == 0 {
		tst.Errorf("expected a non-empty slab for (3,1,0)")
	}
}
