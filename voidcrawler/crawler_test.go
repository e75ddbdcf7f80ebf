// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package voidcrawler

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gokay-avci/PolySURF/crystal"
)

func Test_emptyCrystal01(tst *testing.T) {

	chk.PrintTitle("emptyCrystal01: an atom-free crystal yields the trivial fallback cut")

	lat, err := crystal.NewLattice(crystal.Vec3{5, 0, 0}, crystal.Vec3{0, 5, 0}, crystal.Vec3{0, 0, 5})
	if err != nil {
		tst.Fatalf("NewLattice: %v", err)
	}
	c := crystal.NewCrystal(lat, nil)

	cuts := FindSafeOffsets(c, crystal.Vec3{0, 0, 1})
	if len(cuts) != 1 {
		tst.Fatalf("expected 1 fallback cut, got %d", len(cuts))
	}
	if cuts[0].OffsetZ != 0.0 || cuts[0].QualityScore != 1.0 {
		tst.Errorf("unexpected fallback cut: %+v", cuts[0])
	}
}

func Test_singleLayerGap01(tst *testing.T) {

	chk.PrintTitle("singleLayerGap01: a single atomic layer along z leaves one large periodic gap")

	lat, err := crystal.NewLattice(crystal.Vec3{5, 0, 0}, crystal.Vec3{0, 5, 0}, crystal.Vec3{0, 0, 10})
	if err != nil {
		tst.Fatalf("NewLattice: %v", err)
	}
	atoms := []crystal.Atom{{Element: "Na", Frac: crystal.Vec3{0, 0, 0}}}
	c := crystal.NewCrystal(lat, atoms)

	cuts := FindSafeOffsets(c, crystal.Vec3{0, 0, 1})
	if len(cuts) == 0 {
		tst.Fatalf("expected at least one safe cut")
	}
	for i := 0; i < len(cuts); i++ {
		if cuts[i].OffsetZ < 0 || cuts[i].OffsetZ > 10 {
			tst.Errorf("cut %d offset %g falls outside [0, periodicity]", i, cuts[i].OffsetZ)
		}
		if i > 0 && cuts[i].GapSize > cuts[i-1].GapSize {
			tst.Errorf("cuts not sorted largest-gap-first at index %d", i)
		}
	}
}

func Test_unknownElementFallsBack01(tst *testing.T) {

	chk.PrintTitle("unknownElementFallsBack01: an untabulated element still produces a finite radius")

	if r := vdwRadius("Xx"); r != 1.80 {
		tst.Errorf("fallback vdW radius = %g, want 1.80", r)
	}
}
