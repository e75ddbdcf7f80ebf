// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reduce

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/gokay-avci/PolySURF/crystal"
	"github.com/gokay-avci/PolySURF/miller"
)

func Test_reduce2d01(tst *testing.T) {

	chk.PrintTitle("reduce2d01: Lagrange-Gauss shortens a skewed 2D basis")

	u := miller.IVec3{1, 0, 0}
	v := miller.IVec3{7, 1, 0}
	ru, rv := Reduce2DInteger(u, v)

	if ru.Dot(ru) > rv.Dot(rv) {
		tst.Errorf("|u|^2=%d > |v|^2=%d, want |u|<=|v|", ru.Dot(ru), rv.Dot(rv))
	}
	if 2*absI(ru.Dot(rv)) > ru.Dot(ru) {
		tst.Errorf("2|u.v|=%d > u.u=%d", 2*absI(ru.Dot(rv)), ru.Dot(ru))
	}
}

func absI(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func Test_lll01(tst *testing.T) {

	chk.PrintTitle("lll01: LLL reduction preserves the lattice and shortens a skewed basis")

	basis := crystal.Mat3{
		crystal.Vec3{10, 0, 0},
		crystal.Vec3{7, 1, 0},
		crystal.Vec3{0, 0, 5},
	}
	reduced := LLL3(basis)

	detBefore := basis.Det()
	detAfter := reduced.Det()
	if math.Abs(math.Abs(detBefore)-math.Abs(detAfter)) > 1e-9 {
		tst.Errorf("LLL changed the lattice volume: before=%g after=%g", detBefore, detAfter)
	}

	a, b := reduced.Col(0), reduced.Col(1)
	if a.Norm() > 10 {
		tst.Errorf("first reduced column too long: |a|=%g", a.Norm())
	}
	_ = b
}
