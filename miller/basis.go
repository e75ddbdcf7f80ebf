// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package miller implements the integer in-plane basis search for a
// Miller-index plane (h, k, l): the primitive pair of integer vectors
// spanning the plane, and the integer stacking vector that completes the
// basis.
package miller

import (
	"github.com/cpmech/gosl/chk"
)

// IVec3 is an integer 3-vector: Miller indices, or an integer lattice
// vector expressed in the same basis.
type IVec3 [3]int

// Dot returns u·v.
func (u IVec3) Dot(v IVec3) int {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Cross returns u×v.
func (u IVec3) Cross(v IVec3) IVec3 {
	return IVec3{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// IsZero reports whether u is the zero vector.
func (u IVec3) IsZero() bool {
	return u[0] == 0 && u[1] == 0 && u[2] == 0
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// gcd returns the non-negative greatest common divisor of a and b.
func gcd(a, b int) int {
	a, b = absInt(a), absInt(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// gcd3 returns gcd(|a|, |b|, |c|).
func gcd3(a, b, c int) int {
	return gcd(gcd(a, b), c)
}

// primitiveReduce divides v componentwise by gcd(|v.x|,|v.y|,|v.z|),
// returning v unchanged when the gcd is zero (v already zero).
func primitiveReduce(v IVec3) IVec3 {
	g := gcd3(v[0], v[1], v[2])
	if g == 0 {
		return v
	}
	return IVec3{v[0] / g, v[1] / g, v[2] / g}
}

// FindPrimitiveInPlaneBasis returns two primitive, linearly independent
// integer 3-vectors (u, v) orthogonal to n = (h, k, l): u is n×t and v is
// n×u, each divided by the gcd of its components. The pair does not always
// span every integer vector in the plane: for (1,1,1) it gives (1,-1,0)
// and (1,1,-2), which span a sublattice of index 2. Fails with
// DegenerateIndices when n is the zero vector.
func FindPrimitiveInPlaneBasis(h, k, l int) (u, v IVec3, err error) {
	n := IVec3{h, k, l}
	if n.IsZero() {
		return u, v, chk.Err("DegenerateIndices: Miller indices (%d, %d, %d) cannot be (0,0,0)", h, k, l)
	}

	// trial vector t not collinear with n
	t := IVec3{0, 0, 1}
	if n.Cross(t).IsZero() {
		t = IVec3{0, 1, 0}
	}

	uRaw := n.Cross(t)
	u = primitiveReduce(uRaw)

	vRaw := n.Cross(u)
	v = primitiveReduce(vRaw)

	return u, v, nil
}

// FindStackingVector returns an integer 3-vector w satisfying n·w =
// gcd(h, k, l), searching the lattice of integer vectors with components
// in [-10, 10] in lexicographic order. Falls back to a coordinate axis
// vector when no solution is found in that box (spec §4.1, §9).
func FindStackingVector(h, k, l int) IVec3 {
	n := IVec3{h, k, l}
	target := gcd3(h, k, l)

	const bound = 10
	for x := -bound; x <= bound; x++ {
		for y := -bound; y <= bound; y++ {
			for z := -bound; z <= bound; z++ {
				w := IVec3{x, y, z}
				if n.Dot(w) == target {
					return w
				}
			}
		}
	}

	switch {
	case h != 0:
		return IVec3{1, 0, 0}
	case k != 0:
		return IVec3{0, 1, 0}
	default:
		return IVec3{0, 0, 1}
	}
}
