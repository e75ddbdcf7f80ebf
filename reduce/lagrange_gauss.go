// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reduce implements lattice basis reduction: 2D integer
// Lagrange-Gauss reduction and 3D floating-point LLL reduction.
package reduce

import (
	"math"

	"github.com/gokay-avci/PolySURF/miller"
)

// Reduce2DInteger applies Lagrange-Gauss reduction to the integer 2D
// sublattice spanned by (u, v), returning the shortest pair of integer
// vectors spanning the same sublattice, with |u| <= |v| and
// 2|u.v| <= u.u. Fails soft (returns the inputs unchanged) when u is the
// zero vector.
func Reduce2DInteger(u, v miller.IVec3) (miller.IVec3, miller.IVec3) {
	if u.Dot(u) > v.Dot(v) {
		u, v = v, u
	}

	for {
		uu := u.Dot(u)
		if uu == 0 {
			return u, v
		}
		mu := int(math.Round(float64(u.Dot(v)) / float64(uu)))
		if mu == 0 {
			return u, v
		}
		candidate := miller.IVec3{
			v[0] - mu*u[0],
			v[1] - mu*u[1],
			v[2] - mu*u[2],
		}
		if candidate.Dot(candidate) >= v.Dot(v) {
			return u, v
		}
		v = candidate
		if u.Dot(u) > v.Dot(v) {
			u, v = v, u
		}
	}
}
