// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package crystal holds the core data model: lattices, atoms and the
// crystal/molecule containers built on them.
package crystal

import "math"

// Vec3 is a Cartesian or fractional 3-vector.
type Vec3 [3]float64

// Add returns u+v.
func (u Vec3) Add(v Vec3) Vec3 {
	return Vec3{u[0] + v[0], u[1] + v[1], u[2] + v[2]}
}

// Sub returns u-v.
func (u Vec3) Sub(v Vec3) Vec3 {
	return Vec3{u[0] - v[0], u[1] - v[1], u[2] - v[2]}
}

// Scale returns s*u.
func (u Vec3) Scale(s float64) Vec3 {
	return Vec3{s * u[0], s * u[1], s * u[2]}
}

// Dot returns u·v.
func (u Vec3) Dot(v Vec3) float64 {
	return u[0]*v[0] + u[1]*v[1] + u[2]*v[2]
}

// Cross returns u×v.
func (u Vec3) Cross(v Vec3) Vec3 {
	return Vec3{
		u[1]*v[2] - u[2]*v[1],
		u[2]*v[0] - u[0]*v[2],
		u[0]*v[1] - u[1]*v[0],
	}
}

// Norm returns |u|.
func (u Vec3) Norm() float64 {
	return math.Sqrt(u.Dot(u))
}

// Floor returns the componentwise floor of u.
func (u Vec3) Floor() Vec3 {
	return Vec3{math.Floor(u[0]), math.Floor(u[1]), math.Floor(u[2])}
}

// RoundToZero applies d - round(d) componentwise, folding each component
// into (-1/2, 1/2].
func (u Vec3) RoundToZero() Vec3 {
	var out Vec3
	for i, d := range u {
		r := d - math.Round(d)
		// round(d) can push r to exactly -0.5; fold the closed boundary to +0.5
		// so the result always lies in (-1/2, 1/2].
		if r <= -0.5 {
			r += 1
		}
		out[i] = r
	}
	return out
}

// Mat3 is a 3x3 matrix stored as three column vectors.
type Mat3 [3]Vec3

// Col returns column i.
func (m Mat3) Col(i int) Vec3 {
	return m[i]
}

// SetCol returns a copy of m with column i replaced by v.
func (m Mat3) SetCol(i int, v Vec3) Mat3 {
	m[i] = v
	return m
}

// MulVec returns M·x.
func (m Mat3) MulVec(x Vec3) Vec3 {
	return Vec3{
		m[0][0]*x[0] + m[1][0]*x[1] + m[2][0]*x[2],
		m[0][1]*x[0] + m[1][1]*x[1] + m[2][1]*x[2],
		m[0][2]*x[0] + m[1][2]*x[1] + m[2][2]*x[2],
	}
}

// Transpose returns Mᵀ.
func (m Mat3) Transpose() Mat3 {
	var t Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			t[i][j] = m[j][i]
		}
	}
	return t
}

// Det returns the determinant of m.
func (m Mat3) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[1][0]*(m[0][1]*m[2][2]-m[0][2]*m[2][1]) +
		m[2][0]*(m[0][1]*m[1][2]-m[0][2]*m[1][1])
}

// Inverse returns M⁻¹ and whether m was non-singular (|det| above tol).
func (m Mat3) Inverse(tol float64) (Mat3, bool) {
	det := m.Det()
	if math.Abs(det) < tol {
		return Mat3{}, false
	}
	invDet := 1.0 / det
	var adj Mat3
	// adjugate of the transpose, i.e. cofactor matrix transposed, gives
	// the classical adjugate directly in column-major form used here.
	adj[0] = Vec3{
		(m[1][1]*m[2][2] - m[1][2]*m[2][1]) * invDet,
		-(m[0][1]*m[2][2] - m[0][2]*m[2][1]) * invDet,
		(m[0][1]*m[1][2] - m[0][2]*m[1][1]) * invDet,
	}
	adj[1] = Vec3{
		-(m[1][0]*m[2][2] - m[1][2]*m[2][0]) * invDet,
		(m[0][0]*m[2][2] - m[0][2]*m[2][0]) * invDet,
		-(m[0][0]*m[1][2] - m[0][2]*m[1][0]) * invDet,
	}
	adj[2] = Vec3{
		(m[1][0]*m[2][1] - m[1][1]*m[2][0]) * invDet,
		-(m[0][0]*m[2][1] - m[0][1]*m[2][0]) * invDet,
		(m[0][0]*m[1][1] - m[0][1]*m[1][0]) * invDet,
	}
	return adj, true
}
