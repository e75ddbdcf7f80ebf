// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// detTol is the minimum acceptable |det M| for a lattice matrix (spec §3).
const detTol = 1e-6

// Lattice is a 3x3 real matrix M whose columns are the three lattice
// vectors a, b, c in Cartesian space, together with its reciprocal
// partner R = (M^-1)^T.
type Lattice struct {
	M Mat3 // columns: a, b, c
	R Mat3 // reciprocal: R^T M = I
}

// NewLattice builds a Lattice from its three Cartesian column vectors.
// Fails with chk.Err when |det M| < 1e-6.
func NewLattice(a, b, c Vec3) (*Lattice, error) {
	m := Mat3{a, b, c}
	if math.Abs(m.Det()) < detTol {
		return nil, chk.Err("lattice matrix is degenerate: |det M| = %g is below tolerance %g", math.Abs(m.Det()), detTol)
	}
	inv, ok := m.Inverse(detTol)
	if !ok {
		return nil, chk.Err("lattice matrix is not invertible")
	}
	return &Lattice{M: m, R: inv.Transpose()}, nil
}

// NewLatticeFromParameters builds a Lattice from six scalar cell
// parameters (a, b, c, alpha, beta, gamma in degrees) using the standard
// lower-triangular convention. Fails with chk.Err (kind InvalidAngles)
// when 1 - cos^2(alpha) - cos^2(beta) - cos^2(gamma) + 2 cos(alpha) cos(beta) cos(gamma) <= 0.
func NewLatticeFromParameters(a, b, c, alphaDeg, betaDeg, gammaDeg float64) (*Lattice, error) {
	alpha := alphaDeg * math.Pi / 180
	beta := betaDeg * math.Pi / 180
	gamma := gammaDeg * math.Pi / 180

	cosA, cosB, cosG := math.Cos(alpha), math.Cos(beta), math.Cos(gamma)
	sinG := math.Sin(gamma)

	volumeFactor := 1 - cosA*cosA - cosB*cosB - cosG*cosG + 2*cosA*cosB*cosG
	if volumeFactor <= 0 {
		return nil, chk.Err("InvalidAngles: cell angles (%g, %g, %g) do not describe a valid unit cell (volume factor %g <= 0)", alphaDeg, betaDeg, gammaDeg, volumeFactor)
	}

	av := Vec3{a, 0, 0}
	bv := Vec3{b * cosG, b * sinG, 0}
	cx := c * cosB
	cy := c * (cosA - cosB*cosG) / sinG
	cz := c * math.Sqrt(volumeFactor) / sinG
	cv := Vec3{cx, cy, cz}

	return NewLattice(av, bv, cv)
}

// ToCartesian returns M·f, the Cartesian position of fractional coords f.
func (l *Lattice) ToCartesian(f Vec3) Vec3 {
	return l.M.MulVec(f)
}

// ToFractional returns R^T·x, the fractional coords of Cartesian position x.
func (l *Lattice) ToFractional(x Vec3) Vec3 {
	return l.R.Transpose().MulVec(x)
}

// MinImage returns the minimum-image Cartesian vector from f1 to f2 under
// periodic boundary conditions: M · round-to-zero(f2 - f1).
func (l *Lattice) MinImage(f1, f2 Vec3) Vec3 {
	d := f2.Sub(f1).RoundToZero()
	return l.ToCartesian(d)
}
