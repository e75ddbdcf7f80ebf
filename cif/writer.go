// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cif

import (
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/io"

	"github.com/gokay-avci/PolySURF/crystal"
)

// WriteCIF renders rep (anything exposing a lattice and an atom sequence)
// as the same key-value / loop_ subset ReadCIF understands, and writes it
// to path. Atom order is preserved so that CIF -> Crystal -> CIF -> Crystal
// round-trips identically.
func WriteCIF(path string, rep crystal.CIFRepresentable) error {
	lat := rep.GetLattice()
	atoms := rep.GetAtoms()

	a, b, c, alpha, beta, gamma := latticeParameters(lat)

	buf := io.Sf("_cell_length_a %.10f\n", a)
	buf += io.Sf("_cell_length_b %.10f\n", b)
	buf += io.Sf("_cell_length_c %.10f\n", c)
	buf += io.Sf("_cell_angle_alpha %.10f\n", alpha)
	buf += io.Sf("_cell_angle_beta %.10f\n", beta)
	buf += io.Sf("_cell_angle_gamma %.10f\n", gamma)
	buf += "loop_\n"
	buf += "_atom_site_type_symbol\n"
	buf += "_atom_site_fract_x\n"
	buf += "_atom_site_fract_y\n"
	buf += "_atom_site_fract_z\n"
	for _, at := range atoms {
		buf += io.Sf("%s %.10f %.10f %.10f\n", at.Element, at.Frac[0], at.Frac[1], at.Frac[2])
	}

	io.WriteFileSD(filepath.Dir(path), filepath.Base(path), buf)
	return nil
}

// latticeParameters recovers (a, b, c, alpha, beta, gamma) in degrees from
// a Cartesian lattice matrix, the inverse of NewLatticeFromParameters.
func latticeParameters(lat *crystal.Lattice) (a, b, c, alpha, beta, gamma float64) {
	av, bv, cv := lat.M.Col(0), lat.M.Col(1), lat.M.Col(2)
	a, b, c = av.Norm(), bv.Norm(), cv.Norm()
	alpha = angleDeg(bv, cv)
	beta = angleDeg(av, cv)
	gamma = angleDeg(av, bv)
	return
}

func angleDeg(u, v crystal.Vec3) float64 {
	return math.Acos(u.Dot(v)/(u.Norm()*v.Norm())) * 180.0 / math.Pi
}
