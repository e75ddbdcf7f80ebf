// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

// MoleculeAtom is one (element, Cartesian position) pair of an unwrapped
// molecule. Positions are true bonded separations, never wrapped into the
// primary cell.
type MoleculeAtom struct {
	Element string
	Pos     Vec3
}

// Molecule is an ordered sequence of unwrapped (element, position) pairs
// together with the molecule's centre of mass.
type Molecule struct {
	Atoms []MoleculeAtom
	COM   Vec3
	// AtomIndices holds the bulk-crystal atom indices that make up this
	// molecule, ascending, parallel to Atoms.
	AtomIndices []int
}
