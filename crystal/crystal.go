// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

// Crystal is a lattice plus an ordered sequence of atoms. It owns both
// exclusively: the CIF-parsing collaborator and the slab populator
// create Crystal values; the semantic tagger mutates tags in place and
// the dipole reconstructor mutates coordinates in place.
type Crystal struct {
	Lattice *Lattice
	Atoms   []Atom
}

// NewCrystal builds a Crystal from a lattice and an atom slice.
func NewCrystal(lattice *Lattice, atoms []Atom) *Crystal {
	return &Crystal{Lattice: lattice, Atoms: atoms}
}

// CIFRepresentable is the one abstraction point of the data model (spec
// §9): anything exposing a lattice and an atom sequence. Crystal and any
// fragment-sized stand-in (e.g. a parsed tagger fragment) can implement
// it without pulling in the whole pipeline.
type CIFRepresentable interface {
	GetLattice() *Lattice
	GetAtoms() []Atom
}

// GetLattice implements CIFRepresentable.
func (c *Crystal) GetLattice() *Lattice { return c.Lattice }

// GetAtoms implements CIFRepresentable.
func (c *Crystal) GetAtoms() []Atom { return c.Atoms }
