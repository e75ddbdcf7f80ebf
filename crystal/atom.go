// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

// ComponentTag classifies an atom's semantic role within a framework
// structure. The set is closed; new members must not be added without
// updating every switch over ComponentTag in this module.
type ComponentTag int

const (
	// Unknown is the default tag assigned at parse time.
	Unknown ComponentTag = iota
	// MetalNode marks an atom matched to a metal secondary building unit.
	MetalNode
	// OrganicLinker marks an atom matched to an organic linker fragment.
	OrganicLinker
	// Solvent marks a guest solvent atom.
	Solvent
	// Adsorbate marks a guest adsorbate atom.
	Adsorbate
)

// String renders the tag's name.
func (t ComponentTag) String() string {
	switch t {
	case MetalNode:
		return "MetalNode"
	case OrganicLinker:
		return "OrganicLinker"
	case Solvent:
		return "Solvent"
	case Adsorbate:
		return "Adsorbate"
	default:
		return "Unknown"
	}
}

// Atom is an element symbol, its fractional coordinates in the owning
// crystal's lattice, and its component tag.
type Atom struct {
	Element string
	Frac    Vec3
	Tag     ComponentTag
}
