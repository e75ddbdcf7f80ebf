// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package molfind builds the bond graph of a bulk crystal under periodic
// boundary conditions, extracts its connected components, and unwraps
// each into a whole-molecule set of Cartesian positions.
package molfind

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/lvlath/core"

	"github.com/gokay-avci/PolySURF/crystal"
)

// FindMolecules builds an undirected bond graph over crystal's atoms
// (edge when the minimum-image Cartesian distance is below cutoff),
// extracts its connected components by breadth-first search, and
// unwraps each component into a Molecule with Cartesian (non-wrapped)
// positions and a canonically shifted centre of mass. It also returns
// the set of atom indices that belong to any returned molecule.
//
// Isolated atoms (no bond under cutoff) form their own one-element
// molecule, so every atom in the crystal is accounted for by exactly one
// molecule, and the returned index set equals the full atom range.
func FindMolecules(c *crystal.Crystal, cutoff float64) ([]crystal.Molecule, map[int]bool) {
	n := len(c.Atoms)
	g := core.NewGraph(core.WithDirected(false))
	for i := 0; i < n; i++ {
		_ = g.AddVertex(strconv.Itoa(i))
	}

	cutoffSq := cutoff * cutoff
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := c.Lattice.MinImage(c.Atoms[i].Frac, c.Atoms[j].Frac)
			if d.Dot(d) < cutoffSq {
				_, _ = g.AddEdge(strconv.Itoa(i), strconv.Itoa(j), 1.0)
			}
		}
	}

	visited := make([]bool, n)
	var molecules []crystal.Molecule
	assigned := make(map[int]bool, n)

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		component := bfsComponent(g, start, visited)
		sort.Ints(component)

		mol := unwrapComponent(c, g, component)
		molecules = append(molecules, mol)
		for _, idx := range component {
			assigned[idx] = true
		}
	}

	return molecules, assigned
}

// bfsComponent runs a breadth-first search from start over g (atom
// indices as string vertex IDs), marking visited and returning the
// component's atom indices in discovery order.
func bfsComponent(g *core.Graph, start int, visited []bool) []int {
	queue := []int{start}
	visited[start] = true
	var component []int

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		component = append(component, cur)

		neighborIDs, err := g.NeighborIDs(strconv.Itoa(cur))
		if err != nil {
			continue
		}
		// sort neighbor IDs numerically so traversal order is deterministic
		// regardless of the underlying graph's internal adjacency ordering.
		neighbors := make([]int, 0, len(neighborIDs))
		for _, id := range neighborIDs {
			v, err := strconv.Atoi(id)
			if err == nil {
				neighbors = append(neighbors, v)
			}
		}
		sort.Ints(neighbors)
		for _, nb := range neighbors {
			if !visited[nb] {
				visited[nb] = true
				queue = append(queue, nb)
			}
		}
	}
	return component
}

// unwrapComponent places the lowest-index atom (the anchor) at its
// Cartesian position, then walks the component's spanning BFS tree,
// setting each newly-reached atom's position to the anchor-relative
// minimum-image unwrap from its already-placed neighbour. Finally it
// shifts the whole molecule so its unwrapped centre of mass folds into
// the fundamental cell [0,1)^3 (spec §4.3 step 4).
func unwrapComponent(c *crystal.Crystal, g *core.Graph, component []int) crystal.Molecule {
	pos := make(map[int]crystal.Vec3, len(component))

	anchor := component[0]
	pos[anchor] = c.Lattice.ToCartesian(c.Atoms[anchor].Frac)

	visited := map[int]bool{anchor: true}
	queue := []int{anchor}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		neighborIDs, err := g.NeighborIDs(strconv.Itoa(cur))
		if err != nil {
			continue
		}
		for _, id := range neighborIDs {
			other, err := strconv.Atoi(id)
			if err != nil || visited[other] {
				continue
			}
			d := c.Lattice.MinImage(c.Atoms[cur].Frac, c.Atoms[other].Frac)
			pos[other] = pos[cur].Add(d)
			visited[other] = true
			queue = append(queue, other)
		}
	}

	var sum crystal.Vec3
	atoms := make([]crystal.MoleculeAtom, 0, len(component))
	for _, idx := range component {
		p := pos[idx]
		atoms = append(atoms, crystal.MoleculeAtom{Element: c.Atoms[idx].Element, Pos: p})
		sum = sum.Add(p)
	}
	com := sum.Scale(1.0 / float64(len(component)))

	comFrac := c.Lattice.ToFractional(com)
	shiftFrac := comFrac.Floor().Scale(-1)
	shift := c.Lattice.ToCartesian(shiftFrac)

	for i := range atoms {
		atoms[i].Pos = atoms[i].Pos.Add(shift)
	}
	com = com.Add(shift)

	return crystal.Molecule{Atoms: atoms, COM: com, AtomIndices: component}
}
