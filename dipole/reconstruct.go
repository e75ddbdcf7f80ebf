// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dipole clusters a slab's atoms into z-planes, estimates a net
// dipole from nominal ionic charges, and, when the dipole is significant,
// moves part of the top plane onto a ghost plane below the bottom surface.
package dipole

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/io"

	"github.com/gokay-avci/PolySURF/crystal"
)

// Mode selects whether Stabilize performs any reconstruction.
type Mode int

const (
	// None leaves the slab untouched.
	None Mode = iota
	// DipoleCorrection runs the plane-clustering and ghost-plane relocation.
	DipoleCorrection
)

// defaultPlaneTolerance is the z-clustering tolerance τ of spec §4.6, step 2.
const defaultPlaneTolerance = 0.25

// dipoleThreshold is the minimum |D| (e·Å) that triggers reconstruction.
const dipoleThreshold = 0.5

// nominalCharge looks up the nominal ionic charge of an element by the
// spec §4.6 step 3 table; unlisted elements carry no charge.
func nominalCharge(element string) float64 {
	switch element {
	case "Li", "Na", "K", "H":
		return 1.0
	case "Mg", "Ca", "Zn", "Fe":
		return 2.0
	case "Al":
		return 3.0
	case "F", "Cl", "Br", "I":
		return -1.0
	case "O", "S":
		return -2.0
	case "N":
		return -3.0
	default:
		return 0.0
	}
}

// Stabilize clusters atoms into z-planes relative to lattice's normal
// direction, estimates a net dipole from nominal ionic charges, and, when
// the dipole exceeds threshold and the geometry allows it, relocates part
// of the top plane onto a ghost plane mirrored below the bottom surface
// (spec §4.6). It mutates atoms in place and returns a human-readable
// report. Atom count is always preserved.
//
// planeTol is the z-clustering tolerance (spec §9 keeps it configurable
// at the reconstruction boundary); a value ≤ 0 selects the default 0.25 Å.
func Stabilize(atoms []crystal.Atom, lattice *crystal.Lattice, mode Mode, planeTol float64) string {
	if mode == None || len(atoms) == 0 {
		return "No reconstruction applied."
	}
	if planeTol <= 0 {
		planeTol = defaultPlaneTolerance
	}

	n := len(atoms)
	cart := make([]crystal.Vec3, n)
	for i, a := range atoms {
		cart[i] = lattice.ToCartesian(a.Frac)
	}

	// heights along the slab normal, i.e. the direction of the lattice's c column
	normal := lattice.M.Col(2)
	normal = normal.Scale(1.0 / normal.Norm())
	zs := make([]float64, n)
	for i := range cart {
		zs[i] = cart[i].Dot(normal)
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return zs[order[i]] < zs[order[j]] })

	var planes [][]int
	current := []int{order[0]}
	currentZ := zs[order[0]]
	for _, idx := range order[1:] {
		z := zs[idx]
		if math.Abs(z-currentZ) < planeTol {
			current = append(current, idx)
		} else {
			planes = append(planes, current)
			current = []int{idx}
			currentZ = z
		}
	}
	planes = append(planes, current)

	var dipoleZ float64
	for i, a := range atoms {
		dipoleZ += nominalCharge(a.Element) * zs[i]
	}

	if math.Abs(dipoleZ) > dipoleThreshold && len(planes) > 1 {
		topPlane := planes[len(planes)-1]
		numToMove := len(topPlane) / 2

		if numToMove > 0 {
			bottomPlane := planes[0]
			bottomNextPlane := planes[1]

			topCentroid := averagePos(cart, topPlane)
			vUp := averagePos(cart, bottomNextPlane).Sub(averagePos(cart, bottomPlane))
			vDown := vUp.Scale(-1)
			ghostCenter := averagePos(cart, bottomPlane).Add(vDown)

			for _, idx := range topPlane[:numToMove] {
				relToTop := cart[idx].Sub(topCentroid)
				newCart := ghostCenter.Add(relToTop)
				atoms[idx].Frac = lattice.ToFractional(newCart)
			}

			return io.Sf("Dipole detected (%.3f eA). Moved %d atoms to crystallographic bottom sites.", dipoleZ, numToMove)
		}
	}

	return io.Sf("Surface is stable (Dipole: %.3f eA).", dipoleZ)
}

// averagePos returns the centroid of cart over indices.
func averagePos(cart []crystal.Vec3, indices []int) crystal.Vec3 {
	var sum crystal.Vec3
	for _, i := range indices {
		sum = sum.Add(cart[i])
	}
	return sum.Scale(1.0 / float64(len(indices)))
}
