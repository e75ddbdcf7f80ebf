// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package populate enumerates periodic images of the bulk crystal (or
// whole molecules) that fall inside the slab's layer window, centres the
// material in the new cell, and expresses the result in the slab basis.
package populate

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/gokay-avci/PolySURF/crystal"
	"github.com/gokay-avci/PolySURF/slabgeom"
)

// layerEpsilon is the layer-index-space tolerance of spec §4.5.
const layerEpsilon = 1e-3

// cellHeightTol is the minimum acceptable bulk-cell projection along the
// surface normal before the cell is rejected as degenerate.
const cellHeightTol = 1e-9

type emittedAtom struct {
	element string
	pos     crystal.Vec3
	tag     crystal.ComponentTag
}

// Populate enumerates periodic images of bulk atoms (or, when molecules
// is non-empty, whole molecules) that fall within the slab's layer
// window, centres the material along the surface normal, and returns the
// atoms expressed as fractional coordinates in the new slab basis
// (spec §4.5).
func Populate(c *crystal.Crystal, g *slabgeom.Geometry, molecules []crystal.Molecule, offset float64) ([]crystal.Atom, error) {
	normal := g.Normal
	d := g.DHKL
	n := g.NLayers

	offsetIdx := offset / d
	minIdx := offsetIdx - layerEpsilon
	maxIdx := offsetIdx + float64(n) - layerEpsilon

	projA := math.Abs(c.Lattice.M.Col(0).Dot(normal))
	projB := math.Abs(c.Lattice.M.Col(1).Dot(normal))
	projC := math.Abs(c.Lattice.M.Col(2).Dot(normal))
	cellHeight := math.Max(projA, math.Max(projB, projC))
	if cellHeight < cellHeightTol {
		return nil, chk.Err("DegenerateCell: bulk cell projection along the surface normal is %g, below tolerance %g", cellHeight, cellHeightTol)
	}

	totalSlabHeight := float64(n) * d
	repeats := int(math.Ceil(totalSlabHeight/cellHeight)) + 3

	var emitted []emittedAtom

	if len(molecules) > 0 {
		for i := -repeats; i <= repeats; i++ {
			for j := -repeats; j <= repeats; j++ {
				for k := -repeats; k <= repeats; k++ {
					shift := c.Lattice.ToCartesian(crystal.Vec3{float64(i), float64(j), float64(k)})
					for _, mol := range molecules {
						shiftedCOM := mol.COM.Add(shift)
						layerVal := shiftedCOM.Dot(normal) / d
						if layerVal < minIdx || layerVal >= maxIdx {
							continue
						}
						for _, a := range mol.Atoms {
							emitted = append(emitted, emittedAtom{
								element: a.Element,
								pos:     a.Pos.Add(shift),
								tag:     crystal.Unknown,
							})
						}
					}
				}
			}
		}
	} else {
		for i := -repeats; i <= repeats; i++ {
			for j := -repeats; j <= repeats; j++ {
				for k := -repeats; k <= repeats; k++ {
					shift := c.Lattice.ToCartesian(crystal.Vec3{float64(i), float64(j), float64(k)})
					for _, a := range c.Atoms {
						pos := c.Lattice.ToCartesian(a.Frac).Add(shift)
						layerVal := pos.Dot(normal) / d
						if layerVal < minIdx || layerVal >= maxIdx {
							continue
						}
						emitted = append(emitted, emittedAtom{element: a.Element, pos: pos, tag: a.Tag})
					}
				}
			}
		}
	}

	if len(emitted) == 0 {
		return nil, chk.Err("EmptySlab: no atoms fell within the slab window for thickness covering %d layers; raise the thickness or review the offset", n)
	}

	zMin, zMax := math.Inf(1), math.Inf(-1)
	for _, a := range emitted {
		z := a.pos.Dot(normal)
		if z < zMin {
			zMin = z
		}
		if z > zMax {
			zMax = z
		}
	}

	totalBoxHeight := g.Basis.Col(2).Norm()
	materialSpan := zMax - zMin
	targetStart := (totalBoxHeight - materialSpan) / 2
	shiftVal := targetStart - zMin
	shiftVec := normal.Scale(shiftVal)

	basisInv, ok := g.Basis.Inverse(1e-12)
	if !ok {
		return nil, chk.Err("SingularSlab: slab basis is not invertible")
	}

	out := make([]crystal.Atom, len(emitted))
	for i, a := range emitted {
		shiftedCart := a.pos.Add(shiftVec)
		frac := basisInv.MulVec(shiftedCart)
		out[i] = crystal.Atom{Element: a.element, Frac: frac, Tag: a.tag}
	}

	return out, nil
}
