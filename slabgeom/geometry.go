// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slabgeom solves for the Cartesian slab basis that exposes a
// requested (h, k, l) plane: interplanar spacing, layer count, and the
// reduced in-plane basis vectors.
package slabgeom

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/gokay-avci/PolySURF/crystal"
	"github.com/gokay-avci/PolySURF/miller"
	"github.com/gokay-avci/PolySURF/reduce"
)

// aspectRatioWarnLimit is the non-fatal aspect-ratio threshold of spec §4.4.
const aspectRatioWarnLimit = 5.0

// reciprocalNormalTol is the minimum reciprocal-normal length before the
// Miller indices are rejected as InvalidIndices.
const reciprocalNormalTol = 1e-9

// Geometry is the Cartesian slab basis (a', b', c'), the interplanar
// spacing, the integer layer count, and the vacuum thickness (spec §3).
type Geometry struct {
	Basis     crystal.Mat3 // columns: a', b', c' (c' along the surface normal)
	DHKL      float64
	NLayers   int
	Vacuum    float64
	Normal    crystal.Vec3 // unit surface normal ĥ
	AspectRatioWarning bool
	AspectRatio        float64
}

// ComputeGeometry builds the slab geometry for (h, k, l) over the given
// bulk crystal, targeting a material thickness and a vacuum padding
// (spec §4.4).
func ComputeGeometry(c *crystal.Crystal, h, k, l int, targetThickness, vacuum float64) (*Geometry, error) {
	uInt, vInt, err := miller.FindPrimitiveInPlaneBasis(h, k, l)
	if err != nil {
		return nil, err
	}
	uInt, vInt = reduce.Reduce2DInteger(uInt, vInt)

	uCart := c.Lattice.ToCartesian(crystal.Vec3{float64(uInt[0]), float64(uInt[1]), float64(uInt[2])})
	vCart := c.Lattice.ToCartesian(crystal.Vec3{float64(vInt[0]), float64(vInt[1]), float64(vInt[2])})

	lenU, lenV := uCart.Norm(), vCart.Norm()
	ratio := lenU / lenV
	if lenV > lenU {
		ratio = lenV / lenU
	}
	warn := ratio > aspectRatioWarnLimit

	g := c.Lattice.R.MulVec(crystal.Vec3{float64(h), float64(k), float64(l)})
	gNorm := g.Norm()
	if gNorm < reciprocalNormalTol {
		return nil, chk.Err("InvalidIndices: reciprocal normal for (%d, %d, %d) has length %g, below tolerance %g", h, k, l, gNorm, reciprocalNormalTol)
	}
	dHKL := 1.0 / gNorm
	normal := g.Scale(1.0 / gNorm)

	nLayers := int(math.Round(targetThickness / dHKL))
	if nLayers < 1 {
		nLayers = 1
	}
	slabHeight := float64(nLayers) * dHKL

	cSlab := normal.Scale(slabHeight + vacuum)

	auxiliary := crystal.Mat3{uCart, vCart, normal.Scale(10000.0)}
	reduced := reduce.LLL3(auxiliary)

	basis := crystal.Mat3{reduced.Col(0), reduced.Col(1), cSlab}

	return &Geometry{
		Basis:              basis,
		DHKL:               dHKL,
		NLayers:            nLayers,
		Vacuum:             vacuum,
		Normal:             normal,
		AspectRatioWarning: warn,
		AspectRatio:        ratio,
	}, nil
}
