// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package voidcrawler projects the bulk crystal onto a candidate surface
// normal and, by a sweep-line interval merge over van der Waals spheres,
// finds the largest empty gaps where a cut can safely be made.
package voidcrawler

import (
	"math"
	"sort"

	"github.com/gokay-avci/PolySURF/crystal"
)

// SafeCut is a candidate cut location along the surface normal.
type SafeCut struct {
	OffsetZ      float64
	GapSize      float64
	QualityScore float64
}

// minGap is the smallest interval-merge gap worth reporting (Å).
const minGap = 0.01

// perfectGap is the van der Waals gap size treated as a maximal-quality cut.
const perfectGap = 3.0

type sphere struct {
	z float64
	r float64
}

// FindSafeOffsets projects c's atoms (as van der Waals spheres) onto
// normal, replicates them across one periodicity to handle wraparound,
// and returns candidate cut offsets sorted by gap size, largest first
// (spec §6). Accepts any Cartesian normal vector; results fall in
// [0, periodicity].
func FindSafeOffsets(c *crystal.Crystal, normal crystal.Vec3) []SafeCut {
	n := normal.Scale(1.0 / normal.Norm())

	projA := math.Abs(c.Lattice.M.Col(0).Dot(n))
	projB := math.Abs(c.Lattice.M.Col(1).Dot(n))
	projC := math.Abs(c.Lattice.M.Col(2).Dot(n))
	periodicity := math.Max(projA, math.Max(projB, projC))

	var spheres []sphere
	for _, a := range c.Atoms {
		cart := c.Lattice.ToCartesian(a.Frac)
		z := cart.Dot(n)
		r := vdwRadius(a.Element)
		zMod := math.Mod(math.Mod(z, periodicity)+periodicity, periodicity)
		spheres = append(spheres, sphere{zMod, r})
		spheres = append(spheres, sphere{zMod - periodicity, r})
		spheres = append(spheres, sphere{zMod + periodicity, r})
	}

	if len(spheres) == 0 {
		return []SafeCut{{OffsetZ: 0.0, GapSize: 10.0, QualityScore: 1.0}}
	}

	type interval struct{ start, end float64 }
	intervals := make([]interval, len(spheres))
	for i, s := range spheres {
		intervals[i] = interval{s.z - s.r, s.z + s.r}
	}
	sort.Slice(intervals, func(i, j int) bool { return intervals[i].start < intervals[j].start })

	var merged []interval
	currentStart, currentEnd := intervals[0].start, intervals[0].end
	for _, iv := range intervals[1:] {
		if iv.start < currentEnd {
			if iv.end > currentEnd {
				currentEnd = iv.end
			}
		} else {
			merged = append(merged, interval{currentStart, currentEnd})
			currentStart, currentEnd = iv.start, iv.end
		}
	}
	merged = append(merged, interval{currentStart, currentEnd})

	var cuts []SafeCut
	for i := 0; i+1 < len(merged); i++ {
		occupiedEnd := merged[i].end
		occupiedStart := merged[i+1].start
		gapSize := occupiedStart - occupiedEnd
		if gapSize <= minGap {
			continue
		}
		midPoint := occupiedEnd + gapSize/2.0
		if midPoint < 0.0 || midPoint > periodicity {
			continue
		}
		score := gapSize / perfectGap
		if score > 1.0 {
			score = 1.0
		}
		cuts = append(cuts, SafeCut{OffsetZ: midPoint, GapSize: gapSize, QualityScore: score})
	}

	sort.Slice(cuts, func(i, j int) bool { return cuts[i].GapSize > cuts[j].GapSize })
	return cuts
}

// vdwRadius returns the Alvarez (2013) van der Waals radius (Å) for an
// element, falling back to 1.80 Å for anything not tabulated.
func vdwRadius(element string) float64 {
	switch element {
	case "H":
		return 1.20
	case "He":
		return 1.40
	case "Li":
		return 1.82
	case "Be":
		return 1.53
	case "B":
		return 1.92
	case "C":
		return 1.70
	case "N":
		return 1.55
	case "O":
		return 1.52
	case "F":
		return 1.47
	case "Ne":
		return 1.54
	case "Na":
		return 2.27
	case "Mg":
		return 1.73
	case "Al":
		return 1.84
	case "Si":
		return 2.10
	case "P":
		return 1.80
	case "S":
		return 1.80
	case "Cl":
		return 1.75
	case "Ar":
		return 1.88
	case "K":
		return 2.75
	case "Ca":
		return 2.31
	case "Sc":
		return 2.11
	case "Ti":
		return 2.00
	case "V":
		return 2.00
	case "Cr":
		return 2.00
	case "Mn":
		return 2.00
	case "Fe":
		return 2.00
	case "Co":
		return 2.00
	case "Ni":
		return 1.63
	case "Cu":
		return 1.40
	case "Zn":
		return 1.39
	case "Ga":
		return 1.87
	case "Ge":
		return 2.11
	case "As":
		return 1.85
	case "Se":
		return 1.90
	case "Br":
		return 1.85
	case "Kr":
		return 2.02
	case "Rb":
		return 3.03
	case "Sr":
		return 2.49
	case "Pd":
		return 1.63
	case "Ag":
		return 1.72
	case "Cd":
		return 1.58
	case "In":
		return 1.93
	case "Sn":
		return 2.17
	case "Sb":
		return 2.06
	case "Te":
		return 2.06
	case "I":
		return 1.98
	case "Xe":
		return 2.16
	case "Cs":
		return 3.43
	case "Ba":
		return 2.68
	case "Pt":
		return 1.75
	case "Au":
		return 1.66
	case "Hg":
		return 1.55
	case "Tl":
		return 1.96
	case "Pb":
		return 2.02
	case "Bi":
		return 2.07
	case "Po":
		return 1.97
	case "At":
		return 2.02
	case "Rn":
		return 2.20
	default:
		return 1.80
	}
}
