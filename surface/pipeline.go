// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package surface composes the Miller-plane basis search, lattice
// reduction, slab geometry solver, population, and dipole reconstructor
// into the single pipeline entry point the rest of the module drives.
package surface

import (
	"github.com/cpmech/gosl/io"

	"github.com/gokay-avci/PolySURF/crystal"
	"github.com/gokay-avci/PolySURF/dipole"
	"github.com/gokay-avci/PolySURF/populate"
	"github.com/gokay-avci/PolySURF/slabgeom"
	"github.com/gokay-avci/PolySURF/tagger"
	"github.com/gokay-avci/PolySURF/voidcrawler"
)

// Config is the pipeline's full option record (spec §6).
type Config struct {
	MillerH, MillerK, MillerL int
	Thickness                 float64
	Vacuum                    float64
	Offset                    *float64 // nil selects the void-crawler fallback
	Reconstruct               bool

	InputCIFPath    string
	EnableMOFID     bool
	MOFIDOutputRoot string
	NodesDir        string
	LinkersDir      string

	// PlaneTolerance and MatchTolerance override the dipole reconstructor's
	// z-clustering tolerance and the semantic tagger's PBC-match tolerance
	// (spec §9); zero selects each collaborator's own default.
	PlaneTolerance float64
	MatchTolerance float64
}

// GenerateSurface builds the slab exposing config's Miller plane from
// bulk, preserving molecules already identified in the bulk, applying
// the optional dipole reconstruction, and returns the new slab Crystal
// together with a human-readable report (spec §6).
func GenerateSurface(bulk *crystal.Crystal, molecules []crystal.Molecule, config Config) (*crystal.Crystal, string, error) {
	geo, err := slabgeom.ComputeGeometry(bulk, config.MillerH, config.MillerK, config.MillerL, config.Thickness, config.Vacuum)
	if err != nil {
		return nil, "", err
	}

	var warnings string
	if geo.AspectRatioWarning {
		warnings += io.Sf("Warning: in-plane aspect ratio %.2f exceeds 5; consider a different cell choice.\n", geo.AspectRatio)
	}

	var tagReport string
	if config.EnableMOFID {
		if config.InputCIFPath == "" {
			tagReport = "\nWarning: with-mofid requested but no input path available."
		} else {
			manifest := tagger.Manifest{NodesDir: config.NodesDir, LinkersDir: config.LinkersDir}
			report, err := tagger.TagStructure(bulk, manifest, config.MatchTolerance)
			if err != nil {
				return nil, "", err
			}
			tagReport = "\n" + report
		}
	}

	offset := 0.0
	if config.Offset != nil {
		offset = *config.Offset
	} else {
		cuts := voidcrawler.FindSafeOffsets(bulk, geo.Normal)
		if len(cuts) > 0 {
			offset = cuts[0].OffsetZ
		}
	}

	atoms, err := populate.Populate(bulk, geo, molecules, offset)
	if err != nil {
		return nil, "", err
	}

	slabLattice, err := crystal.NewLattice(geo.Basis.Col(0), geo.Basis.Col(1), geo.Basis.Col(2))
	if err != nil {
		return nil, "", err
	}
	slab := crystal.NewCrystal(slabLattice, atoms)

	mode := dipole.None
	if config.Reconstruct {
		mode = dipole.DipoleCorrection
	}
	dipoleReport := dipole.Stabilize(slab.Atoms, slab.Lattice, mode, config.PlaneTolerance)

	report := io.Sf("%sGenerated (%d %d %d) slab: %d layers, d_hkl = %.4f A, %d atoms.\n%s",
		warnings, config.MillerH, config.MillerK, config.MillerL, geo.NLayers, geo.DHKL, len(slab.Atoms), dipoleReport)
	report += tagReport

	return slab, report, nil
}
