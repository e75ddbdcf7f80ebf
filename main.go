// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/cpmech/gosl/io"

	"github.com/gokay-avci/PolySURF/cif"
	"github.com/gokay-avci/PolySURF/molfind"
	"github.com/gokay-avci/PolySURF/surface"
)

// bondCutoff is the distance cutoff handed to the molecule finder before
// the slab is populated (spec §2's "separate molecule-finder pass").
const bondCutoff = 2.0

func main() {

	input := flag.String("input", "", "path to the input CIF file")
	output := flag.String("output", "slab.cif", "path to write the generated slab CIF")
	thickness := flag.Float64("thickness", 15.0, "target material thickness (A)")
	vacuum := flag.Float64("vacuum", 15.0, "vacuum padding along c' (A)")
	offsetFlag := flag.Float64("offset", -1.0, "cut origin along the normal (A); negative selects the auto-offset collaborator")
	reconstruct := flag.Bool("reconstruct", false, "enable dipole reconstruction")
	withMofid := flag.Bool("with-mofid", false, "enable MOFid semantic decomposition")
	nodesDir := flag.String("nodes-dir", "", "directory of metal-node fragment files")
	linkersDir := flag.String("linkers-dir", "", "directory of organic-linker fragment files")
	exposeNodes := flag.Bool("expose-nodes", false, "prefer node-terminated surfaces")
	exposeLinkers := flag.Bool("expose-linkers", false, "prefer linker-terminated surfaces")
	flag.Parse()

	io.PfWhite("\nPolySURF -- crystallographic surface slab generator\n\n")
	io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
	io.Pf("Use of this source code is governed by a BSD-style\n")
	io.Pf("license that can be found in the LICENSE file.\n\n")

	if *exposeNodes && *exposeLinkers {
		io.PfRed("ERROR: --expose-nodes and --expose-linkers cannot be used together.\n")
		os.Exit(2)
	}

	args := flag.Args()
	if *input == "" || len(args) < 3 {
		io.PfRed("ERROR: usage: %s --input FILE.cif --output OUT.cif [options] h k l\n", os.Args[0])
		os.Exit(1)
	}

	h, errH := strconv.Atoi(args[0])
	k, errK := strconv.Atoi(args[1])
	l, errL := strconv.Atoi(args[2])
	if errH != nil || errK != nil || errL != nil {
		io.PfRed("ERROR: Miller indices h, k, l must be integers\n")
		os.Exit(1)
	}

	io.Pf("Reading structure from %s...\n", *input)
	bulk, err := cif.ReadCIF(*input)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
	io.Pf("-> loaded %d atoms.\n", len(bulk.Atoms))

	io.Pf("Analyzing connectivity...\n")
	molecules, _ := molfind.FindMolecules(bulk, bondCutoff)

	var offsetPtr *float64
	if *offsetFlag >= 0.0 {
		offsetPtr = offsetFlag
	}

	config := surface.Config{
		MillerH: h, MillerK: k, MillerL: l,
		Thickness:   *thickness,
		Vacuum:      *vacuum,
		Offset:      offsetPtr,
		Reconstruct: *reconstruct,

		InputCIFPath:    *input,
		EnableMOFID:     *withMofid,
		MOFIDOutputRoot: "",
		NodesDir:        *nodesDir,
		LinkersDir:      *linkersDir,
	}

	io.Pf("Generating (%d %d %d) slab...\n", h, k, l)
	slab, report, err := surface.GenerateSurface(bulk, molecules, config)
	if err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}

	io.Pfyel("\nSuccess!\n")
	io.Pf("%s\n", report)

	io.Pf("Writing output to %s...\n", *output)
	if err := cif.WriteCIF(*output, slab); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}
