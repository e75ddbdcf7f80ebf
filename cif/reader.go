// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cif reads and writes the small, P1-style subset of the CIF
// format this pipeline consumes: a handful of `_cell_*` key-value tags
// and one `loop_` block carrying atom sites.
package cif

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gokay-avci/PolySURF/crystal"
)

// parseCIFFloat strips a trailing uncertainty parenthesis, e.g.
// "1.234(5)" -> 1.234, before parsing.
func parseCIFFloat(s string) (float64, error) {
	if i := strings.Index(s, "("); i >= 0 {
		s = s[:i]
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, chk.Err("BadAtom: failed to parse %q as a float", s)
	}
	return v, nil
}

// ReadCIF reads a CIF file at path and returns the Crystal it describes.
// It recognises key-value `_cell_length_{a,b,c}` / `_cell_angle_{alpha,
// beta,gamma}` tags and a `loop_` block containing `_atom_site_type_symbol`
// and `_atom_site_fract_{x,y,z}` columns in any order. Fails with
// MissingTag, BadAtom, or EmptyStructure.
func ReadCIF(path string) (*crystal.Crystal, error) {
	raw, err := io.ReadFile(path)
	if err != nil {
		return nil, chk.Err("could not read CIF file %q: %v", path, err)
	}

	var lines []string
	for _, l := range strings.Split(string(raw), "\n") {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}

	cellParams := make(map[string]float64)
	var atoms []crystal.Atom

	i := 0
	for i < len(lines) {
		line := lines[i]

		switch {
		case strings.HasPrefix(line, "_cell_"):
			parts := strings.Fields(line)
			if len(parts) >= 2 {
				if v, err := parseCIFFloat(parts[1]); err == nil {
					cellParams[parts[0]] = v
				}
			}

		case strings.HasPrefix(line, "loop_"):
			i++
			var headers []string
			for i < len(lines) && strings.HasPrefix(lines[i], "_") {
				headers = append(headers, lines[i])
				i++
			}

			if headerIndex(headers, "_atom_site_fract_x") >= 0 {
				symbolIdx := headerIndex(headers, "_atom_site_type_symbol")
				xIdx := headerIndex(headers, "_atom_site_fract_x")
				yIdx := headerIndex(headers, "_atom_site_fract_y")
				zIdx := headerIndex(headers, "_atom_site_fract_z")
				if symbolIdx < 0 {
					return nil, chk.Err("MissingTag: CIF missing '_atom_site_type_symbol'")
				}
				if xIdx < 0 {
					return nil, chk.Err("MissingTag: CIF missing '_atom_site_fract_x'")
				}
				if yIdx < 0 {
					return nil, chk.Err("MissingTag: CIF missing '_atom_site_fract_y'")
				}
				if zIdx < 0 {
					return nil, chk.Err("MissingTag: CIF missing '_atom_site_fract_z'")
				}
				maxIdx := maxOf(symbolIdx, xIdx, yIdx, zIdx)

				for i < len(lines) && !strings.HasPrefix(lines[i], "_") && !strings.HasPrefix(lines[i], "loop_") {
					fields := strings.Fields(lines[i])
					if len(fields) > maxIdx {
						x, err := parseCIFFloat(fields[xIdx])
						if err != nil {
							return nil, err
						}
						y, err := parseCIFFloat(fields[yIdx])
						if err != nil {
							return nil, err
						}
						z, err := parseCIFFloat(fields[zIdx])
						if err != nil {
							return nil, err
						}
						atoms = append(atoms, crystal.Atom{
							Element: fields[symbolIdx],
							Frac:    crystal.Vec3{x, y, z},
							Tag:     crystal.Unknown,
						})
					}
					i++
				}
				i--
			}
		}
		i++
	}

	getParam := func(key string) (float64, error) {
		v, ok := cellParams[key]
		if !ok {
			return 0, chk.Err("MissingTag: CIF missing tag: %s", key)
		}
		return v, nil
	}

	a, err := getParam("_cell_length_a")
	if err != nil {
		return nil, err
	}
	b, err := getParam("_cell_length_b")
	if err != nil {
		return nil, err
	}
	cLen, err := getParam("_cell_length_c")
	if err != nil {
		return nil, err
	}
	alpha, err := getParam("_cell_angle_alpha")
	if err != nil {
		return nil, err
	}
	beta, err := getParam("_cell_angle_beta")
	if err != nil {
		return nil, err
	}
	gamma, err := getParam("_cell_angle_gamma")
	if err != nil {
		return nil, err
	}

	lattice, err := crystal.NewLatticeFromParameters(a, b, cLen, alpha, beta, gamma)
	if err != nil {
		return nil, err
	}

	if len(atoms) == 0 {
		return nil, chk.Err("EmptyStructure: no atoms found in CIF file")
	}

	return crystal.NewCrystal(lattice, atoms), nil
}

func headerIndex(headers []string, tag string) int {
	for i, h := range headers {
		if h == tag {
			return i
		}
	}
	return -1
}

func maxOf(vals ...int) int {
	m := vals[0]
	for _, v := range vals[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
