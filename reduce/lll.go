// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reduce

import (
	"math"

	"github.com/gokay-avci/PolySURF/crystal"
)

// lllDelta is the Lovász condition constant used throughout this package.
const lllDelta = 0.75

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// gramSchmidt returns the (non-normalised) Gram-Schmidt orthogonalisation
// of the columns of b.
func gramSchmidt(b crystal.Mat3) crystal.Mat3 {
	var bs crystal.Mat3
	for i := 0; i < 3; i++ {
		col := b.Col(i)
		for j := 0; j < i; j++ {
			bsj := bs.Col(j)
			denom := bsj.Dot(bsj)
			if denom == 0 {
				continue
			}
			mu := b.Col(i).Dot(bsj) / denom
			col = col.Sub(bsj.Scale(mu))
		}
		bs = bs.SetCol(i, col)
	}
	return bs
}

// LLL3 performs classical LLL reduction (delta = 0.75) on the 3 columns of
// a real 3x3 basis, by size-reduction and Lovász-condition column swaps.
// The Gram-Schmidt basis is recomputed whenever the working index
// advances or a swap occurs; on a swap the working index is clamped to
// at least 1.
func LLL3(basis crystal.Mat3) crystal.Mat3 {
	b := basis
	k := 1

	for k < 3 {
		bs := gramSchmidt(b)

		// size-reduce column k against columns 0..k-1 (closest first)
		for j := k - 1; j >= 0; j-- {
			bsj := bs.Col(j)
			denom := bsj.Dot(bsj)
			if denom == 0 {
				continue
			}
			mu := b.Col(k).Dot(bsj) / denom
			if math.Abs(mu) > 0.5 {
				coeff := math.Round(mu)
				b = b.SetCol(k, b.Col(k).Sub(b.Col(j).Scale(coeff)))
			}
		}

		bs = gramSchmidt(b)
		bsK := bs.Col(k)
		bsKm1 := bs.Col(k - 1)
		muKKm1 := 0.0
		if d := bsKm1.Dot(bsKm1); d != 0 {
			muKKm1 = b.Col(k).Dot(bsKm1) / d
		}

		lovasz := bsK.Dot(bsK) >= (lllDelta-muKKm1*muKKm1)*bsKm1.Dot(bsKm1)
		if lovasz {
			k++
		} else {
			ck, ckm1 := b.Col(k), b.Col(k-1)
			b = b.SetCol(k, ckm1)
			b = b.SetCol(k-1, ck)
			k = maxInt(1, k-1)
		}
	}

	return b
}
