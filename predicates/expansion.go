// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package predicates

import "math"

// An expansion is a sum of non-overlapping float64 components ordered by
// increasing magnitude. Its value is exact; its sign is the sign of the last
// (largest) component.

// twoSum returns the rounded sum of a and b and its rounding error.
func twoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	aVirtual := x - bVirtual
	bRoundoff := b - bVirtual
	aRoundoff := a - aVirtual
	y = aRoundoff + bRoundoff
	return x, y
}

// fastTwoSum is twoSum for |a| >= |b|.
func fastTwoSum(a, b float64) (x, y float64) {
	x = a + b
	bVirtual := x - a
	y = b - bVirtual
	return x, y
}

// twoProduct returns the rounded product of a and b and its rounding error.
func twoProduct(a, b float64) (x, y float64) {
	x = a * b
	y = math.FMA(a, b, -x)
	return x, y
}

// twoDiff returns a-b as a two-component expansion.
func twoDiff(a, b float64) []float64 {
	x := a - b
	bVirtual := a - x
	aVirtual := x + bVirtual
	bRoundoff := bVirtual - b
	aRoundoff := a - aVirtual
	y := aRoundoff + bRoundoff
	if y == 0 {
		return []float64{x}
	}
	return []float64{y, x}
}

// growExpansion adds b to e, eliminating zero components.
func growExpansion(e []float64, b float64) []float64 {
	h := make([]float64, 0, len(e)+1)
	q := b
	for _, enow := range e {
		var hh float64
		q, hh = twoSum(q, enow)
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 || len(h) == 0 {
		h = append(h, q)
	}
	return h
}

func expansionSum(e, f []float64) []float64 {
	h := e
	for _, fnow := range f {
		h = growExpansion(h, fnow)
	}
	return h
}

func expansionDiff(e, f []float64) []float64 {
	neg := make([]float64, len(f))
	for i, v := range f {
		neg[i] = -v
	}
	return expansionSum(e, neg)
}

// scaleExpansion multiplies e by b, eliminating zero components.
func scaleExpansion(e []float64, b float64) []float64 {
	h := make([]float64, 0, 2*len(e))
	q, hh := twoProduct(e[0], b)
	if hh != 0 {
		h = append(h, hh)
	}
	for _, enow := range e[1:] {
		product1, product0 := twoProduct(enow, b)
		sum, hh := twoSum(q, product0)
		if hh != 0 {
			h = append(h, hh)
		}
		q, hh = fastTwoSum(product1, sum)
		if hh != 0 {
			h = append(h, hh)
		}
	}
	if q != 0 || len(h) == 0 {
		h = append(h, q)
	}
	return h
}

func mulExpansion(e, f []float64) []float64 {
	h := []float64{0}
	for _, fnow := range f {
		h = expansionSum(h, scaleExpansion(e, fnow))
	}
	return h
}

// estimateSign returns the most significant component of e.
func estimateSign(e []float64) float64 {
	return e[len(e)-1]
}
