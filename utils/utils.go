// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides generators of planar point sets for triangulation tests, benchmarks and examples.

package utils

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates random points uniformly distributed in the square [-1, 1]x[-1, 1].
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	return GenerateRandomPointsInRect(cnt, seed, r2.RectFromPoints(r2.Point{X: -1, Y: -1}, r2.Point{X: 1, Y: 1}))
}

// GenerateRandomPointsInRect generates random points uniformly distributed in bound.
func GenerateRandomPointsInRect(cnt int, seed int64, bound r2.Rect) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{
			X: bound.X.Lo + random.Float64()*bound.X.Length(),
			Y: bound.Y.Lo + random.Float64()*bound.Y.Length(),
		}
	}

	return points
}

// GenerateGridPoints generates the n x n integer grid with its lower left corner at the origin.
// Grids are full of collinear and cocircular points.
func GenerateGridPoints(n int) []r2.Point {
	points := make([]r2.Point, 0, n*n)
	for y := range n {
		for x := range n {
			points = append(points, r2.Point{X: float64(x), Y: float64(y)})
		}
	}
	return points
}

// RegularPolygon returns the n vertices of a regular polygon in counter-clockwise order.
func RegularPolygon(n int, center r2.Point, radius float64) []r2.Point {
	points := make([]r2.Point, n)
	for i := range n {
		a := 2 * math.Pi * float64(i) / float64(n)
		points[i] = r2.Point{X: center.X + radius*math.Cos(a), Y: center.Y + radius*math.Sin(a)}
	}
	return points
}

// Indices returns the indices [first, first+n).
func Indices(first, n int) []int {
	idx := make([]int, n)
	for i := range n {
		idx[i] = first + i
	}
	return idx
}
