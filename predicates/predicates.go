// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package predicates implements robust planar orientation and in-circle tests.
//
// Both predicates evaluate the determinant in plain float64 arithmetic first and
// accept the sign when its magnitude exceeds a forward error bound. Otherwise the
// determinant is recomputed exactly with floating-point expansions, so the
// returned sign is always the sign of the exact determinant of the inputs.
package predicates

import (
	"github.com/golang/geo/r2"
)

// Orientation is the result of Orient2d.
type Orientation int8

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	CounterClockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "cw"
	case CounterClockwise:
		return "ccw"
	}
	return "collinear"
}

// Circle is the result of InCircle.
type Circle int8

const (
	Outside    Circle = -1
	Cocircular Circle = 0
	Inside     Circle = 1
)

func (c Circle) String() string {
	switch c {
	case Outside:
		return "outside"
	case Inside:
		return "inside"
	}
	return "cocircular"
}

// epsilon is half an ulp of 1.0, the relative rounding error of float64 operations.
const epsilon = 1.0 / (1 << 53)

// Error bound coefficients of the fast evaluations, computed once.
var (
	ccwErrBoundA = (3 + 16*epsilon) * epsilon
	iccErrBoundA = (10 + 96*epsilon) * epsilon
)

// Orient2d reports whether c lies to the left of the directed line a->b
// (CounterClockwise), to its right (Clockwise), or on it (Collinear).
func Orient2d(a, b, c r2.Point) Orientation {
	detLeft := float64((a.X - c.X) * (b.Y - c.Y))
	detRight := float64((a.Y - c.Y) * (b.X - c.X))
	det := detLeft - detRight

	var detSum float64
	switch {
	case detLeft > 0:
		if detRight <= 0 {
			return orientationOf(det)
		}
		detSum = detLeft + detRight
	case detLeft < 0:
		if detRight >= 0 {
			return orientationOf(det)
		}
		detSum = -detLeft - detRight
	default:
		return orientationOf(det)
	}

	if bound := ccwErrBoundA * detSum; det >= bound || -det >= bound {
		return orientationOf(det)
	}
	return orientationOf(orient2dExact(a, b, c))
}

// InCircle reports where d lies relative to the circle through a, b and c.
// The points a, b, c must be in counter-clockwise order.
func InCircle(a, b, c, d r2.Point) Circle {
	adx, ady := a.X-d.X, a.Y-d.Y
	bdx, bdy := b.X-d.X, b.Y-d.Y
	cdx, cdy := c.X-d.X, c.Y-d.Y

	bdxcdy := float64(bdx * cdy)
	cdxbdy := float64(cdx * bdy)
	aLift := float64(adx*adx) + float64(ady*ady)

	cdxady := float64(cdx * ady)
	adxcdy := float64(adx * cdy)
	bLift := float64(bdx*bdx) + float64(bdy*bdy)

	adxbdy := float64(adx * bdy)
	bdxady := float64(bdx * ady)
	cLift := float64(cdx*cdx) + float64(cdy*cdy)

	det := aLift*(bdxcdy-cdxbdy) + bLift*(cdxady-adxcdy) + cLift*(adxbdy-bdxady)

	permanent := (abs(bdxcdy)+abs(cdxbdy))*aLift +
		(abs(cdxady)+abs(adxcdy))*bLift +
		(abs(adxbdy)+abs(bdxady))*cLift
	if bound := iccErrBoundA * permanent; det > bound || -det > bound {
		return circleOf(det)
	}
	return circleOf(inCircleExact(a, b, c, d))
}

// orient2dExact returns a value with the sign of the exact orientation determinant.
func orient2dExact(a, b, c r2.Point) float64 {
	acx := twoDiff(a.X, c.X)
	acy := twoDiff(a.Y, c.Y)
	bcx := twoDiff(b.X, c.X)
	bcy := twoDiff(b.Y, c.Y)

	det := expansionDiff(mulExpansion(acx, bcy), mulExpansion(acy, bcx))
	return estimateSign(det)
}

// inCircleExact returns a value with the sign of the exact in-circle determinant.
func inCircleExact(a, b, c, d r2.Point) float64 {
	adx, ady := twoDiff(a.X, d.X), twoDiff(a.Y, d.Y)
	bdx, bdy := twoDiff(b.X, d.X), twoDiff(b.Y, d.Y)
	cdx, cdy := twoDiff(c.X, d.X), twoDiff(c.Y, d.Y)

	aLift := expansionSum(mulExpansion(adx, adx), mulExpansion(ady, ady))
	bLift := expansionSum(mulExpansion(bdx, bdx), mulExpansion(bdy, bdy))
	cLift := expansionSum(mulExpansion(cdx, cdx), mulExpansion(cdy, cdy))

	bc := expansionDiff(mulExpansion(bdx, cdy), mulExpansion(cdx, bdy))
	ca := expansionDiff(mulExpansion(cdx, ady), mulExpansion(adx, cdy))
	ab := expansionDiff(mulExpansion(adx, bdy), mulExpansion(bdx, ady))

	det := expansionSum(mulExpansion(aLift, bc), mulExpansion(bLift, ca))
	det = expansionSum(det, mulExpansion(cLift, ab))
	return estimateSign(det)
}

func orientationOf(det float64) Orientation {
	switch {
	case det > 0:
		return CounterClockwise
	case det < 0:
		return Clockwise
	}
	return Collinear
}

func circleOf(det float64) Circle {
	switch {
	case det > 0:
		return Inside
	case det < 0:
		return Outside
	}
	return Cocircular
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
