// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrNotTriangulated is reported by Err before the first call to Triangulate.
	ErrNotTriangulated = errors.New("triangulator: not triangulated yet")

	// ErrAllPointsCollinear is returned when no three input points span a triangle.
	ErrAllPointsCollinear = errors.New("triangulator: all points are collinear")
)

// TooFewPointsError is returned when fewer than three points are supplied.
type TooFewPointsError struct {
	Count int
}

func (e *TooFewPointsError) Error() string {
	return fmt.Sprintf("triangulator: insufficient points for triangulation (got %d, minimum 3 required)", e.Count)
}

// NonFiniteCoordinateError is returned when a point has a NaN or infinite coordinate.
type NonFiniteCoordinateError struct {
	Index int
}

func (e *NonFiniteCoordinateError) Error() string {
	return fmt.Sprintf("triangulator: point %d has a non-finite coordinate", e.Index)
}

// DuplicatePointsError is returned when two points share a position. First < Second.
type DuplicatePointsError struct {
	First, Second int
}

func (e *DuplicatePointsError) Error() string {
	return fmt.Sprintf("triangulator: points %d and %d have the same position", e.First, e.Second)
}

// PolylineTooShortError is returned when a polyline has fewer than three points
// after removing a repeated closing point.
type PolylineTooShortError struct {
	Polyline int
}

func (e *PolylineTooShortError) Error() string {
	return fmt.Sprintf("triangulator: polyline %d has fewer than 3 points", e.Polyline)
}

// PolylineIndexOutOfRangeError is returned when a polyline references a point
// outside [0, NumPoints).
type PolylineIndexOutOfRangeError struct {
	Polyline  int
	Index     int
	NumPoints int
}

func (e *PolylineIndexOutOfRangeError) Error() string {
	return fmt.Sprintf("triangulator: polyline %d references point %d out of range [0 %d)",
		e.Polyline, e.Index, e.NumPoints)
}

// PolylineDuplicateConsecutivePointsError is returned when a polyline repeats a
// point index in two consecutive positions.
type PolylineDuplicateConsecutivePointsError struct {
	Polyline int
	Index    int
}

func (e *PolylineDuplicateConsecutivePointsError) Error() string {
	return fmt.Sprintf("triangulator: polyline %d repeats point %d consecutively", e.Polyline, e.Index)
}

// EdgeWithDifferentConstrainedTypesError is returned when an edge belongs to an
// outline and to a hole.
type EdgeWithDifferentConstrainedTypesError struct {
	V0, V1    int
	Polylines [2]int
}

func (e *EdgeWithDifferentConstrainedTypesError) Error() string {
	return fmt.Sprintf("triangulator: edge %d-%d is part of outline and hole (polylines %d and %d)",
		e.V0, e.V1, e.Polylines[0], e.Polylines[1])
}

// PointOnConstrainedEdgeError is returned when Point lies in the interior of the
// constrained edge V0-V1.
type PointOnConstrainedEdgeError struct {
	Point  int
	V0, V1 int
}

func (e *PointOnConstrainedEdgeError) Error() string {
	return fmt.Sprintf("triangulator: point %d lies on constrained edge %d-%d", e.Point, e.V0, e.V1)
}

// ConstrainedEdgeIntersectionError is returned when the constrained edge Edge
// crosses the already constrained edge Other.
type ConstrainedEdgeIntersectionError struct {
	Edge  [2]int
	Other [2]int
}

func (e *ConstrainedEdgeIntersectionError) Error() string {
	return fmt.Sprintf("triangulator: constrained edge %d-%d intersects constrained edge %d-%d",
		e.Edge[0], e.Edge[1], e.Other[0], e.Other[1])
}

// HoleNotInsideOutlineError is returned when a hole is not enclosed by an outline.
type HoleNotInsideOutlineError struct {
	Polyline int
}

func (e *HoleNotInsideOutlineError) Error() string {
	return fmt.Sprintf("triangulator: hole %d is not inside any outline", e.Polyline)
}

// StackedPolylinesError is returned when a polyline lies directly inside a
// polyline of the same kind, or its enclosing polyline is ambiguous. Parent is
// NoPolyline when the polyline was reached from outside every polyline.
type StackedPolylinesError struct {
	Polyline int
	Parent   int
}

func (e *StackedPolylinesError) Error() string {
	return fmt.Sprintf("triangulator: polyline %d is stacked directly inside polyline %d", e.Polyline, e.Parent)
}

// InternalError reports a broken invariant of the engine rather than bad input.
type InternalError struct {
	Err error
}

func (e *InternalError) Error() string {
	return "triangulator: internal error: " + e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

// internalf returns an InternalError with a stack trace attached.
func internalf(format string, args ...any) error {
	return &InternalError{Err: pkgerrors.Errorf(format, args...)}
}
