// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package triangulator implements constrained Delaunay triangulation of planar
// point sets with outline, hole and manually constrained edges.
//
// A Triangulator first builds a triangulation of all points by sweeping them in
// lexicographic order and growing the convex hull, then forces every
// constrained edge into the mesh, and finally labels each triangle as interior,
// hole or convex hull filler by walking the dual graph from the hull. With
// Delaunay mode enabled, edges are flipped after every local change until each
// unconstrained edge is locally Delaunay.
//
// A Triangulator is reusable but not safe for concurrent use. Separate
// instances share no state.
package triangulator

import (
	"math"

	"github.com/2dChan/cdt/internal/topology"
	"github.com/golang/geo/r2"
)

// NoPolyline marks the absence of a polyline, e.g. the parent of a top level outline.
const NoPolyline = -1

// PointFunc maps a point index in [0, n) to its position. It must return the
// same value for the same index for the whole Triangulate call.
type PointFunc func(i int) r2.Point

type polyline struct {
	kind    EdgeKind
	indices []int
}

// Triangulator holds inputs, topology and scratch buffers of one triangulation.
type Triangulator struct {
	numPoints int
	point     PointFunc
	polylines []polyline
	manual    [][2]int

	delaunay bool
	ran      bool
	err      error
	mesh     mesh

	// Construction scratch.
	order        []int
	hullNext     []int32
	hullPrev     []int32
	hullEdge     [2]int
	flipStack    []flipItem
	leftChain    []int
	rightChain   []int
	stack        []int
	newTriangles [][3]int

	// Classification results.
	triangles    []triangle
	edgeTriangle []int32
	queue        []int32
	kinds        []EdgeKind
	parents      []int
}

// New returns an empty Triangulator. The zero value is ready to use as well.
func New() *Triangulator {
	return &Triangulator{}
}

// SetPoints sets the number of points and the accessor used to read them.
func (t *Triangulator) SetPoints(n int, at PointFunc) {
	t.numPoints = n
	t.point = at
}

// SetPointSlice uses points as the input point set.
func (t *Triangulator) SetPointSlice(points []r2.Point) {
	t.SetPoints(len(points), func(i int) r2.Point { return points[i] })
}

// AddOutline adds a closed polyline whose inside is part of the result and
// returns its polyline index. The last index may repeat the first.
func (t *Triangulator) AddOutline(indices []int) int {
	return t.addPolyline(Outline, indices)
}

// AddHole adds a closed polyline whose inside is cut out of the enclosing
// outline and returns its polyline index.
func (t *Triangulator) AddHole(indices []int) int {
	return t.addPolyline(Hole, indices)
}

// AddPolyline adds a closed polyline whose kind, outline or hole, is inferred
// from its nesting depth, and returns its polyline index.
func (t *Triangulator) AddPolyline(indices []int) int {
	return t.addPolyline(AutoDetect, indices)
}

// AddConstrainedEdge forces the edge a-b to be part of the triangulation
// without affecting triangle classification.
func (t *Triangulator) AddConstrainedEdge(a, b int) {
	t.manual = append(t.manual, [2]int{a, b})
}

func (t *Triangulator) addPolyline(kind EdgeKind, indices []int) int {
	p := polyline{kind: kind, indices: append([]int(nil), indices...)}
	if n := len(p.indices); n > 1 && p.indices[0] == p.indices[n-1] {
		p.indices = p.indices[:n-1]
	}
	t.polylines = append(t.polylines, p)
	return len(t.polylines) - 1
}

// NumPolylines returns the number of polylines added so far.
func (t *Triangulator) NumPolylines() int {
	return len(t.polylines)
}

// Reset drops all inputs and results. Scratch storage is kept for reuse.
func (t *Triangulator) Reset() {
	t.numPoints = 0
	t.point = nil
	t.polylines = t.polylines[:0]
	t.manual = t.manual[:0]
	t.teardown()
	t.ran = false
	t.err = nil
}

// Err returns the result of the last Triangulate call, or ErrNotTriangulated.
func (t *Triangulator) Err() error {
	if !t.ran {
		return ErrNotTriangulated
	}
	return t.err
}

// Triangulate builds the triangulation of the current inputs, replacing any
// previous result. With delaunay set, the result is a constrained Delaunay
// triangulation. On failure all topology is discarded and the error is also
// reported by Err.
func (t *Triangulator) Triangulate(delaunay bool) error {
	t.delaunay = delaunay
	t.ran = true
	t.err = t.triangulate()
	if t.err != nil {
		t.teardown()
	}
	return t.err
}

func (t *Triangulator) triangulate() error {
	t.teardown()
	if t.numPoints < 3 {
		return &TooFewPointsError{Count: t.numPoints}
	}
	for i := range t.numPoints {
		p := t.point(i)
		if !isFinite(p.X) || !isFinite(p.Y) {
			return &NonFiniteCoordinateError{Index: i}
		}
	}
	if err := t.validateConstraints(); err != nil {
		return err
	}
	if err := t.build(); err != nil {
		return err
	}
	if err := t.insertConstraints(); err != nil {
		return err
	}
	return t.classify()
}

func (t *Triangulator) validateConstraints() error {
	for i, p := range t.polylines {
		n := len(p.indices)
		if n < 3 {
			return &PolylineTooShortError{Polyline: i}
		}
		for _, idx := range p.indices {
			if idx < 0 || idx >= t.numPoints {
				return &PolylineIndexOutOfRangeError{Polyline: i, Index: idx, NumPoints: t.numPoints}
			}
		}
		for j, idx := range p.indices {
			if idx == p.indices[(j+1)%n] {
				return &PolylineDuplicateConsecutivePointsError{Polyline: i, Index: idx}
			}
		}
	}
	// Manual edges are validated like open two point polylines without an index.
	for _, e := range t.manual {
		for _, idx := range e {
			if idx < 0 || idx >= t.numPoints {
				return &PolylineIndexOutOfRangeError{Polyline: NoPolyline, Index: idx, NumPoints: t.numPoints}
			}
		}
		if e[0] == e[1] {
			return &PolylineDuplicateConsecutivePointsError{Polyline: NoPolyline, Index: e[0]}
		}
	}
	return nil
}

// teardown empties all topology so that enumerators see nothing.
func (t *Triangulator) teardown() {
	t.mesh.Reset(0)
	t.triangles = t.triangles[:0]
	t.kinds = t.kinds[:0]
	t.parents = t.parents[:0]
	t.hullEdge = [2]int{topology.None, topology.None}
}

func (t *Triangulator) pos(v int) r2.Point {
	return t.point(v)
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
