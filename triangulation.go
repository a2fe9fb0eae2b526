// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/2dChan/cdt/predicates"
	"github.com/2dChan/cdt/triangulator"
	"github.com/golang/geo/r2"
)

// Edge is a constrained edge of the triangulation.
type Edge struct {
	V    [2]int
	Kind EdgeKind
}

// Triangulation is the result of NewTriangulation. It covers the convex hull of all points; Locations tells which
// triangles are inside the outlines.
type Triangulation struct {
	Vertices []r2.Point
	// NOTE: Vertices of each triangle are sorted in CCW.
	Triangles [][3]int
	Locations []Location
	// Neighbors[i][j] is the triangle across the edge from Triangles[i][j] to Triangles[i][(j+1)%3], or -1.
	Neighbors [][3]int

	// NOTE: Sort in CCW per vertex
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int

	// NOTE: Sorted in CW.
	ConvexHull []int

	PolylineKinds    []EdgeKind
	Parents          []int
	ConstrainedEdges []Edge
}

func newTriangulation(points []r2.Point, tr *triangulator.Triangulator) *Triangulation {
	numVertices := len(points)
	numTriangles := tr.NumTriangles(LocationAll)
	dt := &Triangulation{
		Vertices:                points,
		Triangles:               make([][3]int, numTriangles),
		Locations:               make([]Location, numTriangles),
		Neighbors:               make([][3]int, numTriangles),
		IncidentTriangleIndices: make([]int, numTriangles*3),
		IncidentTriangleOffsets: make([]int, numVertices+1),
		ConvexHull:              slices.Collect(tr.ConvexHull()),
		PolylineKinds:           make([]EdgeKind, tr.NumPolylines()),
		Parents:                 make([]int, tr.NumPolylines()),
	}

	for i := range numTriangles {
		dt.Triangles[i], dt.Locations[i] = tr.Triangle(i)
		dt.Neighbors[i] = tr.Neighbors(i)
		for _, v := range dt.Triangles[i] {
			dt.IncidentTriangleOffsets[v+1]++
		}
	}
	for i := range numVertices {
		dt.IncidentTriangleOffsets[i+1] += dt.IncidentTriangleOffsets[i]
	}

	nxt := make([]int, numVertices)
	copy(nxt, dt.IncidentTriangleOffsets[:numVertices])
	for i, tri := range dt.Triangles {
		for _, v := range tri {
			dt.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
	}
	for i := range numVertices {
		sortIncidentTriangleIndicesCCW(i, dt.IncidentTriangles(i), dt.Triangles)
	}

	for i := range dt.PolylineKinds {
		dt.PolylineKinds[i] = tr.PolylineKind(i)
		dt.Parents[i], _ = tr.Parent(i)
	}
	for e, kind := range tr.Edges() {
		if kind != Unconstrained {
			dt.ConstrainedEdges = append(dt.ConstrainedEdges, Edge{V: e, Kind: kind})
		}
	}
	return dt
}

func (dt *Triangulation) NumTriangles() int {
	return len(dt.Triangles)
}

// TrianglesIn yields the indices of the triangles whose location is in mask.
func (dt *Triangulation) TrianglesIn(mask Location) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i, loc := range dt.Locations {
			if loc&mask != 0 && !yield(i) {
				return
			}
		}
	}
}

// IncidentTriangles returns the triangles around vertex vIdx in CCW order. For a vertex on the convex hull the
// sequence starts at the hull.
func (dt *Triangulation) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(dt.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := dt.IncidentTriangleOffsets[vIdx]
	end := dt.IncidentTriangleOffsets[vIdx+1]
	return dt.IncidentTriangleIndices[start:end]
}

func (dt *Triangulation) TriangleVertices(tIdx int) (r2.Point, r2.Point, r2.Point) {
	if tIdx < 0 || tIdx >= len(dt.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := dt.Triangles[tIdx]
	return dt.Vertices[t[0]], dt.Vertices[t[1]], dt.Vertices[t[2]]
}

// Parent returns the polyline directly enclosing polyline i, or NoPolyline.
func (dt *Triangulation) Parent(i int) (int, error) {
	if i < 0 || i >= len(dt.Parents) {
		return NoPolyline, fmt.Errorf("Parent: index %d out of range [0 %d)", i, len(dt.Parents))
	}
	return dt.Parents[i], nil
}

// Validate checks the topology of the result: orientation and adjacency of every triangle, the triangle count of
// Euler's formula, and the incident triangle order.
func (dt *Triangulation) Validate() error {
	n := len(dt.Triangles)
	if len(dt.Locations) != n || len(dt.Neighbors) != n {
		return errors.New("cdt: triangles, locations and neighbors differ in length")
	}
	if want := 2*len(dt.Vertices) - 2 - len(dt.ConvexHull); n != want {
		return fmt.Errorf("cdt: %d triangles, want %d for %d vertices with %d on the hull",
			n, want, len(dt.Vertices), len(dt.ConvexHull))
	}

	for i, tri := range dt.Triangles {
		a, b, c := dt.TriangleVertices(i)
		if o := predicates.Orient2d(a, b, c); o != predicates.CounterClockwise {
			return fmt.Errorf("cdt: triangle %d %v is %v", i, tri, o)
		}
		for j, nb := range dt.Neighbors[i] {
			if nb < 0 {
				continue
			}
			u, w := tri[j], tri[(j+1)%3]
			k := slices.Index(dt.Neighbors[nb][:], i)
			if k < 0 || dt.Triangles[nb][k] != w || dt.Triangles[nb][(k+1)%3] != u {
				return fmt.Errorf("cdt: triangles %d and %d do not share edge %d-%d", i, nb, u, w)
			}
		}
	}

	for v := range dt.Vertices {
		it := dt.IncidentTriangles(v)
		for i := 1; i < len(it); i++ {
			if PrevVertex(dt.Triangles[it[i-1]], v) != NextVertex(dt.Triangles[it[i]], v) {
				return fmt.Errorf("cdt: incident triangles %d and %d of vertex %d are not CCW neighbors",
					it[i-1], it[i], v)
			}
		}
	}
	return nil
}

// sortIncidentTriangleIndicesCCW orders the triangles around vIdx so that each one follows its clockwise neighbor.
// The first triangle is one without a clockwise neighbor when vIdx is on the hull.
func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	for i := range n {
		nxt := NextVertex(tris[incidentTris[i]], vIdx)
		first := true
		for j := range n {
			if PrevVertex(tris[incidentTris[j]], vIdx) == nxt {
				first = false
				break
			}
		}
		if first {
			incidentTris[0], incidentTris[i] = incidentTris[i], incidentTris[0]
			break
		}
	}

	for i := 1; i < n; i++ {
		prv := PrevVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			nxt := NextVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
