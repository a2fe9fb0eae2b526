// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package cdt

import (
	"fmt"

	"github.com/2dChan/cdt/predicates"
	"github.com/golang/geo/r2"
)

// Triangle is a view structure for accessing a triangle in a Triangulation.
type Triangle struct {
	idx int
	dt  *Triangulation
}

// Triangle returns the view of the triangle at index i.
// It returns an error if the index is out of range.
func (dt *Triangulation) Triangle(i int) (Triangle, error) {
	if i < 0 || i >= len(dt.Triangles) {
		return Triangle{}, fmt.Errorf("Triangle: index %d out of range [0 %d)", i, len(dt.Triangles))
	}
	return Triangle{idx: i, dt: dt}, nil
}

// Index returns the index of the triangle in the Triangulation's Triangles.
func (t Triangle) Index() int {
	return t.idx
}

// VertexIndices returns the indices of the triangle's vertices in CCW order.
func (t Triangle) VertexIndices() [3]int {
	return t.dt.Triangles[t.idx]
}

// Vertex returns the vertex at position i of the triangle.
// It returns an error if the position is out of range.
func (t Triangle) Vertex(i int) (r2.Point, error) {
	if i < 0 || i >= 3 {
		return r2.Point{}, fmt.Errorf("Vertex: index %d out of range [0 3)", i)
	}
	return t.dt.Vertices[t.dt.Triangles[t.idx][i]], nil
}

func (t Triangle) Location() Location {
	return t.dt.Locations[t.idx]
}

// NeighborIndices returns the triangles across the edges starting at each vertex, -1 where the edge is on the hull.
func (t Triangle) NeighborIndices() [3]int {
	return t.dt.Neighbors[t.idx]
}

// Neighbor returns the triangle across the edge starting at vertex position i.
// The second result is false if that edge is on the convex hull.
func (t Triangle) Neighbor(i int) (Triangle, bool, error) {
	if i < 0 || i >= 3 {
		return Triangle{}, false, fmt.Errorf("Neighbor: index %d out of range [0 3)", i)
	}
	n := t.dt.Neighbors[t.idx][i]
	if n < 0 {
		return Triangle{}, false, nil
	}
	return Triangle{idx: n, dt: t.dt}, true, nil
}

// Area returns the area of the triangle.
func (t Triangle) Area() float64 {
	a, b, c := t.dt.TriangleVertices(t.idx)
	return b.Sub(a).Cross(c.Sub(a)) / 2
}

func (t Triangle) Centroid() r2.Point {
	a, b, c := t.dt.TriangleVertices(t.idx)
	return a.Add(b).Add(c).Mul(1.0 / 3)
}

// ContainsPoint reports whether p lies inside the triangle or on its boundary.
func (t Triangle) ContainsPoint(p r2.Point) bool {
	a, b, c := t.dt.TriangleVertices(t.idx)
	return predicates.Orient2d(a, b, p) != predicates.Clockwise &&
		predicates.Orient2d(b, c, p) != predicates.Clockwise &&
		predicates.Orient2d(c, a, p) != predicates.Clockwise
}
