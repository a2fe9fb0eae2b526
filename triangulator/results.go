// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

import (
	"iter"

	"github.com/2dChan/cdt/internal/topology"
)

// Winding selects the vertex order of enumerated triangles.
type Winding uint8

const (
	CounterClockwise Winding = iota
	Clockwise
)

// NumTriangles returns the number of triangles whose location is in mask.
func (t *Triangulator) NumTriangles(mask Location) int {
	n := 0
	for _, tri := range t.triangles {
		if tri.location&mask != 0 {
			n++
		}
	}
	return n
}

// Triangles yields the vertex indices of every triangle whose location is in
// mask, in the requested winding.
func (t *Triangulator) Triangles(mask Location, w Winding) iter.Seq[[3]int] {
	return func(yield func([3]int) bool) {
		for _, tri := range t.triangles {
			if tri.location&mask == 0 {
				continue
			}
			v := [3]int{int(tri.vertices[0]), int(tri.vertices[1]), int(tri.vertices[2])}
			if w == Clockwise {
				v[1], v[2] = v[2], v[1]
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Triangle returns the counter-clockwise vertices and the location of the
// triangle with index i in [0, NumTriangles(LocationAll)). Triangle indices are
// stable until the next Triangulate or Reset.
func (t *Triangulator) Triangle(i int) ([3]int, Location) {
	tri := t.triangles[i]
	return [3]int{int(tri.vertices[0]), int(tri.vertices[1]), int(tri.vertices[2])}, tri.location
}

// Neighbors returns the triangles adjacent to triangle i. Entry j is the
// triangle across the edge from vertex j to vertex j+1, or -1 on the hull.
func (t *Triangulator) Neighbors(i int) [3]int {
	var nb [3]int
	e := int(t.triangles[i].edge)
	for j := range 3 {
		nb[j] = -1
		if o := topology.Opposite(e); !t.isBoundary(o) {
			nb[j] = int(t.edgeTriangle[o])
		}
		e = t.mesh.FaceNext(e)
	}
	return nb
}

// ConvexHull yields the convex hull vertices in clockwise order, including
// points lying on hull edges.
func (t *Triangulator) ConvexHull() iter.Seq[int] {
	return func(yield func(int) bool) {
		if t.hullEdge[0] == topology.None {
			return
		}
		in := t.mesh.FindEdge(t.hullEdge[0], t.hullEdge[1])
		if in == topology.None {
			return
		}
		start := topology.Opposite(in)
		e := start
		for {
			if !yield(t.mesh.Origin(e)) {
				return
			}
			e = t.mesh.FaceNext(e)
			if e == start {
				return
			}
		}
	}
}

// Edges yields every edge of the triangulation once, with its constraint kind.
// Edges of auto-detected polylines report the resolved kind.
func (t *Triangulator) Edges() iter.Seq2[[2]int, EdgeKind] {
	return func(yield func([2]int, EdgeKind) bool) {
		if len(t.triangles) == 0 {
			return
		}
		for e := 0; e < t.mesh.NumHalfEdges(); e += 2 {
			c := t.constraintOf(e)
			kind := c.kind
			if kind == AutoDetect {
				kind = t.kinds[c.polyline]
			}
			if !yield([2]int{t.mesh.Origin(e), t.mesh.Target(e)}, kind) {
				return
			}
		}
	}
}

// Parent returns the polyline directly enclosing polyline i. The second
// result is false for top level polylines and before a successful run.
func (t *Triangulator) Parent(i int) (int, bool) {
	if i < 0 || i >= len(t.parents) || t.parents[i] == NoPolyline {
		return NoPolyline, false
	}
	return t.parents[i], true
}

// PolylineKind returns the kind of polyline i, Outline or Hole, with
// auto-detected polylines resolved by the last successful run. Before that,
// the kind given when the polyline was added is returned.
func (t *Triangulator) PolylineKind(i int) EdgeKind {
	if i < len(t.kinds) {
		return t.kinds[i]
	}
	return t.polylines[i].kind
}
