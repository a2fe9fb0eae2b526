// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package topology implements an index-based half-edge store for planar
// triangle meshes.
//
// Half-edges are allocated in pairs; the opposite of half-edge e is e^1. Each
// half-edge belongs to the radial ring of its origin vertex, a cyclic doubly
// linked list ordered counter-clockwise by Next. With that ordering the
// half-edge following e around the face to its left is Prev(Opposite(e)).
package topology

import (
	"iter"
)

// None marks a missing vertex or half-edge.
const None = -1

// Vertex is one mesh vertex; First is any half-edge leaving it, or None.
type Vertex struct {
	First int32
}

// HalfEdge is a directed edge leaving Origin. Prev and Next link it into the
// radial ring of Origin. Data is caller owned and is reset whenever the slot
// is allocated.
type HalfEdge[D any] struct {
	Origin int32
	Prev   int32
	Next   int32
	Data   D
}

// Mesh stores vertices and half-edges in growable arenas.
type Mesh[D any] struct {
	Vertices []Vertex
	Edges    []HalfEdge[D]

	free []int32
}

// Reset discards all edges and creates n isolated vertices. Allocated storage
// is reused.
func (m *Mesh[D]) Reset(n int) {
	m.Edges = m.Edges[:0]
	m.free = m.free[:0]
	m.Vertices = m.Vertices[:0]
	for range n {
		m.Vertices = append(m.Vertices, Vertex{First: None})
	}
}

// AddVertex appends an isolated vertex and returns its index.
func (m *Mesh[D]) AddVertex() int {
	m.Vertices = append(m.Vertices, Vertex{First: None})
	return len(m.Vertices) - 1
}

func (m *Mesh[D]) NumVertices() int {
	return len(m.Vertices)
}

// NumHalfEdges returns the number of allocated half-edge slots, including
// removed slots that have not been reused yet.
func (m *Mesh[D]) NumHalfEdges() int {
	return len(m.Edges)
}

// NumFree returns the number of removed edge pairs waiting to be reused.
func (m *Mesh[D]) NumFree() int {
	return len(m.free)
}

// Opposite returns the half-edge paired with e.
func Opposite(e int) int {
	return e ^ 1
}

func (m *Mesh[D]) Origin(e int) int {
	return int(m.Edges[e].Origin)
}

func (m *Mesh[D]) Target(e int) int {
	return int(m.Edges[e^1].Origin)
}

// Next returns the half-edge after e counter-clockwise around Origin(e).
func (m *Mesh[D]) Next(e int) int {
	return int(m.Edges[e].Next)
}

// Prev returns the half-edge before e counter-clockwise around Origin(e).
func (m *Mesh[D]) Prev(e int) int {
	return int(m.Edges[e].Prev)
}

// FaceNext returns the half-edge that follows e around the face to its left.
func (m *Mesh[D]) FaceNext(e int) int {
	return int(m.Edges[e^1].Prev)
}

// FirstEdge returns any half-edge leaving v, or None.
func (m *Mesh[D]) FirstEdge(v int) int {
	return int(m.Vertices[v].First)
}

// AddEdge creates the edge pair v0-v1 and returns the half-edge leaving v0.
// Each half-edge is inserted into its origin's ring directly after after0 and
// after1 respectively; None inserts it as the only edge of a vertex with an
// empty ring. Removed pair slots are reused before new ones are allocated.
func (m *Mesh[D]) AddEdge(v0, v1, after0, after1 int) int {
	var e int
	if n := len(m.free); n > 0 {
		e = int(m.free[n-1])
		m.free = m.free[:n-1]
	} else {
		e = len(m.Edges)
		m.Edges = append(m.Edges, HalfEdge[D]{}, HalfEdge[D]{})
	}

	m.Edges[e] = HalfEdge[D]{Origin: int32(v0)}
	m.Edges[e^1] = HalfEdge[D]{Origin: int32(v1)}
	m.link(e, after0)
	m.link(e^1, after1)
	return e
}

// RemoveEdge unlinks the pair of e from both rings. Its slot is kept and
// handed out again by the next AddEdge.
func (m *Mesh[D]) RemoveEdge(e int) {
	m.unlink(e)
	m.unlink(e ^ 1)
	m.free = append(m.free, int32(e&^1))
}

// FindEdge returns the half-edge from v0 to v1, or None.
func (m *Mesh[D]) FindEdge(v0, v1 int) int {
	for e := range m.Ring(v0) {
		if m.Target(e) == v1 {
			return e
		}
	}
	return None
}

// Ring iterates over the half-edges leaving v in counter-clockwise order.
func (m *Mesh[D]) Ring(v int) iter.Seq[int] {
	return func(yield func(int) bool) {
		first := m.FirstEdge(v)
		if first == None {
			return
		}
		e := first
		for {
			if !yield(e) {
				return
			}
			e = m.Next(e)
			if e == first {
				return
			}
		}
	}
}

// Flip replaces the diagonal a-b of the quadrilateral formed by the two
// triangles adjacent to e with the other diagonal c-d, where c is the apex of
// the triangle left of e and d the apex of the triangle right of e. The pair
// keeps its slot: afterwards e runs from c to d. Both sides of e must be
// triangles.
func (m *Mesh[D]) Flip(e int) {
	o := e ^ 1
	eca := m.FaceNext(m.FaceNext(e))
	edb := m.FaceNext(m.FaceNext(o))
	c := m.Origin(eca)
	d := m.Origin(edb)

	m.unlink(e)
	m.unlink(o)
	m.Edges[e].Origin = int32(c)
	m.Edges[o].Origin = int32(d)
	m.link(e, eca)
	m.link(o, edb)
}

// link inserts e into the ring of its origin after the half-edge after.
func (m *Mesh[D]) link(e, after int) {
	v := &m.Vertices[m.Edges[e].Origin]
	if after == None {
		m.Edges[e].Prev = int32(e)
		m.Edges[e].Next = int32(e)
		v.First = int32(e)
		return
	}
	next := m.Edges[after].Next
	m.Edges[e].Prev = int32(after)
	m.Edges[e].Next = next
	m.Edges[after].Next = int32(e)
	m.Edges[next].Prev = int32(e)
}

// unlink removes e from the ring of its origin.
func (m *Mesh[D]) unlink(e int) {
	he := &m.Edges[e]
	v := &m.Vertices[he.Origin]
	if int(he.Next) == e {
		v.First = None
		return
	}
	m.Edges[he.Prev].Next = he.Next
	m.Edges[he.Next].Prev = he.Prev
	if int(v.First) == e {
		v.First = he.Next
	}
}
