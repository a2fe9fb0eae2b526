// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

import (
	"github.com/2dChan/cdt/internal/topology"
	"github.com/2dChan/cdt/predicates"
	"github.com/golang/geo/r2"
)

// insertConstraints forces every polyline edge and manual edge into the mesh.
func (t *Triangulator) insertConstraints() error {
	for i, p := range t.polylines {
		c := constraint{kind: p.kind, polyline: int32(i)}
		n := len(p.indices)
		for j, v0 := range p.indices {
			if err := t.insertEdge(v0, p.indices[(j+1)%n], c); err != nil {
				return err
			}
		}
	}
	for _, e := range t.manual {
		c := constraint{kind: ManuallyConstrained, polyline: NoPolyline}
		if err := t.insertEdge(e[0], e[1], c); err != nil {
			return err
		}
	}
	return nil
}

// insertEdge makes v0-v1 an edge of the mesh classified as c. Edges crossing
// the segment are removed and the two regions on either side of it are
// triangulated again, reusing the removed edge slots.
func (t *Triangulator) insertEdge(v0, v1 int, c constraint) error {
	if e := t.mesh.FindEdge(v0, v1); e != topology.None {
		return t.mergeConstraint(e, c)
	}

	start, err := t.firstCrossing(v0, v1)
	if err != nil {
		return err
	}

	p0, p1 := t.pos(v0), t.pos(v1)
	crossed := t.mesh.FaceNext(start)
	x, y := t.mesh.Target(start), t.mesh.Target(crossed)
	t.rightChain = append(t.rightChain[:0], v0, x)
	t.leftChain = append(t.leftChain[:0], v0, y)

	// crossed runs from the right chain to the left chain and has the already
	// visited region on its left.
	var end int
	for {
		if k := t.constraintOf(crossed).kind; k != Unconstrained {
			return &ConstrainedEdgeIntersectionError{Edge: [2]int{v0, v1}, Other: [2]int{x, y}}
		}
		opp := topology.Opposite(crossed)
		if t.isBoundary(opp) {
			return internalf("constrained edge %d-%d leaves the hull at %d-%d", v0, v1, y, x)
		}
		exz := t.mesh.FaceNext(opp)
		ezy := t.mesh.FaceNext(exz)
		z := t.mesh.Target(exz)
		t.mesh.RemoveEdge(crossed)

		if z == v1 {
			end = ezy
			break
		}
		switch predicates.Orient2d(p0, p1, t.pos(z)) {
		case predicates.Collinear:
			return &PointOnConstrainedEdgeError{Point: z, V0: v0, V1: v1}
		case predicates.Clockwise:
			t.rightChain = append(t.rightChain, z)
			x, crossed = z, ezy
		default:
			t.leftChain = append(t.leftChain, z)
			y, crossed = z, exz
		}
	}
	t.rightChain = append(t.rightChain, v1)
	t.leftChain = append(t.leftChain, v1)

	e := t.mesh.AddEdge(v0, v1, start, end)
	t.pairData(e).constraint = c

	t.newTriangles = t.newTriangles[:0]
	if err := t.fillChain(t.rightChain, predicates.CounterClockwise); err != nil {
		return err
	}
	if err := t.fillChain(t.leftChain, predicates.Clockwise); err != nil {
		return err
	}
	if n := t.mesh.NumFree(); n != 0 {
		return internalf("%d removed edges left unused after inserting %d-%d", n, v0, v1)
	}

	if t.delaunay {
		for _, tri := range t.newTriangles {
			for j := range 3 {
				if e := t.mesh.FindEdge(tri[j], tri[(j+1)%3]); e != topology.None {
					t.pushFlip(e)
				}
			}
		}
		t.restoreDelaunay()
	}
	return nil
}

// firstCrossing returns the half-edge v0->x of the triangle around v0 that the
// segment v0-v1 enters, with x right of the segment.
func (t *Triangulator) firstCrossing(v0, v1 int) (int, error) {
	p0, p1 := t.pos(v0), t.pos(v1)
	for e := range t.mesh.Ring(v0) {
		x := t.mesh.Target(e)
		ox := predicates.Orient2d(p0, p1, t.pos(x))
		if ox == predicates.Collinear && between(p0, p1, t.pos(x)) {
			return topology.None, &PointOnConstrainedEdgeError{Point: x, V0: v0, V1: v1}
		}
		if ox != predicates.Clockwise || t.isBoundary(e) {
			continue
		}
		y := t.mesh.Target(t.mesh.FaceNext(e))
		if predicates.Orient2d(p0, p1, t.pos(y)) == predicates.CounterClockwise {
			return e, nil
		}
	}
	return topology.None, internalf("no triangle around %d is crossed by %d-%d", v0, v0, v1)
}

// fillChain triangulates the polygon formed by chain and the edge from its
// last to its first vertex. Ears are cut while the last two stacked vertices
// and the next chain vertex turn towards side.
func (t *Triangulator) fillChain(chain []int, side predicates.Orientation) error {
	first, last := chain[0], chain[len(chain)-1]
	s := append(t.stack[:0], chain[0], chain[1])
	for _, w := range chain[2:] {
		for len(s) >= 2 {
			a, b := s[len(s)-2], s[len(s)-1]
			if predicates.Orient2d(t.pos(a), t.pos(b), t.pos(w)) != side {
				break
			}
			if a != first || w != last {
				if err := t.addDiagonal(a, w); err != nil {
					return err
				}
			}
			t.newTriangles = append(t.newTriangles, [3]int{a, b, w})
			s = s[:len(s)-1]
		}
		s = append(s, w)
	}
	t.stack = s
	if len(s) != 2 {
		return internalf("chain %v left %d vertices unmatched", chain, len(s))
	}
	return nil
}

// addDiagonal inserts the edge a-w at its angular position in both rings.
func (t *Triangulator) addDiagonal(a, w int) error {
	afterA, err := t.ringSlot(a, w)
	if err != nil {
		return err
	}
	afterW, err := t.ringSlot(w, a)
	if err != nil {
		return err
	}
	t.mesh.AddEdge(a, w, afterA, afterW)
	return nil
}

// ringSlot returns the half-edge around v after which an edge towards w
// belongs.
func (t *Triangulator) ringSlot(v, w int) (int, error) {
	pv, pw := t.pos(v), t.pos(w)
	for e := range t.mesh.Ring(v) {
		n := t.mesh.Next(e)
		if n == e {
			return e, nil
		}
		if inWedge(pv, t.pos(t.mesh.Target(e)), t.pos(t.mesh.Target(n)), pw) {
			return e, nil
		}
	}
	if t.mesh.FirstEdge(v) == topology.None {
		return topology.None, nil
	}
	return topology.None, internalf("no ring position around %d for edge towards %d", v, w)
}

// inWedge reports whether p lies strictly inside the counter-clockwise wedge at
// o from the ray towards u to the ray towards w.
func inWedge(o, u, w, p r2.Point) bool {
	leftOfU := predicates.Orient2d(o, u, p) == predicates.CounterClockwise
	rightOfW := predicates.Orient2d(o, w, p) == predicates.Clockwise
	if predicates.Orient2d(o, u, w) == predicates.CounterClockwise {
		return leftOfU && rightOfW
	}
	return leftOfU || rightOfW
}

// between reports whether q, known to be collinear with a and b, lies strictly
// between them.
func between(a, b, q r2.Point) bool {
	if a.X != b.X {
		return (a.X < q.X && q.X < b.X) || (b.X < q.X && q.X < a.X)
	}
	return (a.Y < q.Y && q.Y < b.Y) || (b.Y < q.Y && q.Y < a.Y)
}
