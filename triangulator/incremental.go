// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

import (
	"cmp"
	"slices"

	"github.com/2dChan/cdt/internal/topology"
	"github.com/2dChan/cdt/predicates"
)

// build triangulates all points, ignoring constraints.
func (t *Triangulator) build() error {
	n := t.numPoints
	t.mesh.Reset(n)

	t.order = resize(t.order, n)
	for i := range n {
		t.order[i] = i
	}
	slices.SortFunc(t.order, func(a, b int) int {
		pa, pb := t.pos(a), t.pos(b)
		if c := cmp.Compare(pa.X, pb.X); c != 0 {
			return c
		}
		if c := cmp.Compare(pa.Y, pb.Y); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	for i := 1; i < n; i++ {
		if t.pos(t.order[i-1]) == t.pos(t.order[i]) {
			return &DuplicatePointsError{First: t.order[i-1], Second: t.order[i]}
		}
	}

	a, b := t.order[0], t.order[1]
	k := 2
	for ; k < n; k++ {
		if predicates.Orient2d(t.pos(a), t.pos(b), t.pos(t.order[k])) != predicates.Collinear {
			break
		}
	}
	if k == n {
		return ErrAllPointsCollinear
	}
	c := t.order[k]
	if predicates.Orient2d(t.pos(a), t.pos(b), t.pos(c)) == predicates.Clockwise {
		b, c = c, b
	}

	t.resetHull(n)
	t.initTriangle(a, b, c)

	// The anchor is the lexicographically largest inserted point. It is always
	// on the hull and adjacent to an edge visible from the next point. Points
	// skipped while searching for the first triangle lie on a line before it,
	// so the anchor only advances past k.
	anchor := t.order[k]
	for i := 2; i < n; i++ {
		if i == k {
			continue
		}
		v := t.order[i]
		if err := t.insertPoint(v, anchor); err != nil {
			return err
		}
		if i > k {
			anchor = v
		}
	}
	t.hullEdge = [2]int{anchor, t.nextOnHull(anchor)}
	return nil
}

// initTriangle creates the counter-clockwise triangle a, b, c.
func (t *Triangulator) initTriangle(a, b, c int) {
	ab := t.mesh.AddEdge(a, b, topology.None, topology.None)
	bc := t.mesh.AddEdge(b, c, topology.Opposite(ab), topology.None)
	ca := t.mesh.AddEdge(c, a, topology.Opposite(bc), ab)
	for _, e := range []int{ab, bc, ca} {
		t.setBoundary(topology.Opposite(e), true)
	}
	t.initHull(a, b, c)
}

// insertPoint connects v to every hull edge visible from it.
func (t *Triangulator) insertPoint(v, anchor int) error {
	p := t.pos(v)
	visible := func(u, w int) bool {
		return predicates.Orient2d(t.pos(u), t.pos(w), p) == predicates.Clockwise
	}

	first, last := anchor, anchor
	for visible(t.prevOnHull(first), first) {
		first = t.prevOnHull(first)
		if first == anchor {
			return internalf("point %d sees the whole hull", v)
		}
	}
	for visible(last, t.nextOnHull(last)) {
		last = t.nextOnHull(last)
		if last == first {
			return internalf("point %d sees the whole hull", v)
		}
	}
	if first == last {
		return internalf("point %d sees no hull edge from anchor %d", v, anchor)
	}

	after := t.mesh.FindEdge(first, t.prevOnHull(first))
	if after == topology.None {
		return internalf("hull edge %d-%d is missing", first, t.prevOnHull(first))
	}
	fan := t.mesh.AddEdge(v, first, topology.None, after)
	t.setBoundary(fan, true)

	e := fan
	for u := first; u != last; {
		w := t.nextOnHull(u)
		old := t.mesh.FindEdge(u, w)
		if old == topology.None {
			return internalf("hull edge %d-%d is missing", u, w)
		}
		t.setBoundary(topology.Opposite(old), false)
		e = t.mesh.AddEdge(v, w, fan, topology.Opposite(old))
		if t.delaunay {
			t.pushFlip(old)
		}
		u = w
	}
	t.setBoundary(topology.Opposite(e), true)
	t.hullReplace(first, last, v)

	if t.delaunay {
		t.restoreDelaunay()
	}
	return nil
}
