// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

import (
	"github.com/2dChan/cdt/internal/topology"
	"github.com/2dChan/cdt/predicates"
)

// flipItem is a queued edge together with the endpoints it had when queued.
// A flip reuses the slot for the new diagonal, so stale items are detected by
// comparing endpoints.
type flipItem struct {
	edge   int32
	v0, v1 int32
}

// pushFlip queues e for a Delaunay check. Its adjacent triangles are assumed to
// have changed, so its Delaunay mark is cleared.
func (t *Triangulator) pushFlip(e int) {
	t.pairData(e).delaunay = false
	t.flipStack = append(t.flipStack, flipItem{
		edge: int32(e),
		v0:   int32(t.mesh.Origin(e)),
		v1:   int32(t.mesh.Target(e)),
	})
}

// restoreDelaunay flips queued edges until none of them violates the
// Delaunay criterion.
func (t *Triangulator) restoreDelaunay() {
	for len(t.flipStack) > 0 {
		item := t.flipStack[len(t.flipStack)-1]
		t.flipStack = t.flipStack[:len(t.flipStack)-1]

		e := int(item.edge)
		if t.mesh.Origin(e) != int(item.v0) || t.mesh.Target(e) != int(item.v1) {
			continue
		}
		d := t.pairData(e)
		if d.delaunay {
			continue
		}
		if d.constraint.kind != Unconstrained || t.isBoundary(e) || t.isBoundary(topology.Opposite(e)) {
			d.delaunay = true
			continue
		}
		if !t.shouldFlip(e) {
			d.delaunay = true
			continue
		}

		o := topology.Opposite(e)
		ebc := t.mesh.FaceNext(e)
		eca := t.mesh.FaceNext(ebc)
		ead := t.mesh.FaceNext(o)
		edb := t.mesh.FaceNext(ead)
		t.mesh.Flip(e)
		t.pairData(e).delaunay = true
		for _, n := range [...]int{ebc, eca, ead, edb} {
			t.pushFlip(n)
		}
	}
}

// shouldFlip reports whether the apex right of e lies strictly inside the
// circumcircle of the triangle left of e.
func (t *Triangulator) shouldFlip(e int) bool {
	a := t.pos(t.mesh.Origin(e))
	b := t.pos(t.mesh.Target(e))
	c := t.pos(t.mesh.Target(t.mesh.FaceNext(e)))
	d := t.pos(t.mesh.Target(t.mesh.FaceNext(topology.Opposite(e))))
	return predicates.InCircle(a, b, c, d) == predicates.Inside
}
