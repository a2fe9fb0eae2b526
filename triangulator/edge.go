// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

import "github.com/2dChan/cdt/internal/topology"

// EdgeKind classifies an edge by the constraint that created it.
type EdgeKind uint8

const (
	Unconstrained EdgeKind = iota
	ManuallyConstrained
	// AutoDetect edges belong to a polyline whose kind is inferred while
	// classifying triangles.
	AutoDetect
	Outline
	Hole
)

func (k EdgeKind) String() string {
	switch k {
	case ManuallyConstrained:
		return "manual"
	case AutoDetect:
		return "auto-detect"
	case Outline:
		return "outline"
	case Hole:
		return "hole"
	}
	return "unconstrained"
}

// priority orders kinds for overriding; Outline and Hole share the top rank.
func (k EdgeKind) priority() int {
	switch k {
	case ManuallyConstrained:
		return 1
	case AutoDetect:
		return 2
	case Outline, Hole:
		return 3
	}
	return 0
}

func (k EdgeKind) isPolyline() bool {
	return k == AutoDetect || k == Outline || k == Hole
}

// constraint is the classification shared by both half-edges of a pair.
type constraint struct {
	kind     EdgeKind
	polyline int32
}

// edgeData is the per-half-edge payload of the mesh. Pair-wide fields live in
// the even half-edge of the pair.
type edgeData struct {
	constraint constraint
	delaunay   bool
	// boundary is set on half-edges whose left face is outside the convex hull.
	boundary bool
}

type mesh = topology.Mesh[edgeData]

func (t *Triangulator) pairData(e int) *edgeData {
	return &t.mesh.Edges[e&^1].Data
}

func (t *Triangulator) isBoundary(e int) bool {
	return t.mesh.Edges[e].Data.boundary
}

func (t *Triangulator) setBoundary(e int, b bool) {
	t.mesh.Edges[e].Data.boundary = b
}

func (t *Triangulator) constraintOf(e int) constraint {
	return t.pairData(e).constraint
}

// mergeConstraint applies c to the existing edge e, keeping the classification
// with the higher priority.
func (t *Triangulator) mergeConstraint(e int, c constraint) error {
	d := t.pairData(e)
	cur := d.constraint
	switch {
	case c.kind.priority() > cur.kind.priority():
		d.constraint = c
	case c.kind.priority() == cur.kind.priority() && c.kind.priority() == Outline.priority() && c.kind != cur.kind:
		return &EdgeWithDifferentConstrainedTypesError{
			V0:        t.mesh.Origin(e),
			V1:        t.mesh.Target(e),
			Polylines: [2]int{int(cur.polyline), int(c.polyline)},
		}
	}
	return nil
}
