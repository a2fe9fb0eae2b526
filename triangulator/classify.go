// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

import (
	"github.com/2dChan/cdt/internal/topology"
)

// Location tells on which side of the polylines a triangle lies. Locations are
// bit flags so they can be combined into masks.
type Location uint8

const (
	// LocationInterior triangles are inside an outline.
	LocationInterior Location = 1 << iota
	// LocationHole triangles are inside a hole.
	LocationHole
	// LocationConvexHull triangles fill the convex hull outside every polyline.
	LocationConvexHull

	LocationAll = LocationInterior | LocationHole | LocationConvexHull
)

func (l Location) String() string {
	switch l {
	case LocationInterior:
		return "interior"
	case LocationHole:
		return "hole"
	case LocationConvexHull:
		return "convex-hull"
	case LocationAll:
		return "all"
	}
	return "mixed"
}

func locationOf(kind EdgeKind) Location {
	if kind == Hole {
		return LocationHole
	}
	return LocationInterior
}

// triangle is a classified triangle; vertices are counter-clockwise and edge
// is the half-edge from vertices[0] to vertices[1].
type triangle struct {
	vertices [3]int32
	edge     int32
	polyline int32
	location Location
}

// region is the classification state carried across the dual graph.
type region struct {
	location Location
	polyline int
}

const unresolvedParent = -2

// classify recovers the triangles of the finished mesh and labels them by
// walking from the hull across triangle edges, toggling between inside and
// outside whenever a polyline edge is crossed.
func (t *Triangulator) classify() error {
	nh := t.mesh.NumHalfEdges()
	t.edgeTriangle = resize(t.edgeTriangle, nh)
	for i := range t.edgeTriangle {
		t.edgeTriangle[i] = -1
	}

	t.triangles = t.triangles[:0]
	for e := range nh {
		if t.edgeTriangle[e] >= 0 || t.isBoundary(e) {
			continue
		}
		f := t.mesh.FaceNext(e)
		g := t.mesh.FaceNext(f)
		if t.mesh.FaceNext(g) != e {
			return internalf("face of half-edge %d is not a triangle", e)
		}
		ti := int32(len(t.triangles))
		t.triangles = append(t.triangles, triangle{
			vertices: [3]int32{int32(t.mesh.Origin(e)), int32(t.mesh.Origin(f)), int32(t.mesh.Origin(g))},
			edge:     int32(e),
		})
		t.edgeTriangle[e], t.edgeTriangle[f], t.edgeTriangle[g] = ti, ti, ti
	}
	if want := 1 + nh/2 - t.mesh.NumVertices(); len(t.triangles) != want {
		return internalf("found %d triangles, want %d", len(t.triangles), want)
	}

	t.kinds = resize(t.kinds, len(t.polylines))
	t.parents = resize(t.parents, len(t.polylines))
	for i, p := range t.polylines {
		t.kinds[i] = p.kind
		t.parents[i] = unresolvedParent
	}

	hull := t.mesh.FindEdge(t.hullEdge[0], t.hullEdge[1])
	if hull == topology.None {
		return internalf("hull edge %d-%d is missing", t.hullEdge[0], t.hullEdge[1])
	}
	seed := t.edgeTriangle[hull]
	r, err := t.cross(region{location: LocationConvexHull, polyline: NoPolyline}, hull)
	if err != nil {
		return err
	}
	t.triangles[seed].location = r.location
	t.triangles[seed].polyline = int32(r.polyline)

	t.queue = append(t.queue[:0], seed)
	for len(t.queue) > 0 {
		ti := t.queue[0]
		t.queue = t.queue[1:]
		tri := t.triangles[ti]
		from := region{location: tri.location, polyline: int(tri.polyline)}

		e := int(tri.edge)
		for range 3 {
			o := topology.Opposite(e)
			if !t.isBoundary(o) {
				ni := t.edgeTriangle[o]
				if t.triangles[ni].location == 0 {
					r, err := t.cross(from, e)
					if err != nil {
						return err
					}
					t.triangles[ni].location = r.location
					t.triangles[ni].polyline = int32(r.polyline)
					t.queue = append(t.queue, ni)
				}
			}
			e = t.mesh.FaceNext(e)
		}
	}

	for i, p := range t.parents {
		if p == unresolvedParent {
			t.parents[i] = NoPolyline
		}
	}
	return nil
}

// cross returns the region entered from r by crossing the edge e.
func (t *Triangulator) cross(r region, e int) (region, error) {
	c := t.constraintOf(e)
	if !c.kind.isPolyline() {
		return r, nil
	}
	q := int(c.polyline)
	if q == r.polyline {
		return t.regionInside(t.parents[q]), nil
	}

	kind := t.kinds[q]
	if kind == AutoDetect {
		kind = Outline
		if r.location == LocationInterior {
			kind = Hole
		}
		t.kinds[q] = kind
	}
	switch {
	case kind == Hole && r.location == LocationConvexHull:
		return region{}, &HoleNotInsideOutlineError{Polyline: q}
	case kind == Hole && r.location == LocationHole, kind == Outline && r.location == LocationInterior:
		return region{}, &StackedPolylinesError{Polyline: q, Parent: r.polyline}
	}
	if p := t.parents[q]; p != unresolvedParent && p != r.polyline {
		return region{}, &StackedPolylinesError{Polyline: q, Parent: r.polyline}
	}
	t.parents[q] = r.polyline
	return region{location: locationOf(kind), polyline: q}, nil
}

// regionInside returns the region directly inside polyline p.
func (t *Triangulator) regionInside(p int) region {
	if p == NoPolyline || p == unresolvedParent {
		return region{location: LocationConvexHull, polyline: NoPolyline}
	}
	return region{location: locationOf(t.kinds[p]), polyline: p}
}
