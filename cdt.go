// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package cdt computes constrained Delaunay triangulations of planar point sets bounded by outline and hole polylines.

package cdt

import (
	"errors"
	"fmt"

	"github.com/2dChan/cdt/triangulator"
	"github.com/golang/geo/r2"
)

// Location tells whether a triangle is inside an outline, inside a hole, or fills the rest of the convex hull.
type Location = triangulator.Location

const (
	LocationInterior   = triangulator.LocationInterior
	LocationHole       = triangulator.LocationHole
	LocationConvexHull = triangulator.LocationConvexHull
	LocationAll        = triangulator.LocationAll
)

// EdgeKind is the constraint kind of an edge or polyline.
type EdgeKind = triangulator.EdgeKind

const (
	Unconstrained       = triangulator.Unconstrained
	ManuallyConstrained = triangulator.ManuallyConstrained
	AutoDetect          = triangulator.AutoDetect
	Outline             = triangulator.Outline
	Hole                = triangulator.Hole
)

// NoPolyline is the parent of a polyline that no other polyline encloses.
const NoPolyline = triangulator.NoPolyline

// Polyline is a closed chain of point indices. The last index may repeat the first.
type Polyline struct {
	Kind    EdgeKind
	Indices []int
}

type Options struct {
	Delaunay         bool
	Polylines        []Polyline
	ConstrainedEdges [][2]int
}

type Option func(*Options) error

// WithDelaunay selects between a constrained Delaunay triangulation (the default) and any valid triangulation.
func WithDelaunay(delaunay bool) Option {
	return func(o *Options) error {
		o.Delaunay = delaunay
		return nil
	}
}

// WithOutline adds a polyline whose inside is part of the result.
func WithOutline(indices ...int) Option {
	return withPolyline(Outline, indices)
}

// WithHole adds a polyline whose inside is cut out of the enclosing outline.
func WithHole(indices ...int) Option {
	return withPolyline(Hole, indices)
}

// WithPolyline adds a polyline that is an outline or a hole depending on how deep it is nested.
func WithPolyline(indices ...int) Option {
	return withPolyline(AutoDetect, indices)
}

func withPolyline(kind EdgeKind, indices []int) Option {
	return func(o *Options) error {
		if len(indices) < 3 {
			return fmt.Errorf("cdt: %v polyline %d has %d indices, minimum 3 required", kind, len(o.Polylines), len(indices))
		}
		for _, idx := range indices {
			if idx < 0 {
				return fmt.Errorf("cdt: %v polyline %d has negative index %d", kind, len(o.Polylines), idx)
			}
		}
		o.Polylines = append(o.Polylines, Polyline{Kind: kind, Indices: indices})
		return nil
	}
}

// WithConstrainedEdge forces the edge a-b into the triangulation. It does not affect triangle locations.
func WithConstrainedEdge(a, b int) Option {
	return func(o *Options) error {
		if a < 0 || b < 0 {
			return errors.New("cdt: constrained edge index must be non-negative")
		}
		if a == b {
			return fmt.Errorf("cdt: constrained edge %d-%d is a loop", a, b)
		}
		o.ConstrainedEdges = append(o.ConstrainedEdges, [2]int{a, b})
		return nil
	}
}

// NewTriangulation triangulates points subject to the polylines and constrained edges given as options.
// Errors of the triangulation itself are the error types of package triangulator.
func NewTriangulation(points []r2.Point, setters ...Option) (*Triangulation, error) {
	opts := Options{
		Delaunay: true,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	tr := triangulator.New()
	tr.SetPointSlice(points)
	for _, p := range opts.Polylines {
		switch p.Kind {
		case Outline:
			tr.AddOutline(p.Indices)
		case Hole:
			tr.AddHole(p.Indices)
		default:
			tr.AddPolyline(p.Indices)
		}
	}
	for _, e := range opts.ConstrainedEdges {
		tr.AddConstrainedEdge(e[0], e[1])
	}
	if err := tr.Triangulate(opts.Delaunay); err != nil {
		return nil, err
	}

	return newTriangulation(points, tr), nil
}
