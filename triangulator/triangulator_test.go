// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/2dChan/cdt/predicates"
	"github.com/2dChan/cdt/utils"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//	3(0,4) --------- 2(4,4)
//	  |  7(1,3)-6(3,3) |
//	  |   |       |    |
//	  |  4(1,1)-5(3,1) |
//	0(0,0) --------- 1(4,0)
var squareWithHole = []r2.Point{
	{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	{X: 1, Y: 1}, {X: 3, Y: 1}, {X: 3, Y: 3}, {X: 1, Y: 3},
}

var unitSquare = []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

// concentricSquares holds three nested squares of four points each, from the
// outermost in.
var concentricSquares = []r2.Point{
	{X: 0, Y: 0}, {X: 6, Y: 0}, {X: 6, Y: 6}, {X: 0, Y: 6},
	{X: 1, Y: 1}, {X: 5, Y: 1}, {X: 5, Y: 5}, {X: 1, Y: 5},
	{X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}, {X: 2, Y: 4},
}

func TestTriangulator_ErrBeforeTriangulate(t *testing.T) {
	var zero Triangulator
	if err := zero.Err(); !errors.Is(err, ErrNotTriangulated) {
		t.Errorf("Triangulator{}.Err() = %v, want %v", err, ErrNotTriangulated)
	}
	if err := New().Err(); !errors.Is(err, ErrNotTriangulated) {
		t.Errorf("New().Err() = %v, want %v", err, ErrNotTriangulated)
	}
}

func TestTriangulate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		points []r2.Point
		setup  func(tr *Triangulator)
		want   error
	}{
		{
			name:   "no points",
			points: nil,
			want:   &TooFewPointsError{Count: 0},
		},
		{
			name:   "two points",
			points: unitSquare[:2],
			want:   &TooFewPointsError{Count: 2},
		},
		{
			name:   "nan coordinate",
			points: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: math.NaN(), Y: 1}},
			want:   &NonFiniteCoordinateError{Index: 2},
		},
		{
			name:   "infinite coordinate",
			points: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: math.Inf(-1)}, {X: 0, Y: 1}},
			want:   &NonFiniteCoordinateError{Index: 1},
		},
		{
			name: "duplicate points",
			points: []r2.Point{
				{X: 2, Y: 3}, {X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}, {X: 2, Y: 3},
			},
			want: &DuplicatePointsError{First: 0, Second: 5},
		},
		{
			name:   "all collinear",
			points: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 3, Y: 3}, {X: 2, Y: 2}},
			want:   ErrAllPointsCollinear,
		},
		{
			name:   "polyline too short",
			points: unitSquare,
			setup:  func(tr *Triangulator) { tr.AddOutline([]int{0, 1}) },
			want:   &PolylineTooShortError{Polyline: 0},
		},
		{
			name:   "closed polyline too short",
			points: unitSquare,
			setup: func(tr *Triangulator) {
				tr.AddOutline([]int{0, 1, 2, 3})
				tr.AddHole([]int{0, 1, 0})
			},
			want: &PolylineTooShortError{Polyline: 1},
		},
		{
			name:   "polyline index out of range",
			points: unitSquare,
			setup:  func(tr *Triangulator) { tr.AddOutline([]int{0, 1, 9}) },
			want:   &PolylineIndexOutOfRangeError{Polyline: 0, Index: 9, NumPoints: 4},
		},
		{
			name:   "polyline repeats point",
			points: unitSquare,
			setup:  func(tr *Triangulator) { tr.AddOutline([]int{0, 1, 1, 2}) },
			want:   &PolylineDuplicateConsecutivePointsError{Polyline: 0, Index: 1},
		},
		{
			name:   "manual edge index out of range",
			points: unitSquare,
			setup:  func(tr *Triangulator) { tr.AddConstrainedEdge(0, -1) },
			want:   &PolylineIndexOutOfRangeError{Polyline: NoPolyline, Index: -1, NumPoints: 4},
		},
		{
			name:   "manual edge is a loop",
			points: unitSquare,
			setup:  func(tr *Triangulator) { tr.AddConstrainedEdge(2, 2) },
			want:   &PolylineDuplicateConsecutivePointsError{Polyline: NoPolyline, Index: 2},
		},
		{
			name:   "edge in outline and hole",
			points: append(slices.Clone(unitSquare), r2.Point{X: 0.5, Y: 0.5}),
			setup: func(tr *Triangulator) {
				tr.AddOutline([]int{0, 1, 2, 3})
				tr.AddHole([]int{0, 1, 4})
			},
			want: &EdgeWithDifferentConstrainedTypesError{V0: 0, V1: 1, Polylines: [2]int{0, 1}},
		},
		{
			name:   "point on constrained edge",
			points: []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 1}},
			setup:  func(tr *Triangulator) { tr.AddConstrainedEdge(0, 2) },
			want:   &PointOnConstrainedEdgeError{Point: 1, V0: 0, V1: 2},
		},
		{
			name:   "hole not inside outline",
			points: unitSquare,
			setup:  func(tr *Triangulator) { tr.AddHole([]int{0, 1, 2, 3}) },
			want:   &HoleNotInsideOutlineError{Polyline: 0},
		},
		{
			name:   "outline inside outline",
			points: squareWithHole,
			setup: func(tr *Triangulator) {
				tr.AddOutline([]int{0, 1, 2, 3})
				tr.AddOutline([]int{4, 5, 6, 7})
			},
			want: &StackedPolylinesError{Polyline: 1, Parent: 0},
		},
		{
			name:   "hole inside hole",
			points: concentricSquares,
			setup: func(tr *Triangulator) {
				tr.AddOutline([]int{0, 1, 2, 3})
				tr.AddHole([]int{4, 5, 6, 7})
				tr.AddHole([]int{8, 9, 10, 11})
			},
			want: &StackedPolylinesError{Polyline: 2, Parent: 1},
		},
	}
	for _, tt := range tests {
		for _, delaunay := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s/delaunay=%v", tt.name, delaunay), func(t *testing.T) {
				tr := New()
				tr.SetPointSlice(tt.points)
				if tt.setup != nil {
					tt.setup(tr)
				}
				err := tr.Triangulate(delaunay)
				assert.Equal(t, tt.want, err)
				assert.Equal(t, tt.want, tr.Err())
				assertEmpty(t, tr)
			})
		}
	}
}

func TestTriangulate_ConstrainedEdgesIntersect(t *testing.T) {
	tr := New()
	tr.SetPointSlice(unitSquare)
	tr.AddConstrainedEdge(0, 2)
	tr.AddConstrainedEdge(1, 3)

	err := tr.Triangulate(false)
	var ie *ConstrainedEdgeIntersectionError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, [2]int{1, 3}, ie.Edge)
	assert.ElementsMatch(t, []int{0, 2}, ie.Other[:])
	assertEmpty(t, tr)
}

func TestTriangulate_ThreePoints(t *testing.T) {
	tr := mustTriangulate(t, unitSquare[:3], false, nil)

	if got := tr.NumTriangles(LocationConvexHull); got != 1 {
		t.Errorf("NumTriangles(LocationConvexHull) = %d, want 1", got)
	}
	if got := tr.NumTriangles(LocationInterior | LocationHole); got != 0 {
		t.Errorf("NumTriangles(LocationInterior|LocationHole) = %d, want 0", got)
	}

	ccw := slices.Collect(tr.Triangles(LocationAll, CounterClockwise))
	require.Len(t, ccw, 1)
	if !cyclicEqual(ccw[0][:], []int{0, 1, 2}) {
		t.Errorf("Triangles(LocationAll, CounterClockwise) = %v, want cyclic [0 1 2]", ccw)
	}
	cw := slices.Collect(tr.Triangles(LocationAll, Clockwise))
	require.Len(t, cw, 1)
	if !cyclicEqual(cw[0][:], []int{0, 2, 1}) {
		t.Errorf("Triangles(LocationAll, Clockwise) = %v, want cyclic [0 2 1]", cw)
	}
	if got := slices.Collect(tr.Triangles(LocationInterior, CounterClockwise)); len(got) != 0 {
		t.Errorf("Triangles(LocationInterior, CounterClockwise) = %v, want none", got)
	}

	kinds := maps.Collect(tr.Edges())
	assert.Len(t, kinds, 3)
	for e, k := range kinds {
		assert.Equal(t, Unconstrained, k, "kind of edge %v", e)
	}

	if hull := slices.Collect(tr.ConvexHull()); !cyclicEqual(hull, []int{0, 2, 1}) {
		t.Errorf("ConvexHull() = %v, want cyclic [0 2 1]", hull)
	}
}

func TestTriangulate_SquareWithHole(t *testing.T) {
	for _, delaunay := range []bool{false, true} {
		t.Run(fmt.Sprintf("delaunay=%v", delaunay), func(t *testing.T) {
			tr := mustTriangulate(t, squareWithHole, delaunay, func(tr *Triangulator) {
				tr.AddOutline([]int{0, 1, 2, 3})
				tr.AddHole([]int{4, 5, 6, 7})
			})

			tests := []struct {
				mask Location
				want int
			}{
				{LocationInterior, 8},
				{LocationHole, 2},
				{LocationConvexHull, 0},
				{LocationAll, 10},
			}
			for _, tt := range tests {
				if got := tr.NumTriangles(tt.mask); got != tt.want {
					t.Errorf("NumTriangles(%v) = %d, want %d", tt.mask, got, tt.want)
				}
			}

			if p, ok := tr.Parent(1); !ok || p != 0 {
				t.Errorf("Parent(1) = %d, %v, want 0, true", p, ok)
			}
			if p, ok := tr.Parent(0); ok || p != NoPolyline {
				t.Errorf("Parent(0) = %d, %v, want %d, false", p, ok, NoPolyline)
			}
			if hull := slices.Collect(tr.ConvexHull()); !cyclicEqual(hull, []int{0, 3, 2, 1}) {
				t.Errorf("ConvexHull() = %v, want cyclic [0 3 2 1]", hull)
			}

			for tri := range tr.Triangles(LocationHole, CounterClockwise) {
				for _, v := range tri {
					if v < 4 {
						t.Errorf("hole triangle %v uses outline vertex %d", tri, v)
					}
				}
			}
			assertEuler(t, tr, len(squareWithHole))
			assertPolylineEdges(t, tr, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}})
		})
	}
}

func TestTriangulate_ConvexOutline(t *testing.T) {
	const n = 9
	points := utils.RegularPolygon(n, r2.Point{X: 3, Y: -2}, 5)
	closed := append(utils.Indices(0, n), 0)
	tr := mustTriangulate(t, points, true, func(tr *Triangulator) { tr.AddOutline(closed) })

	if got := tr.NumTriangles(LocationInterior); got != n-2 {
		t.Errorf("NumTriangles(LocationInterior) = %d, want %d", got, n-2)
	}
	if got := tr.NumTriangles(LocationConvexHull | LocationHole); got != 0 {
		t.Errorf("NumTriangles(LocationConvexHull|LocationHole) = %d, want 0", got)
	}
	assertPolylineEdges(t, tr, [][]int{utils.Indices(0, n)})
}

func TestTriangulate_AutoDetect(t *testing.T) {
	// Polylines are added innermost first to show that the order does not matter.
	tr := mustTriangulate(t, concentricSquares, false, func(tr *Triangulator) {
		tr.AddPolyline([]int{8, 9, 10, 11})
		tr.AddPolyline([]int{0, 1, 2, 3})
		tr.AddPolyline([]int{4, 5, 6, 7})
	})

	wantKinds := []EdgeKind{Outline, Outline, Hole}
	wantParents := []int{2, NoPolyline, 1}
	for i := range tr.NumPolylines() {
		if got := tr.PolylineKind(i); got != wantKinds[i] {
			t.Errorf("PolylineKind(%d) = %v, want %v", i, got, wantKinds[i])
		}
		if got, _ := tr.Parent(i); got != wantParents[i] {
			t.Errorf("Parent(%d) = %d, want %d", i, got, wantParents[i])
		}
	}
	if got := tr.NumTriangles(LocationInterior); got != 10 {
		t.Errorf("NumTriangles(LocationInterior) = %d, want 10", got)
	}
	if got := tr.NumTriangles(LocationHole); got != 8 {
		t.Errorf("NumTriangles(LocationHole) = %d, want 8", got)
	}
}

func TestTriangulate_IslandInHole(t *testing.T) {
	tr := mustTriangulate(t, concentricSquares, true, func(tr *Triangulator) {
		tr.AddOutline([]int{0, 1, 2, 3})
		tr.AddHole([]int{4, 5, 6, 7})
		tr.AddOutline([]int{8, 9, 10, 11})
	})
	if p, _ := tr.Parent(2); p != 1 {
		t.Errorf("Parent(2) = %d, want 1", p)
	}
	if got := tr.NumTriangles(LocationInterior); got != 10 {
		t.Errorf("NumTriangles(LocationInterior) = %d, want 10", got)
	}
}

func TestTriangulate_ReuseAfterError(t *testing.T) {
	tr := New()
	tr.SetPointSlice(unitSquare)
	tr.AddHole([]int{0, 1, 2, 3})
	err := tr.Triangulate(false)
	require.Error(t, err)
	assert.Equal(t, err, tr.Err())
	assertEmpty(t, tr)

	tr.Reset()
	require.ErrorIs(t, tr.Err(), ErrNotTriangulated)
	assert.Zero(t, tr.NumPolylines())

	tr.SetPointSlice(squareWithHole)
	tr.AddOutline([]int{0, 1, 2, 3})
	tr.AddHole([]int{4, 5, 6, 7})
	require.NoError(t, tr.Triangulate(true))
	assert.NoError(t, tr.Err())
	assert.Equal(t, 8, tr.NumTriangles(LocationInterior))
}

func TestTriangulate_Repeatable(t *testing.T) {
	points := utils.GenerateRandomPoints(200, 3)
	tr := mustTriangulate(t, points, true, nil)
	first := slices.Collect(tr.Triangles(LocationAll, CounterClockwise))

	require.NoError(t, tr.Triangulate(true))
	second := slices.Collect(tr.Triangles(LocationAll, CounterClockwise))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Triangulate(true) twice mismatch (-want +got):\n%s", diff)
	}
}

func TestTriangulate_RandomDelaunay(t *testing.T) {
	for _, seed := range []int64{0, 1, 2} {
		t.Run(fmt.Sprintf("seed=%d", seed), func(t *testing.T) {
			points := utils.GenerateRandomPoints(300, seed)
			tr := mustTriangulate(t, points, true, nil)

			assertEuler(t, tr, len(points))
			assertCCW(t, tr, points)
			assertNeighborsSymmetric(t, tr)
			assertLocallyDelaunay(t, tr, points)
		})
	}
}

func TestTriangulate_EmptyCircumcircles(t *testing.T) {
	points := utils.GenerateRandomPoints(60, 7)
	tr := mustTriangulate(t, points, true, nil)

	for tri := range tr.Triangles(LocationAll, CounterClockwise) {
		a, b, c := points[tri[0]], points[tri[1]], points[tri[2]]
		for i, p := range points {
			if i == tri[0] || i == tri[1] || i == tri[2] {
				continue
			}
			if predicates.InCircle(a, b, c, p) == predicates.Inside {
				t.Errorf("point %d lies inside the circumcircle of triangle %v", i, tri)
			}
		}
	}
}

func TestTriangulate_Grid(t *testing.T) {
	const n = 6
	xy := make([][2]int32, 0, n*n)
	for _, p := range utils.GenerateGridPoints(n) {
		xy = append(xy, [2]int32{int32(p.X), int32(p.Y)})
	}
	at, err := IntegerPoints(xy)
	require.NoError(t, err)

	for _, delaunay := range []bool{false, true} {
		tr := New()
		tr.SetPoints(len(xy), at)
		require.NoError(t, tr.Triangulate(delaunay))

		hull := slices.Collect(tr.ConvexHull())
		assert.Len(t, hull, 4*(n-1))
		assert.Equal(t, 2*(n-1)*(n-1), tr.NumTriangles(LocationAll))
		assertEuler(t, tr, len(xy))
	}
}

func TestTriangulate_ConstrainedRandom(t *testing.T) {
	const n = 16
	outline := utils.RegularPolygon(n, r2.Point{}, 0.7)
	points := append(outline, utils.GenerateRandomPoints(300, 11)...)

	for _, delaunay := range []bool{false, true} {
		t.Run(fmt.Sprintf("delaunay=%v", delaunay), func(t *testing.T) {
			tr := mustTriangulate(t, points, delaunay, func(tr *Triangulator) {
				tr.AddOutline(utils.Indices(0, n))
				tr.AddConstrainedEdge(0, n/2)
			})

			kinds := edgeKinds(tr)
			if got := kinds[edgeKey(0, n/2)]; got != ManuallyConstrained {
				t.Errorf("kind of edge 0-%d = %v, want %v", n/2, got, ManuallyConstrained)
			}
			assertPolylineEdges(t, tr, [][]int{utils.Indices(0, n)})
			assertEuler(t, tr, len(points))
			assertCCW(t, tr, points)
			assertNeighborsSymmetric(t, tr)
			if delaunay {
				assertLocallyDelaunay(t, tr, points)
			}

			inside := func(p r2.Point) bool {
				for i := range n {
					if predicates.Orient2d(outline[i], outline[(i+1)%n], p) != predicates.CounterClockwise {
						return false
					}
				}
				return true
			}
			for i := range tr.NumTriangles(LocationAll) {
				tri, loc := tr.Triangle(i)
				c := points[tri[0]].Add(points[tri[1]]).Add(points[tri[2]]).Mul(1.0 / 3)
				want := LocationConvexHull
				if inside(c) {
					want = LocationInterior
				}
				if loc != want {
					t.Errorf("Triangle(%d) = %v at %v, want %v", i, tri, loc, want)
				}
			}
		})
	}
}

func TestTriangulate_ConvexHullMatchesQuickHull(t *testing.T) {
	points := utils.GenerateRandomPoints(100, 5)
	tr := mustTriangulate(t, points, false, nil)

	hull := slices.Collect(tr.ConvexHull())
	for i := range hull {
		a, b, c := points[hull[i]], points[hull[(i+1)%len(hull)]], points[hull[(i+2)%len(hull)]]
		if got := predicates.Orient2d(a, b, c); got != predicates.Clockwise {
			t.Errorf("ConvexHull() vertices %d, %d, %d turn %v, want %v",
				hull[i], hull[(i+1)%len(hull)], hull[(i+2)%len(hull)], got, predicates.Clockwise)
		}
	}

	// Extrude the points to a prism; its hull has the planar hull vertices on both caps.
	prism := make([]r3.Vector, 0, 2*len(points))
	for _, p := range points {
		prism = append(prism, r3.Vector{X: p.X, Y: p.Y, Z: 0})
	}
	for _, p := range points {
		prism = append(prism, r3.Vector{X: p.X, Y: p.Y, Z: 1})
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(prism, true, true, 0)
	want := make(map[int]bool)
	for _, idx := range ch.Indices {
		want[idx%len(points)] = true
	}

	got := make(map[int]bool, len(hull))
	for _, v := range hull {
		got[v] = true
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ConvexHull() vertices mismatch (-want +got):\n%s", diff)
	}
}

func TestIntegerPoints(t *testing.T) {
	at, err := IntegerPoints([][2]int64{{-3, 4}, {MaxIntegerCoordinate, -MaxIntegerCoordinate}})
	require.NoError(t, err)
	assert.Equal(t, r2.Point{X: -3, Y: 4}, at(0))
	assert.Equal(t, r2.Point{X: MaxIntegerCoordinate, Y: -MaxIntegerCoordinate}, at(1))

	_, err = IntegerPoints([][2]int64{{0, 0}, {1, MaxIntegerCoordinate + 1}})
	assert.Equal(t, &IntegerCoordinateRangeError{Index: 1, Value: MaxIntegerCoordinate + 1}, err)
}

// Benchmarks

func BenchmarkTriangulate(b *testing.B) {
	sizes := []int{1e+2, 1e+3, 1e+4, 1e+5}
	for _, delaunay := range []bool{false, true} {
		for _, pointsCnt := range sizes {
			b.Run(fmt.Sprintf("Delaunay%v/N%d", delaunay, pointsCnt), func(b *testing.B) {
				tr := New()
				tr.SetPointSlice(utils.GenerateRandomPoints(pointsCnt, 0))

				b.ReportAllocs()
				b.ResetTimer()
				for b.Loop() {
					if err := tr.Triangulate(delaunay); err != nil {
						b.Fatalf("Triangulate(%v) error = %v, want nil", delaunay, err)
					}
				}
			})
		}
	}
}

func BenchmarkTriangulate_Constrained(b *testing.B) {
	const n = 256
	points := append(utils.RegularPolygon(n, r2.Point{}, 0.9), utils.GenerateRandomPoints(1e+4, 0)...)
	tr := New()
	tr.SetPointSlice(points)
	tr.AddOutline(utils.Indices(0, n))

	b.ReportAllocs()
	b.ResetTimer()
	for b.Loop() {
		if err := tr.Triangulate(true); err != nil {
			b.Fatalf("Triangulate(true) error = %v, want nil", err)
		}
	}
}

// Helpers

func mustTriangulate(t *testing.T, points []r2.Point, delaunay bool, setup func(tr *Triangulator)) *Triangulator {
	t.Helper()
	tr := New()
	tr.SetPointSlice(points)
	if setup != nil {
		setup(tr)
	}
	if err := tr.Triangulate(delaunay); err != nil {
		t.Fatalf("Triangulate(%v) error = %v, want nil", delaunay, err)
	}
	return tr
}

func assertEmpty(t *testing.T, tr *Triangulator) {
	t.Helper()
	assert.Zero(t, tr.NumTriangles(LocationAll))
	assert.Empty(t, slices.Collect(tr.Triangles(LocationAll, CounterClockwise)))
	assert.Empty(t, slices.Collect(tr.ConvexHull()))
	assert.Empty(t, maps.Collect(tr.Edges()))
}

// assertEuler checks the triangle count against the number of hull vertices.
func assertEuler(t *testing.T, tr *Triangulator, numPoints int) {
	t.Helper()
	h := len(slices.Collect(tr.ConvexHull()))
	assert.Equal(t, 2*numPoints-2-h, tr.NumTriangles(LocationAll), "triangles of %d points with %d on the hull", numPoints, h)
}

func assertCCW(t *testing.T, tr *Triangulator, points []r2.Point) {
	t.Helper()
	for tri := range tr.Triangles(LocationAll, CounterClockwise) {
		if got := predicates.Orient2d(points[tri[0]], points[tri[1]], points[tri[2]]); got != predicates.CounterClockwise {
			t.Errorf("triangle %v turns %v, want %v", tri, got, predicates.CounterClockwise)
		}
	}
}

func assertNeighborsSymmetric(t *testing.T, tr *Triangulator) {
	t.Helper()
	for i := range tr.NumTriangles(LocationAll) {
		for j, n := range tr.Neighbors(i) {
			if n < 0 {
				continue
			}
			back := tr.Neighbors(n)
			if !slices.Contains(back[:], i) {
				t.Errorf("Neighbors(%d)[%d] = %d, but Neighbors(%d) = %v", i, j, n, n, back)
			}
		}
	}
}

// assertLocallyDelaunay checks that no unconstrained edge has the opposite apex
// of one triangle inside the circumcircle of the other.
func assertLocallyDelaunay(t *testing.T, tr *Triangulator, points []r2.Point) {
	t.Helper()
	kinds := edgeKinds(tr)
	for i := range tr.NumTriangles(LocationAll) {
		tri, _ := tr.Triangle(i)
		for j, n := range tr.Neighbors(i) {
			a, b := tri[j], tri[(j+1)%3]
			if n < 0 || kinds[edgeKey(a, b)] != Unconstrained {
				continue
			}
			other, _ := tr.Triangle(n)
			for _, d := range other {
				if d == a || d == b {
					continue
				}
				if predicates.InCircle(points[tri[0]], points[tri[1]], points[tri[2]], points[d]) == predicates.Inside {
					t.Errorf("edge %d-%d is not locally Delaunay: %d is inside the circumcircle of %v", a, b, d, tri)
				}
			}
		}
	}
}

func assertPolylineEdges(t *testing.T, tr *Triangulator, polylines [][]int) {
	t.Helper()
	kinds := edgeKinds(tr)
	for i, p := range polylines {
		want := tr.PolylineKind(i)
		for j, a := range p {
			b := p[(j+1)%len(p)]
			if got, ok := kinds[edgeKey(a, b)]; !ok || got != want {
				t.Errorf("edge %d-%d of polyline %d has kind %v (present %v), want %v", a, b, i, got, ok, want)
			}
		}
	}
}

func edgeKey(a, b int) [2]int {
	return [2]int{min(a, b), max(a, b)}
}

func edgeKinds(tr *Triangulator) map[[2]int]EdgeKind {
	kinds := make(map[[2]int]EdgeKind)
	for e, k := range tr.Edges() {
		kinds[edgeKey(e[0], e[1])] = k
	}
	return kinds
}

func cyclicEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}

	n := len(a)
	for i := range n {
		if b[0] != a[i] {
			continue
		}

		equal := true
		for j := range n {
			if a[(i+j)%n] != b[j] {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
	}

	return false
}
