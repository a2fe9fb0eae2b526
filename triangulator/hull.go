// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package triangulator

// The convex hull ring is a cyclic doubly linked list of vertices in
// counter-clockwise order, stored as two arrays indexed by vertex. It only
// exists while points are being inserted.

func (t *Triangulator) resetHull(n int) {
	t.hullNext = resize(t.hullNext, n)
	t.hullPrev = resize(t.hullPrev, n)
	for i := range n {
		t.hullNext[i] = -1
		t.hullPrev[i] = -1
	}
}

// initHull makes a, b, c (counter-clockwise) the hull.
func (t *Triangulator) initHull(a, b, c int) {
	t.hullLink(a, b)
	t.hullLink(b, c)
	t.hullLink(c, a)
}

// hullLink makes b follow a on the hull.
func (t *Triangulator) hullLink(a, b int) {
	t.hullNext[a] = int32(b)
	t.hullPrev[b] = int32(a)
}

// hullReplace replaces the vertices strictly between first and last with v.
func (t *Triangulator) hullReplace(first, last, v int) {
	for u := int(t.hullNext[first]); u != last; {
		next := int(t.hullNext[u])
		t.hullNext[u] = -1
		t.hullPrev[u] = -1
		u = next
	}
	t.hullLink(first, v)
	t.hullLink(v, last)
}

func (t *Triangulator) nextOnHull(v int) int {
	return int(t.hullNext[v])
}

func (t *Triangulator) prevOnHull(v int) int {
	return int(t.hullPrev[v])
}

func resize[S ~[]E, E any](s S, n int) S {
	if cap(s) < n {
		return make(S, n)
	}
	return s[:n]
}
