package stripify

import (
	"reflect"
	"sort"
	"testing"
)

// triangleSet normalizes a flat index list into a sorted set of sorted
// triples, so two index streams that describe the same triangles in a
// different order or winding compare equal.
func triangleSet(indices []int) [][3]int {
	var tris [][3]int
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		if v0 == v1 || v0 == v2 || v1 == v2 {
			continue
		}
		tri := [3]int{v0, v1, v2}
		sort.Ints(tri[:])
		tris = append(tris, tri)
	}
	sort.Slice(tris, func(i, j int) bool {
		return tris[i][0] < tris[j][0] || (tris[i][0] == tris[j][0] && tris[i][1] < tris[j][1])
	})
	return tris
}

// stripTriangles expands a STRIP group's indices into triangles using the
// standard strip rule, skipping duplicate-index (degenerate) triples.
func stripTriangles(indices []int) [][3]int {
	var tris [][3]int
	for i := 0; i+2 < len(indices); i++ {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		if v0 == v1 || v0 == v2 || v1 == v2 {
			continue
		}
		tri := [3]int{v0, v1, v2}
		sort.Ints(tri[:])
		tris = append(tris, tri)
	}
	sort.Slice(tris, func(i, j int) bool {
		return tris[i][0] < tris[j][0] || (tris[i][0] == tris[j][0] && tris[i][1] < tris[j][1])
	})
	return tris
}

func allTriangles(t *testing.T, groups []PrimitiveGroup) [][3]int {
	t.Helper()
	var all [][3]int
	for _, g := range groups {
		switch g.Kind {
		case Strip:
			all = append(all, stripTriangles(g.Indices)...)
		case List:
			all = append(all, triangleSet(g.Indices)...)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i][0] < all[j][0] || (all[i][0] == all[j][0] && all[i][1] < all[j][1])
	})
	return all
}

func TestStripifySingleTriangle(t *testing.T) {
	groups := Stripify([]int{0, 1, 2}, DefaultConfig())

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Kind != Strip {
		t.Fatalf("got kind %v, want Strip", groups[0].Kind)
	}

	got := triangleSet(groups[0].Indices)
	want := triangleSet([]int{0, 1, 2})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got triangles %v, want %v", got, want)
	}
}

func TestStripifyQuad(t *testing.T) {
	indices := []int{0, 1, 2, 2, 1, 3}
	groups := Stripify(indices, DefaultConfig())

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Kind != Strip {
		t.Fatalf("got kind %v, want Strip", groups[0].Kind)
	}

	got := allTriangles(t, groups)
	want := triangleSet(indices)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got triangles %v, want %v", got, want)
	}
}

func TestStripifyFourTriangleStrip(t *testing.T) {
	indices := []int{0, 1, 2, 2, 1, 3, 2, 3, 4, 4, 3, 5}
	groups := Stripify(indices, DefaultConfig())

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Kind != Strip {
		t.Fatalf("got kind %v, want Strip", groups[0].Kind)
	}

	got := allTriangles(t, groups)
	want := triangleSet(indices)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got triangles %v, want %v", got, want)
	}
}

func TestStripifyDisjointTrianglesUnstitched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StitchStrips = false
	indices := []int{0, 1, 2, 3, 4, 5}

	groups := Stripify(indices, cfg)

	var strips int
	for _, g := range groups {
		if g.Kind == Strip {
			strips++
			for _, idx := range g.Indices {
				if idx == -1 {
					t.Errorf("sentinel -1 leaked into caller-visible group %v", g.Indices)
				}
			}
		}
	}
	if strips != 2 {
		t.Errorf("got %d strip groups, want 2", strips)
	}

	got := allTriangles(t, groups)
	want := triangleSet(indices)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got triangles %v, want %v", got, want)
	}
}

func TestStripifyDisjointTrianglesStitched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StitchStrips = true
	indices := []int{0, 1, 2, 3, 4, 5}

	groups := Stripify(indices, cfg)

	var strips int
	for _, g := range groups {
		if g.Kind == Strip {
			strips++
		}
	}
	if strips != 1 {
		t.Errorf("got %d strip groups, want 1 (stitched)", strips)
	}

	got := allTriangles(t, groups)
	want := triangleSet(indices)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got triangles %v, want %v", got, want)
	}
}

func TestStripifyListsOnly(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ListsOnly = true
	indices := []int{0, 1, 2, 2, 1, 3}

	groups := Stripify(indices, cfg)

	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Kind != List {
		t.Fatalf("got kind %v, want List", groups[0].Kind)
	}

	got := triangleSet(groups[0].Indices)
	want := triangleSet(indices)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got triangles %v, want %v", got, want)
	}
}

func TestStripifyEmptyInput(t *testing.T) {
	groups := Stripify(nil, DefaultConfig())
	if len(groups) != 0 {
		t.Errorf("got %d groups for empty input, want 0", len(groups))
	}
}

func TestStripifyDropsInputDegenerate(t *testing.T) {
	indices := []int{0, 1, 2, 3, 3, 4}
	groups := Stripify(indices, DefaultConfig())

	got := allTriangles(t, groups)
	want := triangleSet([]int{0, 1, 2})
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got triangles %v, want %v (degenerate input triangle must be dropped)", got, want)
	}
}

func TestStripifyMinStripLengthSpillsToList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinStripLength = 100
	indices := []int{0, 1, 2, 2, 1, 3}

	groups := Stripify(indices, cfg)

	for _, g := range groups {
		if g.Kind == Strip {
			t.Errorf("got a strip group with MinStripLength=100, want everything spilled to a list")
		}
	}

	got := allTriangles(t, groups)
	want := triangleSet(indices)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got triangles %v, want %v", got, want)
	}
}

func TestRemapIndicesFirstTouchOrder(t *testing.T) {
	groups := []PrimitiveGroup{
		{Kind: List, Indices: []int{5, 7, 2, 2, 7, 9}},
	}

	remapped := RemapIndices(groups, 10)

	want := []int{0, 1, 2, 2, 1, 3}
	if !reflect.DeepEqual(remapped[0].Indices, want) {
		t.Errorf("got %v, want %v", remapped[0].Indices, want)
	}
}

func TestRemapIndicesRoundTrip(t *testing.T) {
	original := []PrimitiveGroup{
		{Kind: List, Indices: []int{8, 3, 5, 5, 3, 1}},
	}

	remapped := RemapIndices(original, 10)

	inverse := make(map[int]int)
	for i, old := range original[0].Indices {
		inverse[remapped[0].Indices[i]] = old
	}

	for i, newIdx := range remapped[0].Indices {
		if inverse[newIdx] != original[0].Indices[i] {
			t.Errorf("round-trip mismatch at %d: got old %d, want %d", i, inverse[newIdx], original[0].Indices[i])
		}
	}
}
