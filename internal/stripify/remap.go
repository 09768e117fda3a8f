package stripify

// RemapIndices renumbers every index across groups in first-touch order —
// the first time an old index is seen it gets the next sequential new
// index, 0, 1, 2, ... — which clusters a vertex buffer's eventual access
// pattern to match draw order. numVerts bounds the old index space; every
// value in groups must be less than it.
//
// The caller is responsible for reordering its vertex buffer to match:
// the vertex formerly at old index i belongs at the new index this
// function assigned it.
func RemapIndices(groups []PrimitiveGroup, numVerts int) []PrimitiveGroup {
	cache := make([]int, numVerts)
	for i := range cache {
		cache[i] = -1
	}

	out := make([]PrimitiveGroup, len(groups))
	nextIndex := 0

	for i, g := range groups {
		remapped := make([]int, len(g.Indices))
		for j, old := range g.Indices {
			if cache[old] == -1 {
				cache[old] = nextIndex
				remapped[j] = nextIndex
				nextIndex++
			} else {
				remapped[j] = cache[old]
			}
		}
		out[i] = PrimitiveGroup{Kind: g.Kind, Indices: remapped}
	}

	return out
}
