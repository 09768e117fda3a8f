package stripify

// PrimitiveKind names the GPU primitive topology a PrimitiveGroup's
// indices should be drawn with.
type PrimitiveKind int

const (
	// List indicates the group's indices form independent triangles,
	// three per triangle with no shared winding.
	List PrimitiveKind = iota
	// Strip indicates the group's indices form a triangle strip, winding
	// alternating starting from the first triangle.
	Strip
)

func (k PrimitiveKind) String() string {
	if k == Strip {
		return "strip"
	}
	return "list"
}

// PrimitiveGroup is one drawable run of indices sharing a single
// PrimitiveKind.
type PrimitiveGroup struct {
	Kind    PrimitiveKind
	Indices []int
}

// Stripify turns a flat triangle index list into a set of PrimitiveGroups
// optimized for the vertex cache described by cfg. Degenerate input
// triangles are dropped. With cfg.ListsOnly set, strips are still found
// and split as usual, then flattened with the leftover faces into a
// single List group.
func Stripify(indices []int, cfg Config) []PrimitiveGroup {
	if len(indices) < 3 {
		return nil
	}

	maxIndex := 0
	for _, idx := range indices {
		if idx > maxIndex {
			maxIndex = idx
		}
	}

	logger := cfg.logger()
	topo := BuildTopology(indices, maxIndex, logger)
	if len(topo.Faces) == 0 {
		return nil
	}

	eng := newEngine(topo, cfg)
	allStrips := eng.findAllStrips(topo.Faces)
	bigStrips, leftoverFaces := splitUpStripsAndOptimize(allStrips, topo, eng.cacheSize, cfg.MinStripLength)

	if cfg.ListsOnly {
		return []PrimitiveGroup{buildListsOnlyGroup(bigStrips, leftoverFaces)}
	}

	return buildStripGroups(bigStrips, leftoverFaces, cfg.StitchStrips)
}

// buildListsOnlyGroup flattens every surviving strip's non-degenerate
// faces plus the leftover face list into one List group.
func buildListsOnlyGroup(strips []*StripInfo, leftover []*Face) PrimitiveGroup {
	var out []int
	for _, s := range strips {
		for _, f := range s.Faces {
			if !f.IsDegenerate() {
				out = append(out, f.V0, f.V1, f.V2)
			}
		}
	}
	out = append(out, facesToIndices(leftover)...)
	return PrimitiveGroup{Kind: List, Indices: out}
}

// buildStripGroups emits one Strip group per surviving strip (or one
// combined group when stitch is set) plus a trailing List group for
// whatever didn't make the cut as a strip.
func buildStripGroups(strips []*StripInfo, leftover []*Face, stitch bool) []PrimitiveGroup {
	if len(strips) == 0 {
		if len(leftover) == 0 {
			return nil
		}
		return []PrimitiveGroup{{Kind: List, Indices: facesToIndices(leftover)}}
	}

	flat, numSeparateStrips := createStrips(strips, stitch)

	var groups []PrimitiveGroup
	startingLoc := 0
	for i := 0; i < numSeparateStrips; i++ {
		stripLength := len(flat)
		if !stitch {
			j := startingLoc
			for j < len(flat) && flat[j] != -1 {
				j++
			}
			stripLength = j - startingLoc
		}

		group := PrimitiveGroup{Kind: Strip, Indices: append([]int(nil), flat[startingLoc:startingLoc+stripLength]...)}
		groups = append(groups, group)

		startingLoc += stripLength + 1
	}

	if len(leftover) != 0 {
		groups = append(groups, PrimitiveGroup{Kind: List, Indices: facesToIndices(leftover)})
	}

	return groups
}

// facesToIndices flattens a face list into a flat index slice, three per
// face, in order.
func facesToIndices(faces []*Face) []int {
	out := make([]int, 0, len(faces)*3)
	for _, f := range faces {
		out = append(out, f.V0, f.V1, f.V2)
	}
	return out
}
