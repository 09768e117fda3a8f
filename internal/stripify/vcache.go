package stripify

// VertexCacheSim models a fixed-size FIFO vertex cache, the same shape as
// the post-transform cache on the GPUs NvTriStrip was tuned against. It's
// a thin wrapper over a fixed array of slots rather than an actual LRU: entries
// fall out the back in insertion order, which is what the hardware does
// too.
type VertexCacheSim struct {
	entries []int
	size    int
}

// NewVertexCacheSim returns a cache with the given number of slots, all
// empty.
func NewVertexCacheSim(size int) *VertexCacheSim {
	v := &VertexCacheSim{
		entries: make([]int, size),
		size:    size,
	}
	v.Clear()
	return v
}

// Contains reports whether vertex is currently cached.
func (v *VertexCacheSim) Contains(vertex int) bool {
	for _, e := range v.entries {
		if e == vertex {
			return true
		}
	}
	return false
}

// At returns the vertex at slot i, or -1 if empty.
func (v *VertexCacheSim) At(i int) int {
	return v.entries[i]
}

// Set places vertex directly into slot i, bypassing the FIFO insert.
func (v *VertexCacheSim) Set(i, vertex int) {
	v.entries[i] = vertex
}

// Insert pushes vertex to the front of the cache, shifting every other
// entry back by one and returning whatever fell out of the last slot.
// Callers are expected to check Contains first, same as the original's
// call sites — Insert itself does not dedupe.
func (v *VertexCacheSim) Insert(vertex int) int {
	removed := v.entries[v.size-1]
	copy(v.entries[1:], v.entries[:v.size-1])
	v.entries[0] = vertex
	return removed
}

// Clear resets every slot to empty (-1).
func (v *VertexCacheSim) Clear() {
	for i := range v.entries {
		v.entries[i] = -1
	}
}

// Copy returns an independent copy of v, used when an experiment needs to
// fork the cache state without disturbing the one the caller is still
// using.
func (v *VertexCacheSim) Copy() *VertexCacheSim {
	c := &VertexCacheSim{
		entries: make([]int, v.size),
		size:    v.size,
	}
	copy(c.entries, v.entries)
	return c
}

// CopyFrom overwrites v's contents with other's. Both must have the same
// size.
func (v *VertexCacheSim) CopyFrom(other *VertexCacheSim) {
	copy(v.entries, other.entries)
}

// Size returns the number of slots.
func (v *VertexCacheSim) Size() int {
	return v.size
}
