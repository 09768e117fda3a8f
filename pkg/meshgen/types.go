// Package meshgen builds procedural meshes for feeding into the
// stripifier. It owns the vertex/index buffers; stripify only ever sees
// the flat index slice.
package meshgen

import gmath "github.com/Faultbox/tristrip/pkg/math"

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position gmath.Vec3
	Normal   gmath.Vec3
}

// Bounds holds the axis-aligned bounding box of a mesh.
type Bounds struct {
	Min gmath.Vec3
	Max gmath.Vec3
}

// Mesh holds a vertex buffer and a flat triangle index buffer, ready to be
// handed to the stripifier or remapped through RemapIndices.
type Mesh struct {
	Vertices []Vertex
	Indices  []int
	Bounds   Bounds
}

// NumTriangles returns the number of triangles described by Indices.
func (m *Mesh) NumTriangles() int {
	return len(m.Indices) / 3
}

func updateBounds(b *Bounds, p gmath.Vec3) {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
}
