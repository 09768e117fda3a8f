package meshgen

import gmath "github.com/Faultbox/tristrip/pkg/math"

// Grid builds a regular triangulated XZ-plane grid of width*depth cells,
// two triangles per cell, consistent CCW winding as seen from +Y.
// Degenerate cells (cellSize == 0 collapses every triangle to a point)
// are skipped the way a loaded mesh's degenerate faces are skipped.
func Grid(width, depth int, cellSize float32) *Mesh {
	if width <= 0 || depth <= 0 {
		return nil
	}

	cols := width + 1
	rows := depth + 1

	vertices := make([]Vertex, 0, cols*rows)
	bounds := Bounds{
		Min: gmath.Vec3{X: 1e10, Y: 1e10, Z: 1e10},
		Max: gmath.Vec3{X: -1e10, Y: -1e10, Z: -1e10},
	}

	for z := 0; z < rows; z++ {
		for x := 0; x < cols; x++ {
			pos := gmath.Vec3{X: float32(x) * cellSize, Y: 0, Z: float32(z) * cellSize}
			updateBounds(&bounds, pos)
			vertices = append(vertices, Vertex{
				Position: pos,
				Normal:   gmath.Vec3{X: 0, Y: 1, Z: 0},
			})
		}
	}

	indices := make([]int, 0, width*depth*6)
	for z := 0; z < depth; z++ {
		for x := 0; x < width; x++ {
			v00 := z*cols + x
			v10 := z*cols + x + 1
			v01 := (z+1)*cols + x
			v11 := (z+1)*cols + x + 1

			if !addTriangle(&indices, vertices, v00, v11, v10) {
				continue
			}
			addTriangle(&indices, vertices, v00, v01, v11)
		}
	}

	if len(indices) == 0 {
		return nil
	}

	smoothNormals(vertices, indices)

	return &Mesh{
		Vertices: vertices,
		Indices:  indices,
		Bounds:   bounds,
	}
}

// addTriangle appends v0,v1,v2 unless the face normal degenerates to zero
// length, mirroring the teacher's face-normal degeneracy check.
func addTriangle(indices *[]int, vertices []Vertex, v0, v1, v2 int) bool {
	p0 := vertices[v0].Position
	p1 := vertices[v1].Position
	p2 := vertices[v2].Position

	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	if normal.Length() < 1e-5 {
		return false
	}

	*indices = append(*indices, v0, v1, v2)
	return true
}

// smoothNormals gives each vertex the normal of the last face that uses
// it, then averages those normals across vertices whose quantized
// positions coincide, following the teacher's quantized-position grouping.
func smoothNormals(vertices []Vertex, indices []int) {
	for i := 0; i+2 < len(indices); i += 3 {
		v0, v1, v2 := indices[i], indices[i+1], indices[i+2]
		p0, p1, p2 := vertices[v0].Position, vertices[v1].Position, vertices[v2].Position
		normal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
		vertices[v0].Normal = normal
		vertices[v1].Normal = normal
		vertices[v2].Normal = normal
	}

	const epsilon float32 = 0.001
	posMap := make(map[[3]int32][]int)
	for i := range vertices {
		key := [3]int32{
			int32(vertices[i].Position.X / epsilon),
			int32(vertices[i].Position.Y / epsilon),
			int32(vertices[i].Position.Z / epsilon),
		}
		posMap[key] = append(posMap[key], i)
	}

	for _, idxs := range posMap {
		if len(idxs) < 2 {
			continue
		}
		var sum gmath.Vec3
		for _, idx := range idxs {
			sum = sum.Add(vertices[idx].Normal)
		}
		avg := sum.Normalize()
		for _, idx := range idxs {
			vertices[idx].Normal = avg
		}
	}
}
