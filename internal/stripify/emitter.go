package stripify

// nextIsCW reports whether the face about to be emitted at position
// numIndices in the output index stream should wind clockwise — strip
// triangles alternate winding by construction, starting from whatever
// the first triangle's winding was.
func nextIsCW(numIndices int) bool {
	return numIndices%2 == 0
}

// isCW reports whether face winds clockwise when walked starting at the
// edge v0->v1.
func isCW(face *Face, v0, v1 int) bool {
	if face.V0 == v0 {
		return face.V1 == v1
	}
	if face.V1 == v0 {
		return face.V2 == v1
	}
	return face.V0 == v1
}

// createStrips flattens strips into one index stream. When stitch is
// true, strips are bridged together with degenerate double-taps into a
// single continuous strip; otherwise each strip is terminated with a -1
// sentinel and numSeparateStrips counts how many there were.
func createStrips(strips []*StripInfo, stitch bool) (indices []int, numSeparateStrips int) {
	accountForNegatives := 0

	var lastFace Face

	for i, strip := range strips {
		faces := strip.Faces
		n := len(faces)

		v0, v1, v2 := canonicalFirstTriangle(strip, true)

		if i == 0 || !stitch {
			if !isCW(faces[0], v0, v1) {
				indices = append(indices, v0)
			}
		} else {
			indices = append(indices, v0)
			if nextIsCW(len(indices)-accountForNegatives) != isCW(faces[0], v0, v1) {
				indices = append(indices, v0)
			}
		}

		indices = append(indices, v0, v1, v2)
		lastFace = Face{V0: v0, V1: v1, V2: v2}

		for j := 1; j < n; j++ {
			unique := GetUniqueVertexInB(&lastFace, faces[j])
			if unique != -1 {
				indices = append(indices, unique)
				lastFace = Face{V0: lastFace.V1, V1: lastFace.V2, V2: unique}
			} else {
				indices = append(indices, faces[j].V2)
				lastFace = Face{V0: faces[j].V0, V1: faces[j].V1, V2: faces[j].V2}
			}
		}

		if stitch {
			if i != len(strips)-1 {
				indices = append(indices, lastFace.V2)
			}
		} else {
			indices = append(indices, -1)
			accountForNegatives++
			numSeparateStrips++
		}

		lastFace = Face{V0: lastFace.V1, V1: lastFace.V2, V2: lastFace.V2}
	}

	if stitch {
		numSeparateStrips = 1
	}

	return indices, numSeparateStrips
}
