package stripify

// Face is an unordered triple of vertex indices in the caller's index
// space. StripID, TestStripID and ExperimentID are mutation scratch space
// used while the engine is deciding which strip owns this face:
//
//   - StripID < 0 means unassigned to any committed strip.
//   - TestStripID is scoped to whichever experiment last touched it.
//   - ExperimentID is the id of that experiment, -1 if none has.
//
// A face is claimed by experiment E iff ExperimentID == E and TestStripID
// equals that experiment's strip id; it is permanently claimed once
// StripID >= 0.
type Face struct {
	V0, V1, V2   int
	StripID      int32
	TestStripID  int32
	ExperimentID int32
}

// NewFace returns an unclaimed face.
func NewFace(v0, v1, v2 int) *Face {
	return &Face{V0: v0, V1: v1, V2: v2, StripID: -1, TestStripID: -1, ExperimentID: -1}
}

// IsDegenerate reports whether the face has two or more identical vertex
// indices.
func (f *Face) IsDegenerate() bool {
	return f.V0 == f.V1 || f.V0 == f.V2 || f.V1 == f.V2
}

func isDegenerateTriangle(v0, v1, v2 int) bool {
	return v0 == v1 || v0 == v2 || v1 == v2
}

// Edge is an undirected pair with at most two incident faces. Edges with
// the same vertex form a singly-linked chain per vertex: NextV0 continues
// the chain for whichever endpoint is stored in V0, NextV1 for V1. An
// edge appears in exactly two such chains (unless V0 == V1, which can't
// happen — degenerate triangles never reach the edge table).
type Edge struct {
	V0, V1         int
	Face0, Face1   *Face
	NextV0, NextV1 *Edge
}

// Topology is the face table and per-vertex edge chain built from one
// call's index array. It owns every Face and Edge it creates for the
// lifetime of that call; nothing escapes to the caller.
type Topology struct {
	Faces     []*Face
	edgeHeads []*Edge
}

// findEdge walks the chain rooted at v0 looking for the edge (v0, v1).
// Matches NvTriStripObjects.cpp::FindEdgeInfo: edges are found by walking
// from whichever vertex is passed first, not by a canonical ordering.
func (t *Topology) findEdge(v0, v1 int) *Edge {
	e := t.edgeHeads[v0]
	for e != nil {
		if e.V0 == v0 {
			if e.V1 == v1 {
				return e
			}
			e = e.NextV0
		} else {
			if e.V0 == v1 {
				return e
			}
			e = e.NextV1
		}
	}
	return nil
}

// findOtherFace returns whichever of an edge's two incident faces isn't
// face, or nil if the edge has no second face, doesn't exist, or (v0,v1)
// describes a degenerate pseudo-edge reached while probing a swap.
func (t *Topology) findOtherFace(v0, v1 int, face *Face) *Face {
	e := t.findEdge(v0, v1)
	if e == nil {
		return nil
	}
	if e.Face0 == face {
		return e.Face1
	}
	return e.Face0
}

func alreadyExists(face *Face, faces []*Face) bool {
	for _, f := range faces {
		if f.V0 == face.V0 && f.V1 == face.V1 && f.V2 == face.V2 {
			return true
		}
	}
	return false
}

// BuildTopology scans the triangle list and builds the face table and
// per-vertex edge chains. Degenerate input triangles are dropped silently.
// An edge already claimed by two faces logs a diagnostic and keeps the
// first two, matching spec.md §4.1/§7's non-manifold handling.
func BuildTopology(indices []int, maxIndex int, logger Logger) *Topology {
	if logger == nil {
		logger = DiscardLogger{}
	}

	numTriangles := len(indices) / 3
	t := &Topology{
		// Reserved, not resized: BuildStripifyInfo in the original does the
		// same, since the eventual face count (after degenerate and
		// duplicate filtering) is at most numTriangles. Each Face is
		// allocated on its own, so the *Face pointers edges hold stay valid
		// however this slice grows.
		Faces:     make([]*Face, 0, numTriangles),
		edgeHeads: make([]*Edge, maxIndex+1),
	}

	idx := 0
	for i := 0; i < numTriangles; i++ {
		v0, v1, v2 := indices[idx], indices[idx+1], indices[idx+2]
		idx += 3

		if isDegenerateTriangle(v0, v1, v2) {
			continue
		}

		face := NewFace(v0, v1, v2)
		mightAlreadyExist := true
		var faceUpdated [3]bool

		edge01 := t.findEdge(v0, v1)
		if edge01 == nil {
			mightAlreadyExist = false
			edge01 = &Edge{V0: v0, V1: v1, Face0: face}
			edge01.NextV0 = t.edgeHeads[v0]
			edge01.NextV1 = t.edgeHeads[v1]
			t.edgeHeads[v0] = edge01
			t.edgeHeads[v1] = edge01
		} else if edge01.Face1 != nil {
			logger.Warnf("BuildTopology: edge (%d,%d) already has two incident faces, ignoring this one for adjacency", v0, v1)
		} else {
			edge01.Face1 = face
			faceUpdated[0] = true
		}

		edge12 := t.findEdge(v1, v2)
		if edge12 == nil {
			mightAlreadyExist = false
			edge12 = &Edge{V0: v1, V1: v2, Face0: face}
			edge12.NextV0 = t.edgeHeads[v1]
			edge12.NextV1 = t.edgeHeads[v2]
			t.edgeHeads[v1] = edge12
			t.edgeHeads[v2] = edge12
		} else if edge12.Face1 != nil {
			logger.Warnf("BuildTopology: edge (%d,%d) already has two incident faces, ignoring this one for adjacency", v1, v2)
		} else {
			edge12.Face1 = face
			faceUpdated[1] = true
		}

		edge20 := t.findEdge(v2, v0)
		if edge20 == nil {
			mightAlreadyExist = false
			edge20 = &Edge{V0: v2, V1: v0, Face0: face}
			edge20.NextV0 = t.edgeHeads[v2]
			edge20.NextV1 = t.edgeHeads[v0]
			t.edgeHeads[v2] = edge20
			t.edgeHeads[v0] = edge20
		} else if edge20.Face1 != nil {
			logger.Warnf("BuildTopology: edge (%d,%d) already has two incident faces, ignoring this one for adjacency", v2, v0)
		} else {
			edge20.Face1 = face
			faceUpdated[2] = true
		}

		// The dedup check only fires when all three edges pre-existed —
		// that's the only way an identical face could already be in the
		// table. Short-circuiting edge creation here would miss it.
		if mightAlreadyExist {
			if !alreadyExists(face, t.Faces) {
				t.Faces = append(t.Faces, face)
			} else {
				if faceUpdated[0] {
					edge01.Face1 = nil
				}
				if faceUpdated[1] {
					edge12.Face1 = nil
				}
				if faceUpdated[2] {
					edge20.Face1 = nil
				}
			}
		} else {
			t.Faces = append(t.Faces, face)
		}
	}

	return t
}

// GetUniqueVertexInB returns the vertex of faceB that isn't also a vertex
// of faceA, or -1 if faceB's vertices are all shared with faceA.
func GetUniqueVertexInB(faceA, faceB *Face) int {
	v0 := faceB.V0
	if v0 != faceA.V0 && v0 != faceA.V1 && v0 != faceA.V2 {
		return v0
	}
	v1 := faceB.V1
	if v1 != faceA.V0 && v1 != faceA.V1 && v1 != faceA.V2 {
		return v1
	}
	v2 := faceB.V2
	if v2 != faceA.V0 && v2 != faceA.V1 && v2 != faceA.V2 {
		return v2
	}
	return -1
}

// GetSharedVertices returns the (at most two) vertices of faceB that are
// also vertices of faceA, -1 in either slot if there's no such vertex.
func GetSharedVertices(faceA, faceB *Face) (v0, v1 int) {
	v0, v1 = -1, -1

	fb0 := faceB.V0
	if fb0 == faceA.V0 || fb0 == faceA.V1 || fb0 == faceA.V2 {
		if v0 == -1 {
			v0 = fb0
		}
	}

	fb1 := faceB.V1
	if fb1 == faceA.V0 || fb1 == faceA.V1 || fb1 == faceA.V2 {
		if v0 == -1 {
			v0 = fb1
		} else {
			v1 = fb1
			return
		}
	}

	fb2 := faceB.V2
	if fb2 == faceA.V0 || fb2 == faceA.V1 || fb2 == faceA.V2 {
		if v0 == -1 {
			v0 = fb2
		} else {
			v1 = fb2
			return
		}
	}

	return
}
