package stripify

// StartInfo names the face, edge and traversal direction an experiment or
// committed strip begins from. ToV1 says which endpoint of StartEdge the
// strip walks toward first: true means v0->v1, false means v1->v0.
type StartInfo struct {
	StartFace *Face
	StartEdge *Edge
	ToV1      bool
}

// StripInfo is one candidate or committed strip: a start point, the faces
// it ends up owning in walk order, and the synthesized degenerate faces
// created to bridge dead ends during the walk. ExperimentID < 0 means
// this is a committed strip; Faces are marked against Face.StripID
// rather than a per-experiment field.
type StripInfo struct {
	Start        StartInfo
	Faces        []*Face
	ID           int32
	ExperimentID int32
	Visited      bool

	NumDegenerates int
	Degenerates    []*Face
}

// NewStripInfo returns an unbuilt strip with the given start and id.
// experimentID < 0 marks this as a real, committed strip.
func NewStripInfo(start StartInfo, id int32, experimentID int32) *StripInfo {
	return &StripInfo{Start: start, ID: id, ExperimentID: experimentID}
}

// IsExperiment reports whether this strip is a trial run rather than a
// committed one.
func (s *StripInfo) IsExperiment() bool {
	return s.ExperimentID >= 0
}

// IsInStrip reports whether face currently belongs to this strip, real or
// experimental.
func (s *StripInfo) IsInStrip(face *Face) bool {
	if face == nil {
		return false
	}
	if s.IsExperiment() {
		return face.TestStripID == s.ID
	}
	return face.StripID == s.ID
}

// IsMarked reports whether face is unavailable to this strip: already
// owned by a committed strip, or claimed by this same experiment.
func (s *StripInfo) IsMarked(face *Face) bool {
	return face.StripID >= 0 || (s.IsExperiment() && face.ExperimentID == s.ExperimentID)
}

// MarkTriangle claims face for this strip. Callers must check IsMarked
// first; marking an already-marked face is a programming error in the
// caller, not a runtime condition to defend against.
func (s *StripInfo) MarkTriangle(face *Face) {
	if s.IsExperiment() {
		face.ExperimentID = s.ExperimentID
		face.TestStripID = s.ID
	} else {
		face.ExperimentID = -1
		face.StripID = s.ID
	}
}

// Unique reports whether face has at least one vertex absent from every
// face in faces — i.e. face wouldn't just be retracing ground the strip
// has already covered.
func Unique(faces []*Face, face *Face) bool {
	var v0seen, v1seen, v2seen bool
	for _, f := range faces {
		if !v0seen && (f.V0 == face.V0 || f.V1 == face.V0 || f.V2 == face.V0) {
			v0seen = true
		}
		if !v1seen && (f.V0 == face.V1 || f.V1 == face.V1 || f.V2 == face.V1) {
			v1seen = true
		}
		if !v2seen && (f.V0 == face.V2 || f.V1 == face.V2 || f.V2 == face.V2) {
			v2seen = true
		}
		if v0seen && v1seen && v2seen {
			return false
		}
	}
	return true
}

// getNextIndex returns whichever vertex of face isn't one of the last two
// indices pushed into scratch — the vertex that continues the strip. A
// face that doesn't share both of those vertices means a duplicate
// triangle upstream has derailed the walk; logger gets a diagnostic but
// the walk presses on with whatever vertex it can find.
func getNextIndex(scratch []int, face *Face, logger Logger) int {
	n := len(scratch)
	v0, v1 := scratch[n-2], scratch[n-1]

	fv0, fv1, fv2 := face.V0, face.V1, face.V2

	if fv0 != v0 && fv0 != v1 {
		if (fv1 != v0 && fv1 != v1) || (fv2 != v0 && fv2 != v1) {
			logger.Warnf("getNextIndex: triangle (%d,%d,%d) doesn't have both of the expected vertices (%d,%d); a duplicate triangle may have derailed the walk", fv0, fv1, fv2, v0, v1)
		}
		return fv0
	}
	if fv1 != v0 && fv1 != v1 {
		if (fv0 != v0 && fv0 != v1) || (fv2 != v0 && fv2 != v1) {
			logger.Warnf("getNextIndex: triangle (%d,%d,%d) doesn't have both of the expected vertices (%d,%d); a duplicate triangle may have derailed the walk", fv0, fv1, fv2, v0, v1)
		}
		return fv1
	}
	if fv2 != v0 && fv2 != v1 {
		if (fv0 != v0 && fv0 != v1) || (fv1 != v0 && fv1 != v1) {
			logger.Warnf("getNextIndex: triangle (%d,%d,%d) doesn't have both of the expected vertices (%d,%d); a duplicate triangle may have derailed the walk", fv0, fv1, fv2, v0, v1)
		}
		return fv2
	}

	// every vertex matched one of v0/v1: fall back to whichever vertex is
	// itself duplicated within the face.
	switch {
	case fv0 == fv1 || fv0 == fv2:
		return fv0
	case fv1 == fv0 || fv1 == fv2:
		return fv1
	case fv2 == fv0 || fv2 == fv1:
		return fv2
	default:
		return -1
	}
}

// Build walks outward from s.Start in both directions along the mesh,
// greedily extending the strip while the next face is free and sharing an
// edge, inserting a synthesized degenerate triangle to bridge a dead end
// when swapping the traversal direction would let the walk continue.
func (s *StripInfo) Build(topo *Topology, logger Logger) {
	scratch := make([]int, 0, 16)

	var forward, backward []*Face
	forward = append(forward, s.Start.StartFace)
	s.MarkTriangle(s.Start.StartFace)

	var v0, v1 int
	if s.Start.ToV1 {
		v0, v1 = s.Start.StartEdge.V0, s.Start.StartEdge.V1
	} else {
		v0, v1 = s.Start.StartEdge.V1, s.Start.StartEdge.V0
	}

	scratch = append(scratch, v0, v1)
	v2 := getNextIndex(scratch, s.Start.StartFace, logger)
	scratch = append(scratch, v2)

	nv0, nv1 := v1, v2
	nextFace := topo.findOtherFace(nv0, nv1, s.Start.StartFace)
	for nextFace != nil && !s.IsMarked(nextFace) {
		testnv0 := nv1
		testnv1 := getNextIndex(scratch, nextFace, logger)

		nextNextFace := topo.findOtherFace(testnv0, testnv1, nextFace)
		if nextNextFace == nil || s.IsMarked(nextNextFace) {
			testNextFace := topo.findOtherFace(nv0, testnv1, nextFace)
			if testNextFace != nil && !s.IsMarked(testNextFace) {
				tempFace := NewFace(nv0, nv1, nv0)
				s.Degenerates = append(s.Degenerates, tempFace)

				forward = append(forward, tempFace)
				s.MarkTriangle(tempFace)

				scratch = append(scratch, nv0)
				testnv0 = nv0

				s.NumDegenerates++
			}
		}

		// Preserved bit-for-bit: nextFace is appended here unconditionally,
		// even along the branch that just pushed tempFace onto forward —
		// nextFace ends up immediately after its own bridging degenerate
		// rather than before it.
		forward = append(forward, nextFace)
		s.MarkTriangle(nextFace)

		scratch = append(scratch, testnv1)

		nv0, nv1 = testnv0, testnv1
		nextFace = topo.findOtherFace(nv0, nv1, nextFace)
	}

	tempAllFaces := make([]*Face, len(forward))
	copy(tempAllFaces, forward)

	scratch = scratch[:0]
	scratch = append(scratch, v2, v1, v0)
	nv0, nv1 = v1, v0
	nextFace = topo.findOtherFace(nv0, nv1, s.Start.StartFace)
	for nextFace != nil && !s.IsMarked(nextFace) {
		if !Unique(tempAllFaces, nextFace) {
			break
		}

		testnv0 := nv1
		testnv1 := getNextIndex(scratch, nextFace, logger)

		nextNextFace := topo.findOtherFace(testnv0, testnv1, nextFace)
		if nextNextFace == nil || s.IsMarked(nextNextFace) {
			testNextFace := topo.findOtherFace(nv0, testnv1, nextFace)
			if testNextFace != nil && !s.IsMarked(testNextFace) {
				tempFace := NewFace(nv0, nv1, nv0)
				s.Degenerates = append(s.Degenerates, tempFace)

				backward = append(backward, tempFace)
				s.MarkTriangle(tempFace)
				scratch = append(scratch, nv0)
				testnv0 = nv0

				s.NumDegenerates++
			}
		}

		backward = append(backward, nextFace)
		tempAllFaces = append(tempAllFaces, nextFace)
		s.MarkTriangle(nextFace)

		scratch = append(scratch, testnv1)

		nv0, nv1 = testnv0, testnv1
		nextFace = topo.findOtherFace(nv0, nv1, nextFace)
	}

	s.Combine(forward, backward)
}

// Combine appends backward in reverse order followed by forward in
// order, producing the strip's final walk order.
func (s *StripInfo) Combine(forward, backward []*Face) {
	for i := len(backward) - 1; i >= 0; i-- {
		s.Faces = append(s.Faces, backward[i])
	}
	s.Faces = append(s.Faces, forward...)
}

// SharesEdge reports whether face shares an edge with any face currently
// in this strip, checked across all three of face's edges.
func (s *StripInfo) SharesEdge(face *Face, topo *Topology) bool {
	e := topo.findEdge(face.V0, face.V1)
	if e != nil && (s.IsInStrip(e.Face0) || s.IsInStrip(e.Face1)) {
		return true
	}
	e = topo.findEdge(face.V1, face.V2)
	if e != nil && (s.IsInStrip(e.Face0) || s.IsInStrip(e.Face1)) {
		return true
	}
	e = topo.findEdge(face.V2, face.V0)
	if e != nil && (s.IsInStrip(e.Face0) || s.IsInStrip(e.Face1)) {
		return true
	}
	return false
}
