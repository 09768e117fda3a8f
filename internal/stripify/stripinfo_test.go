package stripify

import "testing"

func TestStripInfoBuildQuad(t *testing.T) {
	topo := BuildTopology([]int{0, 1, 2, 2, 1, 3}, 3, DiscardLogger{})

	edge := topo.findEdge(topo.Faces[0].V0, topo.Faces[0].V1)
	strip := NewStripInfo(StartInfo{StartFace: topo.Faces[0], StartEdge: edge, ToV1: true}, 0, 0)

	strip.Build(topo, DiscardLogger{})

	if len(strip.Faces) != 2 {
		t.Fatalf("got %d faces in strip, want 2", len(strip.Faces))
	}
	for _, f := range strip.Faces {
		if !strip.IsInStrip(f) {
			t.Errorf("face %v not marked as in strip", f)
		}
	}
}

func TestStripInfoIsMarkedBlocksCommittedFace(t *testing.T) {
	face := NewFace(0, 1, 2)
	face.StripID = 5

	strip := NewStripInfo(StartInfo{}, 0, -1)
	if !strip.IsMarked(face) {
		t.Error("a face with StripID >= 0 should always be marked")
	}
}

func TestStripInfoIsMarkedScopesExperimentClaims(t *testing.T) {
	face := NewFace(0, 1, 2)
	face.ExperimentID = 3
	face.TestStripID = 7

	sameExperiment := NewStripInfo(StartInfo{}, 7, 3)
	if !sameExperiment.IsMarked(face) {
		t.Error("a face claimed by this experiment's strip id should be marked")
	}

	otherExperiment := NewStripInfo(StartInfo{}, 7, 4)
	if otherExperiment.IsMarked(face) {
		t.Error("a face claimed by a different experiment should not be marked")
	}
}

func TestUniqueRejectsFullyCoveredFace(t *testing.T) {
	existing := []*Face{NewFace(0, 1, 2), NewFace(2, 3, 4)}
	candidate := NewFace(0, 1, 2)

	if Unique(existing, candidate) {
		t.Error("a face whose every vertex already appears should not be unique")
	}
}

func TestUniqueAcceptsFaceWithNewVertex(t *testing.T) {
	existing := []*Face{NewFace(0, 1, 2)}
	candidate := NewFace(2, 1, 5)

	if !Unique(existing, candidate) {
		t.Error("a face with a vertex absent from the existing set should be unique")
	}
}

func TestStripInfoCombineReversesBackward(t *testing.T) {
	strip := NewStripInfo(StartInfo{}, 0, -1)
	forward := []*Face{NewFace(0, 1, 2), NewFace(2, 1, 3)}
	backward := []*Face{NewFace(5, 6, 7), NewFace(8, 9, 10)}

	strip.Combine(forward, backward)

	want := []*Face{backward[1], backward[0], forward[0], forward[1]}
	if len(strip.Faces) != len(want) {
		t.Fatalf("got %d faces, want %d", len(strip.Faces), len(want))
	}
	for i := range want {
		if strip.Faces[i] != want[i] {
			t.Errorf("face %d = %v, want %v", i, strip.Faces[i], want[i])
		}
	}
}
