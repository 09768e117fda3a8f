package stripify

import "testing"

func TestBuildTopologyDropsDegenerateTriangle(t *testing.T) {
	topo := BuildTopology([]int{0, 1, 2, 3, 3, 4}, 4, DiscardLogger{})

	if len(topo.Faces) != 1 {
		t.Fatalf("got %d faces, want 1 (degenerate triangle should be dropped)", len(topo.Faces))
	}
}

func TestBuildTopologyDedupesIdenticalFace(t *testing.T) {
	topo := BuildTopology([]int{0, 1, 2, 0, 1, 2}, 2, DiscardLogger{})

	if len(topo.Faces) != 1 {
		t.Fatalf("got %d faces, want 1 (identical triangle should be deduped)", len(topo.Faces))
	}

	edge := topo.findEdge(0, 1)
	if edge == nil {
		t.Fatal("edge (0,1) not found")
	}
	if edge.Face1 != nil {
		t.Errorf("edge (0,1) has Face1 set after dedup undo, want nil")
	}
}

func TestBuildTopologyNonManifoldEdgeWarns(t *testing.T) {
	var warned bool
	logger := &recordingLogger{onWarn: func() { warned = true }}

	// Three triangles sharing the same (0,1) edge: the third can't get a
	// second incident face slot and should trigger a diagnostic.
	BuildTopology([]int{0, 1, 2, 0, 1, 3, 0, 1, 4}, 4, logger)

	if !warned {
		t.Error("expected a diagnostic for a non-manifold edge, got none")
	}
}

func TestFindOtherFace(t *testing.T) {
	topo := BuildTopology([]int{0, 1, 2, 2, 1, 3}, 3, DiscardLogger{})

	faceA := topo.Faces[0]
	faceB := topo.Faces[1]

	other := topo.findOtherFace(faceA.V1, faceA.V2, faceA)
	if other != faceB {
		t.Errorf("findOtherFace across shared edge returned %v, want %v", other, faceB)
	}
}

func TestGetUniqueVertexInB(t *testing.T) {
	a := NewFace(0, 1, 2)
	b := NewFace(2, 1, 3)

	got := GetUniqueVertexInB(a, b)
	if got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestGetSharedVertices(t *testing.T) {
	a := NewFace(0, 1, 2)
	b := NewFace(2, 1, 3)

	v0, v1 := GetSharedVertices(a, b)
	if v0 != 2 || v1 != 1 {
		t.Errorf("got (%d,%d), want (2,1)", v0, v1)
	}
}

type recordingLogger struct {
	onWarn func()
}

func (r *recordingLogger) Warnf(string, ...any) {
	if r.onWarn != nil {
		r.onWarn()
	}
}
