package stripify

// engine holds the mutable state threaded through one Stripify call: the
// topology being walked, the running strip/experiment id counters, and
// the reset-point cursor that FindGoodResetPoint advances between rounds.
type engine struct {
	topo   *Topology
	logger Logger

	cacheSize      int
	minStripLength int

	meshJump            float32
	firstTimeResetPoint bool

	nextStripID      int32
	nextExperimentID int32
}

func newEngine(topo *Topology, cfg Config) *engine {
	return &engine{
		topo:                topo,
		logger:              cfg.logger(),
		cacheSize:           cfg.effectiveCacheSize(),
		minStripLength:      cfg.MinStripLength,
		firstTimeResetPoint: true,
	}
}

// findStartPoint picks the face with the most boundary edges (edges with
// no second face) as a good place to seed the very first strip — mesh
// edges make natural strip starts because there's nowhere else to go.
// Returns -1 if every face is fully interior.
func (e *engine) findStartPoint(faces []*Face) int {
	bestCtr := -1
	bestIndex := -1

	for i, f := range faces {
		ctr := 0
		if e.topo.findOtherFace(f.V0, f.V1, f) == nil {
			ctr++
		}
		if e.topo.findOtherFace(f.V1, f.V2, f) == nil {
			ctr++
		}
		if e.topo.findOtherFace(f.V2, f.V0, f) == nil {
			ctr++
		}
		if ctr > bestCtr {
			bestCtr = ctr
			bestIndex = i
		}
	}

	if bestCtr == 0 {
		return -1
	}
	return bestIndex
}

// findGoodResetPoint hops to an unclaimed face in a new part of the mesh
// so that separate open spans each get their own well-formed strips
// instead of one span's leftovers dragging down another's. meshJump
// advances the probe point by a tenth each call and wraps just above 1.0
// rather than exactly at it, so the sequence of probe points never
// repeats the same fraction twice in a row.
func (e *engine) findGoodResetPoint(faces []*Face) *Face {
	var result *Face

	numFaces := len(faces)
	var startPoint int
	if e.firstTimeResetPoint {
		startPoint = e.findStartPoint(faces)
		e.firstTimeResetPoint = false
	} else {
		startPoint = int(float32(numFaces-1) * e.meshJump)
	}

	if startPoint == -1 {
		startPoint = int(float32(numFaces-1) * e.meshJump)
	}

	i := startPoint
	for {
		if faces[i].StripID < 0 {
			result = faces[i]
			break
		}
		i++
		if i >= numFaces {
			i = 0
		}
		if i == startPoint {
			break
		}
	}

	e.meshJump += 0.1
	if e.meshJump > 1.0 {
		e.meshJump = 0.05
	}

	return result
}

// findTraversal looks for the next face to continue stripping from once
// strip has run out of room to grow: it walks the edge chain rooted at
// whichever vertex the strip's start edge pointed toward, looking for an
// edge with one face not in strip and the other not yet claimed by this
// experiment or a committed strip. The face found need not share an edge
// with strip; the ToV1 choice below covers both cases.
func (e *engine) findTraversal(strip *StripInfo) (StartInfo, bool) {
	var v int
	if strip.Start.ToV1 {
		v = strip.Start.StartEdge.V1
	} else {
		v = strip.Start.StartEdge.V0
	}

	var untouchedFace *Face
	edgeIter := e.topo.edgeHeads[v]
	for edgeIter != nil {
		face0, face1 := edgeIter.Face0, edgeIter.Face1
		if face0 != nil && !strip.IsInStrip(face0) && face1 != nil && !strip.IsMarked(face1) {
			untouchedFace = face1
			break
		}
		if face1 != nil && !strip.IsInStrip(face1) && face0 != nil && !strip.IsMarked(face0) {
			untouchedFace = face0
			break
		}

		if edgeIter.V0 == v {
			edgeIter = edgeIter.NextV0
		} else {
			edgeIter = edgeIter.NextV1
		}
	}

	start := StartInfo{StartFace: untouchedFace, StartEdge: edgeIter}
	if edgeIter != nil {
		if strip.SharesEdge(start.StartFace, e.topo) {
			start.ToV1 = edgeIter.V0 == v
		} else {
			start.ToV1 = edgeIter.V1 == v
		}
	}
	return start, start.StartFace != nil
}

// commitStrips marks every strip in strips as real (no longer scoped to
// an experiment) and appends them to allStrips.
func commitStrips(allStrips []*StripInfo, strips []*StripInfo) []*StripInfo {
	for _, strip := range strips {
		strip.ExperimentID = -1
		allStrips = append(allStrips, strip)
		for _, f := range strip.Faces {
			strip.MarkTriangle(f)
		}
	}
	return allStrips
}

// avgStripSize is the mean non-degenerate face count across strips — the
// score experiments are ranked on.
func avgStripSize(strips []*StripInfo) float32 {
	var sizeAccum int
	for _, strip := range strips {
		sizeAccum += len(strip.Faces) - strip.NumDegenerates
	}
	return float32(sizeAccum) / float32(len(strips))
}

// numSamples is how many reset points get sampled per round of
// experiments; each reset point spawns six directed-edge trial strips.
const numSamples = 10

// findAllStrips is the top-level search: repeatedly picks a batch of
// reset points, grows six candidate strip chains per point (one per
// directed edge of the seed triangle), keeps whichever chain in the
// batch produced the best average strip length, and discards the rest.
func (e *engine) findAllStrips(faces []*Face) []*StripInfo {
	var allStrips []*StripInfo

	for {
		type experiment struct {
			strips []*StripInfo
		}
		experiments := make([]experiment, 0, numSamples*6)
		resetPoints := make(map[*Face]bool, numSamples)

		done := false
		for i := 0; i < numSamples; i++ {
			nextFace := e.findGoodResetPoint(faces)
			if nextFace == nil {
				done = true
				break
			}
			if resetPoints[nextFace] {
				continue
			}
			resetPoints[nextFace] = true

			seeds := []struct {
				v0, v1 int
				toV1   bool
			}{
				{nextFace.V0, nextFace.V1, true},
				{nextFace.V0, nextFace.V1, false},
				{nextFace.V1, nextFace.V2, true},
				{nextFace.V1, nextFace.V2, false},
				{nextFace.V2, nextFace.V0, true},
				{nextFace.V2, nextFace.V0, false},
			}
			for _, seed := range seeds {
				edge := e.topo.findEdge(seed.v0, seed.v1)
				strip := NewStripInfo(StartInfo{StartFace: nextFace, StartEdge: edge, ToV1: seed.toV1}, e.nextStripID, e.nextExperimentID)
				e.nextStripID++
				e.nextExperimentID++
				experiments = append(experiments, experiment{strips: []*StripInfo{strip}})
			}
		}

		numExperiments := len(experiments)

		for i := 0; i < numExperiments; i++ {
			experiments[i].strips[0].Build(e.topo, e.logger)
			experimentID := experiments[i].strips[0].ExperimentID

			stripIter := experiments[i].strips[0]
			for {
				start, ok := e.findTraversal(stripIter)
				if !ok {
					break
				}
				stripIter = NewStripInfo(start, e.nextStripID, experimentID)
				e.nextStripID++
				stripIter.Build(e.topo, e.logger)
				experiments[i].strips = append(experiments[i].strips, stripIter)
			}
		}

		bestIndex := 0
		bestValue := float32(0)
		for i := 0; i < numExperiments; i++ {
			const avgStripSizeWeight = 1.0
			const numStripsWeight = 0.0
			value := avgStripSize(experiments[i].strips)*avgStripSizeWeight + float32(len(experiments[i].strips))*numStripsWeight
			if value > bestValue {
				bestValue = value
				bestIndex = i
			}
		}

		if numExperiments > 0 {
			allStrips = commitStrips(allStrips, experiments[bestIndex].strips)
		}

		if done {
			break
		}
	}

	return allStrips
}
