package stripify

// updateCacheFace feeds face's three vertices into vcache, skipping
// whichever ones are already present.
func updateCacheFace(vcache *VertexCacheSim, face *Face) {
	if !vcache.Contains(face.V0) {
		vcache.Insert(face.V0)
	}
	if !vcache.Contains(face.V1) {
		vcache.Insert(face.V1)
	}
	if !vcache.Contains(face.V2) {
		vcache.Insert(face.V2)
	}
}

// updateCacheStrip feeds every face of strip into vcache in order.
func updateCacheStrip(vcache *VertexCacheSim, strip *StripInfo) {
	for _, f := range strip.Faces {
		updateCacheFace(vcache, f)
	}
}

// calcNumHitsFace counts how many of face's three vertices are already
// present in vcache.
func calcNumHitsFace(vcache *VertexCacheSim, face *Face) int {
	n := 0
	if vcache.Contains(face.V0) {
		n++
	}
	if vcache.Contains(face.V1) {
		n++
	}
	if vcache.Contains(face.V2) {
		n++
	}
	return n
}

// calcNumHitsStrip returns the average number of cached vertices per
// face across strip, used to rank candidate next-strips during
// cache-aware reordering.
func calcNumHitsStrip(vcache *VertexCacheSim, strip *StripInfo) float32 {
	var numHits, numFaces int
	for _, f := range strip.Faces {
		if vcache.Contains(f.V0) {
			numHits++
		}
		if vcache.Contains(f.V1) {
			numHits++
		}
		if vcache.Contains(f.V2) {
			numHits++
		}
		numFaces++
	}
	if numFaces == 0 {
		return 0
	}
	return float32(numHits) / float32(numFaces)
}

// numNeighbors returns how many of face's three edges have a second
// incident face.
func numNeighbors(topo *Topology, face *Face) int {
	n := 0
	if topo.findOtherFace(face.V0, face.V1, face) != nil {
		n++
	}
	if topo.findOtherFace(face.V1, face.V2, face) != nil {
		n++
	}
	if topo.findOtherFace(face.V2, face.V0, face) != nil {
		n++
	}
	return n
}

// removeSmallStrips pulls strips shorter than minStripLength out of
// strips, greedily packs their faces back into a flat face list ordered
// by cache-hit potential, and returns both the surviving strips and that
// leftover face list.
func removeSmallStrips(strips []*StripInfo, cacheSize, minStripLength int) (bigStrips []*StripInfo, faceList []*Face) {
	var leftover []*Face

	for _, s := range strips {
		if len(s.Faces) < minStripLength {
			leftover = append(leftover, s.Faces...)
		} else {
			bigStrips = append(bigStrips, s)
		}
	}

	if len(leftover) == 0 {
		return bigStrips, nil
	}

	visited := make([]bool, len(leftover))
	vcache := NewVertexCacheSim(cacheSize)

	for {
		bestNumHits := -1
		bestIndex := 0

		for i, f := range leftover {
			if visited[i] {
				continue
			}
			hits := calcNumHitsFace(vcache, f)
			if hits > bestNumHits {
				bestNumHits = hits
				bestIndex = i
			}
		}

		if bestNumHits == -1 {
			break
		}

		visited[bestIndex] = true
		updateCacheFace(vcache, leftover[bestIndex])
		faceList = append(faceList, leftover[bestIndex])
	}

	return bigStrips, faceList
}

// canonicalFirstTriangle reorders the first three indices of strip's
// first face so that its vertex not shared with the second face comes
// first and, when there's a third face, the vertex shared with it comes
// last.
// checkDegenerateDetour controls whether the third-face reorder special
// cases a degenerate second face the way the emitter's canonicalization
// does — the splitter's tie-break canonicalization omits that check, and
// that asymmetry is intentionally preserved rather than unified, since
// the two call sites come from genuinely different code paths in the
// original SDK and nothing downstream depends on them agreeing.
func canonicalFirstTriangle(strip *StripInfo, checkDegenerateDetour bool) (v0, v1, v2 int) {
	faces := strip.Faces
	v0, v1, v2 = faces[0].V0, faces[0].V1, faces[0].V2

	if len(faces) <= 1 {
		return
	}

	first := &Face{V0: v0, V1: v1, V2: v2}
	unique := GetUniqueVertexInB(faces[1], first)
	switch unique {
	case v1:
		v0, v1 = v1, v0
	case v2:
		v0, v2 = v2, v0
	}

	if len(faces) <= 2 {
		return
	}

	if checkDegenerateDetour && faces[1].IsDegenerate() {
		pivot := faces[1].V1
		if v1 == pivot {
			v1, v2 = v2, v1
		}
		return
	}

	probe := &Face{V0: v0, V1: v1, V2: v2}
	shared0, shared1 := GetSharedVertices(faces[2], probe)
	if shared0 == v1 && shared1 == -1 {
		v1, v2 = v2, v1
	}
	return
}

// splitUpStripsAndOptimize breaks every input strip into pieces of the
// simulated cache size in real faces (a remainder of one to three faces
// is merged into the strip's last full piece), folds undersized pieces back
// into a flat face list, and reorders the surviving pieces to maximize
// vertex-cache reuse across strip boundaries.
func splitUpStripsAndOptimize(strips []*StripInfo, topo *Topology, cacheSize, minStripLength int) (outStrips []*StripInfo, outFaces []*Face) {
	threshold := cacheSize
	var tempStrips []*StripInfo

	for _, as := range strips {
		actualStripSize := 0
		for _, f := range as.Faces {
			if !f.IsDegenerate() {
				actualStripSize++
			}
		}

		if actualStripSize <= threshold {
			current := NewStripInfo(StartInfo{}, 0, -1)
			current.Faces = append(current.Faces, as.Faces...)
			tempStrips = append(tempStrips, current)
			continue
		}

		numTimes := actualStripSize / threshold
		numLeftover := actualStripSize % threshold

		degenerateCount := 0
		faceCtr := 0
		j := 0
		for ; j < numTimes; j++ {
			current := NewStripInfo(StartInfo{}, 0, -1)

			faceCtr = j*threshold + degenerateCount
			firstTime := true
			for faceCtr < threshold+(j*threshold)+degenerateCount {
				if as.Faces[faceCtr].IsDegenerate() {
					degenerateCount++

					if ((faceCtr+1) != threshold+(j*threshold)+degenerateCount ||
						(j == numTimes-1 && numLeftover < 4 && numLeftover > 0)) &&
						!firstTime {
						current.Faces = append(current.Faces, as.Faces[faceCtr])
						faceCtr++
					} else {
						faceCtr++
					}
				} else {
					current.Faces = append(current.Faces, as.Faces[faceCtr])
					faceCtr++
					firstTime = false
				}
			}

			if j == numTimes-1 {
				if numLeftover < 4 && numLeftover > 0 {
					ctr := 0
					for ctr < numLeftover {
						if !as.Faces[faceCtr].IsDegenerate() {
							current.Faces = append(current.Faces, as.Faces[faceCtr])
							faceCtr++
							ctr++
						} else {
							current.Faces = append(current.Faces, as.Faces[faceCtr])
							faceCtr++
							degenerateCount++
						}
					}
					numLeftover = 0
				}
			}

			tempStrips = append(tempStrips, current)
		}

		leftOff := j*threshold + degenerateCount

		if numLeftover != 0 {
			current := NewStripInfo(StartInfo{}, 0, -1)

			ctr := 0
			firstTime := true
			for ctr < numLeftover {
				if !as.Faces[leftOff].IsDegenerate() {
					ctr++
					firstTime = false
					current.Faces = append(current.Faces, as.Faces[leftOff])
					leftOff++
				} else if !firstTime {
					current.Faces = append(current.Faces, as.Faces[leftOff])
					leftOff++
				} else {
					leftOff++
				}
			}

			tempStrips = append(tempStrips, current)
		}
	}

	bigStrips, faceList := removeSmallStrips(tempStrips, cacheSize, minStripLength)
	outFaces = faceList

	if len(bigStrips) == 0 {
		return nil, outFaces
	}

	vcache := NewVertexCacheSim(cacheSize)

	firstIndex := 0
	minCost := float32(10000.0)
	for j, ts := range bigStrips {
		total := 0
		for _, f := range ts.Faces {
			total += numNeighbors(topo, f)
		}
		currCost := float32(total) / float32(len(ts.Faces))
		if currCost < minCost {
			minCost = currCost
			firstIndex = j
		}
	}

	updateCacheStrip(vcache, bigStrips[firstIndex])
	outStrips = append(outStrips, bigStrips[firstIndex])
	bigStrips[firstIndex].Visited = true

	wantsCW := len(bigStrips[firstIndex].Faces)%2 == 0

	for {
		bestNumHits := float32(-1.0)
		bestIndex := 0

		for i, ts := range bigStrips {
			if ts.Visited {
				continue
			}

			hits := calcNumHitsStrip(vcache, ts)
			if hits > bestNumHits {
				bestNumHits = hits
				bestIndex = i
			} else if hits >= bestNumHits {
				v0, v1, _ := canonicalFirstTriangle(ts, false)
				if wantsCW == isCW(ts.Faces[0], v0, v1) {
					bestIndex = i
				}
			}
		}

		if bestNumHits == -1.0 {
			break
		}

		bigStrips[bestIndex].Visited = true
		updateCacheStrip(vcache, bigStrips[bestIndex])
		outStrips = append(outStrips, bigStrips[bestIndex])
		if len(bigStrips[bestIndex].Faces)%2 != 0 {
			wantsCW = !wantsCW
		}
	}

	return outStrips, outFaces
}
