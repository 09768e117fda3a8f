// Package objload reads Wavefront OBJ geometry: vertex positions and
// triangle faces only, enough to hand a user-supplied mesh to the
// stripifier. Normals, texture coordinates, materials, and groups are
// not parsed.
package objload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	gmath "github.com/Faultbox/tristrip/pkg/math"
)

// Errors returned while parsing an OBJ file.
var (
	ErrNoVertices = errors.New("objload: no vertices found")
	ErrNoFaces    = errors.New("objload: no faces found")
)

// Mesh holds the vertex positions and triangle indices loaded from an
// OBJ file. Indices are zero-based, already resolved from OBJ's
// one-based face references.
type Mesh struct {
	Positions []gmath.Vec3
	Indices   []int
}

// Load reads an OBJ file from path.
func Load(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objload: opening %s: %w", path, err)
	}
	defer f.Close()

	mesh, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("objload: parsing %s: %w", path, err)
	}
	return mesh, nil
}

// Decode parses OBJ geometry from r. Only "v" and "f" lines are
// interpreted; faces with more than three vertices are fan-triangulated
// around their first vertex.
func Decode(r io.Reader) (*Mesh, error) {
	mesh := &Mesh{}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			pos, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Positions = append(mesh.Positions, pos)
		case "f":
			faceIdx, err := parseFace(fields[1:], len(mesh.Positions))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			mesh.Indices = append(mesh.Indices, faceIdx...)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}

	if len(mesh.Positions) == 0 {
		return nil, ErrNoVertices
	}
	if len(mesh.Indices) == 0 {
		return nil, ErrNoFaces
	}
	return mesh, nil
}

func parseVertex(fields []string) (gmath.Vec3, error) {
	if len(fields) < 3 {
		return gmath.Vec3{}, fmt.Errorf("vertex needs 3 components, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 32)
	if err != nil {
		return gmath.Vec3{}, fmt.Errorf("parsing x: %w", err)
	}
	y, err := strconv.ParseFloat(fields[1], 32)
	if err != nil {
		return gmath.Vec3{}, fmt.Errorf("parsing y: %w", err)
	}
	z, err := strconv.ParseFloat(fields[2], 32)
	if err != nil {
		return gmath.Vec3{}, fmt.Errorf("parsing z: %w", err)
	}
	return gmath.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}, nil
}

// parseFace resolves a face's vertex references to zero-based indices,
// fan-triangulating around the first vertex when more than three are
// given. numVerts bounds-checks negative (relative-to-end) references.
func parseFace(fields []string, numVerts int) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 vertices, got %d", len(fields))
	}

	corners := make([]int, len(fields))
	for i, field := range fields {
		ref := strings.SplitN(field, "/", 2)[0]
		v, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("parsing face vertex %q: %w", field, err)
		}

		var idx int
		switch {
		case v > 0:
			idx = v - 1
		case v < 0:
			idx = numVerts + v
		default:
			return nil, fmt.Errorf("face vertex index cannot be 0")
		}
		if idx < 0 || idx >= numVerts {
			return nil, fmt.Errorf("face vertex %d out of range for %d vertices", v, numVerts)
		}
		corners[i] = idx
	}

	indices := make([]int, 0, (len(corners)-2)*3)
	for i := 1; i+1 < len(corners); i++ {
		indices = append(indices, corners[0], corners[i], corners[i+1])
	}
	return indices, nil
}
