package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/tristrip/internal/config"
	"github.com/Faultbox/tristrip/internal/stripify"
	gmath "github.com/Faultbox/tristrip/pkg/math"
	"github.com/Faultbox/tristrip/pkg/objload"
)

func cmdObj(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("obj", flag.ExitOnError)
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: stripify obj <file.obj> [out.obj]")
		os.Exit(1)
	}

	mesh, err := objload.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	groups := stripify.Stripify(mesh.Indices, stripifyConfig(cfg))

	fmt.Printf("OBJ: %s, %d vertices, %d triangles\n", fs.Arg(0), len(mesh.Positions), len(mesh.Indices)/3)
	printReport(groups, cfg.Stripifier.CacheSize)

	if fs.NArg() < 2 {
		return
	}

	remapped, newPositions := remapMesh(groups, mesh.Positions)
	out := &objload.Mesh{Positions: newPositions, Indices: flatten(remapped)}
	if err := objload.Save(fs.Arg(1), out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", fs.Arg(1))
}

// remapMesh renumbers indices into first-touch draw order the way
// stripify.RemapIndices does, and reorders positions to match so a
// written-out OBJ stays self-consistent.
func remapMesh(groups []stripify.PrimitiveGroup, positions []gmath.Vec3) ([]stripify.PrimitiveGroup, []gmath.Vec3) {
	oldToNew := make([]int, len(positions))
	for i := range oldToNew {
		oldToNew[i] = -1
	}

	nextIndex := 0
	remapped := make([]stripify.PrimitiveGroup, len(groups))
	for i, g := range groups {
		indices := make([]int, len(g.Indices))
		for j, old := range g.Indices {
			if oldToNew[old] == -1 {
				oldToNew[old] = nextIndex
				nextIndex++
			}
			indices[j] = oldToNew[old]
		}
		remapped[i] = stripify.PrimitiveGroup{Kind: g.Kind, Indices: indices}
	}

	newPositions := make([]gmath.Vec3, nextIndex)
	for old, n := range oldToNew {
		if n != -1 {
			newPositions[n] = positions[old]
		}
	}

	return remapped, newPositions
}

func flatten(groups []stripify.PrimitiveGroup) []int {
	var out []int
	for _, g := range groups {
		out = append(out, g.Indices...)
	}
	return out
}
