package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/Faultbox/tristrip/internal/config"
	"github.com/Faultbox/tristrip/internal/stripify"
	"github.com/Faultbox/tristrip/pkg/meshgen"
)

func cmdGrid(args []string, cfg *config.Config) {
	fs := flag.NewFlagSet("grid", flag.ExitOnError)
	fs.Parse(args)

	width := cfg.Mesh.GridWidth
	depth := cfg.Mesh.GridDepth
	if fs.NArg() >= 1 {
		w, err := strconv.Atoi(fs.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid width %q\n", fs.Arg(0))
			os.Exit(1)
		}
		width = w
	}
	if fs.NArg() >= 2 {
		d, err := strconv.Atoi(fs.Arg(1))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: invalid depth %q\n", fs.Arg(1))
			os.Exit(1)
		}
		depth = d
	}

	mesh := meshgen.Grid(width, depth, cfg.Mesh.GridCellSize)
	if mesh == nil {
		fmt.Fprintln(os.Stderr, "Error: grid generation produced no geometry")
		os.Exit(1)
	}

	groups := stripify.Stripify(mesh.Indices, stripifyConfig(cfg))

	fmt.Printf("Grid: %dx%d cells, %d vertices, %d triangles\n", width, depth, len(mesh.Vertices), mesh.NumTriangles())
	printReport(groups, cfg.Stripifier.CacheSize)
}
