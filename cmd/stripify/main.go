// stripify is a CLI utility for turning a triangle mesh into cache-aware
// triangle strips.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/tristrip/internal/config"
	"github.com/Faultbox/tristrip/internal/logx"
	"github.com/Faultbox/tristrip/internal/stripify"
)

func main() {
	config.ParseFlags()

	rest := flag.Args()
	if len(rest) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := rest[0]
	args := rest[1:]

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := logx.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logx.Sync()

	switch command {
	case "grid":
		cmdGrid(args, cfg)
	case "obj":
		cmdObj(args, cfg)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`stripify - triangle strip optimizer

Usage:
  stripify [flags] <command> [options]

Commands:
  grid <width> <depth>       Generate a procedural grid and stripify it
  obj <file.obj> [out.obj]   Stripify a Wavefront OBJ file, optionally
                              writing the remapped result back out

Flags:
  -config <path.yaml>   Path to config file
  -debug                Enable debug logging
  -cache-size <n>        Declared vertex cache size
  -no-stitch            Emit separate strips instead of one stitched strip
  -lists-only           Emit a flattened triangle list instead of strips
  -min-strip-length <n> Minimum triangle count for a strip to survive

Examples:
  stripify grid 20 20
  stripify -cache-size 24 obj mesh.obj mesh_stripped.obj`)
}

func stripifyConfig(cfg *config.Config) stripify.Config {
	return stripify.Config{
		CacheSize:      cfg.Stripifier.CacheSize,
		StitchStrips:   cfg.Stripifier.StitchStrips,
		MinStripLength: cfg.Stripifier.MinStripLength,
		ListsOnly:      cfg.Stripifier.ListsOnly,
		Logger:         logx.StripifyLogger{},
	}
}

func printReport(groups []stripify.PrimitiveGroup, cacheSize int) {
	var strips, lists, totalIndices int
	for _, g := range groups {
		totalIndices += len(g.Indices)
		if g.Kind == stripify.Strip {
			strips++
		} else {
			lists++
		}
	}

	var stripLenSum int
	for _, g := range groups {
		if g.Kind == stripify.Strip {
			stripLenSum += len(g.Indices)
		}
	}
	avgStripLen := float64(0)
	if strips > 0 {
		avgStripLen = float64(stripLenSum) / float64(strips)
	}

	stats := stripify.EstimateCacheHits(groups, cacheSize)

	fmt.Printf("Primitive groups: %d (%d strip, %d list)\n", len(groups), strips, lists)
	fmt.Printf("Total indices:    %d\n", totalIndices)
	fmt.Printf("Avg strip length: %.1f indices\n", avgStripLen)
	fmt.Printf("Cache hit ratio:  %.1f%% (%d hits / %d misses)\n", stats.HitRatio()*100, stats.Hits, stats.Misses)
}
