package config

import "flag"

var (
	flagConfig         = flag.String("config", "", "Path to config file")
	flagDebug          = flag.Bool("debug", false, "Enable debug logging")
	flagCacheSize      = flag.Int("cache-size", 0, "Declared vertex cache size")
	flagNoStitch       = flag.Bool("no-stitch", false, "Emit separate strips instead of one stitched strip")
	flagListsOnly      = flag.Bool("lists-only", false, "Emit a flattened triangle list instead of strips")
	flagMinStripLength = flag.Int("min-strip-length", -1, "Minimum triangle count for a strip to survive")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagCacheSize > 0 {
		cfg.Stripifier.CacheSize = *flagCacheSize
	}
	if *flagNoStitch {
		cfg.Stripifier.StitchStrips = false
	}
	if *flagListsOnly {
		cfg.Stripifier.ListsOnly = true
	}
	if *flagMinStripLength >= 0 {
		cfg.Stripifier.MinStripLength = *flagMinStripLength
	}
}
