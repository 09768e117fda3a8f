package stripify

// Config holds the four caller-visible knobs the original NvTriStrip SDK
// exposed as process-global setters (SetCacheSize, SetStitchStrips,
// SetMinStripSize, SetListsOnly). Here they travel with the call instead
// of living in package state.
type Config struct {
	// CacheSize is the declared vertex-cache capacity. The engine simulates
	// against max(1, CacheSize-cacheInefficiency) internally.
	CacheSize int

	// StitchStrips, when true, bridges every committed strip into a single
	// STRIP group using degenerate double-taps instead of emitting one
	// group per strip.
	StitchStrips bool

	// MinStripLength is the triangle-count threshold below which a strip is
	// dissolved back into the leftover triangle list.
	MinStripLength int

	// ListsOnly, when true, skips strip packaging entirely and returns a
	// single flattened LIST group.
	ListsOnly bool

	// Logger receives diagnostics about malformed input geometry. Nil means
	// DiscardLogger.
	Logger Logger
}

// cacheInefficiency is the fixed headroom NvTriStrip subtracted from the
// declared cache size before simulating it; empirically tuned against
// early GeForce post-transform caches, preserved here unchanged.
const cacheInefficiency = 6

// DefaultConfig returns the documented defaults: cache size 16, strips
// stitched together, no minimum strip length, strips (not lists) emitted.
func DefaultConfig() Config {
	return Config{
		CacheSize:      16,
		StitchStrips:   true,
		MinStripLength: 0,
		ListsOnly:      false,
		Logger:         DiscardLogger{},
	}
}

func (c Config) logger() Logger {
	if c.Logger == nil {
		return DiscardLogger{}
	}
	return c.Logger
}

func (c Config) effectiveCacheSize() int {
	size := c.CacheSize - cacheInefficiency
	if size < 1 {
		return 1
	}
	return size
}
