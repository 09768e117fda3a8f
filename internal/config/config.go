// Package config handles loading and managing cmd/stripify's settings.
package config

// Config holds all of cmd/stripify's settings.
type Config struct {
	Stripifier StripifierConfig `yaml:"stripifier"`
	Mesh       MeshConfig       `yaml:"mesh"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// StripifierConfig mirrors stripify.Config's caller-visible knobs.
type StripifierConfig struct {
	CacheSize      int  `yaml:"cache_size"`
	StitchStrips   bool `yaml:"stitch_strips"`
	MinStripLength int  `yaml:"min_strip_length"`
	ListsOnly      bool `yaml:"lists_only"`
}

// MeshConfig controls procedural mesh generation for the grid subcommand.
type MeshConfig struct {
	GridWidth    int     `yaml:"grid_width"`
	GridDepth    int     `yaml:"grid_depth"`
	GridCellSize float32 `yaml:"grid_cell_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the documented stripifier defaults.
func Default() *Config {
	return &Config{
		Stripifier: StripifierConfig{
			CacheSize:      16,
			StitchStrips:   true,
			MinStripLength: 0,
			ListsOnly:      false,
		},
		Mesh: MeshConfig{
			GridWidth:    10,
			GridDepth:    10,
			GridCellSize: 1.0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
