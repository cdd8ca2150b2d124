// Package config loads and defaults the YAML-driven build configuration
// consumed by internal/builder.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// VariantOverride is a caller-supplied weight/neighbor override for one
// asset-id, matching spec.md §6's "variants" list entry.
type VariantOverride struct {
	AssetID   string   `yaml:"asset_id"`
	Weight    float64  `yaml:"weight"`
	Neighbors []string `yaml:"neighbors"`
}

// Config holds the parameters a single build call needs (spec.md §6).
type Config struct {
	// Size is the grid side length in cells.
	Size int `yaml:"size"`

	// TileSize is pixels per tile edge, used only in image mode.
	TileSize int `yaml:"tile_size"`

	// ChunkSize (K) is the pattern side length in cells, used only in
	// textual mode.
	ChunkSize int `yaml:"chunk_size"`

	// Variants lists asset-index/weight/neighbor overrides merged onto
	// the image-mode catalog; weight defaults to 1 when omitted (zero).
	// Textual-mode builds do not read them.
	Variants []VariantOverride `yaml:"variants"`

	// IncludeFlipping and Dedupe are textual-mode toggles (spec.md §6).
	IncludeFlipping bool `yaml:"include_flipping"`
	Dedupe          bool `yaml:"dedupe"`

	// LogHistory: when true, every intra-solve collapse is snapshotted;
	// when false, only major states are (spec.md §6).
	LogHistory bool `yaml:"log_history"`

	// MaxAttempts bounds the build retry loop; 0 means unbounded, the
	// acknowledged §7/§9 livelock risk the core now lets callers opt out
	// of (REDESIGN FLAG #3).
	MaxAttempts int `yaml:"max_attempts"`
}

// DefaultConfig returns a Config with reasonable defaults for a small
// build.
func DefaultConfig() *Config {
	return &Config{
		Size:            16,
		TileSize:        16,
		ChunkSize:       5,
		IncludeFlipping: true,
		Dedupe:          true,
		LogHistory:      false,
		MaxAttempts:     0,
	}
}

// LoadConfig loads a Config from a YAML file. If the file doesn't exist,
// returns the defaults; any other read or parse error is returned
// alongside the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return DefaultConfig(), err
	}

	return cfg, nil
}
