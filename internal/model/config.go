package model

import (
	"fmt"
	"runtime"
	"time"
)

// Config holds every tunable of tkdgloss
type Config struct {
	Matching    MatchingConfig    `yaml:"matching" mapstructure:"matching"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Belts       BeltsConfig       `yaml:"belts" mapstructure:"belts"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
}

// MatchingConfig controls edit-distance tolerance
type MatchingConfig struct {
	MaxDistance       int `yaml:"max_distance" mapstructure:"max_distance"`               // Technique analysis threshold
	SearchMaxDistance int `yaml:"search_max_distance" mapstructure:"search_max_distance"` // Term search threshold
}

// CacheConfig controls caching of analysis reports
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"` // Empty disables the disk layer
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// BeltsConfig locates belt curriculum files
type BeltsConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"` // Empty uses the embedded curriculum
	Pattern string `yaml:"pattern" mapstructure:"pattern"`
}

// ConcurrencyConfig controls batch and lint parallelism
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls presentation
type OutputConfig struct {
	Verbose          bool `yaml:"verbose" mapstructure:"verbose"`
	ShowDescriptions bool `yaml:"show_descriptions" mapstructure:"show_descriptions"`
	IncludeFooter    bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Matching: MatchingConfig{
			MaxDistance:       2,
			SearchMaxDistance: 2,
		},
		Cache: CacheConfig{
			Enabled:   true,
			MemoryTTL: time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Belts: BeltsConfig{
			Pattern: "faixa_*.{json,yaml,yml}",
		},
		Concurrency: ConcurrencyConfig{
			Workers: runtime.NumCPU(),
		},
		Output: OutputConfig{
			ShowDescriptions: true,
			IncludeFooter:    true,
		},
	}
}

// Validate rejects values no component can work with
func (c *Config) Validate() error {
	if c.Matching.MaxDistance < 0 {
		return fmt.Errorf("matching.max_distance must be >= 0, got %d", c.Matching.MaxDistance)
	}
	if c.Matching.SearchMaxDistance < 0 {
		return fmt.Errorf("matching.search_max_distance must be >= 0, got %d", c.Matching.SearchMaxDistance)
	}
	if c.Concurrency.Workers <= 0 {
		return fmt.Errorf("concurrency.workers must be > 0, got %d", c.Concurrency.Workers)
	}
	if c.Belts.Pattern == "" {
		return fmt.Errorf("belts.pattern must not be empty")
	}
	return nil
}
