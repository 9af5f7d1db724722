package config

import (
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"
)

const (
	// DefaultIndexDir is the directory under the project root that holds
	// the index database.
	DefaultIndexDir = ".codescope"

	// DBFileName is the database file inside the index directory. Its
	// existence is the "index exists" signal.
	DBFileName = "index.db"

	// DefaultLimit is the default result cap for analysis queries.
	DefaultLimit = 100
)

// Config holds the per-project settings read from .codescope.yaml. All
// fields are optional; zero values fall back to defaults.
type Config struct {
	IndexDir string   `mapstructure:"index_dir"`
	Exclude  []string `mapstructure:"exclude"`
	Limit    int      `mapstructure:"limit"`
	LogLevel string   `mapstructure:"log_level"`
}

// Load reads .codescope.yaml from root if present and applies defaults.
// A missing config file is not an error; a malformed one is.
func Load(root string) (*Config, error) {
	v := viper.New()
	v.SetConfigName(".codescope")
	v.SetConfigType("yaml")
	v.AddConfigPath(root)

	v.SetDefault("index_dir", DefaultIndexDir)
	v.SetDefault("limit", DefaultLimit)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	for _, pattern := range cfg.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern: %q", pattern)
		}
	}

	return &cfg, nil
}

// DBPath returns the database file location for a project root.
func (c *Config) DBPath(root string) string {
	return filepath.Join(root, c.IndexDir, DBFileName)
}

// Excluded reports whether a relative path matches any of the configured
// exclude globs. The fixed directory-name exclusions are handled by the
// indexing driver; this only covers user-added patterns.
func (c *Config) Excluded(relPath string) bool {
	for _, pattern := range c.Exclude {
		if ok, _ := doublestar.Match(pattern, filepath.ToSlash(relPath)); ok {
			return true
		}
	}
	return false
}
