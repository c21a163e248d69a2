// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/cv-paginator/internal/types"
)

// Defaults applied by MergeWithDefaults when neither the file nor flags set a value.
const (
	DefaultPort     = 8080
	DefaultLogLevel = "info"
	DefaultMaxPages = 20
)

// Config represents the configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Layout
	Orientation           string  `json:"orientation,omitempty"`             // portrait or landscape
	MaxPages              int     `json:"max_pages,omitempty"`               // Hard cap on emitted pages
	AchievementItemHeight float64 `json:"achievement_item_height,omitempty"` // Override for the achievement item height

	// Logging
	LogLevel string `json:"log_level,omitempty"` // debug, info, warn, error
	LogJSON  bool   `json:"log_json,omitempty"`  // Emit JSON log lines
	Verbose  bool   `json:"verbose,omitempty"`   // Print page summaries

	// Service
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	Port        int    `json:"port,omitempty"`         // HTTP listen port
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from DATABASE_URL, PORT and LOG_LEVEL.
// Unparseable numeric values are ignored.
func FromEnv() Config {
	cfg := Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		LogLevel:    os.Getenv("LOG_LEVEL"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Orientation != "" && !types.Orientation(c.Orientation).Valid() {
		return fmt.Errorf("config error: 'orientation' must be portrait or landscape, got %q", c.Orientation)
	}

	// Validate numeric ranges
	if c.MaxPages < 0 {
		return fmt.Errorf("config error: 'max_pages' must be non-negative")
	}
	if c.AchievementItemHeight < 0 {
		return fmt.Errorf("config error: 'achievement_item_height' must be non-negative")
	}
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}

	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config error: unknown 'log_level' %q", c.LogLevel)
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Orientation == "" {
		result.Orientation = defaults.Orientation
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.MaxPages == 0 {
		result.MaxPages = defaults.MaxPages
	}
	if result.AchievementItemHeight == 0 {
		result.AchievementItemHeight = defaults.AchievementItemHeight
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Hard defaults when neither side set a value
	if result.Orientation == "" {
		result.Orientation = string(types.OrientationPortrait)
	}
	if result.LogLevel == "" {
		result.LogLevel = DefaultLogLevel
	}
	if result.MaxPages == 0 {
		result.MaxPages = DefaultMaxPages
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
