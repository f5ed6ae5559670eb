// Package config loads user defaults for the swatches CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/swatches/internal/archive"
)

// Environment variables that override the config file.
const (
	EnvSpace        = "SWATCHES_SPACE"
	EnvFormat       = "SWATCHES_FORMAT"
	EnvLogLevel     = "SWATCHES_LOG_LEVEL"
	EnvPreviewWidth = "SWATCHES_PREVIEW_WIDTH"
	EnvConfigPath   = "SWATCHES_CONFIG"
)

// Config holds CLI defaults. Command-line flags take precedence over it.
type Config struct {
	// DefaultSpace is the colour space used when --space is not given.
	DefaultSpace string `yaml:"default_space"`
	// DefaultFormat is the output format used when --format is not given.
	DefaultFormat archive.Format `yaml:"default_format"`
	// LogLevel is an hclog level name (trace, debug, info, warn, error, off).
	LogLevel string `yaml:"log_level"`
	// PreviewWidth is the width of colour preview blocks in characters.
	PreviewWidth int `yaml:"preview_width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		DefaultSpace:  "hsv",
		DefaultFormat: archive.FormatBytes,
		LogLevel:      "warn",
		PreviewWidth:  6,
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/swatches/config.yaml, falling back to
// the platform user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		dir, err = os.UserConfigDir()
		if err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "swatches", "config.yaml")
}

// Load reads path (a missing file is not an error), applies environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 - User config path
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSpace); v != "" {
		c.DefaultSpace = strings.ToLower(strings.TrimSpace(v))
	}
	if v := os.Getenv(EnvFormat); v != "" {
		c.DefaultFormat = archive.Format(v)
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvPreviewWidth); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvPreviewWidth, err)
		}
		c.PreviewWidth = n
	}
	return nil
}

// Validate checks the configuration and normalises the format name.
func (c *Config) Validate() error {
	if c.DefaultSpace == "" {
		return fmt.Errorf("default_space cannot be empty")
	}
	format, err := archive.ParseFormat(string(c.DefaultFormat))
	if err != nil {
		return fmt.Errorf("invalid default_format: %w", err)
	}
	c.DefaultFormat = format
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log_level: %q", c.LogLevel)
	}
	if c.PreviewWidth < 1 || c.PreviewWidth > 80 {
		return fmt.Errorf("preview_width must be between 1 and 80, got %d", c.PreviewWidth)
	}
	return nil
}
