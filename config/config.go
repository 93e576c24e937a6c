// Package config loads callexplorer settings from an optional YAML file and
// the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds callexplorer configuration.
type Config struct {
	// Source is the CSV export opened when none is given on the command line.
	Source string `yaml:"source"`
	// Title is shown at the top of the overview.
	Title string `yaml:"title"`
	// FetchTimeout bounds loading the source, e.g. "30s".
	FetchTimeout string `yaml:"fetch_timeout"`

	Log LogConfig `yaml:"log"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	File  string `yaml:"file"`  // JSON log file; empty disables file logging
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Title:        "Found Call Analysis Explorer",
		FetchTimeout: "30s",
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// DefaultPath is where Load looks when no path is given.
func DefaultPath() string {
	if p := os.Getenv("CALLEXPLORER_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "callexplorer", "config.yaml")
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if _, err := cfg.Timeout(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CALLEXPLORER_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("CALLEXPLORER_LOG_FILE"); v != "" {
		c.Log.File = v
	}
	if v := os.Getenv("CALLEXPLORER_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// Timeout parses FetchTimeout. An empty value means no timeout.
func (c *Config) Timeout() (time.Duration, error) {
	if c.FetchTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.FetchTimeout)
	if err != nil {
		return 0, fmt.Errorf("invalid fetch_timeout %q: %w", c.FetchTimeout, err)
	}
	return d, nil
}

// Save writes the config as YAML, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
