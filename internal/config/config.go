// Package config holds service configuration: defaults, optional YAML file,
// then WORDLE_* environment overrides, in that order. Command-line flags sit
// on top of all three.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the full service configuration.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`

	// ReportDir is where analysis reports are saved.
	ReportDir string `yaml:"reportDir"`

	// LogLevel is one of debug|info|warn|error.
	LogLevel string `yaml:"logLevel"`

	// Workers is the elimination worker-unit count. 0 means one per CPU.
	Workers int `yaml:"workers"`

	// CommonWords / OtherWords optionally replace the embedded word lists.
	// Both must be set together.
	CommonWords string `yaml:"commonWords"`
	OtherWords  string `yaml:"otherWords"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Addr:      ":8080",
		ReportDir: "./reports",
		LogLevel:  "info",
		Workers:   0,
	}
}

// Load builds the configuration from defaults, an optional YAML file, and
// the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
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
	if v := os.Getenv("WORDLE_ADDR"); v != "" {
		c.Addr = v
	}
	if v := os.Getenv("WORDLE_REPORT_DIR"); v != "" {
		c.ReportDir = v
	}
	if v := os.Getenv("WORDLE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("WORDLE_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("WORDLE_WORKERS: %w", err)
		}
		c.Workers = n
	}
	if v := os.Getenv("WORDLE_COMMON_WORDS"); v != "" {
		c.CommonWords = v
	}
	if v := os.Getenv("WORDLE_OTHER_WORDS"); v != "" {
		c.OtherWords = v
	}
	return nil
}

// Validate checks ranges and cross-field constraints.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	if c.Workers < 0 || c.Workers > 256 {
		return fmt.Errorf("workers out of range: %d", c.Workers)
	}
	if (c.CommonWords == "") != (c.OtherWords == "") {
		return fmt.Errorf("commonWords and otherWords must be set together")
	}
	return nil
}

// SlogLevel maps LogLevel onto slog's levels.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
