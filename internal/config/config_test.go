package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Addr != ":8080" || cfg.LogLevel != "info" || cfg.Workers != 0 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("addr: \":9999\"\nlogLevel: debug\nworkers: 4\nreportDir: /tmp/reports\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":9999" || cfg.LogLevel != "debug" || cfg.Workers != 4 || cfg.ReportDir != "/tmp/reports" {
		t.Fatalf("loaded config = %+v", cfg)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing config file accepted")
	}
}

func TestLoadNoFile(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load without a file: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("got %+v, want defaults", cfg)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WORDLE_ADDR", ":7777")
	t.Setenv("WORDLE_LOG_LEVEL", "warn")
	t.Setenv("WORDLE_WORKERS", "8")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Addr != ":7777" || cfg.LogLevel != "warn" || cfg.Workers != 8 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
}

func TestEnvBadWorkers(t *testing.T) {
	t.Setenv("WORDLE_WORKERS", "many")
	if _, err := Load(""); err == nil {
		t.Fatal("non-numeric WORDLE_WORKERS accepted")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"defaults", func(*Config) {}, true},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, false},
		{"negative workers", func(c *Config) { c.Workers = -1 }, false},
		{"too many workers", func(c *Config) { c.Workers = 300 }, false},
		{"max workers", func(c *Config) { c.Workers = 256 }, true},
		{"common list alone", func(c *Config) { c.CommonWords = "x.txt" }, false},
		{"both lists", func(c *Config) { c.CommonWords = "x.txt"; c.OtherWords = "y.txt" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Fatal("invalid config accepted")
			}
		})
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tc := range tests {
		cfg := Config{LogLevel: tc.level}
		if got := cfg.SlogLevel(); got != tc.want {
			t.Errorf("SlogLevel(%q) = %v, want %v", tc.level, got, tc.want)
		}
	}
}
