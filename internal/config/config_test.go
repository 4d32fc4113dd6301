package config

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Bounds != StrictBounds {
		t.Errorf("Bounds = %v, want %v", cfg.Bounds, StrictBounds)
	}
	if cfg.Verbosity != Summary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Summary)
	}
	if cfg.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Workers)
	}
	if cfg.OutputFile == nil {
		t.Error("OutputFile should not be nil by default")
	}
	if cfg.LogFile == nil {
		t.Error("LogFile should not be nil by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

// TestConfigBuilder verifies the fluent builder sets every field
func TestConfigBuilder(t *testing.T) {
	var out, log bytes.Buffer
	cfg := NewConfigBuilder().
		WithBounds(LegacyBounds).
		WithVerbosity(Commentary).
		WithWorkers(4).
		WithDuplicates(true, 500).
		WithOutput(&out).
		WithLogFile(&log).
		Build()

	if cfg.Bounds != LegacyBounds {
		t.Errorf("Bounds = %v, want %v", cfg.Bounds, LegacyBounds)
	}
	if cfg.Verbosity != Commentary {
		t.Errorf("Verbosity = %d, want %d", cfg.Verbosity, Commentary)
	}
	if cfg.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Workers)
	}
	if !cfg.SuppressDuplicates || cfg.DuplicateCapacity != 500 {
		t.Errorf("duplicates = %v/%d, want true/500", cfg.SuppressDuplicates, cfg.DuplicateCapacity)
	}
	if cfg.OutputFile != &out {
		t.Error("OutputFile not set by builder")
	}
	if cfg.LogFile != &log {
		t.Error("LogFile not set by builder")
	}
}

// TestValidate rejects out-of-range settings
func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown bounds", func(c *Config) { c.Bounds = BoundsMode(7) }},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }},
		{"excess verbosity", func(c *Config) { c.Verbosity = 3 }},
		{"no workers", func(c *Config) { c.Workers = 0 }},
		{"no buffer", func(c *Config) { c.BufferSize = 0 }},
		{"negative duplicate capacity", func(c *Config) { c.DuplicateCapacity = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if !errors.Is(err, chesserrors.ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

// TestLogf verifies verbosity gating
func TestLogf(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfigBuilder().WithLogFile(&buf).WithVerbosity(Summary).Build()

	cfg.Logf(Commentary, "hidden %d", 1)
	if buf.Len() != 0 {
		t.Errorf("Logf above verbosity wrote %q", buf.String())
	}

	cfg.Logf(Summary, "shown %d", 2)
	if got := buf.String(); !strings.Contains(got, "shown 2\n") {
		t.Errorf("Logf output = %q, want it to contain %q", got, "shown 2\n")
	}

	var nilCfg *Config
	nilCfg.Logf(Silent, "no panic")
}

func TestBoundsMode_String(t *testing.T) {
	if got := StrictBounds.String(); got != "strict" {
		t.Errorf("StrictBounds.String() = %q, want %q", got, "strict")
	}
	if got := LegacyBounds.String(); got != "legacy" {
		t.Errorf("LegacyBounds.String() = %q, want %q", got, "legacy")
	}
}
