// Package config provides configuration for the rules engine and its tools.
package config

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// BoundsMode selects how move offsets are tested against the board edge.
type BoundsMode int

const (
	// StrictBounds treats an offset as off the board when either axis leaves [0,7].
	StrictBounds BoundsMode = iota
	// LegacyBounds only treats an offset as off the board when both axes leave
	// [0,7]. Offsets that leave a single axis survive move generation and are
	// dropped when translated to board squares.
	LegacyBounds
)

// String returns the flag spelling of the mode.
func (m BoundsMode) String() string {
	if m == LegacyBounds {
		return "legacy"
	}
	return "strict"
}

// Verbosity levels.
const (
	Silent     = 0 // nothing
	Summary    = 1 // totals at the end of a run
	Commentary = 2 // running commentary: captures, checks, checkmates
)

// Config holds engine and tool configuration.
type Config struct {
	// Move generation
	Bounds BoundsMode

	// Reporting
	Verbosity int

	// Batch analysis
	Workers    int
	BufferSize int

	// Duplicate positions in batch analysis
	SuppressDuplicates bool
	DuplicateCapacity  int // 0 = unlimited

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// logMu serialises Logf; batch workers share one Config.
	logMu sync.Mutex
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Bounds:     StrictBounds,
		Verbosity:  Summary,
		Workers:    1,
		BufferSize: 10,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Bounds != StrictBounds && c.Bounds != LegacyBounds {
		return fmt.Errorf("bounds mode %d: %w", c.Bounds, errors.ErrInvalidConfig)
	}
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return fmt.Errorf("verbosity %d: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers %d: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.BufferSize < 1 {
		return fmt.Errorf("buffer size %d: %w", c.BufferSize, errors.ErrInvalidConfig)
	}
	if c.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate capacity %d: %w", c.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a line to LogFile when Verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	c.logMu.Lock()
	defer c.logMu.Unlock()
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}
