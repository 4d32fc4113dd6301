// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"runtime"

	"github.com/lgbarn/chesscore-go/internal/config"
)

var (
	// Position options
	fenFlag   = flag.String("fen", "", "Starting position in FEN (default: opening layout)")
	movesFlag = flag.String("moves", "", "Coordinate moves to play, e.g. \"e2e4 e7e5\"")

	// Batch analysis
	positionsFile = flag.String("positions", "", "File with one FEN per line to analyse (- for stdin)")
	workers       = flag.Int("workers", 0, "Number of worker threads (0 = auto-detect based on CPU cores)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate positions in batch analysis")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum duplicate hash table entries (0 = unlimited)")

	// Material matching
	materialMatch      = flag.String("z", "", "Material balance to match (e.g., 'QR:qrr')")
	materialMatchExact = flag.String("y", "", "Exact material balance to match")

	// Rules
	legacyBounds = flag.Bool("legacy-bounds", false, "Only stop rays that leave the board on both axes")

	// Output and logging
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output batch analysis in JSON format")
	jsonLines  = flag.Bool("jsonl", false, "Output batch analysis as one JSON object per line")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 silent, 1 summary, 2 running commentary")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	if *legacyBounds {
		cfg.Bounds = config.LegacyBounds
	}
	cfg.Verbosity = *verbosity
	cfg.Workers = resolveWorkers(*workers)
	cfg.SuppressDuplicates = *suppressDuplicates
	cfg.DuplicateCapacity = *duplicateCapacity
}

// resolveWorkers maps the -workers flag to a worker count.
func resolveWorkers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.NumCPU()
}
