// chesscore plays coordinate moves on a position and analyses batches of
// positions for check and checkmate.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/lgbarn/chesscore-go/internal/analysis"
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/matching"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/session"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	setupLogFile(cfg)
	setupOutputFile(cfg)

	if *positionsFile != "" {
		if failed := analysePositionsFile(*positionsFile, cfg); failed > 0 {
			os.Exit(1)
		}
		return
	}

	if err := playGame(cfg, *fenFlag, *movesFlag); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// playGame loads the starting position, plays moves through a session and
// prints the final state.
func playGame(cfg *config.Config, fen, moves string) error {
	pairs, err := chess.ParseMoves(moves)
	if err != nil {
		return err
	}

	registry := session.NewRegistry(cfg)
	var id uuid.UUID
	if fen == "" {
		id = registry.NewGame()
	} else if id, err = registry.NewGameFromFEN(fen); err != nil {
		return err
	}
	for _, mv := range pairs {
		if err := registry.Move(id, mv[0], mv[1]); err != nil {
			return err
		}
	}

	return registry.Do(id, func(b *engine.Board) error {
		printBoard(cfg.OutputFile, b)
		cfg.Logf(config.Summary, "%d move(s) played", len(pairs))
		return nil
	})
}

// printBoard writes the diagram, side to move, check state and FEN.
func printBoard(w io.Writer, b *engine.Board) {
	report := analysis.Analyze(b)
	fmt.Fprint(w, b.Diagram())
	fmt.Fprintf(w, "%s\n", report)
	fmt.Fprintf(w, "FEN: %s\n", report.FEN)
}

// analysePositionsFile opens path (or stdin for "-") and analyses its
// positions. It returns the number of positions that failed to load.
func analysePositionsFile(path string, cfg *config.Config) int {
	var r io.Reader = os.Stdin
	if path != "-" {
		file, err := os.Open(path) //nolint:gosec // G304: CLI tool opens user-specified files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening positions file %s: %v\n", path, err)
			os.Exit(1)
		}
		defer file.Close()
		r = file
	}

	failed, err := analysePositions(r, cfg, newReportWriter(cfg), loadMaterialMatcher())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading positions file %s: %v\n", path, err)
		os.Exit(1)
	}
	return failed
}

// newReportWriter picks the output format based on command-line flags.
func newReportWriter(cfg *config.Config) output.ReportWriter {
	switch {
	case *jsonLines:
		return output.NewJSONLinesWriter(cfg.OutputFile)
	case *jsonOutput:
		return output.NewJSONWriter(cfg.OutputFile)
	default:
		return output.NewTextWriter(cfg.OutputFile)
	}
}

// loadMaterialMatcher creates a material matcher if specified.
func loadMaterialMatcher() *matching.MaterialMatcher {
	if *materialMatchExact != "" {
		return matching.NewMaterialMatcher(*materialMatchExact, true)
	}
	if *materialMatch != "" {
		return matching.NewMaterialMatcher(*materialMatch, false)
	}
	return nil
}

// scanPositions calls fn with one work item per non-blank line. Lines
// starting with '#' are comments. Scanning ends early when fn returns false.
func scanPositions(r io.Reader, fn func(worker.WorkItem) bool) error {
	scanner := bufio.NewScanner(r)
	line, index := 0, 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if !fn(worker.WorkItem{FEN: text, Line: line, Index: index}) {
			return nil
		}
		index++
	}
	return scanner.Err()
}

// analysePositions streams the positions in r through a worker pool and
// writes one report per position in input order. Rejected positions are
// logged. With duplicate suppression on, repeats of an earlier position are
// skipped; with a material matcher, only matching positions are written.
//
// If r cannot be read to the end the pool is stopped, nothing is written
// and the read error is returned.
func analysePositions(r io.Reader, cfg *config.Config, w output.ReportWriter, mm *matching.MaterialMatcher) (int, error) {
	pool := worker.NewPoolWithOptions(
		worker.AnalyzeFunc(engine.WithConfig(cfg)),
		worker.WithWorkers(cfg.Workers),
		worker.WithBufferSize(cfg.BufferSize),
	)
	pool.Start()

	var (
		readErr   error
		submitted int
	)
	go func() {
		defer pool.Close()
		readErr = scanPositions(r, func(item worker.WorkItem) bool {
			if !pool.Submit(item) {
				return false
			}
			submitted++
			return true
		})
		if readErr != nil {
			pool.Stop()
		}
	}()

	results := pool.Collect()
	if pool.IsStopped() {
		return 0, readErr
	}

	var detector *hashing.DuplicateDetector
	if cfg.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(cfg.DuplicateCapacity)
	}

	failed, mates, written := 0, 0, 0
	for _, result := range results {
		if result.Error != nil {
			failed++
			cfg.Logf(config.Summary, "Error: %v", result.Error)
			continue
		}
		if detector != nil {
			if first, dup := detector.CheckAndAdd(result.Report.Signature, result.Line); dup {
				cfg.Logf(config.Commentary, "line %d: duplicate of line %d", result.Line, first)
				continue
			}
		}
		if result.Report.CheckMate {
			mates++
		}
		if mm != nil && mm.HasCriteria() && !mm.Matches(result.Report.Material) {
			continue
		}
		if err := w.WriteReport(result.Line, result.Report); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			continue
		}
		written++
	}
	if err := w.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
	}

	cfg.Logf(config.Summary, "%d position(s) analysed, %d checkmate(s), %d rejected, %d written.", submitted-failed, mates, failed, written)
	if detector != nil {
		cfg.Logf(config.Summary, "%d duplicate(s) suppressed, %d distinct position(s).", detector.DuplicateCount(), detector.UniqueCount())
	}
	return failed, nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays coordinate moves on a chess position, or analyses a file of positions.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExamples:\n")
	fmt.Fprintf(os.Stderr, "  chesscore -moves \"e2e4 e7e5 g1f3\"\n")
	fmt.Fprintf(os.Stderr, "  chesscore -fen \"k7/pp6/8/8/8/8/8/4K2R w - - 0 1\" -moves h1h8\n")
	fmt.Fprintf(os.Stderr, "  chesscore -positions positions.txt -workers 4\n")
	fmt.Fprintf(os.Stderr, "  chesscore -positions - -D -jsonl < positions.txt\n")
}
