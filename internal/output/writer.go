// Package output writes analysis reports as text lines or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chesscore-go/internal/analysis"
	"github.com/lgbarn/chesscore-go/internal/chess"
)

// ReportWriter is the interface for writing reports to output.
type ReportWriter interface {
	// WriteReport writes the report for the position read from line.
	WriteReport(line int, r *analysis.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextWriter writes one line per report.
type TextWriter struct {
	w io.Writer
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

// WriteReport writes "line: summary".
func (tw *TextWriter) WriteReport(line int, r *analysis.Report) error {
	_, err := fmt.Fprintf(tw.w, "%d: %s\n", line, r)
	return err
}

// Flush is a no-op; text is written immediately.
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONReport represents a report in JSON format.
type JSONReport struct {
	Line         int            `json:"line,omitempty"`
	FEN          string         `json:"fen"`
	ToMove       string         `json:"toMove"` // "white" or "black"
	Status       string         `json:"status"`
	CheckSquares []string       `json:"checkSquares,omitempty"`
	Mobility     map[string]int `json:"mobility"`
	Material     map[string]int `json:"material"`
	Hash         string         `json:"hash"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Positions []*JSONReport `json:"positions"`
}

// colorName names a side the way FEN does.
func colorName(side chess.Side) string {
	if side == chess.Upper {
		return "black"
	}
	return "white"
}

// ReportToJSON converts a report to JSON format. Material is keyed by FEN
// letter: uppercase for White, lowercase for Black.
func ReportToJSON(line int, r *analysis.Report) *JSONReport {
	jr := &JSONReport{
		Line:     line,
		FEN:      r.FEN,
		ToMove:   colorName(r.ToMove),
		Status:   r.Status(),
		Mobility: make(map[string]int, 2),
		Material: make(map[string]int),
		Hash:     fmt.Sprintf("%016x", r.Signature.Hash),
	}
	if r.Check && !r.CheckMate {
		for _, pos := range r.CheckSquares {
			jr.CheckSquares = append(jr.CheckSquares, pos.String())
		}
	}
	for _, side := range []chess.Side{chess.Lower, chess.Upper} {
		jr.Mobility[colorName(side)] = r.Mobility[side]
		for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
			n := r.Material[side][kind]
			if n == 0 {
				continue
			}
			letter := kind.Letter()
			if side == chess.Upper {
				letter += 'a' - 'A'
			}
			jr.Material[string(letter)] = n
		}
	}
	return jr
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	reports []*JSONReport
	lines   bool // If true, write each report immediately as one line
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:       w,
		reports: make([]*JSONReport, 0),
	}
}

// NewJSONLinesWriter creates a JSON writer that writes each report
// immediately as a single-line object.
func NewJSONLinesWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{
		w:     w,
		lines: true,
	}
}

// WriteReport buffers a report for JSON output (or writes it as a line in
// lines mode).
func (jw *JSONWriter) WriteReport(line int, r *analysis.Report) error {
	jr := ReportToJSON(line, r)
	if jw.lines {
		return json.NewEncoder(jw.w).Encode(jr)
	}

	jw.reports = append(jw.reports, jr)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.lines || len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Positions: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
