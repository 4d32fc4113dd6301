// Package analysis summarises positions: side to move, check state and the
// mobility of each side.
package analysis

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/matching"
)

// Report is the analysis of a single position.
type Report struct {
	FEN          string
	ToMove       chess.Side
	Check        bool
	CheckMate    bool
	CheckSquares []chess.Position

	// Indexed by chess.Side.
	Pieces   [2]int
	Mobility [2]int

	Material  matching.Material
	Signature hashing.Signature
}

// Analyze reports on the current state of b. The board is not modified.
func Analyze(b *engine.Board) *Report {
	r := &Report{
		FEN:          b.FEN(),
		ToMove:       b.ToMove(),
		Check:        b.IsInCheck(),
		CheckMate:    b.IsCheckMate(),
		CheckSquares: b.CheckSquares(),
		Material:     matching.CountMaterial(b),
		Signature:    hashing.Sign(b),
	}
	for _, side := range []chess.Side{chess.Lower, chess.Upper} {
		r.Pieces[side] = len(b.Player(side).Pieces())
		r.Mobility[side] = Mobility(b, side)
	}
	return r
}

// AnalyzeFEN loads fen and reports on it.
func AnalyzeFEN(fen string, opts ...engine.Option) (*Report, error) {
	b, err := engine.NewBoardFromFEN(fen, opts...)
	if err != nil {
		return nil, err
	}
	return Analyze(b), nil
}

// Mobility counts the targets of every piece of side.
func Mobility(b *engine.Board, side chess.Side) int {
	total := 0
	for _, p := range b.Player(side).Pieces() {
		targets, err := b.ProcessSelectables(p.Position())
		if err != nil {
			continue
		}
		total += len(targets)
	}
	return total
}

// Status returns "checkmate", "check" or "normal".
func (r *Report) Status() string {
	switch {
	case r.CheckMate:
		return "checkmate"
	case r.Check:
		return "check"
	default:
		return "normal"
	}
}

// String formats the report as a single line.
func (r *Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s to move, %s", r.ToMove, r.Status())
	if r.Check && !r.CheckMate {
		names := make([]string, len(r.CheckSquares))
		for i, pos := range r.CheckSquares {
			names[i] = pos.String()
		}
		fmt.Fprintf(&sb, " (escapes %s)", strings.Join(names, " "))
	}
	fmt.Fprintf(&sb, "; lower %d pieces %d moves; upper %d pieces %d moves",
		r.Pieces[chess.Lower], r.Mobility[chess.Lower],
		r.Pieces[chess.Upper], r.Mobility[chess.Upper])
	return sb.String()
}
