package testutil

import (
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// MustBoard loads a FEN position and calls t.Fatal if it is rejected.
func MustBoard(t *testing.T, fen string, opts ...engine.Option) *engine.Board {
	t.Helper()
	b, err := engine.NewBoardFromFEN(fen, opts...)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) failed: %v", fen, err)
	}
	return b
}

// MustSquare parses an algebraic square name and calls t.Fatal on failure.
func MustSquare(t *testing.T, name string) chess.Position {
	t.Helper()
	pos, err := chess.ParseSquare(name)
	if err != nil {
		t.Fatalf("ParseSquare(%q) failed: %v", name, err)
	}
	return pos
}

// MustSquares parses several square names.
func MustSquares(t *testing.T, names ...string) []chess.Position {
	t.Helper()
	out := make([]chess.Position, 0, len(names))
	for _, name := range names {
		out = append(out, MustSquare(t, name))
	}
	return out
}

// MustPlay applies coordinate moves such as "e2e4" in order and calls
// t.Fatal on the first rejected move.
func MustPlay(t *testing.T, b *engine.Board, moves ...string) {
	t.Helper()
	for _, mv := range moves {
		from, to, err := chess.ParseMove(mv)
		if err != nil {
			t.Fatalf("ParseMove(%q) failed: %v", mv, err)
		}
		if err = b.MoveFromTo(from, to); err != nil {
			t.Fatalf("move %s: %v", mv, err)
		}
	}
}

// ByPosition orders positions by row then column, for AssertSameElements.
func ByPosition(a, b chess.Position) bool {
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.X < b.X
}

// ByOffset orders offsets by DY then DX, for AssertSameElements.
func ByOffset(a, b chess.Offset) bool {
	if a.DY != b.DY {
		return a.DY < b.DY
	}
	return a.DX < b.DX
}
