package engine_test

import (
	"fmt"
	"testing"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/testutil"
)

// lone places a single white piece on e5, i.e. (3,3), with both kings out
// of its way.
func lone(letter byte) string {
	if letter == 'K' {
		return "8/7k/8/4K3/8/8/8/8 w - - 0 1"
	}
	return fmt.Sprintf("8/7k/8/4%c3/8/8/K7/8 w - - 0 1", letter)
}

// rayOffsets lists n steps along dir.
func rayOffsets(dir chess.Offset, n int) []chess.Offset {
	out := make([]chess.Offset, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, dir.Scale(i))
	}
	return out
}

func concat(parts ...[]chess.Offset) []chess.Offset {
	var out []chess.Offset
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestPossibleMoves_EmptyBoardGeometry(t *testing.T) {
	rook := concat(
		rayOffsets(chess.Off(-1, 0), 3), rayOffsets(chess.Off(1, 0), 4),
		rayOffsets(chess.Off(0, -1), 3), rayOffsets(chess.Off(0, 1), 4),
	)
	bishop := concat(
		rayOffsets(chess.Off(1, 1), 4), rayOffsets(chess.Off(-1, -1), 3),
		rayOffsets(chess.Off(1, -1), 3), rayOffsets(chess.Off(-1, 1), 3),
	)
	tests := []struct {
		name   string
		letter byte
		want   []chess.Offset
	}{
		{"rook", 'R', rook},
		{"bishop", 'B', bishop},
		{"queen", 'Q', concat(rook, bishop)},
		{"knight", 'N', []chess.Offset{
			{DX: 1, DY: 2}, {DX: 2, DY: 1}, {DX: -1, DY: -2}, {DX: -2, DY: -1}, {DX: -1, DY: 2}, {DX: 1, DY: -2}, {DX: 2, DY: -1}, {DX: -2, DY: 1},
		}},
		{"king", 'K', []chess.Offset{
			{DX: 1, DY: 1}, {DX: -1, DY: -1}, {DX: -1, DY: 1}, {DX: 1, DY: -1}, {DX: 1, DY: 0}, {DX: 0, DY: 1}, {DX: -1, DY: 0}, {DX: 0, DY: -1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, lone(tt.letter))
			p := b.PieceAt(chess.Pos(3, 3))
			if p == nil {
				t.Fatal("no piece on (3,3)")
			}
			got := b.PossibleMoves(p)
			testutil.AssertSameElements(t, got, tt.want, testutil.ByOffset)

			targets, err := b.ProcessSelectables(p.Position())
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(targets), len(tt.want), "target count")
		})
	}
}

func TestPossibleMoves_RookFromCenterHas14(t *testing.T) {
	b := testutil.MustBoard(t, lone('R'))
	targets, err := b.ProcessSelectables(chess.Pos(3, 3))
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(targets), 14)
}

func TestPossibleMoves_RayStopsAtFirstPiece(t *testing.T) {
	// Rook e5, friendly pawn e3, foe pawn e7.
	b := testutil.MustBoard(t, "8/4p2k/8/4R3/8/4P3/K7/8 w - - 0 1")
	targets, err := b.ProcessSelectables(testutil.MustSquare(t, "e5"))
	testutil.AssertNoError(t, err)

	want := testutil.MustSquares(t,
		"e6", "e7", // foe included, ray stops
		"e4", // friendly e3 excluded
		"a5", "b5", "c5", "d5", "f5", "g5", "h5",
	)
	testutil.AssertSameElements(t, targets, want, testutil.ByPosition)
}

func TestPossibleMoves_FoeKingDoesNotBlockRay(t *testing.T) {
	b := testutil.MustBoard(t, "8/4k3/8/4R3/8/8/K7/8 b - - 0 1")
	targets, err := b.ProcessSelectables(testutil.MustSquare(t, "e5"))
	testutil.AssertNoError(t, err)

	for _, name := range []string{"e6", "e7", "e8"} {
		testutil.AssertTrue(t, containsPos(targets, testutil.MustSquare(t, name)), "rook should reach %s", name)
	}

	// A friendly king still stops its own side's rays.
	b = testutil.MustBoard(t, "4k3/4r3/8/8/8/8/K7/8 b - - 0 1")
	targets, err = b.ProcessSelectables(testutil.MustSquare(t, "e7"))
	testutil.AssertNoError(t, err)
	testutil.AssertFalse(t, containsPos(targets, testutil.MustSquare(t, "e8")), "rook must not reach its own king")
}

func TestPossibleMoves_StepPiecesIgnoreBlockers(t *testing.T) {
	// Knight g1 behind its own pawns still jumps.
	b := testutil.MustBoard(t, "4k3/8/8/8/8/8/5PPP/4K1N1 w - - 0 1")
	targets, err := b.ProcessSelectables(testutil.MustSquare(t, "g1"))
	testutil.AssertNoError(t, err)
	testutil.AssertSameElements(t, targets, testutil.MustSquares(t, "e2", "f3", "h3"), testutil.ByPosition)

	// King e1 with a friendly pawn on e2 and a foe knight on d2.
	b = testutil.MustBoard(t, "4k3/8/8/8/8/8/3nP3/4K3 w - - 0 1")
	targets, err = b.ProcessSelectables(testutil.MustSquare(t, "e1"))
	testutil.AssertNoError(t, err)
	testutil.AssertSameElements(t, targets, testutil.MustSquares(t, "d1", "f1", "d2", "f2"), testutil.ByPosition)
}

func TestPawnMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		square string
		want   []string
	}{
		{"unmoved lower pawn", engine.InitialFEN, "e2", []string{"e3", "e4"}},
		{"unmoved upper pawn", "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b - - 0 1", "d7", []string{"d6", "d5"}},
		{"moved pawn single step", "4k3/8/8/8/4P3/8/8/4K3 w - - 0 1", "e4", []string{"e5"}},
		{"blocked directly", "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1", "e2", nil},
		{"double step blocked", "4k3/8/8/8/4n3/8/4P3/4K3 w - - 0 1", "e2", []string{"e3"}},
		{"captures foes only", "4k3/8/8/8/8/3n1N2/4P3/4K3 w - - 0 1", "e2", []string{"e3", "e4", "d3"}},
		{"no empty diagonal", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", "e2", []string{"e3", "e4"}},
		{"capture onto foe king", "8/8/8/8/8/3k4/4P3/4K3 b - - 0 1", "e2", []string{"e3", "e4", "d3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.MustBoard(t, tt.fen)
			targets, err := b.ProcessSelectables(testutil.MustSquare(t, tt.square))
			testutil.AssertNoError(t, err)
			testutil.AssertSameElements(t, targets, testutil.MustSquares(t, tt.want...), testutil.ByPosition)
		})
	}
}

func TestPawnLosesDoubleStepAfterMoving(t *testing.T) {
	b := engine.NewBoard()
	testutil.MustPlay(t, b, "d2d3", "a7a6")

	targets, err := b.ProcessSelectables(testutil.MustSquare(t, "d3"))
	testutil.AssertNoError(t, err)
	testutil.AssertSameElements(t, targets, testutil.MustSquares(t, "d4"), testutil.ByPosition)
}

func TestProcessSelectables_FreshPerCall(t *testing.T) {
	b := engine.NewBoard()
	e2 := testutil.MustSquare(t, "e2")

	first, err := b.ProcessSelectables(e2)
	testutil.AssertNoError(t, err)
	_, err = b.ProcessSelectables(testutil.MustSquare(t, "g1"))
	testutil.AssertNoError(t, err)
	second, err := b.ProcessSelectables(e2)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, second, first)
	testutil.AssertEqual(t, len(second), 2)
}

func TestProcessSelectables_EmptySquare(t *testing.T) {
	b := engine.NewBoard()
	_, err := b.ProcessSelectables(testutil.MustSquare(t, "e4"))
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoPiece)

	_, err = b.ProcessSelectables(chess.Pos(9, 9))
	testutil.AssertErrorIs(t, err, chesserrors.ErrNoPiece)
}

func TestBoundsModes(t *testing.T) {
	tests := []struct {
		name        string
		mode        config.BoundsMode
		wantOffsets int
	}{
		{"strict", config.StrictBounds, 14},
		// Every ray runs its full length: no offset leaves both axes.
		{"legacy", config.LegacyBounds, 28},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfigBuilder().WithBounds(tt.mode).Build()
			b := testutil.MustBoard(t, lone('R'), engine.WithConfig(cfg))
			rook := b.PieceAt(chess.Pos(3, 3))

			testutil.AssertEqual(t, len(b.PossibleMoves(rook)), tt.wantOffsets, "offsets")

			targets, err := b.ProcessSelectables(rook.Position())
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(targets), 14, "targets")
			for _, pos := range targets {
				testutil.AssertTrue(t, pos.InBounds(), "target %v off the board", pos)
			}
		})
	}
}

func containsPos(positions []chess.Position, pos chess.Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}
