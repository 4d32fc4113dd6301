package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
)

// CheckForCheck recomputes the check state of the side to move. The player
// is flagged in check when any opposing piece reaches its king's square,
// and checkmated when additionally no check square remains.
func (b *Board) CheckForCheck() {
	mover := b.Player(b.ToMove())
	opponent := b.Player(mover.Side().Opposite())

	kingPos := mover.King().Position()
	for _, p := range opponent.Pieces() {
		if containsPosition(b.targets(p), kingPos) {
			mover.SetCheck(true)
			break
		}
	}

	b.checkSquares = b.ComputeCheckSquares()
	if len(b.checkSquares) == 0 && mover.IsCheck() {
		mover.SetCheckMate(true)
	}

	switch {
	case mover.IsCheckMate():
		b.cfg.Logf(config.Commentary, "ply %d: %s player is checkmated", b.ply, mover.Side())
	case mover.IsCheck():
		b.cfg.Logf(config.Commentary, "ply %d: %s player is in check, escapes %v", b.ply, mover.Side(), b.checkSquares)
	}
}

// ComputeCheckSquares returns the targets of the side to move's king that no
// opposing piece can reach.
//
// Only king moves are considered. A check that could be answered by
// blocking or capturing with another piece still yields no squares.
func (b *Board) ComputeCheckSquares() []chess.Position {
	mover := b.Player(b.ToMove())
	opponent := b.Player(mover.Side().Opposite())

	attacked := b.Reachable(opponent.Side())
	candidates := b.targets(mover.King())
	squares := make([]chess.Position, 0, len(candidates))
	for _, pos := range candidates {
		if !attacked[pos] {
			squares = append(squares, pos)
		}
	}
	return squares
}

// Reachable returns the union of the targets of every piece of side.
func (b *Board) Reachable(side chess.Side) map[chess.Position]bool {
	reachable := make(map[chess.Position]bool)
	for _, p := range b.Player(side).Pieces() {
		for _, pos := range b.targets(p) {
			reachable[pos] = true
		}
	}
	return reachable
}

// CheckSquares returns a copy of the squares found by the latest check
// analysis.
func (b *Board) CheckSquares() []chess.Position {
	return copyPositions(b.checkSquares)
}

// IsInCheck reports whether the side to move is in check.
func (b *Board) IsInCheck() bool {
	return b.Player(b.ToMove()).IsCheck()
}

// IsCheckMate reports whether the side to move is checkmated.
func (b *Board) IsCheckMate() bool {
	return b.Player(b.ToMove()).IsCheckMate()
}
