package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Move moves piece to target. The target must be one of the selectables
// offered by the latest Select of the same piece; anything else is rejected
// with ErrNotSelectable and the board is left untouched.
//
// A piece on target is captured and leaves its player's roster. The turn
// passes to the other side before the piece is relocated, the mover's check
// flag is cleared, and the new side to move has its check state recomputed.
// Capturing the opposing king ends the game: the side that lost it is left
// to move in check and checkmated.
func (b *Board) Move(piece *chess.Piece, target chess.Position) error {
	if piece == nil {
		return &errors.MoveError{Err: errors.ErrNoPiece, To: target.String(), Ply: b.ply + 1}
	}
	if piece != b.selected || !b.IsMoveSelection(target) {
		return &errors.MoveError{
			Err:  errors.ErrNotSelectable,
			From: piece.Position().String(),
			To:   target.String(),
			Ply:  b.ply + 1,
		}
	}

	newSq := b.grid[target.X][target.Y]
	from := piece.Position()
	kingTaken := false
	if captured := newSq.Piece(); captured != nil {
		owner := b.Player(captured.Side())
		owner.Remove(captured)
		kingTaken = captured == owner.King()
		b.cfg.Logf(config.Commentary, "ply %d: %s captures %s", b.ply+1, piece, captured)
	}

	b.switchStates()

	oldSq := piece.Square()
	newSq.SetPiece(piece)
	oldSq.RemovePiece()
	piece.UpdatePos(newSq)
	b.ply++
	b.cfg.Logf(config.Commentary, "ply %d: %s %s %v-%v", b.ply, piece.Side(), piece.Kind(), from, target)

	b.checkSquares = nil
	if kingTaken {
		b.endOnKingCapture()
	} else {
		b.CheckForCheck()
	}
	b.clearSelection()
	return nil
}

// endOnKingCapture marks the side to move, whose king has just been taken,
// as checkmated. It has no king left to analyse, so no check squares remain.
func (b *Board) endOnKingCapture() {
	loser := b.Player(b.ToMove())
	loser.SetCheck(true)
	loser.SetCheckMate(true)
	b.cfg.Logf(config.Commentary, "ply %d: %s king captured, %s player is checkmated", b.ply, loser.Side(), loser.Side())
}

// MoveFromTo selects the piece on from and moves it to to.
func (b *Board) MoveFromTo(from, to chess.Position) error {
	if _, err := b.Select(from); err != nil {
		return err
	}
	if err := b.Move(b.selected, to); err != nil {
		b.clearSelection()
		return err
	}
	return nil
}

// switchStates hands the turn to the other side. The mover's check flag is
// cleared: a move was accepted, so the mover is no longer in check.
func (b *Board) switchStates() {
	mover := b.Player(b.ToMove())
	next := b.Player(mover.Side().Opposite())
	mover.SetCheck(false)
	mover.SetTurn(false)
	next.SetTurn(true)
}
