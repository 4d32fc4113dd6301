package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ProcessSelectables returns the absolute squares the piece on pos can reach.
// Each call returns a fresh slice; nothing accumulates between calls.
func (b *Board) ProcessSelectables(pos chess.Position) ([]chess.Position, error) {
	p := b.PieceAt(pos)
	if p == nil {
		return nil, &errors.MoveError{Err: errors.ErrNoPiece, From: pos.String(), Ply: b.ply + 1}
	}
	return b.targets(p), nil
}

// targets translates a piece's offsets into on-board positions.
func (b *Board) targets(p *chess.Piece) []chess.Position {
	from := p.Position()
	moves := b.PossibleMoves(p)
	targets := make([]chess.Position, 0, len(moves))
	for _, move := range moves {
		if to := from.Add(move); to.InBounds() {
			targets = append(targets, to)
		}
	}
	return targets
}

// Select makes the piece on pos the current selection and returns its
// targets. Only the side to move may select. While that side is in check
// only its king may be selected, and the king is offered the check squares.
func (b *Board) Select(pos chess.Position) ([]chess.Position, error) {
	p := b.PieceAt(pos)
	if p == nil {
		return nil, &errors.MoveError{Err: errors.ErrNoPiece, From: pos.String(), Ply: b.ply + 1}
	}
	mover := b.Player(b.ToMove())
	if p.Side() != mover.Side() {
		return nil, &errors.MoveError{Err: errors.ErrWrongTurn, From: pos.String(), Ply: b.ply + 1}
	}

	var targets []chess.Position
	if mover.IsCheck() {
		if p != mover.King() {
			return nil, &errors.MoveError{Err: errors.ErrKingMustMove, From: pos.String(), Ply: b.ply + 1}
		}
		targets = b.CheckSquares()
	} else {
		targets = b.targets(p)
	}

	b.selected = p
	b.selectables = targets
	return copyPositions(targets), nil
}

// Selected returns the currently selected piece, or nil.
func (b *Board) Selected() *chess.Piece {
	return b.selected
}

// Selectables returns a copy of the targets offered for the selected piece.
func (b *Board) Selectables() []chess.Position {
	return copyPositions(b.selectables)
}

// IsMoveSelection reports whether pos is a target of the current selection.
func (b *Board) IsMoveSelection(pos chess.Position) bool {
	return containsPosition(b.selectables, pos)
}

// ClearSelection drops the current selection.
func (b *Board) ClearSelection() {
	b.clearSelection()
}

func (b *Board) clearSelection() {
	b.selected = nil
	b.selectables = nil
}

func containsPosition(positions []chess.Position, pos chess.Position) bool {
	for _, p := range positions {
		if p == pos {
			return true
		}
	}
	return false
}

func copyPositions(positions []chess.Position) []chess.Position {
	if positions == nil {
		return nil
	}
	out := make([]chess.Position, len(positions))
	copy(out, positions)
	return out
}
