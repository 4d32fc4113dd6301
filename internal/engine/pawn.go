package engine

import "github.com/lgbarn/chesscore-go/internal/chess"

// pawnMoves returns the forward pushes onto empty squares and the diagonal
// captures onto foe squares.
func (b *Board) pawnMoves(p *chess.Piece) []chess.Offset {
	from := p.Position()
	side := p.Side()
	var moves []chess.Offset

	// A blocked single step also blocks the double step.
	for _, move := range p.PawnForward() {
		if b.IsOccupied(from.Add(move)) {
			break
		}
		if !b.isOutOfBounds(from, move) {
			moves = append(moves, move)
		}
	}

	for _, move := range p.PawnCaptures() {
		if !b.isOutOfBounds(from, move) && b.IsFoe(from.Add(move), side) {
			moves = append(moves, move)
		}
	}
	return moves
}
