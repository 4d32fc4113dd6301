package engine

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
)

// PossibleMoves returns the relative offsets the piece may move by in the
// current position. Offsets are relative to the piece's square; use
// ProcessSelectables for absolute targets.
//
// Rays stop at the board edge and at the first occupied square, which is
// included only when it holds a foe. The opposing king does not stop a ray:
// its square is included and the ray carries on behind it, so a king in
// check cannot retreat along the checking line.
func (b *Board) PossibleMoves(p *chess.Piece) []chess.Offset {
	switch p.Kind() {
	case chess.Pawn:
		return b.pawnMoves(p)
	case chess.Knight, chess.King:
		return b.stepMoves(p)
	case chess.Bishop, chess.Rook, chess.Queen:
		return b.slidingMoves(p)
	}
	return nil
}

// slidingMoves walks each ray of a bishop, rook or queen.
func (b *Board) slidingMoves(p *chess.Piece) []chess.Offset {
	from := p.Position()
	side := p.Side()
	var moves []chess.Offset
	for _, ray := range p.Rays() {
		for _, move := range ray {
			if b.isOutOfBounds(from, move) {
				break
			}
			to := from.Add(move)
			if b.IsOccupied(to) && !b.IsFoeKing(to, side) {
				if b.IsFoe(to, side) {
					moves = append(moves, move)
				}
				break
			}
			moves = append(moves, move)
		}
	}
	return moves
}

// stepMoves tests each knight or king offset independently.
func (b *Board) stepMoves(p *chess.Piece) []chess.Offset {
	from := p.Position()
	side := p.Side()
	var moves []chess.Offset
	for _, move := range p.Steps() {
		if b.isOutOfBounds(from, move) {
			continue
		}
		to := from.Add(move)
		if !b.IsOccupied(to) || b.IsFoe(to, side) {
			moves = append(moves, move)
		}
	}
	return moves
}

// isOutOfBounds reports whether applying move to from leaves the board
// under the configured bounds mode.
func (b *Board) isOutOfBounds(from chess.Position, move chess.Offset) bool {
	to := from.Add(move)
	xOut := to.X < chess.MinCoord || to.X > chess.MaxCoord
	yOut := to.Y < chess.MinCoord || to.Y > chess.MaxCoord
	if b.cfg.Bounds == config.LegacyBounds {
		return xOut && yOut
	}
	return xOut || yOut
}
