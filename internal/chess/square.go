package chess

// Square is a cell of the board grid, optionally occupied by one piece.
// Squares are allocated once per board and never replaced.
type Square struct {
	pos   Position
	piece *Piece
}

// NewSquare creates an empty square at the given position.
func NewSquare(pos Position) *Square {
	return &Square{pos: pos}
}

// SetPiece places p on the square, replacing any previous occupant.
func (s *Square) SetPiece(p *Piece) {
	s.piece = p
}

// Piece returns the occupant, or nil.
func (s *Square) Piece() *Piece {
	return s.piece
}

// RemovePiece clears the occupant.
func (s *Square) RemovePiece() {
	s.piece = nil
}

// HasPiece reports whether the square is occupied.
func (s *Square) HasPiece() bool {
	return s.piece != nil
}

// Equals compares coordinates only; the occupant is ignored.
func (s *Square) Equals(other *Square) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.pos == other.pos
}

// Position returns the square's coordinates.
func (s *Square) Position() Position {
	return s.pos
}

// X returns the column index.
func (s *Square) X() int {
	return s.pos.X
}

// Y returns the row index.
func (s *Square) Y() int {
	return s.pos.Y
}
