package chess

import "fmt"

// Piece is one of the six chess piece variants. The variant is a closed
// set: behaviour that differs per variant is selected by switching on Kind
// rather than through an interface.
type Piece struct {
	kind   Kind
	side   Side
	square *Square
	moved  bool
	token  interface{} // Rendering attachment; never read by the engine
}

// PieceOption configures a Piece at construction.
type PieceOption func(*Piece)

// WithToken attaches an opaque presentation token (an icon handle, say).
func WithToken(token interface{}) PieceOption {
	return func(p *Piece) {
		p.token = token
	}
}

// WithMoved marks the piece as having moved already. Only pawns care.
func WithMoved(moved bool) PieceOption {
	return func(p *Piece) {
		p.moved = moved
	}
}

// NewPiece creates a piece standing on sq and ties sq to it.
func NewPiece(kind Kind, side Side, sq *Square, opts ...PieceOption) *Piece {
	p := &Piece{kind: kind, side: side, square: sq}
	for _, opt := range opts {
		opt(p)
	}
	sq.SetPiece(p)
	return p
}

// Kind returns the variant of the piece.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Side returns the side the piece belongs to.
func (p *Piece) Side() Side {
	return p.side
}

// IsUpper reports whether the piece belongs to the upper player.
func (p *Piece) IsUpper() bool {
	return p.side == Upper
}

// Square returns the square the piece stands on.
func (p *Piece) Square() *Square {
	return p.square
}

// Position returns the coordinates of the piece.
func (p *Piece) Position() Position {
	return p.square.Position()
}

// HasMoved reports whether the piece has made a move.
func (p *Piece) HasMoved() bool {
	return p.moved
}

// Token returns the presentation token supplied at construction.
func (p *Piece) Token() interface{} {
	return p.token
}

// UpdatePos detaches the piece from its old square and points it at newSq.
// The caller places the piece on newSq. A pawn loses its double step here.
func (p *Piece) UpdatePos(newSq *Square) {
	if p.square != nil && p.square.Piece() == p {
		p.square.RemovePiece()
	}
	p.square = newSq
	p.moved = true
}

// String returns a short description such as "upper Knight@g8".
func (p *Piece) String() string {
	return fmt.Sprintf("%s %s@%s", p.side, p.kind, p.Position())
}

// Direction vectors for the sliding pieces.
var (
	diagonalDirs   = []Offset{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}}
	orthogonalDirs = []Offset{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
)

// Step sets for the non-sliding pieces.
var (
	knightSteps = []Offset{{1, 2}, {2, 1}, {-1, -2}, {-2, -1}, {-1, 2}, {1, -2}, {2, -1}, {-2, 1}}
	kingSteps   = []Offset{{1, 1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 0}, {0, 1}, {-1, 0}, {0, -1}}
)

// rayTemplates holds, per sliding kind, one ray per direction with offsets
// in increasing distance.
var rayTemplates = [NumKinds][][]Offset{
	Bishop: buildRays(diagonalDirs),
	Rook:   buildRays(orthogonalDirs),
	Queen:  buildRays(append(append([]Offset{}, diagonalDirs...), orthogonalDirs...)),
}

func buildRays(dirs []Offset) [][]Offset {
	rays := make([][]Offset, 0, len(dirs))
	for _, dir := range dirs {
		ray := make([]Offset, 0, MaxCoord)
		for n := 1; n <= MaxCoord; n++ {
			ray = append(ray, dir.Scale(n))
		}
		rays = append(rays, ray)
	}
	return rays
}

// IsSliding reports whether the kind moves along rays.
func (k Kind) IsSliding() bool {
	return k == Bishop || k == Rook || k == Queen
}

// Rays returns the ray templates of a sliding piece, nil otherwise.
// The returned slices are shared and must not be modified.
func (p *Piece) Rays() [][]Offset {
	return rayTemplates[p.kind]
}

// Steps returns the step offsets of a knight or king, nil otherwise.
// The returned slice is shared and must not be modified.
func (p *Piece) Steps() []Offset {
	switch p.kind {
	case Knight:
		return knightSteps
	case King:
		return kingSteps
	}
	return nil
}

// PawnForward returns the forward offsets of a pawn in increasing distance:
// one step, plus a double step before the pawn's first move.
func (p *Piece) PawnForward() []Offset {
	f := p.side.Forward()
	if p.moved {
		return []Offset{{0, f}}
	}
	return []Offset{{0, f}, {0, 2 * f}}
}

// PawnCaptures returns the two diagonal capture offsets of a pawn.
func (p *Piece) PawnCaptures() []Offset {
	f := p.side.Forward()
	return []Offset{{1, f}, {-1, f}}
}
