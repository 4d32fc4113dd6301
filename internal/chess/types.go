// Package chess provides the core value types of the rules engine: board
// coordinates, squares, pieces and players.
package chess

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// Side identifies one of the two players by the half of the board it starts on.
type Side int

const (
	Lower Side = iota // Starts on rows 6 and 7, moves first
	Upper             // Starts on rows 0 and 1
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == Upper {
		return "upper"
	}
	return "lower"
}

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Upper {
		return Lower
	}
	return Upper
}

// Forward returns the row direction pawns of this side advance in.
func (s Side) Forward() int {
	if s == Upper {
		return 1
	}
	return -1
}

// Kind is the variant of a piece.
type Kind int

const (
	Pawn Kind = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a kind.
func (k Kind) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// Board dimensions.
const (
	BoardSize = 8
	MinCoord  = 0
	MaxCoord  = BoardSize - 1
)

// Position is an absolute cell on the board.
type Position struct {
	X, Y int
}

// Offset is a relative move vector. It is never a board cell.
type Offset struct {
	DX, DY int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position {
	return Position{X: x, Y: y}
}

// Off is shorthand for Offset{DX: dx, DY: dy}.
func Off(dx, dy int) Offset {
	return Offset{DX: dx, DY: dy}
}

// Add translates the position by an offset. The result may lie off the board.
func (p Position) Add(o Offset) Position {
	return Position{X: p.X + o.DX, Y: p.Y + o.DY}
}

// Sub returns the offset that carries q onto p.
func (p Position) Sub(q Position) Offset {
	return Offset{DX: p.X - q.X, DY: p.Y - q.Y}
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.X >= MinCoord && p.X <= MaxCoord && p.Y >= MinCoord && p.Y <= MaxCoord
}

// Scale multiplies an offset by n.
func (o Offset) Scale(n int) Offset {
	return Offset{DX: o.DX * n, DY: o.DY * n}
}

// Square names use the standard diagram seen from the lower player:
// the lower player is White, file 'a' is X=7 and rank '1' is Y=7.
const (
	fileBase = 'h'
	rankBase = '8'
)

// String returns the algebraic name of the position, e.g. "e2".
func (p Position) String() string {
	if !p.InBounds() {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return string([]byte{byte(fileBase - p.X), byte(rankBase - p.Y)})
}

// File returns the file letter of the position.
func (p Position) File() byte {
	return byte(fileBase - p.X)
}

// Rank returns the rank digit of the position.
func (p Position) Rank() byte {
	return byte(rankBase - p.Y)
}

// FromFileRank converts a zero-based file (a=0) and rank (1=0) into a position.
func FromFileRank(file, rank int) Position {
	return Position{X: MaxCoord - file, Y: MaxCoord - rank}
}

// ParseSquare converts an algebraic square name such as "e2" into a position.
func ParseSquare(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	file, rank := s[0], s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Position{}, fmt.Errorf("square %q: %w", s, errors.ErrInvalidSquare)
	}
	return FromFileRank(int(file-'a'), int(rank-'1')), nil
}

// String returns the offset as "(dx,dy)".
func (o Offset) String() string {
	return fmt.Sprintf("(%+d,%+d)", o.DX, o.DY)
}
