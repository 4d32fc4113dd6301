// Package engine provides move generation, check detection and move
// application on top of the chess value types.
package engine

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// TokenFunc supplies the presentation token attached to each created piece.
type TokenFunc func(kind chess.Kind, side chess.Side) interface{}

// Placement describes one piece of a position to set up.
type Placement struct {
	Kind  chess.Kind
	Side  chess.Side
	Pos   chess.Position
	Moved bool
}

// Board is a game in progress: the grid, both players, the current
// selection and the result of the latest check analysis.
//
// A Board is not safe for concurrent use.
type Board struct {
	grid  [chess.BoardSize][chess.BoardSize]*chess.Square
	upper *chess.Player
	lower *chess.Player

	// Piece chosen by Select and the targets offered for it.
	selected    *chess.Piece
	selectables []chess.Position

	// Squares that resolve a check against the side to move.
	checkSquares []chess.Position

	ply int

	// Full-move number and side to move at setup; FEN counts moves from them.
	firstMove int
	firstSide chess.Side

	cfg    *config.Config
	tokens TokenFunc
}

// Option configures a Board.
type Option func(*Board)

// WithConfig sets the configuration used for bounds checking and logging.
func WithConfig(cfg *config.Config) Option {
	return func(b *Board) {
		if cfg != nil {
			b.cfg = cfg
		}
	}
}

// WithTokens sets the function that supplies presentation tokens.
func WithTokens(fn TokenFunc) Option {
	return func(b *Board) {
		b.tokens = fn
	}
}

// backRank lists the back-row kinds from x=0 to x=7 for both sides.
var backRank = []chess.Kind{
	chess.Rook, chess.Knight, chess.Bishop, chess.King,
	chess.Queen, chess.Bishop, chess.Knight, chess.Rook,
}

// Starting rows.
const (
	upperBackRow = 0
	upperPawnRow = 1
	lowerPawnRow = 6
	lowerBackRow = 7
)

// PawnStartRow returns the row a side's pawns start on.
func PawnStartRow(side chess.Side) int {
	if side == chess.Upper {
		return upperPawnRow
	}
	return lowerPawnRow
}

// StandardPlacements returns the opening layout: pawns first, then the back
// row, upper side before lower side.
func StandardPlacements() []Placement {
	placements := make([]Placement, 0, 4*chess.BoardSize)
	for _, side := range []chess.Side{chess.Upper, chess.Lower} {
		pawnRow, backRow := upperPawnRow, upperBackRow
		if side == chess.Lower {
			pawnRow, backRow = lowerPawnRow, lowerBackRow
		}
		for x := 0; x < chess.BoardSize; x++ {
			placements = append(placements, Placement{Kind: chess.Pawn, Side: side, Pos: chess.Pos(x, pawnRow)})
		}
		for x, kind := range backRank {
			placements = append(placements, Placement{Kind: kind, Side: side, Pos: chess.Pos(x, backRow)})
		}
	}
	return placements
}

// NewBoard creates a board set up in the opening layout, lower side to move.
func NewBoard(opts ...Option) *Board {
	b := newBoard(opts...)
	b.Reset()
	return b
}

// NewBoardFromPlacements creates a board holding exactly the given pieces with
// toMove to play. Each side needs exactly one king. The check state of the
// side to move is computed before returning.
func NewBoardFromPlacements(placements []Placement, toMove chess.Side, opts ...Option) (*Board, error) {
	b := newBoard(opts...)
	if err := b.setup(placements, toMove); err != nil {
		return nil, err
	}
	b.CheckForCheck()
	return b, nil
}

func newBoard(opts ...Option) *Board {
	b := &Board{cfg: config.NewConfig()}
	for _, opt := range opts {
		opt(b)
	}
	for x := 0; x < chess.BoardSize; x++ {
		for y := 0; y < chess.BoardSize; y++ {
			b.grid[x][y] = chess.NewSquare(chess.Pos(x, y))
		}
	}
	return b
}

// Reset restores the opening layout in place and gives the lower side the move.
func (b *Board) Reset() {
	if err := b.setup(StandardPlacements(), chess.Lower); err != nil {
		panic(fmt.Sprintf("engine: standard layout rejected: %v", err))
	}
	b.CheckForCheck()
	b.cfg.Logf(config.Commentary, "board reset")
}

// setup clears the grid and game state and places the given pieces.
func (b *Board) setup(placements []Placement, toMove chess.Side) error {
	var (
		pieces     [2][]*chess.Piece
		kings      [2]*chess.Piece
		kingCounts [2]int
		seen       = make(map[chess.Position]bool, len(placements))
	)
	for _, pl := range placements {
		if !pl.Pos.InBounds() {
			return fmt.Errorf("piece at %v: %w", pl.Pos, errors.ErrInvalidPosition)
		}
		if seen[pl.Pos] {
			return fmt.Errorf("two pieces on %v: %w", pl.Pos, errors.ErrInvalidPosition)
		}
		if pl.Kind < chess.Pawn || pl.Kind >= chess.NumKinds {
			return fmt.Errorf("piece kind %d on %v: %w", pl.Kind, pl.Pos, errors.ErrInvalidPosition)
		}
		if pl.Side != chess.Lower && pl.Side != chess.Upper {
			return fmt.Errorf("piece side %d on %v: %w", pl.Side, pl.Pos, errors.ErrInvalidPosition)
		}
		seen[pl.Pos] = true
		if pl.Kind == chess.King {
			kingCounts[pl.Side]++
			if kingCounts[pl.Side] > 1 {
				return fmt.Errorf("second %s king on %v: %w", pl.Side, pl.Pos, errors.ErrInvalidPosition)
			}
		}
	}
	for _, side := range []chess.Side{chess.Lower, chess.Upper} {
		if kingCounts[side] == 0 {
			return fmt.Errorf("no %s king: %w", side, errors.ErrInvalidPosition)
		}
	}

	for x := range b.grid {
		for y := range b.grid[x] {
			b.grid[x][y].RemovePiece()
		}
	}
	for _, pl := range placements {
		opts := []chess.PieceOption{chess.WithMoved(pl.Moved)}
		if b.tokens != nil {
			opts = append(opts, chess.WithToken(b.tokens(pl.Kind, pl.Side)))
		}
		p := chess.NewPiece(pl.Kind, pl.Side, b.grid[pl.Pos.X][pl.Pos.Y], opts...)
		pieces[pl.Side] = append(pieces[pl.Side], p)
		if pl.Kind == chess.King {
			kings[pl.Side] = p
		}
	}

	b.upper = chess.NewPlayer(chess.Upper, pieces[chess.Upper], kings[chess.Upper])
	b.lower = chess.NewPlayer(chess.Lower, pieces[chess.Lower], kings[chess.Lower])
	b.Player(toMove).SetTurn(true)
	b.clearSelection()
	b.checkSquares = nil
	b.ply = 0
	b.firstMove = 1
	b.firstSide = toMove
	return nil
}

// Grid returns the 8×8 grid indexed [x][y]. The squares are shared with the
// board; only the array is copied.
func (b *Board) Grid() [chess.BoardSize][chess.BoardSize]*chess.Square {
	return b.grid
}

// Square returns the square at pos, or nil when pos is off the board.
func (b *Board) Square(pos chess.Position) *chess.Square {
	if !pos.InBounds() {
		return nil
	}
	return b.grid[pos.X][pos.Y]
}

// PieceAt returns the piece on pos, or nil.
func (b *Board) PieceAt(pos chess.Position) *chess.Piece {
	if sq := b.Square(pos); sq != nil {
		return sq.Piece()
	}
	return nil
}

// UpperPlayer returns the player that starts on rows 0 and 1.
func (b *Board) UpperPlayer() *chess.Player {
	return b.upper
}

// LowerPlayer returns the player that starts on rows 6 and 7.
func (b *Board) LowerPlayer() *chess.Player {
	return b.lower
}

// Player returns the player of the given side.
func (b *Board) Player(side chess.Side) *chess.Player {
	if side == chess.Upper {
		return b.upper
	}
	return b.lower
}

// ToMove returns the side whose turn it is.
func (b *Board) ToMove() chess.Side {
	if b.upper.IsTurn() {
		return chess.Upper
	}
	return chess.Lower
}

// Ply returns the number of moves applied since setup.
func (b *Board) Ply() int {
	return b.ply
}

// Config returns the board's configuration.
func (b *Board) Config() *config.Config {
	return b.cfg
}

// IsOccupied reports whether any live piece stands on pos.
func (b *Board) IsOccupied(pos chess.Position) bool {
	return b.rosterPieceAt(b.upper, pos) != nil || b.rosterPieceAt(b.lower, pos) != nil
}

// IsFoe reports whether pos holds a piece of the side opposing side.
// Foe is judged from the mover's point of view, not the occupant's.
func (b *Board) IsFoe(pos chess.Position, side chess.Side) bool {
	return b.rosterPieceAt(b.Player(side.Opposite()), pos) != nil
}

// IsFoeKing reports whether pos holds the king opposing side. A captured
// king is no longer on any square.
func (b *Board) IsFoeKing(pos chess.Position, side chess.Side) bool {
	king := b.Player(side.Opposite()).King()
	return king.Position() == pos && b.PieceAt(pos) == king
}

func (b *Board) rosterPieceAt(pl *chess.Player, pos chess.Position) *chess.Piece {
	for _, p := range pl.Pieces() {
		if p.Position() == pos {
			return p
		}
	}
	return nil
}
