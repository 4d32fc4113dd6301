package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// InitialFEN is the FEN string for the opening layout.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// FEN maps White to the lower side and Black to the upper side; see
// chess.FromFileRank for the square mapping.
var (
	kindToType = map[chess.Kind]nchess.PieceType{
		chess.Pawn:   nchess.Pawn,
		chess.Knight: nchess.Knight,
		chess.Bishop: nchess.Bishop,
		chess.Rook:   nchess.Rook,
		chess.Queen:  nchess.Queen,
		chess.King:   nchess.King,
	}
	typeToKind = map[nchess.PieceType]chess.Kind{
		nchess.Pawn:   chess.Pawn,
		nchess.Knight: chess.Knight,
		nchess.Bishop: chess.Bishop,
		nchess.Rook:   chess.Rook,
		nchess.Queen:  chess.Queen,
		nchess.King:   chess.King,
	}
)

func sideToColor(side chess.Side) nchess.Color {
	if side == chess.Upper {
		return nchess.Black
	}
	return nchess.White
}

func colorToSide(c nchess.Color) chess.Side {
	if c == nchess.Black {
		return chess.Upper
	}
	return chess.Lower
}

// NewBoardFromFEN creates a board from a FEN string. Castling, en passant and
// the halfmove clock are accepted but ignored; the full-move number, when
// present, is kept and advanced by later moves. Pawns off their starting row
// are treated as having moved.
func NewBoardFromFEN(fen string, opts ...Option) (*Board, error) {
	fields := strings.Fields(fen)
	if len(fields) == 0 {
		return nil, &errors.PositionError{Err: errors.ErrInvalidFEN, Field: "empty FEN string"}
	}
	if len(fields) < 2 || len(fields) > 6 {
		return nil, &errors.PositionError{
			Err:   errors.Wrapf(errors.ErrInvalidFEN, "expected 2 to 6 fields, got %d", len(fields)),
			Input: fen,
		}
	}

	var board nchess.Board
	if err := board.UnmarshalText([]byte(fields[0])); err != nil {
		return nil, &errors.PositionError{Err: errors.Wrap(errors.ErrInvalidFEN, err.Error()), Input: fen, Field: "piece placement"}
	}

	var toMove chess.Side
	switch fields[1] {
	case "w":
		toMove = chess.Lower
	case "b":
		toMove = chess.Upper
	default:
		return nil, &errors.PositionError{
			Err:   errors.Wrapf(errors.ErrInvalidFEN, "side to move %q", fields[1]),
			Input: fen,
			Field: "active color",
		}
	}

	firstMove := 1
	if len(fields) == 6 {
		n, err := strconv.Atoi(fields[5])
		if err != nil || n < 1 {
			return nil, &errors.PositionError{
				Err:   errors.Wrapf(errors.ErrInvalidFEN, "full-move number %q", fields[5]),
				Input: fen,
				Field: "fullmove number",
			}
		}
		firstMove = n
	}

	placements, err := placementsFromSquareMap(board.SquareMap())
	if err != nil {
		return nil, &errors.PositionError{Err: err, Input: fen, Field: "piece placement"}
	}

	b, err := NewBoardFromPlacements(placements, toMove, opts...)
	if err != nil {
		return nil, &errors.PositionError{Err: err, Input: fen}
	}
	b.firstMove = firstMove
	return b, nil
}

// placementsFromSquareMap converts a decoded board into placements ordered by
// row then column so rosters come out in a stable order.
func placementsFromSquareMap(squares map[nchess.Square]nchess.Piece) ([]Placement, error) {
	placements := make([]Placement, 0, len(squares))
	for sq, pc := range squares {
		kind, ok := typeToKind[pc.Type()]
		if !ok {
			return nil, fmt.Errorf("square %s: %w", sq, errors.ErrInvalidFEN)
		}
		side := colorToSide(pc.Color())
		pos := chess.FromFileRank(int(sq.File()), int(sq.Rank()))
		placements = append(placements, Placement{
			Kind:  kind,
			Side:  side,
			Pos:   pos,
			Moved: kind == chess.Pawn && pos.Y != PawnStartRow(side),
		})
	}
	sort.Slice(placements, func(i, j int) bool {
		if placements[i].Pos.Y != placements[j].Pos.Y {
			return placements[i].Pos.Y < placements[j].Pos.Y
		}
		return placements[i].Pos.X < placements[j].Pos.X
	})
	return placements, nil
}

// nchessBoard encodes the live pieces as a decoded board.
func (b *Board) nchessBoard() *nchess.Board {
	squares := make(map[nchess.Square]nchess.Piece, 32)
	for _, pl := range []*chess.Player{b.upper, b.lower} {
		for _, p := range pl.Pieces() {
			pos := p.Position()
			sq := nchess.NewSquare(nchess.File(chess.MaxCoord-pos.X), nchess.Rank(chess.MaxCoord-pos.Y))
			squares[sq] = nchess.NewPiece(kindToType[p.Kind()], sideToColor(p.Side()))
		}
	}
	return nchess.NewBoard(squares)
}

// FEN encodes the position. Castling and en passant are always "-" and the
// halfmove clock is always 0.
func (b *Board) FEN() string {
	turn := "w"
	if b.ToMove() == chess.Upper {
		turn = "b"
	}
	return fmt.Sprintf("%s %s - - 0 %d", b.nchessBoard().String(), turn, b.FullMove())
}

// FullMove returns the full-move number, which goes up after each upper move.
func (b *Board) FullMove() int {
	plies := b.ply
	if b.firstSide == chess.Upper {
		plies++
	}
	return b.firstMove + plies/2
}

// Diagram returns a text drawing of the board from the lower side's view.
func (b *Board) Diagram() string {
	return b.nchessBoard().Draw()
}
