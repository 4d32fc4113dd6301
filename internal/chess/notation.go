package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ParseMove splits a coordinate move such as "e2e4" or "e2-e4" into its
// source and target positions.
func ParseMove(s string) (from, to Position, err error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), "-", "")
	if len(s) != 4 {
		return Position{}, Position{}, fmt.Errorf("move %q: %w", s, errors.ErrInvalidSquare)
	}
	if from, err = ParseSquare(s[:2]); err != nil {
		return Position{}, Position{}, err
	}
	if to, err = ParseSquare(s[2:]); err != nil {
		return Position{}, Position{}, err
	}
	return from, to, nil
}

// ParseMoves parses a whitespace-separated list of coordinate moves.
func ParseMoves(s string) ([][2]Position, error) {
	fields := strings.Fields(s)
	moves := make([][2]Position, 0, len(fields))
	for _, f := range fields {
		from, to, err := ParseMove(f)
		if err != nil {
			return nil, err
		}
		moves = append(moves, [2]Position{from, to})
	}
	return moves, nil
}
