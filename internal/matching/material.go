// Package matching provides position filtering by material balance.
package matching

import (
	"strings"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Material counts pieces per side and kind, indexed [side][kind].
type Material [2][chess.NumKinds]int

// CountMaterial counts the live pieces on b.
func CountMaterial(b *engine.Board) Material {
	var m Material
	for _, side := range []chess.Side{chess.Lower, chess.Upper} {
		for _, p := range b.Player(side).Pieces() {
			m[side][p.Kind()]++
		}
	}
	return m
}

// MaterialMatcher matches positions by material balance.
type MaterialMatcher struct {
	// Pattern like "QR:qrr" means lower has Q+R, upper has Q+2R
	pattern    string
	exactMatch bool
	want       Material
}

// NewMaterialMatcher creates a new material matcher.
// Pattern format: "QRN:qrn" (lower side pieces : upper side pieces)
// Use uppercase for the lower side (White), lowercase for the upper side
// K=King, Q=Queen, R=Rook, B=Bishop, N=Knight, P=Pawn
func NewMaterialMatcher(pattern string, exact bool) *MaterialMatcher {
	mm := &MaterialMatcher{
		pattern:    pattern,
		exactMatch: exact,
	}
	mm.parsePattern(pattern)
	return mm
}

// parsePattern parses a material pattern like "QR:qrr"
func (mm *MaterialMatcher) parsePattern(pattern string) {
	parts := strings.Split(pattern, ":")
	if len(parts) >= 1 {
		mm.parsePieces(parts[0], chess.Lower)
	}
	if len(parts) >= 2 {
		mm.parsePieces(parts[1], chess.Upper)
	}
}

// parsePieces counts the letters of one side; other characters are ignored.
func (mm *MaterialMatcher) parsePieces(s string, side chess.Side) {
	for _, c := range s {
		letter := byte(c)
		if side == chess.Upper {
			if letter < 'a' || letter > 'z' {
				continue
			}
			letter -= 'a' - 'A'
		} else if letter < 'A' || letter > 'Z' {
			continue
		}
		for kind := chess.Pawn; kind < chess.NumKinds; kind++ {
			if kind.Letter() == letter {
				mm.want[side][kind]++
			}
		}
	}
}

// Matches reports whether m satisfies the pattern: at least the listed
// pieces, or exactly them in exact mode.
func (mm *MaterialMatcher) Matches(m Material) bool {
	for side := range m {
		for kind := range m[side] {
			want, got := mm.want[side][kind], m[side][kind]
			if got < want {
				return false
			}
			if mm.exactMatch && got != want {
				return false
			}
		}
	}
	return true
}

// HasCriteria returns true if a material pattern is set.
func (mm *MaterialMatcher) HasCriteria() bool {
	return mm.pattern != ""
}
