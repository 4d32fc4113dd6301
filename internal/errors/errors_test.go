package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrNoPiece", ErrNoPiece, ErrNoPiece},
		{"ErrNotSelectable", ErrNotSelectable, ErrNotSelectable},
		{"ErrKingMustMove", ErrKingMustMove, ErrKingMustMove},
		{"ErrWrongTurn", ErrWrongTurn, ErrWrongTurn},
		{"ErrGameOver", ErrGameOver, ErrGameOver},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidPosition", ErrInvalidPosition, ErrInvalidPosition},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrUnknownGame", ErrUnknownGame, ErrUnknownGame},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrNoPiece, ErrNotSelectable, ErrKingMustMove, ErrWrongTurn, ErrGameOver, ErrInvalidFEN,
		ErrInvalidPosition, ErrInvalidSquare, ErrUnknownGame, ErrInvalidConfig,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:  ErrNotSelectable,
				From: "e2",
				To:   "e5",
				Ply:  3,
				Game: "abc",
			},
			contains: []string{"game abc", "ply 3", "e2-e5", "not a selectable"},
		},
		{
			name:     "source only",
			err:      &MoveError{Err: ErrNoPiece, From: "d4"},
			contains: []string{"from d4", "no piece"},
		},
		{
			name:     "bare",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"game is over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrWrongTurn, From: "e7", Ply: 1}
	wrapped := fmt.Errorf("select failed: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.From != "e7" {
		t.Errorf("extracted.From = %q, want %q", extracted.From, "e7")
	}
	if !errors.Is(wrapped, ErrWrongTurn) {
		t.Error("errors.Is(wrapped, ErrWrongTurn) = false, want true")
	}
}

// TestPositionError_Error verifies PositionError formatting and unwrapping
func TestPositionError_Error(t *testing.T) {
	err := &PositionError{
		Err:   ErrInvalidFEN,
		Input: "8/8/8 w",
		Field: "piece placement",
		Line:  12,
	}

	msg := err.Error()
	for _, s := range []string{"line 12", "piece placement", "8/8/8 w", "invalid FEN"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(err, ErrInvalidFEN) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading start position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading start position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrNotSelectable, "ply %d", 15)

	if !errors.Is(wrapped, ErrNotSelectable) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
