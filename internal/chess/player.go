package chess

// Player groups one side's pieces and tracks its turn and check state.
type Player struct {
	side      Side
	pieces    []*Piece
	king      *Piece
	turn      bool
	check     bool
	checkMate bool
}

// NewPlayer creates a player owning pieces. king must be one of them.
func NewPlayer(side Side, pieces []*Piece, king *Piece) *Player {
	return &Player{side: side, pieces: pieces, king: king}
}

// Side returns the side the player controls.
func (pl *Player) Side() Side {
	return pl.side
}

// Pieces returns the live roster. Callers must not modify it.
func (pl *Player) Pieces() []*Piece {
	return pl.pieces
}

// King returns the player's king.
func (pl *Player) King() *Piece {
	return pl.king
}

// Remove drops a captured piece from the roster. It reports whether the
// piece was present.
func (pl *Player) Remove(p *Piece) bool {
	for i, q := range pl.pieces {
		if q == p {
			pl.pieces = append(pl.pieces[:i:i], pl.pieces[i+1:]...)
			return true
		}
	}
	return false
}

// Owns reports whether p is in the roster.
func (pl *Player) Owns(p *Piece) bool {
	for _, q := range pl.pieces {
		if q == p {
			return true
		}
	}
	return false
}

func (pl *Player) IsTurn() bool      { return pl.turn }
func (pl *Player) SetTurn(turn bool) { pl.turn = turn }

func (pl *Player) IsCheck() bool       { return pl.check }
func (pl *Player) SetCheck(check bool) { pl.check = check }

func (pl *Player) IsCheckMate() bool           { return pl.checkMate }
func (pl *Player) SetCheckMate(checkMate bool) { pl.checkMate = checkMate }
