// Package hashing provides position hashing and duplicate detection.
package hashing

import (
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
)

// Zobrist keys, one per (side, kind, square), plus one for the upper side
// to move. The keys come from a fixed seed so hashes are stable across runs.
var (
	zobristPieces      [2][chess.NumKinds][chess.BoardSize][chess.BoardSize]uint64
	zobristUpperToMove uint64
)

func init() {
	state := uint64(0x2545F4914F6CDD1D)
	for side := range zobristPieces {
		for kind := range zobristPieces[side] {
			for x := range zobristPieces[side][kind] {
				for y := range zobristPieces[side][kind][x] {
					zobristPieces[side][kind][x][y] = splitmix64(&state)
				}
			}
		}
	}
	zobristUpperToMove = splitmix64(&state)
}

// splitmix64 advances state and returns the next pseudo-random value.
func splitmix64(state *uint64) uint64 {
	*state += 0x9E3779B97F4A7C15
	z := *state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// GenerateZobristHash hashes the live pieces and the side to move.
func GenerateZobristHash(b *engine.Board) uint64 {
	var hash uint64
	for _, side := range []chess.Side{chess.Lower, chess.Upper} {
		for _, p := range b.Player(side).Pieces() {
			pos := p.Position()
			hash ^= zobristPieces[side][p.Kind()][pos.X][pos.Y]
		}
	}
	if b.ToMove() == chess.Upper {
		hash ^= zobristUpperToMove
	}
	return hash
}

// WeakHash is a cheap secondary hash: the sum of piece codes weighted by
// square index. It ignores the side to move.
func WeakHash(b *engine.Board) uint32 {
	var hash uint32
	for _, side := range []chess.Side{chess.Lower, chess.Upper} {
		for _, p := range b.Player(side).Pieces() {
			pos := p.Position()
			code := uint32(side)*uint32(chess.NumKinds) + uint32(p.Kind()) + 1
			hash += code * uint32(pos.Y*chess.BoardSize+pos.X+1)
		}
	}
	return hash
}

// Signature identifies a position for duplicate detection.
type Signature struct {
	Hash uint64 // Zobrist hash
	Weak uint32 // WeakHash, for additional confidence
}

// Sign computes the signature of the current position of b.
func Sign(b *engine.Board) Signature {
	return Signature{Hash: GenerateZobristHash(b), Weak: WeakHash(b)}
}

// DuplicateDetector tracks seen positions. It is not safe for concurrent
// use; feed it from the single goroutine that consumes results.
type DuplicateDetector struct {
	// hashTable maps Zobrist hashes to the positions seen with that hash
	hashTable map[uint64][]entry
	// duplicateCount tracks number of duplicates found
	duplicateCount int
	// maxCapacity limits stored signatures; 0 means unlimited
	maxCapacity int
	size        int
}

type entry struct {
	sig   Signature
	index int
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &DuplicateDetector{
		hashTable:   make(map[uint64][]entry),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records sig under index. If the position was seen before it
// returns the index it was first seen under and true.
//
// Once the detector is full, new positions are still checked but no longer
// stored.
func (d *DuplicateDetector) CheckAndAdd(sig Signature, index int) (int, bool) {
	for _, e := range d.hashTable[sig.Hash] {
		if e.sig == sig {
			d.duplicateCount++
			return e.index, true
		}
	}
	if !d.IsFull() {
		d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], entry{sig: sig, index: index})
		d.size++
	}
	return index, false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions stored.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}
