// Package session keeps many games in play at once. Each game has its own
// lock; the registry lock only guards the table of games.
package session

import (
	stderrors "errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chesscore-go/internal/analysis"
	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

// Game is a board guarded by its own mutex.
type Game struct {
	id    uuid.UUID
	mu    sync.Mutex
	board *engine.Board
}

// ID returns the game's identifier.
func (g *Game) ID() uuid.UUID {
	return g.id
}

// Registry maps game IDs to games and is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	games map[uuid.UUID]*Game
	opts  []engine.Option
	cfg   *config.Config
}

// NewRegistry creates an empty registry. Every board it creates is built
// with cfg; a nil cfg selects the defaults.
func NewRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &Registry{
		games: make(map[uuid.UUID]*Game),
		opts:  []engine.Option{engine.WithConfig(cfg)},
		cfg:   cfg,
	}
}

// NewGame starts a game from the opening layout and returns its ID.
func (r *Registry) NewGame() uuid.UUID {
	return r.add(engine.NewBoard(r.opts...))
}

// NewGameFromFEN starts a game from a FEN position and returns its ID.
func (r *Registry) NewGameFromFEN(fen string) (uuid.UUID, error) {
	b, err := engine.NewBoardFromFEN(fen, r.opts...)
	if err != nil {
		return uuid.Nil, err
	}
	return r.add(b), nil
}

func (r *Registry) add(b *engine.Board) uuid.UUID {
	g := &Game{id: uuid.New(), board: b}
	r.mu.Lock()
	r.games[g.id] = g
	r.mu.Unlock()
	r.cfg.Logf(config.Commentary, "game %s created", g.id)
	return g.id
}

// Get returns the game registered under id.
func (r *Registry) Get(id uuid.UUID) (*Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.games[id]
	if !ok {
		return nil, chesserrors.Wrapf(chesserrors.ErrUnknownGame, "game %s", id)
	}
	return g, nil
}

// Remove drops a game from the registry.
func (r *Registry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.games[id]; !ok {
		return chesserrors.Wrapf(chesserrors.ErrUnknownGame, "game %s", id)
	}
	delete(r.games, id)
	return nil
}

// Len returns the number of registered games.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// IDs returns the registered game IDs in a stable order.
func (r *Registry) IDs() []uuid.UUID {
	r.mu.RLock()
	ids := maps.Keys(r.games)
	r.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
	return ids
}

// Do runs fn with exclusive access to the game's board.
func (r *Registry) Do(id uuid.UUID, fn func(b *engine.Board) error) error {
	g, err := r.Get(id)
	if err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.board)
}

// Select makes the piece on pos the current selection of game id.
func (r *Registry) Select(id uuid.UUID, pos chess.Position) ([]chess.Position, error) {
	var targets []chess.Position
	err := r.Do(id, func(b *engine.Board) error {
		if b.IsCheckMate() {
			return gameOver(id, b, pos.String(), "")
		}
		var err error
		targets, err = b.Select(pos)
		return err
	})
	return targets, tagGame(err, id)
}

// Move plays from-to in game id. Moves after checkmate fail with
// ErrGameOver.
func (r *Registry) Move(id uuid.UUID, from, to chess.Position) error {
	err := r.Do(id, func(b *engine.Board) error {
		if b.IsCheckMate() {
			return gameOver(id, b, from.String(), to.String())
		}
		if err := b.MoveFromTo(from, to); err != nil {
			return err
		}
		if b.IsCheckMate() {
			r.cfg.Logf(config.Summary, "game %s: %s player is checkmated after %d plies", id, b.ToMove(), b.Ply())
		}
		return nil
	})
	return tagGame(err, id)
}

// Reset restores game id to the opening layout.
func (r *Registry) Reset(id uuid.UUID) error {
	return r.Do(id, func(b *engine.Board) error {
		b.Reset()
		return nil
	})
}

// Report analyses the current position of game id.
func (r *Registry) Report(id uuid.UUID) (*analysis.Report, error) {
	var report *analysis.Report
	err := r.Do(id, func(b *engine.Board) error {
		report = analysis.Analyze(b)
		return nil
	})
	return report, err
}

// FEN returns the current position of game id.
func (r *Registry) FEN(id uuid.UUID) (string, error) {
	var fen string
	err := r.Do(id, func(b *engine.Board) error {
		fen = b.FEN()
		return nil
	})
	return fen, err
}

func gameOver(id uuid.UUID, b *engine.Board, from, to string) error {
	return &chesserrors.MoveError{Err: chesserrors.ErrGameOver, From: from, To: to, Ply: b.Ply() + 1, Game: id.String()}
}

// tagGame records the game ID on a rejected move.
func tagGame(err error, id uuid.UUID) error {
	var moveErr *chesserrors.MoveError
	if stderrors.As(err, &moveErr) && moveErr.Game == "" {
		moveErr.Game = id.String()
	}
	return err
}
