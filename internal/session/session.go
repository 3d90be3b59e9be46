// Package session keeps concurrent games addressed by generated ids.
package session

import (
	"fmt"
	"sort"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// idWords is the number of words in a generated session id.
const idWords = 2

type entry struct {
	mu   sync.Mutex
	game *game.Game
	fen  string
}

// Store holds games by session id. A game is only touched while its entry
// lock is held, so different sessions proceed in parallel.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*entry
	opts     []game.Option
	log      zerolog.Logger
}

// NewStore creates an empty store. opts are applied to every new game.
func NewStore(log zerolog.Logger, opts ...game.Option) *Store {
	return &Store{
		sessions: make(map[string]*entry),
		opts:     opts,
		log:      log,
	}
}

// Create starts a game from fen, or the standard position when fen is empty,
// and returns its id.
func (s *Store) Create(fen string) (string, error) {
	g, err := s.newGame(fen)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	id := s.uniqueID()
	s.sessions[id] = &entry{game: g, fen: fen}
	s.mu.Unlock()

	s.log.Info().
		Str("session", id).
		Str("fen", g.FEN()).
		Msg("session created")
	return id, nil
}

func (s *Store) newGame(fen string) (*game.Game, error) {
	if fen == "" {
		return game.New(s.opts...), nil
	}
	return game.FromFEN(fen, s.opts...)
}

// uniqueID must be called with s.mu held.
func (s *Store) uniqueID() string {
	base := petname.Generate(idWords, "-")
	id := base
	for n := 2; ; n++ {
		if _, taken := s.sessions[id]; !taken {
			return id
		}
		id = fmt.Sprintf("%s-%d", base, n)
	}
}

func (s *Store) lookup(id string) (*entry, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("session %q: %w", id, errors.ErrSessionNotFound)
	}
	return e, nil
}

// Destinations lists the squares the piece on from may move to.
func (s *Store) Destinations(id string, from chess.Square) ([]chess.Square, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.LegalDestinations(from)
}

// Move applies a move and returns the resulting report. A rejected move
// leaves the game unchanged.
func (s *Store) Move(id string, from, to chess.Square, promotion chess.Kind) (game.Report, error) {
	e, err := s.lookup(id)
	if err != nil {
		return game.Report{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	m, err := e.game.ApplyMove(from, to, promotion)
	if err != nil {
		s.log.Debug().
			Str("session", id).
			Str("from", from.String()).
			Str("to", to.String()).
			Err(err).
			Msg("move rejected")
		return game.Report{}, err
	}

	s.log.Info().
		Str("session", id).
		Str("from", m.From.String()).
		Str("to", m.To.String()).
		Stringer("status", e.game.Status()).
		Msg("move applied")
	return e.game.Report(), nil
}

// Report returns the current state of a session.
func (s *Store) Report(id string) (game.Report, error) {
	e, err := s.lookup(id)
	if err != nil {
		return game.Report{}, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Report(), nil
}

// Game returns a copy of the session's game.
func (s *Store) Game(id string) (*game.Game, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.game.Clone(), nil
}

// Reset returns a session to the position it was created with.
func (s *Store) Reset(id string) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}
	g, err := s.newGame(e.fen)
	if err != nil {
		return err
	}
	e.mu.Lock()
	e.game = g
	e.mu.Unlock()

	s.log.Info().Str("session", id).Msg("session reset")
	return nil
}

// Delete removes a session.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	_, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return fmt.Errorf("session %q: %w", id, errors.ErrSessionNotFound)
	}
	s.log.Info().Str("session", id).Msg("session deleted")
	return nil
}

// IDs returns the session ids in sorted order.
func (s *Store) IDs() []string {
	s.mu.RLock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
