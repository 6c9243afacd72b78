package game

import (
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/justinabrahms/chessrules/internal/chess"
	"github.com/rs/zerolog/log"
)

// Store is an in-memory registry of games keyed by id.
type Store struct {
	mu        sync.RWMutex
	games     map[string]*Game
	maxActive int
}

// NewStore returns a Store holding at most maxActive games; zero means no
// limit.
func NewStore(maxActive int) *Store {
	return &Store{
		games:     make(map[string]*Game),
		maxActive: maxActive,
	}
}

// Create starts a new game from the standard position.
func (s *Store) Create() (*Game, error) {
	return s.CreateFromBoard(chess.NewStandardBoard())
}

func (s *Store) CreateFromBoard(board *chess.Board) (*Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxActive > 0 && len(s.games) >= s.maxActive {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManyGames, s.maxActive)
	}

	g := NewFromBoard(uuid.New().String(), board)
	s.games[g.id] = g

	log.Info().Str("gameID", g.id).Int("active", len(s.games)).Msg("Game created")
	return g, nil
}

func (s *Store) Get(id string) (*Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(s.games, id)
	return nil
}

// List returns all games, oldest first.
func (s *Store) List() []*Game {
	s.mu.RLock()
	games := make([]*Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, g)
	}
	s.mu.RUnlock()

	sort.Slice(games, func(i, j int) bool {
		if games[i].createdAt.Equal(games[j].createdAt) {
			return games[i].id < games[j].id
		}
		return games[i].createdAt.Before(games[j].createdAt)
	})
	return games
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
