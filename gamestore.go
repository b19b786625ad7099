package gofish

import (
	"errors"
	"fmt"
	"sync"
)

var ErrUnknownGameID = errors.New("unknown game ID")

// GameStore maps game IDs to live games
type GameStore interface {
	FindGame(gameID string) *Game
	AddGame(gameID string, game *Game) error
	RemoveGame(gameID string)
}

// InMemoryGameStore holds games for the lifetime of the process
type InMemoryGameStore struct {
	mu    sync.RWMutex
	games map[string]*Game
}

// NewInMemoryGameStore constructs an InMemoryGameStore
func NewInMemoryGameStore() *InMemoryGameStore {
	return &InMemoryGameStore{
		games: map[string]*Game{},
	}
}

func (s *InMemoryGameStore) FindGame(gameID string) *Game {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.games[gameID]
}

func (s *InMemoryGameStore) AddGame(gameID string, game *Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[gameID]; exists {
		return fmt.Errorf("game with id %s already exists", gameID)
	}
	s.games[gameID] = game
	return nil
}

func (s *InMemoryGameStore) RemoveGame(gameID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, gameID)
}
