// Package watchlist tracks the symbols each user follows.
package watchlist

import (
	"sync"

	"github.com/tradeai/stockbot/internal/domain"
)

// Store holds per-user watchlists in memory. Symbols are kept in
// insertion order and deduplicated. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	lists map[int64][]string
}

// NewStore returns an empty watchlist store.
func NewStore() *Store {
	return &Store{lists: make(map[int64][]string)}
}

// Add puts symbol on the user's watchlist. It reports false if the
// symbol was already present.
func (s *Store) Add(userID int64, symbol string) bool {
	symbol = domain.NormalizeSymbol(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.lists[userID] {
		if existing == symbol {
			return false
		}
	}
	s.lists[userID] = append(s.lists[userID], symbol)
	return true
}

// Remove takes symbol off the user's watchlist. It reports false if
// the symbol was not present.
func (s *Store) Remove(userID int64, symbol string) bool {
	symbol = domain.NormalizeSymbol(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[userID]
	for i, existing := range list {
		if existing == symbol {
			s.lists[userID] = append(list[:i], list[i+1:]...)
			if len(s.lists[userID]) == 0 {
				delete(s.lists, userID)
			}
			return true
		}
	}
	return false
}

// List returns a copy of the user's watchlist in insertion order.
func (s *Store) List(userID int64) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := s.lists[userID]
	out := make([]string, len(list))
	copy(out, list)
	return out
}

// Users returns the number of users with a non-empty watchlist.
func (s *Store) Users() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lists)
}
