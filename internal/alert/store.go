// Package alert manages price-threshold alerts and the background
// monitor that sweeps them against live quotes.
package alert

import (
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/btree"
	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

// entry is the per-symbol B-tree item. Ordering is target price
// ascending, then ID, so a threshold sweep is a single range scan.
type entry struct {
	TargetPrice decimal.Decimal
	ID          int64
}

func entryLess(a, b entry) bool {
	if !a.TargetPrice.Equal(b.TargetPrice) {
		return a.TargetPrice.LessThan(b.TargetPrice)
	}
	return a.ID < b.ID
}

// Store holds alerts in memory with a per-symbol B-tree over active
// alerts so the monitor can find crossed thresholds without scanning
// every alert. Safe for concurrent use.
type Store struct {
	mu       sync.Mutex
	bySymbol map[string]*btree.BTreeG[entry]
	byID     map[int64]*domain.Alert
	nextID   int64
}

// NewStore returns an empty alert store.
func NewStore() *Store {
	return &Store{
		bySymbol: make(map[string]*btree.BTreeG[entry]),
		byID:     make(map[int64]*domain.Alert),
		nextID:   1,
	}
}

// Create registers a new active alert and returns a copy of it.
func (s *Store) Create(userID int64, symbol string, condition domain.AlertCondition, target decimal.Decimal) (domain.Alert, error) {
	symbol = domain.NormalizeSymbol(symbol)

	if !condition.Valid() {
		return domain.Alert{}, &domain.InvalidAlertError{Reason: "condition must be above or below"}
	}
	if !domain.ValidSymbol(symbol) {
		return domain.Alert{}, &domain.InvalidAlertError{Reason: "malformed symbol"}
	}
	if target.Sign() <= 0 {
		return domain.Alert{}, &domain.InvalidAlertError{Reason: "target price must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	a := &domain.Alert{
		ID:          s.nextID,
		UserID:      userID,
		Symbol:      symbol,
		Condition:   condition,
		TargetPrice: target,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
	s.nextID++
	s.byID[a.ID] = a
	s.tree(symbol).ReplaceOrInsert(entry{TargetPrice: a.TargetPrice, ID: a.ID})

	return *a, nil
}

// ListByUser returns copies of the user's active alerts ordered by ID.
func (s *Store) ListByUser(userID int64) []domain.Alert {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := []domain.Alert{}
	for _, a := range s.byID {
		if a.UserID == userID && a.Active {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Deactivate turns off one of the user's alerts. It returns
// domain.ErrAlertNotFound if the alert does not exist, is already
// inactive, or belongs to another user.
func (s *Store) Deactivate(userID, alertID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	a, ok := s.byID[alertID]
	if !ok || !a.Active || a.UserID != userID {
		return domain.ErrAlertNotFound
	}
	s.deactivate(a)
	return nil
}

// Triggered collects every active alert on symbol whose threshold the
// given price has crossed, deactivates them, and returns copies.
// Thresholds are inclusive.
func (s *Store) Triggered(symbol string, price decimal.Decimal) []domain.Alert {
	symbol = domain.NormalizeSymbol(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	tree, ok := s.bySymbol[symbol]
	if !ok {
		return nil
	}

	// "above" alerts fire when price rises to or past the target, so
	// every target ≤ price. "below" alerts fire when price falls to or
	// past the target, so every target ≥ price.
	var crossed []*domain.Alert
	tree.AscendLessThan(entry{TargetPrice: price, ID: math.MaxInt64}, func(e entry) bool {
		if a := s.byID[e.ID]; a.Condition == domain.AlertAbove {
			crossed = append(crossed, a)
		}
		return true
	})
	tree.DescendGreaterThan(entry{TargetPrice: price, ID: math.MinInt64}, func(e entry) bool {
		if a := s.byID[e.ID]; a.Condition == domain.AlertBelow {
			crossed = append(crossed, a)
		}
		return true
	})

	out := make([]domain.Alert, 0, len(crossed))
	for _, a := range crossed {
		s.deactivate(a)
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Symbols returns the symbols that have at least one active alert.
func (s *Store) Symbols() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.bySymbol))
	for sym := range s.bySymbol {
		out = append(out, sym)
	}
	sort.Strings(out)
	return out
}

// ActiveCount returns the number of active alerts across all users.
func (s *Store) ActiveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for _, tree := range s.bySymbol {
		n += tree.Len()
	}
	return n
}

// tree returns the symbol's B-tree, creating it on first use. Caller
// must hold s.mu.
func (s *Store) tree(symbol string) *btree.BTreeG[entry] {
	const degree = 8
	tree, ok := s.bySymbol[symbol]
	if !ok {
		tree = btree.NewG[entry](degree, entryLess)
		s.bySymbol[symbol] = tree
	}
	return tree
}

// deactivate marks the alert inactive and removes it from the symbol
// index, dropping the tree when it empties. Caller must hold s.mu.
func (s *Store) deactivate(a *domain.Alert) {
	a.Active = false
	if tree, ok := s.bySymbol[a.Symbol]; ok {
		tree.Delete(entry{TargetPrice: a.TargetPrice, ID: a.ID})
		if tree.Len() == 0 {
			delete(s.bySymbol, a.Symbol)
		}
	}
}
