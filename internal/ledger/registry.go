package ledger

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

// Registry owns all per-user ledgers, keyed by Telegram user ID.
// Ledgers are created lazily on the first recorded trade and live for
// the process lifetime; there is no persistence. Reads for a user with
// no ledger yield valid empty state, never an error.
type Registry struct {
	mu      sync.RWMutex
	ledgers map[int64]*Ledger
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		ledgers: make(map[int64]*Ledger),
	}
}

// forUser returns the user's ledger, creating it if needed.
func (r *Registry) forUser(userID int64) *Ledger {
	r.mu.RLock()
	l, ok := r.ledgers[userID]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.ledgers[userID]; ok {
		return l
	}
	l = New(userID)
	r.ledgers[userID] = l
	return l
}

// peek returns the user's ledger without creating one.
func (r *Registry) peek(userID int64) (*Ledger, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.ledgers[userID]
	return l, ok
}

// Record appends a trade to the user's ledger, creating the ledger on
// first use, and returns the assigned trade ID.
func (r *Registry) Record(userID int64, action domain.Action, symbol string, quantity, price decimal.Decimal) (int64, error) {
	return r.forUser(userID).Record(action, symbol, quantity, price)
}

// Snapshot computes the user's portfolio snapshot. A user with no
// ledger gets an empty snapshot.
func (r *Registry) Snapshot(userID int64, lookup PriceLookup) *domain.PortfolioSnapshot {
	l, ok := r.peek(userID)
	if !ok {
		return New(userID).Snapshot(lookup)
	}
	return l.Snapshot(lookup)
}

// Holdings returns a copy of the user's current holdings. A user with
// no ledger gets an empty map.
func (r *Registry) Holdings(userID int64) map[string]domain.Holding {
	l, ok := r.peek(userID)
	if !ok {
		return map[string]domain.Holding{}
	}
	return l.Holdings()
}

// Trades returns the user's trades (see Ledger.Trades). A user with no
// ledger gets an empty slice.
func (r *Registry) Trades(userID int64, limit int) []domain.Trade {
	l, ok := r.peek(userID)
	if !ok {
		return []domain.Trade{}
	}
	return l.Trades(limit)
}

// Users returns the number of users with a ledger.
func (r *Registry) Users() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ledgers)
}
