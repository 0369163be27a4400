// Package ledger implements the per-user paper-trading ledger: an
// append-only trade log plus the holdings derived from it, with
// portfolio snapshot analytics computed on demand.
package ledger

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

// Ledger owns the ordered trade log and the holdings map for one user.
// Trades are never mutated or deleted. All methods are safe for
// concurrent use, though in practice each user's ledger is only written
// by that user's chat session.
type Ledger struct {
	mu       sync.Mutex
	userID   int64
	trades   []domain.Trade
	holdings map[string]*domain.Holding
	nextID   int64
}

// New creates an empty ledger for the given user.
func New(userID int64) *Ledger {
	return &Ledger{
		userID:   userID,
		holdings: make(map[string]*domain.Holding),
	}
}

// Record validates and appends a trade, then updates the holding for
// its symbol. It returns the assigned per-user trade ID.
//
// On buy, the holding's average cost becomes the weighted average of
// the existing position and the new lot. On sell, quantity decreases
// and average cost is unchanged; if the resulting quantity is zero or
// negative the holding is deleted outright (an oversell closes the
// position, it never opens a short). Selling a symbol with no open
// holding is accepted: the trade is logged and no position results.
//
// Validation failures return *domain.InvalidTradeError and leave the
// ledger completely unchanged.
func (l *Ledger) Record(action domain.Action, symbol string, quantity, price decimal.Decimal) (int64, error) {
	if !action.Valid() {
		return 0, &domain.InvalidTradeError{Reason: "action must be 'buy' or 'sell'"}
	}
	symbol = domain.NormalizeSymbol(symbol)
	if !domain.ValidSymbol(symbol) {
		return 0, &domain.InvalidTradeError{Reason: "symbol must be 1-10 letters, digits, '.' or '-'"}
	}
	if quantity.Sign() <= 0 {
		return 0, &domain.InvalidTradeError{Reason: "quantity must be positive"}
	}
	if price.Sign() <= 0 {
		return 0, &domain.InvalidTradeError{Reason: "price must be positive"}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	t := domain.Trade{
		ID:         l.nextID,
		Symbol:     symbol,
		Action:     action,
		Quantity:   quantity,
		Price:      price,
		ExecutedAt: time.Now().UTC(),
	}
	l.trades = append(l.trades, t)
	l.apply(t)

	return t.ID, nil
}

// apply folds one trade into the holdings map. Caller must hold l.mu.
func (l *Ledger) apply(t domain.Trade) {
	h, ok := l.holdings[t.Symbol]

	switch t.Action {
	case domain.ActionBuy:
		if !ok {
			l.holdings[t.Symbol] = &domain.Holding{
				Quantity: t.Quantity,
				AvgCost:  t.Price,
			}
			return
		}
		// Weighted-average cost over the combined position.
		totalCost := h.Quantity.Mul(h.AvgCost).Add(t.Quantity.Mul(t.Price))
		h.Quantity = h.Quantity.Add(t.Quantity)
		h.AvgCost = totalCost.Div(h.Quantity)

	case domain.ActionSell:
		if !ok {
			// Sell with no open position: accepted, nothing to track.
			return
		}
		h.Quantity = h.Quantity.Sub(t.Quantity)
		if h.Quantity.Sign() <= 0 {
			delete(l.holdings, t.Symbol)
		}
	}
}

// Trades returns the user's trades. With limit > 0 it returns at most
// limit trades, most recent first; with limit <= 0 it returns all
// trades in insertion order. The returned slice is a copy.
func (l *Ledger) Trades(limit int) []domain.Trade {
	l.mu.Lock()
	defer l.mu.Unlock()

	if limit <= 0 || limit > len(l.trades) {
		if limit <= 0 {
			out := make([]domain.Trade, len(l.trades))
			copy(out, l.trades)
			return out
		}
		limit = len(l.trades)
	}

	// Most recent first.
	out := make([]domain.Trade, 0, limit)
	for i := len(l.trades) - 1; i >= len(l.trades)-limit; i-- {
		out = append(out, l.trades[i])
	}
	return out
}

// TradeCount returns the number of trades recorded.
func (l *Ledger) TradeCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.trades)
}

// Holdings returns a copy of the current holdings keyed by symbol.
func (l *Ledger) Holdings() map[string]domain.Holding {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]domain.Holding, len(l.holdings))
	for sym, h := range l.holdings {
		out[sym] = *h
	}
	return out
}
