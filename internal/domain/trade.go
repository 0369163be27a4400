package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Action indicates whether a trade is a buy or a sell.
type Action string

const (
	ActionBuy  Action = "buy"
	ActionSell Action = "sell"
)

// Valid returns true if the action is one of the known values.
func (a Action) Valid() bool {
	return a == ActionBuy || a == ActionSell
}

func (a Action) String() string { return string(a) }

// ParseAction parses a user-supplied action string, tolerating case and
// surrounding whitespace. The second return value is false for unknown
// actions.
func ParseAction(s string) (Action, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "buy":
		return ActionBuy, true
	case "sell":
		return ActionSell, true
	default:
		return "", false
	}
}

// Trade is an immutable record of one executed paper order. IDs are
// assigned per user, monotonically increasing from 1.
type Trade struct {
	ID         int64
	Symbol     string
	Action     Action
	Quantity   decimal.Decimal
	Price      decimal.Decimal
	ExecutedAt time.Time
}

// Total returns the notional value of the trade (quantity × price).
func (t *Trade) Total() decimal.Decimal {
	return t.Quantity.Mul(t.Price)
}
