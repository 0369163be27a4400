package domain

import "errors"

// Sentinel errors for domain-level error handling. The bot layer maps
// these to user-facing messages.
var (
	// ErrPriceUnavailable signals a per-symbol market data failure. During
	// snapshot computation it is recovered locally: the position is priced
	// at its stored average cost and marked stale. It never aborts an
	// aggregate computation.
	ErrPriceUnavailable = errors.New("price_unavailable")

	// ErrAlertNotFound is returned when deactivating an alert that does not
	// exist or belongs to another user.
	ErrAlertNotFound = errors.New("alert_not_found")
)

// InvalidTradeError describes a trade request that failed validation:
// a malformed action or a non-positive quantity or price. The ledger
// performs no mutation when returning it.
type InvalidTradeError struct {
	Reason string
}

func (e *InvalidTradeError) Error() string {
	return "invalid trade: " + e.Reason
}

// InvalidAlertError describes an alert request that failed validation:
// a malformed condition, symbol, or a non-positive target price.
type InvalidAlertError struct {
	Reason string
}

func (e *InvalidAlertError) Error() string {
	return "invalid alert: " + e.Reason
}
