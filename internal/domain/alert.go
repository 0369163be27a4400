package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AlertCondition is the direction a price threshold alert fires in.
type AlertCondition string

const (
	AlertAbove AlertCondition = "above"
	AlertBelow AlertCondition = "below"
)

// Valid returns true if the condition is one of the known values.
func (c AlertCondition) Valid() bool {
	return c == AlertAbove || c == AlertBelow
}

func (c AlertCondition) String() string { return string(c) }

// ParseAlertCondition parses a user-supplied condition string.
func ParseAlertCondition(s string) (AlertCondition, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "above":
		return AlertAbove, true
	case "below":
		return AlertBelow, true
	default:
		return "", false
	}
}

// Alert is a price-threshold alert owned by one user. An alert fires
// once: when its condition is met it is deactivated.
type Alert struct {
	ID          int64
	UserID      int64
	Symbol      string
	Condition   AlertCondition
	TargetPrice decimal.Decimal
	Active      bool
	CreatedAt   time.Time
}

// Crossed reports whether the given market price satisfies the alert's
// condition. Thresholds are inclusive: an "above 150" alert fires at
// exactly 150.00.
func (a *Alert) Crossed(price decimal.Decimal) bool {
	switch a.Condition {
	case AlertAbove:
		return price.GreaterThanOrEqual(a.TargetPrice)
	case AlertBelow:
		return price.LessThanOrEqual(a.TargetPrice)
	default:
		return false
	}
}
