package domain

import "github.com/shopspring/decimal"

// Holding is the aggregate open position in one symbol: the running
// quantity held and the weighted-average price paid for it. A holding
// whose quantity drops to zero or below is removed from its ledger;
// short positions are never represented.
type Holding struct {
	Quantity decimal.Decimal
	AvgCost  decimal.Decimal
}

// CostBasis returns the capital committed to the position
// (quantity × average cost).
func (h *Holding) CostBasis() decimal.Decimal {
	return h.Quantity.Mul(h.AvgCost)
}
