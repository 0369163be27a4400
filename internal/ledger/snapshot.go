package ledger

import (
	"math"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

// PriceLookup maps a symbol to a current market quote. It is supplied
// by the caller; the ledger itself never performs I/O. A per-symbol
// failure must not abort snapshot computation — the position falls back
// to its stored average cost and is marked stale.
type PriceLookup func(symbol string) (*domain.Quote, error)

var hundred = decimal.NewFromInt(100)

// Snapshot prices the current holdings through lookup and computes the
// full set of portfolio metrics. The ledger lock is released before any
// lookup is invoked, so a lookup that reaches the network never blocks
// trade recording. The ledger itself is not mutated.
func (l *Ledger) Snapshot(lookup PriceLookup) *domain.PortfolioSnapshot {
	holdings := l.Holdings()

	// Deterministic iteration order keeps repeated snapshots identical.
	symbols := make([]string, 0, len(holdings))
	for sym := range holdings {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	snap := &domain.PortfolioSnapshot{
		TotalCostBasis:    decimal.Zero,
		TotalCurrentValue: decimal.Zero,
		TotalPnL:          decimal.Zero,
		AvgWinnerPnL:      decimal.Zero,
		AvgLoserPnL:       decimal.Zero,
		TakenAt:           time.Now().UTC(),
	}

	positions := make([]domain.Position, 0, len(symbols))
	for _, sym := range symbols {
		h := holdings[sym]
		positions = append(positions, pricePosition(sym, h, lookup))
	}

	var (
		sumWinnerPnL = decimal.Zero
		sumLoserPnL  = decimal.Zero
		sumWinnerPct float64
		sumLoserPct  float64
		totalGains   = decimal.Zero
		totalLosses  = decimal.Zero
	)

	for i := range positions {
		p := &positions[i]
		snap.TotalCostBasis = snap.TotalCostBasis.Add(p.CostBasis)
		snap.TotalCurrentValue = snap.TotalCurrentValue.Add(p.CurrentValue)
		if p.Stale {
			snap.StaleCount++
		}

		switch p.UnrealizedPnL.Sign() {
		case 1:
			snap.Winners++
			sumWinnerPnL = sumWinnerPnL.Add(p.UnrealizedPnL)
			sumWinnerPct += p.UnrealizedPnLPct
			totalGains = totalGains.Add(p.UnrealizedPnL)
		case -1:
			snap.Losers++
			sumLoserPnL = sumLoserPnL.Add(p.UnrealizedPnL)
			sumLoserPct += p.UnrealizedPnLPct
			totalLosses = totalLosses.Add(p.UnrealizedPnL)
		}
	}

	snap.TotalPnL = snap.TotalCurrentValue.Sub(snap.TotalCostBasis)
	if snap.TotalCostBasis.Sign() > 0 {
		snap.TotalPnLPct = pctOf(snap.TotalPnL, snap.TotalCostBasis)
	}

	if n := len(positions); n > 0 {
		snap.WinRate = float64(snap.Winners) / float64(n)
	}
	if snap.Winners > 0 {
		snap.AvgWinnerPnL = sumWinnerPnL.Div(decimal.NewFromInt(int64(snap.Winners)))
		snap.AvgWinnerPct = sumWinnerPct / float64(snap.Winners)
	}
	if snap.Losers > 0 {
		snap.AvgLoserPnL = sumLoserPnL.Div(decimal.NewFromInt(int64(snap.Losers)))
		snap.AvgLoserPct = sumLoserPct / float64(snap.Losers)
	}

	// Risk/reward = avg winner % / |avg loser %|; infinite when there are
	// winners but no losers.
	switch {
	case snap.Winners > 0 && snap.Losers > 0:
		snap.RiskReward = snap.AvgWinnerPct / math.Abs(snap.AvgLoserPct)
	case snap.Winners > 0:
		snap.RiskReward = math.Inf(1)
	}

	// Gain/loss dollar ratio, guarded the same way.
	switch {
	case totalGains.Sign() > 0 && totalLosses.Sign() < 0:
		snap.GainLossRatio = totalGains.InexactFloat64() / math.Abs(totalLosses.InexactFloat64())
	case totalGains.Sign() > 0:
		snap.GainLossRatio = math.Inf(1)
	}

	// Both presentation views derive from the one computation above.
	snap.ByValue = make([]domain.Position, len(positions))
	copy(snap.ByValue, positions)
	sort.SliceStable(snap.ByValue, func(i, j int) bool {
		return snap.ByValue[i].CurrentValue.GreaterThan(snap.ByValue[j].CurrentValue)
	})

	snap.ByPerformance = make([]domain.Position, len(positions))
	copy(snap.ByPerformance, positions)
	sort.SliceStable(snap.ByPerformance, func(i, j int) bool {
		return snap.ByPerformance[i].UnrealizedPnLPct > snap.ByPerformance[j].UnrealizedPnLPct
	})

	if len(snap.ByValue) > 0 {
		largest := snap.ByValue[0]
		smallest := snap.ByValue[len(snap.ByValue)-1]
		snap.Largest = &largest
		snap.Smallest = &smallest

		if snap.TotalCurrentValue.Sign() > 0 {
			snap.Concentration = largest.CurrentValue.InexactFloat64() / snap.TotalCurrentValue.InexactFloat64()
		}
		if smallest.CurrentValue.Sign() > 0 {
			snap.DispersionRatio = largest.CurrentValue.InexactFloat64() / smallest.CurrentValue.InexactFloat64()
		}
	}

	return snap
}

// pricePosition prices one holding through lookup, falling back to the
// stored average cost (and marking the row stale) when the lookup fails.
func pricePosition(symbol string, h domain.Holding, lookup PriceLookup) domain.Position {
	p := domain.Position{
		Symbol:      symbol,
		CompanyName: symbol,
		Quantity:    h.Quantity,
		AvgCost:     h.AvgCost,
		CostBasis:   h.CostBasis(),
	}

	var quote *domain.Quote
	if lookup != nil {
		q, err := lookup(symbol)
		if err == nil && q != nil {
			quote = q
		}
	}

	if quote == nil {
		p.Stale = true
		p.CurrentPrice = h.AvgCost
		p.CurrentValue = p.CostBasis
		p.UnrealizedPnL = decimal.Zero
		return p
	}

	p.CompanyName = quote.CompanyName
	p.CurrentPrice = quote.Price
	p.CurrentValue = h.Quantity.Mul(quote.Price)
	p.UnrealizedPnL = p.CurrentValue.Sub(p.CostBasis)
	if p.CostBasis.Sign() > 0 {
		p.UnrealizedPnLPct = pctOf(p.UnrealizedPnL, p.CostBasis)
	}
	p.DailyChangePct = quote.ChangePercent
	return p
}

// pctOf returns part/whole × 100 as a float64. Caller guarantees a
// non-zero whole.
func pctOf(part, whole decimal.Decimal) float64 {
	return part.Mul(hundred).Div(whole).InexactFloat64()
}
