package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Position is one holding priced at the time a snapshot was taken.
// When the market price for the symbol could not be resolved, the
// position is priced at its stored average cost and Stale is set;
// its unrealized P&L is then zero by construction.
type Position struct {
	Symbol           string
	CompanyName      string
	Quantity         decimal.Decimal
	AvgCost          decimal.Decimal
	CostBasis        decimal.Decimal
	CurrentPrice     decimal.Decimal
	CurrentValue     decimal.Decimal
	UnrealizedPnL    decimal.Decimal
	UnrealizedPnLPct float64
	DailyChangePct   float64
	Stale            bool
}

// PortfolioSnapshot is a read-only, point-in-time view of all holdings
// and the metrics derived from them. All analytics are well-defined on
// an empty holdings set: counts and totals are zero, ratios are zero,
// and the sorted views are empty.
//
// Ratio fields use math.Inf(1) for the "no losers"/"no losses" cases;
// presentation layers are expected to omit non-finite values.
type PortfolioSnapshot struct {
	// ByValue holds positions sorted by current value descending (the
	// allocation view). ByPerformance holds the same positions sorted by
	// unrealized P&L percent descending (the performance view). Both are
	// derived from one canonical computation.
	ByValue       []Position
	ByPerformance []Position

	TotalCostBasis    decimal.Decimal
	TotalCurrentValue decimal.Decimal
	TotalPnL          decimal.Decimal
	TotalPnLPct       float64

	Winners      int
	Losers       int
	WinRate      float64 // winners / total positions, 0 when empty
	AvgWinnerPnL decimal.Decimal
	AvgLoserPnL  decimal.Decimal
	AvgWinnerPct float64
	AvgLoserPct  float64
	RiskReward   float64 // avg winner % / |avg loser %|

	Largest         *Position // nil when empty
	Smallest        *Position // nil when empty
	Concentration   float64   // largest value / total value
	DispersionRatio float64   // max position value / min position value
	GainLossRatio   float64   // total gains / |total losses|

	StaleCount int
	TakenAt    time.Time
}

// NumPositions returns the number of open positions in the snapshot.
func (s *PortfolioSnapshot) NumPositions() int {
	return len(s.ByValue)
}

// Empty reports whether the snapshot contains no open positions.
func (s *PortfolioSnapshot) Empty() bool {
	return len(s.ByValue) == 0
}
