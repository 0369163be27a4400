package market

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

// demoSource identifies quotes produced by the built-in data set.
const demoSource = "demo"

// maxDriftPct bounds the per-request random drift applied to base
// prices, in percent.
const maxDriftPct = 3.0

type demoTicker struct {
	company   string
	basePrice decimal.Decimal
	peRatio   float64
	marketCap string
}

var demoTickers = map[string]demoTicker{
	"AAPL":  {"Apple Inc.", decimal.RequireFromString("185.50"), 28.5, "2.9T"},
	"MSFT":  {"Microsoft Corporation", decimal.RequireFromString("425.00"), 35.2, "3.2T"},
	"GOOGL": {"Alphabet Inc.", decimal.RequireFromString("142.75"), 24.8, "1.8T"},
	"AMZN":  {"Amazon.com, Inc.", decimal.RequireFromString("178.25"), 42.1, "1.9T"},
	"TSLA":  {"Tesla, Inc.", decimal.RequireFromString("252.50"), 68.4, "800B"},
	"META":  {"Meta Platforms, Inc.", decimal.RequireFromString("512.00"), 26.3, "1.3T"},
	"NVDA":  {"NVIDIA Corporation", decimal.RequireFromString("825.75"), 55.7, "2.1T"},
	"BRK.B": {"Berkshire Hathaway Inc.", decimal.RequireFromString("415.00"), 9.8, "900B"},
	"JPM":   {"JPMorgan Chase & Co.", decimal.RequireFromString("198.50"), 11.9, "570B"},
	"V":     {"Visa Inc.", decimal.RequireFromString("275.25"), 31.4, "560B"},
}

var demoIndices = []struct {
	name  string
	value float64
}{
	{"S&P 500", 5230.50},
	{"Dow Jones", 39150.25},
	{"Nasdaq", 16420.75},
}

// DemoProvider serves synthetic quotes from a built-in ticker table
// with a small random drift per request. It never fails: unknown
// symbols get a generic synthetic quote derived from the symbol name.
type DemoProvider struct {
	mu  sync.Mutex
	rng *rand.Rand
}

var _ Provider = (*DemoProvider)(nil)

// NewDemo returns a demo provider seeded from the current time.
func NewDemo() *DemoProvider {
	return &DemoProvider{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// newDemoSeeded returns a deterministic demo provider for tests.
func newDemoSeeded(seed int64) *DemoProvider {
	return &DemoProvider{rng: rand.New(rand.NewSource(seed))}
}

// drift returns a uniform random value in [-maxDriftPct, maxDriftPct].
func (p *DemoProvider) drift() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return (p.rng.Float64()*2 - 1) * maxDriftPct
}

// volume returns a plausible random share volume.
func (p *DemoProvider) volume() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return 5_000_000 + p.rng.Int63n(95_000_000)
}

func (p *DemoProvider) Quote(_ context.Context, symbol string) (*domain.Quote, error) {
	symbol = domain.NormalizeSymbol(symbol)

	tk, ok := demoTickers[symbol]
	if !ok {
		tk = syntheticTicker(symbol)
	}

	driftPct := p.drift()
	base := tk.basePrice
	price := applyPct(base, driftPct)
	change := price.Sub(base)

	return &domain.Quote{
		Symbol:        symbol,
		CompanyName:   tk.company,
		Price:         price,
		Change:        change,
		ChangePercent: driftPct,
		DayLow:        applyPct(base, -maxDriftPct),
		DayHigh:       applyPct(base, maxDriftPct),
		Week52Low:     applyPct(base, -25),
		Week52High:    applyPct(base, 18),
		PERatio:       tk.peRatio,
		Volume:        p.volume(),
		MarketCap:     tk.marketCap,
		Source:        demoSource,
		AsOf:          time.Now().UTC(),
	}, nil
}

func (p *DemoProvider) Summary(_ context.Context) (*domain.MarketSummary, error) {
	indices := make([]domain.IndexQuote, 0, len(demoIndices))
	up := 0
	for _, idx := range demoIndices {
		driftPct := p.drift() / 2
		if driftPct >= 0 {
			up++
		}
		indices = append(indices, domain.IndexQuote{
			Name:          idx.name,
			Value:         idx.value * (1 + driftPct/100),
			ChangePercent: driftPct,
		})
	}

	sentiment := "Bearish"
	switch {
	case up == len(indices):
		sentiment = "Bullish"
	case up > 0:
		sentiment = "Mixed"
	}

	return &domain.MarketSummary{
		Indices:   indices,
		Sentiment: sentiment,
		Source:    demoSource,
		AsOf:      time.Now().UTC(),
	}, nil
}

func (p *DemoProvider) Trending(ctx context.Context, n int) ([]domain.TrendingStock, error) {
	stocks := make([]domain.TrendingStock, 0, len(demoTickers))
	for sym := range demoTickers {
		q, err := p.Quote(ctx, sym)
		if err != nil {
			return nil, err
		}
		stocks = append(stocks, domain.TrendingStock{
			Symbol:        q.Symbol,
			CompanyName:   q.CompanyName,
			Price:         q.Price,
			ChangePercent: q.ChangePercent,
		})
	}

	sort.Slice(stocks, func(i, j int) bool {
		return stocks[i].ChangePercent > stocks[j].ChangePercent
	})

	if n > 0 && n < len(stocks) {
		stocks = stocks[:n]
	}
	return stocks, nil
}

// syntheticTicker derives a stable fictitious ticker for symbols
// outside the built-in table so price requests always succeed.
func syntheticTicker(symbol string) demoTicker {
	h := fnv.New32a()
	h.Write([]byte(symbol))
	// Base price in [20, 520), stable per symbol.
	base := decimal.NewFromInt(20 + int64(h.Sum32()%500))
	return demoTicker{
		company:   fmt.Sprintf("%s Corporation", symbol),
		basePrice: base,
		peRatio:   15 + float64(h.Sum32()%30),
		marketCap: "N/A",
	}
}

// applyPct returns base adjusted by pct percent, rounded to cents.
func applyPct(base decimal.Decimal, pct float64) decimal.Decimal {
	factor := decimal.NewFromFloat(1 + pct/100)
	return base.Mul(factor).Round(2)
}
