package market

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDemoProviderKnownSymbol(t *testing.T) {
	p := newDemoSeeded(1)
	ctx := context.Background()

	q, err := p.Quote(ctx, "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if q.Symbol != "AAPL" {
		t.Errorf("expected symbol AAPL, got %s", q.Symbol)
	}
	if q.CompanyName != "Apple Inc." {
		t.Errorf("expected Apple Inc., got %s", q.CompanyName)
	}
	if q.Source != demoSource {
		t.Errorf("expected source %q, got %q", demoSource, q.Source)
	}

	base := decimal.RequireFromString("185.50")
	low := applyPct(base, -maxDriftPct)
	high := applyPct(base, maxDriftPct)
	if q.Price.LessThan(low) || q.Price.GreaterThan(high) {
		t.Errorf("price %s outside drift band [%s, %s]", q.Price, low, high)
	}
	if q.ChangePercent < -maxDriftPct || q.ChangePercent > maxDriftPct {
		t.Errorf("change percent %.2f outside drift band", q.ChangePercent)
	}
}

func TestDemoProviderNormalizesSymbol(t *testing.T) {
	p := newDemoSeeded(1)

	q, err := p.Quote(context.Background(), "  tsla ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Symbol != "TSLA" {
		t.Errorf("expected normalized symbol TSLA, got %s", q.Symbol)
	}
	if q.CompanyName != "Tesla, Inc." {
		t.Errorf("expected Tesla, Inc., got %s", q.CompanyName)
	}
}

func TestDemoProviderUnknownSymbolSynthetic(t *testing.T) {
	p := newDemoSeeded(1)

	q, err := p.Quote(context.Background(), "ZZZZ")
	if err != nil {
		t.Fatalf("expected synthetic quote, got error: %v", err)
	}
	if q.Symbol != "ZZZZ" {
		t.Errorf("expected symbol ZZZZ, got %s", q.Symbol)
	}
	if q.Price.Sign() <= 0 {
		t.Errorf("expected positive synthetic price, got %s", q.Price)
	}

	// Synthetic base prices are stable per symbol.
	q2, err := newDemoSeeded(2).Quote(context.Background(), "ZZZZ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q2.CompanyName != q.CompanyName {
		t.Errorf("synthetic company name not stable: %s vs %s", q.CompanyName, q2.CompanyName)
	}
}

func TestDemoProviderSummary(t *testing.T) {
	p := newDemoSeeded(1)

	s, err := p.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Indices) != 3 {
		t.Fatalf("expected 3 indices, got %d", len(s.Indices))
	}
	names := map[string]bool{}
	for _, idx := range s.Indices {
		names[idx.Name] = true
		if idx.Value <= 0 {
			t.Errorf("index %s has non-positive value %.2f", idx.Name, idx.Value)
		}
	}
	for _, want := range []string{"S&P 500", "Dow Jones", "Nasdaq"} {
		if !names[want] {
			t.Errorf("missing index %s", want)
		}
	}
	switch s.Sentiment {
	case "Bullish", "Mixed", "Bearish":
	default:
		t.Errorf("unexpected sentiment %q", s.Sentiment)
	}
}

func TestDemoProviderTrending(t *testing.T) {
	p := newDemoSeeded(1)

	stocks, err := p.Trending(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stocks) != 5 {
		t.Fatalf("expected 5 trending stocks, got %d", len(stocks))
	}
	for i := 1; i < len(stocks); i++ {
		if stocks[i].ChangePercent > stocks[i-1].ChangePercent {
			t.Errorf("trending not sorted by change desc at %d: %.2f > %.2f",
				i, stocks[i].ChangePercent, stocks[i-1].ChangePercent)
		}
	}
}

func TestDemoProviderTrendingNoLimit(t *testing.T) {
	p := newDemoSeeded(1)

	stocks, err := p.Trending(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(stocks) != len(demoTickers) {
		t.Fatalf("expected %d stocks, got %d", len(demoTickers), len(stocks))
	}
}
