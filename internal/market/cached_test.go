package market

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

// countingProvider records upstream calls so tests can assert cache
// hits vs misses.
type countingProvider struct {
	quotes    atomic.Int64
	summaries atomic.Int64
	trendings atomic.Int64
}

var _ Provider = (*countingProvider)(nil)

func (p *countingProvider) Quote(_ context.Context, symbol string) (*domain.Quote, error) {
	p.quotes.Add(1)
	return &domain.Quote{
		Symbol: domain.NormalizeSymbol(symbol),
		Price:  decimal.RequireFromString("100.00"),
		Source: "counting",
		AsOf:   time.Now().UTC(),
	}, nil
}

func (p *countingProvider) Summary(context.Context) (*domain.MarketSummary, error) {
	p.summaries.Add(1)
	return &domain.MarketSummary{Source: "counting", AsOf: time.Now().UTC()}, nil
}

func (p *countingProvider) Trending(_ context.Context, n int) ([]domain.TrendingStock, error) {
	p.trendings.Add(1)
	return make([]domain.TrendingStock, n), nil
}

func TestCachedProviderQuoteHit(t *testing.T) {
	upstream := &countingProvider{}
	c, err := NewCached(upstream, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if _, err := c.Quote(ctx, "AAPL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.wait()

	for i := 0; i < 5; i++ {
		q, err := c.Quote(ctx, "aapl")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Symbol != "AAPL" {
			t.Errorf("expected AAPL, got %s", q.Symbol)
		}
	}

	if got := upstream.quotes.Load(); got != 1 {
		t.Errorf("expected 1 upstream quote call, got %d", got)
	}
}

func TestCachedProviderDistinctSymbols(t *testing.T) {
	upstream := &countingProvider{}
	c, err := NewCached(upstream, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	for _, sym := range []string{"AAPL", "MSFT", "AAPL"} {
		if _, err := c.Quote(ctx, sym); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		c.wait()
	}

	if got := upstream.quotes.Load(); got != 2 {
		t.Errorf("expected 2 upstream quote calls, got %d", got)
	}
}

func TestCachedProviderSummaryHit(t *testing.T) {
	upstream := &countingProvider{}
	c, err := NewCached(upstream, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if _, err := c.Summary(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.wait()
	if _, err := c.Summary(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := upstream.summaries.Load(); got != 1 {
		t.Errorf("expected 1 upstream summary call, got %d", got)
	}
}

func TestCachedProviderTrendingKeyedByLimit(t *testing.T) {
	upstream := &countingProvider{}
	c, err := NewCached(upstream, time.Minute)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if _, err := c.Trending(ctx, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.wait()
	if _, err := c.Trending(ctx, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := c.Trending(ctx, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := upstream.trendings.Load(); got != 2 {
		t.Errorf("expected 2 upstream trending calls, got %d", got)
	}
}

func TestCachedProviderExpiry(t *testing.T) {
	upstream := &countingProvider{}
	c, err := NewCached(upstream, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	if _, err := c.Quote(ctx, "AAPL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c.wait()

	time.Sleep(50 * time.Millisecond)

	if _, err := c.Quote(ctx, "AAPL"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := upstream.quotes.Load(); got != 2 {
		t.Errorf("expected 2 upstream quote calls after expiry, got %d", got)
	}
}
