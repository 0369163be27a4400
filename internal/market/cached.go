package market

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/tradeai/stockbot/internal/domain"
)

const (
	summaryCacheKey = "summary"
	quoteKeyPrefix  = "quote:"
	trendKeyPrefix  = "trending:"
)

// CachedProvider wraps a Provider with a TTL cache so repeated
// requests for the same symbol within the TTL hit memory instead of
// the upstream source.
type CachedProvider struct {
	upstream Provider
	cache    *ristretto.Cache
	ttl      time.Duration
}

var _ Provider = (*CachedProvider)(nil)

// NewCached wraps upstream with a quote cache holding entries for ttl.
func NewCached(upstream Provider, ttl time.Duration) (*CachedProvider, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e5,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("creating quote cache: %w", err)
	}

	return &CachedProvider{
		upstream: upstream,
		cache:    cache,
		ttl:      ttl,
	}, nil
}

func (c *CachedProvider) Quote(ctx context.Context, symbol string) (*domain.Quote, error) {
	symbol = domain.NormalizeSymbol(symbol)
	key := quoteKeyPrefix + symbol

	if v, ok := c.cache.Get(key); ok {
		if q, ok := v.(*domain.Quote); ok {
			return q, nil
		}
	}

	q, err := c.upstream.Quote(ctx, symbol)
	if err != nil {
		return nil, err
	}
	c.cache.SetWithTTL(key, q, 1, c.ttl)
	return q, nil
}

func (c *CachedProvider) Summary(ctx context.Context) (*domain.MarketSummary, error) {
	if v, ok := c.cache.Get(summaryCacheKey); ok {
		if s, ok := v.(*domain.MarketSummary); ok {
			return s, nil
		}
	}

	s, err := c.upstream.Summary(ctx)
	if err != nil {
		return nil, err
	}
	c.cache.SetWithTTL(summaryCacheKey, s, 1, c.ttl)
	return s, nil
}

func (c *CachedProvider) Trending(ctx context.Context, n int) ([]domain.TrendingStock, error) {
	key := fmt.Sprintf("%s%d", trendKeyPrefix, n)

	if v, ok := c.cache.Get(key); ok {
		if ts, ok := v.([]domain.TrendingStock); ok {
			return ts, nil
		}
	}

	ts, err := c.upstream.Trending(ctx, n)
	if err != nil {
		return nil, err
	}
	c.cache.SetWithTTL(key, ts, 1, c.ttl)
	return ts, nil
}

// wait blocks until buffered cache writes are applied. Used by tests
// to make cache hits deterministic.
func (c *CachedProvider) wait() {
	c.cache.Wait()
}
