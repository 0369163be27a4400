// Package market provides stock quote, market summary and trending
// data. The demo provider serves a built-in ticker table with random
// drift; the cached provider wraps any provider with a TTL cache.
package market

import (
	"context"

	"github.com/tradeai/stockbot/internal/domain"
)

// Provider serves market data. Implementations must be safe for
// concurrent use.
type Provider interface {
	// Quote returns the latest quote for a symbol. The symbol is
	// normalized before lookup.
	Quote(ctx context.Context, symbol string) (*domain.Quote, error)

	// Summary returns an overview of the major indices.
	Summary(ctx context.Context) (*domain.MarketSummary, error)

	// Trending returns up to n stocks ordered by percent change.
	Trending(ctx context.Context, n int) ([]domain.TrendingStock, error)
}
