package bot

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/tradeai/stockbot/internal/domain"
	"github.com/tradeai/stockbot/internal/render"
)

// trendingLimit caps the /trending list.
const trendingLimit = 5

func (b *Bot) cmdPrice(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "Please provide a stock symbol. Example: /price AAPL"
	}

	symbol := domain.NormalizeSymbol(args[0])
	q, err := b.market.Quote(ctx, symbol)
	if err != nil {
		b.logger.Warn("quote failed", slog.String("symbol", symbol), slog.String("error", err.Error()))
		return "Sorry, there was an error fetching the price data."
	}
	return render.PriceCard(q)
}

func (b *Bot) cmdMarket(ctx context.Context) string {
	s, err := b.market.Summary(ctx)
	if err != nil {
		b.logger.Warn("market summary failed", slog.String("error", err.Error()))
		return "Sorry, there was an error fetching market data."
	}
	return render.MarketOverview(s)
}

func (b *Bot) cmdTrending(ctx context.Context) string {
	stocks, err := b.market.Trending(ctx, trendingLimit)
	if err != nil {
		b.logger.Warn("trending failed", slog.String("error", err.Error()))
		return "Sorry, there was an error fetching trending stocks."
	}
	return render.Trending(stocks)
}

func (b *Bot) cmdAnalyze(ctx context.Context, args []string) string {
	if len(args) == 0 {
		return "Please provide a stock symbol. Example: /analyze TSLA"
	}

	symbol := domain.NormalizeSymbol(args[0])
	q, err := b.market.Quote(ctx, symbol)
	if err != nil {
		b.logger.Warn("quote failed", slog.String("symbol", symbol), slog.String("error", err.Error()))
		return "Sorry, there was an error performing the analysis."
	}
	return b.advisor.Analyze(q)
}

func (b *Bot) cmdWatchlist(ctx context.Context, userID int64, args []string) string {
	if len(args) == 0 {
		symbols := b.watchlist.List(userID)
		rows := make([]render.WatchlistRow, 0, len(symbols))
		for _, sym := range symbols {
			q, err := b.market.Quote(ctx, sym)
			if err != nil {
				b.logger.Warn("watchlist quote failed", slog.String("symbol", sym), slog.String("error", err.Error()))
				q = nil
			}
			rows = append(rows, render.WatchlistRow{Symbol: sym, Quote: q})
		}
		return render.WatchlistDashboard(rows)
	}

	switch {
	case strings.EqualFold(args[0], "add") && len(args) > 1:
		symbol := domain.NormalizeSymbol(args[1])
		if !domain.ValidSymbol(symbol) {
			return "❌ Malformed symbol. Example: `/watchlist add AAPL`"
		}
		if !b.watchlist.Add(userID, symbol) {
			return render.WatchlistDuplicate(symbol)
		}
		q, err := b.market.Quote(ctx, symbol)
		if err != nil {
			q = nil
		}
		return render.WatchlistAdded(symbol, q)

	case strings.EqualFold(args[0], "remove") && len(args) > 1:
		symbol := domain.NormalizeSymbol(args[1])
		if !b.watchlist.Remove(userID, symbol) {
			return render.WatchlistNotFound(symbol)
		}
		return render.WatchlistRemoved(symbol, len(b.watchlist.List(userID)))

	default:
		return render.WatchlistHelp()
	}
}

func (b *Bot) cmdTrade(userID int64, args []string) string {
	req, ok := parseTrade(args)
	if !ok {
		return render.TradeUsage()
	}

	id, err := b.registry.Record(userID, req.Action, req.Symbol, req.Quantity, req.Price)
	if err != nil {
		var invalidErr *domain.InvalidTradeError
		if errors.As(err, &invalidErr) {
			return "❌ " + strings.ToUpper(invalidErr.Reason[:1]) + invalidErr.Reason[1:] + "."
		}
		b.logger.Error("recording trade", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return "❌ Error recording trade. Please try again."
	}

	return render.TradeConfirmation(domain.Trade{
		ID:         id,
		Symbol:     req.Symbol,
		Action:     req.Action,
		Quantity:   req.Quantity,
		Price:      req.Price,
		ExecutedAt: time.Now().UTC(),
	})
}

// recentTradesShown caps the recent-activity footer on /portfolio.
const recentTradesShown = 5

func (b *Bot) cmdPortfolio(ctx context.Context, userID int64) string {
	// Resolve every quote before taking the snapshot, so the ledger's
	// price lookups read a pre-fetched map and never block on I/O.
	quotes := make(map[string]*domain.Quote)
	for sym := range b.registry.Holdings(userID) {
		q, err := b.market.Quote(ctx, sym)
		if err != nil {
			b.logger.Warn("portfolio quote failed", slog.String("symbol", sym), slog.String("error", err.Error()))
			continue
		}
		quotes[sym] = q
	}

	snap := b.registry.Snapshot(userID, func(symbol string) (*domain.Quote, error) {
		q, ok := quotes[symbol]
		if !ok {
			return nil, domain.ErrPriceUnavailable
		}
		return q, nil
	})

	return render.PortfolioDashboard(snap, b.registry.Trades(userID, recentTradesShown))
}

func (b *Bot) cmdTrades(userID int64) string {
	return render.TradeHistory(b.registry.Trades(userID, 0))
}

func (b *Bot) cmdAlert(userID int64, args []string) string {
	if len(args) == 2 && strings.EqualFold(args[0], "remove") {
		id, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return render.AlertUsage()
		}
		if err := b.alerts.Deactivate(userID, id); err != nil {
			return render.AlertNotFound(id)
		}
		return render.AlertRemoved(id)
	}

	req, ok := parseAlert(args)
	if !ok {
		return render.AlertUsage()
	}

	a, err := b.alerts.Create(userID, req.Symbol, req.Condition, req.Target)
	if err != nil {
		var invalidErr *domain.InvalidAlertError
		if errors.As(err, &invalidErr) {
			return "❌ " + strings.ToUpper(invalidErr.Reason[:1]) + invalidErr.Reason[1:] + "."
		}
		b.logger.Error("creating alert", slog.Int64("user_id", userID), slog.String("error", err.Error()))
		return "Sorry, there was an error setting the alert."
	}
	return render.AlertCreated(a)
}

func (b *Bot) cmdStatus() string {
	return render.Status(render.StatusInfo{
		Version:        b.version,
		Uptime:         time.Since(b.startedAt),
		Users:          b.registry.Users(),
		Watchlists:     b.watchlist.Users(),
		ActiveAlerts:   b.alerts.ActiveCount(),
		HandledUpdates: b.handled.Load(),
	})
}
