package alert

import (
	"context"
	"log/slog"

	"github.com/tradeai/stockbot/internal/domain"
	"github.com/tradeai/stockbot/internal/market"
)

// Notifier delivers a triggered alert to its owner.
type Notifier interface {
	AlertTriggered(a domain.Alert, q *domain.Quote)
}

// Monitor sweeps active alerts against live quotes and notifies owners
// of crossed thresholds. The cron scheduler calls Sweep on a fixed
// interval.
type Monitor struct {
	store    *Store
	provider market.Provider
	notifier Notifier
	logger   *slog.Logger
}

// NewMonitor wires a monitor over the given store and market provider.
func NewMonitor(store *Store, provider market.Provider, notifier Notifier, logger *slog.Logger) *Monitor {
	return &Monitor{
		store:    store,
		provider: provider,
		notifier: notifier,
		logger:   logger,
	}
}

// Sweep fetches one quote per symbol with active alerts and fires
// every crossed alert. A quote failure skips that symbol until the
// next sweep; it never aborts the rest.
func (m *Monitor) Sweep(ctx context.Context) {
	for _, symbol := range m.store.Symbols() {
		if ctx.Err() != nil {
			return
		}

		q, err := m.provider.Quote(ctx, symbol)
		if err != nil {
			m.logger.Warn("alert sweep: quote failed",
				slog.String("symbol", symbol),
				slog.String("error", err.Error()),
			)
			continue
		}

		for _, a := range m.store.Triggered(symbol, q.Price) {
			m.logger.Info("alert triggered",
				slog.Int64("alert_id", a.ID),
				slog.Int64("user_id", a.UserID),
				slog.String("symbol", a.Symbol),
				slog.String("condition", a.Condition.String()),
				slog.String("target", a.TargetPrice.String()),
				slog.String("price", q.Price.String()),
			)
			m.notifier.AlertTriggered(a, q)
		}
	}
}
