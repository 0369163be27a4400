package render

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

// WatchlistRow pairs a watched symbol with its quote. A nil Quote
// marks a per-symbol data failure.
type WatchlistRow struct {
	Symbol string
	Quote  *domain.Quote
}

// WatchlistDashboard formats the full watchlist view: a performance
// overview followed by per-stock rows sorted best to worst.
func WatchlistDashboard(rows []WatchlistRow) string {
	if len(rows) == 0 {
		return `📋 *WATCHLIST DASHBOARD*

_Your watchlist is empty._

Start tracking your favorite stocks:
` + "`/watchlist add AAPL`" + `

Popular stocks to watch:
• AAPL - Apple Inc.
• MSFT - Microsoft Corp.
• GOOGL - Alphabet Inc.
• TSLA - Tesla Inc.
• NVDA - NVIDIA Corp.`
	}

	up, down, flat := 0, 0, 0
	sumChange := 0.0
	priced := 0
	for _, r := range rows {
		if r.Quote == nil {
			continue
		}
		priced++
		sumChange += r.Quote.ChangePercent
		switch {
		case r.Quote.ChangePercent > 0:
			up++
		case r.Quote.ChangePercent < 0:
			down++
		default:
			flat++
		}
	}

	var b strings.Builder
	b.WriteString("📋 *WATCHLIST DASHBOARD*\n")
	b.WriteString(divider)
	b.WriteString("\n*📊 MARKET OVERVIEW*\n")
	fmt.Fprintf(&b, "• Total Stocks: %d\n", len(rows))
	fmt.Fprintf(&b, "• Up: %d 📈 | Down: %d 📉 | Flat: %d ➖\n", up, down, flat)
	if priced > 0 {
		fmt.Fprintf(&b, "• Avg Change: %s\n", SignedPct(sumChange/float64(priced)))
	}
	b.WriteString(divider)
	b.WriteString("\n*💎 YOUR WATCHLIST*\n\n")

	sorted := make([]WatchlistRow, len(rows))
	copy(sorted, rows)
	// Failed rows sink to the bottom.
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if rowChange(sorted[j]) > rowChange(sorted[i]) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	for i, r := range sorted {
		if r.Quote == nil {
			fmt.Fprintf(&b, "%d. *%s* - _Data unavailable_\n\n", i+1, r.Symbol)
			continue
		}
		q := r.Quote

		icon := "⚪"
		switch {
		case q.ChangePercent > 0:
			icon = "🟢"
		case q.ChangePercent < 0:
			icon = "🔴"
		}

		fmt.Fprintf(&b, "%s *%s* - %s\n", icon, q.Symbol, truncate(q.CompanyName, 25))
		fmt.Fprintf(&b, "├ Price: $%s (%s)\n", Money(q.Price), SignedPct(q.ChangePercent))
		fmt.Fprintf(&b, "├ Day Range: $%s - $%s\n", Money(q.DayLow), Money(q.DayHigh))
		fmt.Fprintf(&b, "├ Volume: %s", Volume(q.Volume))
		if q.MarketCap != "" && q.MarketCap != "N/A" {
			fmt.Fprintf(&b, " | MCap: %s", q.MarketCap)
		}
		b.WriteString("\n")
		if i < len(sorted)-1 {
			b.WriteString("└────────────────────\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(divider)
	b.WriteString("*⚡ QUICK ACTIONS*\n")
	b.WriteString("• Add: `/watchlist add [SYMBOL]`\n")
	b.WriteString("• Remove: `/watchlist remove [SYMBOL]`\n")
	b.WriteString("• Price: `/price [SYMBOL]`\n")
	b.WriteString("• Analysis: `/analyze [SYMBOL]`")
	return b.String()
}

func rowChange(r WatchlistRow) float64 {
	if r.Quote == nil {
		return -999
	}
	return r.Quote.ChangePercent
}

// WatchlistAdded confirms an add, with a quote when one is available.
func WatchlistAdded(symbol string, q *domain.Quote) string {
	if q == nil {
		return fmt.Sprintf("✅ *%s* added to your watchlist!\n\nView with: `/watchlist`", symbol)
	}
	return fmt.Sprintf("✅ *%s* added to your watchlist!\n\n*%s*\nCurrent Price: $%s (%s)\n\nView full watchlist: `/watchlist`",
		symbol, q.CompanyName, Money(q.Price), SignedPct(q.ChangePercent))
}

// WatchlistDuplicate reports an add of an already-watched symbol.
func WatchlistDuplicate(symbol string) string {
	return fmt.Sprintf("ℹ️ *%s* is already in your watchlist.\n\nView all: `/watchlist`", symbol)
}

// WatchlistRemoved confirms a removal.
func WatchlistRemoved(symbol string, remaining int) string {
	return fmt.Sprintf("✅ *%s* removed from your watchlist.\n\nRemaining stocks: %d\nView watchlist: `/watchlist`",
		symbol, remaining)
}

// WatchlistNotFound reports a removal of an unwatched symbol.
func WatchlistNotFound(symbol string) string {
	return fmt.Sprintf("❌ *%s* was not in your watchlist.\n\nView current watchlist: `/watchlist`", symbol)
}

// WatchlistHelp is the /watchlist argument help.
func WatchlistHelp() string {
	return `📋 *Watchlist Commands*

• ` + "`/watchlist`" + ` - View your watchlist
• ` + "`/watchlist add AAPL`" + ` - Add a stock
• ` + "`/watchlist remove AAPL`" + ` - Remove a stock

Monitor your favorite stocks easily!`
}

// PortfolioDashboard formats the full portfolio view: summary,
// holdings breakdown by value, performance metrics, analysis, and
// recent activity.
func PortfolioDashboard(snap *domain.PortfolioSnapshot, recent []domain.Trade) string {
	if snap.Empty() {
		return `💼 *PORTFOLIO DASHBOARD*

_Your portfolio is currently empty._

Start building your portfolio:
` + "`/trade buy AAPL 10 150`" + `

Available commands:
• ` + "`/watchlist`" + ` - Manage watchlist
• ` + "`/trades`" + ` - View trade history
• ` + "`/alert`" + ` - Set price alerts`
	}

	var b strings.Builder
	b.WriteString("💼 *PORTFOLIO DASHBOARD*\n")
	b.WriteString(divider)

	b.WriteString("\n*📈 PORTFOLIO SUMMARY*\n")
	fmt.Fprintf(&b, "• Total Value: $%s\n", Money(snap.TotalCurrentValue))
	fmt.Fprintf(&b, "• Cost Basis: $%s\n", Money(snap.TotalCostBasis))
	fmt.Fprintf(&b, "• Total P&L: $%s (%s)\n", SignedMoney(snap.TotalPnL), SignedPct(snap.TotalPnLPct))
	fmt.Fprintf(&b, "• Holdings: %d positions\n", snap.NumPositions())
	if snap.StaleCount > 0 {
		fmt.Fprintf(&b, "• ⚠️ Stale prices: %d positions valued at cost\n", snap.StaleCount)
	}
	b.WriteString(divider)

	b.WriteString("\n*💎 HOLDINGS BREAKDOWN*\n\n")
	for _, p := range snap.ByValue {
		fmt.Fprintf(&b, "*%s* - %s\n", p.Symbol, truncate(p.CompanyName, 20))
		fmt.Fprintf(&b, "├ Position: %s shares @ $%s\n", Qty(p.Quantity), Money(p.AvgCost))
		fmt.Fprintf(&b, "├ Current: $%s (%s today)", Money(p.CurrentPrice), SignedPct(p.DailyChangePct))
		if p.Stale {
			b.WriteString(" ⚠️ stale")
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "├ Value: $%s (%.1f%% of portfolio)\n",
			Money(p.CurrentValue), allocationPct(p, snap))
		fmt.Fprintf(&b, "└ P&L: $%s (%s)\n\n", SignedMoney(p.UnrealizedPnL), SignedPct(p.UnrealizedPnLPct))
	}

	b.WriteString(divider)
	b.WriteString("*📊 PERFORMANCE METRICS*\n\n")
	fmt.Fprintf(&b, "• Profitable Positions: %d of %d\n", snap.Winners, snap.NumPositions())
	if snap.Winners+snap.Losers > 0 {
		fmt.Fprintf(&b, "• Win Rate: %.0f%%\n", snap.WinRate*100)
	}
	if snap.Winners > 0 {
		fmt.Fprintf(&b, "• Avg Winner: $%s (%s)\n", SignedMoney(snap.AvgWinnerPnL), SignedPct(snap.AvgWinnerPct))
	}
	if snap.Losers > 0 {
		fmt.Fprintf(&b, "• Avg Loser: $%s (%s)\n", SignedMoney(snap.AvgLoserPnL), SignedPct(snap.AvgLoserPct))
	}
	if finite(snap.RiskReward) && snap.RiskReward > 0 {
		fmt.Fprintf(&b, "• Risk/Reward: %.2f\n", snap.RiskReward)
	}

	b.WriteString("\n*Individual Stock Performance:*\n")
	for _, p := range snap.ByPerformance {
		icon := "➖"
		switch p.UnrealizedPnL.Sign() {
		case 1:
			icon = "📈"
		case -1:
			icon = "📉"
		}
		fmt.Fprintf(&b, "%s *%s*: $%s (%s)\n", icon, p.Symbol, SignedMoney(p.UnrealizedPnL), SignedPct(p.UnrealizedPnLPct))
	}

	b.WriteString("\n*Portfolio Analysis:*\n")
	fmt.Fprintf(&b, "• Diversification: %d different stocks\n", snap.NumPositions())
	if snap.Largest != nil {
		fmt.Fprintf(&b, "• Largest Position: %s (%.1f%% of portfolio)\n", snap.Largest.Symbol, snap.Concentration*100)
	}
	if snap.Smallest != nil && snap.NumPositions() > 1 {
		fmt.Fprintf(&b, "• Smallest Position: %s (%.1f%% of portfolio)\n",
			snap.Smallest.Symbol, allocationPct(*snap.Smallest, snap))
	}
	if finite(snap.DispersionRatio) && snap.DispersionRatio > 10 {
		fmt.Fprintf(&b, "• Balance Alert: Largest position is %.1fx the smallest\n", snap.DispersionRatio)
	}
	if finite(snap.GainLossRatio) && snap.GainLossRatio > 0 {
		fmt.Fprintf(&b, "• Gain/Loss Ratio: %.2f:1\n", snap.GainLossRatio)
	}

	if len(recent) > 0 {
		b.WriteString("\n")
		b.WriteString(divider)
		b.WriteString("*🕐 RECENT ACTIVITY*\n")
		for _, t := range recent {
			icon := "🟢"
			if t.Action == domain.ActionSell {
				icon = "🔴"
			}
			fmt.Fprintf(&b, "%s %s: %s %s %s @ $%s\n",
				icon, t.ExecutedAt.Format("2006-01-02"),
				strings.ToUpper(t.Action.String()), Qty(t.Quantity), t.Symbol, Money(t.Price))
		}
	}
	return b.String()
}

func allocationPct(p domain.Position, snap *domain.PortfolioSnapshot) float64 {
	if snap.TotalCurrentValue.IsZero() {
		return 0
	}
	v, _ := p.CurrentValue.Div(snap.TotalCurrentValue).Float64()
	return v * 100
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

// maxHistoryRows caps the detailed trade list in /trades.
const maxHistoryRows = 15

// TradeHistory formats the trade log: summary statistics followed by
// the most recent executions, newest first.
func TradeHistory(trades []domain.Trade) string {
	if len(trades) == 0 {
		return `📊 *Trade History*

_No trades recorded yet._

Start tracking with:
` + "`/trade buy AAPL 10 150`"
	}

	buys, sells := 0, 0
	symbols := map[string]bool{}
	totalVolume := decimal.Zero
	for _, t := range trades {
		totalVolume = totalVolume.Add(t.Total())
		symbols[t.Symbol] = true
		if t.Action == domain.ActionBuy {
			buys++
		} else {
			sells++
		}
	}

	var b strings.Builder
	b.WriteString("📊 *TRADE EXECUTION HISTORY*\n")
	b.WriteString(divider)
	b.WriteString("\n*📈 SUMMARY STATISTICS*\n")
	fmt.Fprintf(&b, "• Total Trades: %d\n", len(trades))
	fmt.Fprintf(&b, "• Buy Orders: %d | Sell Orders: %d\n", buys, sells)
	fmt.Fprintf(&b, "• Total Volume: $%s\n", Money(totalVolume))
	fmt.Fprintf(&b, "• Unique Symbols: %d\n", len(symbols))
	b.WriteString(divider)
	b.WriteString("\n*📋 RECENT EXECUTIONS*\n\n")

	shown := len(trades)
	if shown > maxHistoryRows {
		shown = maxHistoryRows
	}
	for i := 0; i < shown; i++ {
		t := trades[len(trades)-1-i]
		icon := "🟢"
		if t.Action == domain.ActionSell {
			icon = "🔴"
		}
		fmt.Fprintf(&b, "%s *Trade #%d*\n", icon, t.ID)
		fmt.Fprintf(&b, "   📅 %s at %s\n", t.ExecutedAt.Format("2006-01-02"), t.ExecutedAt.Format("15:04:05"))
		fmt.Fprintf(&b, "   📊 %s: %s × %s @ $%s\n",
			strings.ToUpper(t.Action.String()), Qty(t.Quantity), t.Symbol, Money(t.Price))
		fmt.Fprintf(&b, "   💵 Total Value: $%s\n", Money(t.Total()))
		if i < shown-1 {
			b.WriteString("   ─────────────────────\n")
		}
	}

	fmt.Fprintf(&b, "\n_Showing %d most recent trades out of %d total_", shown, len(trades))
	return b.String()
}

// StatusInfo carries the counters shown by /status.
type StatusInfo struct {
	Version        string
	Uptime         time.Duration
	Users          int
	Watchlists     int
	ActiveAlerts   int
	HandledUpdates int64
}

// Status formats the bot status card.
func Status(info StatusInfo) string {
	uptime := int(info.Uptime.Seconds())
	hours := uptime / 3600
	minutes := (uptime % 3600) / 60
	seconds := uptime % 60

	var b strings.Builder
	b.WriteString("📊 *Bot Status*\n\n")
	b.WriteString("✅ Status: Operational\n")
	fmt.Fprintf(&b, "⏱️ Uptime: %dh %dm %ds\n", hours, minutes, seconds)
	fmt.Fprintf(&b, "🔧 Version: %s\n\n", info.Version)
	b.WriteString("📡 *Activity:*\n")
	fmt.Fprintf(&b, "• Traders: %d\n", info.Users)
	fmt.Fprintf(&b, "• Watchlists: %d\n", info.Watchlists)
	fmt.Fprintf(&b, "• Active Alerts: %d\n", info.ActiveAlerts)
	fmt.Fprintf(&b, "• Updates Handled: %d\n\n", info.HandledUpdates)
	b.WriteString("💡 All core features are operational.")
	return b.String()
}
