package render

import (
	"fmt"
	"strings"

	"github.com/tradeai/stockbot/internal/domain"
)

// Welcome is the /start reply.
func Welcome() string {
	return `🤖 Welcome to the Stock Market Bot!

I'm your paper-trading assistant:

📊 *Core Features:*
• /price AAPL - Get stock prices
• /market - Market overview
• /trending - Today's top movers
• /trade buy AAPL 10 150 - Record a paper trade
• /portfolio - Portfolio dashboard
• /watchlist - Track your favorite stocks
• /alert AAPL above 200 - Set price alerts
• /analyze TSLA - Stock analysis
• /chat - Ask me anything
• /status - Bot status

Type /help for detailed commands or just chat naturally!`
}

// Help is the /help reply.
func Help() string {
	return `📋 *Commands*

*📊 Market Data:*
/price [SYMBOL] - Stock price
/market - Market overview
/trending - Top movers
/analyze [SYMBOL] - Stock analysis

*💼 Paper Trading:*
/trade [buy|sell] SYMBOL QTY PRICE - Record a trade
/portfolio - Portfolio dashboard
/trades - Trade history

*📋 Tracking:*
/watchlist - View your watchlist
/watchlist add AAPL - Add a stock
/watchlist remove AAPL - Remove a stock
/alert [SYMBOL] [above|below] [PRICE] - Set alert
/alert remove [ID] - Remove an alert
/alerts - View active alerts

*🔧 Other:*
/chat [message] - Chat with the assistant
/status - Bot status
/help - This menu

💡 *Examples:*
• /price TSLA
• /trade buy AAPL 10 150.00
• /alert AAPL above 200`
}

// PriceCard formats a single quote.
func PriceCard(q *domain.Quote) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 *%s* (%s)\n\n", q.CompanyName, q.Symbol)
	fmt.Fprintf(&b, "💵 Price: $%s\n", Money(q.Price))
	fmt.Fprintf(&b, "📈 Change: %s (%s)\n", SignedMoney(q.Change), SignedPct(q.ChangePercent))
	fmt.Fprintf(&b, "📊 Volume: %s\n\n", Volume(q.Volume))
	fmt.Fprintf(&b, "📈 Day Range: $%s - $%s\n", Money(q.DayLow), Money(q.DayHigh))
	fmt.Fprintf(&b, "📅 52W Range: $%s - $%s\n", Money(q.Week52Low), Money(q.Week52High))
	fmt.Fprintf(&b, "💹 Market Cap: %s", q.MarketCap)
	if q.PERatio > 0 {
		fmt.Fprintf(&b, " | P/E: %.1f", q.PERatio)
	}
	fmt.Fprintf(&b, "\n\n🕐 Last Updated: %s", q.AsOf.Format("2006-01-02 15:04:05"))
	return b.String()
}

// MarketOverview formats the index summary.
func MarketOverview(s *domain.MarketSummary) string {
	var b strings.Builder
	b.WriteString("📊 *Market Overview*\n\n*Major Indices:*\n")
	for _, idx := range s.Indices {
		fmt.Fprintf(&b, "• %s: %s (%s)\n",
			idx.Name, groupThousands(fmt.Sprintf("%.0f", idx.Value)), SignedPct(idx.ChangePercent))
	}
	fmt.Fprintf(&b, "\n🎯 Sentiment: %s\n", s.Sentiment)
	fmt.Fprintf(&b, "🕐 As of: %s", s.AsOf.Format("2006-01-02 15:04:05"))
	return b.String()
}

// Trending formats the top-movers list.
func Trending(stocks []domain.TrendingStock) string {
	if len(stocks) == 0 {
		return "📊 No trending data available right now."
	}

	var b strings.Builder
	b.WriteString("🔥 *Trending Stocks*\n\n")
	for i, s := range stocks {
		icon := "🟢"
		if s.ChangePercent < 0 {
			icon = "🔴"
		}
		fmt.Fprintf(&b, "%d. %s *%s* - %s\n   $%s (%s)\n",
			i+1, icon, s.Symbol, truncate(s.CompanyName, 25), Money(s.Price), SignedPct(s.ChangePercent))
	}
	return b.String()
}

// TradeConfirmation formats a recorded trade.
func TradeConfirmation(t domain.Trade) string {
	icon := "🟢"
	if t.Action == domain.ActionSell {
		icon = "🔴"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s *Trade Recorded!*\n\n", icon)
	fmt.Fprintf(&b, "*Action*: %s\n", strings.ToUpper(t.Action.String()))
	fmt.Fprintf(&b, "*Symbol*: %s\n", t.Symbol)
	fmt.Fprintf(&b, "*Quantity*: %s\n", Qty(t.Quantity))
	fmt.Fprintf(&b, "*Price*: $%s\n", Money(t.Price))
	fmt.Fprintf(&b, "*Total*: $%s\n", Money(t.Total()))
	fmt.Fprintf(&b, "*Trade ID*: #%d\n\n", t.ID)
	b.WriteString("View portfolio: `/portfolio`")
	return b.String()
}

// TradeUsage is the /trade argument help.
func TradeUsage() string {
	return "❌ *Usage*: `/trade [buy|sell] SYMBOL QUANTITY PRICE`\n\n" +
		"*Examples:*\n" +
		"• `/trade buy AAPL 10 150.00`\n" +
		"• `/trade sell TSLA 5 250.00`"
}

// AlertCreated confirms a new alert.
func AlertCreated(a domain.Alert) string {
	return fmt.Sprintf("✅ Alert set successfully!\n\n"+
		"📊 %s %s $%s\n"+
		"🔔 Alert ID: %d\n\n"+
		"You'll be notified when the condition is met.",
		a.Symbol, a.Condition, Money(a.TargetPrice), a.ID)
}

// AlertUsage is the /alert argument help.
func AlertUsage() string {
	return "Usage: /alert [SYMBOL] [above|below] [PRICE]\n" +
		"Example: /alert AAPL above 150\n" +
		"Remove one with /alert remove [ID]"
}

// AlertRemoved confirms a deactivated alert.
func AlertRemoved(id int64) string {
	return fmt.Sprintf("✅ Alert #%d removed.", id)
}

// AlertNotFound is the reply when the alert ID does not match one of
// the user's active alerts.
func AlertNotFound(id int64) string {
	return fmt.Sprintf("❌ Alert #%d not found. Use /alerts to see your active alerts.", id)
}

// AlertList formats the user's active alerts.
func AlertList(alerts []domain.Alert) string {
	if len(alerts) == 0 {
		return "You don't have any active alerts. Use /alert to create one."
	}

	var b strings.Builder
	b.WriteString("🚨 *Your Active Alerts:*\n\n")
	for _, a := range alerts {
		fmt.Fprintf(&b, "• Alert #%d: %s %s $%s\n", a.ID, a.Symbol, a.Condition, Money(a.TargetPrice))
	}
	return b.String()
}

// AlertTriggered is the push notification for a crossed threshold.
func AlertTriggered(a domain.Alert, q *domain.Quote) string {
	return fmt.Sprintf("🚨 Alert Triggered!\n\n"+
		"📊 *%s* is now $%s (%s)\n"+
		"🎯 Your alert: %s $%s\n"+
		"🔔 Alert #%d has been deactivated.",
		a.Symbol, Money(q.Price), SignedPct(q.ChangePercent),
		a.Condition, Money(a.TargetPrice), a.ID)
}

// Fallback is the reply for non-command text without a /chat prefix.
func Fallback() string {
	return "💬 I understand text messages too! Try /chat followed by your question, " +
		"or /help to see everything I can do.\n\n" +
		"💡 Tip: Use /analyze [SYMBOL] for detailed stock analysis!"
}
