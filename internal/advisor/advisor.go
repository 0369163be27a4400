// Package advisor produces deterministic canned analysis text derived
// from market quotes. It stands in for an external AI service.
package advisor

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

// Band widths around the current price used for the canned
// support/resistance levels, in percent.
const (
	supportBandPct    = 3.5
	resistanceBandPct = 3.5
)

// Advisor generates analysis and chat replies without any external
// service. All output is deterministic for a given quote.
type Advisor struct{}

// New returns a canned advisor.
func New() *Advisor {
	return &Advisor{}
}

// Analyze builds a technical-style summary from the quote: trend from
// the change sign, support/resistance bands around the current price,
// and a momentum note from the change magnitude.
func (a *Advisor) Analyze(q *domain.Quote) string {
	trend, insight := trendFor(q.ChangePercent)
	support := adjustPct(q.Price, -supportBandPct)
	resistance := adjustPct(q.Price, resistanceBandPct)

	var b strings.Builder
	fmt.Fprintf(&b, "📈 *%s Analysis*\n\n", q.Symbol)
	b.WriteString("🎯 *Technical Indicators:*\n")
	fmt.Fprintf(&b, "• Trend: %s\n", trend)
	fmt.Fprintf(&b, "• Support: $%s\n", support.StringFixed(2))
	fmt.Fprintf(&b, "• Resistance: $%s\n", resistance.StringFixed(2))
	fmt.Fprintf(&b, "• Volume: %s\n\n", volumeNote(q.Volume))
	fmt.Fprintf(&b, "💡 *Insight:* %s\n\n", insight)
	b.WriteString("⚠️ Demo mode — connect an analysis provider for detailed AI insight")
	return b.String()
}

// Chat answers free-form text. Without an external service configured
// it echoes the question with a simplified-mode notice.
func (a *Advisor) Chat(message string) string {
	message = strings.TrimSpace(message)
	if message == "" {
		return "Please provide a message to chat about."
	}
	return fmt.Sprintf(
		"I'm currently running in simplified mode. "+
			"To enable AI-powered responses, configure an analysis provider. "+
			"You asked: %s", message)
}

func trendFor(changePct float64) (trend, insight string) {
	switch {
	case changePct >= 1.5:
		return "Strong Bullish 📈",
			"The stock shows strong upward momentum. Watch for a breakout above resistance."
	case changePct > 0:
		return "Bullish 📈",
			"The stock shows mild upward momentum. Consider monitoring key resistance levels."
	case changePct <= -1.5:
		return "Strong Bearish 📉",
			"The stock is under heavy selling pressure. Watch support levels closely."
	case changePct < 0:
		return "Bearish 📉",
			"The stock shows mild downward pressure. Support levels may offer entries."
	default:
		return "Neutral ➡️",
			"The stock is trading flat. Wait for a clearer directional signal."
	}
}

func volumeNote(volume int64) string {
	switch {
	case volume >= 50_000_000:
		return "Heavy"
	case volume >= 10_000_000:
		return "Moderate"
	default:
		return "Light"
	}
}

func adjustPct(price decimal.Decimal, pct float64) decimal.Decimal {
	return price.Mul(decimal.NewFromFloat(1 + pct/100)).Round(2)
}
