// Package render formats bot replies as Telegram Markdown. Every
// function is pure: data in, text out.
package render

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n"

// Money formats a dollar amount with thousands grouping and two
// decimal places, e.g. "1,234.56".
func Money(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, fracPart, _ := strings.Cut(s, ".")

	grouped := groupThousands(intPart)
	if d.Sign() < 0 {
		grouped = "-" + grouped
	}
	return grouped + "." + fracPart
}

// SignedMoney is Money with an explicit leading sign, e.g. "+25.00".
func SignedMoney(d decimal.Decimal) string {
	if d.Sign() >= 0 {
		return "+" + Money(d)
	}
	return Money(d)
}

// SignedPct formats a percentage with an explicit sign, e.g. "+2.50%".
func SignedPct(pct float64) string {
	return fmt.Sprintf("%+.2f%%", pct)
}

// Qty formats a share quantity, trimming trailing zeros so whole-share
// positions read as integers.
func Qty(d decimal.Decimal) string {
	s := d.String()
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// Volume formats a share volume compactly, e.g. "12.3M".
func Volume(v int64) string {
	if v >= 1_000_000 {
		return fmt.Sprintf("%.1fM", float64(v)/1_000_000)
	}
	return groupThousands(fmt.Sprintf("%d", v))
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}

	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(digits[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// truncate shortens a name to at most n characters.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
