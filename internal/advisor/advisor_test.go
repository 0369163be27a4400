package advisor

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tradeai/stockbot/internal/domain"
)

func quote(symbol, price string, changePct float64, volume int64) *domain.Quote {
	return &domain.Quote{
		Symbol:        symbol,
		Price:         decimal.RequireFromString(price),
		ChangePercent: changePct,
		Volume:        volume,
	}
}

func TestAnalyzeTrends(t *testing.T) {
	a := New()

	tests := []struct {
		name      string
		changePct float64
		wantTrend string
	}{
		{"strong bullish", 2.4, "Strong Bullish"},
		{"bullish", 0.8, "Bullish 📈"},
		{"neutral", 0, "Neutral"},
		{"bearish", -0.5, "Bearish 📉"},
		{"strong bearish", -2.9, "Strong Bearish"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Analyze(quote("AAPL", "200.00", tt.changePct, 20_000_000))
			if !strings.Contains(got, tt.wantTrend) {
				t.Errorf("expected trend %q in analysis:\n%s", tt.wantTrend, got)
			}
		})
	}
}

func TestAnalyzeBands(t *testing.T) {
	a := New()

	got := a.Analyze(quote("AAPL", "200.00", 1.0, 20_000_000))

	if !strings.Contains(got, "Support: $193.00") {
		t.Errorf("expected support band at 193.00:\n%s", got)
	}
	if !strings.Contains(got, "Resistance: $207.00") {
		t.Errorf("expected resistance band at 207.00:\n%s", got)
	}
	if !strings.Contains(got, "AAPL") {
		t.Errorf("expected symbol in analysis:\n%s", got)
	}
	if !strings.Contains(got, "Demo mode") {
		t.Errorf("expected demo-mode notice:\n%s", got)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	a := New()
	q := quote("TSLA", "252.50", -1.2, 60_000_000)

	if a.Analyze(q) != a.Analyze(q) {
		t.Error("expected identical analysis for identical quote")
	}
}

func TestAnalyzeVolumeNotes(t *testing.T) {
	a := New()

	tests := []struct {
		volume int64
		want   string
	}{
		{80_000_000, "Heavy"},
		{20_000_000, "Moderate"},
		{1_000_000, "Light"},
	}

	for _, tt := range tests {
		got := a.Analyze(quote("AAPL", "200.00", 0.5, tt.volume))
		if !strings.Contains(got, tt.want) {
			t.Errorf("volume %d: expected note %q in analysis", tt.volume, tt.want)
		}
	}
}

func TestChat(t *testing.T) {
	a := New()

	got := a.Chat("should I buy AAPL?")
	if !strings.Contains(got, "simplified mode") {
		t.Errorf("expected simplified-mode notice, got %q", got)
	}
	if !strings.Contains(got, "should I buy AAPL?") {
		t.Errorf("expected question echoed back, got %q", got)
	}
}

func TestChatEmptyMessage(t *testing.T) {
	a := New()

	got := a.Chat("   ")
	if !strings.Contains(got, "provide a message") {
		t.Errorf("expected prompt for a message, got %q", got)
	}
}
