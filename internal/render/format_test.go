package render

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0.00"},
		{"5", "5.00"},
		{"150.5", "150.50"},
		{"1234.56", "1,234.56"},
		{"1234567.891", "1,234,567.89"},
		{"-1234.5", "-1,234.50"},
		{"999", "999.00"},
		{"1000", "1,000.00"},
	}

	for _, tt := range tests {
		if got := Money(dec(tt.in)); got != tt.want {
			t.Errorf("Money(%s): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestSignedMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"25", "+25.00"},
		{"0", "+0.00"},
		{"-1250.5", "-1,250.50"},
	}

	for _, tt := range tests {
		if got := SignedMoney(dec(tt.in)); got != tt.want {
			t.Errorf("SignedMoney(%s): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestSignedPct(t *testing.T) {
	if got := SignedPct(2.5); got != "+2.50%" {
		t.Errorf("expected +2.50%%, got %s", got)
	}
	if got := SignedPct(-0.333); got != "-0.33%" {
		t.Errorf("expected -0.33%%, got %s", got)
	}
}

func TestQty(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"10", "10"},
		{"10.00", "10"},
		{"2.5", "2.5"},
		{"0.125", "0.125"},
	}

	for _, tt := range tests {
		if got := Qty(dec(tt.in)); got != tt.want {
			t.Errorf("Qty(%s): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}

func TestVolume(t *testing.T) {
	if got := Volume(12_300_000); got != "12.3M" {
		t.Errorf("expected 12.3M, got %s", got)
	}
	if got := Volume(950_000); got != "950,000" {
		t.Errorf("expected 950,000, got %s", got)
	}
}
