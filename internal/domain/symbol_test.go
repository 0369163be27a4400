package domain

import "testing"

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"aapl", "AAPL"},
		{"  tsla ", "TSLA"},
		{"BRK.B", "BRK.B"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeSymbol(tt.in); got != tt.want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidSymbol(t *testing.T) {
	valid := []string{"A", "AAPL", "BRK.B", "BF-B", "ABC123", "ABCDEFGHIJ"}
	for _, s := range valid {
		if !ValidSymbol(s) {
			t.Errorf("ValidSymbol(%q) = false, want true", s)
		}
	}

	invalid := []string{"", "aapl", "A APL", "TOOLONGSYMBOL", "AB$", "A/B"}
	for _, s := range invalid {
		if ValidSymbol(s) {
			t.Errorf("ValidSymbol(%q) = true, want false", s)
		}
	}
}
