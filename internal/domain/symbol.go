package domain

import "strings"

// NormalizeSymbol canonicalizes a ticker symbol: trimmed and uppercased.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// ValidSymbol reports whether s looks like a ticker symbol after
// normalization: 1-10 characters drawn from uppercase letters, digits,
// dots, and hyphens (covers class shares like BRK.B).
func ValidSymbol(s string) bool {
	if len(s) == 0 || len(s) > 10 {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '.' || r == '-':
		default:
			return false
		}
	}
	return true
}
