package value

import "strings"

// IsIntegralLexeme reports whether s spells a number without a fraction or an
// exponent, e.g. "34" or "-7" but not "3.0" or "1e3".
func IsIntegralLexeme(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	return !strings.ContainsAny(s, ".eE")
}
