// Package strings provides string helpers shared by the catalog packages.
package strings

import (
	"strings"
	"unicode/utf8"
)

// DistinctTrimmed trims each value and drops blanks and duplicates, keeping
// first-seen order. Used to derive one filter entry per distinct issuer.
//
// Example:
//
//	DistinctTrimmed([]string{" Gov ", "Bank", "Gov", ""})
//	// Returns: []string{"Gov", "Bank"}
func DistinctTrimmed(values []string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// ContainsFold reports whether substr occurs in s under Unicode case folding.
// An empty substr is contained in every string.
func ContainsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	n := utf8.RuneCountInString(substr)
	for i := range s {
		if hasPrefixFold(s[i:], substr, n) {
			return true
		}
	}
	return false
}

func hasPrefixFold(s, prefix string, runes int) bool {
	end := 0
	for j := 0; j < runes; j++ {
		if end >= len(s) {
			return false
		}
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return strings.EqualFold(s[:end], prefix)
}
