package scoring

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// normalizeText applies NFKC normalization, lowercases, and trims whitespace.
// Both keywords and candidate text pass through this before matching, so
// compatibility variants (ligatures, full-width forms) compare equal.
func normalizeText(text string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFKC.String(text)))
}

// containsKeyword reports whether the already-normalized keyword occurs as a
// substring of the already-normalized text.
func containsKeyword(normalizedText, normalizedKeyword string) bool {
	if normalizedKeyword == "" {
		return false
	}
	return strings.Contains(normalizedText, normalizedKeyword)
}
