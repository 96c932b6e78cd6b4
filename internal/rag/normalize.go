package rag

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldMarks decomposes characters and strips combining diacritical marks, so
// accented input matches its unaccented ASCII form ("café" -> "cafe").
var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize lowercases text, folds diacritics, replaces every character
// outside [a-z0-9], whitespace, hyphen, underscore and period with a space,
// collapses whitespace runs and trims the ends. It is total: empty input
// yields an empty string, and the function is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	lower := strings.ToLower(text)
	folded, _, err := transform.String(foldMarks, lower)
	if err != nil {
		folded = lower
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Tokenize normalizes text and splits it into tokens. Empty input yields an
// empty (nil) token list, never an error.
func Tokenize(text string) []string {
	return strings.Fields(Normalize(text))
}

// overlapScore computes |query ∩ entity| / max(|unique query|, |entity|).
// The asymmetric normalization penalizes long entity text even under full
// query coverage. Returns 0 when either side is empty.
func overlapScore(queryTokens, entityTokens []string) float64 {
	if len(queryTokens) == 0 || len(entityTokens) == 0 {
		return 0
	}

	entitySet := make(map[string]struct{}, len(entityTokens))
	for _, t := range entityTokens {
		entitySet[t] = struct{}{}
	}

	querySet := make(map[string]struct{}, len(queryTokens))
	matched := 0
	for _, t := range queryTokens {
		if _, seen := querySet[t]; seen {
			continue
		}
		querySet[t] = struct{}{}
		if _, ok := entitySet[t]; ok {
			matched++
		}
	}

	denom := len(querySet)
	if len(entityTokens) > denom {
		denom = len(entityTokens)
	}

	return float64(matched) / float64(denom)
}

// containsAny reports whether s contains any of the given substrings.
func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
