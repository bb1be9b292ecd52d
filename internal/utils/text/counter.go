// Package text provides utilities for text processing shared by the article and category
// services: rune-aware truncation, slug generation and HTML clean-up.
package text

import "strings"

// CountRunes counts the number of Unicode characters (runes) in the given text.
// Kinyarwanda and French text carry accented letters, so byte length is not a usable measure.
//
// Examples:
//
//	CountRunes("hello")   // returns 5
//	CountRunes("Amakuru") // returns 7
//	CountRunes("café")    // returns 4
func CountRunes(text string) int {
	return len([]rune(text))
}

// Truncate shortens text to at most max runes, cutting at the last word boundary
// and appending "…" when something was dropped.
func Truncate(text string, max int) string {
	text = strings.TrimSpace(text)
	if max <= 0 {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}

	cut := string(runes[:max])
	if i := strings.LastIndexAny(cut, " \n\t"); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:-") + "…"
}
