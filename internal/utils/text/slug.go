package text

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultSlug is used when a title has no slug-able characters at all.
const DefaultSlug = "article"

// Slugify lower-cases s, strips diacritics and collapses every run of characters
// outside [a-z0-9] into a single "-", trimming dashes at both ends.
//
//	Slugify("Breaking News!")      // "breaking-news"
//	Slugify("  Amakuru y'Ubukungu") // "amakuru-y-ubukungu"
//	Slugify("Café Élysée")         // "cafe-elysee"
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = strings.ToLower(folded)

	var b strings.Builder
	b.Grow(len(folded))
	dash := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// SlugCandidate returns base for n == 0 and base-n otherwise.
func SlugCandidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
