package text

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer cleans editor-supplied article HTML.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer returns a sanitizer based on the UGC policy with safe links.
func NewSanitizer() *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return &Sanitizer{policy: p}
}

// SanitizeHTML strips scripts, event handlers and other unsafe markup.
func (s *Sanitizer) SanitizeHTML(html string) string {
	return strings.TrimSpace(s.policy.Sanitize(html))
}

// PlainText extracts the visible text of an HTML fragment with whitespace collapsed.
// Input that is not HTML comes back trimmed.
func PlainText(html string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return strings.Join(strings.Fields(html), " ")
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " ")
}

// Excerpt derives a teaser of at most max runes from HTML content.
func Excerpt(html string, max int) string {
	return Truncate(PlainText(html), max)
}
