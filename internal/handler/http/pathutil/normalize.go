package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern represents a regex pattern and its corresponding normalized template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns defines the list of patterns for dynamic routes.
// Patterns are evaluated in order from most specific to least specific.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/api/articles/\d+$`), Template: "/api/articles/:id"},
	{Pattern: regexp.MustCompile(`^/api/articles/\d+/view$`), Template: "/api/articles/:id/view"},
	{Pattern: regexp.MustCompile(`^/api/articles/\d+/comments$`), Template: "/api/articles/:id/comments"},

	{Pattern: regexp.MustCompile(`^/api/ads/\d+$`), Template: "/api/ads/:id"},
	{Pattern: regexp.MustCompile(`^/api/ads/\d+/(click|impression)$`), Template: "/api/ads/:id/$1"},

	{Pattern: regexp.MustCompile(`^/api/advertisements/\d+$`), Template: "/api/advertisements/:id"},
	{Pattern: regexp.MustCompile(`^/api/advertisements/\d+/(view|apply)$`), Template: "/api/advertisements/:id/$1"},

	{Pattern: regexp.MustCompile(`^/api/auctions/\d+$`), Template: "/api/auctions/:id"},
	{Pattern: regexp.MustCompile(`^/api/auctions/\d+/bid$`), Template: "/api/auctions/:id/bid"},

	{Pattern: regexp.MustCompile(`^/api/comments/\d+$`), Template: "/api/comments/:id"},
	{Pattern: regexp.MustCompile(`^/api/comments/\d+/approve$`), Template: "/api/comments/:id/approve"},

	// カテゴリは slug と ID が同じパターンを共有する
	{Pattern: regexp.MustCompile(`^/api/categories/[^/]+$`), Template: "/api/categories/:key"},
}

// NormalizePath normalizes dynamic URL paths to prevent metrics label cardinality explosion.
// It converts paths with IDs (e.g., /api/articles/123) to template format (e.g., /api/articles/:id).
// Static paths such as /api/articles/search or /health remain unchanged.
//
// Examples:
//
//	NormalizePath("/api/articles/123")          // "/api/articles/:id"
//	NormalizePath("/api/ads/7/click")           // "/api/ads/:id/click"
//	NormalizePath("/api/categories/politics")   // "/api/categories/:key"
//	NormalizePath("/api/articles/search")       // "/api/articles/search" (unchanged)
//	NormalizePath("/api/articles/123?x=1")      // "/api/articles/:id"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}

	// Strip trailing slash if present (except for root path)
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			if strings.Contains(p.Template, "$") {
				return p.Pattern.ReplaceAllString(path, p.Template)
			}
			return p.Template
		}
	}

	return path
}

// GetExpectedCardinality returns the expected number of unique path labels
// after normalization. Static endpoints are estimated.
func GetExpectedCardinality() int {
	staticCount := 25 // /api/health, /api/auth/login, /api/articles/latest, ...
	return len(pathPatterns) + staticCount
}
