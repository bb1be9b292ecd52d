package pathutil

import (
	"testing"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{name: "article id", path: "/api/articles/123", expected: "/api/articles/:id"},
		{name: "article id trailing slash", path: "/api/articles/123/", expected: "/api/articles/:id"},
		{name: "article id with query", path: "/api/articles/123?page=1", expected: "/api/articles/:id"},
		{name: "article view", path: "/api/articles/9/view", expected: "/api/articles/:id/view"},
		{name: "article comments", path: "/api/articles/9/comments", expected: "/api/articles/:id/comments"},
		{name: "ad id", path: "/api/ads/4", expected: "/api/ads/:id"},
		{name: "ad click", path: "/api/ads/4/click", expected: "/api/ads/:id/click"},
		{name: "ad impression", path: "/api/ads/4/impression", expected: "/api/ads/:id/impression"},
		{name: "advertisement view", path: "/api/advertisements/8/view", expected: "/api/advertisements/:id/view"},
		{name: "advertisement apply", path: "/api/advertisements/8/apply", expected: "/api/advertisements/:id/apply"},
		{name: "auction bid", path: "/api/auctions/3/bid", expected: "/api/auctions/:id/bid"},
		{name: "comment approve", path: "/api/comments/5/approve", expected: "/api/comments/:id/approve"},
		{name: "category slug", path: "/api/categories/politics", expected: "/api/categories/:key"},
		{name: "category id", path: "/api/categories/2", expected: "/api/categories/:key"},

		// 静的パスはそのまま
		{name: "article search", path: "/api/articles/search", expected: "/api/articles/search"},
		{name: "article latest", path: "/api/articles/latest", expected: "/api/articles/latest"},
		{name: "breaking", path: "/api/articles/breaking/all", expected: "/api/articles/breaking/all"},
		{name: "categories root", path: "/api/categories", expected: "/api/categories"},
		{name: "health", path: "/health", expected: "/health"},
		{name: "root", path: "/", expected: "/"},
		{name: "unknown", path: "/unknown/path/123", expected: "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePath(tt.path); got != tt.expected {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestGetExpectedCardinality(t *testing.T) {
	if got := GetExpectedCardinality(); got <= len(pathPatterns) {
		t.Errorf("GetExpectedCardinality() = %d, want more than %d", got, len(pathPatterns))
	}
}
