// Package entity defines the core domain entities and validation logic for the application.
// It contains the newsroom's business objects (articles, categories, ads, auctions and their
// satellites) along with their domain-specific errors.
package entity

import "time"

// ArticleStatus is the publication state of an article.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusPublished ArticleStatus = "published"
)

// Valid reports whether s is a known status.
func (s ArticleStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Article represents a news article entity in the system.
type Article struct {
	ID          int64
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	ImageURL    string
	CategoryID  *int64
	AuthorID    *int64
	IsBreaking  bool
	IsFeatured  bool
	Status      ArticleStatus
	PublishedAt *time.Time
	Views       int64
	CreatedAt   time.Time
	UpdatedAt   *time.Time

	// 一覧・詳細取得時に JOIN で埋める
	Category *CategoryRef
	Author   *AuthorRef
	Comments []*Comment
}

// CategoryRef is the slice of a category embedded in article responses.
type CategoryRef struct {
	ID     int64
	Name   string
	NameRw string
	Slug   string
}

// AuthorRef is the slice of a user embedded in article responses.
type AuthorRef struct {
	ID    int64
	Name  string
	Email string
}

// Publish moves the article to published, stamping PublishedAt on the first transition.
func (a *Article) Publish(now time.Time) {
	if a.Status != StatusPublished || a.PublishedAt == nil {
		t := now
		a.PublishedAt = &t
	}
	a.Status = StatusPublished
}

// ArticleFilter narrows article listings.
type ArticleFilter struct {
	CategorySlug string
	Status       ArticleStatus
	IsBreaking   *bool
	IsFeatured   *bool
	Limit        int
	Offset       int
}
