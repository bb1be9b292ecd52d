// Package article provides use cases for managing article entities.
// It implements the newsroom's publishing rules: slug resolution, HTML sanitizing,
// excerpt derivation and publication stamping.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is invalid.
	// Article IDs must be positive integers.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrCategoryNotFound is returned when categoryId points at no category.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrEmptyQuery is returned by Search for a blank query.
	ErrEmptyQuery = errors.New("search query is required")

	// ErrSlugExhausted means no free slug was found within maxSlugAttempts.
	ErrSlugExhausted = errors.New("could not allocate a unique slug")
)
