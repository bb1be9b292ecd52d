package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// ArticleRepository persists articles. Get returns (nil, nil) when the row does not exist;
// Update, Delete and IncrementViews return an error wrapping entity.ErrNotFound instead.
type ArticleRepository interface {
	// List returns articles matching filter ordered by published_at DESC, id DESC,
	// with Category and Author populated.
	List(ctx context.Context, filter entity.ArticleFilter) ([]*entity.Article, error)
	// Count returns the number of rows List would return without limit/offset.
	Count(ctx context.Context, filter entity.ArticleFilter) (int64, error)
	Get(ctx context.Context, id int64) (*entity.Article, error)
	// Search matches keyword case-insensitively against title, content and excerpt
	// of published articles.
	Search(ctx context.Context, keyword string, limit int) ([]*entity.Article, error)
	Create(ctx context.Context, article *entity.Article) error
	Update(ctx context.Context, article *entity.Article) error
	Delete(ctx context.Context, id int64) error
	// SlugExists reports whether slug is taken by any article other than excludeID.
	SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error)
	IncrementViews(ctx context.Context, id int64) error
	// ResetFlags clears is_breaking and is_featured on every article.
	ResetFlags(ctx context.Context) (int64, error)
	// CountByStatus returns article totals keyed by status.
	CountByStatus(ctx context.Context) (map[entity.ArticleStatus]int64, error)
}
