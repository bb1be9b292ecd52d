package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// CategoryRepository persists categories.
type CategoryRepository interface {
	// List orders by display_order, then name. A nil active returns all rows.
	List(ctx context.Context, active *bool) ([]*entity.Category, error)
	Get(ctx context.Context, id int64) (*entity.Category, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Category, error)
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
