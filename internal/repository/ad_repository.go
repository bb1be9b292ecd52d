package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// AdRepository persists display ads.
type AdRepository interface {
	List(ctx context.Context, filter entity.AdFilter) ([]*entity.Ad, error)
	Get(ctx context.Context, id int64) (*entity.Ad, error)
	Create(ctx context.Context, ad *entity.Ad) error
	Update(ctx context.Context, ad *entity.Ad) error
	Delete(ctx context.Context, id int64) error
	// IncrementClicks and IncrementImpressions are single atomic UPDATEs.
	IncrementClicks(ctx context.Context, id int64) error
	IncrementImpressions(ctx context.Context, id int64) error
}

// AdvertisementRepository persists job and classified listings.
type AdvertisementRepository interface {
	// List orders by is_featured DESC, created_at DESC.
	List(ctx context.Context, filter entity.AdvertisementFilter) ([]*entity.Advertisement, error)
	Count(ctx context.Context, filter entity.AdvertisementFilter) (int64, error)
	Get(ctx context.Context, id int64) (*entity.Advertisement, error)
	Create(ctx context.Context, ad *entity.Advertisement) error
	Update(ctx context.Context, ad *entity.Advertisement) error
	Delete(ctx context.Context, id int64) error
	// IncrementViews and IncrementApplicants return the new counter value.
	IncrementViews(ctx context.Context, id int64) (int64, error)
	IncrementApplicants(ctx context.Context, id int64) (int64, error)
}
