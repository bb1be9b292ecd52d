package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// CommentRepository persists reader comments.
type CommentRepository interface {
	// ListByArticle returns comments oldest first; approvedOnly hides the moderation queue.
	ListByArticle(ctx context.Context, articleID int64, approvedOnly bool) ([]*entity.Comment, error)
	// List returns comments newest first. A nil approved returns all rows.
	List(ctx context.Context, approved *bool) ([]*entity.Comment, error)
	Get(ctx context.Context, id int64) (*entity.Comment, error)
	Create(ctx context.Context, comment *entity.Comment) error
	Approve(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
}

// SubscriberRepository persists newsletter subscriptions.
type SubscriberRepository interface {
	// Subscribe inserts email or reactivates an existing row.
	Subscribe(ctx context.Context, sub *entity.Subscriber) error
	// Unsubscribe returns an error wrapping entity.ErrNotFound for unknown emails.
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, active *bool) ([]*entity.Subscriber, error)
}
