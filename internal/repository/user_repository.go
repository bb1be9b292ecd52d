package repository

import (
	"context"

	"newsdesk/internal/domain/entity"
)

// UserRepository persists staff accounts. Emails are stored lower-cased.
type UserRepository interface {
	// GetByEmail returns (nil, nil) when no user has email.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Get(ctx context.Context, id int64) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Create fails with entity.ErrConflict when the email is taken.
	Create(ctx context.Context, user *entity.User) error
	// UpdateCredentials sets a new hash, role and name for an existing account.
	UpdateCredentials(ctx context.Context, user *entity.User) error
	Count(ctx context.Context) (int64, error)
}
