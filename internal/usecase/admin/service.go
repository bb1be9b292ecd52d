package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
	authUC "newsdesk/internal/usecase/auth"
	aucUC "newsdesk/internal/usecase/auction"
)

// Service bundles the repositories the maintenance commands touch.
type Service struct {
	Users      repository.UserRepository
	Categories repository.CategoryRepository
	Articles   repository.ArticleRepository
	Auctions   repository.AuctionRepository
	Snapshots  repository.SnapshotRepository
	Closer     *aucUC.Service
	BcryptCost int
	Logger     *slog.Logger
}

func (s *Service) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// UserInput is the payload of CreateUser.
type UserInput struct {
	Email    string
	Password string
	Name     string
	Role     entity.Role
}

// CreateUser creates the account, or resets password, name and role when the
// email already exists. created reports which happened.
func (s *Service) CreateUser(ctx context.Context, in UserInput) (u *entity.User, created bool, err error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	fields := entity.ValidationErrors{}
	if email == "" {
		fields["email"] = "email is required"
	}
	if in.Password == "" {
		fields["password"] = "password is required"
	}
	role := in.Role
	if role == "" {
		role = entity.RoleAdmin
	}
	if !role.Valid() {
		fields["role"] = "role must be admin, editor or author"
	}
	if len(fields) > 0 {
		return nil, false, fields
	}

	hash, err := authUC.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, false, err
	}

	existing, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		return nil, false, fmt.Errorf("get user by email: %w", err)
	}
	if existing != nil {
		existing.PasswordHash = hash
		existing.Role = role
		if name := strings.TrimSpace(in.Name); name != "" {
			existing.Name = name
		}
		if err := s.Users.UpdateCredentials(ctx, existing); err != nil {
			return nil, false, fmt.Errorf("update user: %w", err)
		}
		s.logger().Info("user updated", slog.Int64("user_id", existing.ID), slog.String("role", string(role)))
		return existing, false, nil
	}

	u = &entity.User{Email: email, PasswordHash: hash, Name: strings.TrimSpace(in.Name), Role: role}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	s.logger().Info("user created", slog.Int64("user_id", u.ID), slog.String("role", string(role)))
	return u, true, nil
}

func (s *Service) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// ResetArticleFlags clears is_breaking and is_featured everywhere.
func (s *Service) ResetArticleFlags(ctx context.Context) (int64, error) {
	n, err := s.Articles.ResetFlags(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset article flags: %w", err)
	}
	s.logger().Info("article flags reset", slog.Int64("rows", n))
	return n, nil
}

// DeleteArticles hard-deletes ids. Missing ids are reported, not fatal.
func (s *Service) DeleteArticles(ctx context.Context, ids []int64) (deleted int, missing []int64, err error) {
	if len(ids) == 0 {
		return 0, nil, ErrNoArticleIDs
	}
	for _, id := range ids {
		err := s.Articles.Delete(ctx, id)
		switch {
		case err == nil:
			deleted++
		case errors.Is(err, entity.ErrNotFound):
			missing = append(missing, id)
		default:
			return deleted, missing, fmt.Errorf("delete article %d: %w", id, err)
		}
	}
	s.logger().Info("articles deleted", slog.Int("deleted", deleted), slog.Int("missing", len(missing)))
	return deleted, missing, nil
}

// PurgeAuctions deletes every auction; bids cascade.
func (s *Service) PurgeAuctions(ctx context.Context) (int64, error) {
	n, err := s.Auctions.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("purge auctions: %w", err)
	}
	s.logger().Info("auctions purged", slog.Int64("rows", n))
	return n, nil
}

// CloseAuctions runs the expiry sweep once.
func (s *Service) CloseAuctions(ctx context.Context) (int64, error) {
	n, err := s.Closer.CloseExpired(ctx)
	if err != nil {
		return 0, err
	}
	s.logger().Info("auctions closed", slog.Int64("rows", n))
	return n, nil
}

// Stats is the summary printed by the stats command.
type Stats struct {
	Articles   map[entity.ArticleStatus]int64 `json:"articles" yaml:"articles"`
	Users      int64                          `json:"users" yaml:"users"`
	Categories int64                          `json:"categories" yaml:"categories"`
}

func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() (err error) {
		if st.Articles, err = s.Articles.CountByStatus(ctx); err != nil {
			return fmt.Errorf("count articles: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if st.Users, err = s.Users.Count(ctx); err != nil {
			return fmt.Errorf("count users: %w", err)
		}
		return nil
	})
	eg.Go(func() (err error) {
		if st.Categories, err = s.Categories.Count(ctx); err != nil {
			return fmt.Errorf("count categories: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	byStatus := make(map[string]int64, len(st.Articles))
	for status, n := range st.Articles {
		byStatus[string(status)] = n
	}
	metrics.UpdateArticlesTotal(byStatus)
	return &st, nil
}
