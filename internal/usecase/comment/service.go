package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/pkg/validate"
	"newsdesk/internal/repository"
	"newsdesk/internal/utils/text"
)

const (
	maxAuthorName = 100
	maxContent    = 5000
)

type CreateInput struct {
	ArticleID   int64
	AuthorName  string
	AuthorEmail string
	Content     string
}

type Service struct {
	Repo repository.CommentRepository
}

// Create stores an unapproved comment. Content is reduced to plain text.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Comment, error) {
	if in.ArticleID <= 0 {
		return nil, ErrArticleNotFound
	}
	c := &entity.Comment{
		ArticleID:   in.ArticleID,
		AuthorName:  strings.TrimSpace(in.AuthorName),
		AuthorEmail: strings.ToLower(strings.TrimSpace(in.AuthorEmail)),
		Content:     text.PlainText(in.Content),
	}

	fields := entity.ValidationErrors{}
	switch {
	case c.AuthorName == "":
		fields["authorName"] = "authorName is required"
	case text.CountRunes(c.AuthorName) > maxAuthorName:
		fields["authorName"] = fmt.Sprintf("authorName must be at most %d characters long", maxAuthorName)
	}
	if c.AuthorEmail != "" && !validate.Email(c.AuthorEmail) {
		fields["authorEmail"] = "authorEmail must be a valid email address"
	}
	switch {
	case c.Content == "":
		fields["content"] = "content is required"
	case text.CountRunes(c.Content) > maxContent:
		fields["content"] = fmt.Sprintf("content must be at most %d characters long", maxContent)
	}
	if len(fields) > 0 {
		return nil, fields
	}

	if err := s.Repo.Create(ctx, c); err != nil {
		// article_id の FK 違反は ErrInvalidInput に変換されている
		if errors.Is(err, entity.ErrInvalidInput) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("create comment: %w", err)
	}
	metrics.RecordCommentSubmitted()
	return c, nil
}

// List returns the moderation queue, optionally filtered by approval.
func (s *Service) List(ctx context.Context, approved *bool) ([]*entity.Comment, error) {
	list, err := s.Repo.List(ctx, approved)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return list, nil
}

func (s *Service) Approve(ctx context.Context, id int64) (*entity.Comment, error) {
	if id <= 0 {
		return nil, ErrInvalidCommentID
	}
	if err := s.Repo.Approve(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, fmt.Errorf("approve comment: %w", err)
	}
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get comment: %w", err)
	}
	if c == nil {
		return nil, ErrCommentNotFound
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCommentID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrCommentNotFound
		}
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
