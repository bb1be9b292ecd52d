package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
	"newsdesk/internal/utils/text"
)

// ArticlesPerCategory is the page size of the category landing page.
const ArticlesPerCategory = 20

type CreateInput struct {
	Name         string
	NameRw       string
	Slug         string
	Description  string
	Icon         string
	DisplayOrder int
	Active       *bool
}

// UpdateInput is a partial update; nil fields are left alone.
type UpdateInput struct {
	ID           int64
	Name         *string
	NameRw       *string
	Slug         *string
	Description  *string
	Icon         *string
	DisplayOrder *int
	Active       *bool
}

type Service struct {
	Repo     repository.CategoryRepository
	Articles repository.ArticleRepository
}

func (s *Service) List(ctx context.Context, active *bool) ([]*entity.Category, error) {
	list, err := s.Repo.List(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return list, nil
}

// BySlug returns the category and its most recent published articles.
func (s *Service) BySlug(ctx context.Context, slug string) (*entity.Category, []*entity.Article, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	c, err := s.Repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, nil, fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return nil, nil, ErrCategoryNotFound
	}
	articles, err := s.Articles.List(ctx, entity.ArticleFilter{
		CategorySlug: c.Slug,
		Status:       entity.StatusPublished,
		Limit:        ArticlesPerCategory,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("list category articles: %w", err)
	}
	return c, articles, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Category, error) {
	if id <= 0 {
		return nil, ErrInvalidCategoryID
	}
	c, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get category: %w", err)
	}
	if c == nil {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

func slugOrName(slug, name string) string {
	if s := text.Slugify(slug); s != "" {
		return s
	}
	return text.Slugify(name)
}

func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Category, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, entity.FieldError("name", "name is required")
	}
	slug := slugOrName(in.Slug, name)
	if slug == "" {
		return nil, entity.FieldError("slug", "slug must contain letters or digits")
	}
	c := &entity.Category{
		Name:         name,
		NameRw:       strings.TrimSpace(in.NameRw),
		Slug:         slug,
		Description:  in.Description,
		Icon:         in.Icon,
		DisplayOrder: in.DisplayOrder,
		Active:       true,
	}
	if in.Active != nil {
		c.Active = *in.Active
	}
	if err := s.Repo.Create(ctx, c); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("create category: %w", err)
	}
	return c, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Category, error) {
	c, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, entity.FieldError("name", "name cannot be empty")
		}
		c.Name = name
	}
	if in.Slug != nil {
		slug := text.Slugify(*in.Slug)
		if slug == "" {
			return nil, entity.FieldError("slug", "slug must contain letters or digits")
		}
		c.Slug = slug
	}
	if in.NameRw != nil {
		c.NameRw = strings.TrimSpace(*in.NameRw)
	}
	if in.Description != nil {
		c.Description = *in.Description
	}
	if in.Icon != nil {
		c.Icon = *in.Icon
	}
	if in.DisplayOrder != nil {
		c.DisplayOrder = *in.DisplayOrder
	}
	if in.Active != nil {
		c.Active = *in.Active
	}

	if err := s.Repo.Update(ctx, c); err != nil {
		switch {
		case errors.Is(err, entity.ErrNotFound):
			return nil, ErrCategoryNotFound
		case errors.Is(err, entity.ErrConflict):
			return nil, ErrDuplicateCategory
		}
		return nil, fmt.Errorf("update category: %w", err)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidCategoryID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}
