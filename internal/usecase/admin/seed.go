package admin

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"gopkg.in/yaml.v3"

	"newsdesk/internal/domain/entity"
)

//go:embed categories.yaml
var defaultCategoriesYAML []byte

type seedCategory struct {
	Name         string `yaml:"name"`
	NameRw       string `yaml:"name_rw"`
	Slug         string `yaml:"slug"`
	Description  string `yaml:"description"`
	Icon         string `yaml:"icon"`
	DisplayOrder int    `yaml:"display_order"`
}

// DefaultCategories parses the embedded seed list.
func DefaultCategories() ([]*entity.Category, error) {
	var raw []seedCategory
	if err := yaml.Unmarshal(defaultCategoriesYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse default categories: %w", err)
	}
	out := make([]*entity.Category, 0, len(raw))
	for _, c := range raw {
		out = append(out, &entity.Category{
			Name:         c.Name,
			NameRw:       c.NameRw,
			Slug:         c.Slug,
			Description:  c.Description,
			Icon:         c.Icon,
			DisplayOrder: c.DisplayOrder,
			Active:       true,
		})
	}
	return out, nil
}

// SeedCategories inserts the default categories whose slug is not taken yet.
func (s *Service) SeedCategories(ctx context.Context) (inserted int, err error) {
	defaults, err := DefaultCategories()
	if err != nil {
		return 0, err
	}
	for _, c := range defaults {
		existing, err := s.Categories.GetBySlug(ctx, c.Slug)
		if err != nil {
			return inserted, fmt.Errorf("get category %s: %w", c.Slug, err)
		}
		if existing != nil {
			continue
		}
		if err := s.Categories.Create(ctx, c); err != nil {
			return inserted, fmt.Errorf("create category %s: %w", c.Slug, err)
		}
		inserted++
	}
	s.logger().Info("categories seeded", slog.Int("inserted", inserted), slog.Int("total", len(defaults)))
	return inserted, nil
}
