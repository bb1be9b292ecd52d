// Package category provides HTTP handlers for the /api/categories endpoints.
package category

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for category data transfer.
type DTO struct {
	ID           int64     `json:"id" example:"1"`
	Name         string    `json:"name" example:"Politics"`
	NameRw       string    `json:"nameRw" example:"Politiki"`
	Slug         string    `json:"slug" example:"politics"`
	Description  string    `json:"description,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	DisplayOrder int       `json:"displayOrder"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ArticleSummaryDTO is an article as listed on a category page.
type ArticleSummaryDTO struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	IsBreaking  bool       `json:"isBreaking"`
	IsFeatured  bool       `json:"isFeatured"`
	PublishedAt *time.Time `json:"publishedAt"`
	Views       int64      `json:"views"`
}

func toDTO(c *entity.Category) DTO {
	return DTO{
		ID:           c.ID,
		Name:         c.Name,
		NameRw:       c.NameRw,
		Slug:         c.Slug,
		Description:  c.Description,
		Icon:         c.Icon,
		DisplayOrder: c.DisplayOrder,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}

func toSummaries(list []*entity.Article) []ArticleSummaryDTO {
	out := make([]ArticleSummaryDTO, 0, len(list))
	for _, a := range list {
		out = append(out, ArticleSummaryDTO{
			ID:          a.ID,
			Title:       a.Title,
			Slug:        a.Slug,
			Excerpt:     a.Excerpt,
			ImageURL:    a.ImageURL,
			IsBreaking:  a.IsBreaking,
			IsFeatured:  a.IsFeatured,
			PublishedAt: a.PublishedAt,
			Views:       a.Views,
		})
	}
	return out
}

type listResponse struct {
	Categories []DTO `json:"categories"`
}

type categoryResponse struct {
	Category DTO `json:"category"`
}

type bySlugResponse struct {
	Category DTO                 `json:"category"`
	Articles []ArticleSummaryDTO `json:"articles"`
}

type createRequest struct {
	Name         string `json:"name" validate:"notblank,max=100"`
	NameRw       string `json:"nameRw" validate:"max=100"`
	Slug         string `json:"slug" validate:"max=100"`
	Description  string `json:"description" validate:"max=1000"`
	Icon         string `json:"icon" validate:"max=100"`
	DisplayOrder int    `json:"displayOrder" validate:"gte=0"`
	Active       *bool  `json:"active"`
}

type updateRequest struct {
	Name         *string `json:"name" validate:"omitempty,max=100"`
	NameRw       *string `json:"nameRw" validate:"omitempty,max=100"`
	Slug         *string `json:"slug" validate:"omitempty,max=100"`
	Description  *string `json:"description" validate:"omitempty,max=1000"`
	Icon         *string `json:"icon" validate:"omitempty,max=100"`
	DisplayOrder *int    `json:"displayOrder" validate:"omitempty,gte=0"`
	Active       *bool   `json:"active"`
}

type messageResponse struct {
	Message string `json:"message"`
}
