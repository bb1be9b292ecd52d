// Package ad provides HTTP handlers for display ads under /api/ads.
package ad

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for ad data transfer.
type DTO struct {
	ID          int64      `json:"id" example:"1"`
	Title       string     `json:"title" example:"MTN MoMo"`
	ImageURL    string     `json:"imageUrl" example:"https://cdn.example.com/banner.jpg"`
	LinkURL     string     `json:"linkUrl,omitempty"`
	Position    string     `json:"position" example:"sidebar"`
	IsActive    bool       `json:"isActive"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	CreatedBy   *int64     `json:"createdBy"`
	Clicks      int64      `json:"clicks"`
	Impressions int64      `json:"impressions"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

func toDTO(a *entity.Ad) DTO {
	return DTO{
		ID:          a.ID,
		Title:       a.Title,
		ImageURL:    a.ImageURL,
		LinkURL:     a.LinkURL,
		Position:    string(a.Position),
		IsActive:    a.IsActive,
		StartDate:   a.StartDate,
		EndDate:     a.EndDate,
		CreatedBy:   a.CreatedBy,
		Clicks:      a.Clicks,
		Impressions: a.Impressions,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

type listResponse struct {
	Ads []DTO `json:"ads"`
}

type adResponse struct {
	Ad DTO `json:"ad"`
}

type createRequest struct {
	Title     string     `json:"title" validate:"notblank,max=255"`
	ImageURL  string     `json:"imageUrl" validate:"required,httpurl"`
	LinkURL   string     `json:"linkUrl" validate:"omitempty,httpurl"`
	Position  string     `json:"position" validate:"required,ad_position"`
	IsActive  *bool      `json:"isActive"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type updateRequest struct {
	Title     *string    `json:"title" validate:"omitempty,notblank,max=255"`
	ImageURL  *string    `json:"imageUrl" validate:"omitempty,httpurl"`
	LinkURL   *string    `json:"linkUrl"`
	Position  *string    `json:"position" validate:"omitempty,ad_position"`
	IsActive  *bool      `json:"isActive"`
	StartDate *time.Time `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
}
