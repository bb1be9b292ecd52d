// Package advertisement provides HTTP handlers for job and classified listings.
// Responses use the {success, data} envelope.
package advertisement

import (
	"time"

	"newsdesk/internal/common/pagination"
	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for a listing.
type DTO struct {
	ID              int64      `json:"id" example:"1"`
	Title           string     `json:"title" example:"Senior Accountant"`
	FullDescription string     `json:"fullDescription"`
	Company         string     `json:"company" example:"Bank of Kigali"`
	Category        string     `json:"category" example:"jobs"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	Location        string     `json:"location" example:"Kigali"`
	Deadline        *time.Time `json:"deadline"`
	ContactPhone    string     `json:"contactPhone,omitempty"`
	ContactEmail    string     `json:"contactEmail,omitempty"`
	ContactWebsite  string     `json:"contactWebsite,omitempty"`
	ContactAddress  string     `json:"contactAddress,omitempty"`
	Requirements    []string   `json:"requirements"`
	Benefits        []string   `json:"benefits"`
	IsActive        bool       `json:"isActive"`
	IsFeatured      bool       `json:"isFeatured"`
	Views           int64      `json:"views"`
	Applicants      int64      `json:"applicants"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       *time.Time `json:"updatedAt,omitempty"`
}

func toDTO(a *entity.Advertisement) DTO {
	d := DTO{
		ID:              a.ID,
		Title:           a.Title,
		FullDescription: a.FullDescription,
		Company:         a.Company,
		Category:        a.Category,
		ImageURL:        a.ImageURL,
		Location:        a.Location,
		Deadline:        a.Deadline,
		ContactPhone:    a.ContactPhone,
		ContactEmail:    a.ContactEmail,
		ContactWebsite:  a.ContactWebsite,
		ContactAddress:  a.ContactAddress,
		Requirements:    a.Requirements,
		Benefits:        a.Benefits,
		IsActive:        a.IsActive,
		IsFeatured:      a.IsFeatured,
		Views:           a.Views,
		Applicants:      a.Applicants,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if d.Requirements == nil {
		d.Requirements = []string{}
	}
	if d.Benefits == nil {
		d.Benefits = []string{}
	}
	return d
}

func toDTOs(list []*entity.Advertisement) []DTO {
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	return out
}

type listResponse struct {
	Success    bool                `json:"success"`
	Data       []DTO               `json:"data"`
	Pagination pagination.Metadata `json:"pagination"`
}

type dataResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type viewsData struct {
	Views int64 `json:"views"`
}

type applicantsData struct {
	Applicants int64 `json:"applicants"`
}

type createRequest struct {
	Title           string     `json:"title" validate:"notblank,max=255"`
	FullDescription string     `json:"fullDescription" validate:"notblank"`
	Company         string     `json:"company" validate:"notblank,max=255"`
	Category        string     `json:"category" validate:"notblank,max=100"`
	ImageURL        string     `json:"imageUrl" validate:"omitempty,httpurl"`
	Location        string     `json:"location" validate:"notblank,max=255"`
	Deadline        *time.Time `json:"deadline"`
	ContactPhone    string     `json:"contactPhone" validate:"max=50"`
	ContactEmail    string     `json:"contactEmail" validate:"omitempty,email"`
	ContactWebsite  string     `json:"contactWebsite" validate:"omitempty,httpurl"`
	ContactAddress  string     `json:"contactAddress"`
	Requirements    []string   `json:"requirements"`
	Benefits        []string   `json:"benefits"`
	IsActive        *bool      `json:"isActive"`
	IsFeatured      bool       `json:"isFeatured"`
}

type updateRequest struct {
	Title           *string    `json:"title" validate:"omitempty,notblank,max=255"`
	FullDescription *string    `json:"fullDescription"`
	Company         *string    `json:"company" validate:"omitempty,max=255"`
	Category        *string    `json:"category" validate:"omitempty,max=100"`
	ImageURL        *string    `json:"imageUrl"`
	Location        *string    `json:"location" validate:"omitempty,max=255"`
	Deadline        *time.Time `json:"deadline"`
	ContactPhone    *string    `json:"contactPhone"`
	ContactEmail    *string    `json:"contactEmail"`
	ContactWebsite  *string    `json:"contactWebsite"`
	ContactAddress  *string    `json:"contactAddress"`
	Requirements    []string   `json:"requirements"`
	Benefits        []string   `json:"benefits"`
	IsActive        *bool      `json:"isActive"`
	IsFeatured      *bool      `json:"isFeatured"`
}
