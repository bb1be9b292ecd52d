// Package article provides HTTP handlers for the /api/articles endpoints, including
// the public reads, the RSS feed and the authenticated writes.
package article

import (
	"time"

	"newsdesk/internal/domain/entity"
)

// DTO represents the JSON structure for article data transfer.
type DTO struct {
	ID          int64        `json:"id" example:"1"`
	Title       string       `json:"title" example:"Umuganda wo mu kwezi"`
	Slug        string       `json:"slug" example:"umuganda-wo-mu-kwezi"`
	Excerpt     string       `json:"excerpt"`
	Content     string       `json:"content,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty" example:"https://cdn.example.com/a.jpg"`
	CategoryID  *int64       `json:"categoryId"`
	AuthorID    *int64       `json:"authorId"`
	IsBreaking  bool         `json:"isBreaking"`
	IsFeatured  bool         `json:"isFeatured"`
	Status      string       `json:"status" example:"published"`
	PublishedAt *time.Time   `json:"publishedAt"`
	Views       int64        `json:"views"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   *time.Time   `json:"updatedAt,omitempty"`
	Category    *CategoryDTO `json:"category,omitempty"`
	Author      *AuthorDTO   `json:"author,omitempty"`
	Comments    []CommentDTO `json:"comments,omitempty"`
}

type CategoryDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	NameRw string `json:"nameRw"`
	Slug   string `json:"slug"`
}

type AuthorDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CommentDTO is an approved comment as shown under an article. The author email is not exposed.
type CommentDTO struct {
	ID         int64     `json:"id"`
	AuthorName string    `json:"authorName"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toDTO(a *entity.Article) DTO {
	out := DTO{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		ImageURL:    a.ImageURL,
		CategoryID:  a.CategoryID,
		AuthorID:    a.AuthorID,
		IsBreaking:  a.IsBreaking,
		IsFeatured:  a.IsFeatured,
		Status:      string(a.Status),
		PublishedAt: a.PublishedAt,
		Views:       a.Views,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
	if a.Category != nil {
		out.Category = &CategoryDTO{ID: a.Category.ID, Name: a.Category.Name, NameRw: a.Category.NameRw, Slug: a.Category.Slug}
	}
	if a.Author != nil {
		out.Author = &AuthorDTO{ID: a.Author.ID, Name: a.Author.Name, Email: a.Author.Email}
	}
	for _, c := range a.Comments {
		out.Comments = append(out.Comments, CommentDTO{
			ID:         c.ID,
			AuthorName: c.AuthorName,
			Content:    c.Content,
			CreatedAt:  c.CreatedAt,
		})
	}
	return out
}

func toDTOs(list []*entity.Article) []DTO {
	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	return out
}

type listResponse struct {
	Articles []DTO `json:"articles"`
	Total    int64 `json:"total"`
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
}

type articlesResponse struct {
	Articles []DTO `json:"articles"`
}

type articleResponse struct {
	Article DTO `json:"article"`
}

type dataResponse struct {
	Success bool  `json:"success"`
	Data    []DTO `json:"data"`
}

type searchResponse struct {
	Success bool   `json:"success"`
	Data    []DTO  `json:"data"`
	Query   string `json:"query"`
}

type createRequest struct {
	Title      string `json:"title" validate:"max=500"`
	Content    string `json:"content"`
	Excerpt    string `json:"excerpt" validate:"max=1000"`
	ImageURL   string `json:"imageUrl" validate:"omitempty,httpurl"`
	CategoryID int64  `json:"categoryId"`
	AuthorID   *int64 `json:"authorId" validate:"omitempty,gt=0"`
	IsBreaking bool   `json:"isBreaking"`
	IsFeatured bool   `json:"isFeatured"`
	Status     string `json:"status" validate:"omitempty,article_status"`
}

type createResponse struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
}

type updateRequest struct {
	Title      *string `json:"title" validate:"omitempty,max=500"`
	Content    *string `json:"content"`
	Excerpt    *string `json:"excerpt" validate:"omitempty,max=1000"`
	ImageURL   *string `json:"imageUrl"`
	CategoryID *int64  `json:"categoryId" validate:"omitempty,gt=0"`
	IsBreaking *bool   `json:"isBreaking"`
	IsFeatured *bool   `json:"isFeatured"`
	Status     *string `json:"status" validate:"omitempty,article_status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type successResponse struct {
	Success bool `json:"success"`
}
