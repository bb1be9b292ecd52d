// Package comment provides the public comment endpoint and the moderation queue.
package comment

import (
	"time"

	"newsdesk/internal/domain/entity"
)

type DTO struct {
	ID          int64     `json:"id" example:"9"`
	ArticleID   int64     `json:"articleId" example:"12"`
	AuthorName  string    `json:"authorName" example:"Jean Bosco"`
	AuthorEmail string    `json:"authorEmail,omitempty"`
	Content     string    `json:"content" example:"Murakoze cyane!"`
	Approved    bool      `json:"approved"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toDTO(c *entity.Comment) DTO {
	return DTO{
		ID:          c.ID,
		ArticleID:   c.ArticleID,
		AuthorName:  c.AuthorName,
		AuthorEmail: c.AuthorEmail,
		Content:     c.Content,
		Approved:    c.Approved,
		CreatedAt:   c.CreatedAt,
	}
}

type createRequest struct {
	AuthorName  string `json:"authorName" validate:"notblank"`
	AuthorEmail string `json:"authorEmail"`
	Content     string `json:"content" validate:"notblank"`
}

type commentResponse struct {
	Comment DTO `json:"comment"`
}

type listResponse struct {
	Comments []DTO `json:"comments"`
}

type messageResponse struct {
	Message string `json:"message"`
}
