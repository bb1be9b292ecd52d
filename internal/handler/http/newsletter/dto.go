// Package newsletter provides the subscribe/unsubscribe endpoints and the subscriber list.
package newsletter

import (
	"time"

	"newsdesk/internal/domain/entity"
)

type SubscriberDTO struct {
	ID             int64      `json:"id"`
	Email          string     `json:"email" example:"reader@example.rw"`
	Name           string     `json:"name,omitempty"`
	Active         bool       `json:"active"`
	SubscribedAt   time.Time  `json:"subscribedAt"`
	UnsubscribedAt *time.Time `json:"unsubscribedAt,omitempty"`
}

func toDTO(s *entity.Subscriber) SubscriberDTO {
	return SubscriberDTO{
		ID:             s.ID,
		Email:          s.Email,
		Name:           s.Name,
		Active:         s.Active,
		SubscribedAt:   s.SubscribedAt,
		UnsubscribedAt: s.UnsubscribedAt,
	}
}

type subscribeRequest struct {
	Email string `json:"email" validate:"notblank"`
	Name  string `json:"name" validate:"max=100"`
}

type unsubscribeRequest struct {
	Email string `json:"email" validate:"notblank"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type listResponse struct {
	Subscribers []SubscriberDTO `json:"subscribers"`
}
