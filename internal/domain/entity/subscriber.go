package entity

import "time"

// Subscriber is a newsletter recipient.
type Subscriber struct {
	ID             int64
	Email          string
	Name           string
	Active         bool
	SubscribedAt   time.Time
	UnsubscribedAt *time.Time
}
