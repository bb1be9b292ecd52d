package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/pkg/validate"
	"newsdesk/internal/repository"
)

type Service struct {
	Repo repository.SubscriberRepository
}

func normalize(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", entity.FieldError("email", "email is required")
	}
	if !validate.Email(email) {
		return "", entity.FieldError("email", "email must be a valid email address")
	}
	return email, nil
}

// Subscribe adds email or reactivates a previous subscription.
func (s *Service) Subscribe(ctx context.Context, email, name string) (*entity.Subscriber, error) {
	email, err := normalize(email)
	if err != nil {
		return nil, err
	}
	sub := &entity.Subscriber{Email: email, Name: strings.TrimSpace(name), Active: true}
	if err := s.Repo.Subscribe(ctx, sub); err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}
	metrics.RecordNewsletter("subscribe")
	return sub, nil
}

func (s *Service) Unsubscribe(ctx context.Context, email string) error {
	email, err := normalize(email)
	if err != nil {
		return err
	}
	if err := s.Repo.Unsubscribe(ctx, email); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrSubscriberNotFound
		}
		return fmt.Errorf("unsubscribe: %w", err)
	}
	metrics.RecordNewsletter("unsubscribe")
	return nil
}

func (s *Service) List(ctx context.Context, active *bool) ([]*entity.Subscriber, error) {
	list, err := s.Repo.List(ctx, active)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	return list, nil
}
