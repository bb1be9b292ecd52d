package ad

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/repository"
)

type CreateInput struct {
	Title     string
	ImageURL  string
	LinkURL   string
	Position  entity.AdPosition
	IsActive  *bool
	StartDate *time.Time
	EndDate   *time.Time
}

// UpdateInput is a partial update; nil fields are left alone.
type UpdateInput struct {
	ID        int64
	Title     *string
	ImageURL  *string
	LinkURL   *string
	Position  *entity.AdPosition
	IsActive  *bool
	StartDate *time.Time
	EndDate   *time.Time
}

// ListInput mirrors the query string of GET /api/ads.
type ListInput struct {
	Position entity.AdPosition
	IsActive *bool
	Current  bool
}

type Service struct {
	Repo repository.AdRepository
	Now  func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) List(ctx context.Context, in ListInput) ([]*entity.Ad, error) {
	f := entity.AdFilter{Position: in.Position, IsActive: in.IsActive}
	if in.Current {
		now := s.now()
		f.Current = &now
	}
	list, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list ads: %w", err)
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Ad, error) {
	if id <= 0 {
		return nil, ErrInvalidAdID
	}
	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get ad: %w", err)
	}
	if a == nil {
		return nil, ErrAdNotFound
	}
	return a, nil
}

func validateAd(a *entity.Ad) error {
	fields := entity.ValidationErrors{}
	if strings.TrimSpace(a.Title) == "" {
		fields["title"] = "title is required"
	}
	if a.ImageURL == "" {
		fields["imageUrl"] = "imageUrl is required"
	} else if entity.ValidateURL("imageUrl", a.ImageURL) != nil {
		fields["imageUrl"] = "imageUrl must be a valid http(s) URL"
	}
	if a.LinkURL != "" && entity.ValidateURL("linkUrl", a.LinkURL) != nil {
		fields["linkUrl"] = "linkUrl must be a valid http(s) URL"
	}
	if a.Position == "" {
		fields["position"] = "position is required"
	} else if !a.Position.Valid() {
		fields["position"] = "position must be one of homepage_top, sidebar, inline, header, footer"
	}
	if a.StartDate != nil && a.EndDate != nil && a.EndDate.Before(*a.StartDate) {
		fields["endDate"] = "endDate must be after startDate"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

// Create stores a new ad owned by createdBy.
func (s *Service) Create(ctx context.Context, in CreateInput, createdBy int64) (*entity.Ad, error) {
	a := &entity.Ad{
		Title:     strings.TrimSpace(in.Title),
		ImageURL:  in.ImageURL,
		LinkURL:   in.LinkURL,
		Position:  in.Position,
		IsActive:  true,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if createdBy > 0 {
		a.CreatedBy = &createdBy
	}
	if err := validateAd(a); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create ad: %w", err)
	}
	return a, nil
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Ad, error) {
	a, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	if in.Title != nil {
		a.Title = strings.TrimSpace(*in.Title)
	}
	if in.ImageURL != nil {
		a.ImageURL = *in.ImageURL
	}
	if in.LinkURL != nil {
		a.LinkURL = *in.LinkURL
	}
	if in.Position != nil {
		a.Position = *in.Position
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if in.StartDate != nil {
		a.StartDate = in.StartDate
	}
	if in.EndDate != nil {
		a.EndDate = in.EndDate
	}
	if err := validateAd(a); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, a); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrAdNotFound
		}
		return nil, fmt.Errorf("update ad: %w", err)
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.mutate(ctx, id, "delete ad", s.Repo.Delete)
}

// Click records one click.
func (s *Service) Click(ctx context.Context, id int64) error {
	if err := s.mutate(ctx, id, "increment clicks", s.Repo.IncrementClicks); err != nil {
		return err
	}
	metrics.RecordAdEvent("click")
	return nil
}

// Impression records one impression.
func (s *Service) Impression(ctx context.Context, id int64) error {
	if err := s.mutate(ctx, id, "increment impressions", s.Repo.IncrementImpressions); err != nil {
		return err
	}
	metrics.RecordAdEvent("impression")
	return nil
}

func (s *Service) mutate(ctx context.Context, id int64, op string, fn func(context.Context, int64) error) error {
	if id <= 0 {
		return ErrInvalidAdID
	}
	if err := fn(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrAdNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
