package advertisement

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/observability/metrics"
	"newsdesk/internal/pkg/validate"
	"newsdesk/internal/repository"
)

const FeaturedLimit = 6

// Input carries every writable field. Create treats it as the full record;
// Update applies only the non-nil pointers of UpdateInput.
type Input struct {
	Title           string
	FullDescription string
	Company         string
	Category        string
	ImageURL        string
	Location        string
	Deadline        *time.Time
	ContactPhone    string
	ContactEmail    string
	ContactWebsite  string
	ContactAddress  string
	Requirements    []string
	Benefits        []string
	IsActive        *bool
	IsFeatured      bool
}

type UpdateInput struct {
	ID              int64
	Title           *string
	FullDescription *string
	Company         *string
	Category        *string
	ImageURL        *string
	Location        *string
	Deadline        *time.Time
	ContactPhone    *string
	ContactEmail    *string
	ContactWebsite  *string
	ContactAddress  *string
	Requirements    []string
	Benefits        []string
	IsActive        *bool
	IsFeatured      *bool
}

// Page is one page of listings plus the unpaged total.
type Page struct {
	Items []*entity.Advertisement
	Total int64
}

type Service struct {
	Repo repository.AdvertisementRepository
}

// List returns active listings unless the filter says otherwise.
func (s *Service) List(ctx context.Context, f entity.AdvertisementFilter) (*Page, error) {
	if f.Active == nil {
		yes := true
		f.Active = &yes
	}
	f.Search = strings.TrimSpace(f.Search)

	var (
		p  Page
		eg errgroup.Group
	)
	eg.Go(func() error {
		n, err := s.Repo.Count(ctx, f)
		if err != nil {
			return fmt.Errorf("count advertisements: %w", err)
		}
		p.Total = n
		return nil
	})
	eg.Go(func() error {
		items, err := s.Repo.List(ctx, f)
		if err != nil {
			return fmt.Errorf("list advertisements: %w", err)
		}
		p.Items = items
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Featured returns active featured listings.
func (s *Service) Featured(ctx context.Context, limit int) ([]*entity.Advertisement, error) {
	if limit <= 0 {
		limit = FeaturedLimit
	}
	yes := true
	items, err := s.Repo.List(ctx, entity.AdvertisementFilter{Active: &yes, Featured: &yes, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("list featured advertisements: %w", err)
	}
	return items, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*entity.Advertisement, error) {
	if id <= 0 {
		return nil, ErrInvalidAdvertisementID
	}
	a, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get advertisement: %w", err)
	}
	if a == nil {
		return nil, ErrAdvertisementNotFound
	}
	return a, nil
}

func validateAdvertisement(a *entity.Advertisement) error {
	fields := entity.ValidationErrors{}
	required := []struct{ name, value string }{
		{"title", a.Title},
		{"fullDescription", a.FullDescription},
		{"company", a.Company},
		{"category", a.Category},
		{"location", a.Location},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			fields[r.name] = r.name + " is required"
		}
	}
	if a.ContactEmail != "" && !validate.Email(a.ContactEmail) {
		fields["contactEmail"] = "contactEmail must be a valid email address"
	}
	if a.ContactWebsite != "" && entity.ValidateURL("contactWebsite", a.ContactWebsite) != nil {
		fields["contactWebsite"] = "contactWebsite must be a valid http(s) URL"
	}
	if a.ImageURL != "" && entity.ValidateURL("imageUrl", a.ImageURL) != nil {
		fields["imageUrl"] = "imageUrl must be a valid http(s) URL"
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (*entity.Advertisement, error) {
	a := &entity.Advertisement{
		Title:           strings.TrimSpace(in.Title),
		FullDescription: in.FullDescription,
		Company:         strings.TrimSpace(in.Company),
		Category:        strings.TrimSpace(in.Category),
		ImageURL:        in.ImageURL,
		Location:        strings.TrimSpace(in.Location),
		Deadline:        in.Deadline,
		ContactPhone:    in.ContactPhone,
		ContactEmail:    in.ContactEmail,
		ContactWebsite:  in.ContactWebsite,
		ContactAddress:  in.ContactAddress,
		Requirements:    in.Requirements,
		Benefits:        in.Benefits,
		IsActive:        true,
		IsFeatured:      in.IsFeatured,
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if err := validateAdvertisement(a); err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, a); err != nil {
		return nil, fmt.Errorf("create advertisement: %w", err)
	}
	return a, nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}

func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Advertisement, error) {
	a, err := s.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}
	setString(&a.Title, in.Title)
	setString(&a.FullDescription, in.FullDescription)
	setString(&a.Company, in.Company)
	setString(&a.Category, in.Category)
	setString(&a.ImageURL, in.ImageURL)
	setString(&a.Location, in.Location)
	setString(&a.ContactPhone, in.ContactPhone)
	setString(&a.ContactEmail, in.ContactEmail)
	setString(&a.ContactWebsite, in.ContactWebsite)
	setString(&a.ContactAddress, in.ContactAddress)
	if in.Deadline != nil {
		a.Deadline = in.Deadline
	}
	if in.Requirements != nil {
		a.Requirements = in.Requirements
	}
	if in.Benefits != nil {
		a.Benefits = in.Benefits
	}
	if in.IsActive != nil {
		a.IsActive = *in.IsActive
	}
	if in.IsFeatured != nil {
		a.IsFeatured = *in.IsFeatured
	}
	if err := validateAdvertisement(a); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, a); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, ErrAdvertisementNotFound
		}
		return nil, fmt.Errorf("update advertisement: %w", err)
	}
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidAdvertisementID
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return ErrAdvertisementNotFound
		}
		return fmt.Errorf("delete advertisement: %w", err)
	}
	return nil
}

// View increments the view counter and returns the new value.
func (s *Service) View(ctx context.Context, id int64) (int64, error) {
	return s.bump(ctx, id, "view", s.Repo.IncrementViews)
}

// Apply increments the applicant counter and returns the new value.
func (s *Service) Apply(ctx context.Context, id int64) (int64, error) {
	return s.bump(ctx, id, "apply", s.Repo.IncrementApplicants)
}

func (s *Service) bump(ctx context.Context, id int64, event string, fn func(context.Context, int64) (int64, error)) (int64, error) {
	if id <= 0 {
		return 0, ErrInvalidAdvertisementID
	}
	n, err := fn(ctx, id)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return 0, ErrAdvertisementNotFound
		}
		return 0, fmt.Errorf("record %s: %w", event, err)
	}
	metrics.RecordAdvertisementEvent(event)
	return n, nil
}
