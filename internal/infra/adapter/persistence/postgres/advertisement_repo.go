package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/pkg/search"
	"newsdesk/internal/repository"
)

type AdvertisementRepo struct {
	db DB
}

func NewAdvertisementRepo(db DB) repository.AdvertisementRepository {
	return &AdvertisementRepo{db: db}
}

const advertisementSelect = `
SELECT id, title, full_description, company, category, image_url, location, deadline,
       contact_phone, contact_email, contact_website, contact_address,
       requirements, benefits, is_active, is_featured, views, applicants, created_at, updated_at
FROM advertisements`

func scanAdvertisement(s scanner) (*entity.Advertisement, error) {
	var (
		ad                  entity.Advertisement
		deadline, updatedAt sql.NullTime
	)
	err := s.Scan(&ad.ID, &ad.Title, &ad.FullDescription, &ad.Company, &ad.Category, &ad.ImageURL,
		&ad.Location, &deadline, &ad.ContactPhone, &ad.ContactEmail, &ad.ContactWebsite, &ad.ContactAddress,
		pq.Array(&ad.Requirements), pq.Array(&ad.Benefits), &ad.IsActive, &ad.IsFeatured,
		&ad.Views, &ad.Applicants, &ad.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	ad.Deadline = timePtr(deadline)
	ad.UpdatedAt = timePtr(updatedAt)
	return &ad, nil
}

func advertisementWhere(filter entity.AdvertisementFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.Category != "" {
		w.add("category = ?", filter.Category)
	}
	if filter.Featured != nil {
		w.add("is_featured = ?", *filter.Featured)
	}
	if filter.Active != nil {
		w.add("is_active = ?", *filter.Active)
	}
	if filter.Search != "" {
		w.add("(title ILIKE ? OR company ILIKE ? OR full_description ILIKE ?)", search.EscapeILIKE(filter.Search))
	}
	return w
}

func (repo *AdvertisementRepo) List(ctx context.Context, filter entity.AdvertisementFilter) ([]*entity.Advertisement, error) {
	w := advertisementWhere(filter)
	query := advertisementSelect + w.clause() + ` ORDER BY is_featured DESC, created_at DESC, id DESC`
	if filter.Limit > 0 {
		query += " LIMIT " + w.arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + w.arg(filter.Offset)
	}

	rows, err := repo.db.QueryContext(ctx, query, w.args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ads := make([]*entity.Advertisement, 0, 12)
	for rows.Next() {
		ad, err := scanAdvertisement(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

func (repo *AdvertisementRepo) Count(ctx context.Context, filter entity.AdvertisementFilter) (int64, error) {
	w := advertisementWhere(filter)
	var n int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM advertisements`+w.clause(), w.args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *AdvertisementRepo) Get(ctx context.Context, id int64) (*entity.Advertisement, error) {
	ad, err := scanAdvertisement(repo.db.QueryRowContext(ctx, advertisementSelect+` WHERE id = $1 LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return ad, nil
}

func (repo *AdvertisementRepo) Create(ctx context.Context, ad *entity.Advertisement) error {
	const query = `
INSERT INTO advertisements
    (title, full_description, company, category, image_url, location, deadline,
     contact_phone, contact_email, contact_website, contact_address,
     requirements, benefits, is_active, is_featured)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		ad.Title, ad.FullDescription, ad.Company, ad.Category, ad.ImageURL, ad.Location, ad.Deadline,
		ad.ContactPhone, ad.ContactEmail, ad.ContactWebsite, ad.ContactAddress,
		pq.Array(nonNil(ad.Requirements)), pq.Array(nonNil(ad.Benefits)), ad.IsActive, ad.IsFeatured,
	).Scan(&ad.ID, &ad.CreatedAt)
	if err != nil {
		return mapError("Create", err)
	}
	return nil
}

func (repo *AdvertisementRepo) Update(ctx context.Context, ad *entity.Advertisement) error {
	const query = `
UPDATE advertisements
SET title = $1, full_description = $2, company = $3, category = $4, image_url = $5, location = $6,
    deadline = $7, contact_phone = $8, contact_email = $9, contact_website = $10, contact_address = $11,
    requirements = $12, benefits = $13, is_active = $14, is_featured = $15, updated_at = now()
WHERE id = $16`
	res, err := repo.db.ExecContext(ctx, query,
		ad.Title, ad.FullDescription, ad.Company, ad.Category, ad.ImageURL, ad.Location, ad.Deadline,
		ad.ContactPhone, ad.ContactEmail, ad.ContactWebsite, ad.ContactAddress,
		pq.Array(nonNil(ad.Requirements)), pq.Array(nonNil(ad.Benefits)), ad.IsActive, ad.IsFeatured, ad.ID)
	if err != nil {
		return mapError("Update", err)
	}
	return mustAffect("Update", res)
}

func (repo *AdvertisementRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM advertisements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return mustAffect("Delete", res)
}

func (repo *AdvertisementRepo) IncrementViews(ctx context.Context, id int64) (int64, error) {
	return repo.increment(ctx, "IncrementViews",
		`UPDATE advertisements SET views = views + 1 WHERE id = $1 RETURNING views`, id)
}

func (repo *AdvertisementRepo) IncrementApplicants(ctx context.Context, id int64) (int64, error) {
	return repo.increment(ctx, "IncrementApplicants",
		`UPDATE advertisements SET applicants = applicants + 1 WHERE id = $1 RETURNING applicants`, id)
}

func (repo *AdvertisementRepo) increment(ctx context.Context, op, query string, id int64) (int64, error) {
	var n int64
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&n)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s: %w", op, entity.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

// nonNil keeps NOT NULL array columns from receiving NULL.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
