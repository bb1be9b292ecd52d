package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type AdRepo struct {
	db DB
}

func NewAdRepo(db DB) repository.AdRepository {
	return &AdRepo{db: db}
}

const adSelect = `
SELECT id, title, image_url, link_url, position, is_active, start_date, end_date,
       created_by, clicks, impressions, created_at, updated_at
FROM ads`

func scanAd(s scanner) (*entity.Ad, error) {
	var (
		ad                            entity.Ad
		startDate, endDate, updatedAt sql.NullTime
		createdBy                     sql.NullInt64
	)
	err := s.Scan(&ad.ID, &ad.Title, &ad.ImageURL, &ad.LinkURL, (*string)(&ad.Position), &ad.IsActive,
		&startDate, &endDate, &createdBy, &ad.Clicks, &ad.Impressions, &ad.CreatedAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	ad.StartDate = timePtr(startDate)
	ad.EndDate = timePtr(endDate)
	ad.CreatedBy = int64Ptr(createdBy)
	ad.UpdatedAt = timePtr(updatedAt)
	return &ad, nil
}

func (repo *AdRepo) List(ctx context.Context, filter entity.AdFilter) ([]*entity.Ad, error) {
	w := &whereBuilder{}
	if filter.Position != "" {
		w.add("position = ?", string(filter.Position))
	}
	if filter.IsActive != nil {
		w.add("is_active = ?", *filter.IsActive)
	}
	if filter.Current != nil {
		w.addRaw("is_active")
		w.add("(start_date IS NULL OR start_date <= ?) AND (end_date IS NULL OR end_date >= ?)", *filter.Current)
	}

	rows, err := repo.db.QueryContext(ctx, adSelect+w.clause()+` ORDER BY created_at DESC, id DESC`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	ads := make([]*entity.Ad, 0, 8)
	for rows.Next() {
		ad, err := scanAd(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		ads = append(ads, ad)
	}
	return ads, rows.Err()
}

func (repo *AdRepo) Get(ctx context.Context, id int64) (*entity.Ad, error) {
	ad, err := scanAd(repo.db.QueryRowContext(ctx, adSelect+` WHERE id = $1 LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return ad, nil
}

func (repo *AdRepo) Create(ctx context.Context, ad *entity.Ad) error {
	const query = `
INSERT INTO ads (title, image_url, link_url, position, is_active, start_date, end_date, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		ad.Title, ad.ImageURL, ad.LinkURL, string(ad.Position), ad.IsActive,
		ad.StartDate, ad.EndDate, nullInt64(ad.CreatedBy),
	).Scan(&ad.ID, &ad.CreatedAt)
	if err != nil {
		return mapError("Create", err)
	}
	return nil
}

func (repo *AdRepo) Update(ctx context.Context, ad *entity.Ad) error {
	const query = `
UPDATE ads
SET title = $1, image_url = $2, link_url = $3, position = $4, is_active = $5,
    start_date = $6, end_date = $7, updated_at = now()
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		ad.Title, ad.ImageURL, ad.LinkURL, string(ad.Position), ad.IsActive,
		ad.StartDate, ad.EndDate, ad.ID)
	if err != nil {
		return mapError("Update", err)
	}
	return mustAffect("Update", res)
}

func (repo *AdRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return mustAffect("Delete", res)
}

func (repo *AdRepo) IncrementClicks(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `UPDATE ads SET clicks = clicks + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("IncrementClicks: %w", err)
	}
	return mustAffect("IncrementClicks", res)
}

func (repo *AdRepo) IncrementImpressions(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `UPDATE ads SET impressions = impressions + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("IncrementImpressions: %w", err)
	}
	return mustAffect("IncrementImpressions", res)
}
