package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type CategoryRepo struct {
	db DB
}

func NewCategoryRepo(db DB) repository.CategoryRepository {
	return &CategoryRepo{db: db}
}

const categorySelect = `
SELECT id, name, name_rw, slug, description, icon, display_order, active, created_at
FROM categories`

func scanCategory(s scanner) (*entity.Category, error) {
	var c entity.Category
	err := s.Scan(&c.ID, &c.Name, &c.NameRw, &c.Slug, &c.Description, &c.Icon, &c.DisplayOrder, &c.Active, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CategoryRepo) List(ctx context.Context, active *bool) ([]*entity.Category, error) {
	w := &whereBuilder{}
	if active != nil {
		w.add("active = ?", *active)
	}
	rows, err := repo.db.QueryContext(ctx, categorySelect+w.clause()+` ORDER BY display_order, name`, w.args...)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	categories := make([]*entity.Category, 0, 16)
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (repo *CategoryRepo) getOne(ctx context.Context, op, where string, arg interface{}) (*entity.Category, error) {
	c, err := scanCategory(repo.db.QueryRowContext(ctx, categorySelect+where, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (repo *CategoryRepo) Get(ctx context.Context, id int64) (*entity.Category, error) {
	return repo.getOne(ctx, "Get", ` WHERE id = $1 LIMIT 1`, id)
}

func (repo *CategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	return repo.getOne(ctx, "GetBySlug", ` WHERE slug = $1 LIMIT 1`, slug)
}

func (repo *CategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	const query = `
INSERT INTO categories (name, name_rw, slug, description, icon, display_order, active)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		c.Name, c.NameRw, c.Slug, c.Description, c.Icon, c.DisplayOrder, c.Active,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return mapError("Create", err)
	}
	return nil
}

func (repo *CategoryRepo) Update(ctx context.Context, c *entity.Category) error {
	const query = `
UPDATE categories
SET name = $1, name_rw = $2, slug = $3, description = $4, icon = $5, display_order = $6, active = $7
WHERE id = $8`
	res, err := repo.db.ExecContext(ctx, query,
		c.Name, c.NameRw, c.Slug, c.Description, c.Icon, c.DisplayOrder, c.Active, c.ID)
	if err != nil {
		return mapError("Update", err)
	}
	return mustAffect("Update", res)
}

// Delete removes the category; articles keep existing with category_id set to NULL.
func (repo *CategoryRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return mustAffect("Delete", res)
}

func (repo *CategoryRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM categories`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
