package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type UserRepo struct {
	db DB
}

func NewUserRepo(db DB) repository.UserRepository {
	return &UserRepo{db: db}
}

const userSelect = `SELECT id, email, password_hash, name, role, created_at, updated_at FROM users`

func scanUser(s scanner) (*entity.User, error) {
	var u entity.User
	var updatedAt sql.NullTime
	if err := s.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, (*string)(&u.Role), &u.CreatedAt, &updatedAt); err != nil {
		return nil, err
	}
	u.UpdatedAt = timePtr(updatedAt)
	return &u, nil
}

func (repo *UserRepo) getOne(ctx context.Context, op, query string, arg interface{}) (*entity.User, error) {
	u, err := scanUser(repo.db.QueryRowContext(ctx, query, arg))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.getOne(ctx, "GetByEmail", userSelect+` WHERE email = $1 LIMIT 1`, strings.ToLower(strings.TrimSpace(email)))
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	return repo.getOne(ctx, "Get", userSelect+` WHERE id = $1 LIMIT 1`, id)
}

func (repo *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	rows, err := repo.db.QueryContext(ctx, userSelect+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var users []*entity.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (repo *UserRepo) Create(ctx context.Context, u *entity.User) error {
	const query = `
INSERT INTO users (email, password_hash, name, role)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	err := repo.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Name, string(u.Role)).
		Scan(&u.ID, &u.CreatedAt)
	if err != nil {
		return mapError("Create", err)
	}
	return nil
}

func (repo *UserRepo) UpdateCredentials(ctx context.Context, u *entity.User) error {
	const query = `
UPDATE users SET password_hash = $1, role = $2, name = $3, updated_at = now()
WHERE id = $4`
	res, err := repo.db.ExecContext(ctx, query, u.PasswordHash, string(u.Role), u.Name, u.ID)
	if err != nil {
		return mapError("UpdateCredentials", err)
	}
	return mustAffect("UpdateCredentials", res)
}

func (repo *UserRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}
