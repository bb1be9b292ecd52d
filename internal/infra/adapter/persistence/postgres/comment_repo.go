package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/repository"
)

type CommentRepo struct {
	db DB
}

func NewCommentRepo(db DB) repository.CommentRepository {
	return &CommentRepo{db: db}
}

const commentSelect = `SELECT id, article_id, author_name, author_email, content, approved, created_at FROM comments`

func scanComment(s scanner) (*entity.Comment, error) {
	var c entity.Comment
	if err := s.Scan(&c.ID, &c.ArticleID, &c.AuthorName, &c.AuthorEmail, &c.Content, &c.Approved, &c.CreatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (repo *CommentRepo) list(ctx context.Context, op, query string, args ...interface{}) ([]*entity.Comment, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	comments := make([]*entity.Comment, 0, 8)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (repo *CommentRepo) ListByArticle(ctx context.Context, articleID int64, approvedOnly bool) ([]*entity.Comment, error) {
	w := &whereBuilder{}
	w.add("article_id = ?", articleID)
	if approvedOnly {
		w.addRaw("approved")
	}
	return repo.list(ctx, "ListByArticle", commentSelect+w.clause()+` ORDER BY created_at ASC, id ASC`, w.args...)
}

func (repo *CommentRepo) List(ctx context.Context, approved *bool) ([]*entity.Comment, error) {
	w := &whereBuilder{}
	if approved != nil {
		w.add("approved = ?", *approved)
	}
	return repo.list(ctx, "List", commentSelect+w.clause()+` ORDER BY created_at DESC, id DESC`, w.args...)
}

func (repo *CommentRepo) Get(ctx context.Context, id int64) (*entity.Comment, error) {
	c, err := scanComment(repo.db.QueryRowContext(ctx, commentSelect+` WHERE id = $1 LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return c, nil
}

func (repo *CommentRepo) Create(ctx context.Context, c *entity.Comment) error {
	const query = `
INSERT INTO comments (article_id, author_name, author_email, content, approved)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query, c.ArticleID, c.AuthorName, c.AuthorEmail, c.Content, c.Approved).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return mapError("Create", err)
	}
	return nil
}

func (repo *CommentRepo) Approve(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `UPDATE comments SET approved = TRUE WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Approve: %w", err)
	}
	return mustAffect("Approve", res)
}

func (repo *CommentRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return mustAffect("Delete", res)
}
