package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"newsdesk/internal/domain/entity"
	"newsdesk/internal/pkg/search"
	"newsdesk/internal/repository"
)

type ArticleRepo struct {
	db DB
}

func NewArticleRepo(db DB) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

const articleSelect = `
SELECT a.id, a.title, a.slug, a.excerpt, a.content, a.image_url, a.category_id, a.author_id,
       a.is_breaking, a.is_featured, a.status, a.published_at, a.views, a.created_at, a.updated_at,
       c.id, c.name, c.name_rw, c.slug,
       u.id, u.name, u.email
FROM articles a
LEFT JOIN categories c ON c.id = a.category_id
LEFT JOIN users u ON u.id = a.author_id`

const articleOrder = ` ORDER BY a.published_at DESC NULLS LAST, a.created_at DESC, a.id DESC`

func scanArticle(s scanner) (*entity.Article, error) {
	var (
		a                          entity.Article
		categoryID, authorID       sql.NullInt64
		publishedAt, updatedAt     sql.NullTime
		catID, userID              sql.NullInt64
		catName, catNameRw, catSlg sql.NullString
		userName, userEmail        sql.NullString
	)
	err := s.Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.ImageURL, &categoryID, &authorID,
		&a.IsBreaking, &a.IsFeatured, (*string)(&a.Status), &publishedAt, &a.Views, &a.CreatedAt, &updatedAt,
		&catID, &catName, &catNameRw, &catSlg,
		&userID, &userName, &userEmail)
	if err != nil {
		return nil, err
	}
	a.CategoryID = int64Ptr(categoryID)
	a.AuthorID = int64Ptr(authorID)
	a.PublishedAt = timePtr(publishedAt)
	a.UpdatedAt = timePtr(updatedAt)
	if catID.Valid {
		a.Category = &entity.CategoryRef{ID: catID.Int64, Name: catName.String, NameRw: catNameRw.String, Slug: catSlg.String}
	}
	if userID.Valid {
		a.Author = &entity.AuthorRef{ID: userID.Int64, Name: userName.String, Email: userEmail.String}
	}
	return &a, nil
}

func (repo *ArticleRepo) queryArticles(ctx context.Context, op, query string, args ...interface{}) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 20)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: Scan: %w", op, err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func articleWhere(filter entity.ArticleFilter) *whereBuilder {
	w := &whereBuilder{}
	if filter.CategorySlug != "" {
		w.add("c.slug = ?", filter.CategorySlug)
	}
	if filter.Status != "" {
		w.add("a.status = ?", string(filter.Status))
	}
	if filter.IsBreaking != nil {
		w.add("a.is_breaking = ?", *filter.IsBreaking)
	}
	if filter.IsFeatured != nil {
		w.add("a.is_featured = ?", *filter.IsFeatured)
	}
	return w
}

func (repo *ArticleRepo) List(ctx context.Context, filter entity.ArticleFilter) ([]*entity.Article, error) {
	w := articleWhere(filter)
	query := articleSelect + w.clause() + articleOrder
	if filter.Limit > 0 {
		query += " LIMIT " + w.arg(filter.Limit)
	}
	if filter.Offset > 0 {
		query += " OFFSET " + w.arg(filter.Offset)
	}
	return repo.queryArticles(ctx, "List", query, w.args...)
}

func (repo *ArticleRepo) Count(ctx context.Context, filter entity.ArticleFilter) (int64, error) {
	w := articleWhere(filter)
	query := `SELECT COUNT(*) FROM articles a LEFT JOIN categories c ON c.id = a.category_id` + w.clause()
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, w.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id int64) (*entity.Article, error) {
	a, err := scanArticle(repo.db.QueryRowContext(ctx, articleSelect+` WHERE a.id = $1 LIMIT 1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

func (repo *ArticleRepo) Search(ctx context.Context, keyword string, limit int) ([]*entity.Article, error) {
	query := articleSelect + `
WHERE a.status = 'published'
  AND (a.title ILIKE $1 OR a.content ILIKE $1 OR a.excerpt ILIKE $1)` + articleOrder + `
LIMIT $2`
	return repo.queryArticles(ctx, "Search", query, search.EscapeILIKE(keyword), limit)
}

func (repo *ArticleRepo) Create(ctx context.Context, a *entity.Article) error {
	const query = `
INSERT INTO articles
    (title, slug, excerpt, content, image_url, category_id, author_id,
     is_breaking, is_featured, status, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING id, created_at`
	err := repo.db.QueryRowContext(ctx, query,
		a.Title, a.Slug, a.Excerpt, a.Content, a.ImageURL, nullInt64(a.CategoryID), nullInt64(a.AuthorID),
		a.IsBreaking, a.IsFeatured, string(a.Status), a.PublishedAt,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return mapError("Create", err)
	}
	return nil
}

func (repo *ArticleRepo) Update(ctx context.Context, a *entity.Article) error {
	const query = `
UPDATE articles
SET title = $1, slug = $2, excerpt = $3, content = $4, image_url = $5,
    category_id = $6, author_id = $7, is_breaking = $8, is_featured = $9,
    status = $10, published_at = $11, updated_at = now()
WHERE id = $12
RETURNING updated_at`
	var updatedAt sql.NullTime
	err := repo.db.QueryRowContext(ctx, query,
		a.Title, a.Slug, a.Excerpt, a.Content, a.ImageURL,
		nullInt64(a.CategoryID), nullInt64(a.AuthorID), a.IsBreaking, a.IsFeatured,
		string(a.Status), a.PublishedAt, a.ID,
	).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("Update: %w", entity.ErrNotFound)
	}
	if err != nil {
		return mapError("Update", err)
	}
	a.UpdatedAt = timePtr(updatedAt)
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return mustAffect("Delete", res)
}

func (repo *ArticleRepo) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM articles WHERE slug = $1 AND id <> $2)`
	var exists bool
	if err := repo.db.QueryRowContext(ctx, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("SlugExists: %w", err)
	}
	return exists, nil
}

func (repo *ArticleRepo) IncrementViews(ctx context.Context, id int64) error {
	res, err := repo.db.ExecContext(ctx, `UPDATE articles SET views = views + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("IncrementViews: %w", err)
	}
	return mustAffect("IncrementViews", res)
}

func (repo *ArticleRepo) ResetFlags(ctx context.Context) (int64, error) {
	const query = `
UPDATE articles SET is_breaking = FALSE, is_featured = FALSE, updated_at = now()
WHERE is_breaking OR is_featured`
	res, err := repo.db.ExecContext(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("ResetFlags: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("ResetFlags: RowsAffected: %w", err)
	}
	return n, nil
}

func (repo *ArticleRepo) CountByStatus(ctx context.Context) (map[entity.ArticleStatus]int64, error) {
	rows, err := repo.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM articles GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("CountByStatus: %w", err)
	}
	defer func() { _ = rows.Close() }()

	counts := map[entity.ArticleStatus]int64{entity.StatusDraft: 0, entity.StatusPublished: 0}
	for rows.Next() {
		var status string
		var n int64
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("CountByStatus: Scan: %w", err)
		}
		counts[entity.ArticleStatus(status)] = n
	}
	return counts, rows.Err()
}
