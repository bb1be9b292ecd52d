package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"

	"newsdesk/internal/domain/entity"
	pg "newsdesk/internal/infra/adapter/persistence/postgres"
)

var categoryCols = []string{"id", "name", "name_rw", "slug", "description", "icon", "display_order", "active", "created_at"}

func catRow(rows *sqlmock.Rows, c *entity.Category) *sqlmock.Rows {
	return rows.AddRow(c.ID, c.Name, c.NameRw, c.Slug, c.Description, c.Icon, c.DisplayOrder, c.Active, c.CreatedAt)
}

func TestCategoryRepo_List_ActiveOnly(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	want := []*entity.Category{
		{ID: 1, Name: "Politics", NameRw: "Politică", Slug: "politics", DisplayOrder: 1, Active: true, CreatedAt: now},
		{ID: 2, Name: "Sports", NameRw: "Sport", Slug: "sports", DisplayOrder: 2, Active: true, CreatedAt: now},
	}
	rows := sqlmock.NewRows(categoryCols)
	for _, c := range want {
		catRow(rows, c)
	}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE active = $1 ORDER BY display_order, name")).
		WithArgs(true).
		WillReturnRows(rows)

	active := true
	got, err := pg.NewCategoryRepo(db).List(context.Background(), &active)
	if err != nil {
		t.Fatalf("List err=%v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestCategoryRepo_GetBySlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE slug = $1")).
		WithArgs("unknown").
		WillReturnRows(sqlmock.NewRows(categoryCols))

	got, err := pg.NewCategoryRepo(db).GetBySlug(context.Background(), "unknown")
	if err != nil || got != nil {
		t.Fatalf("GetBySlug = %v, %v; want nil, nil", got, err)
	}
}

func TestCategoryRepo_Create_DuplicateSlug(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("INSERT INTO categories").
		WithArgs("Tech", "Tehnologie", "tech", "", "", 0, true).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	err := pg.NewCategoryRepo(db).Create(context.Background(), &entity.Category{
		Name: "Tech", NameRw: "Tehnologie", Slug: "tech", Active: true,
	})
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
}

func TestCategoryRepo_UpdateDelete_NotFound(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec("UPDATE categories").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM categories").WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewCategoryRepo(db)
	if err := repo.Update(context.Background(), &entity.Category{ID: 9}); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("Update err = %v", err)
	}
	if err := repo.Delete(context.Background(), 9); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("Delete err = %v", err)
	}
}
