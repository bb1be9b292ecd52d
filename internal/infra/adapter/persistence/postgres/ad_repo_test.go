package postgres_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"newsdesk/internal/domain/entity"
	pg "newsdesk/internal/infra/adapter/persistence/postgres"
)

var adCols = []string{
	"id", "title", "image_url", "link_url", "position", "is_active", "start_date", "end_date",
	"created_by", "clicks", "impressions", "created_at", "updated_at",
}

func TestAdRepo_List_Current(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE position = $1 AND is_active AND (start_date IS NULL OR start_date <= $2) AND (end_date IS NULL OR end_date >= $2)")).
		WithArgs("sidebar", now).
		WillReturnRows(sqlmock.NewRows(adCols).
			AddRow(int64(1), "Banner", "/img.png", "https://shop.example.com", "sidebar", true,
				now.Add(-time.Hour), nil, int64(2), int64(5), int64(50), now, nil))

	got, err := pg.NewAdRepo(db).List(context.Background(), entity.AdFilter{
		Position: entity.PositionSidebar,
		Current:  &now,
	})
	if err != nil || len(got) != 1 {
		t.Fatalf("List = %d, %v", len(got), err)
	}
	ad := got[0]
	if ad.StartDate == nil || ad.EndDate != nil || ad.CreatedBy == nil || *ad.CreatedBy != 2 {
		t.Errorf("unexpected ad %+v", ad)
	}
}

func TestAdRepo_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO ads")).
		WithArgs("Banner", "/img.png", "", "header", true, nil, nil, int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(4), now))

	createdBy := int64(1)
	ad := &entity.Ad{Title: "Banner", ImageURL: "/img.png", Position: entity.PositionHeader, IsActive: true, CreatedBy: &createdBy}
	if err := pg.NewAdRepo(db).Create(context.Background(), ad); err != nil {
		t.Fatalf("Create err=%v", err)
	}
	if ad.ID != 4 {
		t.Errorf("ID = %d", ad.ID)
	}
}

func TestAdRepo_Counters(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("SET clicks = clicks + 1")).
		WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET impressions = impressions + 1")).
		WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("SET clicks = clicks + 1")).
		WithArgs(int64(404)).WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewAdRepo(db)
	if err := repo.IncrementClicks(context.Background(), 1); err != nil {
		t.Fatalf("IncrementClicks err=%v", err)
	}
	if err := repo.IncrementImpressions(context.Background(), 1); err != nil {
		t.Fatalf("IncrementImpressions err=%v", err)
	}
	if err := repo.IncrementClicks(context.Background(), 404); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("IncrementClicks missing err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatal(err)
	}
}
