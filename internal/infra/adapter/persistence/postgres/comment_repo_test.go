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

var commentCols = []string{"id", "article_id", "author_name", "author_email", "content", "approved", "created_at"}

func TestCommentRepo_ListByArticle_ApprovedOnly(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE article_id = $1 AND approved ORDER BY created_at ASC")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(commentCols).AddRow(int64(1), int64(1), "Ion", "", "Bravo", true, now))

	got, err := pg.NewCommentRepo(db).ListByArticle(context.Background(), 1, true)
	if err != nil || len(got) != 1 || !got[0].Approved {
		t.Fatalf("ListByArticle = %+v, %v", got, err)
	}
}

func TestCommentRepo_List_Pending(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE approved = $1")).
		WithArgs(false).
		WillReturnRows(sqlmock.NewRows(commentCols))

	approved := false
	got, err := pg.NewCommentRepo(db).List(context.Background(), &approved)
	if err != nil || len(got) != 0 {
		t.Fatalf("List = %v, %v", got, err)
	}
}

func TestCommentRepo_Create_UnknownArticle(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery("INSERT INTO comments").
		WithArgs(int64(404), "Ion", "", "Hi", false).
		WillReturnError(pgFKViolation())

	err := pg.NewCommentRepo(db).Create(context.Background(), &entity.Comment{ArticleID: 404, AuthorName: "Ion", Content: "Hi"})
	if !errors.Is(err, entity.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestCommentRepo_ApproveDelete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE comments SET approved = TRUE")).
		WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM comments")).
		WithArgs(int64(3)).WillReturnResult(sqlmock.NewResult(0, 0))

	repo := pg.NewCommentRepo(db)
	if err := repo.Approve(context.Background(), 3); err != nil {
		t.Fatalf("Approve err=%v", err)
	}
	if err := repo.Delete(context.Background(), 3); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("Delete err=%v", err)
	}
}
