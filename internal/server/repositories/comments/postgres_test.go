package comments

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/newsportal/internal/common"
	"github.com/dmitrijs2005/newsportal/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var commentColumns = []string{"id", "news_id", "news_ref", "user_id", "user_ref", "username", "full_name", "text", "created_at"}

func TestCreate_WritesBothOwnerForms(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	q := `(?s)^INSERT\s+INTO\s+comments\s*\(id,\s*news_id,\s*news_ref,\s*user_id,\s*user_ref,\s*username,\s*full_name,\s*text,\s*created_at\)`

	now := time.Now().UTC()
	c := &models.Comment{
		ID:        "aaaabbbbccccddddeeee0001",
		News:      models.NewOwnerRef("aaaabbbbccccddddeeeeffff"),
		User:      models.NewOwnerRef("64f1b2c3d4e5f60718293a4b"),
		Username:  "alice",
		Text:      "hi",
		CreatedAt: now,
	}

	mock.ExpectExec(q).
		WithArgs(c.ID, c.News.ID, c.News.Legacy, c.User.ID, c.User.Legacy, "alice", nil, "hi", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	got, err := repo.Create(context.Background(), c)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != c.ID {
		t.Fatalf("unexpected comment: %+v", got)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+comments\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("aaaabbbbccccddddeeee0001").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "aaaabbbbccccddddeeee0001")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestListByNewsID_And_ListByNewsRef(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now().UTC()
	newsID := "aaaabbbbccccddddeeeeffff"

	modernRows := sqlmock.NewRows(commentColumns).
		AddRow("c-modern", newsID, newsID, "u1", "u1", "alice", nil, "new", now)
	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+comments\s+WHERE\s+news_id\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC`).
		WithArgs(newsID).
		WillReturnRows(modernRows)

	legacyRows := sqlmock.NewRows(commentColumns).
		AddRow("c-legacy", nil, newsID, nil, "old-user-42", "ghost", nil, "old", now.Add(-time.Hour))
	mock.ExpectQuery(`(?s)^SELECT\s+.*FROM\s+comments\s+WHERE\s+news_ref\s*=\s*\$1\s+ORDER\s+BY\s+created_at\s+DESC`).
		WithArgs(newsID).
		WillReturnRows(legacyRows)

	modern, err := repo.ListByNewsID(context.Background(), newsID)
	if err != nil {
		t.Fatalf("ListByNewsID error: %v", err)
	}
	if len(modern) != 1 || modern[0].ID != "c-modern" {
		t.Fatalf("unexpected modern list: %+v", modern)
	}

	legacy, err := repo.ListByNewsRef(context.Background(), newsID)
	if err != nil {
		t.Fatalf("ListByNewsRef error: %v", err)
	}
	if len(legacy) != 1 || legacy[0].ID != "c-legacy" {
		t.Fatalf("unexpected legacy list: %+v", legacy)
	}
	if legacy[0].News.HasModern() {
		t.Fatalf("legacy row must not grow a modern key: %+v", legacy[0].News)
	}
	if legacy[0].User.Legacy == nil || *legacy[0].User.Legacy != "old-user-42" {
		t.Fatalf("user legacy ref not read: %+v", legacy[0].User)
	}
}

func TestDelete_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+comments\s+WHERE\s+id\s*=\s*\$1`).
		WithArgs("aaaabbbbccccddddeeee0001").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "aaaabbbbccccddddeeee0001")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDeleteByNewsID_ReturnsCount(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+comments\s+WHERE\s+news_id\s*=\s*\$1`).
		WithArgs("aaaabbbbccccddddeeeeffff").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteByNewsID(context.Background(), "aaaabbbbccccddddeeeeffff")
	if err != nil {
		t.Fatalf("DeleteByNewsID error: %v", err)
	}
	if n != 3 {
		t.Fatalf("want 3 rows deleted, got %d", n)
	}
}

func TestDeleteByNewsRef_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(`(?s)^DELETE\s+FROM\s+comments\s+WHERE\s+news_ref\s*=\s*\$1`).
		WithArgs("aaaabbbbccccddddeeeeffff").
		WillReturnError(errors.New("db down"))

	_, err := repo.DeleteByNewsRef(context.Background(), "aaaabbbbccccddddeeeeffff")
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}
