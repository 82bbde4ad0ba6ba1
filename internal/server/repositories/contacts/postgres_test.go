package contacts

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/justdoit/internal/common"
	"github.com/dmitrijs2005/justdoit/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

func TestList_Global(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT .* FROM contacts ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "phone", "created_at"}).
			AddRow("c-1", "Alice", "alice@example.com", nil, now).
			AddRow("c-2", "Bob", "bob@example.com", "+371000000", now))

	items, err := repo.List(context.Background(), "name ASC")
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Nil(t, items[0].Phone)
	require.Equal(t, "+371000000", *items[1].Phone)
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM contacts WHERE email = \$1`).
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByEmail(context.Background(), "missing@example.com")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestInsert_DuplicateEmail(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO contacts`).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := repo.Insert(context.Background(), &models.Contact{
		Name: "Alice", Email: "alice@example.com",
	})
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestInsert_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`INSERT INTO contacts`).
		WithArgs("Alice", "alice@example.com", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("c-1", now))

	contact, err := repo.Insert(context.Background(), &models.Contact{
		Name: "Alice", Email: "alice@example.com",
	})
	require.NoError(t, err)
	require.Equal(t, "c-1", contact.ID)
}
