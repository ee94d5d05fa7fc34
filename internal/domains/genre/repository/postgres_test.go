package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/genre/model"
	"library-catalog/internal/shared/apperror"
	"library-catalog/pkg/database"
)

func newRepo(t *testing.T) (RepositoryInterface, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock, database.NewTxRunner(mock, 1)), mock
}

func TestCreate(t *testing.T) {
	repo, mock := newRepo(t)
	now := time.Now()
	desc := "Imagined futures"

	mock.ExpectQuery(regexp.QuoteMeta(insertGenreSQL)).
		WithArgs("Science Fiction", &desc).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(11), now, now))

	created, err := repo.Create(context.Background(), &model.Genre{Name: "Science Fiction", Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, "Science Fiction", created.Name)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_StorageErrorIsTyped(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(insertGenreSQL)).
		WillReturnError(&pgconn.PgError{Code: "22001"})

	_, err := repo.Create(context.Background(), &model.Genre{Name: "x"})
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestUpdate_NotFound(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(updateGenreSQL)).
		WithArgs(int64(404), "Nothing", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), &model.Genre{ID: 404, Name: "Nothing"})
	assert.ErrorIs(t, err, model.ErrGenreNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepo(t)
	created := time.Now().Add(-time.Hour)
	updatedAt := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta(updateGenreSQL)).
		WithArgs(int64(3), "G1", pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}).AddRow(created, updatedAt))

	got, err := repo.Update(context.Background(), &model.Genre{ID: 3, Name: "G1"})
	require.NoError(t, err)
	assert.Equal(t, updatedAt, got.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_WithoutBooks(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectBeginTx(database.DefaultTxOptions)
	mock.ExpectQuery(regexp.QuoteMeta(deleteGenreGuard.LockSQL)).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(deleteGenreGuard.CountSQL)).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(deleteGenreGuard.DeleteSQL)).WithArgs(int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_WithBooksIsRefused(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectBeginTx(database.DefaultTxOptions)
	mock.ExpectQuery(regexp.QuoteMeta(deleteGenreGuard.LockSQL)).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(1)))
	mock.ExpectQuery(regexp.QuoteMeta(deleteGenreGuard.CountSQL)).WithArgs(int64(1)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 1)
	assert.ErrorIs(t, err, model.ErrGenreHasBooks)
	assert.True(t, apperror.IsKind(err, apperror.KindDependencyConflict))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_Unknown(t *testing.T) {
	repo, mock := newRepo(t)
	mock.ExpectBeginTx(database.DefaultTxOptions)
	mock.ExpectQuery(regexp.QuoteMeta(deleteGenreGuard.LockSQL)).WithArgs(int64(77)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectRollback()

	assert.ErrorIs(t, repo.Delete(context.Background(), 77), model.ErrGenreNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
