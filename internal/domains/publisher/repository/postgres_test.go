package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/publisher/model"
	"library-catalog/pkg/database"
)

func setup(t *testing.T) (RepositoryInterface, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return NewPostgresRepository(mock, database.NewTxRunner(mock, 1)), mock
}

func TestCreatePublisher(t *testing.T) {
	repo, mock := setup(t)
	now := time.Now()
	addr := "80 Strand, London"

	mock.ExpectQuery(regexp.QuoteMeta(insertPublisherSQL)).
		WithArgs("Penguin Books", &addr, (*string)(nil)).
		WillReturnRows(pgxmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(2), now, now))

	got, err := repo.Create(context.Background(), &model.Publisher{Name: "Penguin Books", Address: &addr})
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.ID)
	assert.Equal(t, "80 Strand, London", *got.Address)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePublisher_Referenced(t *testing.T) {
	repo, mock := setup(t)
	mock.ExpectBeginTx(database.DefaultTxOptions)
	mock.ExpectQuery(regexp.QuoteMeta(deletePublisherGuard.LockSQL)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(deletePublisherGuard.CountSQL)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectRollback()

	err := repo.Delete(context.Background(), 3)
	assert.ErrorIs(t, err, model.ErrPublisherHasBooks)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeletePublisher(t *testing.T) {
	repo, mock := setup(t)
	mock.ExpectBeginTx(database.DefaultTxOptions)
	mock.ExpectQuery(regexp.QuoteMeta(deletePublisherGuard.LockSQL)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)))
	mock.ExpectQuery(regexp.QuoteMeta(deletePublisherGuard.CountSQL)).WithArgs(int64(3)).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(regexp.QuoteMeta(deletePublisherGuard.DeleteSQL)).WithArgs(int64(3)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePublisher_NotFound(t *testing.T) {
	repo, mock := setup(t)
	mock.ExpectQuery(regexp.QuoteMeta(updatePublisherSQL)).
		WithArgs(int64(8), "P", pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), &model.Publisher{ID: 8, Name: "P"})
	assert.ErrorIs(t, err, model.ErrPublisherNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
