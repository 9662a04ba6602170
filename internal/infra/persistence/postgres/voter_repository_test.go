package postgres

import (
	"context"
	"regexp"
	"testing"

	domainerrors "votegate/internal/domain/errors"
	"votegate/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newMockDB opens gorm on the postgres dialect over a sqlmock connection,
// configured the way New configures the real handle.
func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		_ = sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	return db, mock
}

func TestVoterRepository_MarkVoted(t *testing.T) {
	update := regexp.QuoteMeta(`UPDATE "voters" SET "has_voted"=$1,"updated_at"=$2 WHERE id = $3 AND has_voted = $4`)
	count := regexp.QuoteMeta(`SELECT count(*) FROM "voters" WHERE id = $1`)

	t.Run("flips an unvoted voter", func(t *testing.T) {
		db, mock := newMockDB(t)
		id := uuid.New()

		mock.ExpectExec(update).
			WithArgs(true, sqlmock.AnyArg(), id, false).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, NewVoterRepository(db).MarkVoted(context.Background(), id))
	})

	t.Run("second ballot is rejected", func(t *testing.T) {
		db, mock := newMockDB(t)
		id := uuid.New()

		mock.ExpectExec(update).
			WithArgs(true, sqlmock.AnyArg(), id, false).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(count).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		err := NewVoterRepository(db).MarkVoted(context.Background(), id)
		assert.True(t, errors.Is(err, repository.ErrVoterAlreadyVoted), "got %v", err)
	})

	t.Run("unknown voter", func(t *testing.T) {
		db, mock := newMockDB(t)
		id := uuid.New()

		mock.ExpectExec(update).
			WithArgs(true, sqlmock.AnyArg(), id, false).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(count).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		err := NewVoterRepository(db).MarkVoted(context.Background(), id)
		assert.True(t, errors.Is(err, repository.ErrVoterNotFound), "got %v", err)
	})

	t.Run("database failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		id := uuid.New()

		mock.ExpectExec(update).
			WithArgs(true, sqlmock.AnyArg(), id, false).
			WillReturnError(errors.New("connection reset"))

		err := NewVoterRepository(db).MarkVoted(context.Background(), id)
		var dbErr *domainerrors.DatabaseExecuteError
		require.True(t, errors.As(err, &dbErr), "got %v", err)
		assert.Equal(t, "failed to update voter has_voted", dbErr.Details())
	})
}

func TestVoterRepository_MarkFaceModelTrained(t *testing.T) {
	db, mock := newMockDB(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "voters" SET "face_model_trained"=$1,"updated_at"=$2 WHERE id = $3 AND face_model_trained = $4`)).
		WithArgs(true, sqlmock.AnyArg(), id, false).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "voters" WHERE id = $1`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := NewVoterRepository(db).MarkFaceModelTrained(context.Background(), id)
	assert.True(t, errors.Is(err, repository.ErrVoterAlreadyTrained), "got %v", err)
}
