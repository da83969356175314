package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTherapistClientWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewTherapistClientWriteRepository(db, nil)

	therapistID := uuid.New()
	userID := uuid.New()

	t.Run("first booking creates the pair", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO therapist_clients").
			WithArgs(therapistID, userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Save(context.Background(), therapistID, userID)

		assert.NoError(t, err)
	})

	t.Run("re-booking is a no-op", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO therapist_clients").
			WithArgs(therapistID, userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Save(context.Background(), therapistID, userID)

		assert.NoError(t, err)
	})

	t.Run("write error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO therapist_clients").
			WithArgs(therapistID, userID).
			WillReturnError(sql.ErrConnDone)

		err := repo.Save(context.Background(), therapistID, userID)

		assert.ErrorIs(t, err, sql.ErrConnDone)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
