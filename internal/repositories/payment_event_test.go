package repositories

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPaymentEventWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentEventWriteRepository(db)

	eventID := uuid.New()
	payload := []byte(`{"orderReference":"ref-1","transactionStatus":"Approved"}`)

	t.Run("stores payload verbatim", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO payment_events").
			WithArgs(sqlmock.AnyArg(), "ref-1", payload).
			WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(eventID.String()))

		saved, err := repo.Save(context.Background(), "ref-1", payload)

		assert.NoError(t, err)
		assert.Equal(t, eventID, saved)
	})

	t.Run("empty reference for unparseable deliveries", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO payment_events").
			WithArgs(sqlmock.AnyArg(), "", []byte("not json")).
			WillReturnRows(sqlmock.NewRows([]string{"event_id"}).AddRow(eventID.String()))

		saved, err := repo.Save(context.Background(), "", []byte("not json"))

		assert.NoError(t, err)
		assert.Equal(t, eventID, saved)
	})

	t.Run("write error", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO payment_events").
			WithArgs(sqlmock.AnyArg(), "ref-1", payload).
			WillReturnError(sql.ErrConnDone)

		_, err := repo.Save(context.Background(), "ref-1", payload)

		assert.ErrorIs(t, err, sql.ErrConnDone)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
