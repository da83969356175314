package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/therapease/therapy-booking/internal/models"
)

func consultationColumns() []string {
	return []string{"consultation_id", "user_id", "therapist_id", "price_id", "type", "state", "created_at", "updated_at"}
}

func TestConsultationWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationWriteRepository(db, nil)

	userID := uuid.New()
	therapistID := uuid.New()
	priceID := uuid.New()
	consultationID := uuid.New()

	mock.ExpectQuery("INSERT INTO consultations").
		WithArgs(sqlmock.AnyArg(), userID, therapistID, priceID,
			string(models.TypeIndividual), string(models.ConsultationCreated)).
		WillReturnRows(sqlmock.NewRows([]string{"consultation_id"}).AddRow(consultationID.String()))

	saved, err := repo.Save(context.Background(), userID, therapistID, priceID, models.TypeIndividual)

	assert.NoError(t, err)
	assert.Equal(t, consultationID, saved)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationWriteRepository_SaveSlots(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationWriteRepository(db, nil)

	consultationID := uuid.New()
	slotIDs := []uuid.UUID{uuid.New(), uuid.New()}

	t.Run("one row per slot", func(t *testing.T) {
		for _, slotID := range slotIDs {
			mock.ExpectExec("INSERT INTO consultation_slots").
				WithArgs(consultationID, slotID).
				WillReturnResult(sqlmock.NewResult(0, 1))
		}

		err := repo.SaveSlots(context.Background(), consultationID, slotIDs)

		assert.NoError(t, err)
	})

	t.Run("stops on first failure", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO consultation_slots").
			WithArgs(consultationID, slotIDs[0]).
			WillReturnError(sql.ErrConnDone)

		err := repo.SaveSlots(context.Background(), consultationID, slotIDs)

		assert.ErrorIs(t, err, sql.ErrConnDone)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationWriteRepository_UpdateState(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationWriteRepository(db, nil)

	consultationID := uuid.New()

	mock.ExpectExec("UPDATE consultations SET state").
		WithArgs(consultationID, string(models.ConsultationCancelledByUserInTime)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateState(context.Background(), consultationID, models.ConsultationCancelledByUserInTime)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationReadRepository(db, nil)

	consultationID := uuid.New()
	userID := uuid.New()
	therapistID := uuid.New()
	priceID := uuid.New()
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("FROM consultations WHERE consultation_id").
			WithArgs(consultationID).
			WillReturnRows(sqlmock.NewRows(consultationColumns()).
				AddRow(consultationID.String(), userID.String(), therapistID.String(), priceID.String(),
					string(models.TypeCouple), string(models.ConsultationCreated), now, now))

		consultation, err := repo.GetByID(context.Background(), consultationID)

		assert.NoError(t, err)
		assert.NotNil(t, consultation)
		assert.Equal(t, consultationID, consultation.ConsultationID)
		assert.Equal(t, models.TypeCouple, consultation.Type)
		assert.Equal(t, models.ConsultationCreated, consultation.State)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("FROM consultations WHERE consultation_id").
			WithArgs(consultationID).
			WillReturnError(sql.ErrNoRows)

		consultation, err := repo.GetByID(context.Background(), consultationID)

		assert.NoError(t, err)
		assert.Nil(t, consultation)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConsultationReadRepository_ListSlots(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewConsultationReadRepository(db, nil)

	consultationID := uuid.New()
	therapistID := uuid.New()
	first := uuid.New()
	second := uuid.New()
	start := time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC)
	now := time.Now().UTC()

	mock.ExpectQuery("JOIN consultation_slots").
		WithArgs(consultationID).
		WillReturnRows(sqlmock.NewRows(slotColumns()).
			AddRow(first.String(), therapistID.String(), start, string(models.SlotBooked), now, now).
			AddRow(second.String(), therapistID.String(), start.Add(30*time.Minute), string(models.SlotBooked), now, now))

	slots, err := repo.ListSlots(context.Background(), consultationID)

	assert.NoError(t, err)
	assert.Len(t, slots, 2)
	assert.Equal(t, first, slots[0].SlotID)
	assert.True(t, slots[1].AvailableAt.Equal(start.Add(30*time.Minute)))
	assert.NoError(t, mock.ExpectationsWereMet())
}
