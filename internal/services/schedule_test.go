package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/therapease/therapy-booking/internal/models"
	"github.com/therapease/therapy-booking/internal/services"
)

func TestScheduleService_CreateSlots(t *testing.T) {
	therapistID := uuid.New()
	aligned := time.Date(2026, 9, 14, 10, 30, 0, 0, time.UTC)

	t.Run("creates aligned slots", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWriter := services.NewMockScheduleSlotWriter(ctrl)
		svc := services.NewScheduleService(services.NewMockScheduleSlotReader(ctrl), mockWriter)

		first, second := uuid.New(), uuid.New()
		mockWriter.EXPECT().Save(gomock.Any(), therapistID, aligned).Return(first, nil)
		mockWriter.EXPECT().Save(gomock.Any(), therapistID, aligned.Add(30*time.Minute)).Return(second, nil)

		ids, err := svc.CreateSlots(context.Background(), therapistID,
			[]time.Time{aligned, aligned.Add(30 * time.Minute)})

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{first, second}, ids)
	})

	t.Run("accepts aligned wall-clock start carrying a monotonic reading", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWriter := services.NewMockScheduleSlotWriter(ctrl)
		svc := services.NewScheduleService(services.NewMockScheduleSlotReader(ctrl), mockWriter)

		// Shift time.Now onto the next half-hour boundary with Add so the
		// monotonic reading survives; alignment must compare instants, not
		// the clock representation.
		now := time.Now()
		onGrid := now.Add(now.UTC().Truncate(models.SlotDuration).Add(models.SlotDuration).Sub(now))

		slotID := uuid.New()
		mockWriter.EXPECT().Save(gomock.Any(), therapistID, onGrid).Return(slotID, nil)

		ids, err := svc.CreateSlots(context.Background(), therapistID, []time.Time{onGrid})

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{slotID}, ids)
	})

	t.Run("accepts aligned start in a non-UTC zone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWriter := services.NewMockScheduleSlotWriter(ctrl)
		svc := services.NewScheduleService(services.NewMockScheduleSlotReader(ctrl), mockWriter)

		kyiv := time.FixedZone("EEST", 3*60*60)
		localAligned := time.Date(2026, 9, 14, 13, 30, 0, 0, kyiv)

		slotID := uuid.New()
		mockWriter.EXPECT().Save(gomock.Any(), therapistID, localAligned).Return(slotID, nil)

		ids, err := svc.CreateSlots(context.Background(), therapistID, []time.Time{localAligned})

		assert.NoError(t, err)
		assert.Equal(t, []uuid.UUID{slotID}, ids)
	})

	t.Run("rejects misaligned start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := services.NewScheduleService(
			services.NewMockScheduleSlotReader(ctrl),
			services.NewMockScheduleSlotWriter(ctrl),
		)

		_, err := svc.CreateSlots(context.Background(), therapistID,
			[]time.Time{aligned.Add(10 * time.Minute)})

		assert.ErrorIs(t, err, services.ErrSlotNotAligned)
	})

	t.Run("rejects batch with one misaligned start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := services.NewScheduleService(
			services.NewMockScheduleSlotReader(ctrl),
			services.NewMockScheduleSlotWriter(ctrl),
		)

		// Nothing is written when any instant is off the grid.
		_, err := svc.CreateSlots(context.Background(), therapistID,
			[]time.Time{aligned, aligned.Add(45 * time.Minute)})

		assert.ErrorIs(t, err, services.ErrSlotNotAligned)
	})

	t.Run("save error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockWriter := services.NewMockScheduleSlotWriter(ctrl)
		svc := services.NewScheduleService(services.NewMockScheduleSlotReader(ctrl), mockWriter)

		mockWriter.EXPECT().Save(gomock.Any(), therapistID, aligned).Return(uuid.Nil, errors.New("db error"))

		_, err := svc.CreateSlots(context.Background(), therapistID, []time.Time{aligned})
		assert.Error(t, err)
	})
}

func TestScheduleService_ListSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	therapistID := uuid.New()
	from := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
	to := from.Add(14 * 24 * time.Hour)

	mockReader := services.NewMockScheduleSlotReader(ctrl)
	svc := services.NewScheduleService(mockReader, services.NewMockScheduleSlotWriter(ctrl))

	want := []models.SlotDB{
		slotAt(therapistID, from.Add(10*time.Hour), models.SlotAvailable),
		slotAt(therapistID, from.Add(10*time.Hour+30*time.Minute), models.SlotBooked),
	}
	mockReader.EXPECT().ListByTherapist(gomock.Any(), therapistID, from, to).Return(want, nil)

	slots, err := svc.ListSlots(context.Background(), therapistID, from, to)
	assert.NoError(t, err)
	assert.Equal(t, want, slots)
}
