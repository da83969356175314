package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// ErrSlotNotAligned is returned when a slot start is not on a half-hour
// boundary.
var ErrSlotNotAligned = errors.New("slot start must be aligned to 30 minutes")

// ScheduleSlotReader lists a therapist's slots.
type ScheduleSlotReader interface {
	ListByTherapist(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]models.SlotDB, error)
}

// ScheduleSlotWriter creates availability slots.
type ScheduleSlotWriter interface {
	Save(ctx context.Context, therapistID uuid.UUID, availableAt time.Time) (uuid.UUID, error)
}

// ScheduleService is the therapist schedule editor: it creates AVAILABLE
// slots on the fixed 30-minute grid and lists a therapist's schedule.
type ScheduleService struct {
	reader ScheduleSlotReader
	writer ScheduleSlotWriter
}

// NewScheduleService creates a new ScheduleService.
func NewScheduleService(reader ScheduleSlotReader, writer ScheduleSlotWriter) *ScheduleService {
	return &ScheduleService{reader: reader, writer: writer}
}

// CreateSlots creates one AVAILABLE slot per instant for the therapist.
// Every instant must sit on a half-hour boundary; re-creating an existing
// slot is a no-op.
func (s *ScheduleService) CreateSlots(ctx context.Context, therapistID uuid.UUID, startTimes []time.Time) ([]uuid.UUID, error) {
	for _, at := range startTimes {
		if !at.UTC().Truncate(models.SlotDuration).Equal(at.UTC()) {
			logger.Log.Warnw("misaligned slot start", "therapistID", therapistID, "at", at)
			return nil, ErrSlotNotAligned
		}
	}

	slotIDs := make([]uuid.UUID, 0, len(startTimes))
	for _, at := range startTimes {
		slotID, err := s.writer.Save(ctx, therapistID, at)
		if err != nil {
			logger.Log.Errorw("failed to save slot", "therapistID", therapistID, "at", at, "error", err)
			return nil, err
		}
		slotIDs = append(slotIDs, slotID)
	}
	return slotIDs, nil
}

// ListSlots returns the therapist's slots in [from, to].
func (s *ScheduleService) ListSlots(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]models.SlotDB, error) {
	slots, err := s.reader.ListByTherapist(ctx, therapistID, from, to)
	if err != nil {
		logger.Log.Errorw("failed to list slots", "therapistID", therapistID, "error", err)
		return nil, err
	}
	return slots, nil
}
