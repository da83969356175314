package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// ErrNoSlotMatch is returned when the exact contiguous slot set a
// consultation type requires is not available from the anchor slot.
var ErrNoSlotMatch = errors.New("no matching slot set")

// MatcherSlotReader reads candidate slots for a match.
type MatcherSlotReader interface {
	ListAvailableInWindow(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]models.SlotDB, error)
}

// SlotMatcher finds the slot set a consultation occupies. The match window
// is [anchor, anchor+30m] for individual and [anchor, anchor+60m] for couple
// sessions, inclusive, and is accepted only when the count of AVAILABLE
// slots in-window equals exactly what the type requires (2 or 3). An extra
// AVAILABLE slot inside the window therefore yields no match.
type SlotMatcher struct {
	slots MatcherSlotReader
}

// NewSlotMatcher creates a new SlotMatcher.
func NewSlotMatcher(slots MatcherSlotReader) *SlotMatcher {
	return &SlotMatcher{slots: slots}
}

// Match returns the matched slot set for the anchor, or ErrNoSlotMatch.
// Matching is a pure read: nothing is written here.
func (m *SlotMatcher) Match(ctx context.Context, anchor models.SlotDB, consultationType models.ConsultationType) ([]models.SlotDB, error) {
	if anchor.State != models.SlotAvailable {
		logger.Log.Infow("anchor slot not available", "slotID", anchor.SlotID, "state", anchor.State)
		return nil, ErrNoSlotMatch
	}

	required := consultationType.SlotsFor()
	windowEnd := anchor.AvailableAt.Add(time.Duration(required-1) * models.SlotDuration)

	slots, err := m.slots.ListAvailableInWindow(ctx, anchor.TherapistID, anchor.AvailableAt, windowEnd)
	if err != nil {
		logger.Log.Errorw("failed to list slots in window", "therapistID", anchor.TherapistID, "error", err)
		return nil, err
	}

	if len(slots) != required {
		logger.Log.Infow("slot window mismatch",
			"therapistID", anchor.TherapistID,
			"anchor", anchor.AvailableAt,
			"required", required,
			"found", len(slots),
		)
		return nil, ErrNoSlotMatch
	}

	return slots, nil
}
