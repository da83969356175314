package models

import (
	"time"

	"github.com/google/uuid"
)

// SlotState is the lifecycle state of a single availability slot.
type SlotState string

// Slot states
const (
	SlotAvailable   SlotState = "AVAILABLE"
	SlotBooked      SlotState = "BOOKED"
	SlotUnavailable SlotState = "UNAVAILABLE"
	SlotDone        SlotState = "DONE"
	SlotFailed      SlotState = "FAILED"
	SlotExpired     SlotState = "EXPIRED"
)

// SlotDuration is the fixed length of a single availability slot.
const SlotDuration = 30 * time.Minute

// SlotDB represents a 30-minute therapist availability slot in the database.
// AvailableAt is stored in UTC and is always aligned to a half-hour boundary.
type SlotDB struct {
	SlotID      uuid.UUID `json:"slot_id" db:"slot_id"`           // Primary key
	TherapistID uuid.UUID `json:"therapist_id" db:"therapist_id"` // Owning therapist
	AvailableAt time.Time `json:"available_at" db:"available_at"` // Slot start instant
	State       SlotState `json:"state" db:"state"`               // Current slot state
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
