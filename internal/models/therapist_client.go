package models

import (
	"time"

	"github.com/google/uuid"
)

// TherapistClientDB links a user to a therapist they have booked with.
// The pair is unique; booking upserts it idempotently.
type TherapistClientDB struct {
	TherapistID uuid.UUID `json:"therapist_id" db:"therapist_id"` // Therapist
	UserID      uuid.UUID `json:"user_id" db:"user_id"`           // Client
	CreatedAt   time.Time `json:"created_at" db:"created_at"`     // Creation timestamp
}
