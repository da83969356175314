package models

import (
	"time"

	"github.com/google/uuid"
)

// ConsultationType distinguishes the two fixed consultation lengths:
// an individual session spans 2 slots, a couple session spans 3.
type ConsultationType string

// Consultation types
const (
	TypeIndividual ConsultationType = "INDIVIDUAL"
	TypeCouple     ConsultationType = "COUPLE"
)

// SlotsFor returns how many contiguous slots a consultation type occupies.
func (t ConsultationType) SlotsFor() int {
	if t == TypeCouple {
		return 3
	}
	return 2
}

// ConsultationState is the lifecycle state of a consultation.
type ConsultationState string

// Consultation states
const (
	ConsultationCreated                       ConsultationState = "CREATED"
	ConsultationCompleted                     ConsultationState = "COMPLETED"
	ConsultationCancelledByUserInTime         ConsultationState = "CANCELLED_BY_USER_IN_TIME"
	ConsultationCancelledByUserNotInTime      ConsultationState = "CANCELLED_BY_USER_NOT_IN_TIME"
	ConsultationCancelledByTherapistInTime    ConsultationState = "CANCELLED_BY_THERAPIST_IN_TIME"
	ConsultationCancelledByTherapistNotInTime ConsultationState = "CANCELLED_BY_THERAPIST_NOT_IN_TIME"
)

// ConsultationDB represents a booked therapy session in the database.
type ConsultationDB struct {
	ConsultationID uuid.UUID         `json:"consultation_id" db:"consultation_id"` // Primary key
	UserID         uuid.UUID         `json:"user_id" db:"user_id"`                 // Client
	TherapistID    uuid.UUID         `json:"therapist_id" db:"therapist_id"`       // Therapist
	PriceID        uuid.UUID         `json:"price_id" db:"price_id"`               // Price snapshot the booking was made at
	Type           ConsultationType  `json:"type" db:"type"`                       // INDIVIDUAL or COUPLE
	State          ConsultationState `json:"state" db:"state"`                     // Current state
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`           // Creation timestamp
	UpdatedAt      time.Time         `json:"updated_at" db:"updated_at"`           // Last update timestamp
}

// ConsultationSlotDB binds one consultation to one of its slots.
// Rows are written atomically with the consultation and never change after.
type ConsultationSlotDB struct {
	ConsultationID uuid.UUID `json:"consultation_id" db:"consultation_id"` // Consultation reference
	SlotID         uuid.UUID `json:"slot_id" db:"slot_id"`                 // Slot reference
	CreatedAt      time.Time `json:"created_at" db:"created_at"`           // Creation timestamp
}
