package models

import (
	"time"

	"github.com/google/uuid"
)

// PriceState tells whether a price is currently offered.
type PriceState string

// Price states
const (
	PriceCurrent  PriceState = "CURRENT"
	PricePast     PriceState = "PAST"
	PriceUnlisted PriceState = "UNLISTED"
)

// PriceDB is an immutable price snapshot. Consultations and orders reference
// a price by id so historical bookings are unaffected when a therapist
// changes prices: the old row moves to PAST and a new CURRENT row is created.
type PriceDB struct {
	PriceID     uuid.UUID        `json:"price_id" db:"price_id"`         // Primary key
	TherapistID uuid.UUID        `json:"therapist_id" db:"therapist_id"` // Owning therapist
	Amount      int64            `json:"amount" db:"amount"`             // Amount in minor currency units
	Currency    string           `json:"currency" db:"currency"`         // Currency code
	Type        ConsultationType `json:"type" db:"type"`                 // Consultation type the price covers
	State       PriceState       `json:"state" db:"state"`               // Listing state
	CreatedAt   time.Time        `json:"created_at" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time        `json:"updated_at" db:"updated_at"`     // Last update timestamp
}
