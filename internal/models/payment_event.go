package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentEventDB stores one inbound provider webhook payload verbatim.
// Rows are written before any validation so the audit trail survives
// malformed and unauthenticated deliveries, and are never updated.
type PaymentEventDB struct {
	EventID        uuid.UUID `json:"event_id" db:"event_id"`               // Primary key
	OrderReference string    `json:"order_reference" db:"order_reference"` // orderReference field, may be empty
	Payload        []byte    `json:"payload" db:"payload"`                 // Raw request body
	ReceivedAt     time.Time `json:"received_at" db:"received_at"`         // When the delivery arrived
}
