package models

import (
	"time"

	"github.com/google/uuid"
)

// OperationDirection tells whether an operation adds to or subtracts from
// a wallet balance.
type OperationDirection string

// Operation directions
const (
	DirectionAdd      OperationDirection = "ADD"
	DirectionSubtract OperationDirection = "SUBTRACT"
)

// OperationReason classifies why a wallet operation was applied.
type OperationReason string

// Operation reasons
const (
	ReasonPurchase                  OperationReason = "PURCHASE"
	ReasonCreatedConsultation       OperationReason = "CREATED_CONSULTATION"
	ReasonCancelledConsultation     OperationReason = "CANCELLED_CONSULTATION"
	ReasonCancelledNotInTimePenalty OperationReason = "CANCELLED_NOT_IN_TIME_PENALTY"
)

// WalletOperationDB is an immutable ledger entry. Rows are append-only:
// corrections are made by applying a compensating operation, never by
// updating or deleting an existing row.
type WalletOperationDB struct {
	OperationID uuid.UUID          `json:"operation_id" db:"operation_id"` // Primary key
	WalletID    uuid.UUID          `json:"wallet_id" db:"wallet_id"`       // Wallet the operation applies to
	Amount      int64              `json:"amount" db:"amount"`             // Positive amount in minor currency units
	Currency    string             `json:"currency" db:"currency"`         // Currency code
	Direction   OperationDirection `json:"direction" db:"direction"`       // ADD or SUBTRACT
	Reason      OperationReason    `json:"reason" db:"reason"`             // Why the operation happened
	ReasonID    uuid.UUID          `json:"reason_id" db:"reason_id"`       // Id of the order/consultation that caused it
	CreatedAt   time.Time          `json:"created_at" db:"created_at"`     // Creation timestamp
}
