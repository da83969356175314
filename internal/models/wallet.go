package models

import (
	"time"

	"github.com/google/uuid"
)

// Default platform currency (minor units, kopiykas).
const UAH = "UAH"

// WalletDB represents a wallet row in the database.
// Balance is a materialized sum of the wallet's operations and is mutated
// only by applying a WalletOperationDB, never set directly.
type WalletDB struct {
	WalletID  uuid.UUID `json:"wallet_id" db:"wallet_id"`   // Unique wallet identifier
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the wallet's owner
	Balance   int64     `json:"balance" db:"balance"`       // Current balance in minor currency units
	Currency  string    `json:"currency" db:"currency"`     // Currency code (e.g., UAH)
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Timestamp when the wallet was created
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Timestamp of the last wallet update
}
