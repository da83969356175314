package models

import (
	"time"

	"github.com/google/uuid"
)

// PromoCodeDB is a single-use discount code applied at checkout.
// Used is flipped exactly once, when the paying order is approved.
type PromoCodeDB struct {
	PromoCodeID     uuid.UUID `json:"promo_code_id" db:"promo_code_id"`       // Primary key
	Code            string    `json:"code" db:"code"`                         // Unique code entered by the user
	DiscountPercent int       `json:"discount_percent" db:"discount_percent"` // Discount, 0..100
	Used            bool      `json:"used" db:"used"`                         // Whether the code has been spent
	CreatedAt       time.Time `json:"created_at" db:"created_at"`             // Creation timestamp
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`             // Last update timestamp
}
