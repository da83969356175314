package models

import (
	"time"

	"github.com/google/uuid"
)

// OrderState is the payment state of an order. Transitions are one-way:
// CREATED -> PENDING -> {APPROVED, FAILED}.
type OrderState string

// Order states
const (
	OrderCreated  OrderState = "CREATED"
	OrderPending  OrderState = "PENDING"
	OrderApproved OrderState = "APPROVED"
	OrderFailed   OrderState = "FAILED"
)

// PaymentMeta carries the card and bank fields the provider reports with a
// webhook delivery. It is copied onto the order on the first transition to
// PENDING or APPROVED.
type PaymentMeta struct {
	CardPan           string
	CardType          string
	PaymentSystem     string
	IssuerBankName    string
	IssuerBankCountry string
	AuthCode          string
	Phone             string
	ClientName        string
	Fee               int64
}

// OrderDB records one external payment attempt, tied 1:1 to a checkout.
// CheckoutSlug doubles as the idempotency key the payment provider echoes
// back as orderReference in webhook deliveries.
type OrderDB struct {
	OrderID      uuid.UUID  `json:"order_id" db:"order_id"`           // Primary key
	CheckoutSlug string     `json:"checkout_slug" db:"checkout_slug"` // Unique external reference
	State        OrderState `json:"state" db:"state"`                 // Current state
	Amount       int64      `json:"amount" db:"amount"`               // Amount to charge, minor units
	Currency     string     `json:"currency" db:"currency"`           // Currency code
	PriceID      uuid.UUID  `json:"price_id" db:"price_id"`           // Price snapshot purchased
	SlotID       uuid.UUID  `json:"slot_id" db:"slot_id"`             // Anchor slot chosen at checkout
	PromoCodeID  *uuid.UUID `json:"promo_code_id" db:"promo_code_id"` // Optional promo code applied
	Email        *string    `json:"email" db:"email"`                 // Buyer email, when captured
	Phone        *string    `json:"phone" db:"phone"`                 // Buyer phone, from the provider
	ClientName   *string    `json:"client_name" db:"client_name"`     // Buyer name, from the provider

	// Payment metadata copied from the provider on the first PENDING or
	// APPROVED transition.
	CardPan           *string `json:"card_pan" db:"card_pan"`
	CardType          *string `json:"card_type" db:"card_type"`
	PaymentSystem     *string `json:"payment_system" db:"payment_system"`
	IssuerBankName    *string `json:"issuer_bank_name" db:"issuer_bank_name"`
	IssuerBankCountry *string `json:"issuer_bank_country" db:"issuer_bank_country"`
	AuthCode          *string `json:"auth_code" db:"auth_code"`
	Fee               int64   `json:"fee" db:"fee"`

	CreatedAt  time.Time  `json:"created_at" db:"created_at"`   // Creation timestamp
	PendingAt  *time.Time `json:"pending_at" db:"pending_at"`   // First PENDING transition
	ApprovedAt *time.Time `json:"approved_at" db:"approved_at"` // First APPROVED transition
	FailedAt   *time.Time `json:"failed_at" db:"failed_at"`     // First FAILED transition
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`   // Last update timestamp
}
