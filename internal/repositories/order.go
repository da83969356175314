package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// OrderWriteRepository handles order write operations
type OrderWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOrderWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OrderWriteRepository {
	return &OrderWriteRepository{db: db, txGetter: txGetter}
}

// Save creates an order in state CREATED and returns its id.
func (r *OrderWriteRepository) Save(ctx context.Context, order models.OrderDB) (uuid.UUID, error) {
	query := `
		INSERT INTO orders (order_id, checkout_slug, state, amount, currency, price_id, slot_id, promo_code_id, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING order_id
	`

	if order.OrderID == uuid.Nil {
		order.OrderID = uuid.New()
	}

	var orderID uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &orderID, query,
		order.OrderID, order.CheckoutSlug, models.OrderCreated, order.Amount, order.Currency,
		order.PriceID, order.SlotID, order.PromoCodeID, order.Email)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{order.CheckoutSlug, order.Amount, order.Currency, order.PriceID, order.SlotID},
		"result", orderID,
		"error", err,
	)

	return orderID, err
}

// SetState transitions the order and copies the provider payment metadata.
// The matching timestamp column (pending_at/approved_at/failed_at) is set
// only on the first transition into that state.
func (r *OrderWriteRepository) SetState(ctx context.Context, orderID uuid.UUID, state models.OrderState, meta models.PaymentMeta) error {
	query := `
		UPDATE orders
		SET state = $2,
		    card_pan = $3,
		    card_type = $4,
		    payment_system = $5,
		    issuer_bank_name = $6,
		    issuer_bank_country = $7,
		    auth_code = $8,
		    phone = $9,
		    client_name = $10,
		    fee = $11,
		    pending_at = CASE WHEN $2 = 'PENDING' AND pending_at IS NULL THEN NOW() ELSE pending_at END,
		    approved_at = CASE WHEN $2 = 'APPROVED' AND approved_at IS NULL THEN NOW() ELSE approved_at END,
		    failed_at = CASE WHEN $2 = 'FAILED' AND failed_at IS NULL THEN NOW() ELSE failed_at END,
		    updated_at = NOW()
		WHERE order_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query,
		orderID, state, meta.CardPan, meta.CardType, meta.PaymentSystem,
		meta.IssuerBankName, meta.IssuerBankCountry, meta.AuthCode,
		meta.Phone, meta.ClientName, meta.Fee)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderID, state},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// OrderReadRepository handles order read operations
type OrderReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewOrderReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *OrderReadRepository {
	return &OrderReadRepository{db: db, txGetter: txGetter}
}

const orderColumns = `
	order_id, checkout_slug, state, amount, currency, price_id, slot_id, promo_code_id,
	email, phone, client_name, card_pan, card_type, payment_system,
	issuer_bank_name, issuer_bank_country, auth_code, fee,
	created_at, pending_at, approved_at, failed_at, updated_at
`

// GetBySlug returns the order with the checkout slug, or nil when none exists.
func (r *OrderReadRepository) GetBySlug(ctx context.Context, slug string) (*models.OrderDB, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE checkout_slug = $1`

	var order models.OrderDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &order, query, slug)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetBySlugForUpdate locks the order row so near-simultaneous deliveries of
// the same webhook event serialize on it.
func (r *OrderReadRepository) GetBySlugForUpdate(ctx context.Context, slug string) (*models.OrderDB, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE checkout_slug = $1 FOR UPDATE`

	var order models.OrderDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &order, query, slug)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slug},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}
