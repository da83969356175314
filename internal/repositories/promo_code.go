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

// PromoCodeReadRepository handles promo code read operations
type PromoCodeReadRepository struct {
	db *sqlx.DB
}

func NewPromoCodeReadRepository(db *sqlx.DB) *PromoCodeReadRepository {
	return &PromoCodeReadRepository{db: db}
}

// GetByCode returns the promo code row, or nil when the code is unknown.
func (r *PromoCodeReadRepository) GetByCode(ctx context.Context, code string) (*models.PromoCodeDB, error) {
	const query = `
		SELECT promo_code_id, code, discount_percent, used, created_at, updated_at
		FROM promo_codes
		WHERE code = $1
	`

	var promo models.PromoCodeDB
	err := r.db.GetContext(ctx, &promo, query, code)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{code},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &promo, nil
}

// PromoCodeWriteRepository handles promo code write operations
type PromoCodeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPromoCodeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PromoCodeWriteRepository {
	return &PromoCodeWriteRepository{db: db, txGetter: txGetter}
}

// MarkUsed flips the code to used. The WHERE NOT used guard makes redelivered
// approvals a no-op.
func (r *PromoCodeWriteRepository) MarkUsed(ctx context.Context, promoCodeID uuid.UUID) error {
	query := `
		UPDATE promo_codes
		SET used = TRUE, updated_at = NOW()
		WHERE promo_code_id = $1 AND NOT used
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, promoCodeID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{promoCodeID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
