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

// PriceReadRepository handles price read operations. Prices are immutable
// snapshots, so there is no write repository in the booking core.
type PriceReadRepository struct {
	db *sqlx.DB
}

func NewPriceReadRepository(db *sqlx.DB) *PriceReadRepository {
	return &PriceReadRepository{db: db}
}

// GetByID returns a price by id, or nil when it does not exist.
func (r *PriceReadRepository) GetByID(ctx context.Context, priceID uuid.UUID) (*models.PriceDB, error) {
	const query = `
		SELECT price_id, therapist_id, amount, currency, type, state, created_at, updated_at
		FROM prices
		WHERE price_id = $1
	`

	var price models.PriceDB
	err := r.db.GetContext(ctx, &price, query, priceID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{priceID},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &price, nil
}

// ListCurrentByTherapist returns the therapist's CURRENT prices.
func (r *PriceReadRepository) ListCurrentByTherapist(ctx context.Context, therapistID uuid.UUID) ([]models.PriceDB, error) {
	const query = `
		SELECT price_id, therapist_id, amount, currency, type, state, created_at, updated_at
		FROM prices
		WHERE therapist_id = $1 AND state = $2
		ORDER BY type
	`

	var prices []models.PriceDB
	err := r.db.SelectContext(ctx, &prices, query, therapistID, models.PriceCurrent)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{therapistID},
		"result", len(prices),
		"error", err,
	)

	return prices, err
}
