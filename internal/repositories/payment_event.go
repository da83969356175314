package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/therapease/therapy-booking/internal/logger"
)

// PaymentEventWriteRepository appends raw webhook payloads. Writes go
// straight to the connection, never to the caller's transaction: the audit
// row must survive even when processing later rolls back.
type PaymentEventWriteRepository struct {
	db *sqlx.DB
}

func NewPaymentEventWriteRepository(db *sqlx.DB) *PaymentEventWriteRepository {
	return &PaymentEventWriteRepository{db: db}
}

// Save stores one payload verbatim and returns the event id.
func (r *PaymentEventWriteRepository) Save(ctx context.Context, orderReference string, payload []byte) (uuid.UUID, error) {
	query := `
		INSERT INTO payment_events (event_id, order_reference, payload, received_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING event_id
	`

	var eventID uuid.UUID
	err := r.db.GetContext(ctx, &eventID, query, uuid.New(), orderReference, payload)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{orderReference, len(payload)},
		"result", eventID,
		"error", err,
	)

	return eventID, err
}
