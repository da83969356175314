package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/therapease/therapy-booking/internal/logger"
)

// TherapistClientWriteRepository records which users are clients of which
// therapists.
type TherapistClientWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewTherapistClientWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TherapistClientWriteRepository {
	return &TherapistClientWriteRepository{db: db, txGetter: txGetter}
}

// Save upserts the therapist-client pair. Re-booking with the same therapist
// is a no-op.
func (r *TherapistClientWriteRepository) Save(ctx context.Context, therapistID, userID uuid.UUID) error {
	query := `
		INSERT INTO therapist_clients (therapist_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (therapist_id, user_id) DO NOTHING
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, therapistID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{therapistID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
