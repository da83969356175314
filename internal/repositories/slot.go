package repositories

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// SlotReadRepository handles slot read operations
type SlotReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSlotReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SlotReadRepository {
	return &SlotReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns a slot by id, or nil when it does not exist.
func (r *SlotReadRepository) GetByID(ctx context.Context, slotID uuid.UUID) (*models.SlotDB, error) {
	const query = `
		SELECT slot_id, therapist_id, available_at, state, created_at, updated_at
		FROM slots
		WHERE slot_id = $1
	`

	var slot models.SlotDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &slot, query, slotID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slotID},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &slot, nil
}

// ListAvailableInWindow returns the therapist's AVAILABLE slots whose
// available_at falls within [from, to] inclusive, ordered by start time.
// Rows are locked FOR UPDATE so a concurrent booking against the same
// therapist serializes on the candidate slots.
func (r *SlotReadRepository) ListAvailableInWindow(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]models.SlotDB, error) {
	const query = `
		SELECT slot_id, therapist_id, available_at, state, created_at, updated_at
		FROM slots
		WHERE therapist_id = $1
		  AND state = $2
		  AND available_at >= $3
		  AND available_at <= $4
		ORDER BY available_at
		FOR UPDATE
	`

	var slots []models.SlotDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &slots, query,
		therapistID, models.SlotAvailable, from, to)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{therapistID, from, to},
		"result", len(slots),
		"error", err,
	)

	return slots, err
}

// ListByTherapist returns the therapist's slots in [from, to] regardless of state.
func (r *SlotReadRepository) ListByTherapist(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]models.SlotDB, error) {
	const query = `
		SELECT slot_id, therapist_id, available_at, state, created_at, updated_at
		FROM slots
		WHERE therapist_id = $1
		  AND available_at >= $2
		  AND available_at <= $3
		ORDER BY available_at
	`

	var slots []models.SlotDB
	err := r.db.SelectContext(ctx, &slots, query, therapistID, from, to)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{therapistID, from, to},
		"result", len(slots),
		"error", err,
	)

	return slots, err
}

// SlotWriteRepository handles slot write operations
type SlotWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewSlotWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *SlotWriteRepository {
	return &SlotWriteRepository{db: db, txGetter: txGetter}
}

// Save creates an AVAILABLE slot for the therapist. The (therapist_id,
// available_at) pair is unique; re-saving an existing instant is a no-op.
func (r *SlotWriteRepository) Save(ctx context.Context, therapistID uuid.UUID, availableAt time.Time) (uuid.UUID, error) {
	query := `
		INSERT INTO slots (slot_id, therapist_id, available_at, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		ON CONFLICT (therapist_id, available_at) DO UPDATE SET updated_at = NOW()
		RETURNING slot_id
	`

	slotID := uuid.New()
	var saved uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &saved, query,
		slotID, therapistID, availableAt.UTC(), models.SlotAvailable)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{therapistID, availableAt},
		"result", saved,
		"error", err,
	)

	return saved, err
}

// UpdateState moves every given slot into the state.
func (r *SlotWriteRepository) UpdateState(ctx context.Context, slotIDs []uuid.UUID, state models.SlotState) error {
	query := `
		UPDATE slots
		SET state = $2, updated_at = NOW()
		WHERE slot_id = ANY($1::uuid[])
	`

	ids := make([]string, 0, len(slotIDs))
	for _, id := range slotIDs {
		ids = append(ids, id.String())
	}

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, ids, state)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{slotIDs, state},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
