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

// ConsultationWriteRepository handles consultation write operations
type ConsultationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewConsultationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ConsultationWriteRepository {
	return &ConsultationWriteRepository{db: db, txGetter: txGetter}
}

// Save creates a consultation in state CREATED and returns its id.
func (r *ConsultationWriteRepository) Save(ctx context.Context, userID, therapistID, priceID uuid.UUID, consultationType models.ConsultationType) (uuid.UUID, error) {
	query := `
		INSERT INTO consultations (consultation_id, user_id, therapist_id, price_id, type, state, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING consultation_id
	`

	var consultationID uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &consultationID, query,
		uuid.New(), userID, therapistID, priceID, consultationType, models.ConsultationCreated)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, therapistID, priceID, consultationType},
		"result", consultationID,
		"error", err,
	)

	return consultationID, err
}

// SaveSlots writes the consultation-to-slot join rows.
func (r *ConsultationWriteRepository) SaveSlots(ctx context.Context, consultationID uuid.UUID, slotIDs []uuid.UUID) error {
	query := `
		INSERT INTO consultation_slots (consultation_id, slot_id, created_at)
		VALUES ($1, $2, NOW())
	`

	exec := executor(ctx, r.db, r.txGetter)
	for _, slotID := range slotIDs {
		if _, err := exec.ExecContext(ctx, query, consultationID, slotID); err != nil {
			logger.Log.Infow("query",
				"query", strings.Join(strings.Fields(query), " "),
				"args", []any{consultationID, slotID},
				"error", err,
			)
			return err
		}
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{consultationID, slotIDs},
		"error", nil,
	)

	return nil
}

// UpdateState moves a consultation into the state.
func (r *ConsultationWriteRepository) UpdateState(ctx context.Context, consultationID uuid.UUID, state models.ConsultationState) error {
	query := `
		UPDATE consultations
		SET state = $2, updated_at = NOW()
		WHERE consultation_id = $1
	`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, consultationID, state)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{consultationID, state},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// ConsultationReadRepository handles consultation read operations
type ConsultationReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewConsultationReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ConsultationReadRepository {
	return &ConsultationReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns a consultation by id, or nil when it does not exist.
func (r *ConsultationReadRepository) GetByID(ctx context.Context, consultationID uuid.UUID) (*models.ConsultationDB, error) {
	const query = `
		SELECT consultation_id, user_id, therapist_id, price_id, type, state, created_at, updated_at
		FROM consultations
		WHERE consultation_id = $1
	`

	var consultation models.ConsultationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &consultation, query, consultationID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{consultationID},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &consultation, nil
}

// ListSlots returns the consultation's linked slots ordered by start time.
func (r *ConsultationReadRepository) ListSlots(ctx context.Context, consultationID uuid.UUID) ([]models.SlotDB, error) {
	const query = `
		SELECT s.slot_id, s.therapist_id, s.available_at, s.state, s.created_at, s.updated_at
		FROM slots s
		JOIN consultation_slots cs ON cs.slot_id = s.slot_id
		WHERE cs.consultation_id = $1
		ORDER BY s.available_at
	`

	var slots []models.SlotDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &slots, query, consultationID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{consultationID},
		"result", len(slots),
		"error", err,
	)

	return slots, err
}
