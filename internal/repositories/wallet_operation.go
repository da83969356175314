package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// WalletOperationWriteRepository appends ledger entries. There is no update
// or delete: the operations table is the wallet's append-only audit trail.
type WalletOperationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletOperationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletOperationWriteRepository {
	return &WalletOperationWriteRepository{db: db, txGetter: txGetter}
}

// Save appends one operation row and returns its id.
func (r *WalletOperationWriteRepository) Save(ctx context.Context, op models.WalletOperationDB) (uuid.UUID, error) {
	query := `
		INSERT INTO wallet_operations (operation_id, wallet_id, amount, currency, direction, reason, reason_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		RETURNING operation_id
	`

	if op.OperationID == uuid.Nil {
		op.OperationID = uuid.New()
	}

	var operationID uuid.UUID
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &operationID, query,
		op.OperationID, op.WalletID, op.Amount, op.Currency, op.Direction, op.Reason, op.ReasonID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{op.WalletID, op.Amount, op.Direction, op.Reason, op.ReasonID},
		"result", operationID,
		"error", err,
	)

	return operationID, err
}

// WalletOperationReadRepository reads ledger entries.
type WalletOperationReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletOperationReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletOperationReadRepository {
	return &WalletOperationReadRepository{db: db, txGetter: txGetter}
}

// ListByWallet returns the wallet's operations, oldest first.
func (r *WalletOperationReadRepository) ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.WalletOperationDB, error) {
	const query = `
		SELECT operation_id, wallet_id, amount, currency, direction, reason, reason_id, created_at
		FROM wallet_operations
		WHERE wallet_id = $1
		ORDER BY created_at
	`

	var ops []models.WalletOperationDB
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &ops, query, walletID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"result", len(ops),
		"error", err,
	)

	return ops, err
}

// CountByReason returns how many operations exist for a reason and reason id.
// The order state machine uses it to keep purchase credits idempotent.
func (r *WalletOperationReadRepository) CountByReason(ctx context.Context, reason models.OperationReason, reasonID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM wallet_operations
		WHERE reason = $1 AND reason_id = $2
	`

	var count int
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &count, query, reason, reasonID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{reason, reasonID},
		"result", count,
		"error", err,
	)

	return count, err
}
