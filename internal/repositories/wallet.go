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

// WalletWriteRepository handles wallet write operations
type WalletWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletWriteRepository {
	return &WalletWriteRepository{db: db, txGetter: txGetter}
}

// Save performs an UPSERT: creates the user's wallet if it does not exist
// and returns the row either way.
func (r *WalletWriteRepository) Save(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error) {
	query := `
		INSERT INTO wallets (wallet_id, user_id, balance, currency, created_at, updated_at)
		VALUES ($1, $2, 0, $3, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET updated_at = NOW()
		RETURNING wallet_id, user_id, balance, currency, created_at, updated_at
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &wallet, query,
		uuid.New(), userID, currency)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, currency},
		"result", wallet.WalletID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

// ApplyDelta adjusts the wallet balance by delta (positive or negative) and
// returns the new balance. Balance changes go through the ledger only: the
// caller must have written the matching operation row in the same transaction.
func (r *WalletWriteRepository) ApplyDelta(ctx context.Context, walletID uuid.UUID, delta int64) (int64, error) {
	query := `
		UPDATE wallets
		SET balance = balance + $2, updated_at = NOW()
		WHERE wallet_id = $1
		RETURNING balance
	`

	var balance int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &balance, query, walletID, delta)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID, delta},
		"result", balance,
		"error", err,
	)

	return balance, err
}

// WalletReadRepository handles wallet read operations
type WalletReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewWalletReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *WalletReadRepository {
	return &WalletReadRepository{db: db, txGetter: txGetter}
}

// GetByUserID returns the user's wallet, or nil when none exists yet.
func (r *WalletReadRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, balance, currency, created_at, updated_at
		FROM wallets
		WHERE user_id = $1
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &wallet, query, userID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"error", err,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &wallet, nil
}

// GetForUpdate returns the wallet row locked FOR UPDATE so concurrent
// debits and credits against the same wallet serialize.
func (r *WalletReadRepository) GetForUpdate(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) {
	const query = `
		SELECT wallet_id, user_id, balance, currency, created_at, updated_at
		FROM wallets
		WHERE wallet_id = $1
		FOR UPDATE
	`

	var wallet models.WalletDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &wallet, query, walletID)

	logger.Log.Infow("query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{walletID},
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &wallet, nil
}
