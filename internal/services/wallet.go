package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

var (
	// ErrInsufficientFunds is returned when a wallet cannot cover a debit.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidOperationAmount is returned for a non-positive operation amount.
	ErrInvalidOperationAmount = errors.New("operation amount must be positive")
)

// WalletOperationWriter appends ledger entries.
type WalletOperationWriter interface {
	Save(ctx context.Context, op models.WalletOperationDB) (uuid.UUID, error) // Appends one operation row
}

// WalletBalanceWriter mutates wallet rows.
type WalletBalanceWriter interface {
	Save(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error) // Upserts the user's wallet
	ApplyDelta(ctx context.Context, walletID uuid.UUID, delta int64) (int64, error)        // Adjusts the balance, returns the new one
}

// WalletReader reads wallet rows.
type WalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)    // Returns the user's wallet or nil
	GetForUpdate(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error) // Returns the wallet row locked
}

// WalletOperationReader lists ledger entries.
type WalletOperationReader interface {
	ListByWallet(ctx context.Context, walletID uuid.UUID) ([]models.WalletOperationDB, error)
}

// WalletService is the wallet ledger. ApplyOperation is the sole balance
// mutator: the operation row is persisted first, then the wallet balance is
// updated, both inside the caller's transaction. The service itself never
// opens transactions.
type WalletService struct {
	opWriter     WalletOperationWriter
	opReader     WalletOperationReader
	walletWriter WalletBalanceWriter
	walletReader WalletReader
}

// NewWalletService creates a new WalletService.
func NewWalletService(opWriter WalletOperationWriter, opReader WalletOperationReader, walletWriter WalletBalanceWriter, walletReader WalletReader) *WalletService {
	return &WalletService{
		opWriter:     opWriter,
		opReader:     opReader,
		walletWriter: walletWriter,
		walletReader: walletReader,
	}
}

// ApplyOperation appends the operation and adjusts the balance, returning
// the balance after the operation. No negative-balance check happens here;
// callers verify sufficient balance before debiting.
func (s *WalletService) ApplyOperation(ctx context.Context, op models.WalletOperationDB) (int64, error) {
	if op.Amount <= 0 {
		logger.Log.Errorw("invalid operation amount", "walletID", op.WalletID, "amount", op.Amount)
		return 0, ErrInvalidOperationAmount
	}

	if _, err := s.opWriter.Save(ctx, op); err != nil {
		logger.Log.Errorw("failed to save wallet operation", "walletID", op.WalletID, "reason", op.Reason, "error", err)
		return 0, err
	}

	delta := op.Amount
	if op.Direction == models.DirectionSubtract {
		delta = -delta
	}

	balance, err := s.walletWriter.ApplyDelta(ctx, op.WalletID, delta)
	if err != nil {
		logger.Log.Errorw("failed to apply balance delta", "walletID", op.WalletID, "delta", delta, "error", err)
		return 0, err
	}

	return balance, nil
}

// GetOrCreate returns the user's wallet, lazily provisioning one with the
// given currency on first use.
func (s *WalletService) GetOrCreate(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error) {
	wallet, err := s.walletReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	if wallet != nil {
		return wallet, nil
	}

	wallet, err = s.walletWriter.Save(ctx, userID, currency)
	if err != nil {
		logger.Log.Errorw("failed to create wallet", "userID", userID, "currency", currency, "error", err)
		return nil, err
	}
	return wallet, nil
}

// GetBalance returns the user's current balance and currency. A user with
// no wallet yet has a zero balance in the platform currency.
func (s *WalletService) GetBalance(ctx context.Context, userID uuid.UUID) (int64, string, error) {
	wallet, err := s.walletReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user balance", "userID", userID, "error", err)
		return 0, "", err
	}
	if wallet == nil {
		return 0, models.UAH, nil
	}
	return wallet.Balance, wallet.Currency, nil
}

// ListOperations returns the user's ledger history, oldest first. A user
// with no wallet yet has an empty history.
func (s *WalletService) ListOperations(ctx context.Context, userID uuid.UUID) ([]models.WalletOperationDB, error) {
	wallet, err := s.walletReader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
		return nil, err
	}
	if wallet == nil {
		return []models.WalletOperationDB{}, nil
	}

	ops, err := s.opReader.ListByWallet(ctx, wallet.WalletID)
	if err != nil {
		logger.Log.Errorw("failed to list wallet operations", "walletID", wallet.WalletID, "error", err)
		return nil, err
	}
	return ops, nil
}
