package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// OperationsTokener defines only the methods needed by this handler.
type OperationsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// OperationsLister defines the interface that the service must implement.
type OperationsLister interface {
	ListOperations(ctx context.Context, userID uuid.UUID) ([]models.WalletOperationDB, error)
}

// WalletOperation represents one ledger entry in the history response
// swagger:model WalletOperation
type WalletOperation struct {
	// Operation identifier
	OperationID string `json:"operation_id"`

	// Amount in minor currency units
	// default: 150000
	Amount int64 `json:"amount"`

	// Currency code
	// default: UAH
	Currency string `json:"currency"`

	// ADD or SUBTRACT
	Direction string `json:"direction"`

	// Why the operation happened
	// default: PURCHASE
	Reason string `json:"reason"`

	// Order or consultation that caused the operation
	ReasonID string `json:"reason_id"`

	// When the operation was applied
	CreatedAt string `json:"created_at"`
}

// OperationsResponse represents the wallet history response
// swagger:model OperationsResponse
type OperationsResponse struct {
	Operations []WalletOperation `json:"operations"`
}

// OperationsErrorResponse represents an error response for the wallet history
// swagger:model OperationsErrorResponse
type OperationsErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewWalletOperationsHandler returns an HTTP handler for the wallet's
// ledger history.
// @Summary List wallet operations
// @Description Returns the authenticated user's ledger entries, oldest first.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.OperationsResponse "Ledger history"
// @Failure 401 {object} handlers.OperationsErrorResponse "Unauthorized"
// @Router /wallet/operations [get]
// @Security BearerAuth
func NewWalletOperationsHandler(svc OperationsLister, tokener OperationsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OperationsErrorResponse{Error: "Unauthorized"})
			return
		}

		userID, err := tokener.GetUserID(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get user id from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(OperationsErrorResponse{Error: "Unauthorized"})
			return
		}

		ops, err := svc.ListOperations(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to list wallet operations", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OperationsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := OperationsResponse{Operations: make([]WalletOperation, 0, len(ops))}
		for _, op := range ops {
			resp.Operations = append(resp.Operations, WalletOperation{
				OperationID: op.OperationID.String(),
				Amount:      op.Amount,
				Currency:    op.Currency,
				Direction:   string(op.Direction),
				Reason:      string(op.Reason),
				ReasonID:    op.ReasonID.String(),
				CreatedAt:   op.CreatedAt.UTC().Format(time.RFC3339),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
