package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
)

// BalanceTokener defines only the methods needed by this handler.
type BalanceTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (int64, string, error)
}

// BalanceResponse represents the wallet balance response
// swagger:model BalanceResponse
type BalanceResponse struct {
	// Balance in minor currency units
	// default: 150000
	Balance int64 `json:"balance"`

	// Currency code
	// default: UAH
	Currency string `json:"currency"`
}

// BalanceErrorResponse represents an error response for balance
// swagger:model BalanceErrorResponse
type BalanceErrorResponse struct {
	// Error message
	// default: Unauthorized
	Error string `json:"error"`
}

// NewBalanceHandler returns an HTTP handler for reading the wallet balance.
// @Summary Get wallet balance
// @Description Returns the authenticated user's wallet balance in minor currency units.
// @Tags wallet
// @Produce json
// @Success 200 {object} handlers.BalanceResponse "Current balance"
// @Failure 401 {object} handlers.BalanceErrorResponse "Unauthorized"
// @Router /balance [get]
// @Security BearerAuth
func NewBalanceHandler(svc BalanceReader, tokener BalanceTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			logger.Log.Errorw("failed to get token from request", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		userID, err := tokener.GetUserID(ctx, tokenStr)
		if err != nil {
			logger.Log.Errorw("failed to get user id from token", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Unauthorized"})
			return
		}

		balance, currency, err := svc.GetBalance(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get balance", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BalanceErrorResponse{Error: "Internal server error"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(BalanceResponse{Balance: balance, Currency: currency})
	}
}
