package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
	"github.com/therapease/therapy-booking/internal/services"
)

// BookTokener defines only the methods needed by this handler.
type BookTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// Booker defines the interface that the booking service must implement.
type Booker interface {
	Book(ctx context.Context, userID uuid.UUID, price models.PriceDB, anchorSlotID, walletID uuid.UUID) (*models.ConsultationDB, error)
}

// BookPriceReader resolves the purchased price snapshot.
type BookPriceReader interface {
	GetByID(ctx context.Context, priceID uuid.UUID) (*models.PriceDB, error)
}

// BookWalletReader locates the user's wallet.
type BookWalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
}

// BookRequest represents the JSON body for booking a consultation from the
// wallet balance
// swagger:model BookRequest
type BookRequest struct {
	// Price snapshot to book at
	// required: true
	PriceID string `json:"price_id"`

	// Anchor slot for the consultation
	// required: true
	SlotID string `json:"slot_id"`
}

// BookResponse represents a successful booking response
// swagger:model BookResponse
type BookResponse struct {
	// Created consultation id
	ConsultationID string `json:"consultation_id"`

	// Consultation state
	// default: CREATED
	State string `json:"state"`
}

// BookErrorResponse represents an error response for booking
// swagger:model BookErrorResponse
type BookErrorResponse struct {
	// Error message
	// default: No matching slots
	Error string `json:"error"`
}

// NewBookHandler returns an HTTP handler that books a consultation funded
// by the user's wallet balance.
// @Summary Book a consultation
// @Description Books the consultation against the anchor slot, debiting the wallet. Fails with 409 when the slot set is unavailable and 402 when the balance is insufficient.
// @Tags consultations
// @Accept json
// @Produce json
// @Param request body handlers.BookRequest true "Book Request"
// @Success 201 {object} handlers.BookResponse "Consultation created"
// @Failure 401 {object} handlers.BookErrorResponse "Unauthorized"
// @Failure 402 {object} handlers.BookErrorResponse "Insufficient funds"
// @Failure 409 {object} handlers.BookErrorResponse "No matching slots"
// @Router /consultations/book [post]
// @Security BearerAuth
func NewBookHandler(svc Booker, prices BookPriceReader, wallets BookWalletReader, tokener BookTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Unauthorized"})
			return
		}
		userID, err := tokener.GetUserID(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Unauthorized"})
			return
		}

		var req BookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Invalid request body"})
			return
		}

		priceID, err := uuid.Parse(req.PriceID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Invalid price id"})
			return
		}
		slotID, err := uuid.Parse(req.SlotID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Invalid slot id"})
			return
		}

		price, err := prices.GetByID(ctx, priceID)
		if err != nil {
			logger.Log.Errorw("failed to get price", "priceID", priceID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Internal server error"})
			return
		}
		if price == nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Price is not available"})
			return
		}

		wallet, err := wallets.GetByUserID(ctx, userID)
		if err != nil {
			logger.Log.Errorw("failed to get wallet", "userID", userID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Internal server error"})
			return
		}
		if wallet == nil {
			w.WriteHeader(http.StatusPaymentRequired)
			json.NewEncoder(w).Encode(BookErrorResponse{Error: "Insufficient funds"})
			return
		}

		consultation, err := svc.Book(ctx, userID, *price, slotID, wallet.WalletID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrNoSlotMatch):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "No matching slots"})
			case errors.Is(err, services.ErrInsufficientFunds):
				w.WriteHeader(http.StatusPaymentRequired)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "Insufficient funds"})
			default:
				logger.Log.Errorw("failed to book consultation", "userID", userID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(BookErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(BookResponse{
			ConsultationID: consultation.ConsultationID.String(),
			State:          string(consultation.State),
		})
	}
}
