package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// TherapistPriceLister defines the interface the prices facade must implement.
type TherapistPriceLister interface {
	ListCurrentByTherapist(ctx context.Context, therapistID uuid.UUID) ([]models.PriceDB, error)
}

// PriceResponse represents a single listed price
// swagger:model PriceResponse
type PriceResponse struct {
	// Price id
	PriceID string `json:"price_id"`

	// Consultation type
	// default: INDIVIDUAL
	Type string `json:"type"`

	// Amount in minor currency units
	// default: 150000
	Amount int64 `json:"amount"`

	// Currency code
	// default: UAH
	Currency string `json:"currency"`
}

// PricesErrorResponse represents an error response for the prices listing
// swagger:model PricesErrorResponse
type PricesErrorResponse struct {
	// Error message
	// default: Invalid therapist id
	Error string `json:"error"`
}

// NewTherapistPricesHandler returns an HTTP handler that lists a therapist's
// current prices.
// @Summary List therapist prices
// @Description Returns the therapist's currently listed prices.
// @Tags therapists
// @Produce json
// @Param id path string true "Therapist ID"
// @Success 200 {array} handlers.PriceResponse "Current prices"
// @Failure 400 {object} handlers.PricesErrorResponse "Invalid therapist id"
// @Router /therapists/{id}/prices [get]
func NewTherapistPricesHandler(prices TherapistPriceLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		therapistID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(PricesErrorResponse{Error: "Invalid therapist id"})
			return
		}

		listed, err := prices.ListCurrentByTherapist(ctx, therapistID)
		if err != nil {
			logger.Log.Errorw("failed to list prices", "therapistID", therapistID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(PricesErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]PriceResponse, 0, len(listed))
		for _, p := range listed {
			resp = append(resp, PriceResponse{
				PriceID:  p.PriceID.String(),
				Type:     string(p.Type),
				Amount:   p.Amount,
				Currency: p.Currency,
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}
