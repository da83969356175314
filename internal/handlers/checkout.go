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

// CheckoutCreator defines the interface that the checkout service must implement.
type CheckoutCreator interface {
	Checkout(ctx context.Context, priceID, anchorSlotID uuid.UUID, email, promoCode string) (*models.OrderDB, *services.PaymentRequest, error)
}

// CheckoutRequest represents the JSON body for creating a checkout
// swagger:model CheckoutRequest
type CheckoutRequest struct {
	// Price snapshot to purchase
	// required: true
	PriceID string `json:"price_id"`

	// Anchor slot chosen for the consultation
	// required: true
	SlotID string `json:"slot_id"`

	// Buyer email for identity provisioning on approval
	Email string `json:"email"`

	// Optional promo code
	PromoCode string `json:"promo_code"`
}

// CheckoutResponse represents a successful checkout response
// swagger:model CheckoutResponse
type CheckoutResponse struct {
	// External order reference to give to the payment provider
	OrderReference string `json:"order_reference"`

	// Signed payment request fields for the provider form
	Payment services.PaymentRequest `json:"payment"`
}

// CheckoutErrorResponse represents an error response for checkout
// swagger:model CheckoutErrorResponse
type CheckoutErrorResponse struct {
	// Error message
	// default: Price is not available
	Error string `json:"error"`
}

// NewCheckoutHandler returns an HTTP handler that creates an order for a
// price + slot selection.
// @Summary Create a checkout
// @Description Creates an Order in state CREATED and returns the signed payment request for the provider.
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body handlers.CheckoutRequest true "Checkout Request"
// @Success 201 {object} handlers.CheckoutResponse "Order created"
// @Failure 400 {object} handlers.CheckoutErrorResponse "Invalid request or unavailable price/slot"
// @Router /checkout [post]
func NewCheckoutHandler(svc CheckoutCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req CheckoutRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Invalid request body"})
			return
		}

		priceID, err := uuid.Parse(req.PriceID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Invalid price id"})
			return
		}
		slotID, err := uuid.Parse(req.SlotID)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Invalid slot id"})
			return
		}

		order, payment, err := svc.Checkout(ctx, priceID, slotID, req.Email, req.PromoCode)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPriceNotAvailable):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Price is not available"})
			case errors.Is(err, services.ErrSlotNotAvailable):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Slot is not available"})
			default:
				logger.Log.Errorw("failed to create checkout", "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CheckoutErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CheckoutResponse{
			OrderReference: order.CheckoutSlug,
			Payment:        *payment,
		})
	}
}
