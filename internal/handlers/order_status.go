package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// OrderStatusReader defines the interface the order lookup must implement.
type OrderStatusReader interface {
	GetBySlug(ctx context.Context, slug string) (*models.OrderDB, error)
}

// OrderStatusResponse represents the payment status of a checkout
// swagger:model OrderStatusResponse
type OrderStatusResponse struct {
	// Order id
	OrderID string `json:"order_id"`

	// Checkout reference
	CheckoutSlug string `json:"checkout_slug"`

	// Current order state
	// default: PENDING
	State string `json:"state"`

	// Amount in minor currency units
	// default: 150000
	Amount int64 `json:"amount"`

	// Currency code
	// default: UAH
	Currency string `json:"currency"`
}

// OrderStatusErrorResponse represents an error response for the order lookup
// swagger:model OrderStatusErrorResponse
type OrderStatusErrorResponse struct {
	// Error message
	// default: Order not found
	Error string `json:"error"`
}

// NewOrderStatusHandler returns an HTTP handler that reports a checkout's
// payment state. The buyer polls it after being redirected to the payment
// page; the slug is the only credential, so the response carries no payment
// metadata.
// @Summary Get checkout status
// @Description Returns the order state for a checkout reference.
// @Tags checkout
// @Produce json
// @Param slug path string true "Checkout reference"
// @Success 200 {object} handlers.OrderStatusResponse "Order state"
// @Failure 404 {object} handlers.OrderStatusErrorResponse "Order not found"
// @Router /checkout/{slug} [get]
func NewOrderStatusHandler(orders OrderStatusReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		slug := chi.URLParam(r, "slug")
		order, err := orders.GetBySlug(ctx, slug)
		if err != nil {
			logger.Log.Errorw("failed to get order", "slug", slug, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(OrderStatusErrorResponse{Error: "Internal server error"})
			return
		}
		if order == nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(OrderStatusErrorResponse{Error: "Order not found"})
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(OrderStatusResponse{
			OrderID:      order.OrderID.String(),
			CheckoutSlug: order.CheckoutSlug,
			State:        string(order.State),
			Amount:       order.Amount,
			Currency:     order.Currency,
		})
	}
}
