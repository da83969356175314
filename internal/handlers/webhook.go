package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// WebhookProcessor defines the interface that the order service must implement.
type WebhookProcessor interface {
	ProcessWebhook(ctx context.Context, raw []byte) (models.AckResponse, error)
}

// NewPaymentWebhookHandler returns the HTTP handler for payment provider
// webhook deliveries. Every handled delivery gets HTTP 200 with a JSON body:
// a signed acknowledgement for authenticated events and an empty object for
// everything else. Only an internal failure responds non-200, which makes
// the provider redeliver.
// @Summary Payment provider webhook
// @Description Applies a provider payment event to the order state machine and returns a signed acknowledgement.
// @Tags payment
// @Accept json
// @Produce json
// @Success 200 {object} models.AckResponse "Acknowledgement (empty object for unauthenticated deliveries)"
// @Router /webhook/payment [post]
func NewPaymentWebhookHandler(svc WebhookProcessor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		raw, err := io.ReadAll(r.Body)
		if err != nil {
			logger.Log.Errorw("failed to read webhook body", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		ack, err := svc.ProcessWebhook(ctx, raw)
		if err != nil {
			// A transaction failure: respond non-200 so the provider redelivers.
			logger.Log.Errorw("failed to process webhook", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ack)
	}
}
