package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
	"github.com/therapease/therapy-booking/internal/services"
)

// CancelTokener defines only the methods needed by this handler.
type CancelTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// Canceller defines the interface that the cancellation service must implement.
type Canceller interface {
	Cancel(ctx context.Context, actorID, consultationID uuid.UUID, initiator services.Initiator) (models.ConsultationState, error)
}

// CancelResponse represents a successful cancellation
// swagger:model CancelResponse
type CancelResponse struct {
	// Status message
	// default: Cancelled
	Message string `json:"message"`

	// Final consultation state
	// default: CANCELLED_BY_USER_IN_TIME
	State string `json:"state"`
}

// CancelErrorResponse represents an error response for cancellation
// swagger:model CancelErrorResponse
type CancelErrorResponse struct {
	// Error message
	// default: Consultation not found
	Error string `json:"error"`
}

// NewCancelConsultationHandler returns an HTTP handler that cancels a
// consultation on behalf of the given initiator. The actor comes from the
// JWT and must own the consultation side matching the initiator.
// @Summary Cancel a consultation
// @Description Cancels a consultation, applying the refund rules for the initiating side.
// @Tags consultations
// @Produce json
// @Param id path string true "Consultation ID"
// @Success 200 {object} handlers.CancelResponse "Cancelled"
// @Failure 401 {object} handlers.CancelErrorResponse "Unauthorized"
// @Failure 403 {object} handlers.CancelErrorResponse "Forbidden"
// @Failure 404 {object} handlers.CancelErrorResponse "Consultation not found"
// @Failure 409 {object} handlers.CancelErrorResponse "Consultation is not cancellable"
// @Router /consultations/{id}/cancel [post]
// @Security BearerAuth
func NewCancelConsultationHandler(svc Canceller, tokener CancelTokener, initiator services.Initiator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Unauthorized"})
			return
		}
		actorID, err := tokener.GetUserID(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Unauthorized"})
			return
		}

		consultationID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Invalid consultation id"})
			return
		}

		state, err := svc.Cancel(ctx, actorID, consultationID, initiator)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrConsultationNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Consultation not found"})
			case errors.Is(err, services.ErrNotAllowed):
				w.WriteHeader(http.StatusForbidden)
				json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Forbidden"})
			case errors.Is(err, services.ErrNotCancellable):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Consultation is not cancellable"})
			default:
				logger.Log.Errorw("failed to cancel consultation", "consultationID", consultationID, "error", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CancelErrorResponse{Error: "Internal server error"})
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(CancelResponse{Message: "Cancelled", State: string(state)})
	}
}
