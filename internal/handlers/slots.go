package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
	"github.com/therapease/therapy-booking/internal/services"
)

// SlotsTokener defines only the methods needed by the slot creation handler.
type SlotsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetUserID(ctx context.Context, tokenString string) (uuid.UUID, error)
}

// Scheduler defines the interface that the schedule service must implement.
type Scheduler interface {
	CreateSlots(ctx context.Context, therapistID uuid.UUID, startTimes []time.Time) ([]uuid.UUID, error)
	ListSlots(ctx context.Context, therapistID uuid.UUID, from, to time.Time) ([]models.SlotDB, error)
}

// SlotResponse represents a single availability slot
// swagger:model SlotResponse
type SlotResponse struct {
	// Slot id
	SlotID string `json:"slot_id"`

	// Slot start instant, RFC 3339
	AvailableAt time.Time `json:"available_at"`

	// Slot state
	// default: AVAILABLE
	State string `json:"state"`
}

// CreateSlotsRequest represents the JSON body for publishing availability
// swagger:model CreateSlotsRequest
type CreateSlotsRequest struct {
	// Slot start instants, RFC 3339, half-hour aligned
	// required: true
	StartTimes []time.Time `json:"start_times"`
}

// CreateSlotsResponse represents the created slot ids
// swagger:model CreateSlotsResponse
type CreateSlotsResponse struct {
	// Created slot ids
	SlotIDs []string `json:"slot_ids"`
}

// SlotsErrorResponse represents an error response for slot endpoints
// swagger:model SlotsErrorResponse
type SlotsErrorResponse struct {
	// Error message
	// default: Slot is not half-hour aligned
	Error string `json:"error"`
}

// NewTherapistSlotsHandler returns an HTTP handler that lists a therapist's
// slots inside an optional from/to window. Without query parameters the
// window defaults to the next two weeks.
// @Summary List therapist slots
// @Description Returns the therapist's slots inside the requested window.
// @Tags therapists
// @Produce json
// @Param id path string true "Therapist ID"
// @Param from query string false "Window start, RFC 3339"
// @Param to query string false "Window end, RFC 3339"
// @Success 200 {array} handlers.SlotResponse "Slots"
// @Failure 400 {object} handlers.SlotsErrorResponse "Invalid parameters"
// @Router /therapists/{id}/slots [get]
func NewTherapistSlotsHandler(svc Scheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		therapistID, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "Invalid therapist id"})
			return
		}

		from := time.Now().UTC()
		to := from.Add(14 * 24 * time.Hour)
		if raw := r.URL.Query().Get("from"); raw != "" {
			from, err = time.Parse(time.RFC3339, raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "Invalid from parameter"})
				return
			}
		}
		if raw := r.URL.Query().Get("to"); raw != "" {
			to, err = time.Parse(time.RFC3339, raw)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "Invalid to parameter"})
				return
			}
		}

		slots, err := svc.ListSlots(ctx, therapistID, from, to)
		if err != nil {
			logger.Log.Errorw("failed to list slots", "therapistID", therapistID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := make([]SlotResponse, 0, len(slots))
		for _, s := range slots {
			resp = append(resp, SlotResponse{
				SlotID:      s.SlotID.String(),
				AvailableAt: s.AvailableAt,
				State:       string(s.State),
			})
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	}
}

// NewCreateSlotsHandler returns an HTTP handler that publishes availability
// slots for the authenticated therapist.
// @Summary Publish availability slots
// @Description Creates half-hour availability slots for the authenticated therapist.
// @Tags therapists
// @Accept json
// @Produce json
// @Param request body handlers.CreateSlotsRequest true "Create Slots Request"
// @Success 201 {object} handlers.CreateSlotsResponse "Created slot ids"
// @Failure 400 {object} handlers.SlotsErrorResponse "Slot is not half-hour aligned"
// @Failure 401 {object} handlers.SlotsErrorResponse "Unauthorized"
// @Router /therapist/slots [post]
// @Security BearerAuth
func NewCreateSlotsHandler(svc Scheduler, tokener SlotsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "Unauthorized"})
			return
		}
		therapistID, err := tokener.GetUserID(ctx, tokenStr)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "Unauthorized"})
			return
		}

		var req CreateSlotsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "Invalid request body"})
			return
		}
		if len(req.StartTimes) == 0 {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "No start times provided"})
			return
		}

		ids, err := svc.CreateSlots(ctx, therapistID, req.StartTimes)
		if err != nil {
			if errors.Is(err, services.ErrSlotNotAligned) {
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "Slot is not half-hour aligned"})
				return
			}
			logger.Log.Errorw("failed to create slots", "therapistID", therapistID, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(SlotsErrorResponse{Error: "Internal server error"})
			return
		}

		resp := CreateSlotsResponse{SlotIDs: make([]string, 0, len(ids))}
		for _, id := range ids {
			resp.SlotIDs = append(resp.SlotIDs, id.String())
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(resp)
	}
}
