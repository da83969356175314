package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/therapease/therapy-booking/internal/models"
	"github.com/therapease/therapy-booking/internal/services"
)

func TestCancelConsultationHandler(t *testing.T) {
	actorID := uuid.New()
	consultationID := uuid.New()

	tests := []struct {
		name           string
		target         string
		setupMocks     func(svc *MockCanceller, tokener *MockCancelTokener)
		expectedStatus int
		expectedState  string
		expectedError  string
	}{
		{
			name:   "User cancels in time",
			target: "/consultations/" + consultationID.String() + "/cancel",
			setupMocks: func(svc *MockCanceller, tokener *MockCancelTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "valid").Return(actorID, nil)
				svc.EXPECT().
					Cancel(gomock.Any(), actorID, consultationID, services.InitiatedByUser).
					Return(models.ConsultationCancelledByUserInTime, nil)
			},
			expectedStatus: http.StatusOK,
			expectedState:  string(models.ConsultationCancelledByUserInTime),
		},
		{
			name:   "Therapist cancels late",
			target: "/therapist/consultations/" + consultationID.String() + "/cancel",
			setupMocks: func(svc *MockCanceller, tokener *MockCancelTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "valid").Return(actorID, nil)
				svc.EXPECT().
					Cancel(gomock.Any(), actorID, consultationID, services.InitiatedByTherapist).
					Return(models.ConsultationCancelledByTherapistNotInTime, nil)
			},
			expectedStatus: http.StatusOK,
			expectedState:  string(models.ConsultationCancelledByTherapistNotInTime),
		},
		{
			name:   "Missing token",
			target: "/consultations/" + consultationID.String() + "/cancel",
			setupMocks: func(svc *MockCanceller, tokener *MockCancelTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("", errors.New("no token"))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Unauthorized",
		},
		{
			name:   "Invalid consultation id",
			target: "/consultations/not-a-uuid/cancel",
			setupMocks: func(svc *MockCanceller, tokener *MockCancelTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "valid").Return(actorID, nil)
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid consultation id",
		},
		{
			name:   "Not found",
			target: "/consultations/" + consultationID.String() + "/cancel",
			setupMocks: func(svc *MockCanceller, tokener *MockCancelTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "valid").Return(actorID, nil)
				svc.EXPECT().
					Cancel(gomock.Any(), actorID, consultationID, services.InitiatedByUser).
					Return(models.ConsultationState(""), services.ErrConsultationNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Consultation not found",
		},
		{
			name:   "Wrong actor",
			target: "/consultations/" + consultationID.String() + "/cancel",
			setupMocks: func(svc *MockCanceller, tokener *MockCancelTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "valid").Return(actorID, nil)
				svc.EXPECT().
					Cancel(gomock.Any(), actorID, consultationID, services.InitiatedByUser).
					Return(models.ConsultationState(""), services.ErrNotAllowed)
			},
			expectedStatus: http.StatusForbidden,
			expectedError:  "Forbidden",
		},
		{
			name:   "Already cancelled",
			target: "/consultations/" + consultationID.String() + "/cancel",
			setupMocks: func(svc *MockCanceller, tokener *MockCancelTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "valid").Return(actorID, nil)
				svc.EXPECT().
					Cancel(gomock.Any(), actorID, consultationID, services.InitiatedByUser).
					Return(models.ConsultationState(""), services.ErrNotCancellable)
			},
			expectedStatus: http.StatusConflict,
			expectedError:  "Consultation is not cancellable",
		},
		{
			name:   "Internal error",
			target: "/consultations/" + consultationID.String() + "/cancel",
			setupMocks: func(svc *MockCanceller, tokener *MockCancelTokener) {
				tokener.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).Return("valid", nil)
				tokener.EXPECT().GetUserID(gomock.Any(), "valid").Return(actorID, nil)
				svc.EXPECT().
					Cancel(gomock.Any(), actorID, consultationID, services.InitiatedByUser).
					Return(models.ConsultationState(""), errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockCanceller(ctrl)
			mockTokener := NewMockCancelTokener(ctrl)
			tt.setupMocks(mockSvc, mockTokener)

			router := chi.NewRouter()
			router.Post("/consultations/{id}/cancel", NewCancelConsultationHandler(mockSvc, mockTokener, services.InitiatedByUser))
			router.Post("/therapist/consultations/{id}/cancel", NewCancelConsultationHandler(mockSvc, mockTokener, services.InitiatedByTherapist))

			req := httptest.NewRequest(http.MethodPost, tt.target, nil)
			req.Header.Set("Authorization", "Bearer valid")
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			if tt.expectedStatus == http.StatusOK {
				var resp CancelResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "Cancelled", resp.Message)
				assert.Equal(t, tt.expectedState, resp.State)
			} else {
				var resp CancelErrorResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
