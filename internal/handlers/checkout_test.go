package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/therapease/therapy-booking/internal/models"
	"github.com/therapease/therapy-booking/internal/services"
)

func TestCheckoutHandler(t *testing.T) {
	priceID := uuid.New()
	slotID := uuid.New()

	order := &models.OrderDB{
		OrderID:      uuid.New(),
		CheckoutSlug: "slug-1",
		State:        models.OrderCreated,
		Amount:       150000,
		Currency:     models.UAH,
	}
	payment := &services.PaymentRequest{
		MerchantAccount: "therapease",
		OrderReference:  "slug-1",
		Amount:          150000,
		Currency:        models.UAH,
		Signature:       "signature",
	}

	tests := []struct {
		name         string
		body         map[string]string
		rawBody      []byte
		mockSetup    func(m *MockCheckoutCreator)
		expectedCode int
		expectedErr  string
	}{
		{
			name: "success",
			body: map[string]string{
				"price_id": priceID.String(),
				"slot_id":  slotID.String(),
				"email":    "buyer@example.com",
			},
			mockSetup: func(m *MockCheckoutCreator) {
				m.EXPECT().
					Checkout(gomock.Any(), priceID, slotID, "buyer@example.com", "").
					Return(order, payment, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "price not available",
			body: map[string]string{
				"price_id": priceID.String(),
				"slot_id":  slotID.String(),
			},
			mockSetup: func(m *MockCheckoutCreator) {
				m.EXPECT().
					Checkout(gomock.Any(), priceID, slotID, "", "").
					Return(nil, nil, services.ErrPriceNotAvailable)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Price is not available",
		},
		{
			name: "slot not available",
			body: map[string]string{
				"price_id": priceID.String(),
				"slot_id":  slotID.String(),
			},
			mockSetup: func(m *MockCheckoutCreator) {
				m.EXPECT().
					Checkout(gomock.Any(), priceID, slotID, "", "").
					Return(nil, nil, services.ErrSlotNotAvailable)
			},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Slot is not available",
		},
		{
			name: "invalid price id",
			body: map[string]string{
				"price_id": "not-a-uuid",
				"slot_id":  slotID.String(),
			},
			mockSetup:    func(m *MockCheckoutCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid price id",
		},
		{
			name:         "invalid json",
			rawBody:      []byte("{broken"),
			mockSetup:    func(m *MockCheckoutCreator) {},
			expectedCode: http.StatusBadRequest,
			expectedErr:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockCheckoutCreator(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewCheckoutHandler(mockSvc)

			body := tt.rawBody
			if body == nil {
				body, _ = json.Marshal(tt.body)
			}

			req := httptest.NewRequest(http.MethodPost, "/checkout", bytes.NewReader(body))
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusCreated {
				var resp CheckoutResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, "slug-1", resp.OrderReference)
				assert.Equal(t, *payment, resp.Payment)
				return
			}

			var got map[string]string
			assert.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
			assert.Equal(t, tt.expectedErr, got["error"])
		})
	}
}
