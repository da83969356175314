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
)

func TestOrderStatusHandler(t *testing.T) {
	orderID := uuid.New()
	order := &models.OrderDB{
		OrderID:      orderID,
		CheckoutSlug: "slug-1",
		State:        models.OrderPending,
		Amount:       150000,
		Currency:     models.UAH,
	}

	tests := []struct {
		name         string
		slug         string
		mockSetup    func(orders *MockOrderStatusReader)
		expectedCode int
	}{
		{
			name: "pending order",
			slug: "slug-1",
			mockSetup: func(orders *MockOrderStatusReader) {
				orders.EXPECT().GetBySlug(gomock.Any(), "slug-1").Return(order, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "unknown slug",
			slug: "nope",
			mockSetup: func(orders *MockOrderStatusReader) {
				orders.EXPECT().GetBySlug(gomock.Any(), "nope").Return(nil, nil)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			slug: "slug-1",
			mockSetup: func(orders *MockOrderStatusReader) {
				orders.EXPECT().GetBySlug(gomock.Any(), "slug-1").Return(nil, errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockOrders := NewMockOrderStatusReader(ctrl)
			tt.mockSetup(mockOrders)

			r := chi.NewRouter()
			r.Get("/checkout/{slug}", NewOrderStatusHandler(mockOrders))

			req := httptest.NewRequest(http.MethodGet, "/checkout/"+tt.slug, nil)
			rr := httptest.NewRecorder()

			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp OrderStatusResponse
				assert.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, orderID.String(), resp.OrderID)
				assert.Equal(t, "slug-1", resp.CheckoutSlug)
				assert.Equal(t, string(models.OrderPending), resp.State)
				assert.Equal(t, int64(150000), resp.Amount)
				assert.Equal(t, models.UAH, resp.Currency)
			}
		})
	}
}
