package repositories

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/therapease/therapy-booking/internal/models"
)

func orderRowColumns() []string {
	return []string{
		"order_id", "checkout_slug", "state", "amount", "currency", "price_id", "slot_id", "promo_code_id",
		"email", "phone", "client_name", "card_pan", "card_type", "payment_system",
		"issuer_bank_name", "issuer_bank_country", "auth_code", "fee",
		"created_at", "pending_at", "approved_at", "failed_at", "updated_at",
	}
}

func TestOrderWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderWriteRepository(db, nil)

	orderID := uuid.New()
	priceID := uuid.New()
	slotID := uuid.New()
	promoID := uuid.New()

	t.Run("without promo", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(sqlmock.AnyArg(), "slug-1", string(models.OrderCreated), int64(150000), models.UAH,
				priceID, slotID, nil, "buyer@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(orderID.String()))

		saved, err := repo.Save(context.Background(), models.OrderDB{
			CheckoutSlug: "slug-1",
			Amount:       150000,
			Currency:     models.UAH,
			PriceID:      priceID,
			SlotID:       slotID,
			Email:        strPtr("buyer@example.com"),
		})

		assert.NoError(t, err)
		assert.Equal(t, orderID, saved)
	})

	t.Run("with promo", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO orders").
			WithArgs(sqlmock.AnyArg(), "slug-2", string(models.OrderCreated), int64(120000), models.UAH,
				priceID, slotID, promoID, nil).
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(orderID.String()))

		saved, err := repo.Save(context.Background(), models.OrderDB{
			CheckoutSlug: "slug-2",
			Amount:       120000,
			Currency:     models.UAH,
			PriceID:      priceID,
			SlotID:       slotID,
			PromoCodeID:  &promoID,
		})

		assert.NoError(t, err)
		assert.Equal(t, orderID, saved)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderWriteRepository_SetState(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderWriteRepository(db, nil)

	orderID := uuid.New()
	meta := models.PaymentMeta{
		CardPan:       "41****1111",
		CardType:      "Visa",
		PaymentSystem: "card",
		AuthCode:      "541714",
		ClientName:    "Alice",
		Fee:           1500,
	}

	mock.ExpectExec("UPDATE orders").
		WithArgs(orderID, string(models.OrderApproved),
			meta.CardPan, meta.CardType, meta.PaymentSystem,
			meta.IssuerBankName, meta.IssuerBankCountry, meta.AuthCode,
			meta.Phone, meta.ClientName, meta.Fee).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SetState(context.Background(), orderID, models.OrderApproved, meta)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderReadRepository_GetBySlug(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderReadRepository(db, nil)

	orderID := uuid.New()
	priceID := uuid.New()
	slotID := uuid.New()
	now := time.Now().UTC()

	orderRow := func() *sqlmock.Rows {
		return sqlmock.NewRows(orderRowColumns()).
			AddRow(orderID.String(), "slug-1", string(models.OrderPending), int64(150000), models.UAH,
				priceID.String(), slotID.String(), nil,
				"buyer@example.com", nil, nil, nil, nil, nil,
				nil, nil, nil, int64(0),
				now, now, nil, nil, now)
	}

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery("FROM orders WHERE checkout_slug").
			WithArgs("slug-1").
			WillReturnRows(orderRow())

		order, err := repo.GetBySlug(context.Background(), "slug-1")

		assert.NoError(t, err)
		assert.NotNil(t, order)
		assert.Equal(t, orderID, order.OrderID)
		assert.Equal(t, models.OrderPending, order.State)
		assert.Nil(t, order.PromoCodeID)
		assert.NotNil(t, order.Email)
		assert.Equal(t, "buyer@example.com", *order.Email)
		assert.NotNil(t, order.PendingAt)
		assert.Nil(t, order.ApprovedAt)
	})

	t.Run("unknown slug", func(t *testing.T) {
		mock.ExpectQuery("FROM orders WHERE checkout_slug").
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		order, err := repo.GetBySlug(context.Background(), "missing")

		assert.NoError(t, err)
		assert.Nil(t, order)
	})

	t.Run("locked read inside transaction", func(t *testing.T) {
		lockedRepo := NewOrderReadRepository(db, TxFromContext)

		mock.ExpectBegin()
		mock.ExpectQuery("FOR UPDATE").
			WithArgs("slug-1").
			WillReturnRows(orderRow())
		mock.ExpectCommit()

		runner := NewTxRunner(db)
		err := runner.Do(context.Background(), func(ctx context.Context) error {
			order, err := lockedRepo.GetBySlugForUpdate(ctx, "slug-1")
			assert.NoError(t, err)
			assert.NotNil(t, order)
			return nil
		})

		assert.NoError(t, err)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
