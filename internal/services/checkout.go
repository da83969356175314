package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

var (
	// ErrPriceNotAvailable is returned when the price does not exist or is
	// not currently offered.
	ErrPriceNotAvailable = errors.New("price is not available")

	// ErrSlotNotAvailable is returned when the chosen anchor slot does not
	// exist, is taken, or belongs to another therapist.
	ErrSlotNotAvailable = errors.New("slot is not available")
)

// CheckoutPriceReader reads price snapshots.
type CheckoutPriceReader interface {
	GetByID(ctx context.Context, priceID uuid.UUID) (*models.PriceDB, error)
}

// CheckoutSlotReader reads the chosen anchor slot.
type CheckoutSlotReader interface {
	GetByID(ctx context.Context, slotID uuid.UUID) (*models.SlotDB, error)
}

// CheckoutPromoReader looks up promo codes.
type CheckoutPromoReader interface {
	GetByCode(ctx context.Context, code string) (*models.PromoCodeDB, error)
}

// CheckoutOrderWriter creates orders.
type CheckoutOrderWriter interface {
	Save(ctx context.Context, order models.OrderDB) (uuid.UUID, error)
}

// CheckoutSigner signs the payment request fields for the provider.
type CheckoutSigner interface {
	Sign(fields ...string) string
}

// PaymentRequest is the signed field set the client forwards to the payment
// provider to start the charge.
type PaymentRequest struct {
	MerchantAccount string `json:"merchantAccount"`
	OrderReference  string `json:"orderReference"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	Signature       string `json:"signature"`
}

// CheckoutService turns a price + anchor slot selection (and an optional
// promo code) into an Order in state CREATED.
type CheckoutService struct {
	prices          CheckoutPriceReader
	slots           CheckoutSlotReader
	promos          CheckoutPromoReader
	orders          CheckoutOrderWriter
	signer          CheckoutSigner
	merchantAccount string
}

// NewCheckoutService creates a new CheckoutService.
func NewCheckoutService(
	prices CheckoutPriceReader,
	slots CheckoutSlotReader,
	promos CheckoutPromoReader,
	orders CheckoutOrderWriter,
	signer CheckoutSigner,
	merchantAccount string,
) *CheckoutService {
	return &CheckoutService{
		prices:          prices,
		slots:           slots,
		promos:          promos,
		orders:          orders,
		signer:          signer,
		merchantAccount: merchantAccount,
	}
}

// Checkout creates the order and returns it with the signed payment request.
// An unknown or already used promo code is ignored rather than rejected.
func (s *CheckoutService) Checkout(ctx context.Context, priceID, anchorSlotID uuid.UUID, email, promoCode string) (*models.OrderDB, *PaymentRequest, error) {
	price, err := s.prices.GetByID(ctx, priceID)
	if err != nil {
		return nil, nil, err
	}
	if price == nil || price.State != models.PriceCurrent {
		return nil, nil, ErrPriceNotAvailable
	}

	slot, err := s.slots.GetByID(ctx, anchorSlotID)
	if err != nil {
		return nil, nil, err
	}
	if slot == nil || slot.State != models.SlotAvailable || slot.TherapistID != price.TherapistID {
		return nil, nil, ErrSlotNotAvailable
	}

	amount := price.Amount
	var promoCodeID *uuid.UUID
	if promoCode != "" {
		promo, err := s.promos.GetByCode(ctx, promoCode)
		if err != nil {
			return nil, nil, err
		}
		if promo != nil && !promo.Used {
			amount -= amount * int64(promo.DiscountPercent) / 100
			promoCodeID = &promo.PromoCodeID
		} else {
			logger.Log.Warnw("promo code not applicable", "code", promoCode)
		}
	}

	order := models.OrderDB{
		OrderID:      uuid.New(),
		CheckoutSlug: uuid.NewString(),
		State:        models.OrderCreated,
		Amount:       amount,
		Currency:     price.Currency,
		PriceID:      price.PriceID,
		SlotID:       slot.SlotID,
		PromoCodeID:  promoCodeID,
	}
	if email != "" {
		order.Email = &email
	}

	if _, err := s.orders.Save(ctx, order); err != nil {
		logger.Log.Errorw("failed to save order", "checkoutSlug", order.CheckoutSlug, "error", err)
		return nil, nil, err
	}

	amountStr := strconv.FormatInt(amount, 10)
	request := PaymentRequest{
		MerchantAccount: s.merchantAccount,
		OrderReference:  order.CheckoutSlug,
		Amount:          amount,
		Currency:        price.Currency,
		Signature:       s.signer.Sign(s.merchantAccount, order.CheckoutSlug, amountStr, price.Currency),
	}

	return &order, &request, nil
}
