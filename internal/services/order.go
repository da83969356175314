package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/events"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// ackStatus is the fixed status literal the provider expects back.
const ackStatus = "accept"

// PaymentEventWriter appends raw webhook payloads to the audit log.
type PaymentEventWriter interface {
	Save(ctx context.Context, orderReference string, payload []byte) (uuid.UUID, error)
}

// OrderReader reads orders.
type OrderReader interface {
	GetBySlugForUpdate(ctx context.Context, slug string) (*models.OrderDB, error)
}

// OrderWriter transitions orders.
type OrderWriter interface {
	SetState(ctx context.Context, orderID uuid.UUID, state models.OrderState, meta models.PaymentMeta) error
}

// IdentityProvider locates or creates the buying user.
type IdentityProvider interface {
	FindOrCreateByEmail(ctx context.Context, email string) (uuid.UUID, error)
}

// PurchaseWallet provisions the buyer's wallet and credits it.
type PurchaseWallet interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID, currency string) (*models.WalletDB, error)
	ApplyOperation(ctx context.Context, op models.WalletOperationDB) (int64, error)
}

// OperationCounter counts ledger operations matching a reason. The purchase
// credit is guarded with it so a redelivered approval cannot credit twice.
type OperationCounter interface {
	CountByReason(ctx context.Context, reason models.OperationReason, reasonID uuid.UUID) (int, error)
}

// Booker runs the booking transaction against the checkout's slot. The
// webhook transaction is still open at that point, so the booked event comes
// back for the caller to publish after its own commit.
type Booker interface {
	BookInTx(ctx context.Context, userID uuid.UUID, price models.PriceDB, anchorSlotID, walletID uuid.UUID) (*models.ConsultationDB, events.ConsultationBooked, error)
}

// OrderPriceReader reads the purchased price snapshot.
type OrderPriceReader interface {
	GetByID(ctx context.Context, priceID uuid.UUID) (*models.PriceDB, error)
}

// PromoMarker spends a promo code.
type PromoMarker interface {
	MarkUsed(ctx context.Context, promoCodeID uuid.UUID) error
}

// WebhookSigner verifies inbound signatures and signs acknowledgements.
type WebhookSigner interface {
	Sign(fields ...string) string
	Verify(signature string, fields ...string) bool
}

// OrderPublisher emits the post-commit approval and booking events.
type OrderPublisher interface {
	PublishOrderApproved(ctx context.Context, ev events.OrderApproved) error
	PublishConsultationBooked(ctx context.Context, ev events.ConsultationBooked) error
}

// OrderService is the payment-webhook order state machine:
// CREATED -> PENDING -> {APPROVED, FAILED}, each transition one-way, with
// redelivery of the current state a no-op. Only "Approved" and "Pending"
// transaction statuses drive transitions; anything else is ignored.
type OrderService struct {
	tx         TxRunner
	rawEvents  PaymentEventWriter
	orders     OrderReader
	orderSaver OrderWriter
	identity   IdentityProvider
	wallets    PurchaseWallet
	counter    OperationCounter
	booking    Booker
	prices     OrderPriceReader
	promos     PromoMarker
	signer     WebhookSigner
	publisher  OrderPublisher

	now func() time.Time
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	tx TxRunner,
	rawEvents PaymentEventWriter,
	orders OrderReader,
	orderSaver OrderWriter,
	identity IdentityProvider,
	wallets PurchaseWallet,
	counter OperationCounter,
	booking Booker,
	prices OrderPriceReader,
	promos PromoMarker,
	signer WebhookSigner,
	publisher OrderPublisher,
) *OrderService {
	return &OrderService{
		tx:         tx,
		rawEvents:  rawEvents,
		orders:     orders,
		orderSaver: orderSaver,
		identity:   identity,
		wallets:    wallets,
		counter:    counter,
		booking:    booking,
		prices:     prices,
		promos:     promos,
		signer:     signer,
		publisher:  publisher,
		now:        time.Now,
	}
}

// ProcessWebhook handles one webhook delivery. The raw payload is persisted
// before any validation. An unauthenticated or unparseable delivery yields
// an empty acknowledgement and no state change; that is the provider
// contract, not an error.
func (s *OrderService) ProcessWebhook(ctx context.Context, raw []byte) (models.AckResponse, error) {
	var payload models.PaymentWebhook
	parseErr := json.Unmarshal(raw, &payload)

	// Audit row first, unconditionally. Its failure is the only hard error
	// before processing: losing the trail is worse than a retry.
	if _, err := s.rawEvents.Save(ctx, payload.OrderReference, raw); err != nil {
		logger.Log.Errorw("failed to persist payment event", "orderReference", payload.OrderReference, "error", err)
		return models.AckResponse{}, err
	}

	if parseErr != nil {
		logger.Log.Warnw("unparseable webhook payload", "error", parseErr)
		return models.AckResponse{}, nil
	}

	if !s.signer.Verify(payload.MerchantSignature,
		payload.MerchantAccount,
		payload.OrderReference,
		payload.Amount.String(),
		payload.Currency,
		payload.AuthCode,
		payload.CardPan,
		payload.TransactionStatus,
		payload.ReasonCode.String(),
	) {
		logger.Log.Warnw("webhook signature mismatch", "orderReference", payload.OrderReference)
		return models.AckResponse{}, nil
	}

	var (
		approved *models.OrderDB
		booked   *events.ConsultationBooked
	)
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		order, err := s.orders.GetBySlugForUpdate(ctx, payload.OrderReference)
		if err != nil {
			return err
		}
		if order == nil {
			logger.Log.Warnw("webhook for unknown order", "orderReference", payload.OrderReference)
			return nil
		}

		switch payload.TransactionStatus {
		case models.TransactionPending:
			return s.applyPending(ctx, order, payload)
		case models.TransactionApproved:
			var err error
			approved, booked, err = s.applyApproved(ctx, order, payload)
			return err
		default:
			logger.Log.Infow("ignoring transaction status", "orderReference", payload.OrderReference, "status", payload.TransactionStatus)
			return nil
		}
	})
	if err != nil {
		return models.AckResponse{}, err
	}

	// Post-commit, best-effort.
	if approved != nil {
		s.publisher.PublishOrderApproved(ctx, events.OrderApproved{
			OrderID:      approved.OrderID,
			CheckoutSlug: approved.CheckoutSlug,
			Amount:       approved.Amount,
			Currency:     approved.Currency,
		})
	}
	if booked != nil {
		s.publisher.PublishConsultationBooked(ctx, *booked)
	}

	return s.ack(payload.OrderReference), nil
}

// applyPending moves CREATED -> PENDING. Redelivery and deliveries against
// a terminal order are no-ops; no money moves.
func (s *OrderService) applyPending(ctx context.Context, order *models.OrderDB, payload models.PaymentWebhook) error {
	if order.State != models.OrderCreated {
		logger.Log.Infow("pending redelivery ignored", "orderReference", order.CheckoutSlug, "state", order.State)
		return nil
	}
	return s.orderSaver.SetState(ctx, order.OrderID, models.OrderPending, metaFrom(payload))
}

// applyApproved moves the order to APPROVED and spends the purchase: credit
// the buyer's wallet, then immediately book the checkout's slot. A slot
// no-match or insufficient balance leaves the credit standing with no
// consultation; the user can book manually later. The returned booked event,
// if any, must only be published after the enclosing transaction commits.
func (s *OrderService) applyApproved(ctx context.Context, order *models.OrderDB, payload models.PaymentWebhook) (*models.OrderDB, *events.ConsultationBooked, error) {
	if order.State == models.OrderApproved || order.State == models.OrderFailed {
		logger.Log.Infow("approved redelivery ignored", "orderReference", order.CheckoutSlug, "state", order.State)
		return nil, nil, nil
	}

	if err := s.orderSaver.SetState(ctx, order.OrderID, models.OrderApproved, metaFrom(payload)); err != nil {
		return nil, nil, err
	}

	email := payload.Email
	if email == "" && order.Email != nil {
		email = *order.Email
	}
	if email == "" {
		// No identity was captured anywhere; synthesize a placeholder the
		// buyer can claim later.
		email = fmt.Sprintf("%s@checkout.invalid", order.CheckoutSlug)
	}

	userID, err := s.identity.FindOrCreateByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	wallet, err := s.wallets.GetOrCreate(ctx, userID, order.Currency)
	if err != nil {
		return nil, nil, err
	}

	// The state check above already stops redeliveries; the ledger count
	// backstops a crash between the credit and the state flip.
	credits, err := s.counter.CountByReason(ctx, models.ReasonPurchase, order.OrderID)
	if err != nil {
		return nil, nil, err
	}
	if credits == 0 {
		if _, err := s.wallets.ApplyOperation(ctx, models.WalletOperationDB{
			WalletID:  wallet.WalletID,
			Amount:    order.Amount,
			Currency:  order.Currency,
			Direction: models.DirectionAdd,
			Reason:    models.ReasonPurchase,
			ReasonID:  order.OrderID,
		}); err != nil {
			return nil, nil, err
		}
	} else {
		logger.Log.Warnw("purchase already credited, skipping",
			"orderReference", order.CheckoutSlug, "credits", credits)
	}

	price, err := s.prices.GetByID(ctx, order.PriceID)
	if err != nil {
		return nil, nil, err
	}
	if price == nil {
		return nil, nil, fmt.Errorf("price %s not found for order %s", order.PriceID, order.CheckoutSlug)
	}

	var booked *events.ConsultationBooked
	if _, ev, err := s.booking.BookInTx(ctx, userID, *price, order.SlotID, wallet.WalletID); err != nil {
		if errors.Is(err, ErrNoSlotMatch) || errors.Is(err, ErrInsufficientFunds) {
			logger.Log.Infow("auto-booking skipped, purchase credit kept",
				"orderReference", order.CheckoutSlug, "reason", err)
		} else {
			return nil, nil, err
		}
	} else {
		booked = &ev
	}

	if order.PromoCodeID != nil {
		if err := s.promos.MarkUsed(ctx, *order.PromoCodeID); err != nil {
			return nil, nil, err
		}
	}

	return order, booked, nil
}

// ack builds the signed acknowledgement for an authenticated delivery.
func (s *OrderService) ack(orderReference string) models.AckResponse {
	now := s.now().Unix()
	return models.AckResponse{
		OrderReference: orderReference,
		Status:         ackStatus,
		Time:           now,
		Signature:      s.signer.Sign(orderReference, ackStatus, fmt.Sprintf("%d", now)),
	}
}

// metaFrom copies the provider payment fields onto an order update.
func metaFrom(payload models.PaymentWebhook) models.PaymentMeta {
	fee, _ := payload.Fee.Int64()
	return models.PaymentMeta{
		CardPan:           payload.CardPan,
		CardType:          payload.CardType,
		PaymentSystem:     payload.PaymentSystem,
		IssuerBankName:    payload.IssuerBankName,
		IssuerBankCountry: payload.IssuerBankCountry,
		AuthCode:          payload.AuthCode,
		Phone:             payload.Phone,
		ClientName:        payload.ClientName,
		Fee:               fee,
	}
}
