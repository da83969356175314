package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/therapease/therapy-booking/internal/models"
	"github.com/therapease/therapy-booking/internal/services"
)

// passthroughTx runs the unit of work without a real transaction.
func passthroughTx(m *services.MockTxRunner) {
	m.EXPECT().
		Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(ctx context.Context) error) error {
			return fn(ctx)
		}).
		AnyTimes()
}

type bookingMocks struct {
	tx        *services.MockTxRunner
	slots     *services.MockBookingSlotReader
	slotSaver *services.MockBookingSlotWriter
	matcher   *services.MockBookingMatcher
	consults  *services.MockConsultationWriter
	ledger    *services.MockLedger
	wallets   *services.MockWalletLocker
	clients   *services.MockClientWriter
	publisher *services.MockBookedPublisher
}

func newBookingService(ctrl *gomock.Controller) (*services.BookingService, bookingMocks) {
	m := bookingMocks{
		tx:        services.NewMockTxRunner(ctrl),
		slots:     services.NewMockBookingSlotReader(ctrl),
		slotSaver: services.NewMockBookingSlotWriter(ctrl),
		matcher:   services.NewMockBookingMatcher(ctrl),
		consults:  services.NewMockConsultationWriter(ctrl),
		ledger:    services.NewMockLedger(ctrl),
		wallets:   services.NewMockWalletLocker(ctrl),
		clients:   services.NewMockClientWriter(ctrl),
		publisher: services.NewMockBookedPublisher(ctrl),
	}
	passthroughTx(m.tx)
	svc := services.NewBookingService(
		m.tx, m.slots, m.slotSaver, m.matcher,
		m.consults, m.ledger, m.wallets, m.clients, m.publisher,
	)
	return svc, m
}

func TestBookingService_Book_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	userID := uuid.New()
	walletID := uuid.New()
	consultationID := uuid.New()
	therapistID := uuid.New()
	anchorAt := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

	price := models.PriceDB{
		PriceID:     uuid.New(),
		TherapistID: therapistID,
		Amount:      150000,
		Currency:    models.UAH,
		Type:        models.TypeIndividual,
		State:       models.PriceCurrent,
	}

	anchor := slotAt(therapistID, anchorAt, models.SlotAvailable)
	second := slotAt(therapistID, anchorAt.Add(30*time.Minute), models.SlotAvailable)
	matched := []models.SlotDB{anchor, second}

	m.clients.EXPECT().Save(gomock.Any(), therapistID, userID).Return(nil)
	m.slots.EXPECT().GetByID(gomock.Any(), anchor.SlotID).Return(&anchor, nil)
	m.matcher.EXPECT().Match(gomock.Any(), anchor, models.TypeIndividual).Return(matched, nil)
	m.wallets.EXPECT().GetForUpdate(gomock.Any(), walletID).
		Return(&models.WalletDB{WalletID: walletID, Balance: 200000, Currency: models.UAH}, nil)
	m.consults.EXPECT().
		Save(gomock.Any(), userID, therapistID, price.PriceID, models.TypeIndividual).
		Return(consultationID, nil)
	m.slotSaver.EXPECT().
		UpdateState(gomock.Any(), []uuid.UUID{anchor.SlotID, second.SlotID}, models.SlotBooked).
		Return(nil)
	m.consults.EXPECT().
		SaveSlots(gomock.Any(), consultationID, []uuid.UUID{anchor.SlotID, second.SlotID}).
		Return(nil)
	m.ledger.EXPECT().
		ApplyOperation(gomock.Any(), models.WalletOperationDB{
			WalletID:  walletID,
			Amount:    150000,
			Currency:  models.UAH,
			Direction: models.DirectionSubtract,
			Reason:    models.ReasonCreatedConsultation,
			ReasonID:  consultationID,
		}).
		Return(int64(50000), nil)
	m.publisher.EXPECT().PublishConsultationBooked(gomock.Any(), gomock.Any()).Return(nil)

	consultation, err := svc.Book(context.Background(), userID, price, anchor.SlotID, walletID)

	assert.NoError(t, err)
	assert.Equal(t, consultationID, consultation.ConsultationID)
	assert.Equal(t, models.ConsultationCreated, consultation.State)
	assert.Equal(t, models.TypeIndividual, consultation.Type)
}

func TestBookingService_BookInTx_ReturnsEventWithoutPublishing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	userID := uuid.New()
	walletID := uuid.New()
	consultationID := uuid.New()
	therapistID := uuid.New()
	anchorAt := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	anchor := slotAt(therapistID, anchorAt, models.SlotAvailable)
	price := models.PriceDB{TherapistID: therapistID, Amount: 1000, Currency: models.UAH, Type: models.TypeIndividual}

	// No expectation on m.publisher: the caller still holds an open
	// transaction, so the event must come back instead of being emitted.
	m.clients.EXPECT().Save(gomock.Any(), therapistID, userID).Return(nil)
	m.slots.EXPECT().GetByID(gomock.Any(), anchor.SlotID).Return(&anchor, nil)
	m.matcher.EXPECT().Match(gomock.Any(), anchor, models.TypeIndividual).
		Return([]models.SlotDB{anchor}, nil)
	m.wallets.EXPECT().GetForUpdate(gomock.Any(), walletID).
		Return(&models.WalletDB{WalletID: walletID, Balance: 5000, Currency: models.UAH}, nil)
	m.consults.EXPECT().
		Save(gomock.Any(), userID, therapistID, price.PriceID, models.TypeIndividual).
		Return(consultationID, nil)
	m.slotSaver.EXPECT().UpdateState(gomock.Any(), []uuid.UUID{anchor.SlotID}, models.SlotBooked).Return(nil)
	m.consults.EXPECT().SaveSlots(gomock.Any(), consultationID, []uuid.UUID{anchor.SlotID}).Return(nil)
	m.ledger.EXPECT().ApplyOperation(gomock.Any(), gomock.Any()).Return(int64(4000), nil)

	consultation, booked, err := svc.BookInTx(context.Background(), userID, price, anchor.SlotID, walletID)

	assert.NoError(t, err)
	assert.Equal(t, consultationID, consultation.ConsultationID)
	assert.Equal(t, consultationID, booked.ConsultationID)
	assert.Equal(t, userID, booked.UserID)
	assert.Equal(t, therapistID, booked.TherapistID)
	assert.Equal(t, anchorAt, booked.StartsAt)
}

func TestBookingService_Book_AnchorGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	userID := uuid.New()
	anchorSlotID := uuid.New()
	price := models.PriceDB{TherapistID: uuid.New(), Amount: 1000, Type: models.TypeIndividual}

	m.clients.EXPECT().Save(gomock.Any(), price.TherapistID, userID).Return(nil)
	m.slots.EXPECT().GetByID(gomock.Any(), anchorSlotID).Return(nil, nil)

	_, err := svc.Book(context.Background(), userID, price, anchorSlotID, uuid.New())
	assert.ErrorIs(t, err, services.ErrNoSlotMatch)
}

func TestBookingService_Book_NoMatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	userID := uuid.New()
	therapistID := uuid.New()
	anchor := slotAt(therapistID, time.Now().UTC(), models.SlotAvailable)
	price := models.PriceDB{TherapistID: therapistID, Amount: 1000, Type: models.TypeCouple}

	m.clients.EXPECT().Save(gomock.Any(), therapistID, userID).Return(nil)
	m.slots.EXPECT().GetByID(gomock.Any(), anchor.SlotID).Return(&anchor, nil)
	m.matcher.EXPECT().Match(gomock.Any(), anchor, models.TypeCouple).
		Return(nil, services.ErrNoSlotMatch)

	_, err := svc.Book(context.Background(), userID, price, anchor.SlotID, uuid.New())
	assert.ErrorIs(t, err, services.ErrNoSlotMatch)
	assert.NotErrorIs(t, err, services.ErrBookingFailed)
}

func TestBookingService_Book_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	userID := uuid.New()
	walletID := uuid.New()
	therapistID := uuid.New()
	anchorAt := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	anchor := slotAt(therapistID, anchorAt, models.SlotAvailable)
	second := slotAt(therapistID, anchorAt.Add(30*time.Minute), models.SlotAvailable)
	price := models.PriceDB{TherapistID: therapistID, Amount: 150000, Currency: models.UAH, Type: models.TypeIndividual}

	m.clients.EXPECT().Save(gomock.Any(), therapistID, userID).Return(nil)
	m.slots.EXPECT().GetByID(gomock.Any(), anchor.SlotID).Return(&anchor, nil)
	m.matcher.EXPECT().Match(gomock.Any(), anchor, models.TypeIndividual).
		Return([]models.SlotDB{anchor, second}, nil)
	m.wallets.EXPECT().GetForUpdate(gomock.Any(), walletID).
		Return(&models.WalletDB{WalletID: walletID, Balance: 149999, Currency: models.UAH}, nil)

	_, err := svc.Book(context.Background(), userID, price, anchor.SlotID, walletID)
	assert.ErrorIs(t, err, services.ErrInsufficientFunds)
}

func TestBookingService_Book_TransactionFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	userID := uuid.New()
	therapistID := uuid.New()
	anchor := slotAt(therapistID, time.Now().UTC(), models.SlotAvailable)
	price := models.PriceDB{TherapistID: therapistID, Amount: 1000, Type: models.TypeIndividual}

	m.clients.EXPECT().Save(gomock.Any(), therapistID, userID).Return(nil)
	m.slots.EXPECT().GetByID(gomock.Any(), anchor.SlotID).Return(nil, errors.New("deadlock detected"))

	_, err := svc.Book(context.Background(), userID, price, anchor.SlotID, uuid.New())
	assert.ErrorIs(t, err, services.ErrBookingFailed)
}

func TestBookingService_Book_ClientUpsertFailureIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBookingService(ctrl)

	userID := uuid.New()
	walletID := uuid.New()
	consultationID := uuid.New()
	therapistID := uuid.New()
	anchorAt := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	anchor := slotAt(therapistID, anchorAt, models.SlotAvailable)
	second := slotAt(therapistID, anchorAt.Add(30*time.Minute), models.SlotAvailable)
	price := models.PriceDB{TherapistID: therapistID, Amount: 1000, Currency: models.UAH, Type: models.TypeIndividual}

	// The relationship upsert failing must not block the booking.
	m.clients.EXPECT().Save(gomock.Any(), therapistID, userID).Return(errors.New("db error"))
	m.slots.EXPECT().GetByID(gomock.Any(), anchor.SlotID).Return(&anchor, nil)
	m.matcher.EXPECT().Match(gomock.Any(), anchor, models.TypeIndividual).
		Return([]models.SlotDB{anchor, second}, nil)
	m.wallets.EXPECT().GetForUpdate(gomock.Any(), walletID).
		Return(&models.WalletDB{WalletID: walletID, Balance: 5000, Currency: models.UAH}, nil)
	m.consults.EXPECT().
		Save(gomock.Any(), userID, therapistID, price.PriceID, models.TypeIndividual).
		Return(consultationID, nil)
	m.slotSaver.EXPECT().UpdateState(gomock.Any(), gomock.Any(), models.SlotBooked).Return(nil)
	m.consults.EXPECT().SaveSlots(gomock.Any(), consultationID, gomock.Any()).Return(nil)
	m.ledger.EXPECT().ApplyOperation(gomock.Any(), gomock.Any()).Return(int64(4000), nil)
	m.publisher.EXPECT().PublishConsultationBooked(gomock.Any(), gomock.Any()).Return(nil)

	consultation, err := svc.Book(context.Background(), userID, price, anchor.SlotID, walletID)
	assert.NoError(t, err)
	assert.Equal(t, consultationID, consultation.ConsultationID)
}
