package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/therapease/therapy-booking/internal/models"
	"github.com/therapease/therapy-booking/internal/services"
)

type cancellationMocks struct {
	tx           *services.MockTxRunner
	consults     *services.MockConsultationReader
	consultSaver *services.MockConsultationStateWriter
	slotSaver    *services.MockBookingSlotWriter
	prices       *services.MockCancellationPriceReader
	wallets      *services.MockCancellationWalletReader
	ledger       *services.MockLedger
	publisher    *services.MockCancelledPublisher
}

func newCancellationService(ctrl *gomock.Controller) (*services.CancellationService, cancellationMocks) {
	m := cancellationMocks{
		tx:           services.NewMockTxRunner(ctrl),
		consults:     services.NewMockConsultationReader(ctrl),
		consultSaver: services.NewMockConsultationStateWriter(ctrl),
		slotSaver:    services.NewMockBookingSlotWriter(ctrl),
		prices:       services.NewMockCancellationPriceReader(ctrl),
		wallets:      services.NewMockCancellationWalletReader(ctrl),
		ledger:       services.NewMockLedger(ctrl),
		publisher:    services.NewMockCancelledPublisher(ctrl),
	}
	passthroughTx(m.tx)
	svc := services.NewCancellationService(
		m.tx, m.consults, m.consultSaver, m.slotSaver,
		m.prices, m.wallets, m.ledger, m.publisher,
	)
	return svc, m
}

func TestCancellationService_PolicyMatrix(t *testing.T) {
	tests := []struct {
		name          string
		initiator     services.Initiator
		startsIn      time.Duration
		wantState     models.ConsultationState
		wantSlotState models.SlotState
		wantRefund    bool
		wantPenalty   bool
	}{
		{
			name:          "user cancels in time",
			initiator:     services.InitiatedByUser,
			startsIn:      48 * time.Hour,
			wantState:     models.ConsultationCancelledByUserInTime,
			wantSlotState: models.SlotAvailable,
			wantRefund:    true,
		},
		{
			name:          "user cancels late",
			initiator:     services.InitiatedByUser,
			startsIn:      time.Hour,
			wantState:     models.ConsultationCancelledByUserNotInTime,
			wantSlotState: models.SlotAvailable,
			wantRefund:    false,
		},
		{
			name:          "therapist cancels in time",
			initiator:     services.InitiatedByTherapist,
			startsIn:      48 * time.Hour,
			wantState:     models.ConsultationCancelledByTherapistInTime,
			wantSlotState: models.SlotUnavailable,
			wantRefund:    true,
		},
		{
			name:          "therapist cancels late pays double",
			initiator:     services.InitiatedByTherapist,
			startsIn:      time.Hour,
			wantState:     models.ConsultationCancelledByTherapistNotInTime,
			wantSlotState: models.SlotUnavailable,
			wantRefund:    true,
			wantPenalty:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, m := newCancellationService(ctrl)

			userID := uuid.New()
			therapistID := uuid.New()
			consultationID := uuid.New()
			walletID := uuid.New()
			priceID := uuid.New()

			actorID := userID
			if tt.initiator == services.InitiatedByTherapist {
				actorID = therapistID
			}

			consultation := &models.ConsultationDB{
				ConsultationID: consultationID,
				UserID:         userID,
				TherapistID:    therapistID,
				PriceID:        priceID,
				Type:           models.TypeIndividual,
				State:          models.ConsultationCreated,
			}

			startAt := time.Now().Add(tt.startsIn)
			slots := []models.SlotDB{
				slotAt(therapistID, startAt, models.SlotBooked),
				slotAt(therapistID, startAt.Add(30*time.Minute), models.SlotBooked),
			}

			m.consults.EXPECT().GetByID(gomock.Any(), consultationID).Return(consultation, nil)
			m.consults.EXPECT().ListSlots(gomock.Any(), consultationID).Return(slots, nil)
			m.consultSaver.EXPECT().UpdateState(gomock.Any(), consultationID, tt.wantState).Return(nil)
			m.slotSaver.EXPECT().
				UpdateState(gomock.Any(), []uuid.UUID{slots[0].SlotID, slots[1].SlotID}, tt.wantSlotState).
				Return(nil)

			if tt.wantRefund {
				price := &models.PriceDB{PriceID: priceID, Amount: 150000, Currency: models.UAH}
				wallet := &models.WalletDB{WalletID: walletID, UserID: userID, Currency: models.UAH}
				m.prices.EXPECT().GetByID(gomock.Any(), priceID).Return(price, nil)
				m.wallets.EXPECT().GetByUserID(gomock.Any(), userID).Return(wallet, nil)
				m.wallets.EXPECT().GetForUpdate(gomock.Any(), walletID).Return(wallet, nil)

				m.ledger.EXPECT().
					ApplyOperation(gomock.Any(), models.WalletOperationDB{
						WalletID:  walletID,
						Amount:    150000,
						Currency:  models.UAH,
						Direction: models.DirectionAdd,
						Reason:    models.ReasonCancelledConsultation,
						ReasonID:  consultationID,
					}).
					Return(int64(150000), nil)

				if tt.wantPenalty {
					m.ledger.EXPECT().
						ApplyOperation(gomock.Any(), models.WalletOperationDB{
							WalletID:  walletID,
							Amount:    150000,
							Currency:  models.UAH,
							Direction: models.DirectionAdd,
							Reason:    models.ReasonCancelledNotInTimePenalty,
							ReasonID:  consultationID,
						}).
						Return(int64(300000), nil)
				}
			}

			m.publisher.EXPECT().PublishConsultationCancelled(gomock.Any(), gomock.Any()).Return(nil)

			state, err := svc.Cancel(context.Background(), actorID, consultationID, tt.initiator)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantState, state)
		})
	}
}

func TestCancellationService_Cancel_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCancellationService(ctrl)

	consultationID := uuid.New()
	m.consults.EXPECT().GetByID(gomock.Any(), consultationID).Return(nil, nil)

	_, err := svc.Cancel(context.Background(), uuid.New(), consultationID, services.InitiatedByUser)
	assert.ErrorIs(t, err, services.ErrConsultationNotFound)
}

func TestCancellationService_Cancel_WrongActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCancellationService(ctrl)

	consultation := &models.ConsultationDB{
		ConsultationID: uuid.New(),
		UserID:         uuid.New(),
		TherapistID:    uuid.New(),
		State:          models.ConsultationCreated,
	}

	m.consults.EXPECT().GetByID(gomock.Any(), consultation.ConsultationID).
		Return(consultation, nil).Times(2)

	// A stranger cannot cancel as the user
	_, err := svc.Cancel(context.Background(), uuid.New(), consultation.ConsultationID, services.InitiatedByUser)
	assert.ErrorIs(t, err, services.ErrNotAllowed)

	// The client cannot cancel on the therapist's behalf
	_, err = svc.Cancel(context.Background(), consultation.UserID, consultation.ConsultationID, services.InitiatedByTherapist)
	assert.ErrorIs(t, err, services.ErrNotAllowed)
}

func TestCancellationService_Cancel_AlreadyCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newCancellationService(ctrl)

	userID := uuid.New()
	consultation := &models.ConsultationDB{
		ConsultationID: uuid.New(),
		UserID:         userID,
		TherapistID:    uuid.New(),
		State:          models.ConsultationCancelledByUserInTime,
	}

	m.consults.EXPECT().GetByID(gomock.Any(), consultation.ConsultationID).Return(consultation, nil)

	_, err := svc.Cancel(context.Background(), userID, consultation.ConsultationID, services.InitiatedByUser)
	assert.ErrorIs(t, err, services.ErrNotCancellable)
}

func TestCancellationService_Cancel_MissingRefundRows(t *testing.T) {
	userID := uuid.New()
	therapistID := uuid.New()
	consultationID := uuid.New()
	priceID := uuid.New()

	consultation := &models.ConsultationDB{
		ConsultationID: consultationID,
		UserID:         userID,
		TherapistID:    therapistID,
		PriceID:        priceID,
		Type:           models.TypeIndividual,
		State:          models.ConsultationCreated,
	}
	startAt := time.Now().Add(48 * time.Hour)

	expectUntilRefund := func(m cancellationMocks) {
		slots := []models.SlotDB{slotAt(therapistID, startAt, models.SlotBooked)}
		m.consults.EXPECT().GetByID(gomock.Any(), consultationID).Return(consultation, nil)
		m.consults.EXPECT().ListSlots(gomock.Any(), consultationID).Return(slots, nil)
		m.consultSaver.EXPECT().
			UpdateState(gomock.Any(), consultationID, models.ConsultationCancelledByUserInTime).
			Return(nil)
		m.slotSaver.EXPECT().
			UpdateState(gomock.Any(), []uuid.UUID{slots[0].SlotID}, models.SlotAvailable).
			Return(nil)
	}

	t.Run("price row gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCancellationService(ctrl)

		expectUntilRefund(m)
		m.prices.EXPECT().GetByID(gomock.Any(), priceID).Return(nil, nil)

		_, err := svc.Cancel(context.Background(), userID, consultationID, services.InitiatedByUser)
		assert.ErrorIs(t, err, services.ErrCancellationFailed)
	})

	t.Run("wallet row gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newCancellationService(ctrl)

		expectUntilRefund(m)
		price := &models.PriceDB{PriceID: priceID, Amount: 150000, Currency: models.UAH}
		m.prices.EXPECT().GetByID(gomock.Any(), priceID).Return(price, nil)
		m.wallets.EXPECT().GetByUserID(gomock.Any(), userID).Return(nil, nil)

		_, err := svc.Cancel(context.Background(), userID, consultationID, services.InitiatedByUser)
		assert.ErrorIs(t, err, services.ErrCancellationFailed)
	})
}
