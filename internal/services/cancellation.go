package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/events"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

var (
	// ErrConsultationNotFound is returned when the consultation does not exist.
	ErrConsultationNotFound = errors.New("consultation not found")

	// ErrNotCancellable is returned when the consultation is not in a
	// cancellable state.
	ErrNotCancellable = errors.New("consultation is not cancellable")

	// ErrNotAllowed is returned when the acting identity is not a party to
	// the consultation it tries to cancel.
	ErrNotAllowed = errors.New("not allowed to cancel this consultation")

	// ErrCancellationFailed is returned when the cancellation transaction
	// rolled back for a non-business reason. It is retryable.
	ErrCancellationFailed = errors.New("cancellation failed")
)

// Initiator tells which party cancels a consultation.
type Initiator string

// Cancellation initiators
const (
	InitiatedByUser      Initiator = "USER"
	InitiatedByTherapist Initiator = "THERAPIST"
)

// CancellationCutoff separates "in time" from "not in time" cancellations.
const CancellationCutoff = 24 * time.Hour

// ConsultationReader reads consultations and their slots.
type ConsultationReader interface {
	GetByID(ctx context.Context, consultationID uuid.UUID) (*models.ConsultationDB, error)
	ListSlots(ctx context.Context, consultationID uuid.UUID) ([]models.SlotDB, error)
}

// ConsultationStateWriter moves a consultation between states.
type ConsultationStateWriter interface {
	UpdateState(ctx context.Context, consultationID uuid.UUID, state models.ConsultationState) error
}

// CancellationPriceReader reads the price a consultation was booked at.
type CancellationPriceReader interface {
	GetByID(ctx context.Context, priceID uuid.UUID) (*models.PriceDB, error)
}

// CancellationWalletReader locates the client's wallet.
type CancellationWalletReader interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.WalletDB, error)
	GetForUpdate(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
}

// CancelledPublisher emits the post-commit cancellation event.
type CancelledPublisher interface {
	PublishConsultationCancelled(ctx context.Context, ev events.ConsultationCancelled) error
}

// CancellationService applies the cancellation policy. The cutoff is 24
// hours before the earliest linked slot. User cancellations free the slots
// back to AVAILABLE; therapist cancellations park them UNAVAILABLE. A late
// user cancellation forfeits the refund; a late therapist cancellation
// credits the refund plus a penalty operation of the same amount, so the
// client is compensated double.
type CancellationService struct {
	tx           TxRunner
	consults     ConsultationReader
	consultSaver ConsultationStateWriter
	slotSaver    BookingSlotWriter
	prices       CancellationPriceReader
	wallets      CancellationWalletReader
	ledger       Ledger
	publisher    CancelledPublisher

	now func() time.Time
}

// NewCancellationService creates a new CancellationService.
func NewCancellationService(
	tx TxRunner,
	consults ConsultationReader,
	consultSaver ConsultationStateWriter,
	slotSaver BookingSlotWriter,
	prices CancellationPriceReader,
	wallets CancellationWalletReader,
	ledger Ledger,
	publisher CancelledPublisher,
) *CancellationService {
	return &CancellationService{
		tx:           tx,
		consults:     consults,
		consultSaver: consultSaver,
		slotSaver:    slotSaver,
		prices:       prices,
		wallets:      wallets,
		ledger:       ledger,
		publisher:    publisher,
		now:          time.Now,
	}
}

// outcome is the cancellation policy matrix row for one initiator/timing pair.
type outcome struct {
	state     models.ConsultationState
	slotState models.SlotState
	refund    bool
	penalty   bool
}

func policyOutcome(initiator Initiator, inTime bool) outcome {
	switch {
	case initiator == InitiatedByUser && inTime:
		return outcome{models.ConsultationCancelledByUserInTime, models.SlotAvailable, true, false}
	case initiator == InitiatedByUser:
		return outcome{models.ConsultationCancelledByUserNotInTime, models.SlotAvailable, false, false}
	case inTime:
		return outcome{models.ConsultationCancelledByTherapistInTime, models.SlotUnavailable, true, false}
	default:
		return outcome{models.ConsultationCancelledByTherapistNotInTime, models.SlotUnavailable, true, true}
	}
}

// Cancel cancels the consultation on behalf of the acting identity and
// returns its final state. The actor must be the consultation's client
// (user-initiated) or its therapist (therapist-initiated). All slot,
// consultation and ledger mutations happen in one transaction.
func (s *CancellationService) Cancel(ctx context.Context, actorID, consultationID uuid.UUID, initiator Initiator) (models.ConsultationState, error) {
	var (
		consultation *models.ConsultationDB
		result       outcome
		refunded     int64
	)

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		consultation, err = s.consults.GetByID(ctx, consultationID)
		if err != nil {
			return err
		}
		if consultation == nil {
			return ErrConsultationNotFound
		}
		if initiator == InitiatedByUser && consultation.UserID != actorID {
			return ErrNotAllowed
		}
		if initiator == InitiatedByTherapist && consultation.TherapistID != actorID {
			return ErrNotAllowed
		}
		if consultation.State != models.ConsultationCreated {
			return ErrNotCancellable
		}

		slots, err := s.consults.ListSlots(ctx, consultationID)
		if err != nil {
			return err
		}
		if len(slots) == 0 {
			return ErrNotCancellable
		}

		timeToStart := slots[0].AvailableAt.Sub(s.now())
		result = policyOutcome(initiator, timeToStart >= CancellationCutoff)

		if err := s.consultSaver.UpdateState(ctx, consultationID, result.state); err != nil {
			return err
		}

		slotIDs := make([]uuid.UUID, 0, len(slots))
		for _, slot := range slots {
			slotIDs = append(slotIDs, slot.SlotID)
		}
		if err := s.slotSaver.UpdateState(ctx, slotIDs, result.slotState); err != nil {
			return err
		}

		if !result.refund {
			return nil
		}

		price, err := s.prices.GetByID(ctx, consultation.PriceID)
		if err != nil {
			return err
		}
		if price == nil {
			return fmt.Errorf("price %s not found for consultation %s", consultation.PriceID, consultationID)
		}
		wallet, err := s.wallets.GetByUserID(ctx, consultation.UserID)
		if err != nil {
			return err
		}
		if wallet == nil {
			return fmt.Errorf("wallet not found for user %s", consultation.UserID)
		}
		if _, err := s.wallets.GetForUpdate(ctx, wallet.WalletID); err != nil {
			return err
		}

		if _, err := s.ledger.ApplyOperation(ctx, models.WalletOperationDB{
			WalletID:  wallet.WalletID,
			Amount:    price.Amount,
			Currency:  price.Currency,
			Direction: models.DirectionAdd,
			Reason:    models.ReasonCancelledConsultation,
			ReasonID:  consultationID,
		}); err != nil {
			return err
		}
		refunded = price.Amount

		if result.penalty {
			if _, err := s.ledger.ApplyOperation(ctx, models.WalletOperationDB{
				WalletID:  wallet.WalletID,
				Amount:    price.Amount,
				Currency:  price.Currency,
				Direction: models.DirectionAdd,
				Reason:    models.ReasonCancelledNotInTimePenalty,
				ReasonID:  consultationID,
			}); err != nil {
				return err
			}
			refunded += price.Amount
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrConsultationNotFound) || errors.Is(err, ErrNotCancellable) || errors.Is(err, ErrNotAllowed) {
			return "", err
		}
		logger.Log.Errorw("cancellation transaction failed", "consultationID", consultationID, "initiator", initiator, "error", err)
		return "", errors.Join(ErrCancellationFailed, err)
	}

	// Post-commit, best-effort.
	s.publisher.PublishConsultationCancelled(ctx, events.ConsultationCancelled{
		ConsultationID: consultationID,
		UserID:         consultation.UserID,
		TherapistID:    consultation.TherapistID,
		State:          string(result.state),
		RefundedAmount: refunded,
	})

	return result.state, nil
}
