package services

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/therapease/therapy-booking/internal/events"
	"github.com/therapease/therapy-booking/internal/logger"
	"github.com/therapease/therapy-booking/internal/models"
)

// ErrBookingFailed is returned when the booking transaction rolled back for
// a non-business reason (constraint violation, deadlock). It is retryable.
var ErrBookingFailed = errors.New("booking failed")

// TxRunner runs a unit of work inside a database transaction. A nested call
// joins the transaction already in the context.
type TxRunner interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// BookingSlotReader reads slots for booking.
type BookingSlotReader interface {
	GetByID(ctx context.Context, slotID uuid.UUID) (*models.SlotDB, error)
}

// BookingSlotWriter mutates slot states.
type BookingSlotWriter interface {
	UpdateState(ctx context.Context, slotIDs []uuid.UUID, state models.SlotState) error
}

// BookingMatcher finds the slot set for an anchor.
type BookingMatcher interface {
	Match(ctx context.Context, anchor models.SlotDB, consultationType models.ConsultationType) ([]models.SlotDB, error)
}

// ConsultationWriter creates consultations and their slot links.
type ConsultationWriter interface {
	Save(ctx context.Context, userID, therapistID, priceID uuid.UUID, consultationType models.ConsultationType) (uuid.UUID, error)
	SaveSlots(ctx context.Context, consultationID uuid.UUID, slotIDs []uuid.UUID) error
}

// Ledger is the wallet ledger mutator.
type Ledger interface {
	ApplyOperation(ctx context.Context, op models.WalletOperationDB) (int64, error)
}

// WalletLocker locks a wallet row for a read-then-write sequence.
type WalletLocker interface {
	GetForUpdate(ctx context.Context, walletID uuid.UUID) (*models.WalletDB, error)
}

// ClientWriter records the therapist-client relationship.
type ClientWriter interface {
	Save(ctx context.Context, therapistID, userID uuid.UUID) error
}

// BookedPublisher emits the post-commit booking event.
type BookedPublisher interface {
	PublishConsultationBooked(ctx context.Context, ev events.ConsultationBooked) error
}

// BookingService runs the booking transaction: match slots, create the
// consultation, mark the slots booked, debit the wallet, all atomically.
// A consultation exists if and only if its slots are BOOKED and exactly one
// matching debit exists in the ledger.
type BookingService struct {
	tx        TxRunner
	slots     BookingSlotReader
	slotSaver BookingSlotWriter
	matcher   BookingMatcher
	consults  ConsultationWriter
	ledger    Ledger
	wallets   WalletLocker
	clients   ClientWriter
	publisher BookedPublisher
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	tx TxRunner,
	slots BookingSlotReader,
	slotSaver BookingSlotWriter,
	matcher BookingMatcher,
	consults ConsultationWriter,
	ledger Ledger,
	wallets WalletLocker,
	clients ClientWriter,
	publisher BookedPublisher,
) *BookingService {
	return &BookingService{
		tx:        tx,
		slots:     slots,
		slotSaver: slotSaver,
		matcher:   matcher,
		consults:  consults,
		ledger:    ledger,
		wallets:   wallets,
		clients:   clients,
		publisher: publisher,
	}
}

// Book books a consultation at the price against the anchor slot, funded by
// the wallet. Business misses come back as ErrNoSlotMatch or
// ErrInsufficientFunds with nothing written; any other failure rolls the
// whole transaction back and surfaces as ErrBookingFailed.
func (s *BookingService) Book(ctx context.Context, userID uuid.UUID, price models.PriceDB, anchorSlotID, walletID uuid.UUID) (*models.ConsultationDB, error) {
	consultation, booked, err := s.BookInTx(ctx, userID, price, anchorSlotID, walletID)
	if err != nil {
		return nil, err
	}

	// Post-commit, best-effort: the publisher logs and swallows failures.
	s.publisher.PublishConsultationBooked(ctx, booked)

	return consultation, nil
}

// BookInTx runs the booking transaction and returns the booked event without
// emitting it. Called inside an open transaction it joins that transaction,
// so the caller must hold the event until its own commit before publishing.
func (s *BookingService) BookInTx(ctx context.Context, userID uuid.UUID, price models.PriceDB, anchorSlotID, walletID uuid.UUID) (*models.ConsultationDB, events.ConsultationBooked, error) {
	// The relationship record is an idempotent upsert and not part of the
	// money transaction.
	if err := s.clients.Save(ctx, price.TherapistID, userID); err != nil {
		logger.Log.Errorw("failed to upsert therapist client", "therapistID", price.TherapistID, "userID", userID, "error", err)
	}

	var (
		consultation models.ConsultationDB
		matched      []models.SlotDB
	)

	err := s.tx.Do(ctx, func(ctx context.Context) error {
		anchor, err := s.slots.GetByID(ctx, anchorSlotID)
		if err != nil {
			return err
		}
		if anchor == nil {
			return ErrNoSlotMatch
		}

		matched, err = s.matcher.Match(ctx, *anchor, price.Type)
		if err != nil {
			return err
		}

		wallet, err := s.wallets.GetForUpdate(ctx, walletID)
		if err != nil {
			return err
		}
		if wallet.Balance < price.Amount {
			return ErrInsufficientFunds
		}

		consultationID, err := s.consults.Save(ctx, userID, price.TherapistID, price.PriceID, price.Type)
		if err != nil {
			return err
		}

		slotIDs := make([]uuid.UUID, 0, len(matched))
		for _, slot := range matched {
			slotIDs = append(slotIDs, slot.SlotID)
		}
		if err := s.slotSaver.UpdateState(ctx, slotIDs, models.SlotBooked); err != nil {
			return err
		}
		if err := s.consults.SaveSlots(ctx, consultationID, slotIDs); err != nil {
			return err
		}

		if _, err := s.ledger.ApplyOperation(ctx, models.WalletOperationDB{
			WalletID:  walletID,
			Amount:    price.Amount,
			Currency:  price.Currency,
			Direction: models.DirectionSubtract,
			Reason:    models.ReasonCreatedConsultation,
			ReasonID:  consultationID,
		}); err != nil {
			return err
		}

		consultation = models.ConsultationDB{
			ConsultationID: consultationID,
			UserID:         userID,
			TherapistID:    price.TherapistID,
			PriceID:        price.PriceID,
			Type:           price.Type,
			State:          models.ConsultationCreated,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoSlotMatch) || errors.Is(err, ErrInsufficientFunds) {
			return nil, events.ConsultationBooked{}, err
		}
		logger.Log.Errorw("booking transaction failed", "userID", userID, "anchorSlotID", anchorSlotID, "error", err)
		return nil, events.ConsultationBooked{}, errors.Join(ErrBookingFailed, err)
	}

	booked := events.ConsultationBooked{
		ConsultationID: consultation.ConsultationID,
		UserID:         userID,
		TherapistID:    price.TherapistID,
		StartsAt:       matched[0].AvailableAt,
	}

	return &consultation, booked, nil
}
