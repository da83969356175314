package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/therapease/therapy-booking/internal/logger"
)

// Event kinds
const (
	KindConsultationBooked    = "ConsultationBooked"
	KindConsultationCancelled = "ConsultationCancelled"
	KindOrderApproved         = "OrderApproved"
)

// ConsultationBooked is emitted after a booking transaction commits.
// A separate consumer delivers the therapist and operator notifications.
type ConsultationBooked struct {
	ConsultationID uuid.UUID `json:"consultation_id"`
	UserID         uuid.UUID `json:"user_id"`
	TherapistID    uuid.UUID `json:"therapist_id"`
	StartsAt       time.Time `json:"starts_at"`
}

// ConsultationCancelled is emitted after a cancellation commits.
type ConsultationCancelled struct {
	ConsultationID uuid.UUID `json:"consultation_id"`
	UserID         uuid.UUID `json:"user_id"`
	TherapistID    uuid.UUID `json:"therapist_id"`
	State          string    `json:"state"`
	RefundedAmount int64     `json:"refunded_amount"`
}

// OrderApproved is emitted after a payment approval commits.
type OrderApproved struct {
	OrderID      uuid.UUID `json:"order_id"`
	CheckoutSlug string    `json:"checkout_slug"`
	Amount       int64     `json:"amount"`
	Currency     string    `json:"currency"`
}

// envelope wraps every published event with its kind and emission time.
type envelope struct {
	Kind       string    `json:"kind"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// Publisher emits domain events to Kafka. Publishing is fire-and-forget:
// failures are logged and swallowed, they never affect the committed
// business transaction.
type Publisher struct {
	writer KafkaWriter
}

// NewPublisher creates a new Publisher. A nil writer disables publishing.
func NewPublisher(writer KafkaWriter) *Publisher {
	return &Publisher{writer: writer}
}

func (p *Publisher) publish(ctx context.Context, kind, key string, payload any) error {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "kind", kind, "key", key)
		return nil
	}

	data, err := json.Marshal(envelope{Kind: kind, OccurredAt: time.Now().UTC(), Payload: payload})
	if err != nil {
		logger.Log.Errorw("Failed to marshal event", "kind", kind, "key", key, "error", err)
		return nil
	}

	msg := kafka.Message{
		Key:   []byte(key),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event", "kind", kind, "key", key, "error", err)
	} else {
		logger.Log.Infow("Event published", "kind", kind, "key", key)
	}
	return nil
}

// PublishConsultationBooked emits a ConsultationBooked event.
func (p *Publisher) PublishConsultationBooked(ctx context.Context, ev ConsultationBooked) error {
	return p.publish(ctx, KindConsultationBooked, ev.ConsultationID.String(), ev)
}

// PublishConsultationCancelled emits a ConsultationCancelled event.
func (p *Publisher) PublishConsultationCancelled(ctx context.Context, ev ConsultationCancelled) error {
	return p.publish(ctx, KindConsultationCancelled, ev.ConsultationID.String(), ev)
}

// PublishOrderApproved emits an OrderApproved event.
func (p *Publisher) PublishOrderApproved(ctx context.Context, ev OrderApproved) error {
	return p.publish(ctx, KindOrderApproved, ev.OrderID.String(), ev)
}
