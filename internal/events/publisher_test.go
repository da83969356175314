package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

// fakeWriter captures written messages instead of talking to a broker.
type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func TestPublisher_PublishConsultationBooked(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewPublisher(writer)

	ev := ConsultationBooked{
		ConsultationID: uuid.New(),
		UserID:         uuid.New(),
		TherapistID:    uuid.New(),
		StartsAt:       time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC),
	}

	err := publisher.PublishConsultationBooked(context.Background(), ev)

	assert.NoError(t, err)
	assert.Len(t, writer.messages, 1)
	assert.Equal(t, ev.ConsultationID.String(), string(writer.messages[0].Key))

	var env struct {
		Kind       string             `json:"kind"`
		OccurredAt time.Time          `json:"occurred_at"`
		Payload    ConsultationBooked `json:"payload"`
	}
	assert.NoError(t, json.Unmarshal(writer.messages[0].Value, &env))
	assert.Equal(t, KindConsultationBooked, env.Kind)
	assert.False(t, env.OccurredAt.IsZero())
	assert.Equal(t, ev.ConsultationID, env.Payload.ConsultationID)
	assert.True(t, env.Payload.StartsAt.Equal(ev.StartsAt))
}

func TestPublisher_PublishConsultationCancelled(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewPublisher(writer)

	ev := ConsultationCancelled{
		ConsultationID: uuid.New(),
		UserID:         uuid.New(),
		TherapistID:    uuid.New(),
		State:          "CANCELLED_BY_USER_IN_TIME",
		RefundedAmount: 150000,
	}

	err := publisher.PublishConsultationCancelled(context.Background(), ev)

	assert.NoError(t, err)
	assert.Len(t, writer.messages, 1)

	var env struct {
		Kind    string                `json:"kind"`
		Payload ConsultationCancelled `json:"payload"`
	}
	assert.NoError(t, json.Unmarshal(writer.messages[0].Value, &env))
	assert.Equal(t, KindConsultationCancelled, env.Kind)
	assert.Equal(t, int64(150000), env.Payload.RefundedAmount)
}

func TestPublisher_PublishOrderApproved(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewPublisher(writer)

	ev := OrderApproved{
		OrderID:      uuid.New(),
		CheckoutSlug: "slug-1",
		Amount:       150000,
		Currency:     "UAH",
	}

	err := publisher.PublishOrderApproved(context.Background(), ev)

	assert.NoError(t, err)
	assert.Len(t, writer.messages, 1)
	assert.Equal(t, ev.OrderID.String(), string(writer.messages[0].Key))
}

func TestPublisher_NilWriterSkips(t *testing.T) {
	publisher := NewPublisher(nil)

	err := publisher.PublishOrderApproved(context.Background(), OrderApproved{OrderID: uuid.New()})

	assert.NoError(t, err)
}

func TestPublisher_WriteFailureIsSwallowed(t *testing.T) {
	writer := &fakeWriter{err: errors.New("broker unavailable")}
	publisher := NewPublisher(writer)

	err := publisher.PublishConsultationBooked(context.Background(), ConsultationBooked{ConsultationID: uuid.New()})

	assert.NoError(t, err)
	assert.Empty(t, writer.messages)
}
