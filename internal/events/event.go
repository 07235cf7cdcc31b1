// Package events publishes booking lifecycle notifications for downstream
// consumers. Delivery is best effort and never affects the booking itself.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	Source = "shareit"

	BookingCreated = "booking.created"
	BookingDecided = "booking.decided"
)

// Event is the envelope written to the broker.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Source     string          `json:"source"`
	OccurredAt time.Time       `json:"occurredAt"`
	Key        string          `json:"-"`
	Data       json.RawMessage `json:"data"`
}

// BookingPayload is the data carried by booking.* events.
type BookingPayload struct {
	BookingID int64     `json:"bookingId"`
	ItemID    int64     `json:"itemId"`
	BookerID  int64     `json:"bookerId"`
	OwnerID   int64     `json:"ownerId"`
	Status    string    `json:"status"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
}

func NewBookingEvent(eventType string, payload BookingPayload, occurredAt time.Time) (Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}

	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Source:     Source,
		OccurredAt: occurredAt.UTC(),
		Key:        fmt.Sprintf("%d", payload.BookingID),
		Data:       data,
	}, nil
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
	Close() error
}

// NoopPublisher drops every event. Used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }

func (NoopPublisher) Close() error { return nil }
