package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Topic and event type constants for the booking event stream.
const (
	TopicBookingEvents = "booking.events"

	BookingReceived      = "booking.received"
	BookingStatusChanged = "booking.status_changed"
	BookingDeleted       = "booking.deleted"
)

// CloudEvent is the envelope every published event is wrapped in.
type CloudEvent struct {
	ID     string          `json:"id"`
	Source string          `json:"source"`
	Type   string          `json:"type"`
	Time   time.Time       `json:"time"`
	Data   json.RawMessage `json:"data"`
}

// NewCloudEvent wraps the given payload in a CloudEvent envelope.
func NewCloudEvent(source, eventType string, data interface{}) (CloudEvent, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return CloudEvent{}, fmt.Errorf("failed to marshal event data: %w", err)
	}
	return CloudEvent{
		ID:     uuid.New().String(),
		Source: source,
		Type:   eventType,
		Time:   time.Now().UTC(),
		Data:   payload,
	}, nil
}

// ParseCloudEvent decodes a CloudEvent from raw bytes.
func ParseCloudEvent(raw []byte) (CloudEvent, error) {
	var ce CloudEvent
	if err := json.Unmarshal(raw, &ce); err != nil {
		return CloudEvent{}, fmt.Errorf("failed to parse cloud event: %w", err)
	}
	return ce, nil
}

// ParseData decodes the event payload into the given target.
func (e CloudEvent) ParseData(target interface{}) error {
	return json.Unmarshal(e.Data, target)
}

// BookingReceivedEvent is published when a customer submits a booking.
type BookingReceivedEvent struct {
	BookingID       uuid.UUID   `json:"booking_id"`
	BookingNumber   string      `json:"booking_number"`
	Mode            string      `json:"mode"`
	PackageID       *uuid.UUID  `json:"package_id,omitempty"`
	ServiceIDs      []uuid.UUID `json:"service_ids,omitempty"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	CustomerPhone   string      `json:"customer_phone"`
	Guests          int         `json:"guests"`
	CheckIn         time.Time   `json:"check_in"`
	CheckOut        time.Time   `json:"check_out"`
	TotalPriceCents int64       `json:"total_price_cents"`
	Currency        string      `json:"currency"`
	SpecialRequests string      `json:"special_requests,omitempty"`
	OccurredAt      time.Time   `json:"occurred_at"`
}

// BookingStatusChangedEvent is published on every lifecycle transition.
type BookingStatusChangedEvent struct {
	BookingID     uuid.UUID `json:"booking_id"`
	BookingNumber string    `json:"booking_number"`
	FromStatus    string    `json:"from_status"`
	ToStatus      string    `json:"to_status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BookingDeletedEvent is published when an administrator hard-deletes a booking.
type BookingDeletedEvent struct {
	BookingID  uuid.UUID `json:"booking_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
