package events

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// BookingNotifier sends notifications for newly received bookings. Satisfied
// by the notification mailer.
type BookingNotifier interface {
	NotifyBookingReceived(ctx context.Context, evt BookingReceivedEvent) error
}

// NotificationConsumer listens to booking events and triggers customer and
// operator emails. Notification is best-effort: a failed send is logged and
// the message is committed anyway, so booking creation is never blocked or
// rolled back by mail trouble.
type NotificationConsumer struct {
	consumer *Consumer
	notifier BookingNotifier
	logger   *zap.Logger
}

// NewNotificationConsumer creates a NotificationConsumer.
func NewNotificationConsumer(
	brokers []string,
	groupID string,
	notifier BookingNotifier,
	logger *zap.Logger,
) *NotificationConsumer {
	consumer := NewConsumer(brokers, groupID, TopicBookingEvents, logger)
	return &NotificationConsumer{
		consumer: consumer,
		notifier: notifier,
		logger:   logger,
	}
}

// Start begins consuming booking events. This blocks until the context is cancelled.
func (c *NotificationConsumer) Start(ctx context.Context) error {
	return c.consumer.Consume(ctx, c.handleMessage)
}

// Close closes the underlying Kafka consumer.
func (c *NotificationConsumer) Close() error {
	return c.consumer.Close()
}

func (c *NotificationConsumer) handleMessage(ctx context.Context, msg kafkago.Message) error {
	var cloudEvent CloudEvent
	if err := json.Unmarshal(msg.Value, &cloudEvent); err != nil {
		c.logger.Error("failed to parse cloud event from booking topic",
			zap.Error(err),
			zap.String("raw", string(msg.Value)),
		)
		return nil // Don't retry malformed messages
	}

	switch cloudEvent.Type {
	case BookingReceived:
		return c.handleBookingReceived(ctx, cloudEvent)
	default:
		c.logger.Debug("ignoring unhandled booking event type",
			zap.String("type", cloudEvent.Type),
		)
		return nil
	}
}

func (c *NotificationConsumer) handleBookingReceived(ctx context.Context, cloudEvent CloudEvent) error {
	var evt BookingReceivedEvent
	if err := cloudEvent.ParseData(&evt); err != nil {
		c.logger.Error("failed to parse BookingReceivedEvent data",
			zap.Error(err),
		)
		return nil // Don't retry malformed data
	}

	if err := c.notifier.NotifyBookingReceived(ctx, evt); err != nil {
		c.logger.Error("failed to send booking notifications",
			zap.String("booking_id", evt.BookingID.String()),
			zap.Error(err),
		)
		return nil // Best-effort: commit and move on
	}

	c.logger.Info("booking notifications dispatched",
		zap.String("booking_id", evt.BookingID.String()),
	)
	return nil
}
