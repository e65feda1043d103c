package queue

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"ticketBooker/internal/lib/logger/sl"
)

// Publisher sends notification events to RabbitMQ. A nil Publisher is
// valid and drops every message, so callers never need to branch on
// whether the broker is configured.
type Publisher struct {
	url string
	log *slog.Logger
}

func NewPublisher(url string, log *slog.Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// PublishGroupBooking publishes a GroupBookingNotification to the
// booking.notifications queue. Errors are logged and returned so the
// caller can choose to ignore them; the booking itself is already
// committed by the time this runs.
func (p *Publisher) PublishGroupBooking(ctx context.Context, event GroupBookingNotification) error {
	if p == nil {
		return nil
	}

	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("rabbitmq: dial failed", sl.Err(err))
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("rabbitmq: channel open failed", sl.Err(err))
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so messages survive broker restarts. Declaring is idempotent.
	if _, err := ch.QueueDeclare(notificationQueueName, true, false, false, false, nil); err != nil {
		p.log.Error("rabbitmq: queue declare failed", sl.Err(err))
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("rabbitmq: marshal event failed", sl.Err(err))
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", notificationQueueName, false, false, pub); err != nil {
		p.log.Error("rabbitmq: publish failed", sl.Err(err))
		return err
	}

	return nil
}
