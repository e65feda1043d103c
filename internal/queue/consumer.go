package queue

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"ticketBooker/internal/lib/logger/sl"
)

// StartNotificationConsumer connects to RabbitMQ and consumes
// booking.notifications, logging one confirmation line per recipient.
// It runs a reconnect loop with backoff and never returns under normal
// operation; run it in its own goroutine.
func StartNotificationConsumer(url string, log *slog.Logger) {
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Error("notification-consumer: failed to dial broker",
				sl.Err(err), slog.Duration("retry_in", backoff))
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		if err := consumeLoop(conn, log); err != nil {
			log.Error("notification-consumer: consume loop ended", sl.Err(err))
			_ = conn.Close()
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection, log *slog.Logger) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(notificationQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(notificationQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleNotification(d.Body, log); err != nil {
			log.Error("notification-consumer: handle message failed", sl.Err(err))
			_ = d.Nack(false, false)
			continue
		}
		_ = d.Ack(false)
	}

	return fmt.Errorf("delivery channel closed")
}

func handleNotification(body []byte, log *slog.Logger) error {
	var event GroupBookingNotification
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal notification: %w", err)
	}

	for _, email := range event.Emails {
		log.Info("sending booking confirmation",
			slog.String("email", email),
			slog.String("event_id", event.EventID),
			slog.String("event_title", event.EventTitle),
			slog.String("total_price", event.TotalPrice),
		)
	}

	return nil
}
