// Package service holds cross-cutting application services that sit
// between handlers and external systems.
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/HITENDRAS940/turf-booking-api/internal/logger"
	"github.com/HITENDRAS940/turf-booking-api/internal/queue"
)

// PublishBookingEvent publishes a BookingEvent to the named queue
// ("booking.confirmed" or "booking.cancelled"). Messages are marked
// persistent and the queue is declared durable so events survive
// broker restarts. Any error is logged and returned; callers treat
// publishing as best-effort and never fail the request over it.
func PublishBookingEvent(ctx context.Context, queueName string, event queue.BookingEvent) error {
	conn, err := amqp.Dial(queue.BrokerURL())
	if err != nil {
		logger.L().Warnw("rabbitmq: dial failed", "err", err)
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		logger.L().Warnw("rabbitmq: channel open failed", "err", err)
		return err
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		logger.L().Warnw("rabbitmq: queue declare failed", "queue", queueName, "err", err)
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		logger.L().Warnw("rabbitmq: marshal event failed", "err", err)
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		logger.L().Warnw("rabbitmq: publish failed", "queue", queueName, "err", err)
		return err
	}
	return nil
}
