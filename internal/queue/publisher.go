package queue

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog"

	"github.com/iliyamo/hotel-reservation/internal/booking"
)

// queueName is the durable queue every reservation event lands on.
const queueName = "reservation.events"

// Publisher emits reservation events to RabbitMQ.  Publication is fire
// and forget: any broker failure is logged and swallowed so the request
// that triggered the event still succeeds.  Publisher implements
// booking.EventPublisher.
type Publisher struct {
	url string
	log zerolog.Logger
}

// NewPublisher returns a Publisher targeting the given AMQP URL.
func NewPublisher(url string, log zerolog.Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// ReservationCreated publishes a reservation.created event.
func (p *Publisher) ReservationCreated(ctx context.Context, view booking.ReservationView) {
	p.publish(ctx, eventFromView(EventReservationCreated, view))
}

// ReservationUpdated publishes a reservation.updated event.
func (p *Publisher) ReservationUpdated(ctx context.Context, view booking.ReservationView) {
	p.publish(ctx, eventFromView(EventReservationUpdated, view))
}

// ReservationCancelled publishes a reservation.cancelled event.
func (p *Publisher) ReservationCancelled(ctx context.Context, id int64) {
	p.publish(ctx, ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          EventReservationCancelled,
		ReservationID: id,
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	})
}

func eventFromView(eventType string, view booking.ReservationView) ReservationEvent {
	return ReservationEvent{
		EventID:       uuid.NewString(),
		Type:          eventType,
		ReservationID: view.ID,
		ClientID:      view.Client.ID,
		RoomID:        view.Room.ID,
		StartDate:     view.StartDate.String(),
		EndDate:       view.EndDate.String(),
		OccurredAt:    time.Now().UTC().Format(time.RFC3339),
	}
}

// publish dials the broker, declares the durable queue and sends the
// event as a persistent JSON message.  Every failure is logged and
// dropped.
func (p *Publisher) publish(ctx context.Context, event ReservationEvent) {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Warn().Err(err).Str("event", event.Type).Msg("rabbitmq: dial failed")
		return
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Warn().Err(err).Str("event", event.Type).Msg("rabbitmq: channel open failed")
		return
	}
	defer func() { _ = ch.Close() }()

	// Idempotent declare; durable so messages survive broker restarts.
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.log.Warn().Err(err).Str("event", event.Type).Msg("rabbitmq: queue declare failed")
		return
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Warn().Err(err).Str("event", event.Type).Msg("rabbitmq: marshal event failed")
		return
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    event.EventID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}
	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.log.Warn().Err(err).Str("event", event.Type).Msg("rabbitmq: publish failed")
		return
	}
}
