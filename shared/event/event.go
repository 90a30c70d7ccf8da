// Package event publishes domain events after a write has been committed.
package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=./mocks/event_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/infras/otel"
	"frontdesk/infras/rabbitmq"
	"frontdesk/shared/constant"
	"frontdesk/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	BookingCreated       = "booking.created"
	BookingUpdated       = "booking.updated"
	BookingDeleted       = "booking.deleted"
	CleaningStatusChange = "cleaning.status_changed"
)

const (
	BrokerNone     = "none"
	BrokerKafka    = "kafka"
	BrokerRabbitMQ = "rabbitmq"
)

const publishTimeout = 10 * time.Second

// Envelope is the payload written to the broker.
type Envelope struct {
	Name       string    `json:"name"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, name, key string, payload any) error
}

type kafkaPublisher struct {
	client kafka.Client
	prefix string
}

func (p *kafkaPublisher) Publish(ctx context.Context, name, key string, payload any) error {
	return p.client.SendMessages(ctx, topic(p.prefix, name), kafka.Message{ //nolint:wrapcheck
		Key:   key,
		Value: newEnvelope(name, key, payload),
	})
}

type rabbitPublisher struct {
	client rabbitmq.Client
}

func (p *rabbitPublisher) Publish(ctx context.Context, name, key string, payload any) error {
	body, err := json.Marshal(newEnvelope(name, key, payload))
	if err != nil {
		return fmt.Errorf("failed to marshal event %s: %w", name, err)
	}

	return p.client.Publish(ctx, name, body) //nolint:wrapcheck
}

type noopPublisher struct{}

func (noopPublisher) Publish(_ context.Context, _, _ string, _ any) error {
	return nil
}

func NewKafka(client kafka.Client, prefix string) Publisher {
	return &kafkaPublisher{client: client, prefix: prefix}
}

func NewRabbitMQ(client rabbitmq.Client) Publisher {
	return &rabbitPublisher{client: client}
}

func NewNoop() Publisher {
	return noopPublisher{}
}

// New selects the broker named by EVENTS_BROKER.
func New(cfg *config.Config) Publisher {
	switch strings.ToLower(cfg.Events.Broker) {
	case BrokerKafka:
		return NewKafka(kafka.New(cfg), cfg.Events.TopicPrefix)
	case BrokerRabbitMQ:
		return NewRabbitMQ(rabbitmq.New(cfg))
	case BrokerNone, "":
		log.Info().Msg("Event publishing disabled")

		return NewNoop()
	default:
		log.Warn().Str("broker", cfg.Events.Broker).Msg("Unknown event broker, event publishing disabled")

		return NewNoop()
	}
}

// PublishAsync publishes in the background, detached from the request
// lifetime. Failures are logged and never reach the caller. The returned
// channel is closed when the attempt finishes.
func PublishAsync(ctx context.Context, publisher Publisher, tracer otel.Otel, name, key string, payload any) <-chan struct{} {
	done := make(chan struct{})
	ctx = context.WithoutCancel(ctx)

	go func() {
		defer close(done)

		ctx, cancel := context.WithTimeout(ctx, publishTimeout)
		defer cancel()

		ctx, scope := tracer.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+name)
		defer scope.End()

		if err := publisher.Publish(ctx, name, key, payload); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("event", name).Str("key", key).Msg("failed to publish event")
		}
	}()

	return done
}

func topic(prefix, name string) string {
	if prefix == "" {
		return name
	}

	return prefix + "." + name
}

func newEnvelope(name, key string, payload any) Envelope {
	return Envelope{
		Name:       name,
		Key:        key,
		OccurredAt: timezone.Now(),
		Payload:    payload,
	}
}
