package rabbitmq

//go:generate go run go.uber.org/mock/mockgen -source=./rabbitmq.go -destination=./mocks/rabbitmq_mock.go -package=mocks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"frontdesk/config"
	"frontdesk/shared/constant"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"
)

const exchangeKind = "topic"

type Client interface {
	Publish(ctx context.Context, routingKey string, body []byte) error
	Close() error
}

type rabbitClientImpl struct {
	url      string
	exchange string

	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
}

// New returns a client publishing to a durable topic exchange named after the
// configured topic prefix. The connection is opened on first publish and
// reopened after the broker drops it.
func New(config *config.Config) Client {
	log.Info().Str("exchange", config.Events.TopicPrefix).Msg("RabbitMQ client initialized")

	return &rabbitClientImpl{
		url:      config.Events.RabbitMQ.URL,
		exchange: config.Events.TopicPrefix,
	}
}

func (r *rabbitClientImpl) ensureChannel() (*amqp.Channel, error) {
	if r.channel != nil && !r.channel.IsClosed() {
		return r.channel, nil
	}

	if r.conn == nil || r.conn.IsClosed() {
		conn, err := amqp.Dial(r.url)
		if err != nil {
			return nil, fmt.Errorf("rabbitmq dial: %w", err)
		}

		r.conn = conn
	}

	ch, err := r.conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("rabbitmq channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		r.exchange,
		exchangeKind,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	)
	if err != nil {
		_ = ch.Close()

		return nil, fmt.Errorf("rabbitmq exchange declare: %w", err)
	}

	r.channel = ch

	return ch, nil
}

func (r *rabbitClientImpl) Publish(ctx context.Context, routingKey string, body []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ch, err := r.ensureChannel()
	if err != nil {
		log.Error().Err(err).Str("routingKey", routingKey).Msg("Failed to open RabbitMQ channel")

		return err
	}

	err = ch.PublishWithContext(ctx,
		r.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  constant.ContentTypeJSON,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		},
	)
	if err != nil {
		log.Error().Err(err).Str("routingKey", routingKey).Msg("Failed to publish to RabbitMQ")

		return fmt.Errorf("rabbitmq publish: %w", err)
	}

	return nil
}

func (r *rabbitClientImpl) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.channel != nil {
		_ = r.channel.Close()
	}

	if r.conn != nil && !r.conn.IsClosed() {
		return r.conn.Close() //nolint:wrapcheck
	}

	return nil
}
