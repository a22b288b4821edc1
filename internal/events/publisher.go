package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/contracts"
)

type EventMeta struct {
	CorrelationID string
	CausationID   string
	PartitionKey  string
}

type Publisher interface {
	PublishCheckoutStarted(ctx context.Context, meta EventMeta, payload contracts.CheckoutStartedPayload) error
	PublishCartCheckedOut(ctx context.Context, meta EventMeta, payload contracts.CartCheckedOutPayload) error
}

type channel interface {
	exchangeDeclarer
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

type RabbitPublisher struct {
	ch       channel
	seqRepo  SequenceRepository
	producer string
	timeout  time.Duration
}

type PublisherOptions struct {
	Producer string
	Timeout  time.Duration
}

func NewRabbitPublisher(conn *amqp.Connection, seqRepo SequenceRepository, opts PublisherOptions) (*RabbitPublisher, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("open channel: %w", err)
	}
	p, err := newRabbitPublisher(ch, seqRepo, opts)
	if err != nil {
		_ = ch.Close()
		return nil, err
	}
	return p, nil
}

func newRabbitPublisher(ch channel, seqRepo SequenceRepository, opts PublisherOptions) (*RabbitPublisher, error) {
	if err := declareEventsExchange(ch); err != nil {
		return nil, fmt.Errorf("declare events exchange: %w", err)
	}

	producer := opts.Producer
	if producer == "" {
		producer = contracts.StorefrontProducer
	}
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	return &RabbitPublisher{ch: ch, seqRepo: seqRepo, producer: producer, timeout: timeout}, nil
}

func (p *RabbitPublisher) Close() error {
	return p.ch.Close()
}

func (p *RabbitPublisher) envelopeOptions(ctx context.Context, meta EventMeta) (contracts.EnvelopeOptions, error) {
	seq, err := p.seqRepo.NextSequence(ctx, meta.PartitionKey)
	if err != nil {
		return contracts.EnvelopeOptions{}, fmt.Errorf("reserve sequence: %w", err)
	}
	return contracts.EnvelopeOptions{
		PartitionKey:  meta.PartitionKey,
		Sequence:      seq,
		Producer:      p.producer,
		CorrelationID: meta.CorrelationID,
		CausationID:   meta.CausationID,
		OccurredAt:    time.Now().UTC(),
	}, nil
}

func (p *RabbitPublisher) PublishCheckoutStarted(ctx context.Context, meta EventMeta, payload contracts.CheckoutStartedPayload) error {
	opts, err := p.envelopeOptions(ctx, meta)
	if err != nil {
		return err
	}
	env := contracts.BuildCheckoutStartedEvent(payload, opts)
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal CheckoutStarted envelope: %w", err)
	}
	return p.publishJSON(ctx, CheckoutStartedRoutingKey, env.EventID, meta.CorrelationID, body)
}

func (p *RabbitPublisher) PublishCartCheckedOut(ctx context.Context, meta EventMeta, payload contracts.CartCheckedOutPayload) error {
	opts, err := p.envelopeOptions(ctx, meta)
	if err != nil {
		return err
	}
	env := contracts.BuildCartCheckedOutEvent(payload, opts)
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal CartCheckedOut envelope: %w", err)
	}
	return p.publishJSON(ctx, CartCheckedOutRoutingKey, env.EventID, meta.CorrelationID, body)
}

func (p *RabbitPublisher) publishJSON(ctx context.Context, routingKey, messageID, correlationID string, body []byte) error {
	pubCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	return p.ch.PublishWithContext(
		pubCtx,
		EventsExchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:   "application/json",
			DeliveryMode:  amqp.Persistent,
			MessageId:     messageID,
			CorrelationId: correlationID,
			Timestamp:     time.Now().UTC(),
			Body:          body,
		},
	)
}

// LogPublisher records events in the log instead of sending them anywhere.
// It is used when no broker is configured.
type LogPublisher struct {
	log *zap.Logger
	seq SequenceRepository
}

func NewLogPublisher(log *zap.Logger) *LogPublisher {
	return &LogPublisher{log: log, seq: NewMemorySequence()}
}

func (p *LogPublisher) PublishCheckoutStarted(ctx context.Context, meta EventMeta, payload contracts.CheckoutStartedPayload) error {
	seq, err := p.seq.NextSequence(ctx, meta.PartitionKey)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}
	env := contracts.BuildCheckoutStartedEvent(payload, contracts.EnvelopeOptions{
		PartitionKey:  meta.PartitionKey,
		Sequence:      seq,
		CorrelationID: meta.CorrelationID,
		CausationID:   meta.CausationID,
	})
	p.log.Info("event",
		zap.String("eventName", env.EventName),
		zap.String("eventId", env.EventID),
		zap.String("partitionKey", env.PartitionKey),
		zap.Int64("sequence", env.Sequence),
		zap.String("checkoutSessionId", payload.CheckoutSessionID),
		zap.String("correlationId", meta.CorrelationID),
	)
	return nil
}

func (p *LogPublisher) PublishCartCheckedOut(ctx context.Context, meta EventMeta, payload contracts.CartCheckedOutPayload) error {
	seq, err := p.seq.NextSequence(ctx, meta.PartitionKey)
	if err != nil {
		return fmt.Errorf("reserve sequence: %w", err)
	}
	env := contracts.BuildCartCheckedOutEvent(payload, contracts.EnvelopeOptions{
		PartitionKey:  meta.PartitionKey,
		Sequence:      seq,
		CorrelationID: meta.CorrelationID,
		CausationID:   meta.CausationID,
	})
	p.log.Info("event",
		zap.String("eventName", env.EventName),
		zap.String("eventId", env.EventID),
		zap.String("partitionKey", env.PartitionKey),
		zap.Int64("sequence", env.Sequence),
		zap.Int("items", len(payload.Items)),
		zap.String("total", payload.Totals.Total.StringFixed(2)),
		zap.String("correlationId", meta.CorrelationID),
	)
	return nil
}
