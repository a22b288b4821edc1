package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/contracts"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	declared   []string
	published  []published
	publishErr error
	closed     bool
}

func (f *fakeChannel) ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error {
	f.declared = append(f.declared, name+":"+kind)
	return nil
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.published = append(f.published, published{exchange: exchange, key: key, msg: msg})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func TestRabbitPublisher_CartCheckedOut(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newRabbitPublisher(ch, NewMemorySequence(), PublisherOptions{})
	require.NoError(t, err)
	require.Equal(t, []string{EventsExchange + ":topic"}, ch.declared)

	meta := EventMeta{CorrelationID: "corr-1", PartitionKey: "sess-1"}
	payload := contracts.CartCheckedOutPayload{
		SessionID: "sess-1",
		Items:     []contracts.LineItem{{LineItemID: "li-1", MenuItemID: "2", Quantity: 1, TotalPrice: decimal.RequireFromString("14.99")}},
		Totals:    contracts.Totals{Total: decimal.RequireFromString("19.1792")},
	}

	require.NoError(t, p.PublishCartCheckedOut(context.Background(), meta, payload))
	require.NoError(t, p.PublishCartCheckedOut(context.Background(), meta, payload))
	require.Len(t, ch.published, 2)

	first := ch.published[0]
	require.Equal(t, EventsExchange, first.exchange)
	require.Equal(t, CartCheckedOutRoutingKey, first.key)
	require.Equal(t, "application/json", first.msg.ContentType)
	require.Equal(t, "corr-1", first.msg.CorrelationId)

	var env contracts.CartCheckedOutEvent
	require.NoError(t, json.Unmarshal(first.msg.Body, &env))
	require.NoError(t, env.Validate(contracts.CartCheckedOutEventName))
	require.Equal(t, int64(1), env.Sequence)
	require.Equal(t, first.msg.MessageId, env.EventID)
	require.Equal(t, "19.1792", env.Payload.Totals.Total.String())

	var second contracts.CartCheckedOutEvent
	require.NoError(t, json.Unmarshal(ch.published[1].msg.Body, &second))
	require.Equal(t, int64(2), second.Sequence)

	require.NoError(t, p.Close())
	require.True(t, ch.closed)
}

func TestRabbitPublisher_CheckoutStarted(t *testing.T) {
	ch := &fakeChannel{}
	p, err := newRabbitPublisher(ch, NewMemorySequence(), PublisherOptions{Producer: "storefront-test"})
	require.NoError(t, err)

	err = p.PublishCheckoutStarted(context.Background(), EventMeta{PartitionKey: "sess-9"}, contracts.CheckoutStartedPayload{
		SessionID:         "sess-9",
		CheckoutSessionID: "cs_1",
		PriceID:           "price_1",
		Mode:              "payment",
	})
	require.NoError(t, err)
	require.Len(t, ch.published, 1)
	require.Equal(t, CheckoutStartedRoutingKey, ch.published[0].key)

	var env contracts.CheckoutStartedEvent
	require.NoError(t, json.Unmarshal(ch.published[0].msg.Body, &env))
	require.Equal(t, "storefront-test", env.Producer)
	require.Equal(t, "cs_1", env.Payload.CheckoutSessionID)
}

func TestRabbitPublisher_Errors(t *testing.T) {
	boom := errors.New("channel closed")
	ch := &fakeChannel{publishErr: boom}
	p, err := newRabbitPublisher(ch, NewMemorySequence(), PublisherOptions{})
	require.NoError(t, err)

	err = p.PublishCartCheckedOut(context.Background(), EventMeta{PartitionKey: "s"}, contracts.CartCheckedOutPayload{SessionID: "s"})
	require.ErrorIs(t, err, boom)

	err = p.PublishCartCheckedOut(context.Background(), EventMeta{}, contracts.CartCheckedOutPayload{})
	require.ErrorIs(t, err, errPartitionKeyRequired)
}

func TestLogPublisher(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	p := NewLogPublisher(zap.New(core))

	meta := EventMeta{PartitionKey: "sess-1", CorrelationID: "corr"}
	require.NoError(t, p.PublishCheckoutStarted(context.Background(), meta, contracts.CheckoutStartedPayload{SessionID: "sess-1", CheckoutSessionID: "cs_9"}))
	require.NoError(t, p.PublishCartCheckedOut(context.Background(), meta, contracts.CartCheckedOutPayload{SessionID: "sess-1"}))

	entries := logs.FilterMessage("event").All()
	require.Len(t, entries, 2)
	require.Equal(t, contracts.CheckoutStartedEventName, entries[0].ContextMap()["eventName"])
	require.Equal(t, contracts.CartCheckedOutEventName, entries[1].ContextMap()["eventName"])
	require.Equal(t, int64(2), entries[1].ContextMap()["sequence"])
}
