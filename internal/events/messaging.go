package events

import (
	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	EventsExchange            = "ecommerce.events"
	CheckoutStartedRoutingKey = "storefront.checkout.started.v1"
	CartCheckedOutRoutingKey  = "storefront.cart.checkedout.v1"
)

type exchangeDeclarer interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp.Table) error
}

func declareEventsExchange(ch exchangeDeclarer) error {
	return ch.ExchangeDeclare(
		EventsExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
}
