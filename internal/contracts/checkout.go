package contracts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
)

const (
	CheckoutStartedEventName = "CheckoutStarted"
	CartCheckedOutEventName  = "CartCheckedOut"

	CheckoutStartedSchemaPath = "contracts/events/storefront/CheckoutStarted.v1.enveloped.schema.json"
	CartCheckedOutSchemaPath  = "contracts/events/storefront/CartCheckedOut.v1.enveloped.schema.json"
)

type LineItem struct {
	LineItemID string              `json:"lineItemId"`
	MenuItemID string              `json:"menuItemId"`
	Name       string              `json:"name"`
	Quantity   int                 `json:"quantity"`
	UnitPrice  decimal.Decimal     `json:"unitPrice"`
	TotalPrice decimal.Decimal     `json:"totalPrice"`
	Options    map[string][]string `json:"options,omitempty"`
}

type Totals struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Tax         decimal.Decimal `json:"tax"`
	Total       decimal.Decimal `json:"total"`
}

type CheckoutStartedPayload struct {
	SessionID         string     `json:"sessionId"`
	UserID            string     `json:"userId,omitempty"`
	CheckoutSessionID string     `json:"checkoutSessionId"`
	PriceID           string     `json:"priceId"`
	Mode              string     `json:"mode"`
	Items             []LineItem `json:"items"`
	Totals            Totals     `json:"totals"`
	Timestamp         time.Time  `json:"timestamp"`
}

type CartCheckedOutPayload struct {
	SessionID string     `json:"sessionId"`
	UserID    string     `json:"userId,omitempty"`
	Items     []LineItem `json:"items"`
	Totals    Totals     `json:"totals"`
	Timestamp time.Time  `json:"timestamp"`
}

type (
	CheckoutStartedEvent = EventEnvelope[CheckoutStartedPayload]
	CartCheckedOutEvent  = EventEnvelope[CartCheckedOutPayload]
)

// LineItems flattens cart line items into their event form.
func LineItems(items []cart.LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, li := range items {
		var options map[string][]string
		if len(li.Selections) > 0 {
			options = make(map[string][]string, len(li.Selections))
			for groupID, opts := range li.Selections {
				for _, o := range opts {
					options[groupID] = append(options[groupID], o.ID)
				}
			}
		}
		out = append(out, LineItem{
			LineItemID: li.ID,
			MenuItemID: li.MenuItem.ID,
			Name:       li.MenuItem.Name,
			Quantity:   li.Quantity,
			UnitPrice:  li.UnitPrice(),
			TotalPrice: li.TotalPrice,
			Options:    options,
		})
	}
	return out
}

func FromTotals(t cart.Totals) Totals {
	return Totals{
		Subtotal:    t.Subtotal,
		DeliveryFee: t.DeliveryFee,
		Tax:         t.Tax,
		Total:       t.GrandTotal,
	}
}

func BuildCheckoutStartedEvent(p CheckoutStartedPayload, opts EnvelopeOptions) CheckoutStartedEvent {
	if opts.PartitionKey == "" {
		opts.PartitionKey = p.SessionID
	}
	env := newEnvelope(CheckoutStartedEventName, CheckoutStartedSchemaPath, p, opts)
	if env.Payload.Timestamp.IsZero() {
		env.Payload.Timestamp = env.OccurredAt
	}
	return env
}

func BuildCartCheckedOutEvent(p CartCheckedOutPayload, opts EnvelopeOptions) CartCheckedOutEvent {
	if opts.PartitionKey == "" {
		opts.PartitionKey = p.SessionID
	}
	env := newEnvelope(CartCheckedOutEventName, CartCheckedOutSchemaPath, p, opts)
	if env.Payload.Timestamp.IsZero() {
		env.Payload.Timestamp = env.OccurredAt
	}
	return env
}
