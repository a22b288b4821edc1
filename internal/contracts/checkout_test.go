package contracts

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
)

func sampleCart(t *testing.T) *cart.Cart {
	t.Helper()
	items := catalog.SeedMenuItems()
	c := cart.New()

	sel, err := cart.ResolveSelections(items[0], map[string][]string{
		"size":     {"medium"},
		"toppings": {"pepperoni", "mushrooms"},
	})
	require.NoError(t, err)
	c.Add(items[0], sel, 2)
	c.Add(items[2], nil, 1)
	return c
}

func TestBuildCartCheckedOutEvent(t *testing.T) {
	now := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	c := sampleCart(t)

	env := BuildCartCheckedOutEvent(CartCheckedOutPayload{
		SessionID: "sess-1",
		UserID:    "user-1",
		Items:     LineItems(c.Items()),
		Totals:    FromTotals(c.Totals(cart.DefaultPricing())),
	}, EnvelopeOptions{
		Sequence:      3,
		CorrelationID: "53b0fd3e-8d6b-49af-8c1f-12cf4182c2f7",
		EventID:       "73b0fd3e-8d6b-49af-8c1f-12cf4182c2f7",
		OccurredAt:    now,
	})

	require.NoError(t, env.Validate(CartCheckedOutEventName))
	require.Equal(t, "sess-1", env.PartitionKey)
	require.Equal(t, StorefrontProducer, env.Producer)
	require.Equal(t, CartCheckedOutSchemaPath, env.Schema)
	require.Equal(t, now, env.Payload.Timestamp)
	require.Len(t, env.Payload.Items, 2)

	pizza := env.Payload.Items[0]
	require.Equal(t, "1", pizza.MenuItemID)
	require.Equal(t, "23.99", pizza.UnitPrice.String())
	require.Equal(t, "47.98", pizza.TotalPrice.String())
	require.ElementsMatch(t, []string{"pepperoni", "mushrooms"}, pizza.Options["toppings"])
	require.Nil(t, env.Payload.Items[1].Options)

	require.Equal(t, "68.8376", env.Payload.Totals.Total.String())
}

func TestBuildCheckoutStartedEvent_JSON(t *testing.T) {
	c := sampleCart(t)
	env := BuildCheckoutStartedEvent(CheckoutStartedPayload{
		SessionID:         "sess-2",
		CheckoutSessionID: "cs_test_123",
		PriceID:           "price_abc",
		Mode:              "payment",
		Items:             LineItems(c.Items()),
		Totals:            FromTotals(c.Totals(cart.DefaultPricing())),
	}, EnvelopeOptions{Sequence: 1})

	require.NotEmpty(t, env.EventID)
	require.False(t, env.OccurredAt.IsZero())
	require.NoError(t, env.Validate(CheckoutStartedEventName))

	raw, err := json.Marshal(env)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	require.Equal(t, "CheckoutStarted", decoded["eventName"])
	payload := decoded["payload"].(map[string]any)
	require.Equal(t, "cs_test_123", payload["checkoutSessionId"])
	totals := payload["totals"].(map[string]any)
	require.Equal(t, "60.97", totals["subtotal"])
	_, hasUser := payload["userId"]
	require.False(t, hasUser)
}

func TestEnvelopeValidate(t *testing.T) {
	makeEnvelope := func() CartCheckedOutEvent {
		return BuildCartCheckedOutEvent(CartCheckedOutPayload{SessionID: "sess-3"}, EnvelopeOptions{Sequence: 1})
	}

	require.NoError(t, makeEnvelope().Validate(CartCheckedOutEventName))

	tests := []struct {
		name   string
		mutate func(e *CartCheckedOutEvent)
	}{
		{name: "event name mismatch", mutate: func(e *CartCheckedOutEvent) { e.EventName = "WrongEvent" }},
		{name: "version mismatch", mutate: func(e *CartCheckedOutEvent) { e.EventVersion = 2 }},
		{name: "missing partition key", mutate: func(e *CartCheckedOutEvent) { e.PartitionKey = "" }},
		{name: "missing sequence", mutate: func(e *CartCheckedOutEvent) { e.Sequence = 0 }},
		{name: "missing event id", mutate: func(e *CartCheckedOutEvent) { e.EventID = "" }},
		{name: "missing producer", mutate: func(e *CartCheckedOutEvent) { e.Producer = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := makeEnvelope()
			tt.mutate(&env)
			require.Error(t, env.Validate(CartCheckedOutEventName))
		})
	}
}
