package cart

import "github.com/shopspring/decimal"

// PricingConfig holds the order-level charges applied on top of the subtotal.
type PricingConfig struct {
	DeliveryFee decimal.Decimal
	TaxRate     decimal.Decimal
}

func DefaultPricing() PricingConfig {
	return PricingConfig{
		DeliveryFee: decimal.RequireFromString("2.99"),
		TaxRate:     decimal.RequireFromString("0.08"),
	}
}

// Totals keeps exact amounts. Round only when presenting them.
type Totals struct {
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Tax         decimal.Decimal
	GrandTotal  decimal.Decimal
}

type DisplayTotals struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"deliveryFee"`
	Tax         string `json:"tax"`
	GrandTotal  string `json:"total"`
}

func ComputeTotals(items []LineItem, p PricingConfig) Totals {
	subtotal := decimal.Zero
	for _, li := range items {
		subtotal = subtotal.Add(li.TotalPrice)
	}
	tax := subtotal.Mul(p.TaxRate)
	return Totals{
		Subtotal:    subtotal,
		DeliveryFee: p.DeliveryFee,
		Tax:         tax,
		GrandTotal:  subtotal.Add(p.DeliveryFee).Add(tax),
	}
}

func (c *Cart) Totals(p PricingConfig) Totals {
	return ComputeTotals(c.items, p)
}

func (t Totals) Display() DisplayTotals {
	return DisplayTotals{
		Subtotal:    FormatMoney(t.Subtotal),
		DeliveryFee: FormatMoney(t.DeliveryFee),
		Tax:         FormatMoney(t.Tax),
		GrandTotal:  FormatMoney(t.GrandTotal),
	}
}

func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}
