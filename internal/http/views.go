package httpapi

import (
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
)

type lineItemView struct {
	ID                     string           `json:"id"`
	MenuItem               catalog.MenuItem `json:"menuItem"`
	Quantity               int              `json:"quantity"`
	SelectedCustomizations cart.Selections  `json:"selectedCustomizations"`
	UnitPrice              string           `json:"unitPrice"`
	TotalPrice             string           `json:"totalPrice"`
}

type cartView struct {
	Items      []lineItemView     `json:"items"`
	ItemsCount int                `json:"itemsCount"`
	Totals     cart.DisplayTotals `json:"totals"`
}

func newLineItemView(li cart.LineItem) lineItemView {
	return lineItemView{
		ID:                     li.ID,
		MenuItem:               li.MenuItem,
		Quantity:               li.Quantity,
		SelectedCustomizations: li.Selections,
		UnitPrice:              cart.FormatMoney(li.UnitPrice()),
		TotalPrice:             cart.FormatMoney(li.TotalPrice),
	}
}

func newCartView(c *cart.Cart, p cart.PricingConfig) cartView {
	items := c.Items()
	v := cartView{
		Items:      make([]lineItemView, 0, len(items)),
		ItemsCount: c.ItemsCount(),
		Totals:     cart.ComputeTotals(items, p).Display(),
	}
	for _, li := range items {
		v.Items = append(v.Items, newLineItemView(li))
	}
	return v
}

type customizationView struct {
	MenuItem        catalog.MenuItem `json:"menuItem"`
	Selections      cart.Selections  `json:"selections"`
	Quantity        int              `json:"quantity"`
	Price           string           `json:"price"`
	CanCommit       bool             `json:"canCommit"`
	MissingRequired []string         `json:"missingRequired"`
}

func newCustomizationView(cz *cart.Customizer) customizationView {
	missing := cz.MissingRequired()
	if missing == nil {
		missing = []string{}
	}
	return customizationView{
		MenuItem:        cz.Item(),
		Selections:      cz.Selections(),
		Quantity:        cz.Quantity(),
		Price:           cart.FormatMoney(cz.Price()),
		CanCommit:       len(missing) == 0,
		MissingRequired: missing,
	}
}
