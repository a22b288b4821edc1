package cart

import (
	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
)

// Selections maps a customization group id to the options chosen in it, in
// the order they were chosen.
type Selections map[string][]catalog.CustomizationOption

func (s Selections) Clone() Selections {
	out := make(Selections, len(s))
	for groupID, opts := range s {
		out[groupID] = append([]catalog.CustomizationOption(nil), opts...)
	}
	return out
}

// Total is the sum of every selected option price across all groups.
func (s Selections) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, opts := range s {
		for _, o := range opts {
			sum = sum.Add(o.Price)
		}
	}
	return sum
}

func (s Selections) has(groupID, optionID string) bool {
	for _, o := range s[groupID] {
		if o.ID == optionID {
			return true
		}
	}
	return false
}

type LineItem struct {
	ID         string           `json:"id"`
	MenuItem   catalog.MenuItem `json:"menuItem"`
	Quantity   int              `json:"quantity"`
	Selections Selections       `json:"selectedCustomizations"`
	TotalPrice decimal.Decimal  `json:"totalPrice"`
}

// UnitPrice is the item's base price plus every selected option price.
func UnitPrice(item catalog.MenuItem, sel Selections) decimal.Decimal {
	return item.Price.Add(sel.Total())
}

func (li LineItem) UnitPrice() decimal.Decimal {
	return UnitPrice(li.MenuItem, li.Selections)
}

func (li *LineItem) recompute() {
	li.TotalPrice = li.UnitPrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

func (li LineItem) clone() LineItem {
	out := li
	out.MenuItem = li.MenuItem.Clone()
	out.Selections = li.Selections.Clone()
	return out
}
