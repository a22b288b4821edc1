package catalog

import "github.com/shopspring/decimal"

type Restaurant struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Image        string          `json:"image"`
	Rating       float64         `json:"rating"`
	DeliveryTime string          `json:"deliveryTime"`
	DeliveryFee  decimal.Decimal `json:"deliveryFee"`
	Category     string          `json:"category"`
	CuisineType  string          `json:"cuisineType"`
}

type MenuItem struct {
	ID             string               `json:"id"`
	RestaurantID   string               `json:"restaurantId"`
	Name           string               `json:"name"`
	Description    string               `json:"description"`
	Price          decimal.Decimal      `json:"price"`
	Image          string               `json:"image"`
	Category       string               `json:"category"`
	Customizations []CustomizationGroup `json:"customizations,omitempty"`
	Popular        bool                 `json:"popular,omitempty"`
}

// CustomizationGroup is a named set of options such as "Size". A MaxSelections
// of exactly 1 makes the group an exclusive choice; nil or anything above 1
// makes it multi-select.
type CustomizationGroup struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Required      bool                  `json:"required"`
	Options       []CustomizationOption `json:"options"`
	MaxSelections *int                  `json:"maxSelections,omitempty"`
}

type CustomizationOption struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

func (g CustomizationGroup) Exclusive() bool {
	return g.MaxSelections != nil && *g.MaxSelections == 1
}

func (g CustomizationGroup) Option(optionID string) (CustomizationOption, bool) {
	for _, o := range g.Options {
		if o.ID == optionID {
			return o, true
		}
	}
	return CustomizationOption{}, false
}

func (m MenuItem) Group(groupID string) (CustomizationGroup, bool) {
	for _, g := range m.Customizations {
		if g.ID == groupID {
			return g, true
		}
	}
	return CustomizationGroup{}, false
}

// Clone returns a deep copy so callers can keep a snapshot that later catalog
// changes cannot reach.
func (m MenuItem) Clone() MenuItem {
	out := m
	if m.Customizations == nil {
		return out
	}
	out.Customizations = make([]CustomizationGroup, len(m.Customizations))
	for i, g := range m.Customizations {
		cg := g
		cg.Options = append([]CustomizationOption(nil), g.Options...)
		if g.MaxSelections != nil {
			max := *g.MaxSelections
			cg.MaxSelections = &max
		}
		out.Customizations[i] = cg
	}
	return out
}
