package cart

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
)

var (
	ErrUnknownGroup             = errors.New("unknown customization group")
	ErrUnknownOption            = errors.New("unknown customization option")
	ErrTooManySelections        = errors.New("too many selections for exclusive group")
	ErrRequiredSelectionMissing = errors.New("required customization not selected")
)

// Customizer holds the in-progress selections for one menu item before it is
// committed to a cart.
//
// Exclusive groups (maxSelections == 1) keep at most one option: selecting
// replaces. Other groups accumulate distinct options; maxSelections is not
// enforced for them.
type Customizer struct {
	item       catalog.MenuItem
	selections Selections
	quantity   int
}

func NewCustomizer(item catalog.MenuItem) *Customizer {
	return &Customizer{
		item:       item.Clone(),
		selections: Selections{},
		quantity:   1,
	}
}

func (c *Customizer) Item() catalog.MenuItem { return c.item.Clone() }

func (c *Customizer) Quantity() int { return c.quantity }

// SetQuantity clamps to a minimum of 1.
func (c *Customizer) SetQuantity(q int) {
	if q < 1 {
		q = 1
	}
	c.quantity = q
}

func (c *Customizer) Selections() Selections { return c.selections.Clone() }

func (c *Customizer) lookup(groupID, optionID string) (catalog.CustomizationGroup, catalog.CustomizationOption, error) {
	g, ok := c.item.Group(groupID)
	if !ok {
		return catalog.CustomizationGroup{}, catalog.CustomizationOption{}, fmt.Errorf("%w: %s", ErrUnknownGroup, groupID)
	}
	o, ok := g.Option(optionID)
	if !ok {
		return catalog.CustomizationGroup{}, catalog.CustomizationOption{}, fmt.Errorf("%w: %s in %s", ErrUnknownOption, optionID, groupID)
	}
	return g, o, nil
}

func (c *Customizer) Select(groupID, optionID string) error {
	g, o, err := c.lookup(groupID, optionID)
	if err != nil {
		return err
	}
	if g.Exclusive() {
		c.selections[groupID] = []catalog.CustomizationOption{o}
		return nil
	}
	if c.selections.has(groupID, optionID) {
		return nil
	}
	c.selections[groupID] = append(c.selections[groupID], o)
	return nil
}

func (c *Customizer) Deselect(groupID, optionID string) error {
	if _, _, err := c.lookup(groupID, optionID); err != nil {
		return err
	}
	opts := c.selections[groupID]
	kept := opts[:0]
	for _, o := range opts {
		if o.ID != optionID {
			kept = append(kept, o)
		}
	}
	if len(kept) == 0 {
		delete(c.selections, groupID)
		return nil
	}
	c.selections[groupID] = kept
	return nil
}

// MissingRequired lists the names of required groups of item that have no
// selection in sel, in menu order.
func MissingRequired(item catalog.MenuItem, sel Selections) []string {
	var missing []string
	for _, g := range item.Customizations {
		if g.Required && len(sel[g.ID]) == 0 {
			missing = append(missing, g.Name)
		}
	}
	return missing
}

func (c *Customizer) MissingRequired() []string {
	return MissingRequired(c.item, c.selections)
}

func (c *Customizer) CanCommit() bool {
	return len(c.MissingRequired()) == 0
}

// PriceFor previews the line total for the current selections at quantity q.
func (c *Customizer) PriceFor(q int) decimal.Decimal {
	return UnitPrice(c.item, c.selections).Mul(decimal.NewFromInt(int64(q)))
}

func (c *Customizer) Price() decimal.Decimal {
	return c.PriceFor(c.quantity)
}

// Commit adds the configured item to dst and resets the customizer. It fails
// without touching dst when a required group has no selection.
func (c *Customizer) Commit(dst *Cart) (LineItem, error) {
	if missing := c.MissingRequired(); len(missing) > 0 {
		return LineItem{}, fmt.Errorf("%w: %s", ErrRequiredSelectionMissing, missing[0])
	}
	li := dst.Add(c.item, c.selections, c.quantity)
	c.Reset()
	return li, nil
}

func (c *Customizer) Reset() {
	c.selections = Selections{}
	c.quantity = 1
}

// ResolveSelections turns raw group/option ids into Selections for item,
// rejecting ids that do not belong to it and more than one option for an
// exclusive group.
func ResolveSelections(item catalog.MenuItem, raw map[string][]string) (Selections, error) {
	cz := NewCustomizer(item)
	for groupID, optionIDs := range raw {
		g, ok := item.Group(groupID)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownGroup, groupID)
		}
		if g.Exclusive() && len(distinct(optionIDs)) > 1 {
			return nil, fmt.Errorf("%w: %s", ErrTooManySelections, groupID)
		}
		for _, optionID := range optionIDs {
			if err := cz.Select(groupID, optionID); err != nil {
				return nil, err
			}
		}
	}
	return cz.selections, nil
}

func distinct(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
