package cart

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
)

// Cart is an ordered list of line items. It is not safe for concurrent use;
// the owning session serializes access.
type Cart struct {
	items []LineItem
	newID func(menuItemID string) string
}

func New() *Cart {
	return &Cart{newID: lineItemID}
}

func lineItemID(menuItemID string) string {
	return fmt.Sprintf("%s_%d_%s", menuItemID, time.Now().UnixNano(), uuid.NewString())
}

// Add appends a new line item snapshotting item and sel. A quantity below 1
// is treated as 1. Selections are trusted as given; validation belongs to the
// Customizer that produced them.
func (c *Cart) Add(item catalog.MenuItem, sel Selections, quantity int) LineItem {
	if quantity < 1 {
		quantity = 1
	}
	if sel == nil {
		sel = Selections{}
	}

	li := LineItem{
		ID:         c.uniqueID(item.ID),
		MenuItem:   item.Clone(),
		Quantity:   quantity,
		Selections: sel.Clone(),
	}
	li.recompute()
	c.items = append(c.items, li)
	return li.clone()
}

func (c *Cart) uniqueID(menuItemID string) string {
	for {
		id := c.newID(menuItemID)
		if c.indexOf(id) < 0 {
			return id
		}
	}
}

func (c *Cart) indexOf(lineItemID string) int {
	for i := range c.items {
		if c.items[i].ID == lineItemID {
			return i
		}
	}
	return -1
}

// UpdateQuantity sets the quantity of a line item and reprices it from its
// stored snapshot. A quantity of zero or less removes the line item. Unknown
// ids are ignored.
func (c *Cart) UpdateQuantity(lineItemID string, quantity int) {
	if quantity <= 0 {
		c.Remove(lineItemID)
		return
	}
	i := c.indexOf(lineItemID)
	if i < 0 {
		return
	}
	c.items[i].Quantity = quantity
	c.items[i].recompute()
}

func (c *Cart) Remove(lineItemID string) {
	i := c.indexOf(lineItemID)
	if i < 0 {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

func (c *Cart) Clear() {
	c.items = nil
}

func (c *Cart) Get(lineItemID string) (LineItem, bool) {
	i := c.indexOf(lineItemID)
	if i < 0 {
		return LineItem{}, false
	}
	return c.items[i].clone(), true
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	for i, li := range c.items {
		out[i] = li.clone()
	}
	return out
}

func (c *Cart) Len() int { return len(c.items) }

func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// ItemsCount is the sum of quantities across all line items.
func (c *Cart) ItemsCount() int {
	n := 0
	for _, li := range c.items {
		n += li.Quantity
	}
	return n
}
