package cart

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cucumber/godog"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
)

type cartTestContext struct {
	cart       *Cart
	customizer *Customizer
	err        error
}

func (c *cartTestContext) reset() {
	c.cart = New()
	c.customizer = nil
	c.err = nil
}

func seedItem(id string) (catalog.MenuItem, error) {
	for _, it := range catalog.SeedMenuItems() {
		if it.ID == id {
			return it, nil
		}
	}
	return catalog.MenuItem{}, fmt.Errorf("no menu item %q", id)
}

func (c *cartTestContext) anEmptyCart() error {
	c.cart = New()
	return nil
}

func (c *cartTestContext) iCustomizeMenuItem(id string) error {
	item, err := seedItem(id)
	if err != nil {
		return err
	}
	c.customizer = NewCustomizer(item)
	return nil
}

func (c *cartTestContext) iSelectIn(optionID, groupID string) error {
	return c.customizer.Select(groupID, optionID)
}

func (c *cartTestContext) iSetTheQuantityTo(q int) error {
	c.customizer.SetQuantity(q)
	return nil
}

func (c *cartTestContext) iCommitTheItem() error {
	_, c.err = c.customizer.Commit(c.cart)
	return nil
}

func (c *cartTestContext) iAddMenuItemWithQuantity(id string, q int) error {
	item, err := seedItem(id)
	if err != nil {
		return err
	}
	c.cart.Add(item, nil, q)
	return nil
}

func (c *cartTestContext) iUpdateLineItemToQuantity(id string, q int) error {
	c.cart.UpdateQuantity(id, q)
	return nil
}

func (c *cartTestContext) iUpdateLineItemNumberToQuantity(n, q int) error {
	items := c.cart.Items()
	if n < 1 || n > len(items) {
		return fmt.Errorf("no line item %d", n)
	}
	c.cart.UpdateQuantity(items[n-1].ID, q)
	return nil
}

func (c *cartTestContext) iClearTheCart() error {
	c.cart.Clear()
	return nil
}

func (c *cartTestContext) theCartHasLineItems(n int) error {
	if got := c.cart.Len(); got != n {
		return fmt.Errorf("expected %d line items, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) lineItemCosts(n int, want string) error {
	items := c.cart.Items()
	if n < 1 || n > len(items) {
		return fmt.Errorf("no line item %d", n)
	}
	if got := FormatMoney(items[n-1].TotalPrice); got != want {
		return fmt.Errorf("expected line item %d to cost %s, got %s", n, want, got)
	}
	return nil
}

func (c *cartTestContext) theCartCountIs(n int) error {
	if got := c.cart.ItemsCount(); got != n {
		return fmt.Errorf("expected count %d, got %d", n, got)
	}
	return nil
}

func (c *cartTestContext) theSubtotalIs(want string) error {
	return expectAmount("subtotal", c.cart.Totals(DefaultPricing()).Subtotal.String(), want)
}

func (c *cartTestContext) theTaxIs(want string) error {
	return expectAmount("tax", c.cart.Totals(DefaultPricing()).Tax.String(), want)
}

func (c *cartTestContext) theGrandTotalIs(want string) error {
	return expectAmount("grand total", c.cart.Totals(DefaultPricing()).GrandTotal.String(), want)
}

func (c *cartTestContext) theGrandTotalDisplaysAs(want string) error {
	return expectAmount("displayed total", c.cart.Totals(DefaultPricing()).Display().GrandTotal, want)
}

func expectAmount(name, got, want string) error {
	if got != want {
		return fmt.Errorf("expected %s %s, got %s", name, want, got)
	}
	return nil
}

func (c *cartTestContext) theItemCanBeCommitted() error {
	if !c.customizer.CanCommit() {
		return fmt.Errorf("expected item to be committable, missing %v", c.customizer.MissingRequired())
	}
	return nil
}

func (c *cartTestContext) theItemCannotBeCommitted() error {
	if c.customizer.CanCommit() {
		return errors.New("expected item not to be committable")
	}
	return nil
}

func (c *cartTestContext) committingFailsWithAMissingSelection() error {
	if !errors.Is(c.err, ErrRequiredSelectionMissing) {
		return fmt.Errorf("expected ErrRequiredSelectionMissing, got %v", c.err)
	}
	return nil
}

func (c *cartTestContext) groupHasSelections(groupID string, n int) error {
	if got := len(c.customizer.Selections()[groupID]); got != n {
		return fmt.Errorf("expected %d selections in %s, got %d", n, groupID, got)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	tc := &cartTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an empty cart$`, tc.anEmptyCart)
	ctx.Step(`^I customize menu item "([^"]*)"$`, tc.iCustomizeMenuItem)

	// When steps
	ctx.Step(`^I select "([^"]*)" in "([^"]*)"$`, tc.iSelectIn)
	ctx.Step(`^I set the quantity to (\d+)$`, tc.iSetTheQuantityTo)
	ctx.Step(`^I commit the item$`, tc.iCommitTheItem)
	ctx.Step(`^I add menu item "([^"]*)" with quantity (\d+)$`, tc.iAddMenuItemWithQuantity)
	ctx.Step(`^I update line item "([^"]*)" to quantity (-?\d+)$`, tc.iUpdateLineItemToQuantity)
	ctx.Step(`^I update line item (\d+) to quantity (-?\d+)$`, tc.iUpdateLineItemNumberToQuantity)
	ctx.Step(`^I clear the cart$`, tc.iClearTheCart)

	// Then steps
	ctx.Step(`^the cart has (\d+) line items?$`, tc.theCartHasLineItems)
	ctx.Step(`^line item (\d+) costs "([^"]*)"$`, tc.lineItemCosts)
	ctx.Step(`^the cart count is (\d+)$`, tc.theCartCountIs)
	ctx.Step(`^the subtotal is "([^"]*)"$`, tc.theSubtotalIs)
	ctx.Step(`^the tax is "([^"]*)"$`, tc.theTaxIs)
	ctx.Step(`^the grand total is "([^"]*)"$`, tc.theGrandTotalIs)
	ctx.Step(`^the grand total displays as "([^"]*)"$`, tc.theGrandTotalDisplaysAs)
	ctx.Step(`^the item can be committed$`, tc.theItemCanBeCommitted)
	ctx.Step(`^the item cannot be committed$`, tc.theItemCannotBeCommitted)
	ctx.Step(`^committing fails with a missing selection$`, tc.committingFailsWithAMissingSelection)
	ctx.Step(`^group "([^"]*)" has (\d+) selections?$`, tc.groupHasSelections)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/cart.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
