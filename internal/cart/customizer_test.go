package cart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCustomizer_ExclusiveGroupReplaces(t *testing.T) {
	cz := NewCustomizer(menuItem(t, "1"))

	for _, size := range []string{"small", "large", "medium", "large"} {
		require.NoError(t, cz.Select("size", size))
		require.Len(t, cz.Selections()["size"], 1)
	}
	require.Equal(t, "large", cz.Selections()["size"][0].ID)
}

func TestCustomizer_MultiSelectAccumulatesDistinct(t *testing.T) {
	cz := NewCustomizer(menuItem(t, "1"))

	require.NoError(t, cz.Select("toppings", "pepperoni"))
	require.NoError(t, cz.Select("toppings", "olives"))
	require.NoError(t, cz.Select("toppings", "pepperoni"))

	got := cz.Selections()["toppings"]
	require.Len(t, got, 2)
	require.Equal(t, "pepperoni", got[0].ID)
	require.Equal(t, "olives", got[1].ID)

	require.NoError(t, cz.Deselect("toppings", "pepperoni"))
	got = cz.Selections()["toppings"]
	require.Len(t, got, 1)
	require.Equal(t, "olives", got[0].ID)

	require.NoError(t, cz.Deselect("toppings", "olives"))
	_, ok := cz.Selections()["toppings"]
	require.False(t, ok)
}

func TestCustomizer_MaxSelectionsNotEnforcedForMultiSelect(t *testing.T) {
	item := menuItem(t, "1")
	limit := 2
	item.Customizations[1].MaxSelections = &limit
	cz := NewCustomizer(item)

	for _, id := range []string{"pepperoni", "mushrooms", "olives", "peppers"} {
		require.NoError(t, cz.Select("toppings", id))
	}
	require.Len(t, cz.Selections()["toppings"], 4)
}

func TestCustomizer_RejectsUnknownIDs(t *testing.T) {
	cz := NewCustomizer(menuItem(t, "1"))

	require.ErrorIs(t, cz.Select("sauce", "bbq"), ErrUnknownGroup)
	require.ErrorIs(t, cz.Select("size", "huge"), ErrUnknownOption)
	require.ErrorIs(t, cz.Select("size", "pepperoni"), ErrUnknownOption)
	require.ErrorIs(t, cz.Deselect("toppings", "anchovies"), ErrUnknownOption)
	require.Empty(t, cz.Selections())
}

func TestCustomizer_CanCommit(t *testing.T) {
	cz := NewCustomizer(menuItem(t, "1"))
	require.False(t, cz.CanCommit())
	require.Equal(t, []string{"Size"}, cz.MissingRequired())

	require.NoError(t, cz.Select("toppings", "pepperoni"))
	require.False(t, cz.CanCommit())

	require.NoError(t, cz.Select("size", "small"))
	require.True(t, cz.CanCommit())

	require.NoError(t, cz.Deselect("toppings", "pepperoni"))
	require.True(t, cz.CanCommit())

	require.NoError(t, cz.Deselect("size", "small"))
	require.False(t, cz.CanCommit())
}

func TestCustomizer_NoGroupsAlwaysCommittable(t *testing.T) {
	cz := NewCustomizer(menuItem(t, "2"))
	require.True(t, cz.CanCommit())
	require.Equal(t, "14.99", cz.Price().String())
}

func TestCustomizer_PriceMatchesCommittedLine(t *testing.T) {
	cz := NewCustomizer(menuItem(t, "1"))
	require.NoError(t, cz.Select("size", "medium"))
	require.NoError(t, cz.Select("toppings", "pepperoni"))
	require.NoError(t, cz.Select("toppings", "mushrooms"))
	cz.SetQuantity(2)

	preview := cz.Price()
	require.Equal(t, "47.98", preview.StringFixed(2))
	require.True(t, preview.Equal(cz.PriceFor(2)))

	c := New()
	li, err := cz.Commit(c)
	require.NoError(t, err)
	require.True(t, preview.Equal(li.TotalPrice))
}

func TestCustomizer_CommitBlockedWhenRequiredMissing(t *testing.T) {
	cz := NewCustomizer(menuItem(t, "1"))
	require.NoError(t, cz.Select("toppings", "olives"))

	c := New()
	_, err := cz.Commit(c)
	require.ErrorIs(t, err, ErrRequiredSelectionMissing)
	require.Contains(t, err.Error(), "Size")
	require.True(t, c.IsEmpty())
	require.Len(t, cz.Selections()["toppings"], 1)
}

func TestCustomizer_CommitResets(t *testing.T) {
	cz := NewCustomizer(menuItem(t, "3"))
	require.NoError(t, cz.Select("patty", "chicken"))
	cz.SetQuantity(3)

	c := New()
	li, err := cz.Commit(c)
	require.NoError(t, err)
	require.Equal(t, 3, li.Quantity)
	require.Equal(t, "41.97", li.TotalPrice.String())

	require.Empty(t, cz.Selections())
	require.Equal(t, 1, cz.Quantity())
	require.False(t, cz.CanCommit())
}

func TestCustomizer_SetQuantityClamps(t *testing.T) {
	cz := NewCustomizer(menuItem(t, "2"))
	cz.SetQuantity(0)
	require.Equal(t, 1, cz.Quantity())
	cz.SetQuantity(-4)
	require.Equal(t, 1, cz.Quantity())
	cz.SetQuantity(5)
	require.Equal(t, 5, cz.Quantity())
}

func TestResolveSelections(t *testing.T) {
	item := menuItem(t, "1")

	sel, err := ResolveSelections(item, map[string][]string{"size": {"large", "large"}, "toppings": {"olives", "olives", "peppers"}})
	require.NoError(t, err)
	require.Len(t, sel["size"], 1)
	require.Len(t, sel["toppings"], 2)

	_, err = ResolveSelections(item, map[string][]string{"size": {"small", "large"}})
	require.ErrorIs(t, err, ErrTooManySelections)

	_, err = ResolveSelections(item, map[string][]string{"crust": {"thin"}})
	require.ErrorIs(t, err, ErrUnknownGroup)

	_, err = ResolveSelections(item, map[string][]string{"toppings": {"pineapple"}})
	require.ErrorIs(t, err, ErrUnknownOption)
}

func TestMissingRequired(t *testing.T) {
	burger := menuItem(t, "3")
	require.Equal(t, []string{"Patty"}, MissingRequired(burger, nil))

	sel, err := ResolveSelections(burger, map[string][]string{"patty": {"veggie"}})
	require.NoError(t, err)
	require.Empty(t, MissingRequired(burger, sel))
	require.Empty(t, MissingRequired(menuItem(t, "2"), nil))
}
