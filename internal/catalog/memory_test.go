package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededMemoryRepository()

	restaurants, err := repo.ListRestaurants(ctx)
	require.NoError(t, err)
	require.Len(t, restaurants, 4)

	rest, err := repo.GetRestaurant(ctx, "2")
	require.NoError(t, err)
	require.Equal(t, "Sakura Sushi", rest.Name)
	require.Equal(t, "3.99", rest.DeliveryFee.StringFixed(2))

	_, err = repo.GetRestaurant(ctx, "99")
	require.ErrorIs(t, err, ErrNotFound)

	menu, err := repo.ListMenu(ctx, "1")
	require.NoError(t, err)
	require.Len(t, menu, 1)
	require.Equal(t, "Margherita Pizza", menu[0].Name)

	empty, err := repo.ListMenu(ctx, "4")
	require.NoError(t, err)
	require.Empty(t, empty)

	_, err = repo.GetMenuItem(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryRepository_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededMemoryRepository()

	item, err := repo.GetMenuItem(ctx, "1")
	require.NoError(t, err)
	item.Customizations[0].Options[0].Name = "changed"
	*item.Customizations[0].MaxSelections = 9

	again, err := repo.GetMenuItem(ctx, "1")
	require.NoError(t, err)
	require.Equal(t, `Small (10")`, again.Customizations[0].Options[0].Name)
	require.True(t, again.Customizations[0].Exclusive())
}

func TestMenuItemLookups(t *testing.T) {
	item := SeedMenuItems()[0]

	size, ok := item.Group("size")
	require.True(t, ok)
	require.True(t, size.Exclusive())

	toppings, ok := item.Group("toppings")
	require.True(t, ok)
	require.False(t, toppings.Exclusive())

	opt, ok := toppings.Option("pepperoni")
	require.True(t, ok)
	require.Equal(t, "2.5", opt.Price.String())

	_, ok = toppings.Option("anchovies")
	require.False(t, ok)
	_, ok = item.Group("sauce")
	require.False(t, ok)
}
