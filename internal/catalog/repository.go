package catalog

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

const CategoryAll = "All"

// Categories is the fixed category list shown by the storefront filter.
var Categories = []string{CategoryAll, "Italian", "Japanese", "American", "Indian", "Mexican", "Chinese"}

type Repository interface {
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID string) (Restaurant, error)
	ListMenu(ctx context.Context, restaurantID string) ([]MenuItem, error)
	GetMenuItem(ctx context.Context, menuItemID string) (MenuItem, error)
}

type RestaurantFilter struct {
	Category string
	Query    string
}
