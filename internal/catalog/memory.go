package catalog

import "context"

// MemoryRepository serves a fixed catalog. It is used when no database is
// configured and in tests.
type MemoryRepository struct {
	restaurants []Restaurant
	items       []MenuItem
}

func NewMemoryRepository(restaurants []Restaurant, items []MenuItem) *MemoryRepository {
	return &MemoryRepository{restaurants: restaurants, items: items}
}

func NewSeededMemoryRepository() *MemoryRepository {
	return NewMemoryRepository(SeedRestaurants(), SeedMenuItems())
}

func (r *MemoryRepository) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	return append([]Restaurant(nil), r.restaurants...), nil
}

func (r *MemoryRepository) GetRestaurant(ctx context.Context, restaurantID string) (Restaurant, error) {
	for _, rest := range r.restaurants {
		if rest.ID == restaurantID {
			return rest, nil
		}
	}
	return Restaurant{}, ErrNotFound
}

func (r *MemoryRepository) ListMenu(ctx context.Context, restaurantID string) ([]MenuItem, error) {
	var out []MenuItem
	for _, it := range r.items {
		if it.RestaurantID == restaurantID {
			out = append(out, it.Clone())
		}
	}
	return out, nil
}

func (r *MemoryRepository) GetMenuItem(ctx context.Context, menuItemID string) (MenuItem, error) {
	for _, it := range r.items {
		if it.ID == menuItemID {
			return it.Clone(), nil
		}
	}
	return MenuItem{}, ErrNotFound
}
