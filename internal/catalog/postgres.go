package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DBPool matches the methods from *pgxpool.Pool that we use.
// This allows us to mock the database in tests.
type DBPool interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	pool DBPool
}

func NewPostgresRepository(pool DBPool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

const (
	restaurantColumns = `id, name, description, image, rating::float8, delivery_time, delivery_fee::text, category, cuisine_type`
	menuItemColumns   = `id, restaurant_id, name, description, price::text, image, category, popular, customizations`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PostgresRepository) ListRestaurants(ctx context.Context) ([]Restaurant, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+restaurantColumns+` FROM restaurants ORDER BY position, id`)
	if err != nil {
		return nil, fmt.Errorf("select restaurants: %w", err)
	}
	defer rows.Close()

	var out []Restaurant
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, restaurantID string) (Restaurant, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id=$1`, restaurantID)
	rest, err := scanRestaurant(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Restaurant{}, ErrNotFound
		}
		return Restaurant{}, err
	}
	return rest, nil
}

func (r *PostgresRepository) ListMenu(ctx context.Context, restaurantID string) ([]MenuItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE restaurant_id=$1 ORDER BY position, id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("select menu_items: %w", err)
	}
	defer rows.Close()

	var out []MenuItem
	for rows.Next() {
		it, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) GetMenuItem(ctx context.Context, menuItemID string) (MenuItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+menuItemColumns+` FROM menu_items WHERE id=$1`, menuItemID)
	it, err := scanMenuItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return MenuItem{}, ErrNotFound
		}
		return MenuItem{}, err
	}
	return it, nil
}

func scanRestaurant(row rowScanner) (Restaurant, error) {
	var (
		rest Restaurant
		fee  string
	)
	if err := row.Scan(&rest.ID, &rest.Name, &rest.Description, &rest.Image, &rest.Rating,
		&rest.DeliveryTime, &fee, &rest.Category, &rest.CuisineType); err != nil {
		return Restaurant{}, fmt.Errorf("scan restaurant: %w", err)
	}
	d, err := decimal.NewFromString(fee)
	if err != nil {
		return Restaurant{}, fmt.Errorf("restaurant %s delivery fee: %w", rest.ID, err)
	}
	rest.DeliveryFee = d
	return rest, nil
}

func scanMenuItem(row rowScanner) (MenuItem, error) {
	var (
		it             MenuItem
		itemPrice      string
		customizations []byte
	)
	if err := row.Scan(&it.ID, &it.RestaurantID, &it.Name, &it.Description, &itemPrice,
		&it.Image, &it.Category, &it.Popular, &customizations); err != nil {
		return MenuItem{}, fmt.Errorf("scan menu_item: %w", err)
	}

	d, err := decimal.NewFromString(itemPrice)
	if err != nil {
		return MenuItem{}, fmt.Errorf("menu item %s price: %w", it.ID, err)
	}
	it.Price = d

	if len(customizations) > 0 {
		if err := json.Unmarshal(customizations, &it.Customizations); err != nil {
			return MenuItem{}, fmt.Errorf("menu item %s customizations: %w", it.ID, err)
		}
	}
	if len(it.Customizations) == 0 {
		it.Customizations = nil
	}
	return it, nil
}
