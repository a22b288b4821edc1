package catalog

import "github.com/shopspring/decimal"

func intPtr(v int) *int { return &v }

func price(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// SeedRestaurants and SeedMenuItems are the sample storefront data. The same
// rows are inserted by the catalog seed migration.
func SeedRestaurants() []Restaurant {
	return []Restaurant{
		{
			ID:           "1",
			Name:         "Bella Italia",
			Description:  "Authentic Italian cuisine with fresh ingredients",
			Image:        "https://images.pexels.com/photos/262978/pexels-photo-262978.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:       4.8,
			DeliveryTime: "25-35 min",
			DeliveryFee:  price("2.99"),
			Category:     "Italian",
			CuisineType:  "Italian",
		},
		{
			ID:           "2",
			Name:         "Sakura Sushi",
			Description:  "Premium Japanese sushi and traditional dishes",
			Image:        "https://images.pexels.com/photos/2098085/pexels-photo-2098085.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:       4.9,
			DeliveryTime: "30-40 min",
			DeliveryFee:  price("3.99"),
			Category:     "Japanese",
			CuisineType:  "Japanese",
		},
		{
			ID:           "3",
			Name:         "Burger Palace",
			Description:  "Gourmet burgers and crispy fries",
			Image:        "https://images.pexels.com/photos/1633578/pexels-photo-1633578.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:       4.6,
			DeliveryTime: "15-25 min",
			DeliveryFee:  price("1.99"),
			Category:     "American",
			CuisineType:  "Fast Food",
		},
		{
			ID:           "4",
			Name:         "Spice Garden",
			Description:  "Authentic Indian curry and tandoor specialties",
			Image:        "https://images.pexels.com/photos/1580594/pexels-photo-1580594.jpeg?auto=compress&cs=tinysrgb&w=800",
			Rating:       4.7,
			DeliveryTime: "35-45 min",
			DeliveryFee:  price("2.49"),
			Category:     "Indian",
			CuisineType:  "Indian",
		},
	}
}

func SeedMenuItems() []MenuItem {
	return []MenuItem{
		{
			ID:           "1",
			RestaurantID: "1",
			Name:         "Margherita Pizza",
			Description:  "Fresh tomatoes, mozzarella, basil, and olive oil",
			Price:        price("16.99"),
			Image:        "https://images.pexels.com/photos/2147491/pexels-photo-2147491.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:     "Pizza",
			Popular:      true,
			Customizations: []CustomizationGroup{
				{
					ID:            "size",
					Name:          "Size",
					Required:      true,
					MaxSelections: intPtr(1),
					Options: []CustomizationOption{
						{ID: "small", Name: `Small (10")`, Price: price("0")},
						{ID: "medium", Name: `Medium (12")`, Price: price("3")},
						{ID: "large", Name: `Large (14")`, Price: price("6")},
					},
				},
				{
					ID:            "toppings",
					Name:          "Extra Toppings",
					MaxSelections: intPtr(5),
					Options: []CustomizationOption{
						{ID: "pepperoni", Name: "Pepperoni", Price: price("2.50")},
						{ID: "mushrooms", Name: "Mushrooms", Price: price("1.50")},
						{ID: "olives", Name: "Black Olives", Price: price("1.50")},
						{ID: "peppers", Name: "Bell Peppers", Price: price("1.50")},
					},
				},
			},
		},
		{
			ID:           "2",
			RestaurantID: "2",
			Name:         "Dragon Roll",
			Description:  "Shrimp tempura, cucumber, topped with eel and avocado",
			Price:        price("14.99"),
			Image:        "https://images.pexels.com/photos/357756/pexels-photo-357756.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:     "Sushi",
			Popular:      true,
		},
		{
			ID:           "3",
			RestaurantID: "3",
			Name:         "Classic Cheeseburger",
			Description:  "Beef patty, cheddar cheese, lettuce, tomato, onion",
			Price:        price("12.99"),
			Image:        "https://images.pexels.com/photos/1633578/pexels-photo-1633578.jpeg?auto=compress&cs=tinysrgb&w=600",
			Category:     "Burgers",
			Customizations: []CustomizationGroup{
				{
					ID:            "patty",
					Name:          "Patty",
					Required:      true,
					MaxSelections: intPtr(1),
					Options: []CustomizationOption{
						{ID: "beef", Name: "Beef", Price: price("0")},
						{ID: "chicken", Name: "Chicken", Price: price("1")},
						{ID: "veggie", Name: "Veggie", Price: price("0")},
					},
				},
			},
		},
	}
}
