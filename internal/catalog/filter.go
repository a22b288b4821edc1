package catalog

import "strings"

// Filter keeps restaurants matching both the category and the search query.
// An empty category or "All" matches every restaurant; the query is a
// case-insensitive substring match on name, description and cuisine type.
func Filter(restaurants []Restaurant, f RestaurantFilter) []Restaurant {
	category := strings.TrimSpace(f.Category)
	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]Restaurant, 0, len(restaurants))
	for _, r := range restaurants {
		if category != "" && category != CategoryAll && r.Category != category {
			continue
		}
		if query != "" && !matchesQuery(r, query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesQuery(r Restaurant, query string) bool {
	return strings.Contains(strings.ToLower(r.Name), query) ||
		strings.Contains(strings.ToLower(r.Description), query) ||
		strings.Contains(strings.ToLower(r.CuisineType), query)
}
