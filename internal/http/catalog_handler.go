package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
)

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "storefront-service"})
}

func (h *Handler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Categories)
}

func (h *Handler) ListRestaurants(w http.ResponseWriter, r *http.Request) {
	all, err := h.catalog.ListRestaurants(r.Context())
	if err != nil {
		h.internalError(w, r, "list restaurants", err)
		return
	}
	q := r.URL.Query()
	writeJSON(w, http.StatusOK, catalog.Filter(all, catalog.RestaurantFilter{
		Category: q.Get("category"),
		Query:    q.Get("q"),
	}))
}

func (h *Handler) GetRestaurant(w http.ResponseWriter, r *http.Request) {
	rest, err := h.catalog.GetRestaurant(r.Context(), chi.URLParam(r, "restaurantId"))
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "restaurant not found")
			return
		}
		h.internalError(w, r, "get restaurant", err)
		return
	}
	writeJSON(w, http.StatusOK, rest)
}

func (h *Handler) ListMenu(w http.ResponseWriter, r *http.Request) {
	restaurantID := chi.URLParam(r, "restaurantId")
	if _, err := h.catalog.GetRestaurant(r.Context(), restaurantID); err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "restaurant not found")
			return
		}
		h.internalError(w, r, "get restaurant", err)
		return
	}

	items, err := h.catalog.ListMenu(r.Context(), restaurantID)
	if err != nil {
		h.internalError(w, r, "list menu", err)
		return
	}
	if items == nil {
		items = []catalog.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) internalError(w http.ResponseWriter, r *http.Request, op string, err error) {
	h.log.Error(op, zap.Error(err), zap.String("path", r.URL.Path))
	writeError(w, r, http.StatusInternalServerError, "internal error")
}
