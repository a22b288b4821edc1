package httpapi

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/session"
)

type addItemRequest struct {
	MenuItemID string              `json:"menuItemId"`
	Selections map[string][]string `json:"selections"`
	Quantity   int                 `json:"quantity"`
}

// cartOp runs fn on the session cart and responds with the cart view.
func (h *Handler) cartOp(w http.ResponseWriter, r *http.Request, fn func(c *cart.Cart)) {
	var view cartView
	_ = middleware.GetSession(r.Context()).Do(func(st *session.State) error {
		fn(st.Cart)
		view = newCartView(st.Cart, h.checkout.Pricing())
		return nil
	})
	writeJSON(w, http.StatusOK, view)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	h.cartOp(w, r, func(*cart.Cart) {})
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	h.cartOp(w, r, func(c *cart.Cart) { c.Clear() })
}

// AddCartItem adds a configured item in one call. Selections are checked
// the same way a customization commit checks them.
func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(w, r, &req); err != nil || strings.TrimSpace(req.MenuItemID) == "" {
		writeError(w, r, http.StatusBadRequest, "menuItemId is required")
		return
	}
	if req.Quantity < 0 {
		writeError(w, r, http.StatusBadRequest, "quantity must be positive")
		return
	}

	item, ok := h.menuItem(w, r, req.MenuItemID)
	if !ok {
		return
	}

	sel, err := cart.ResolveSelections(item, req.Selections)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if missing := cart.MissingRequired(item, sel); len(missing) > 0 {
		writeError(w, r, http.StatusUnprocessableEntity, cart.ErrRequiredSelectionMissing.Error()+": "+strings.Join(missing, ", "))
		return
	}

	var resp commitResponse
	_ = middleware.GetSession(r.Context()).Do(func(st *session.State) error {
		li := st.Cart.Add(item, sel, req.Quantity)
		resp = commitResponse{
			LineItem: newLineItemView(li),
			Cart:     newCartView(st.Cart, h.checkout.Pricing()),
		}
		return nil
	})
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) GetCartItem(w http.ResponseWriter, r *http.Request) {
	var (
		li    cart.LineItem
		found bool
	)
	id := chi.URLParam(r, "lineItemId")
	_ = middleware.GetSession(r.Context()).Do(func(st *session.State) error {
		li, found = st.Cart.Get(id)
		return nil
	})
	if !found {
		writeError(w, r, http.StatusNotFound, "line item not found")
		return
	}
	writeJSON(w, http.StatusOK, newLineItemView(li))
}

func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Quantity == nil {
		writeError(w, r, http.StatusBadRequest, "quantity is required")
		return
	}
	id := chi.URLParam(r, "lineItemId")
	h.cartOp(w, r, func(c *cart.Cart) { c.UpdateQuantity(id, *req.Quantity) })
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "lineItemId")
	h.cartOp(w, r, func(c *cart.Cart) { c.Remove(id) })
}
