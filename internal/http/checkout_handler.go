package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/tracking"
)

func (h *Handler) GetCheckoutProduct(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.checkout.Product())
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.GetPrincipal(r.Context())
	out, err := h.checkout.Begin(r.Context(), middleware.GetSession(r.Context()), p)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrAuthRequired):
			writeError(w, r, http.StatusUnauthorized, err.Error())
		case errors.Is(err, checkout.ErrCheckoutInProgress):
			writeError(w, r, http.StatusConflict, err.Error())
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, r, http.StatusBadRequest, err.Error())
		default:
			writeError(w, r, http.StatusBadGateway, checkout.Message(err))
		}
		return
	}
	writeJSON(w, http.StatusOK, out)
}

type orderSuccessResponse struct {
	Status     string             `json:"status"`
	ItemsCount int                `json:"itemsCount"`
	Totals     cart.DisplayTotals `json:"totals"`
	Cart       cartView           `json:"cart"`
}

// OrderSuccess is where the hosted checkout returns the shopper. It clears
// the cart once.
func (h *Handler) OrderSuccess(w http.ResponseWriter, r *http.Request) {
	p, _ := middleware.GetPrincipal(r.Context())
	receipt := h.checkout.Complete(r.Context(), middleware.GetSession(r.Context()), p)

	count := 0
	for _, li := range receipt.Items {
		count += li.Quantity
	}
	writeJSON(w, http.StatusOK, orderSuccessResponse{
		Status:     "success",
		ItemsCount: count,
		Totals:     receipt.Totals.Display(),
		Cart:       cartView{Items: []lineItemView{}, Totals: cart.ComputeTotals(nil, h.checkout.Pricing()).Display()},
	})
}

func (h *Handler) GetTracking(w http.ResponseWriter, r *http.Request) {
	order := tracking.MockOrder(h.now())
	if chi.URLParam(r, "orderId") != order.ID {
		writeError(w, r, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, tracking.NewView(order))
}
