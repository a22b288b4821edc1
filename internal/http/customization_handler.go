package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/session"
)

var errNotCustomizing = errors.New("no item is being customized")

type startCustomizationRequest struct {
	MenuItemID string `json:"menuItemId"`
}

type quantityRequest struct {
	Quantity *int `json:"quantity"`
}

func (h *Handler) StartCustomization(w http.ResponseWriter, r *http.Request) {
	var req startCustomizationRequest
	if err := decodeJSON(w, r, &req); err != nil || strings.TrimSpace(req.MenuItemID) == "" {
		writeError(w, r, http.StatusBadRequest, "menuItemId is required")
		return
	}

	item, ok := h.menuItem(w, r, req.MenuItemID)
	if !ok {
		return
	}

	var view customizationView
	_ = middleware.GetSession(r.Context()).Do(func(st *session.State) error {
		view = newCustomizationView(st.StartCustomizing(item))
		return nil
	})
	writeJSON(w, http.StatusCreated, view)
}

func (h *Handler) GetCustomization(w http.ResponseWriter, r *http.Request) {
	h.withCustomizer(w, r, http.StatusOK, func(cz *cart.Customizer) error { return nil })
}

func (h *Handler) DiscardCustomization(w http.ResponseWriter, r *http.Request) {
	_ = middleware.GetSession(r.Context()).Do(func(st *session.State) error {
		st.StopCustomizing()
		return nil
	})
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) SelectOption(w http.ResponseWriter, r *http.Request) {
	groupID, optionID := chi.URLParam(r, "groupId"), chi.URLParam(r, "optionId")
	h.withCustomizer(w, r, http.StatusOK, func(cz *cart.Customizer) error {
		return cz.Select(groupID, optionID)
	})
}

func (h *Handler) DeselectOption(w http.ResponseWriter, r *http.Request) {
	groupID, optionID := chi.URLParam(r, "groupId"), chi.URLParam(r, "optionId")
	h.withCustomizer(w, r, http.StatusOK, func(cz *cart.Customizer) error {
		return cz.Deselect(groupID, optionID)
	})
}

func (h *Handler) SetCustomizationQuantity(w http.ResponseWriter, r *http.Request) {
	var req quantityRequest
	if err := decodeJSON(w, r, &req); err != nil || req.Quantity == nil {
		writeError(w, r, http.StatusBadRequest, "quantity is required")
		return
	}
	h.withCustomizer(w, r, http.StatusOK, func(cz *cart.Customizer) error {
		cz.SetQuantity(*req.Quantity)
		return nil
	})
}

type commitResponse struct {
	LineItem lineItemView `json:"lineItem"`
	Cart     cartView     `json:"cart"`
}

func (h *Handler) CommitCustomization(w http.ResponseWriter, r *http.Request) {
	var resp commitResponse
	err := middleware.GetSession(r.Context()).Do(func(st *session.State) error {
		if st.Customizer == nil {
			return errNotCustomizing
		}
		li, err := st.Customizer.Commit(st.Cart)
		if err != nil {
			return err
		}
		st.StopCustomizing()
		resp = commitResponse{
			LineItem: newLineItemView(li),
			Cart:     newCartView(st.Cart, h.checkout.Pricing()),
		}
		return nil
	})
	if err != nil {
		h.customizationError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

// withCustomizer applies fn to the session's customizer and responds with
// the resulting view.
func (h *Handler) withCustomizer(w http.ResponseWriter, r *http.Request, status int, fn func(cz *cart.Customizer) error) {
	var view customizationView
	err := middleware.GetSession(r.Context()).Do(func(st *session.State) error {
		if st.Customizer == nil {
			return errNotCustomizing
		}
		if err := fn(st.Customizer); err != nil {
			return err
		}
		view = newCustomizationView(st.Customizer)
		return nil
	})
	if err != nil {
		h.customizationError(w, r, err)
		return
	}
	writeJSON(w, status, view)
}

func (h *Handler) customizationError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, errNotCustomizing):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrUnknownGroup), errors.Is(err, cart.ErrUnknownOption):
		writeError(w, r, http.StatusNotFound, err.Error())
	case errors.Is(err, cart.ErrTooManySelections):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, cart.ErrRequiredSelectionMissing):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		h.internalError(w, r, "customization", err)
	}
}

func (h *Handler) menuItem(w http.ResponseWriter, r *http.Request, id string) (catalog.MenuItem, bool) {
	item, err := h.catalog.GetMenuItem(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "menu item not found")
			return catalog.MenuItem{}, false
		}
		h.internalError(w, r, "get menu item", err)
		return catalog.MenuItem{}, false
	}
	return item, true
}
