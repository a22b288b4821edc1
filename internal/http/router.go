package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/auth"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/session"
)

type Deps struct {
	Logger   *zap.Logger
	Catalog  catalog.Repository
	Sessions *session.Store
	Checkout *checkout.Service

	// Nil means bearer tokens are forwarded unverified.
	Validator *auth.Validator

	CORSAllowOrigins []string
	SecureCookies    bool
	Now              func() time.Time
}

func NewRouter(d Deps) http.Handler {
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	h := &Handler{
		log:      d.Logger,
		catalog:  d.Catalog,
		checkout: d.Checkout,
		now:      d.Now,
	}

	r := chi.NewRouter()
	// Middlewares (outer -> inner)
	r.Use(chimw.RealIP)
	r.Use(middleware.CorrelationID)
	r.Use(middleware.Logging(d.Logger))
	r.Use(middleware.Recover(d.Logger))
	r.Use(middleware.CORS(d.CORSAllowOrigins))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/categories", h.ListCategories)
		r.Get("/restaurants", h.ListRestaurants)
		r.Get("/restaurants/{restaurantId}", h.GetRestaurant)
		r.Get("/restaurants/{restaurantId}/menu", h.ListMenu)
		r.Get("/orders/{orderId}/tracking", h.GetTracking)
		r.Get("/checkout/product", h.GetCheckoutProduct)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(d.Validator))
			r.Use(middleware.Session(d.Sessions, d.SecureCookies))

			r.Route("/customization", func(r chi.Router) {
				r.Post("/", h.StartCustomization)
				r.Get("/", h.GetCustomization)
				r.Delete("/", h.DiscardCustomization)
				r.Put("/groups/{groupId}/options/{optionId}", h.SelectOption)
				r.Delete("/groups/{groupId}/options/{optionId}", h.DeselectOption)
				r.Put("/quantity", h.SetCustomizationQuantity)
				r.Post("/commit", h.CommitCustomization)
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", h.GetCart)
				r.Delete("/", h.ClearCart)
				r.Post("/items", h.AddCartItem)
				r.Get("/items/{lineItemId}", h.GetCartItem)
				r.Patch("/items/{lineItemId}", h.UpdateCartItem)
				r.Delete("/items/{lineItemId}", h.RemoveCartItem)
			})

			r.Post("/checkout", h.Checkout)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(d.Validator))
		r.Use(middleware.Session(d.Sessions, d.SecureCookies))
		r.Get("/order-success", h.OrderSuccess)
	})

	return r
}

type Handler struct {
	log      *zap.Logger
	catalog  catalog.Repository
	checkout *checkout.Service
	now      func() time.Time
}
