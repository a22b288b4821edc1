package checkout

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/auth"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/contracts"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/events"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/session"
)

var (
	ErrAuthRequired       = errors.New("sign in required to checkout")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrEmptyCart          = errors.New("cart is empty")
)

type SessionCreator interface {
	CreateSession(ctx context.Context, token string, req Request) (Session, error)
}

// Product is the single hosted-checkout product the storefront sells
// through.
type Product struct {
	PriceID string `json:"priceId"`
	Name    string `json:"name"`
	Mode    string `json:"mode"`
}

type Options struct {
	Client     SessionCreator
	Publisher  events.Publisher
	Pricing    cart.PricingConfig
	Product    Product
	SuccessURL string
	CancelURL  string
	Logger     *zap.Logger
}

type Service struct {
	client     SessionCreator
	publisher  events.Publisher
	pricing    cart.PricingConfig
	product    Product
	successURL string
	cancelURL  string
	log        *zap.Logger
	now        func() time.Time
}

func NewService(opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		client:     opts.Client,
		publisher:  opts.Publisher,
		pricing:    opts.Pricing,
		product:    opts.Product,
		successURL: opts.SuccessURL,
		cancelURL:  opts.CancelURL,
		log:        log,
		now:        time.Now,
	}
}

func (s *Service) Product() Product { return s.product }

func (s *Service) Pricing() cart.PricingConfig { return s.pricing }

// Begin creates a hosted checkout session for the shopper's cart. Only one
// Begin may be outstanding per session; concurrent calls fail with
// ErrCheckoutInProgress. There is no retry; the shopper retries manually.
func (s *Service) Begin(ctx context.Context, sess *session.Session, p auth.Principal) (Session, error) {
	if p.Token == "" {
		return Session{}, ErrAuthRequired
	}
	if !sess.TryBeginCheckout() {
		return Session{}, ErrCheckoutInProgress
	}
	defer sess.EndCheckout()

	var (
		items  []cart.LineItem
		totals cart.Totals
	)
	if err := sess.Do(func(st *session.State) error {
		if st.Cart.IsEmpty() {
			return ErrEmptyCart
		}
		items = st.Cart.Items()
		totals = st.Cart.Totals(s.pricing)
		return nil
	}); err != nil {
		return Session{}, err
	}

	out, err := s.client.CreateSession(ctx, p.Token, Request{
		PriceID:    s.product.PriceID,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
		Mode:       s.product.Mode,
	})
	if err != nil {
		s.log.Warn("checkout session failed",
			zap.String("sessionId", sess.ID),
			zap.String("correlationId", middleware.GetCorrelationID(ctx)),
			zap.Error(err),
		)
		return Session{}, err
	}

	meta := events.EventMeta{
		CorrelationID: middleware.GetCorrelationID(ctx),
		PartitionKey:  sess.ID,
	}
	payload := contracts.CheckoutStartedPayload{
		SessionID:         sess.ID,
		UserID:            p.UserID,
		CheckoutSessionID: out.SessionID,
		PriceID:           s.product.PriceID,
		Mode:              s.product.Mode,
		Items:             contracts.LineItems(items),
		Totals:            contracts.FromTotals(totals),
		Timestamp:         s.now().UTC(),
	}
	if err := s.publisher.PublishCheckoutStarted(ctx, meta, payload); err != nil {
		s.log.Error("publish CheckoutStarted", zap.String("sessionId", sess.ID), zap.Error(err))
	}

	s.log.Info("checkout session created",
		zap.String("sessionId", sess.ID),
		zap.String("checkoutSessionId", out.SessionID),
		zap.Int("items", len(items)),
		zap.String("total", cart.FormatMoney(totals.GrandTotal)),
	)
	return out, nil
}

// Receipt summarizes what a completed checkout cleared from the cart.
type Receipt struct {
	Items  []cart.LineItem
	Totals cart.Totals
}

// Complete handles the return from the hosted checkout: the cart is cleared
// and CartCheckedOut is published. Repeating it on an empty cart is a no-op.
func (s *Service) Complete(ctx context.Context, sess *session.Session, p auth.Principal) Receipt {
	var r Receipt
	_ = sess.Do(func(st *session.State) error {
		r.Items = st.Cart.Items()
		r.Totals = st.Cart.Totals(s.pricing)
		st.Cart.Clear()
		return nil
	})
	if len(r.Items) == 0 {
		return r
	}

	meta := events.EventMeta{
		CorrelationID: middleware.GetCorrelationID(ctx),
		PartitionKey:  sess.ID,
	}
	payload := contracts.CartCheckedOutPayload{
		SessionID: sess.ID,
		UserID:    p.UserID,
		Items:     contracts.LineItems(r.Items),
		Totals:    contracts.FromTotals(r.Totals),
		Timestamp: s.now().UTC(),
	}
	if err := s.publisher.PublishCartCheckedOut(ctx, meta, payload); err != nil {
		s.log.Error("publish CartCheckedOut", zap.String("sessionId", sess.ID), zap.Error(err))
	}
	return r
}
