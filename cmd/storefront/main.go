package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/auth"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/cart"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/catalog"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/config"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/contracts"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/db"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/events"
	httpapi "github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/http"
	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		_, _ = os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	logger := newLogger(cfg)
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("service", contracts.StorefrontProducer))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var catalogRepo catalog.Repository = catalog.NewSeededMemoryRepository()
	var seqRepo events.SequenceRepository = events.NewMemorySequence()
	if cfg.DatabaseDSN != "" {
		if cfg.RunMigrations {
			if err := db.RunMigrations(cfg.DatabaseDSN, logger); err != nil {
				logger.Fatal("run migrations", zap.Error(err))
			}
		}

		pool, err := db.NewPool(ctx, cfg.DatabaseDSN)
		if err != nil {
			logger.Fatal("connect catalog pool", zap.Error(err))
		}
		defer pool.Close()
		catalogRepo = catalog.NewPostgresRepository(pool)

		database, err := db.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			logger.Fatal("open database", zap.Error(err))
		}
		defer database.Close()
		seqRepo = events.NewSequenceRepository(database)
	} else {
		logger.Info("DATABASE_DSN not set, serving the built-in catalog")
	}

	var publisher events.Publisher = events.NewLogPublisher(logger)
	if cfg.RabbitURL != "" {
		conn, err := events.Dial(cfg.RabbitURL)
		if err != nil {
			logger.Fatal("dial rabbitmq", zap.Error(err))
		}
		defer conn.Close()

		rp, err := events.NewRabbitPublisher(conn, seqRepo, events.PublisherOptions{
			Producer: contracts.StorefrontProducer,
			Timeout:  5 * time.Second,
		})
		if err != nil {
			logger.Fatal("create rabbit publisher", zap.Error(err))
		}
		defer func() {
			if err := rp.Close(); err != nil {
				logger.Warn("publisher close", zap.Error(err))
			}
		}()
		publisher = rp
	} else {
		logger.Info("RABBITMQ_URL not set, events are logged only")
	}

	var validator *auth.Validator
	if cfg.JWTSecret != "" {
		validator, err = auth.NewValidator(cfg.JWTSecret)
		if err != nil {
			logger.Fatal("jwt validator", zap.Error(err))
		}
	}

	client, err := checkout.NewClient(cfg.CheckoutEndpoint, &http.Client{Timeout: cfg.CheckoutTimeout})
	if err != nil {
		logger.Fatal("checkout client", zap.Error(err))
	}
	checkoutSvc := checkout.NewService(checkout.Options{
		Client:    client,
		Publisher: publisher,
		Pricing: cart.PricingConfig{
			DeliveryFee: cfg.DeliveryFee,
			TaxRate:     cfg.TaxRate,
		},
		Product: checkout.Product{
			PriceID: cfg.CheckoutPriceID,
			Name:    cfg.CheckoutProduct,
			Mode:    cfg.CheckoutMode,
		},
		SuccessURL: cfg.SuccessURL(),
		CancelURL:  cfg.CancelURL(),
		Logger:     logger,
	})

	sessions := session.NewStore()
	go sessions.RunSweeper(ctx, cfg.SessionSweepInterval, cfg.SessionTTL, func(removed int) {
		logger.Debug("expired sessions swept", zap.Int("removed", removed), zap.Int("remaining", sessions.Len()))
	})

	router := httpapi.NewRouter(httpapi.Deps{
		Logger:           logger,
		Catalog:          catalogRepo,
		Sessions:         sessions,
		Checkout:         checkoutSvc,
		Validator:        validator,
		CORSAllowOrigins: cfg.CORSAllowOrigins,
		SecureCookies:    cfg.Production(),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.CheckoutTimeout + 10*time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("storefront-service listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("graceful shutdown error", zap.Error(err))
	}
}

func newLogger(cfg config.Config) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.Production() {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return zap.NewNop()
	}
	return logger
}
