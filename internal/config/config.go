package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

const (
	EnvProduction = "production"

	ModePayment      = "payment"
	ModeSubscription = "subscription"
)

type Config struct {
	Port   string
	AppEnv string

	// Postgres catalog + event sequences; empty means in-memory.
	DatabaseDSN   string
	RunMigrations bool

	// Empty means events are only logged.
	RabbitURL string

	CORSAllowOrigins []string

	// Empty means bearer tokens are forwarded without verification.
	JWTSecret string

	CheckoutEndpoint string
	CheckoutTimeout  time.Duration
	CheckoutPriceID  string
	CheckoutMode     string
	CheckoutProduct  string
	PublicBaseURL    string

	DeliveryFee decimal.Decimal
	TaxRate     decimal.Decimal

	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
}

func (c Config) Production() bool { return c.AppEnv == EnvProduction }

func (c Config) SuccessURL() string { return c.PublicBaseURL + "/order-success" }

func (c Config) CancelURL() string { return c.PublicBaseURL + "/cart" }

// Load reads the environment, after an optional .env file outside
// production.
func Load() (Config, error) {
	if getenv("APP_ENV", "development") != EnvProduction {
		_ = godotenv.Load()
	}

	cfg := Config{
		Port:   getenv("PORT", "8080"),
		AppEnv: getenv("APP_ENV", "development"),

		DatabaseDSN: getenv("DATABASE_DSN", ""),
		RabbitURL:   getenv("RABBITMQ_URL", ""),
		JWTSecret:   getenv("JWT_SECRET", ""),

		CORSAllowOrigins: splitCSV(getenv("CORS_ALLOW_ORIGINS", "*")),

		CheckoutEndpoint: getenv("CHECKOUT_ENDPOINT", "http://localhost:54321/functions/v1/stripe-checkout"),
		CheckoutPriceID:  getenv("CHECKOUT_PRICE_ID", "price_1SCG4xRpIzFDHyuvafVsJVjn"),
		CheckoutMode:     getenv("CHECKOUT_MODE", ModePayment),
		CheckoutProduct:  getenv("CHECKOUT_PRODUCT_NAME", "Food Order"),
		PublicBaseURL:    strings.TrimRight(getenv("PUBLIC_BASE_URL", "http://localhost:5173"), "/"),
	}

	var err error
	if cfg.RunMigrations, err = parseBool("RUN_MIGRATIONS", "true"); err != nil {
		return Config{}, err
	}
	if cfg.CheckoutTimeout, err = parseDuration("CHECKOUT_TIMEOUT", "15s"); err != nil {
		return Config{}, err
	}
	if cfg.SessionTTL, err = parseDuration("SESSION_TTL", "2h"); err != nil {
		return Config{}, err
	}
	if cfg.SessionSweepInterval, err = parseDuration("SESSION_SWEEP_INTERVAL", "5m"); err != nil {
		return Config{}, err
	}
	if cfg.DeliveryFee, err = parseDecimal("DELIVERY_FEE", "2.99"); err != nil {
		return Config{}, err
	}
	if cfg.TaxRate, err = parseDecimal("TAX_RATE", "0.08"); err != nil {
		return Config{}, err
	}

	if cfg.CheckoutMode != ModePayment && cfg.CheckoutMode != ModeSubscription {
		return Config{}, fmt.Errorf("CHECKOUT_MODE: must be %q or %q, got %q", ModePayment, ModeSubscription, cfg.CheckoutMode)
	}
	if cfg.DeliveryFee.IsNegative() {
		return Config{}, fmt.Errorf("DELIVERY_FEE: must not be negative")
	}
	if cfg.TaxRate.IsNegative() {
		return Config{}, fmt.Errorf("TAX_RATE: must not be negative")
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func parseDuration(k, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenv(k, def))
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: must be positive", k)
	}
	return d, nil
}

func parseBool(k, def string) (bool, error) {
	b, err := strconv.ParseBool(getenv(k, def))
	if err != nil {
		return false, fmt.Errorf("%s: %w", k, err)
	}
	return b, nil
}

func parseDecimal(k, def string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(getenv(k, def))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: %w", k, err)
	}
	return d, nil
}
