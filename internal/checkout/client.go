package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/andreasstove999/ecommerce-system/storefront-service-go/internal/middleware"
)

const defaultFailureMessage = "Failed to create checkout session"

var ErrCheckoutFailed = errors.New("checkout failed")

// Request is the body sent to the hosted checkout endpoint.
type Request struct {
	PriceID    string `json:"priceId"`
	SuccessURL string `json:"successUrl"`
	CancelURL  string `json:"cancelUrl"`
	Mode       string `json:"mode"`
}

// Session is the provider's handle for a started checkout. Callers redirect
// the shopper to URL.
type Session struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// ProviderError carries the user-facing message for a failed session
// creation.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("checkout provider returned %d: %s", e.StatusCode, e.Message)
}

func (e *ProviderError) Unwrap() error { return ErrCheckoutFailed }

type Client struct {
	endpoint *url.URL
	http     *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid checkout endpoint %q", endpoint)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: u, http: httpClient}, nil
}

// CreateSession posts req with the bearer token. Non-2xx responses surface
// the provider's "error" field when present.
func (c *Client) CreateSession(ctx context.Context, token string, in Request) (Session, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return Session{}, fmt.Errorf("marshal checkout request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("build checkout request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	if cid := middleware.GetCorrelationID(ctx); cid != "" {
		req.Header.Set(middleware.HeaderCorrelationID, cid)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrCheckoutFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Session{}, fmt.Errorf("%w: read response: %v", ErrCheckoutFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		msg := defaultFailureMessage
		if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
			msg = payload.Error
		}
		return Session{}, &ProviderError{StatusCode: resp.StatusCode, Message: msg}
	}

	var out Session
	if err := json.Unmarshal(raw, &out); err != nil || out.URL == "" {
		return Session{}, &ProviderError{StatusCode: resp.StatusCode, Message: defaultFailureMessage}
	}
	return out, nil
}

// Message returns the text to show the shopper for err.
func Message(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Message
	}
	return defaultFailureMessage
}
