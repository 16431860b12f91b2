// Package cashfree talks to the Cashfree payment gateway API.
package cashfree

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"celestial-payments/internal/domain"
)

const (
	sandboxBaseURL    = "https://sandbox.cashfree.com/pg"
	productionBaseURL = "https://api.cashfree.com/pg"

	apiVersion = "2023-08-01"
)

// Client is the processor surface the service layer depends on.
type Client interface {
	// CreateOrder registers an order and returns the session handle the
	// checkout widget consumes.
	CreateOrder(ctx context.Context, order *domain.Order) (*domain.CreatedOrder, error)
	// FetchPayments returns every payment attempt recorded for an order,
	// in no guaranteed order.
	FetchPayments(ctx context.Context, orderID string) ([]domain.PaymentAttempt, error)
}

// APIError is a non-2xx answer from the processor. Body is kept so the
// HTTP layer can surface it outside production.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("cashfree: status %d: %s", e.StatusCode, e.Body)
}

type client struct {
	baseURL      string
	clientID     string
	clientSecret string
	http         *http.Client
}

// New returns a Client against the production or sandbox environment.
func New(production bool, clientID, clientSecret string) Client {
	baseURL := sandboxBaseURL
	if production {
		baseURL = productionBaseURL
	}
	return NewWithBaseURL(baseURL, clientID, clientSecret, &http.Client{Timeout: 10 * time.Second})
}

// NewWithBaseURL exists for tests pointing at a stub server.
func NewWithBaseURL(baseURL, clientID, clientSecret string, httpClient *http.Client) Client {
	return &client{
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		http:         httpClient,
	}
}

func (c *client) CreateOrder(ctx context.Context, order *domain.Order) (*domain.CreatedOrder, error) {
	var created domain.CreatedOrder
	if err := c.do(ctx, http.MethodPost, "/orders", order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *client) FetchPayments(ctx context.Context, orderID string) ([]domain.PaymentAttempt, error) {
	var attempts []domain.PaymentAttempt
	if err := c.do(ctx, http.MethodGet, "/orders/"+orderID+"/payments", nil, &attempts); err != nil {
		return nil, err
	}
	return attempts, nil
}

func (c *client) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, buf)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-version", apiVersion)
	req.Header.Set("x-client-id", c.clientID)
	req.Header.Set("x-client-secret", c.clientSecret)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("cashfree: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cashfree: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("cashfree: decode response: %w", err)
	}
	return nil
}
