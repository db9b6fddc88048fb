// Package client talks to the storefront API. The catalog load path falls
// back to the embedded snapshot when the backend is unreachable, so the
// storefront stays browsable offline.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/herbalgarden/storefront/internal/domain"
	"github.com/herbalgarden/storefront/internal/seed"
)

var ErrNotFound = errors.New("not found")

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Count   int             `json:"count"`
	Data    json.RawMessage `json:"data"`
}

// LoadProducts fetches the catalog, falling back to the embedded snapshot on
// any transport or server failure.
func (c *Client) LoadProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := c.get(ctx, "/api/products", &products)
	if err == nil {
		return products, nil
	}

	log.Warn().Err(err).Msg("catalog load failed, falling back to local snapshot")
	products, seedErr := seed.Products()
	if seedErr != nil {
		return nil, fmt.Errorf("catalog unavailable and snapshot unreadable: %w", seedErr)
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.get(ctx, "/api/products/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.get(ctx, "/api/products/search/"+url.PathEscape(query), &products); err != nil {
		return nil, err
	}
	return products, nil
}

type OrderConfirmation struct {
	OrderID     string    `json:"orderId"`
	OrderDate   time.Time `json:"orderDate"`
	TotalAmount float64   `json:"totalAmount"`
}

// PlaceOrder submits the order and returns the confirmation. Failures are
// surfaced immediately; there is no retry.
func (c *Client) PlaceOrder(ctx context.Context, order *domain.Order) (*OrderConfirmation, error) {
	var confirmation OrderConfirmation
	if err := c.post(ctx, "/api/orders", order, &confirmation); err != nil {
		return nil, err
	}
	return &confirmation, nil
}

type ContactReceipt struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (c *Client) SubmitContact(ctx context.Context, contact domain.Contact) (*ContactReceipt, error) {
	var receipt ContactReceipt
	if err := c.post(ctx, "/api/contact", contact, &receipt); err != nil {
		return nil, err
	}
	return &receipt, nil
}

type Health struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
}

func (c *Client) Health(ctx context.Context) (*Health, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/health", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	var health Health
	if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
		return nil, fmt.Errorf("failed to decode health payload: %w", err)
	}
	return &health, nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body *bytes.Reader) (*http.Request, error) {
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("X-Request-ID", uuid.NewString())
	return req, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !env.Success {
		if resp.StatusCode == http.StatusNotFound {
			return ErrNotFound
		}
		if env.Message != "" {
			return errors.New(env.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if out == nil || env.Data == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}
