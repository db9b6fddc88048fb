package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbalgarden/storefront/internal/domain"
)

func envelopeHandler(t *testing.T, status int, payload interface{}) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(payload))
	}
}

func TestLoadProducts_FromBackend(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(t, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   2,
		"data": []map[string]interface{}{
			{"id": 1, "name": "Tulsi", "price": 13.43},
			{"id": 2, "name": "Neem", "price": 9.00},
		},
	}))
	defer srv.Close()

	products, err := New(srv.URL).LoadProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Tulsi", products[0].Name)
	assert.InDelta(t, 9.00, products[1].Price, 0.001)
}

func TestLoadProducts_FallsBackToSnapshot(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	products, err := New(srv.URL).LoadProducts(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, products, "snapshot should keep the catalog browsable offline")
}

func TestLoadProducts_FallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(t, http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"message": "Error fetching products",
	}))
	defer srv.Close()

	products, err := New(srv.URL).LoadProducts(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, products)
}

func TestGetProduct_NotFound(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(t, http.StatusNotFound, map[string]interface{}{
		"success": false,
		"message": "Product not found",
	}))
	defer srv.Close()

	_, err := New(srv.URL).GetProduct(context.Background(), "999")

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlaceOrder_Success(t *testing.T) {
	var received struct {
		Customer    domain.Customer    `json:"customer"`
		Items       []domain.OrderItem `json:"items"`
		TotalAmount float64            `json:"totalAmount"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"message": "Order placed successfully!",
			"data": map[string]interface{}{
				"orderId":     "ORD1700000000000123",
				"orderDate":   time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
				"totalAmount": 26.86,
			},
		}))
	}))
	defer srv.Close()

	order := &domain.Order{
		Customer: domain.Customer{Name: "Asha Verma", Email: "asha@example.com", Address: "12 Garden Lane"},
		Items: []domain.OrderItem{
			{ProductID: "1", Name: "Tulsi", Quantity: 2, Price: 13.43},
		},
		TotalAmount: 26.86,
	}

	confirmation, err := New(srv.URL).PlaceOrder(context.Background(), order)

	require.NoError(t, err)
	assert.Equal(t, "ORD1700000000000123", confirmation.OrderID)
	assert.InDelta(t, 26.86, confirmation.TotalAmount, 0.001)
	assert.Equal(t, "Asha Verma", received.Customer.Name)
	require.Len(t, received.Items, 1)
	assert.Equal(t, 2, received.Items[0].Quantity)
}

func TestPlaceOrder_ValidationError(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(t, http.StatusBadRequest, map[string]interface{}{
		"success": false,
		"message": "Customer info and items are required",
	}))
	defer srv.Close()

	_, err := New(srv.URL).PlaceOrder(context.Background(), &domain.Order{})

	require.Error(t, err)
	assert.EqualError(t, err, "Customer info and items are required")
}

func TestSubmitContact_Success(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(t, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Thank you! Your message has been sent.",
		"data": map[string]interface{}{
			"id":          "64f0c0ffee0c0ffee0c0ffee",
			"submittedAt": time.Now().UTC(),
		},
	}))
	defer srv.Close()

	receipt, err := New(srv.URL).SubmitContact(context.Background(), domain.Contact{
		Name:    "Asha Verma",
		Email:   "asha@example.com",
		Subject: "Shipping",
		Message: "Do you ship seedlings?",
	})

	require.NoError(t, err)
	assert.Equal(t, "64f0c0ffee0c0ffee0c0ffee", receipt.ID)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"database":  "connected",
		}))
	}))
	defer srv.Close()

	health, err := New(srv.URL).Health(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, "connected", health.Database)
}
