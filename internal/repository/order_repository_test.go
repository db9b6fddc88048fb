package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbalgarden/storefront/internal/domain"
)

func TestOrderInsertAndListAll(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	first := &domain.Order{
		OrderID: "ORD1700000000000123",
		Customer: domain.Customer{
			Name:    "Asha Verma",
			Email:   "asha@example.com",
			Address: "12 Garden Lane",
		},
		Items: []domain.OrderItem{
			{ProductID: "1", Name: "Tulsi", Quantity: 2, Price: 13.43},
		},
		TotalAmount:   26.86,
		PaymentMethod: domain.PaymentCashOnDelivery,
		CreatedAt:     time.Now().UTC().Add(-time.Minute),
	}
	second := &domain.Order{
		OrderID: "ORD1700000000000456",
		Customer: domain.Customer{
			Name:    "Ravi Nair",
			Email:   "ravi@example.com",
			Address: "8 Spice Road",
		},
		Items: []domain.OrderItem{
			{ProductID: "2", Name: "Turmeric", Quantity: 1, Price: 7.25},
		},
		TotalAmount:   7.25,
		PaymentMethod: domain.PaymentOnline,
		CreatedAt:     time.Now().UTC(),
	}

	require.NoError(t, repo.Insert(ctx, first))
	require.NoError(t, repo.Insert(ctx, second))

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)

	// Newest first.
	assert.Equal(t, "ORD1700000000000456", orders[0].OrderID)
	assert.Equal(t, "ORD1700000000000123", orders[1].OrderID)
	assert.InDelta(t, 26.86, orders[1].TotalAmount, 0.001)
	assert.Equal(t, domain.PaymentCashOnDelivery, orders[1].PaymentMethod)
	require.Len(t, orders[1].Items, 1)
	assert.Equal(t, "Tulsi", orders[1].Items[0].Name)
}

func TestOrderInsert_DuplicateOrderID(t *testing.T) {
	repo := NewOrderRepository(setupTestDB(t))
	ctx := context.Background()

	order := &domain.Order{
		OrderID: "ORD1700000000000789",
		Customer: domain.Customer{
			Name:    "Asha Verma",
			Email:   "asha@example.com",
			Address: "12 Garden Lane",
		},
		Items:       []domain.OrderItem{{ProductID: "1", Name: "Tulsi", Quantity: 1, Price: 13.43}},
		TotalAmount: 13.43,
		CreatedAt:   time.Now().UTC(),
	}

	require.NoError(t, repo.Insert(ctx, order))

	dup := *order
	assert.Error(t, repo.Insert(ctx, &dup))
}
