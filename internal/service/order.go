package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/herbalgarden/storefront/internal/domain"
	"github.com/herbalgarden/storefront/internal/repository"
)

var ErrInvalidOrder = errors.New("customer info and items are required")

// OrderIDGenerator produces human-readable order identifiers. The default
// combines a fixed prefix, the current time at millisecond resolution and a
// random suffix; uniqueness is probabilistic, good enough at this volume.
type OrderIDGenerator func(now time.Time) string

func DefaultOrderID(now time.Time) string {
	return fmt.Sprintf("ORD%d%d", now.UnixMilli(), rand.Intn(1000))
}

type OrderService struct {
	repo  repository.OrderRepository
	now   func() time.Time
	newID OrderIDGenerator
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{
		repo:  repo,
		now:   time.Now,
		newID: DefaultOrderID,
	}
}

// OrderConfirmation is what the customer gets back after a successful
// placement.
type OrderConfirmation struct {
	OrderID     string    `json:"orderId"`
	OrderDate   time.Time `json:"orderDate"`
	TotalAmount float64   `json:"totalAmount"`
}

// PlaceOrder validates the submission, stamps an identifier and creation
// time, and persists the record. The submitted totalAmount is stored as-is
// for wire compatibility; a recompute mismatch is logged but not rejected.
func (s *OrderService) PlaceOrder(ctx context.Context, order *domain.Order) (*OrderConfirmation, error) {
	if strings.TrimSpace(order.Customer.Name) == "" ||
		strings.TrimSpace(order.Customer.Email) == "" ||
		len(order.Items) == 0 {
		return nil, ErrInvalidOrder
	}

	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentCashOnDelivery
	}

	now := s.now().UTC()
	order.OrderID = s.newID(now)
	order.CreatedAt = now

	if computed := itemsTotal(order.Items); math.Abs(computed-order.TotalAmount) > 0.005 {
		log.Warn().
			Str("order_id", order.OrderID).
			Float64("submitted_total", order.TotalAmount).
			Float64("computed_total", computed).
			Msg("submitted total does not match item sum, persisting as submitted")
	}

	if err := s.repo.Insert(ctx, order); err != nil {
		log.Error().Err(err).Str("order_id", order.OrderID).Msg("failed to persist order")
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	log.Info().
		Str("order_id", order.OrderID).
		Str("customer", order.Customer.Name).
		Float64("total", order.TotalAmount).
		Int("items", len(order.Items)).
		Msg("order placed")

	return &OrderConfirmation{
		OrderID:     order.OrderID,
		OrderDate:   order.CreatedAt,
		TotalAmount: order.TotalAmount,
	}, nil
}

func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func itemsTotal(items []domain.OrderItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
