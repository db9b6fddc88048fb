package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/herbalgarden/storefront/internal/domain"
	"github.com/herbalgarden/storefront/internal/service"
)

type Orders interface {
	PlaceOrder(ctx context.Context, order *domain.Order) (*service.OrderConfirmation, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
}

type OrderHandler struct {
	orders   Orders
	validate *validator.Validate
}

func NewOrderHandler(orders Orders) *OrderHandler {
	return &OrderHandler{
		orders:   orders,
		validate: validator.New(),
	}
}

type customerDTO struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address" validate:"required"`
}

type orderItemDTO struct {
	ProductID string  `json:"productId" validate:"required"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity" validate:"gte=1"`
	Price     float64 `json:"price" validate:"gte=0"`
	Image     string  `json:"image"`
}

type createOrderDTO struct {
	Customer      customerDTO    `json:"customer" validate:"required"`
	Items         []orderItemDTO `json:"items" validate:"required,min=1,dive"`
	TotalAmount   float64        `json:"totalAmount" validate:"gte=0"`
	PaymentMethod string         `json:"paymentMethod"`
	Notes         string         `json:"notes"`
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto createOrderDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validate.Struct(dto); err != nil {
		respondError(w, http.StatusBadRequest, "Customer info and items are required")
		return
	}

	items := make([]domain.OrderItem, 0, len(dto.Items))
	for _, it := range dto.Items {
		items = append(items, domain.OrderItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			Price:     it.Price,
			Image:     it.Image,
		})
	}

	order := &domain.Order{
		Customer: domain.Customer{
			Name:    dto.Customer.Name,
			Email:   dto.Customer.Email,
			Phone:   dto.Customer.Phone,
			Address: dto.Customer.Address,
		},
		Items:         items,
		TotalAmount:   dto.TotalAmount,
		PaymentMethod: domain.PaymentMethod(dto.PaymentMethod),
		Notes:         dto.Notes,
	}

	confirmation, err := h.orders.PlaceOrder(r.Context(), order)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			respondError(w, http.StatusBadRequest, "Customer info and items are required")
			return
		}
		respondError(w, http.StatusInternalServerError, "Error creating order")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order placed successfully!",
		Data:    confirmation,
	})
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching orders")
		return
	}

	respondList(w, http.StatusOK, orders, len(orders))
}
