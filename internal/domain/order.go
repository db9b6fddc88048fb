package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentOnline         PaymentMethod = "online"
)

type Customer struct {
	Name    string `bson:"name" json:"name"`
	Email   string `bson:"email" json:"email"`
	Phone   string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address string `bson:"address" json:"address"`
}

// OrderItem is a snapshot of a cart line at submission time. It carries the
// name/price/image copied from the product so later catalog edits cannot
// change a placed order.
type OrderItem struct {
	ProductID string  `bson:"productId" json:"productId"`
	Name      string  `bson:"name" json:"name"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
	Image     string  `bson:"image,omitempty" json:"image,omitempty"`
}

// Order is immutable once persisted. OrderID is the human-readable
// identifier handed back to the customer; ID is the storage identifier.
type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	OrderID       string             `bson:"orderId" json:"orderId"`
	Customer      Customer           `bson:"customer" json:"customer"`
	Items         []OrderItem        `bson:"items" json:"items"`
	TotalAmount   float64            `bson:"totalAmount" json:"totalAmount"`
	PaymentMethod PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	Notes         string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
