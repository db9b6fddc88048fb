package repository

import (
	"context"
	"errors"

	"github.com/herbalgarden/storefront/internal/domain"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the catalog read path plus the seed hooks.
// Consumers define this interface, not the MongoDB implementation.
type ProductRepository interface {
	List(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	// Resolve looks a product up by either its storage identifier (ObjectID
	// hex) or its numeric catalog identifier, trying the former first.
	Resolve(ctx context.Context, id string) (*domain.Product, error)
	Search(ctx context.Context, query string) ([]domain.Product, error)
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, products []domain.Product) error
}

type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	ListAll(ctx context.Context) ([]domain.Order, error)
}

type ContactRepository interface {
	Insert(ctx context.Context, contact *domain.Contact) error
	ListAll(ctx context.Context) ([]domain.Contact, error)
}
