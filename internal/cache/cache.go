package cache

import (
	"context"
	"errors"

	"github.com/herbalgarden/storefront/internal/domain"
)

// CatalogCache holds filtered catalog listings keyed by their filter.
type CatalogCache interface {
	Get(ctx context.Context, key string) ([]domain.Product, error)
	Set(ctx context.Context, key string, products []domain.Product) error
	// DeleteAll drops every cached listing, used after (re)seeding.
	DeleteAll(ctx context.Context) error
}

var ErrCacheMiss = errors.New("cache miss")
