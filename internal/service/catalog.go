package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/herbalgarden/storefront/internal/cache"
	"github.com/herbalgarden/storefront/internal/domain"
	"github.com/herbalgarden/storefront/internal/repository"
)

// CatalogService serves the read-only product catalog through a
// read-through cache.
type CatalogService struct {
	repo  repository.ProductRepository
	cache cache.CatalogCache
	sfg   singleflight.Group // prevents cache stampede per filter
}

func NewCatalogService(repo repository.ProductRepository, cache cache.CatalogCache) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
	}
}

func (s *CatalogService) ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error) {
	key := filterKey(filter)

	v, err, _ := s.sfg.Do(key, func() (interface{}, error) {
		products, err := s.cache.Get(ctx, key)
		if err == nil {
			return products, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			log.Warn().Err(err).Str("key", key).Msg("catalog cache get failed, falling through to repository")
		}

		products, err = s.repo.List(ctx, filter)
		if err != nil {
			return nil, err
		}

		if errSet := s.cache.Set(ctx, key, products); errSet != nil {
			log.Warn().Err(errSet).Str("key", key).Msg("catalog cache set failed")
		}

		return products, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]domain.Product), nil
}

func (s *CatalogService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.repo.Resolve(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, repository.ErrProductNotFound
		}
		log.Error().Err(err).Str("product_id", id).Msg("failed to resolve product")
		return nil, fmt.Errorf("failed to resolve product: %w", err)
	}
	return product, nil
}

func (s *CatalogService) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.repo.Search(ctx, query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("product search failed")
		return nil, fmt.Errorf("product search failed: %w", err)
	}
	return products, nil
}

// InvalidateCatalog drops cached listings, called after seeding.
func (s *CatalogService) InvalidateCatalog(ctx context.Context) error {
	return s.cache.DeleteAll(ctx)
}

func filterKey(f domain.ProductFilter) string {
	min, max := "", ""
	if f.MinPrice != nil {
		min = fmt.Sprintf("%g", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		max = fmt.Sprintf("%g", *f.MaxPrice)
	}
	return fmt.Sprintf("%s|%s|%s|%s|%t", f.Search, f.Category, min, max, f.Featured)
}
