// Package seed bootstraps the products collection from an embedded catalog
// snapshot. The same snapshot doubles as the storefront's offline fallback.
package seed

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/herbalgarden/storefront/internal/domain"
	"github.com/herbalgarden/storefront/internal/repository"
)

//go:embed products.json
var productsJSON []byte

// Products decodes the embedded catalog snapshot.
func Products() ([]domain.Product, error) {
	var products []domain.Product
	if err := json.Unmarshal(productsJSON, &products); err != nil {
		return nil, fmt.Errorf("failed to decode embedded catalog: %w", err)
	}
	return products, nil
}

// Run inserts the snapshot when the products collection is empty. It is a
// no-op when products already exist.
func Run(ctx context.Context, repo repository.ProductRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}

	if count > 0 {
		log.Info().Int64("count", count).Msg("found existing products, skipping seed")
		return nil
	}

	products, err := Products()
	if err != nil {
		return err
	}

	if err := repo.InsertMany(ctx, products); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	log.Info().Int("count", len(products)).Msg("products seeded")
	return nil
}
