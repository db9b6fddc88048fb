package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/herbalgarden/storefront/internal/domain"
)

func TestProducts_SnapshotIsUsable(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	seen := make(map[int64]bool)
	categories := make(map[domain.Category]bool)
	for _, p := range products {
		assert.NotEmpty(t, p.Name)
		assert.NotEmpty(t, p.Description)
		assert.Greater(t, p.Price, 0.0)
		assert.True(t, p.Category.Valid(), "category %q", p.Category)
		assert.False(t, seen[p.CatalogID], "duplicate catalog id %d", p.CatalogID)
		seen[p.CatalogID] = true
		categories[p.Category] = true
	}

	// Keeps the storefront filters meaningful out of the box.
	assert.Len(t, categories, 4)
}

func TestProducts_KnownEntries(t *testing.T) {
	products, err := Products()
	require.NoError(t, err)

	byID := make(map[int64]domain.Product)
	for _, p := range products {
		byID[p.CatalogID] = p
	}

	tulsi, ok := byID[1]
	require.True(t, ok)
	assert.Equal(t, "Tulsi", tulsi.Name)
	assert.InDelta(t, 13.43, tulsi.Price, 0.001)

	neem, ok := byID[2]
	require.True(t, ok)
	assert.Equal(t, "Neem", neem.Name)
	assert.InDelta(t, 9.00, neem.Price, 0.001)
}

type stubProductRepo struct {
	count    int64
	inserted []domain.Product
}

func (s *stubProductRepo) List(context.Context, domain.ProductFilter) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Resolve(context.Context, string) (*domain.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Search(context.Context, string) ([]domain.Product, error) {
	return nil, nil
}

func (s *stubProductRepo) Count(context.Context) (int64, error) {
	return s.count, nil
}

func (s *stubProductRepo) InsertMany(_ context.Context, products []domain.Product) error {
	s.inserted = append(s.inserted, products...)
	return nil
}

func TestRun_SeedsEmptyCollection(t *testing.T) {
	repo := &stubProductRepo{}

	require.NoError(t, Run(context.Background(), repo))

	assert.Len(t, repo.inserted, 8)
}

func TestRun_SkipsWhenPopulated(t *testing.T) {
	repo := &stubProductRepo{count: 8}

	require.NoError(t, Run(context.Background(), repo))

	assert.Empty(t, repo.inserted)
}
