package cart

import (
	"strconv"

	"github.com/herbalgarden/storefront/internal/domain"
)

// Catalog is the read-only product set the manager resolves identifiers
// against. Products are addressable by either their storage identifier or
// their numeric catalog identifier; both are normalized here once instead of
// being compared loosely at every call site.
type Catalog struct {
	products []domain.Product
	byKey    map[string]int
}

func NewCatalog(products []domain.Product) *Catalog {
	c := &Catalog{
		products: products,
		byKey:    make(map[string]int, len(products)*2),
	}
	for i, p := range products {
		if !p.ID.IsZero() {
			c.byKey[p.ID.Hex()] = i
		}
		c.byKey[strconv.FormatInt(p.CatalogID, 10)] = i
	}
	return c
}

func (c *Catalog) Lookup(id string) (domain.Product, bool) {
	i, ok := c.byKey[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

func (c *Catalog) Products() []domain.Product {
	return c.products
}

func (c *Catalog) Len() int {
	return len(c.products)
}
