package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/herbalgarden/storefront/internal/domain"
	"github.com/herbalgarden/storefront/internal/repository"
)

// Catalog is what the product handlers need from the service layer.
type Catalog interface {
	ListProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SearchProducts(ctx context.Context, query string) ([]domain.Product, error)
}

type ProductHandler struct {
	catalog Catalog
}

func NewProductHandler(catalog Catalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProductFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching products")
		return
	}

	respondList(w, http.StatusOK, products, len(products))
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := h.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "Product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "Error fetching product")
		return
	}

	respondData(w, http.StatusOK, product)
}

func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := chi.URLParam(r, "query")

	products, err := h.catalog.SearchProducts(r.Context(), query)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error searching products")
		return
	}

	respondList(w, http.StatusOK, products, len(products))
}

func parseProductFilter(r *http.Request) (domain.ProductFilter, error) {
	q := r.URL.Query()

	filter := domain.ProductFilter{
		Search:   q.Get("search"),
		Category: domain.Category(q.Get("category")),
		Featured: q.Get("featured") == "true",
	}

	if raw := q.Get("minPrice"); raw != "" {
		min, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.ProductFilter{}, errors.New("minPrice must be a number")
		}
		filter.MinPrice = &min
	}
	if raw := q.Get("maxPrice"); raw != "" {
		max, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return domain.ProductFilter{}, errors.New("maxPrice must be a number")
		}
		filter.MaxPrice = &max
	}

	return filter, nil
}
