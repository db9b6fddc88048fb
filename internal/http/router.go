package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterConfig struct {
	Catalog        Catalog
	Orders         Orders
	Contacts       Contacts
	Storage        Pinger
	StaticDir      string
	RequestTimeout time.Duration
}

func NewRouter(cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	products := NewProductHandler(cfg.Catalog)
	orders := NewOrderHandler(cfg.Orders)
	contacts := NewContactHandler(cfg.Contacts)
	health := NewHealthHandler(cfg.Storage)

	r.Get("/health", health.Get)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", products.List)
		r.Get("/products/search/{query}", products.Search)
		r.Get("/products/{id}", products.Get)

		r.Post("/contact", contacts.Create)
		r.Get("/contacts", contacts.List)

		r.Post("/orders", orders.Create)
		r.Get("/orders", orders.List)
	})

	if cfg.StaticDir != "" {
		serveStatic(r, cfg.StaticDir)
	}

	return r
}

// serveStatic serves the storefront assets and falls back to index.html for
// unmatched non-API routes so deep links keep working.
func serveStatic(r chi.Router, dir string) {
	fileServer := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, "/api/") {
			respondError(w, http.StatusNotFound, "Not found")
			return
		}

		path := filepath.Join(dir, filepath.Clean("/"+req.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, req)
			return
		}

		http.ServeFile(w, req, index)
	})
}
