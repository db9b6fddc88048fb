package http

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports storage connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	storage Pinger
}

func NewHealthHandler(storage Pinger) *HealthHandler {
	return &HealthHandler{storage: storage}
}

type healthDTO struct {
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
	Database    string    `json:"database"`
	Collections []string  `json:"collections"`
}

func (h *HealthHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	database := "connected"
	if err := h.storage.Ping(ctx); err != nil {
		database = "disconnected"
	}

	respondJSON(w, http.StatusOK, healthDTO{
		Status:      "ok",
		Timestamp:   time.Now().UTC(),
		Database:    database,
		Collections: []string{"contacts", "products", "orders"},
	})
}
