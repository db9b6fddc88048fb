package http

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Response is the envelope every /api endpoint answers with.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func respondData(w http.ResponseWriter, status int, data interface{}) {
	respondJSON(w, status, Response{Success: true, Data: data})
}

// respondList includes the element count alongside the data, matching the
// listing endpoints' contract.
func respondList(w http.ResponseWriter, status int, data interface{}, count int) {
	respondJSON(w, status, Response{Success: true, Count: &count, Data: data})
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, Response{Success: false, Message: message})
}
