package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/herbalgarden/storefront/internal/domain"
	"github.com/herbalgarden/storefront/internal/service"
)

type Contacts interface {
	Submit(ctx context.Context, contact *domain.Contact) (*domain.Contact, error)
	ListContacts(ctx context.Context) ([]domain.Contact, error)
}

type ContactHandler struct {
	contacts Contacts
	validate *validator.Validate
}

func NewContactHandler(contacts Contacts) *ContactHandler {
	return &ContactHandler{
		contacts: contacts,
		validate: validator.New(),
	}
}

type contactDTO struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type contactReceiptDTO struct {
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var dto contactDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if err := h.validate.Struct(dto); err != nil {
		respondError(w, http.StatusBadRequest, "All fields are required")
		return
	}

	contact := &domain.Contact{
		Name:    dto.Name,
		Email:   dto.Email,
		Subject: dto.Subject,
		Message: dto.Message,
	}

	saved, err := h.contacts.Submit(r.Context(), contact)
	if err != nil {
		if errors.Is(err, service.ErrInvalidContact) {
			respondError(w, http.StatusBadRequest, "All fields are required")
			return
		}
		respondError(w, http.StatusInternalServerError, "Server error. Please try again.")
		return
	}

	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Thank you! Your message has been sent.",
		Data: contactReceiptDTO{
			ID:          saved.ID.Hex(),
			SubmittedAt: saved.CreatedAt,
		},
	})
}

func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.contacts.ListContacts(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Error fetching contacts")
		return
	}

	respondList(w, http.StatusOK, contacts, len(contacts))
}
