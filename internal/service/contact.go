package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/herbalgarden/storefront/internal/domain"
	"github.com/herbalgarden/storefront/internal/repository"
)

var ErrInvalidContact = errors.New("all fields are required")

type ContactService struct {
	repo repository.ContactRepository
}

func NewContactService(repo repository.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

// Submit trims every field, lower-cases the email and persists the record.
func (s *ContactService) Submit(ctx context.Context, contact *domain.Contact) (*domain.Contact, error) {
	contact.Name = strings.TrimSpace(contact.Name)
	contact.Email = strings.ToLower(strings.TrimSpace(contact.Email))
	contact.Subject = strings.TrimSpace(contact.Subject)
	contact.Message = strings.TrimSpace(contact.Message)

	if contact.Name == "" || contact.Email == "" || contact.Subject == "" || contact.Message == "" {
		return nil, ErrInvalidContact
	}

	contact.CreatedAt = time.Now().UTC()

	if err := s.repo.Insert(ctx, contact); err != nil {
		log.Error().Err(err).Str("email", contact.Email).Msg("failed to persist contact")
		return nil, fmt.Errorf("failed to persist contact: %w", err)
	}

	log.Info().Str("email", contact.Email).Str("subject", contact.Subject).Msg("contact submission saved")
	return contact, nil
}

func (s *ContactService) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	contacts, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to list contacts")
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}
