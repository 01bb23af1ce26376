package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

// ContactService implements contact-form submissions and their admin-side
// management.
type ContactService struct {
	contacts ports.ContactRepository
	counts   ports.CountCache
	log      zerolog.Logger
}

func NewContactService(contacts ports.ContactRepository, counts ports.CountCache, log zerolog.Logger) *ContactService {
	return &ContactService{contacts: contacts, counts: counts, log: log}
}

func (s *ContactService) Create(ctx context.Context, input ports.CreateContactInput) (*domain.Contact, error) {
	kind := input.Type
	if kind == "" {
		kind = domain.ContactTypeContact
	}

	now := time.Now().UTC()
	contact := &domain.Contact{
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Message:   input.Message,
		Type:      kind,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.contacts.Create(ctx, contact)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("contact_id", created.ID).Str("type", created.Type).Msg("contact submission received")
	return created, nil
}

func (s *ContactService) GetAll(ctx context.Context) ([]*domain.Contact, error) {
	return s.contacts.FindAll(ctx)
}

func (s *ContactService) Get(ctx context.Context, id string) (*domain.Contact, error) {
	return s.contacts.FindByID(ctx, id)
}

func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.Contact, error) {
	return s.contacts.MarkRead(ctx, id)
}

func (s *ContactService) Delete(ctx context.Context, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("contact_id", id).Msg("contact submission deleted")
	return nil
}

func (s *ContactService) Count(ctx context.Context) (int64, error) {
	return cachedCount(ctx, s.counts, "contacts", s.contacts.Count)
}
