package ports

import (
	"context"

	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// ContactRepository defines persistence operations for contact submissions.
type ContactRepository interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	FindByID(ctx context.Context, id string) (*domain.Contact, error)
	FindAll(ctx context.Context) ([]*domain.Contact, error)
	MarkRead(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// CreateContactInput carries an inbound contact-form submission.
type CreateContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
	Type    string
}

// ContactService defines use-case operations for contact submissions.
type ContactService interface {
	Create(ctx context.Context, input CreateContactInput) (*domain.Contact, error)
	GetAll(ctx context.Context) ([]*domain.Contact, error)
	Get(ctx context.Context, id string) (*domain.Contact, error)
	MarkRead(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
