package ports

import (
	"context"

	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// CategoryRepository defines persistence operations for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) (*domain.Category, error)
	FindAll(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService defines use-case operations for categories.
type CategoryService interface {
	Create(ctx context.Context, ownerID, title string) (*domain.Category, error)
	GetAll(ctx context.Context) ([]*domain.Category, error)
	Delete(ctx context.Context, id string) error
}
