package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

// CategoryService implements category management. All mutations are gated
// admin-only at the route level.
type CategoryService struct {
	categories ports.CategoryRepository
	log        zerolog.Logger
}

func NewCategoryService(categories ports.CategoryRepository, log zerolog.Logger) *CategoryService {
	return &CategoryService{categories: categories, log: log}
}

func (s *CategoryService) Create(ctx context.Context, ownerID, title string) (*domain.Category, error) {
	now := time.Now().UTC()
	category := &domain.Category{
		OwnerID:   ownerID,
		Title:     title,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.categories.Create(ctx, category)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("category_id", created.ID).Str("title", created.Title).Msg("category created")
	return created, nil
}

func (s *CategoryService) GetAll(ctx context.Context) ([]*domain.Category, error) {
	return s.categories.FindAll(ctx)
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	if err := s.categories.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("category_id", id).Msg("category deleted")
	return nil
}
