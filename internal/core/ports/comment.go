package ports

import (
	"context"

	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	FindByID(ctx context.Context, id string) (*domain.Comment, error)
	FindAll(ctx context.Context) ([]*domain.Comment, error)
	UpdateText(ctx context.Context, id, text string) (*domain.Comment, error)
	Delete(ctx context.Context, id string) error
	DeleteByAuthor(ctx context.Context, authorID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// CreateCommentInput carries the data for creating a comment. The author's
// username is snapshotted by the service at creation time.
type CreateCommentInput struct {
	PostID   string
	AuthorID string
	Text     string
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	Create(ctx context.Context, input CreateCommentInput) (*domain.Comment, error)
	GetAll(ctx context.Context) ([]*domain.Comment, error)
	// Update is owner-only; admins may delete but not edit others' comments.
	Update(ctx context.Context, who domain.Identity, id, text string) (*domain.Comment, error)
	Delete(ctx context.Context, who domain.Identity, id string) error
	Count(ctx context.Context) (int64, error)
}
