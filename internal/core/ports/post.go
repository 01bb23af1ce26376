package ports

import (
	"context"

	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// ListPostsFilter carries the feed query parameters. Results are always
// newest-first; Category narrows the set without changing the order.
type ListPostsFilter struct {
	Category string
	Page     int // 1-based
	PageSize int
}

// PostPatch holds the updatable post fields. Nil means "leave unchanged".
type PostPatch struct {
	Title       *string
	Description *string
	Category    *string
	Image       *domain.Asset
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, p *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, error)
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Post, error)
	Update(ctx context.Context, id string, patch PostPatch) (*domain.Post, error)
	// ToggleLike atomically flips userID's membership in the like set and
	// returns the updated post.
	ToggleLike(ctx context.Context, postID, userID string) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
	DeleteByOwner(ctx context.Context, ownerID string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

// CreatePostInput carries the data for creating a post. ImagePath is the
// local staging path of the uploaded file; posts require one.
type CreatePostInput struct {
	Title       string
	Description string
	Category    string
	OwnerID     string
	ImagePath   string
}

// UpdatePostInput carries the caller identity and the text fields to change.
type UpdatePostInput struct {
	Title       *string
	Description *string
	Category    *string
}

// PostService defines use-case operations for posts.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	List(ctx context.Context, filter ListPostsFilter) ([]*domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
	Update(ctx context.Context, who domain.Identity, id string, input UpdatePostInput) (*domain.Post, error)
	// UpdateImage replaces the post image: the new object is uploaded and
	// persisted before the previous remote object is removed.
	UpdateImage(ctx context.Context, who domain.Identity, id, imagePath string) (*domain.Post, error)
	// Delete removes the post's remote image first, then the record. The
	// post's comments are not cascaded.
	Delete(ctx context.Context, who domain.Identity, id string) error
	ToggleLike(ctx context.Context, who domain.Identity, id string) (*domain.Post, error)
	Count(ctx context.Context) (int64, error)
}
