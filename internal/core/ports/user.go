package ports

import (
	"context"

	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// UserPatch holds the updatable profile fields. Nil means "leave unchanged".
type UserPatch struct {
	Username     *string
	PasswordHash *string
	Bio          *string
	ProfilePhoto *domain.Asset
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// UpdateProfileInput carries the self-service profile update fields.
type UpdateProfileInput struct {
	Username *string
	Password *string
	Bio      *string
}

// UserService defines use-case operations on user profiles, including the
// cascading delete that removes a user's posts, comments, and remote assets.
type UserService interface {
	GetAll(ctx context.Context) ([]*domain.User, error)
	Get(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, input UpdateProfileInput) (*domain.User, error)
	// UploadProfilePhoto replaces the caller's profile photo: the new image
	// is uploaded and persisted before the previous remote object is removed.
	UploadProfilePhoto(ctx context.Context, userID, imagePath string) (*domain.User, error)
	// Delete removes the user together with every post and comment they own
	// and every remote asset those records reference. Remote objects are
	// deleted before local records.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
