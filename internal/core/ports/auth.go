package ports

import (
	"context"

	"github.com/4lucard7/BlogApi/internal/core/domain"
)

// RegisterInput carries the data needed to create an account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Bio      string
}

// AuthService implements registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the password and returns a signed credential with the
	// authenticated user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
