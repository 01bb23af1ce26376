package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/4lucard7/BlogApi/internal/api/metrics"
	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
	"github.com/4lucard7/BlogApi/internal/core/token"
)

// AuthService implements registration and login.
type AuthService struct {
	repo  ports.UserRepository
	codec *token.Codec
	log   zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec *token.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, log: log}
}

// Register creates a new member account. New accounts are never admins.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	if _, err := s.repo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		ProfilePhoto: domain.DefaultAvatar(),
		Bio:          input.Bio,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("email", created.Email).Msg("user registered")
	return created, nil
}

// Login verifies the password and returns a signed credential.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.AuthFailuresTotal.WithLabelValues("unknown_email").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.AuthFailuresTotal.WithLabelValues("bad_password").Inc()
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := s.codec.Issue(user.Identity())
	if err != nil {
		return "", nil, fmt.Errorf("issue credential: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return tkn, user, nil
}
