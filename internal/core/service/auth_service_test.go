package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
	"github.com/4lucard7/BlogApi/internal/core/token"
)

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, token.NewCodec("secret"), zerolog.Nop())
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash == "s3cretpass" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cretpass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.IsAdmin {
		t.Fatalf("new accounts must not be admins")
	}
	if user.ProfilePhoto.URL != domain.DefaultAvatarURL {
		t.Fatalf("expected default avatar, got %q", user.ProfilePhoto.URL)
	}
	if user.ProfilePhoto.HasRemote() {
		t.Fatalf("default avatar must not carry a remote id")
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	input := ports.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "s3cretpass"}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	input.Username = "robert"
	if _, err := svc.Register(context.Background(), input); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol",
		Email:    "carol@example.com",
		Password: "s3cretpass",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tkn, user, err := svc.Login(context.Background(), "carol@example.com", "s3cretpass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if tkn == "" {
		t.Fatalf("expected a credential")
	}
	if user.ID != registered.ID {
		t.Fatalf("unexpected user: %s", user.ID)
	}

	// The credential must round-trip back to the same identity.
	who, err := token.NewCodec("secret").Verify(tkn)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if who.ID != registered.ID || who.IsAdmin {
		t.Fatalf("unexpected identity: %+v", who)
	}
}

func TestAuthService_Login_Failures(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "dave",
		Email:    "dave@example.com",
		Password: "s3cretpass",
	}); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "s3cretpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "wrongpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
}
