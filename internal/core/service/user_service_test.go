package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

type userServiceFixture struct {
	users    *stubUserRepo
	posts    *stubPostRepo
	comments *stubCommentRepo
	blobs    *stubBlobStore
	svc      *UserService
}

func newUserServiceFixture() *userServiceFixture {
	f := &userServiceFixture{
		users:    newStubUserRepo(),
		posts:    newStubPostRepo(),
		comments: newStubCommentRepo(),
		blobs:    &stubBlobStore{},
	}
	f.svc = NewUserService(f.users, f.posts, f.comments, f.blobs, newMemCountCache(), zerolog.Nop())
	return f
}

func (f *userServiceFixture) seedUser(t *testing.T, username string) *domain.User {
	t.Helper()
	u, err := f.users.Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		ProfilePhoto: domain.DefaultAvatar(),
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func TestUserService_UpdateProfile_RehashesPassword(t *testing.T) {
	f := newUserServiceFixture()
	u := f.seedUser(t, "alice")

	pass := "newpassword"
	updated, err := f.svc.UpdateProfile(context.Background(), u.ID, ports.UpdateProfileInput{Password: &pass})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.PasswordHash == pass {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(pass)); err != nil {
		t.Fatalf("stored hash does not match new password: %v", err)
	}
}

func TestUserService_UploadProfilePhoto_ReplacesAndDeletesOld(t *testing.T) {
	f := newUserServiceFixture()
	u := f.seedUser(t, "alice")

	first, err := f.svc.UploadProfilePhoto(context.Background(), u.ID, "/tmp/one.jpg")
	if err != nil {
		t.Fatalf("UploadProfilePhoto returned error: %v", err)
	}
	if !first.ProfilePhoto.HasRemote() {
		t.Fatalf("expected remote-backed photo")
	}
	// The default avatar is shared; the first upload must not try to
	// delete it.
	if len(f.blobs.deleted) != 0 {
		t.Fatalf("default avatar must never be deleted: %v", f.blobs.deleted)
	}

	oldID := *first.ProfilePhoto.RemoteID
	second, err := f.svc.UploadProfilePhoto(context.Background(), u.ID, "/tmp/two.jpg")
	if err != nil {
		t.Fatalf("UploadProfilePhoto returned error: %v", err)
	}
	if *second.ProfilePhoto.RemoteID == oldID {
		t.Fatalf("photo not replaced")
	}
	if len(f.blobs.deleted) != 1 || f.blobs.deleted[0] != oldID {
		t.Fatalf("old photo not deleted: %v", f.blobs.deleted)
	}
}

func TestUserService_UploadProfilePhoto_PersistFailureKeepsOldPhoto(t *testing.T) {
	f := newUserServiceFixture()
	u := f.seedUser(t, "alice")

	if _, err := f.svc.UploadProfilePhoto(context.Background(), u.ID, "/tmp/one.jpg"); err != nil {
		t.Fatalf("UploadProfilePhoto returned error: %v", err)
	}
	deletesBefore := len(f.blobs.deleted)

	f.users.updateErr = errors.New("write failed")
	if _, err := f.svc.UploadProfilePhoto(context.Background(), u.ID, "/tmp/two.jpg"); err == nil {
		t.Fatalf("expected error")
	}
	if len(f.blobs.deleted) != deletesBefore {
		t.Fatalf("previous photo must survive a persist failure")
	}
}

func TestUserService_Delete_Cascade(t *testing.T) {
	f := newUserServiceFixture()
	ctx := context.Background()

	u := f.seedUser(t, "alice")
	bystander := f.seedUser(t, "bob")

	// Give alice a remote profile photo.
	if _, err := f.svc.UploadProfilePhoto(ctx, u.ID, "/tmp/avatar.jpg"); err != nil {
		t.Fatalf("UploadProfilePhoto returned error: %v", err)
	}

	// Two posts owned by alice, one with a remote image, plus one post by
	// bob that must survive.
	imgID := "blob/post-img"
	if _, err := f.posts.Create(ctx, &domain.Post{OwnerID: u.ID, Image: domain.Asset{URL: "x", RemoteID: &imgID}}); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	if _, err := f.posts.Create(ctx, &domain.Post{OwnerID: u.ID}); err != nil {
		t.Fatalf("seed post: %v", err)
	}
	other, err := f.posts.Create(ctx, &domain.Post{OwnerID: bystander.ID})
	if err != nil {
		t.Fatalf("seed post: %v", err)
	}

	// Three comments by alice and one by bob.
	for i := 0; i < 3; i++ {
		if _, err := f.comments.Create(ctx, &domain.Comment{AuthorID: u.ID, PostID: other.ID, Text: "hi"}); err != nil {
			t.Fatalf("seed comment: %v", err)
		}
	}
	if _, err := f.comments.Create(ctx, &domain.Comment{AuthorID: bystander.ID, PostID: other.ID, Text: "hi"}); err != nil {
		t.Fatalf("seed comment: %v", err)
	}

	if err := f.svc.Delete(ctx, u.ID); err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}

	// The post image and the profile photo were both removed remotely.
	deleted := map[string]bool{}
	for _, id := range f.blobs.deleted {
		deleted[id] = true
	}
	if !deleted[imgID] {
		t.Fatalf("post image not deleted remotely: %v", f.blobs.deleted)
	}
	if len(f.blobs.deleted) != 2 {
		t.Fatalf("expected 2 remote deletes, got %v", f.blobs.deleted)
	}

	// All of alice's records are gone; bob's are intact.
	if _, err := f.users.FindByID(ctx, u.ID); err != domain.ErrUserNotFound {
		t.Fatalf("user record survived: %v", err)
	}
	if remaining, _ := f.posts.FindByOwner(ctx, u.ID); len(remaining) != 0 {
		t.Fatalf("posts survived: %d", len(remaining))
	}
	if n, _ := f.comments.Count(ctx); n != 1 {
		t.Fatalf("expected only bob's comment to survive, got %d", n)
	}
	if _, err := f.posts.FindByID(ctx, other.ID); err != nil {
		t.Fatalf("bystander post deleted: %v", err)
	}
	if _, err := f.users.FindByID(ctx, bystander.ID); err != nil {
		t.Fatalf("bystander user deleted: %v", err)
	}
}

func TestUserService_Delete_UnknownUser(t *testing.T) {
	f := newUserServiceFixture()
	if err := f.svc.Delete(context.Background(), "missing"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Count_UsesCache(t *testing.T) {
	f := newUserServiceFixture()
	f.seedUser(t, "alice")

	n, err := f.svc.Count(context.Background())
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1, got %d", n)
	}

	// A second call is served from the cache and does not see new rows
	// until the entry expires.
	f.seedUser(t, "bob")
	n, err = f.svc.Count(context.Background())
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected cached 1, got %d", n)
	}
}
