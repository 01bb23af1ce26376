package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/4lucard7/BlogApi/internal/api/metrics"
	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

// UserService implements profile management and the cascading user delete.
type UserService struct {
	users    ports.UserRepository
	posts    ports.PostRepository
	comments ports.CommentRepository
	blobs    ports.BlobStore
	counts   ports.CountCache
	log      zerolog.Logger
}

func NewUserService(
	users ports.UserRepository,
	posts ports.PostRepository,
	comments ports.CommentRepository,
	blobs ports.BlobStore,
	counts ports.CountCache,
	log zerolog.Logger,
) *UserService {
	return &UserService{
		users:    users,
		posts:    posts,
		comments: comments,
		blobs:    blobs,
		counts:   counts,
		log:      log,
	}
}

func (s *UserService) GetAll(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, id string) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// UpdateProfile updates the self-service profile fields. A new password is
// rehashed before it reaches the store.
func (s *UserService) UpdateProfile(ctx context.Context, id string, input ports.UpdateProfileInput) (*domain.User, error) {
	patch := ports.UserPatch{
		Username: input.Username,
		Bio:      input.Bio,
	}

	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		hashed := string(hash)
		patch.PasswordHash = &hashed
	}

	return s.users.Update(ctx, id, patch)
}

// UploadProfilePhoto replaces the user's profile photo. The new image is
// uploaded and persisted before the old remote object is removed, so a
// failure at any step never leaves the profile without a photo.
func (s *UserService) UploadProfilePhoto(ctx context.Context, userID, imagePath string) (*domain.User, error) {
	if imagePath == "" {
		return nil, domain.ErrMissingAsset
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	photo, err := s.blobs.Upload(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	metrics.AssetsUploadedTotal.WithLabelValues("profile").Inc()

	updated, err := s.users.Update(ctx, userID, ports.UserPatch{ProfilePhoto: &photo})
	if err != nil {
		// The uploaded object is orphaned remotely; not compensated here.
		s.log.Warn().Err(err).Str("user_id", userID).Str("public_id", *photo.RemoteID).
			Msg("profile photo persisted remotely but not locally")
		return nil, err
	}

	if user.ProfilePhoto.HasRemote() {
		if err := s.deleteRemote(ctx, *user.ProfilePhoto.RemoteID); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to delete previous profile photo")
		}
	}

	removeStaging(s.log, imagePath)

	s.log.Info().Str("user_id", userID).Msg("profile photo replaced")
	return updated, nil
}

// Delete removes the user and everything they own. Remote assets go first:
// a failure partway through leaves extra local rows, which a later retry can
// still reach, rather than unreferenced remote blobs.
func (s *UserService) Delete(ctx context.Context, id string) error {
	start := time.Now()

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return err
	}

	posts, err := s.posts.FindByOwner(ctx, id)
	if err != nil {
		return fmt.Errorf("enumerate posts: %w", err)
	}

	remoteIDs := make([]string, 0, len(posts))
	for _, p := range posts {
		if p.Image.HasRemote() {
			remoteIDs = append(remoteIDs, *p.Image.RemoteID)
		}
	}

	if len(remoteIDs) > 0 {
		for _, outcome := range s.blobs.DeleteMany(ctx, remoteIDs) {
			if outcome.Err != nil {
				s.log.Warn().Err(outcome.Err).Str("public_id", outcome.RemoteID).
					Msg("post image not deleted during cascade")
			}
		}
	}

	if user.ProfilePhoto.HasRemote() {
		if err := s.deleteRemote(ctx, *user.ProfilePhoto.RemoteID); err != nil {
			s.log.Warn().Err(err).Str("user_id", id).Msg("profile photo not deleted during cascade")
		}
	}

	deletedPosts, err := s.posts.DeleteByOwner(ctx, id)
	if err != nil {
		return fmt.Errorf("delete posts: %w", err)
	}

	deletedComments, err := s.comments.DeleteByAuthor(ctx, id)
	if err != nil {
		return fmt.Errorf("delete comments: %w", err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	metrics.UserCascadeDuration.Observe(time.Since(start).Seconds())
	s.log.Info().
		Str("user_id", id).
		Int64("posts", deletedPosts).
		Int64("comments", deletedComments).
		Int("remote_assets", len(remoteIDs)).
		Msg("user deleted with cascade")
	return nil
}

func (s *UserService) Count(ctx context.Context) (int64, error) {
	return cachedCount(ctx, s.counts, "users", s.users.Count)
}

// deleteRemote treats an already-missing remote object as success.
func (s *UserService) deleteRemote(ctx context.Context, remoteID string) error {
	err := s.blobs.Delete(ctx, remoteID)
	if err != nil && !errors.Is(err, domain.ErrBlobNotFound) {
		return err
	}
	return nil
}

// removeStaging deletes the local staging copy of an uploaded file.
func removeStaging(log zerolog.Logger, path string) {
	if err := os.Remove(path); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("failed to remove staging file")
	}
}

// cachedCount serves an entity count from the cache when possible, falling
// back to the store and refreshing the cache on a miss. Cache errors are
// never surfaced to the caller.
func cachedCount(ctx context.Context, cache ports.CountCache, entity string, count func(context.Context) (int64, error)) (int64, error) {
	if cache != nil {
		if n, ok := cache.GetCount(ctx, entity); ok {
			return n, nil
		}
	}
	n, err := count(ctx)
	if err != nil {
		return 0, err
	}
	if cache != nil {
		_ = cache.SetCount(ctx, entity, n)
	}
	return n, nil
}
