package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/4lucard7/BlogApi/internal/api/metrics"
	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

const defaultFeedPageSize = 3

// PostService implements the post lifecycle, including the image sagas.
type PostService struct {
	posts    ports.PostRepository
	blobs    ports.BlobStore
	counts   ports.CountCache
	pageSize int
	log      zerolog.Logger
}

func NewPostService(posts ports.PostRepository, blobs ports.BlobStore, counts ports.CountCache, pageSize int, log zerolog.Logger) *PostService {
	if pageSize <= 0 {
		pageSize = defaultFeedPageSize
	}
	return &PostService{posts: posts, blobs: blobs, counts: counts, pageSize: pageSize, log: log}
}

// Create publishes a new post. Posts require an image: the upload happens
// before any store write, so an upload failure leaves no orphan record.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if input.ImagePath == "" {
		return nil, domain.ErrMissingAsset
	}

	image, err := s.blobs.Upload(ctx, input.ImagePath)
	if err != nil {
		return nil, err
	}
	metrics.AssetsUploadedTotal.WithLabelValues("post").Inc()

	now := time.Now().UTC()
	post := &domain.Post{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		OwnerID:     input.OwnerID,
		Image:       image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		// The uploaded object is orphaned remotely; not compensated here.
		s.log.Warn().Err(err).Str("public_id", *image.RemoteID).
			Msg("post image uploaded but record not persisted")
		return nil, err
	}

	removeStaging(s.log, input.ImagePath)
	metrics.PostsCreatedTotal.WithLabelValues(created.Category).Inc()

	s.log.Info().Str("post_id", created.ID).Str("owner_id", created.OwnerID).Msg("post created")
	return created, nil
}

// List returns one feed page, newest first. A category filter narrows the
// set without changing the order.
func (s *PostService) List(ctx context.Context, filter ports.ListPostsFilter) ([]*domain.Post, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	filter.PageSize = s.pageSize
	return s.posts.List(ctx, filter)
}

func (s *PostService) Get(ctx context.Context, id string) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Update edits the post's text fields. Owner only.
func (s *PostService) Update(ctx context.Context, who domain.Identity, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if domain.Ownership(who, post.OwnerID) != domain.Owner {
		return nil, domain.ErrForbidden
	}

	return s.posts.Update(ctx, id, ports.PostPatch{
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
	})
}

// UpdateImage replaces the post image. The old remote object is deleted only
// after the new one is uploaded and the record persisted: a failure at any
// step leaves the previous image intact.
func (s *PostService) UpdateImage(ctx context.Context, who domain.Identity, id, imagePath string) (*domain.Post, error) {
	if imagePath == "" {
		return nil, domain.ErrMissingAsset
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if domain.Ownership(who, post.OwnerID) != domain.Owner {
		return nil, domain.ErrForbidden
	}

	image, err := s.blobs.Upload(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	metrics.AssetsUploadedTotal.WithLabelValues("post").Inc()

	updated, err := s.posts.Update(ctx, id, ports.PostPatch{Image: &image})
	if err != nil {
		s.log.Warn().Err(err).Str("post_id", id).Str("public_id", *image.RemoteID).
			Msg("replacement image uploaded but record not persisted")
		return nil, err
	}

	if post.Image.HasRemote() {
		if err := s.blobs.Delete(ctx, *post.Image.RemoteID); err != nil {
			s.log.Warn().Err(err).Str("post_id", id).Msg("failed to delete previous post image")
		}
	}

	removeStaging(s.log, imagePath)

	s.log.Info().Str("post_id", id).Msg("post image replaced")
	return updated, nil
}

// Delete removes one post: remote image first, then the record. The post's
// comments are left in place.
func (s *PostService) Delete(ctx context.Context, who domain.Identity, id string) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModify(who, post.OwnerID) {
		return domain.ErrForbidden
	}

	if post.Image.HasRemote() {
		if err := s.blobs.Delete(ctx, *post.Image.RemoteID); err != nil {
			s.log.Warn().Err(err).Str("post_id", id).Msg("post image not deleted")
		}
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("post_id", id).Msg("post deleted")
	return nil
}

// ToggleLike flips the caller's membership in the post's like set. Two
// consecutive toggles by the same user net to a no-op.
func (s *PostService) ToggleLike(ctx context.Context, who domain.Identity, id string) (*domain.Post, error) {
	return s.posts.ToggleLike(ctx, id, who.ID)
}

func (s *PostService) Count(ctx context.Context) (int64, error) {
	return cachedCount(ctx, s.counts, "posts", s.posts.Count)
}
