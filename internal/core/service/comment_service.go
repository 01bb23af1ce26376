package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

// CommentService implements the comment lifecycle.
type CommentService struct {
	comments ports.CommentRepository
	posts    ports.PostRepository
	users    ports.UserRepository
	counts   ports.CountCache
	log      zerolog.Logger
}

func NewCommentService(
	comments ports.CommentRepository,
	posts ports.PostRepository,
	users ports.UserRepository,
	counts ports.CountCache,
	log zerolog.Logger,
) *CommentService {
	return &CommentService{comments: comments, posts: posts, users: users, counts: counts, log: log}
}

// Create adds a comment to a post, snapshotting the author's current
// username into the record.
func (s *CommentService) Create(ctx context.Context, input ports.CreateCommentInput) (*domain.Comment, error) {
	if _, err := s.posts.FindByID(ctx, input.PostID); err != nil {
		return nil, err
	}

	author, err := s.users.FindByID(ctx, input.AuthorID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	comment := &domain.Comment{
		PostID:    input.PostID,
		AuthorID:  input.AuthorID,
		Username:  author.Username,
		Text:      input.Text,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("comment_id", created.ID).Str("post_id", created.PostID).Msg("comment created")
	return created, nil
}

func (s *CommentService) GetAll(ctx context.Context) ([]*domain.Comment, error) {
	return s.comments.FindAll(ctx)
}

// Update edits the comment text. Owner only; admins may delete but not edit.
func (s *CommentService) Update(ctx context.Context, who domain.Identity, id, text string) (*domain.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if domain.Ownership(who, comment.AuthorID) != domain.Owner {
		return nil, domain.ErrForbidden
	}

	return s.comments.UpdateText(ctx, id, text)
}

// Delete removes one comment. Owner or admin.
func (s *CommentService) Delete(ctx context.Context, who domain.Identity, id string) error {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanModify(who, comment.AuthorID) {
		return domain.ErrForbidden
	}

	if err := s.comments.Delete(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("comment_id", id).Msg("comment deleted")
	return nil
}

func (s *CommentService) Count(ctx context.Context) (int64, error) {
	return cachedCount(ctx, s.counts, "comments", s.comments.Count)
}
