package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/4lucard7/BlogApi/internal/core/domain"
	"github.com/4lucard7/BlogApi/internal/core/ports"
)

// Map-backed repository stubs shared by the service tests. Each stub clones
// records on the way in and out so tests cannot alias store state, and
// exposes error hooks to force failures at specific steps.

type stubUserRepo struct {
	users     map[string]*domain.User
	seq       int
	createErr error
	updateErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	copy := cloneUser(u)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("user-%d", r.seq)
	}
	r.users[copy.ID] = cloneUser(copy)
	return copy, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if patch.Username != nil {
		u.Username = *patch.Username
	}
	if patch.PasswordHash != nil {
		u.PasswordHash = *patch.PasswordHash
	}
	if patch.Bio != nil {
		u.Bio = *patch.Bio
	}
	if patch.ProfilePhoto != nil {
		u.ProfilePhoto = *patch.ProfilePhoto
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *stubUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.users)), nil
}

type stubPostRepo struct {
	posts     map[string]*domain.Post
	seq       int
	createErr error
	updateErr error
}

func newStubPostRepo() *stubPostRepo {
	return &stubPostRepo{posts: make(map[string]*domain.Post)}
}

func clonePost(p *domain.Post) *domain.Post {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Likes = append([]string(nil), p.Likes...)
	return &clone
}

func (r *stubPostRepo) Create(_ context.Context, p *domain.Post) (*domain.Post, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	copy := clonePost(p)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("post-%d", r.seq)
	}
	r.posts[copy.ID] = clonePost(copy)
	return copy, nil
}

func (r *stubPostRepo) FindByID(_ context.Context, id string) (*domain.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) List(_ context.Context, filter ports.ListPostsFilter) ([]*domain.Post, error) {
	out := make([]*domain.Post, 0, len(r.posts))
	for _, p := range r.posts {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		out = append(out, clonePost(p))
	}
	return out, nil
}

func (r *stubPostRepo) FindByOwner(_ context.Context, ownerID string) ([]*domain.Post, error) {
	var out []*domain.Post
	for _, p := range r.posts {
		if p.OwnerID == ownerID {
			out = append(out, clonePost(p))
		}
	}
	return out, nil
}

func (r *stubPostRepo) Update(_ context.Context, id string, patch ports.PostPatch) (*domain.Post, error) {
	if r.updateErr != nil {
		return nil, r.updateErr
	}
	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	return clonePost(p), nil
}

func (r *stubPostRepo) ToggleLike(_ context.Context, postID, userID string) (*domain.Post, error) {
	p, ok := r.posts[postID]
	if !ok {
		return nil, domain.ErrPostNotFound
	}
	for i, id := range p.Likes {
		if id == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return clonePost(p), nil
		}
	}
	p.Likes = append(p.Likes, userID)
	return clonePost(p), nil
}

func (r *stubPostRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.posts[id]; !ok {
		return domain.ErrPostNotFound
	}
	delete(r.posts, id)
	return nil
}

func (r *stubPostRepo) DeleteByOwner(_ context.Context, ownerID string) (int64, error) {
	var n int64
	for id, p := range r.posts {
		if p.OwnerID == ownerID {
			delete(r.posts, id)
			n++
		}
	}
	return n, nil
}

func (r *stubPostRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.posts)), nil
}

type stubCommentRepo struct {
	comments map[string]*domain.Comment
	seq      int
}

func newStubCommentRepo() *stubCommentRepo {
	return &stubCommentRepo{comments: make(map[string]*domain.Comment)}
}

func cloneComment(c *domain.Comment) *domain.Comment {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

func (r *stubCommentRepo) Create(_ context.Context, c *domain.Comment) (*domain.Comment, error) {
	copy := cloneComment(c)
	if copy.ID == "" {
		r.seq++
		copy.ID = fmt.Sprintf("comment-%d", r.seq)
	}
	r.comments[copy.ID] = cloneComment(copy)
	return copy, nil
}

func (r *stubCommentRepo) FindByID(_ context.Context, id string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	return cloneComment(c), nil
}

func (r *stubCommentRepo) FindAll(_ context.Context) ([]*domain.Comment, error) {
	out := make([]*domain.Comment, 0, len(r.comments))
	for _, c := range r.comments {
		out = append(out, cloneComment(c))
	}
	return out, nil
}

func (r *stubCommentRepo) UpdateText(_ context.Context, id, text string) (*domain.Comment, error) {
	c, ok := r.comments[id]
	if !ok {
		return nil, domain.ErrCommentNotFound
	}
	c.Text = text
	return cloneComment(c), nil
}

func (r *stubCommentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.comments[id]; !ok {
		return domain.ErrCommentNotFound
	}
	delete(r.comments, id)
	return nil
}

func (r *stubCommentRepo) DeleteByAuthor(_ context.Context, authorID string) (int64, error) {
	var n int64
	for id, c := range r.comments {
		if c.AuthorID == authorID {
			delete(r.comments, id)
			n++
		}
	}
	return n, nil
}

func (r *stubCommentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.comments)), nil
}

// stubBlobStore records every upload and delete so tests can assert the
// remote side of a saga, and can be told to fail either operation.
type stubBlobStore struct {
	mu        sync.Mutex
	seq       int
	uploads   []string
	deleted   []string
	uploadErr error
	deleteErr error
}

func (s *stubBlobStore) Upload(_ context.Context, localPath string) (domain.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.uploadErr != nil {
		return domain.Asset{}, s.uploadErr
	}
	s.seq++
	id := fmt.Sprintf("blob/%d", s.seq)
	s.uploads = append(s.uploads, localPath)
	return domain.Asset{URL: "https://blob.test/" + id, RemoteID: &id}, nil
}

func (s *stubBlobStore) Delete(_ context.Context, remoteID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, remoteID)
	return nil
}

func (s *stubBlobStore) DeleteMany(ctx context.Context, remoteIDs []string) []ports.DeleteOutcome {
	out := make([]ports.DeleteOutcome, len(remoteIDs))
	for i, id := range remoteIDs {
		out[i] = ports.DeleteOutcome{RemoteID: id, Err: s.Delete(ctx, id)}
	}
	return out
}

// memCountCache is an in-process ports.CountCache.
type memCountCache struct {
	counts map[string]int64
}

func newMemCountCache() *memCountCache {
	return &memCountCache{counts: make(map[string]int64)}
}

func (c *memCountCache) GetCount(_ context.Context, entity string) (int64, bool) {
	n, ok := c.counts[entity]
	return n, ok
}

func (c *memCountCache) SetCount(_ context.Context, entity string, n int64) error {
	c.counts[entity] = n
	return nil
}
