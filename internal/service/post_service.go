package service

import (
	"fmt"

	"blog-api/internal/errs"
	"blog-api/internal/models"
)

type PostService struct {
	posts    PostStore
	comments CommentStore
}

func NewPostService(posts PostStore, comments CommentStore) *PostService {
	return &PostService{posts: posts, comments: comments}
}

// List returns posts newest first. Authors see drafts too; everyone else gets
// published posts only.
func (s *PostService) List(viewerIsAuthor bool) ([]models.Post, error) {
	return s.posts.List(!viewerIsAuthor)
}

// Create creates a post owned by the given user
func (s *PostService) Create(userID uint, title, text string, isPublished bool) (*models.Post, error) {
	post := &models.Post{
		UserID:      userID,
		Title:       title,
		Text:        text,
		IsPublished: isPublished,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return s.posts.FindByID(post.ID)
}

// Get returns a post. An unpublished post is reported as not found to
// non-authors so its existence never leaks.
func (s *PostService) Get(id uint, viewerIsAuthor bool) (*models.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !post.IsPublished && !viewerIsAuthor {
		return nil, errs.ErrNotFound
	}
	return post, nil
}

// UpdatePostInput carries the optional fields of a post update
type UpdatePostInput struct {
	Title       *string
	Text        *string
	IsPublished *bool
}

// Update applies the provided fields to a post, rejecting no-op updates
func (s *PostService) Update(id uint, input UpdatePostInput) (*models.Post, error) {
	post, err := s.posts.FindByID(id)
	if err != nil {
		return nil, err
	}

	changed := false
	if input.Title != nil && *input.Title != post.Title {
		post.Title = *input.Title
		changed = true
	}
	if input.Text != nil && *input.Text != post.Text {
		post.Text = *input.Text
		changed = true
	}
	if input.IsPublished != nil && *input.IsPublished != post.IsPublished {
		post.IsPublished = *input.IsPublished
		changed = true
	}

	if !changed {
		return nil, errs.ErrNoNewData
	}

	if err := s.posts.Update(post); err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

// Delete removes a post and then bulk-deletes every comment referencing it
// (explicit two-step cascade).
func (s *PostService) Delete(id uint) error {
	if err := s.posts.Delete(id); err != nil {
		return err
	}
	if err := s.comments.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete post comments: %w", err)
	}
	return nil
}
