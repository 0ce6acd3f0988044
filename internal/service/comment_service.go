package service

import (
	"fmt"

	"blog-api/internal/errs"
	"blog-api/internal/models"
)

type CommentService struct {
	comments CommentStore
	posts    PostStore
}

func NewCommentService(comments CommentStore, posts PostStore) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// ListForPost returns all comments on a post
func (s *CommentService) ListForPost(postID uint) ([]models.Comment, error) {
	exists, err := s.posts.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrNotFound
	}
	return s.comments.ListByPost(postID)
}

// Create creates a comment on a post by the given user
func (s *CommentService) Create(postID, userID uint, text string) (*models.Comment, error) {
	exists, err := s.posts.Exists(postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrNotFound
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Text:   text,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	return s.comments.FindByID(comment.ID)
}

// Get returns a single comment, verifying it belongs to the given post
func (s *CommentService) Get(postID, commentID uint) (*models.Comment, error) {
	comment, err := s.comments.FindByID(commentID)
	if err != nil {
		return nil, err
	}
	if comment.PostID != postID {
		return nil, errs.ErrNotFound
	}
	return comment, nil
}

// Update changes a comment's text. Only the comment's own author may update it;
// the ownership check needs the fetched record, so it lives here rather than in
// the route-level policy chain.
func (s *CommentService) Update(postID, commentID, requesterID uint, text string) (*models.Comment, error) {
	comment, err := s.Get(postID, commentID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != requesterID {
		return nil, errs.ErrNotOwner
	}

	if text == comment.Text {
		return nil, errs.ErrNoNewData
	}

	comment.Text = text
	if err := s.comments.Update(comment); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

// Delete removes a comment. Only the comment's own author may delete it. The
// record must actually be gone afterwards; see the regression test.
func (s *CommentService) Delete(postID, commentID, requesterID uint) error {
	comment, err := s.Get(postID, commentID)
	if err != nil {
		return err
	}
	if comment.UserID != requesterID {
		return errs.ErrNotOwner
	}
	return s.comments.Delete(commentID)
}
