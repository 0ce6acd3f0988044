package service

import (
	"errors"
	"fmt"

	"blog-api/internal/errs"
	"blog-api/internal/models"
	"blog-api/pkg/utils"
)

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// UserSummary is the projection exposed to listings: username and email only
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

func summarize(u *models.User) UserSummary {
	return UserSummary{ID: u.ID, Username: u.Username, Email: u.Email}
}

// List returns summaries for all users
func (s *UserService) List() ([]UserSummary, error) {
	users, err := s.users.List()
	if err != nil {
		return nil, err
	}
	summaries := make([]UserSummary, len(users))
	for i := range users {
		summaries[i] = summarize(&users[i])
	}
	return summaries, nil
}

// Get returns a single user summary
func (s *UserService) Get(id uint) (*UserSummary, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	summary := summarize(user)
	return &summary, nil
}

// UpdateUserInput carries the optional fields of a user update
type UpdateUserInput struct {
	Username *string
	Email    *string
	Password *string
}

// Update applies the provided fields to a user. Rejects updates that change
// nothing and username/email values already taken by another user.
func (s *UserService) Update(id uint, input UpdateUserInput) (*UserSummary, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}

	changed := false

	if input.Username != nil && *input.Username != user.Username {
		if existing, err := s.users.FindByUsername(*input.Username); err == nil && existing.ID != id {
			return nil, errs.ErrUsernameTaken
		} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		user.Username = *input.Username
		changed = true
	}

	if input.Email != nil && *input.Email != user.Email {
		if existing, err := s.users.FindByEmail(*input.Email); err == nil && existing.ID != id {
			return nil, errs.ErrEmailTaken
		} else if err != nil && !errors.Is(err, errs.ErrNotFound) {
			return nil, err
		}
		user.Email = *input.Email
		changed = true
	}

	if input.Password != nil {
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
		changed = true
	}

	if !changed {
		return nil, errs.ErrNoNewData
	}

	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	summary := summarize(user)
	return &summary, nil
}

// Delete removes a user account. Authored posts are left in place.
func (s *UserService) Delete(id uint) error {
	return s.users.Delete(id)
}
