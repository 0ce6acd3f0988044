package service

import (
	"errors"
	"fmt"

	"blog-api/internal/errs"
	"blog-api/internal/models"
	"blog-api/pkg/utils"
)

type AuthService struct {
	users UserStore
}

func NewAuthService(users UserStore) *AuthService {
	return &AuthService{users: users}
}

// TokenPair carries the credentials issued on login
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Signup creates a new user account. The author flag is never settable through
// signup; authors are promoted out of band.
func (s *AuthService) Signup(username, email, password string) error {
	// Check uniqueness up front so the caller can report which field collided
	if _, err := s.users.FindByEmail(email); err == nil {
		return errs.ErrEmailTaken
	} else if !errors.Is(err, errs.ErrNotFound) {
		return err
	}
	if _, err := s.users.FindByUsername(username); err == nil {
		return errs.ErrUsernameTaken
	} else if !errors.Is(err, errs.ErrNotFound) {
		return err
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	}
	if err := s.users.Create(user); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Login authenticates a user and returns an access/refresh token pair. The
// refresh token is persisted on the user record, replacing any previous session:
// one active refresh token per user.
func (s *AuthService) Login(username, password string) (*TokenPair, error) {
	user, err := s.users.FindByUsername(username)
	if err != nil {
		// Same failure for unknown username and wrong password
		return nil, errs.ErrInvalidCredentials
	}

	if !utils.ComparePassword(user.PasswordHash, password) {
		return nil, errs.ErrInvalidCredentials
	}

	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.users.SetRefreshToken(user.ID, &refreshToken); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh exchanges a refresh token for a new access token. The token must verify
// cryptographically and equal the value currently stored on the user record; the
// stored value is the sole revocation mechanism. The refresh token itself is not
// rotated.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.ErrTokenInvalid
		}
		return "", err
	}

	if user.RefreshToken == nil || *user.RefreshToken != refreshToken {
		return "", errs.ErrTokenRevoked
	}

	accessToken, err := utils.GenerateAccessToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return accessToken, nil
}

// Logout revokes the user's current session by nulling the stored refresh token.
// Idempotent: it succeeds as long as the supplied token identifies a real user,
// even if that session was already revoked or replaced.
func (s *AuthService) Logout(refreshToken string) error {
	claims, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return err
	}

	user, err := s.users.FindByID(claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return errs.ErrTokenInvalid
		}
		return err
	}

	if err := s.users.SetRefreshToken(user.ID, nil); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}
