package service

import (
	"testing"
	"time"

	"blog-api/internal/errs"
	"blog-api/pkg/utils"

	"github.com/stretchr/testify/require"
)

func initAuthTest(t *testing.T) (*AuthService, *fakeUserStore) {
	t.Helper()
	utils.InitJWT("access-secret-test", "refresh-secret-test", 15*time.Minute, 7*24*time.Hour)
	users := newFakeUserStore()
	return NewAuthService(users), users
}

func TestSignupRejectsDuplicates(t *testing.T) {
	svc, users := initAuthTest(t)

	require.NoError(t, svc.Signup("alice", "a@x.com", "Str0ng!Pass"))
	require.Len(t, users.users, 1)

	err := svc.Signup("alice2", "a@x.com", "Str0ng!Pass")
	require.ErrorIs(t, err, errs.ErrEmailTaken)

	err = svc.Signup("alice", "a2@x.com", "Str0ng!Pass")
	require.ErrorIs(t, err, errs.ErrUsernameTaken)

	// Neither rejected signup may create a record
	require.Len(t, users.users, 1)
}

func TestSignupNeverGrantsAuthor(t *testing.T) {
	svc, users := initAuthTest(t)

	require.NoError(t, svc.Signup("alice", "a@x.com", "Str0ng!Pass"))
	user, err := users.FindByUsername("alice")
	require.NoError(t, err)
	require.False(t, user.IsAuthor)
	require.Nil(t, user.RefreshToken)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _ := initAuthTest(t)
	require.NoError(t, svc.Signup("alice", "a@x.com", "Str0ng!Pass"))

	_, wrongPassword := svc.Login("alice", "Wr0ng!Pass1")
	_, unknownUser := svc.Login("nobody", "Str0ng!Pass")

	require.ErrorIs(t, wrongPassword, errs.ErrInvalidCredentials)
	require.ErrorIs(t, unknownUser, errs.ErrInvalidCredentials)
	require.Equal(t, wrongPassword.Error(), unknownUser.Error())
}

func TestLoginPersistsRefreshToken(t *testing.T) {
	svc, users := initAuthTest(t)
	require.NoError(t, svc.Signup("alice", "a@x.com", "Str0ng!Pass"))

	tokens, err := svc.Login("alice", "Str0ng!Pass")
	require.NoError(t, err)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	user, err := users.FindByUsername("alice")
	require.NoError(t, err)
	require.NotNil(t, user.RefreshToken)
	require.Equal(t, tokens.RefreshToken, *user.RefreshToken)
}

func TestRefreshRequiresStoredMatch(t *testing.T) {
	svc, _ := initAuthTest(t)
	require.NoError(t, svc.Signup("alice", "a@x.com", "Str0ng!Pass"))

	first, err := svc.Login("alice", "Str0ng!Pass")
	require.NoError(t, err)

	// The live session refreshes fine
	accessToken, err := svc.Refresh(first.RefreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)

	// A second login overwrites the stored token; the first session's refresh
	// token verifies cryptographically but no longer matches
	second, err := svc.Login("alice", "Str0ng!Pass")
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	_, err = svc.Refresh(first.RefreshToken)
	require.ErrorIs(t, err, errs.ErrTokenRevoked)

	_, err = svc.Refresh(second.RefreshToken)
	require.NoError(t, err)
}

func TestRefreshRejectsGarbage(t *testing.T) {
	svc, _ := initAuthTest(t)

	_, err := svc.Refresh("not-a-token")
	require.ErrorIs(t, err, errs.ErrTokenInvalid)
}

func TestRefreshRejectsExpiredToken(t *testing.T) {
	utils.InitJWT("access-secret-test", "refresh-secret-test", 15*time.Minute, -time.Minute)
	users := newFakeUserStore()
	svc := NewAuthService(users)

	require.NoError(t, svc.Signup("alice", "a@x.com", "Str0ng!Pass"))
	tokens, err := svc.Login("alice", "Str0ng!Pass")
	require.NoError(t, err)

	_, err = svc.Refresh(tokens.RefreshToken)
	require.ErrorIs(t, err, errs.ErrTokenExpired)
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, users := initAuthTest(t)
	require.NoError(t, svc.Signup("alice", "a@x.com", "Str0ng!Pass"))

	tokens, err := svc.Login("alice", "Str0ng!Pass")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(tokens.RefreshToken))

	user, err := users.FindByUsername("alice")
	require.NoError(t, err)
	require.Nil(t, user.RefreshToken)

	// The same refresh token is rejected after logout
	_, err = svc.Refresh(tokens.RefreshToken)
	require.ErrorIs(t, err, errs.ErrTokenRevoked)

	// Logout is idempotent
	require.NoError(t, svc.Logout(tokens.RefreshToken))
}

func TestLogoutRejectsUnverifiableToken(t *testing.T) {
	svc, _ := initAuthTest(t)

	err := svc.Logout("not-a-token")
	require.ErrorIs(t, err, errs.ErrTokenInvalid)
}
