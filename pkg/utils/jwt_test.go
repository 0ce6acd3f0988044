package utils

import (
	"testing"
	"time"

	"blog-api/internal/errs"

	"github.com/stretchr/testify/require"
)

func initTestJWT(accessExp, refreshExp time.Duration) {
	InitJWT("access-secret-test", "refresh-secret-test", accessExp, refreshExp)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	initTestJWT(time.Minute, time.Hour)

	token, err := GenerateAccessToken(42)
	require.NoError(t, err)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(42), claims.UserID)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	initTestJWT(time.Minute, time.Hour)

	token, err := GenerateRefreshToken(7)
	require.NoError(t, err)

	claims, err := ValidateRefreshToken(token)
	require.NoError(t, err)
	require.Equal(t, uint(7), claims.UserID)
}

func TestAccessAndRefreshSecretsAreIndependent(t *testing.T) {
	initTestJWT(time.Minute, time.Hour)

	accessToken, err := GenerateAccessToken(1)
	require.NoError(t, err)
	refreshToken, err := GenerateRefreshToken(1)
	require.NoError(t, err)

	// A token signed with one secret must never verify under the other
	_, err = ValidateRefreshToken(accessToken)
	require.ErrorIs(t, err, errs.ErrTokenInvalid)
	_, err = ValidateAccessToken(refreshToken)
	require.ErrorIs(t, err, errs.ErrTokenInvalid)
}

func TestExpiredIsDistinctFromInvalid(t *testing.T) {
	initTestJWT(-time.Minute, -time.Minute)

	expiredAccess, err := GenerateAccessToken(1)
	require.NoError(t, err)
	expiredRefresh, err := GenerateRefreshToken(1)
	require.NoError(t, err)

	_, err = ValidateAccessToken(expiredAccess)
	require.ErrorIs(t, err, errs.ErrTokenExpired)
	_, err = ValidateRefreshToken(expiredRefresh)
	require.ErrorIs(t, err, errs.ErrTokenExpired)

	initTestJWT(time.Minute, time.Hour)

	_, err = ValidateAccessToken("not-a-token")
	require.ErrorIs(t, err, errs.ErrTokenInvalid)

	tampered, err := GenerateAccessToken(1)
	require.NoError(t, err)
	_, err = ValidateAccessToken(tampered + "x")
	require.ErrorIs(t, err, errs.ErrTokenInvalid)
}

func TestRefreshTokensAreDistinctPerIssue(t *testing.T) {
	initTestJWT(time.Minute, time.Hour)

	// The jti claim keeps two logins in the same second from colliding
	first, err := GenerateRefreshToken(1)
	require.NoError(t, err)
	second, err := GenerateRefreshToken(1)
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}
