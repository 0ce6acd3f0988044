// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUsernameTaken indicates the username is already registered.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken indicates the email is already registered.
	ErrEmailTaken = errors.New("email already exists")

	// ErrInvalidCredentials indicates a failed login. Deliberately generic: it never
	// reveals whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrTokenExpired indicates a token that verified but is past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenRevoked indicates a refresh token that no longer matches the value
	// stored on the user record.
	ErrTokenRevoked = errors.New("token revoked")

	// ErrNotOwner indicates the requester does not own the referenced resource.
	ErrNotOwner = errors.New("not the resource owner")

	// ErrNoNewData indicates an update request that would change nothing.
	ErrNoNewData = errors.New("no new data provided")
)
