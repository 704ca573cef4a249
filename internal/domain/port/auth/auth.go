package auth

import (
	"context"
	"time"
)

// Identity is the verified caller identity handed to the core by the
// authentication layer. The core never verifies credentials itself.
type Identity struct {
	UserID uint64
	Phone  string
}

// TokenIssuer issues and verifies short-lived access tokens
type TokenIssuer interface {
	// Issue creates a signed access token for the identity
	Issue(identity Identity) (string, error)

	// Verify validates a token and returns the identity it carries
	//
	// Possible errors:
	// - ErrInvalidToken: if the token is malformed, forged or expired
	Verify(token string) (*Identity, error)
}

// SessionStore manages opaque refresh tokens with a bounded lifetime
type SessionStore interface {
	// Create stores a new session and returns its refresh token
	Create(ctx context.Context, identity Identity, ttl time.Duration) (string, error)

	// Get resolves a refresh token to the identity it was issued for
	//
	// Possible errors:
	// - ErrInvalidToken: if the token is unknown or expired
	Get(ctx context.Context, token string) (*Identity, error)

	// Delete revokes a refresh token
	Delete(ctx context.Context, token string) error

	// DeleteAllForUser revokes every refresh token issued to the user
	DeleteAllForUser(ctx context.Context, userID uint64) error
}

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare returns ErrInvalidCredentials when the password doesn't match
	Compare(hash, password string) error
}
