package auth

import (
	"context"
	"testing"
	"time"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	authport "github.com/sealpay/wallet-ledger/internal/domain/port/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time                  { return p.now }
func (p *fixedTimeProvider) Since(t time.Time) time.Duration { return p.now.Sub(t) }
func (p *fixedTimeProvider) WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

func TestIssueAndVerify(t *testing.T) {
	tp := &fixedTimeProvider{now: time.Now()}
	issuer := NewJWTIssuer("test-secret", 15*time.Minute, tp)

	token, err := issuer.Issue(authport.Identity{UserID: 42, Phone: "+15550001"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := issuer.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), identity.UserID)
	assert.Equal(t, "+15550001", identity.Phone)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	tp := &fixedTimeProvider{now: time.Now()}
	issuer := NewJWTIssuer("test-secret", 15*time.Minute, tp)
	other := NewJWTIssuer("other-secret", 15*time.Minute, tp)

	token, err := issuer.Issue(authport.Identity{UserID: 1, Phone: "+15550001"})
	require.NoError(t, err)

	_, err = other.Verify(token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	past := &fixedTimeProvider{now: time.Now().Add(-time.Hour)}
	issuer := NewJWTIssuer("test-secret", 15*time.Minute, past)

	token, err := issuer.Issue(authport.Identity{UserID: 1, Phone: "+15550001"})
	require.NoError(t, err)

	// Token expired 45 minutes ago
	_, err = issuer.Verify(token)
	assert.ErrorIs(t, err, errs.ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	tp := &fixedTimeProvider{now: time.Now()}
	issuer := NewJWTIssuer("test-secret", 15*time.Minute, tp)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, err := issuer.Verify(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	}
}

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4) // minimum cost keeps the test fast

	hash, err := hasher.Hash("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.NoError(t, hasher.Compare(hash, "secret123"))
	assert.ErrorIs(t, hasher.Compare(hash, "wrong"), errs.ErrInvalidCredentials)
}
