package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	errs "github.com/sealpay/wallet-ledger/internal/domain/error"
	authport "github.com/sealpay/wallet-ledger/internal/domain/port/auth"
	"github.com/sealpay/wallet-ledger/internal/domain/port/core"
)

// Claims carries the identity inside a signed access token
type Claims struct {
	UserID uint64 `json:"user_id"`
	Phone  string `json:"phone"`
	jwt.RegisteredClaims
}

// JWTIssuer implements TokenIssuer using HS256 signed tokens
type JWTIssuer struct {
	secret       []byte
	ttl          time.Duration
	timeProvider core.TimeProvider
}

// NewJWTIssuer creates a token issuer with the given signing secret and token lifetime
func NewJWTIssuer(secret string, ttl time.Duration, timeProvider core.TimeProvider) *JWTIssuer {
	return &JWTIssuer{
		secret:       []byte(secret),
		ttl:          ttl,
		timeProvider: timeProvider,
	}
}

// Issue creates a signed access token for the identity
func (i *JWTIssuer) Issue(identity authport.Identity) (string, error) {
	now := i.timeProvider.Now()
	claims := Claims{
		UserID: identity.UserID,
		Phone:  identity.Phone,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(i.secret)
}

// Verify validates a token and returns the identity it carries
func (i *JWTIssuer) Verify(tokenStr string) (*authport.Identity, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errs.ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil {
		return nil, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errs.ErrInvalidToken
	}

	return &authport.Identity{
		UserID: claims.UserID,
		Phone:  claims.Phone,
	}, nil
}
