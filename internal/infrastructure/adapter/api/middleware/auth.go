package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	domainerr "github.com/sealpay/wallet-ledger/internal/domain/error"
	authport "github.com/sealpay/wallet-ledger/internal/domain/port/auth"
	"github.com/sealpay/wallet-ledger/internal/infrastructure/adapter/api/dto"
)

const identityKey = "identity"

// Auth middleware verifies the bearer token and attaches the caller identity
// to the request context. Requests without a valid token are rejected.
func Auth(issuer authport.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Missing or malformed Authorization header",
			})
			return
		}

		identity, err := issuer.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidToken),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(identityKey, *identity)
		c.Next()
	}
}

// CurrentIdentity returns the verified identity attached by the Auth middleware
func CurrentIdentity(c *gin.Context) (authport.Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return authport.Identity{}, false
	}
	identity, ok := val.(authport.Identity)
	return identity, ok
}
