package service

import (
	"errors"
	"time"

	"gearshare/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, malformed, unknown namespace or expired.
var ErrInvalidToken = errors.New("invalid token")

// SessionClaims binds a principal id to the namespace of the endpoint that issued the token.
type SessionClaims struct {
	PrincipalID int64            `json:"id"`
	Namespace   entity.Namespace `json:"ns"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-bounded session tokens.
type TokenService interface {
	// Issue signs a token for the principal that expires after ttl.
	Issue(principalID int64, namespace entity.Namespace, ttl time.Duration) (string, error)

	// Verify checks signature and expiry and returns the bound identity.
	Verify(tokenString string) (*SessionClaims, error)
}
