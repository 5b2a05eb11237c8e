// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"github.com/google/uuid"
)

// TokenClaims holds the validated claims of an access token.
type TokenClaims struct {
	UserID uuid.UUID
}

// TokenService defines the interface for access-token validation. Token
// issuance belongs to the external identity collaborator; this service
// only resolves the owning user from a presented token.
type TokenService interface {
	// ValidateAccessToken validates a token string and returns its claims.
	ValidateAccessToken(token string) (*TokenClaims, error)
}
