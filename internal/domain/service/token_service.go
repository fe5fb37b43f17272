package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the payload of a bearer token.
// UniqueIdentifier is the issuance time in Unix milliseconds, so two tokens
// issued for the same user within one millisecond carry the same value.
type Claims struct {
	ID               uuid.UUID `json:"id"`
	UniqueIdentifier string    `json:"uniqueIdentifier"`
	jwt.RegisteredClaims
}

// TokenService issues and validates signed, expiring bearer tokens.
type TokenService interface {
	// IssueToken creates a signed token for the given user.
	IssueToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies the signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*Claims, error)
}
