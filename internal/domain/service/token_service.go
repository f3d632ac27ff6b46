package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by issued tokens.
// The user identifier is the sole custom claim.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating signed session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Generate creates a signed, time-bound token carrying the user's identifier.
	Generate(userID string) (string, error)

	// Validate checks the signature and expiry of a token string.
	// No endpoint in this service consumes tokens; this exists so the
	// round-trip contract stays verifiable.
	Validate(tokenString string) (*Claims, error)
}
