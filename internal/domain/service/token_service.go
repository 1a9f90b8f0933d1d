package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the claims carried by access tokens. UserID is parsed from the subject.
type Claims struct {
	UserID uuid.UUID `json:"-"`
	Type   string    `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenService validates access tokens issued by the authentication service.
type TokenService interface {
	// ValidateToken parses and verifies an access token.
	ValidateToken(tokenString string) (*Claims, error)
}
