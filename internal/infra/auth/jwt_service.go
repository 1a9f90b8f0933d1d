// Package auth verifies access tokens issued by the authentication service.
package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"khitma/config"
	"khitma/internal/domain/service"
	"khitma/internal/errors"
)

const accessTokenType = "access"

var (
	// ErrMissingSecret is returned when no access secret is configured.
	ErrMissingSecret = errors.New("jwt access secret must be provided")
	// ErrWrongTokenType is returned for refresh or other non-access tokens.
	ErrWrongTokenType = errors.New("token is not an access token")
	// ErrInvalidSubject is returned when the subject is not a user id.
	ErrInvalidSubject = errors.New("token subject is not a valid user id")
)

// jwtService verifies HMAC-signed access tokens.
type jwtService struct {
	accessSecret []byte
	parser       *jwt.Parser
}

// NewJWTService creates the token verifier from the configured access secret.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, ErrMissingSecret
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// ValidateToken checks signature, expiry and token type, then resolves the user id from "sub".
// Tokens without a type claim are accepted as access tokens.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := s.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	if claims.Type != "" && claims.Type != accessTokenType {
		return nil, ErrWrongTokenType
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidSubject, claims.Subject)
	}
	claims.UserID = userID

	return claims, nil
}
