package auth

import (
	"testing"
	"time"

	"khitma/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret

	return cfg
}

func signToken(t *testing.T, method jwt.SigningMethod, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestJWTService_ValidateToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	userID := uuid.New()
	exp := time.Now().Add(time.Hour).Unix()

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{
			name:  "valid access token",
			token: signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": userID.String(), "exp": exp, "type": "access"}),
		},
		{
			name:  "token without type",
			token: signToken(t, jwt.SigningMethodHS512, testSecret, jwt.MapClaims{"sub": userID.String(), "exp": exp}),
		},
		{
			name:    "refresh token",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": userID.String(), "exp": exp, "type": "refresh"}),
			wantErr: ErrWrongTokenType,
		},
		{
			name:    "subject is not a uuid",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": "user-1", "exp": exp}),
			wantErr: ErrInvalidSubject,
		},
		{
			name:    "expired",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": userID.String(), "exp": time.Now().Add(-time.Minute).Unix()}),
			wantErr: jwt.ErrTokenExpired,
		},
		{
			name:    "missing expiry",
			token:   signToken(t, jwt.SigningMethodHS256, testSecret, jwt.MapClaims{"sub": userID.String()}),
			wantErr: jwt.ErrTokenRequiredClaimMissing,
		},
		{
			name:    "wrong secret",
			token:   signToken(t, jwt.SigningMethodHS256, "another-secret", jwt.MapClaims{"sub": userID.String(), "exp": exp}),
			wantErr: jwt.ErrTokenSignatureInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := svc.ValidateToken(tt.token)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc, err := NewJWTService(newTestConfig(testSecret))
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-jwt")
	assert.ErrorIs(t, err, jwt.ErrTokenMalformed)
}

func TestNewJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(newTestConfig(""))
	assert.ErrorIs(t, err, ErrMissingSecret)
}
