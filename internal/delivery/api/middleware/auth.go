// Package middleware holds the API's echo middleware.
package middleware

import (
	"strings"

	"khitma/internal/delivery/api/response"
	deliverycontext "khitma/internal/delivery/context"
	domainerrors "khitma/internal/domain/errors"
	"khitma/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates callers by their access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the caller's user ID.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrMissingToken)
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil || claims == nil || claims.UserID == uuid.Nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidToken)
		}

		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
