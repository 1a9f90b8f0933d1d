// Package handler contains the API's echo handlers.
package handler

import (
	"khitma/internal/delivery/api/response"
	deliverycontext "khitma/internal/delivery/context"
	domainerrors "khitma/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// timezoneInput is the optional explicit timezone accepted by local-date endpoints.
type timezoneInput struct {
	Timezone string `json:"timezone" query:"timezone" validate:"iana_tz"`
}

// callerID returns the authenticated user, writing a 401 when there is none.
func callerID(c echo.Context) (uuid.UUID, bool, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, false, response.HandleAppError(c, domainerrors.ErrInvalidToken)
	}

	return userID, true, nil
}

// bindTimezone reads the timezone from the body, falling back to the query
// string since echo only binds query params for GET and DELETE.
func bindTimezone(c echo.Context) (string, error) {
	var in timezoneInput
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&in); err != nil {
			return "", err
		}
	}
	if in.Timezone == "" {
		in.Timezone = c.QueryParam("timezone")
	}
	if err := c.Validate(&in); err != nil {
		return "", err
	}

	return in.Timezone, nil
}
