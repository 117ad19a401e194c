// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	deliverycontext "gearshare/internal/delivery/context"
	"gearshare/internal/delivery/http/response"
	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request body into req and runs its validate tags.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WithDetails(name + " must be a positive integer")
	}

	return id, nil
}

// identity returns the caller set by the authentication middleware.
func identity(c echo.Context) (entity.Identity, error) {
	id, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return entity.Identity{}, domainerrors.ErrAuthenticationMissing
	}

	return id, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.OK(c, map[string]string{"status": "ok"})
}
