package handler

import (
	"net/http"

	"gearshare/internal/delivery/http/response"
	"gearshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// updateProfileRequest fields are optional; absent or empty values keep the stored ones.
type updateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"omitempty,maxbytes=72"`
}

// ProfileHandler serves the caller's own profile. The namespace comes from the session.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile returns the public profile of the caller.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	principal, err := h.uc.GetProfile(c.Request().Context(), caller)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.OK(c, response.NewPrincipal(principal))
}

// UpdateProfile applies a partial update to the caller's profile.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.uc.UpdateProfile(c.Request().Context(), caller, &usecase.UpdateProfileInput{
		FirstName: optional(req.FirstName),
		LastName:  optional(req.LastName),
		Email:     optional(req.Email),
		Password:  optional(req.Password),
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, namespaceTitle(caller.Namespace)+" updated successfully")
}

// DeleteProfile deletes the caller and tells the client to drop its token.
// The token itself stays valid until it expires.
func (h *ProfileHandler) DeleteProfile(c echo.Context) error {
	caller, err := identity(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteProfile(c.Request().Context(), caller); err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderAuthorization, "")

	return response.Message(c, http.StatusOK, namespaceTitle(caller.Namespace)+" deleted successfully")
}

// optional maps an empty value to "keep the stored one".
func optional(value string) *string {
	if value == "" {
		return nil
	}

	return &value
}
