package handler

import (
	"net/http"

	"gearshare/internal/delivery/http/response"
	"gearshare/internal/domain/entity"
	"gearshare/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	// bcrypt accepts at most 72 bytes of password.
	Password  string `json:"password" validate:"required,maxbytes=72"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// registerResponse carries owner_id or renter_id depending on the namespace.
type registerResponse struct {
	Message  string `json:"message"`
	OwnerID  *int64 `json:"owner_id,omitempty"`
	RenterID *int64 `json:"renter_id,omitempty"`
	Token    string `json:"token"`
}

type loginResponse struct {
	User  response.PrincipalResponse `json:"user"`
	Token string                     `json:"token"`
}

// AuthHandler serves registration and login for both namespaces.
type AuthHandler struct {
	uc usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Register returns the registration handler of a namespace.
func (h *AuthHandler) Register(namespace entity.Namespace) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req registerRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
			Namespace: namespace,
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		resp := registerResponse{
			Message: namespaceTitle(namespace) + " registered successfully",
			Token:   output.Token,
		}
		if namespace == entity.NamespaceOwner {
			resp.OwnerID = &output.Principal.ID
		} else {
			resp.RenterID = &output.Principal.ID
		}

		return response.OK(c, resp)
	}
}

// Login returns the login handler of a namespace.
func (h *AuthHandler) Login(namespace entity.Namespace) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := bindAndValidate(c, &req); err != nil {
			return err
		}

		output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
			Namespace: namespace,
			Email:     req.Email,
			Password:  req.Password,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		return c.JSON(http.StatusOK, loginResponse{
			User:  response.NewPrincipal(output.Principal),
			Token: output.Token,
		})
	}
}

func namespaceTitle(namespace entity.Namespace) string {
	switch namespace {
	case entity.NamespaceOwner:
		return "Owner"
	case entity.NamespaceRenter:
		return "Renter"
	default:
		return "User"
	}
}
