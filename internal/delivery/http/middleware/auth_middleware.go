package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "gearshare/internal/delivery/context"
	"gearshare/internal/domain/entity"
	domainerrors "gearshare/internal/domain/errors"
	"gearshare/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const bearerScheme = "bearer"

// AuthMiddleware authenticates session tokens and checks the access policy.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	policy   service.AccessPolicy
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, policy service.AccessPolicy, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, policy: policy, logger: logger}
}

// ExtractBearerToken returns the token of an "Authorization: Bearer <token>" header value.
// ok is false when the scheme is not bearer or the token is empty.
func ExtractBearerToken(header string) (token string, ok bool) {
	scheme, rest, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return "", false
	}

	token = strings.TrimSpace(rest)
	if token == "" {
		return "", false
	}

	return token, true
}

// Authenticate verifies the session token and stores the caller's identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrAuthenticationMissing
		}

		tokenString, ok := ExtractBearerToken(authHeader)
		if !ok {
			return domainerrors.ErrBearerTokenMissing
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("session token rejected", slog.Any("error", err))

			return domainerrors.ErrAuthenticationInvalid
		}

		deliverycontext.SetIdentity(c, entity.Identity{
			ID:        claims.PrincipalID,
			Namespace: claims.Namespace,
		})

		return next(c)
	}
}

// Authorize is a middleware factory that checks whether the caller's namespace
// may perform action on resource. It must be used AFTER Authenticate.
func (m *AuthMiddleware) Authorize(resource, action string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return domainerrors.ErrAuthenticationMissing
			}

			allowed, err := m.policy.Allowed(identity.Namespace, resource, action)
			if err != nil {
				return errors.Wrap(err, "evaluate access policy")
			}
			if !allowed {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}
