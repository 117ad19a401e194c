// Package context carries the per-request values shared by the HTTP layer
// and the usecases: the request-scoped logger and the verified caller.
package context

import (
	"context"
	"log/slog"

	"gearshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	keyLogger   ContextKey = "logger"
	keyIdentity ContextKey = "identity"
)

// WithLogger returns a new context with the request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback outside a request.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(keyLogger).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// SetIdentity records the caller verified by the authentication middleware.
func SetIdentity(c echo.Context, identity entity.Identity) {
	c.Set(string(keyIdentity), identity)
}

// GetIdentity returns the caller set by SetIdentity.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(string(keyIdentity)).(entity.Identity)

	return identity, ok
}
