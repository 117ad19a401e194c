package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"gearshare/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestIdentity(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetIdentity(c)
	assert.False(t, ok)

	identity := entity.Identity{ID: 7, Namespace: entity.NamespaceRenter}
	SetIdentity(c, identity)

	got, ok := GetIdentity(c)
	assert.True(t, ok)
	assert.Equal(t, identity, got)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Same(t, fallback, GetLoggerOrDefault(WithLogger(context.Background(), nil), fallback))
}
