package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "gearshare/internal/delivery/context"
	domainerrors "gearshare/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const internalErrorMessage = "An error occurred"

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, body := m.render(err, c)

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		m.requestLogger(c).Error("write error response", slog.Any("error", writeErr))
	}
}

func (m *ErrorMiddleware) render(err error, c echo.Context) (int, domainerrors.ErrorResponse) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logInternal(c, err, appErr.Details())
		}

		return appErr.HTTPCode(), domainerrors.ErrorResponse{
			Error: appErr.Message(),
			Code:  appErr.ErrorCode(),
		}
	}

	// Echo's own errors: unknown route, bind failures, body limit.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		if httpErr.Code >= http.StatusInternalServerError {
			m.logInternal(c, err, "")

			return httpErr.Code, domainerrors.ErrorResponse{Error: internalErrorMessage, Code: "HTTP_ERROR"}
		}

		return httpErr.Code, domainerrors.ErrorResponse{
			Error: httpErrorMessage(httpErr),
			Code:  "HTTP_ERROR",
		}
	}

	m.logInternal(c, err, "")

	return http.StatusInternalServerError, domainerrors.ErrorResponse{
		Error: internalErrorMessage,
		Code:  domainerrors.ErrInternalError.ErrorCode(),
	}
}

func (m *ErrorMiddleware) logInternal(c echo.Context, err error, details string) {
	attrs := []any{
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	}
	if details != "" {
		attrs = append(attrs, slog.String("details", details))
	}

	m.requestLogger(c).Error("Unhandled error", attrs...)
}

func (m *ErrorMiddleware) requestLogger(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func httpErrorMessage(httpErr *echo.HTTPError) string {
	switch msg := httpErr.Message.(type) {
	case string:
		return msg
	case nil:
		return http.StatusText(httpErr.Code)
	default:
		return fmt.Sprint(msg)
	}
}
