package middleware

import (
	"log/slog"
	"net/http"

	"roster/internal/delivery/http/response"
	domainerrors "roster/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

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

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Every workflow failure is converted here: nothing is retried, and the
// status comes from the error taxonomy.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			// Server errors forward the underlying cause to the caller,
			// matching the original service's behavior.
			_ = response.Failure(c, appErr.HTTPCode(), appErr.Message(), appErr.Details())

			return
		}

		if details := appErr.Details(); details != "" {
			_ = response.Failure(c, appErr.HTTPCode(), appErr.Message(), details)

			return
		}
		_ = response.Message(c, appErr.HTTPCode(), appErr.Message())

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		_ = response.Message(c, httpErr.Code, message)

		return
	}

	// Default to internal error, log and forward the cause.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Failure(c, http.StatusInternalServerError, "Internal server error", err.Error())
}
