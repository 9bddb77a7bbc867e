package middleware

import (
	"log/slog"
	"net/http"

	"dealerlot/internal/delivery/http/response"
	domainerrors "dealerlot/internal/domain/errors"

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

// HandleHTTPError handles errors as echo's HTTPErrorHandler, converting every
// error into the uniform response envelope. Requests fail independently; nothing
// here crashes the process.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if err := response.Error(c, appErr.HTTPCode(), appErr.Message(), appErr.Details()); err != nil {
			m.logger.Error("Failed to write error response", "error", err)
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if err := response.Error(c, httpErr.Code, message, nil); err != nil {
			m.logger.Error("Failed to write error response", "error", err)
		}

		return
	}

	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	if err := response.Error(c, http.StatusInternalServerError, "internal server error", nil); err != nil {
		m.logger.Error("Failed to write error response", "error", err)
	}
}
