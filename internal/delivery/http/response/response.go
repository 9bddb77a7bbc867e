package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response is the uniform API envelope. Every endpoint, success or failure,
// returns this shape.
type Response struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data"`
	Errors  []string `json:"errors"`
}

// Success successful response
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Errors:  []string{},
	})
}

// Error error response
func Error(c echo.Context, statusCode int, message string, errs []string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if errs == nil {
		errs = []string{}
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Errors:  errs,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string, errs []string) error {
	return Error(c, http.StatusBadRequest, message, errs)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message, nil)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message, nil)
}
