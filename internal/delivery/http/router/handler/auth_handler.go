// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dealerlot/internal/delivery/http/response"
	"dealerlot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegisterRequest is the POST /api/auth/register body.
type RegisterRequest struct {
	Username    string `json:"username" validate:"required,alphanum,max=40"`
	Password    string `json:"password" validate:"required,min=6,max=40"`
	CompanyName string `json:"companyName" validate:"required,max=50"`
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Username string `json:"username" validate:"required,alphanum"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the data payload returned on successful login.
type LoginResponse struct {
	Token       string    `json:"token"`
	CompanyName string    `json:"companyName"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// AuthHandler holds dependencies for authentication handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the dealer registration request.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid registration input", nil)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	_, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:    req.Username,
		Password:    req.Password,
		CompanyName: req.CompanyName,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Registration successful")
}

// Login handles the dealer login request.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "invalid login input", nil)
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:       output.Token,
		CompanyName: output.CompanyName,
		ExpiresAt:   output.ExpiresAt,
	}, "Login successful")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
