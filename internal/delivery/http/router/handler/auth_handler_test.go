package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"dealerlot/internal/delivery/http/middleware"
	"dealerlot/internal/delivery/http/validator"
	"dealerlot/internal/domain/entity"
	domainerrors "dealerlot/internal/domain/errors"
	"dealerlot/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockAuthUsecase is a testify mock of usecase.AuthUsecase.
type mockAuthUsecase struct {
	mock.Mock
}

func (m *mockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.Dealer, error) {
	args := m.Called(ctx, input)
	if dealer := args.Get(0); dealer != nil {
		return dealer.(*entity.Dealer), args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *mockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output := args.Get(0); output != nil {
		return output.(*usecase.LoginOutput), args.Error(1)
	}

	return nil, args.Error(1)
}

type authHandlerFixtures struct {
	carHandlerFixtures

	handler *AuthHandler
	uc      *mockAuthUsecase
}

func createTestAuthHandler(t *testing.T) authHandlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	uc := &mockAuthUsecase{}

	e := echo.New()
	e.Validator = validator.New()

	return authHandlerFixtures{
		carHandlerFixtures: carHandlerFixtures{
			echo:     e,
			errorMid: middleware.NewErrorMiddleware(logger),
		},
		handler: NewAuthHandler(uc, logger),
		uc:      uc,
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	f := createTestAuthHandler(t)

	f.uc.On("Register", mock.Anything, &usecase.RegisterInput{
		Username: "acme", Password: "secret1", CompanyName: "Acme Motors",
	}).Return(&entity.Dealer{ID: 1, Username: "acme"}, nil)

	body := `{"username":"acme","password":"secret1","companyName":"Acme Motors"}`
	rec := f.perform(t, http.MethodPost, "/api/auth/register", body, "", f.handler.Register)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Registration successful", envelope.Message)
	// Registration never echoes the dealer record or any credential material.
	assert.Nil(t, envelope.Data)
}

func TestAuthHandler_Register_DuplicateUsername(t *testing.T) {
	f := createTestAuthHandler(t)

	f.uc.On("Register", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUsernameTaken)

	body := `{"username":"acme","password":"secret1","companyName":"Acme Motors"}`
	rec := f.perform(t, http.MethodPost, "/api/auth/register", body, "", f.handler.Register)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "username already exists", envelope.Message)
}

func TestAuthHandler_Register_InvalidShape(t *testing.T) {
	f := createTestAuthHandler(t)

	// Non-alphanumeric username and short password fail validation before the
	// usecase runs.
	body := `{"username":"ac me!","password":"123","companyName":"Acme Motors"}`
	rec := f.perform(t, http.MethodPost, "/api/auth/register", body, "", f.handler.Register)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Len(t, envelope.Errors, 2)
	f.uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	f := createTestAuthHandler(t)

	expiresAt := time.Now().Add(2 * time.Hour).Truncate(time.Second)
	f.uc.On("Login", mock.Anything, &usecase.LoginInput{Username: "acme", Password: "secret1"}).
		Return(&usecase.LoginOutput{Token: "signed-token", CompanyName: "Acme Motors", ExpiresAt: expiresAt}, nil)

	body := `{"username":"acme","password":"secret1"}`
	rec := f.perform(t, http.MethodPost, "/api/auth/login", body, "", f.handler.Login)

	assert.Equal(t, http.StatusOK, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.True(t, envelope.Success)
	assert.Equal(t, "Login successful", envelope.Message)

	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "signed-token", data["token"])
	assert.Equal(t, "Acme Motors", data["companyName"])
}

func TestAuthHandler_Login_GenericFailure(t *testing.T) {
	f := createTestAuthHandler(t)

	f.uc.On("Login", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	body := `{"username":"ghost","password":"wrong1"}`
	rec := f.perform(t, http.MethodPost, "/api/auth/login", body, "", f.handler.Login)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	envelope := decodeEnvelope(t, rec)
	assert.False(t, envelope.Success)
	assert.Equal(t, "invalid username or password", envelope.Message)
}
