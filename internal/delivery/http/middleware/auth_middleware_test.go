package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"dealerlot/config"
	"dealerlot/internal/domain/entity"
	"dealerlot/internal/infra/auth"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) (string, *AuthMiddleware) {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT = &config.JWTConfig{
		Secret:    "test_secret_key_very_long_for_testing",
		Issuer:    "dealerlot",
		Audience:  "dealerlot-api",
		ExpiresIn: time.Hour,
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	token, _, err := tokenSvc.Issue(&entity.Dealer{ID: 7, Username: "acme", CompanyName: "Acme Motors"})
	require.NoError(t, err)

	return token, NewAuthMiddleware(tokenSvc)
}

func invokeAuthenticate(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/cars", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	nextCalled := false
	handler := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))

	return rec, c, nextCalled
}

func TestAuthenticate_ValidToken(t *testing.T) {
	token, m := newTestTokenService(t)

	rec, c, nextCalled := invokeAuthenticate(t, m, "Bearer "+token)

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), c.Get(ContextKeyDealerID))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	_, m := newTestTokenService(t)

	rec, _, nextCalled := invokeAuthenticate(t, m, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	token, m := newTestTokenService(t)

	rec, _, nextCalled := invokeAuthenticate(t, m, "Basic "+token)

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_GarbageToken(t *testing.T) {
	_, m := newTestTokenService(t)

	rec, _, nextCalled := invokeAuthenticate(t, m, "Bearer not-a-real-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
