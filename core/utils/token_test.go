package utils

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prasen-shakya/Schedulify/core/config"
	"github.com/prasen-shakya/Schedulify/core/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	config.Set(&config.Config{JWT: config.JWTConfig{Secret: "test-secret"}})
	os.Exit(m.Run())
}

func TestGenerateAndValidateToken(t *testing.T) {
	userID := uuid.New()

	token, expiresAt, err := GenerateToken(userID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ValidateAndParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt.Time, time.Second)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, _, err := GenerateToken(uuid.New())
	assert.NoError(t, err)

	config.Set(&config.Config{JWT: config.JWTConfig{Secret: "another-secret"}})
	defer config.Set(&config.Config{JWT: config.JWTConfig{Secret: "test-secret"}})

	_, err = ValidateAndParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateAndParseToken("definitely.not.a.jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func newEchoContext(req *http.Request) echo.Context {
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestGetTokenFromRequestPrefersCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: "cookie-token"})
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")

	token, err := GetTokenFromRequest(newEchoContext(req))
	assert.NoError(t, err)
	assert.Equal(t, "cookie-token", token)
}

func TestGetTokenFromRequestBearerFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer header-token")

	token, err := GetTokenFromRequest(newEchoContext(req))
	assert.NoError(t, err)
	assert.Equal(t, "header-token", token)
}

func TestGetTokenFromRequestMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := GetTokenFromRequest(newEchoContext(req))
	assert.ErrorIs(t, err, ErrTokenMissing)
}

func TestGetTokenFromRequestMalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")

	_, err := GetTokenFromRequest(newEchoContext(req))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)

	assert.True(t, ComparePassword(hashed, "hunter22"))
	assert.False(t, ComparePassword(hashed, "hunter23"))
}
