package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/prasen-shakya/Schedulify/core/config"
	"github.com/prasen-shakya/Schedulify/core/constants"
	"github.com/prasen-shakya/Schedulify/core/utils"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	config.Set(&config.Config{JWT: config.JWTConfig{Secret: "test-secret"}})
	os.Exit(m.Run())
}

type memoryCache struct {
	blacklist map[string]bool
}

func (m *memoryCache) AddTokenToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	m.blacklist[token] = true
	return nil
}

func (m *memoryCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	return m.blacklist[token], nil
}

func (m *memoryCache) IncrementLoginAttempt(ctx context.Context, key string) error { return nil }
func (m *memoryCache) IsLoginBlocked(ctx context.Context, key string) (bool, error) {
	return false, nil
}
func (m *memoryCache) ResetLoginAttempts(ctx context.Context, key string) error { return nil }
func (m *memoryCache) Close() error                                             { return nil }

func setupAuthTest() (*echo.Echo, *memoryCache) {
	c := &memoryCache{blacklist: make(map[string]bool)}
	mw := NewMiddleware(c)

	e := echo.New()
	e.GET("/protected", func(ctx echo.Context) error {
		claims := ctx.Get(constants.ContextTokenData).(*utils.TokenClaims)
		return ctx.JSON(http.StatusOK, map[string]string{"userId": claims.UserID.String()})
	}, mw.AuthMiddleware())

	return e, c
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	e, _ := setupAuthTest()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Not authenticated"}`, rec.Body.String())
}

func TestAuthMiddlewareValidCookie(t *testing.T) {
	e, _ := setupAuthTest()
	userID := uuid.New()
	token, _, err := utils.GenerateToken(userID)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), userID.String())
}

func TestAuthMiddlewareValidBearerHeader(t *testing.T) {
	e, _ := setupAuthTest()
	token, _, err := utils.GenerateToken(uuid.New())
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	e, _ := setupAuthTest()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: "garbage"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid or expired token"}`, rec.Body.String())

	// stale cookie is cleared
	cookies := rec.Result().Cookies()
	assert.NotEmpty(t, cookies)
	assert.Equal(t, constants.TokenCookieName, cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestAuthMiddlewareBlacklistedToken(t *testing.T) {
	e, c := setupAuthTest()
	token, _, err := utils.GenerateToken(uuid.New())
	assert.NoError(t, err)
	c.blacklist[token] = true

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: constants.TokenCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Invalid or expired token"}`, rec.Body.String())
}
