package middleware

import (
	"net/http"

	"github.com/prasen-shakya/Schedulify/core/cache"
	"github.com/prasen-shakya/Schedulify/core/constants"
	"github.com/prasen-shakya/Schedulify/core/controller"
	"github.com/prasen-shakya/Schedulify/core/logger"
	"github.com/prasen-shakya/Schedulify/core/utils"

	"github.com/labstack/echo/v4"
)

type Middleware struct {
	cache cache.Cache
}

func NewMiddleware(cache cache.Cache) *Middleware {
	return &Middleware{cache: cache}
}

// AuthMiddleware resolves the caller's identity from the session cookie or
// a bearer header. A missing credential is distinct from an invalid or
// expired one: 401 "Not authenticated" vs 403 "Invalid or expired token"
// (the latter also clears the stale cookie, as the original did).
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromRequest(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, controller.MessageResponse{Message: "Not authenticated"})
			}

			ctx := c.Request().Context()
			blacklisted, err := m.cache.IsTokenBlacklisted(ctx, token)
			if err != nil {
				logger.Warn("Middleware:AuthMiddleware:IsTokenBlacklisted", "error", err)
				// Cache trouble must not lock everyone out; fall through to
				// signature validation.
				blacklisted = false
			}
			if blacklisted {
				m.clearSessionCookie(c)
				return c.JSON(http.StatusForbidden, controller.MessageResponse{Message: "Invalid or expired token"})
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				m.clearSessionCookie(c)
				return c.JSON(http.StatusForbidden, controller.MessageResponse{Message: "Invalid or expired token"})
			}

			c.Set(constants.ContextTokenData, claims)
			return next(c)
		}
	}
}

func (m *Middleware) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     constants.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
