package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/prasen-shakya/Schedulify/core/config"
	"github.com/prasen-shakya/Schedulify/core/constants"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
	ErrTokenMissing = errors.New("token missing")
)

// TokenClaims carries the caller's identity through middleware and
// controllers.
type TokenClaims struct {
	UserID uuid.UUID `json:"userId"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed session token for userID. The second return
// is the expiry so callers can align cookie lifetime with it.
func GenerateToken(userID uuid.UUID) (string, time.Time, error) {
	cfg := config.Get()

	expiresAt := time.Now().Add(constants.TokenLifetime)
	claims := TokenClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateAndParseToken verifies the signature and expiry of a session
// token. Expired tokens are reported distinctly from malformed ones.
func ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	cfg := config.Get()

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	if !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// GetTokenFromRequest resolves the session token the way the original client
// presents it: an httpOnly cookie first, an Authorization bearer header as a
// fallback for API consumers.
func GetTokenFromRequest(c echo.Context) (string, error) {
	if cookie, err := c.Cookie(constants.TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", ErrTokenMissing
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", ErrTokenInvalid
	}
	return parts[1], nil
}
