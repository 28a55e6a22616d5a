package constants

import "time"

// Database pool settings.
const (
	DatabaseMaxOpenConns    = 10
	DatabaseMaxIdleConns    = 5
	DatabaseConnMaxLifetime = 30 // minutes
	DatabaseSSLMode         = "disable"
)

// Context keys.
const (
	ContextTokenData = "token_data"
)

// Session / token settings.
const (
	TokenCookieName = "token"
	TokenLifetime   = 7 * 24 * time.Hour
)

// Redis keys and durations.
const (
	RedisKeyTokenBlacklist = "token:blacklist:"
	RedisKeyLoginAttempts  = "login:attempts:"

	MaxLoginAttempts = 5
	BlockDuration    = 15 * time.Minute
)

// Timeouts.
const (
	DefaultRequestTimeout = 30 * time.Second
	ShutdownTimeout       = 10 * time.Second
)
