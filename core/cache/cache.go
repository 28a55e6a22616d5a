package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/prasen-shakya/Schedulify/core/config"
	"github.com/prasen-shakya/Schedulify/core/constants"
	"github.com/prasen-shakya/Schedulify/core/logger"

	"github.com/redis/go-redis/v9"
)

// Cache backs session revocation and login throttling. Redis is optional at
// runtime: when it is disabled or unreachable the noop implementation is
// used and logout degrades to cookie clearing.
type Cache interface {
	AddTokenToBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)

	IncrementLoginAttempt(ctx context.Context, key string) error
	IsLoginBlocked(ctx context.Context, key string) (bool, error)
	ResetLoginAttempts(ctx context.Context, key string) error

	Close() error
}

func New(cfg config.RedisConfig) Cache {
	if !cfg.Enabled {
		logger.Info("Cache:New", "detail", "redis disabled, using noop cache")
		return noopCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Cache:New:Ping", "error", err, "detail", "falling back to noop cache")
		_ = client.Close()
		return noopCache{}
	}

	logger.Info("Cache:New", "addr", cfg.Addr)
	return &redisCache{client: client}
}

type redisCache struct {
	client *redis.Client
}

// tokenKey hashes the raw JWT so the blacklist never stores credentials.
func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return constants.RedisKeyTokenBlacklist + hex.EncodeToString(sum[:])
}

func (c *redisCache) AddTokenToBlacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, tokenKey(token), "1", ttl).Err()
}

func (c *redisCache) IsTokenBlacklisted(ctx context.Context, token string) (bool, error) {
	n, err := c.client.Exists(ctx, tokenKey(token)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (c *redisCache) IncrementLoginAttempt(ctx context.Context, key string) error {
	full := constants.RedisKeyLoginAttempts + key
	n, err := c.client.Incr(ctx, full).Result()
	if err != nil {
		return err
	}
	// First failure starts the window; reaching the cap refreshes it.
	if n == 1 || n >= constants.MaxLoginAttempts {
		return c.client.Expire(ctx, full, constants.BlockDuration).Err()
	}
	return nil
}

func (c *redisCache) IsLoginBlocked(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Get(ctx, constants.RedisKeyLoginAttempts+key).Int64()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return n >= constants.MaxLoginAttempts, nil
}

func (c *redisCache) ResetLoginAttempts(ctx context.Context, key string) error {
	return c.client.Del(ctx, constants.RedisKeyLoginAttempts+key).Err()
}

func (c *redisCache) Close() error {
	return c.client.Close()
}

type noopCache struct{}

func (noopCache) AddTokenToBlacklist(context.Context, string, time.Duration) error { return nil }
func (noopCache) IsTokenBlacklisted(context.Context, string) (bool, error)         { return false, nil }
func (noopCache) IncrementLoginAttempt(context.Context, string) error              { return nil }
func (noopCache) IsLoginBlocked(context.Context, string) (bool, error)             { return false, nil }
func (noopCache) ResetLoginAttempts(context.Context, string) error                 { return nil }
func (noopCache) Close() error                                                     { return nil }
