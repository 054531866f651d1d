package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	defaultWindow      = time.Minute
	defaultMaxAttempts = 10
)

// LoginThrottle counts login attempts per email in a fixed window.
// Key format: login_attempts:<email>
type LoginThrottle struct {
	client      *redis.Client
	window      time.Duration
	maxAttempts int64
	log         zerolog.Logger
}

// NewLoginThrottle creates a LoginThrottle wrapping the given Redis client.
// Non-positive window or maxAttempts fall back to defaults.
func NewLoginThrottle(client *redis.Client, window time.Duration, maxAttempts int, log zerolog.Logger) *LoginThrottle {
	if window <= 0 {
		window = defaultWindow
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &LoginThrottle{client: client, window: window, maxAttempts: int64(maxAttempts), log: log}
}

// Allow records one attempt for email and reports whether it is still within
// the window budget. Redis errors fail open: a degraded cache must not lock
// anyone out of logging in.
func (t *LoginThrottle) Allow(ctx context.Context, email string) bool {
	key := "login_attempts:" + email

	n, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		t.log.Warn().Err(err).Msg("login throttle unavailable, allowing attempt")
		return true
	}
	if n == 1 {
		if err := t.client.Expire(ctx, key, t.window).Err(); err != nil {
			t.log.Warn().Err(err).Msg("login throttle expire failed")
		}
	}
	return n <= t.maxAttempts
}
