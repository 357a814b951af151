package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const loginWindow = time.Minute

const defaultMaxAttempts = 10

// LoginLimiter caps login attempts per client with a Redis fixed window.
// Key format: ratelimit:login:<client_ip>
//
// This is a stub guard, not a hardened rate-limiting design: callers are
// expected to fail open when Redis is unavailable.
type LoginLimiter struct {
	client *redis.Client
	max    int64
}

// NewLoginLimiter creates a LoginLimiter allowing max attempts per window.
// If max <= 0, defaultMaxAttempts is used.
func NewLoginLimiter(client *redis.Client, max int64) *LoginLimiter {
	if max <= 0 {
		max = defaultMaxAttempts
	}
	return &LoginLimiter{client: client, max: max}
}

// Allow records an attempt for clientIP and reports whether it is within
// the window's limit.
func (l *LoginLimiter) Allow(ctx context.Context, clientIP string) (bool, error) {
	key := l.key(clientIP)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, loginWindow).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *LoginLimiter) key(clientIP string) string {
	return fmt.Sprintf("ratelimit:login:%s", clientIP)
}
