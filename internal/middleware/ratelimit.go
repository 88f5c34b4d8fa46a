package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RateLimiter enforces a fixed-window quota per client identity. With a
// Redis client configured the counters are shared across instances; without
// one it degrades to process-local counters, which is acceptable for the
// low-value convenience endpoint it protects.
type RateLimiter struct {
	rdb    *redis.Client
	window time.Duration
	limit  int

	mu    sync.Mutex
	local map[string]*localWindow
}

type localWindow struct {
	count     int
	expiresAt time.Time
}

func NewRateLimiter(rdb *redis.Client, window time.Duration, limit int) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		window: window,
		limit:  limit,
		local:  make(map[string]*localWindow),
	}
}

// Allow reports whether the identity has quota left in the current window.
func (l *RateLimiter) Allow(ctx context.Context, identity string) (bool, error) {
	if l.rdb != nil {
		return l.allowRedis(ctx, identity)
	}
	return l.allowLocal(identity), nil
}

func (l *RateLimiter) allowRedis(ctx context.Context, identity string) (bool, error) {
	bucket := time.Now().Unix() / int64(l.window.Seconds())
	key := fmt.Sprintf("ratelimit:%s:%d", identity, bucket)

	count, err := l.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}
	if count == 1 {
		l.rdb.Expire(ctx, key, l.window)
	}

	return count <= int64(l.limit), nil
}

func (l *RateLimiter) allowLocal(identity string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	w, ok := l.local[identity]
	if !ok || now.After(w.expiresAt) {
		// Entries reset lazily on next access.
		l.local[identity] = &localWindow{count: 1, expiresAt: now.Add(l.window)}
		return true
	}

	w.count++
	return w.count <= l.limit
}

// RateLimitMiddleware rejects requests over quota with 429, keyed by client IP.
func RateLimitMiddleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			// A broken counter store should not take the endpoint down.
			c.Next()
			return
		}
		if !allowed {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}
		c.Next()
	}
}
