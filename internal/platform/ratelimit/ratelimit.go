// Package ratelimit provides a Redis-backed fixed-window rate limit
// middleware for Gin routes.
package ratelimit

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	jwtmw "contacts_backend/internal/platform/jwt"
)

// Limiter throttles requests per caller using a fixed window counter
// stored in Redis. The caller key is the authenticated user ID when
// available, otherwise the client IP.
type Limiter struct {
	rdb    *redis.Client
	prefix string
	limit  int
	window time.Duration
}

// NewLimiter creates a Limiter allowing limit requests per window.
// A nil Redis client disables limiting; the middleware then passes
// every request through, matching how the rest of the service degrades
// when Redis is unavailable.
func NewLimiter(rdb *redis.Client, prefix string, limit int, window time.Duration) *Limiter {
	return &Limiter{
		rdb:    rdb,
		prefix: prefix,
		limit:  limit,
		window: window,
	}
}

// Middleware returns the Gin handler enforcing the limit.
func (l *Limiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if l.rdb == nil {
			c.Next()
			return
		}

		key := l.key(c)
		count, err := l.rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			// A broken limiter must not take the API down with it.
			slog.Warn("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			if err := l.rdb.Expire(c.Request.Context(), key, l.window).Err(); err != nil {
				slog.Warn("failed to set rate limit window", "key", key, "error", err)
			}
		}
		if count > int64(l.limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func (l *Limiter) key(c *gin.Context) string {
	if p, ok := jwtmw.CurrentUser(c); ok {
		return fmt.Sprintf("%s:user:%d", l.prefix, p.UserID)
	}
	return fmt.Sprintf("%s:ip:%s", l.prefix, c.ClientIP())
}
