package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtmw "contacts_backend/internal/platform/jwt"
)

// setupTestRedis creates a miniredis instance for testing.
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	t.Cleanup(func() {
		_ = client.Close()
		mr.Close()
	})

	return client, mr
}

func newRouter(limiter *Limiter, userID uint) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/limited", func(c *gin.Context) {
		if userID != 0 {
			c.Set(jwtmw.ContextUserID, userID)
		}
		c.Next()
	}, limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/limited", nil)
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLimiter_AllowsUpToLimit(t *testing.T) {
	client, _ := setupTestRedis(t)
	limiter := NewLimiter(client, "test", 4, 10*time.Second)
	r := newRouter(limiter, 1)

	for i := 0; i < 4; i++ {
		assert.Equal(t, http.StatusOK, hit(r), "request %d should pass", i+1)
	}
	assert.Equal(t, http.StatusTooManyRequests, hit(r), "fifth request should be throttled")
}

func TestLimiter_WindowResets(t *testing.T) {
	client, mr := setupTestRedis(t)
	limiter := NewLimiter(client, "test", 2, 10*time.Second)
	r := newRouter(limiter, 1)

	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))

	// Advance past the window; the counter key expires.
	mr.FastForward(11 * time.Second)

	assert.Equal(t, http.StatusOK, hit(r), "a fresh window starts after expiry")
}

func TestLimiter_PerUserIsolation(t *testing.T) {
	client, _ := setupTestRedis(t)
	limiter := NewLimiter(client, "test", 1, 10*time.Second)

	alice := newRouter(limiter, 1)
	bob := newRouter(limiter, 2)

	assert.Equal(t, http.StatusOK, hit(alice))
	assert.Equal(t, http.StatusTooManyRequests, hit(alice))
	assert.Equal(t, http.StatusOK, hit(bob), "another user has their own allowance")
}

func TestLimiter_NilRedisPassesThrough(t *testing.T) {
	limiter := NewLimiter(nil, "test", 1, 10*time.Second)
	r := newRouter(limiter, 1)

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, hit(r), "without Redis every request passes")
	}
}

func TestLimiter_FallsBackToClientIP(t *testing.T) {
	client, _ := setupTestRedis(t)
	limiter := NewLimiter(client, "test", 1, 10*time.Second)
	r := newRouter(limiter, 0) // no principal on the context

	assert.Equal(t, http.StatusOK, hit(r))
	assert.Equal(t, http.StatusTooManyRequests, hit(r))
}
