package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func newRateLimitRouter(t *testing.T, limiter *RateLimiter, userID string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", userID)
	})
	r.Use(limiter.Handler())
	r.GET("/posts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/posts/:id/like", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

func newRateLimitRedis(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func doRequest(router *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_LimitFor(t *testing.T) {
	limiter := NewRateLimiter(nil, 100, time.Minute).
		WithRouteLimit("/posts/:id/like", 30)

	assert.Equal(t, 30, limiter.limitFor("/posts/:id/like"))
	assert.Equal(t, 100, limiter.limitFor("/posts"))
	assert.Equal(t, 100, limiter.limitFor("/unknown"))
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	limiter := NewRateLimiter(newRateLimitRedis(t), 3, time.Minute)
	router := newRateLimitRouter(t, limiter, "user-123")

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/posts"))
	}
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "GET", "/posts"))
}

func TestRateLimiter_RouteOverride(t *testing.T) {
	limiter := NewRateLimiter(newRateLimitRedis(t), 100, time.Minute).
		WithRouteLimit("/posts/:id/like", 1)
	router := newRateLimitRouter(t, limiter, "user-123")

	assert.Equal(t, http.StatusOK, doRequest(router, "POST", "/posts/post-1/like"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(router, "POST", "/posts/post-1/like"))

	// The default budget still applies to other routes.
	assert.Equal(t, http.StatusOK, doRequest(router, "GET", "/posts"))
}

func TestRateLimiter_SeparateBudgetsPerCaller(t *testing.T) {
	client := newRateLimitRedis(t)
	limiter := NewRateLimiter(client, 1, time.Minute)

	routerA := newRateLimitRouter(t, limiter, "user-a")
	routerB := newRateLimitRouter(t, limiter, "user-b")

	assert.Equal(t, http.StatusOK, doRequest(routerA, "GET", "/posts"))
	assert.Equal(t, http.StatusTooManyRequests, doRequest(routerA, "GET", "/posts"))
	assert.Equal(t, http.StatusOK, doRequest(routerB, "GET", "/posts"))
}
