package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RateLimiter applies a fixed-window request budget per caller and route.
// Counters live in redis keyed by window bucket, so the budget holds across
// instances and resets without a sweeper.
type RateLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
	perRoute    map[string]int
}

func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
		perRoute:    make(map[string]int),
	}
}

// WithRouteLimit overrides the budget for one route pattern in gin's
// c.FullPath() form, e.g. "/api/v1/posts/:id/like". Write-heavy routes get
// tighter budgets than reads.
func (rl *RateLimiter) WithRouteLimit(route string, limit int) *RateLimiter {
	rl.perRoute[route] = limit
	return rl
}

func (rl *RateLimiter) limitFor(route string) int {
	if limit, ok := rl.perRoute[route]; ok {
		return limit
	}
	return rl.limit
}

func (rl *RateLimiter) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, exists := c.Get("user_id")
		if !exists {
			caller = c.ClientIP()
		}

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}

		bucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%v:%d", route, caller, bucket)

		ctx := c.Request.Context()
		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Rate limit check failed"})
			c.Abort()
			return
		}

		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window)
		}

		if count > int64(rl.limitFor(route)) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
