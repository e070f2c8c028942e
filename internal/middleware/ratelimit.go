package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// RateLimit limits requests per client IP using a Redis counter. INCR and
// EXPIRE run in one pipeline so the window is refreshed with the count.
func RateLimit(redisClient *redis.Client, maxRequests int, window time.Duration) gin.HandlerFunc {
	if redisClient == nil {
		panic("RateLimit requires a redis client")
	}

	return func(c *gin.Context) {
		key := "ratelimit:" + c.ClientIP()

		pipe := redisClient.Pipeline()
		incrCmd := pipe.Incr(c.Request.Context(), key)
		pipe.Expire(c.Request.Context(), key, window)
		if _, err := pipe.Exec(c.Request.Context()); err != nil {
			logrus.WithError(err).Error("rate limit: redis pipeline failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "rate limiting error"})
			c.Abort()
			return
		}

		if incrCmd.Val() > int64(maxRequests) {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
