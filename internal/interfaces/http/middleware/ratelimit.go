package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/domus-inc/domus/internal/infrastructure/ratelimit"
	"github.com/domus-inc/domus/internal/shared/logger"
	"github.com/domus-inc/domus/internal/shared/utils"
)

// LoginRateLimit throttles credential guessing per client IP. Redis failures
// let the request through so an outage does not lock everyone out.
func LoginRateLimit(limiter ratelimit.RateLimiter, perMinute int, log logger.Interface) gin.HandlerFunc {
	cfg := ratelimit.Config{
		RequestsPerMinute: perMinute,
	}

	return func(c *gin.Context) {
		key := "login:" + c.ClientIP()

		allowed, err := limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			log.Warnw("rate limiter unavailable", "key", key, "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
