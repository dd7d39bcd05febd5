package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	ratelimit "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"

	"jobportal-backend/internal/service"
)

func keyFunc(c *gin.Context) string {
	principal, err := GetPrincipal(c)
	if err != nil {
		return "ip: " + c.ClientIP()
	}
	return fmt.Sprintf("principal: %d", principal.ID)
}

func errorHandler(c *gin.Context, info ratelimit.Info) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests,
		service.FailField("general", "Too many requests. Please try again later."))
}

// RateLimiterMiddleware limits each caller to reqPerSec requests per second,
// keyed by authenticated principal when present and client IP otherwise.
func RateLimiterMiddleware(reqPerSec uint) gin.HandlerFunc {

	store := ratelimit.InMemoryStore(&ratelimit.InMemoryOptions{
		Rate:  time.Second,
		Limit: reqPerSec,
	})

	return ratelimit.RateLimiter(store, &ratelimit.Options{
		KeyFunc:      keyFunc,
		ErrorHandler: errorHandler,
	})
}

// EnvRateLimitMiddleware reads RATE_LIMIT_REQUESTS_PER_SECOND and falls back
// to 5 requests per second when unset or invalid.
func EnvRateLimitMiddleware() gin.HandlerFunc {

	rateLimitString := os.Getenv("RATE_LIMIT_REQUESTS_PER_SECOND")
	rateLimitInt, err := strconv.Atoi(rateLimitString)

	if err != nil || rateLimitInt <= 0 {
		rateLimitInt = 5
	}

	return RateLimiterMiddleware(uint(rateLimitInt))
}
