package middleware

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joy095/cardoctor/config/redis"
	"github.com/joy095/cardoctor/logger"
	"github.com/ulule/limiter/v3"
	ginmiddleware "github.com/ulule/limiter/v3/drivers/middleware/gin"
	redisstore "github.com/ulule/limiter/v3/drivers/store/redis"
)

// ParseCustomRate accepts formats like "10-2m", "5-1h" or "20-10s".
func ParseCustomRate(rateStr string) (limiter.Rate, error) {
	parts := strings.Split(rateStr, "-")
	if len(parts) != 2 {
		return limiter.Rate{}, fmt.Errorf("invalid rate format: %s", rateStr)
	}

	limit, err := strconv.Atoi(parts[0])
	if err != nil {
		return limiter.Rate{}, fmt.Errorf("invalid limit: %s", parts[0])
	}

	durationStr := parts[1]
	unit := time.Duration(0)
	switch {
	case strings.HasSuffix(durationStr, "s"):
		unit = time.Second
	case strings.HasSuffix(durationStr, "m"):
		unit = time.Minute
	case strings.HasSuffix(durationStr, "h"):
		unit = time.Hour
	default:
		return limiter.Rate{}, fmt.Errorf("unsupported period: %s", durationStr)
	}

	n, err := strconv.Atoi(durationStr[:len(durationStr)-1])
	if err != nil {
		return limiter.Rate{}, fmt.Errorf("invalid duration: %s", durationStr)
	}

	return limiter.Rate{
		Period: time.Duration(n) * unit,
		Limit:  int64(limit),
	}, nil
}

// NewRateLimiter builds a redis-backed per-client rate limiter for a route.
// When redis is unavailable or the rate string is bad it degrades to a
// pass-through handler so the route keeps working.
func NewRateLimiter(rateStr, routeID string) gin.HandlerFunc {
	rate, err := ParseCustomRate(rateStr)
	if err != nil {
		logger.ErrorLogger.Errorf("Error parsing rate for route %s: %v", routeID, err)
		return func(c *gin.Context) { c.Next() }
	}

	rdb, err := redis.GetRedisClient(context.Background())
	if err != nil {
		logger.WarnLogger.Warnf("Rate limiting disabled for route %s: %v", routeID, err)
		return func(c *gin.Context) { c.Next() }
	}

	store, err := redisstore.NewStoreWithOptions(rdb, limiter.StoreOptions{
		Prefix:          fmt.Sprintf("rate_limiter:%s", routeID),
		MaxRetry:        3,
		CleanUpInterval: rate.Period,
	})
	if err != nil {
		logger.ErrorLogger.Errorf("Error creating redis store for route %s: %v", routeID, err)
		return func(c *gin.Context) { c.Next() }
	}

	instance := limiter.New(store, rate)

	// This system has no user ids on the issuing endpoint, so the client IP
	// is the limiter key.
	return ginmiddleware.NewMiddleware(instance, ginmiddleware.WithKeyGetter(func(c *gin.Context) string {
		return c.ClientIP()
	}))
}
