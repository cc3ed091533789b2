package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// CounterStore is a shared fixed-window counter. Backing it with an external
// store keeps the limit correct across multiple instances.
type CounterStore interface {
	// Incr bumps the counter for key, starting a window of the given length
	// on first increment, and returns the new count.
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

type redisCounter struct {
	rdb *redis.Client
}

func NewRedisCounter(rdb *redis.Client) CounterStore {
	return &redisCounter{rdb: rdb}
}

func (s *redisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	count, err := s.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := s.rdb.Expire(ctx, key, window).Err(); err != nil {
			return count, err
		}
	}
	return count, nil
}

// RateLimit applies a fixed request-count window per client address.
func RateLimit(store CounterStore, maxRequests int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := "ratelimit:" + c.RealIP()

			count, err := store.Incr(c.Request().Context(), key, window)
			if err != nil {
				// Counter store trouble should not take the API down.
				slog.Warn("rate limit counter unavailable", slog.String("error", err.Error()))
				return next(c)
			}

			if count > int64(maxRequests) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many requests")
			}

			return next(c)
		}
	}
}
