package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/boardlab/repair-system/internal/api/metrics"
)

// Limiter reports whether a client may make another attempt.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit guards an endpoint with a best-effort attempt limiter keyed by
// client IP. A limiter failure fails open: auth availability is worth more
// than the stub limit it enforces.
func RateLimit(limiter Limiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ok, err := limiter.Allow(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Str("ip", c.RealIP()).Msg("rate limiter unavailable")
				return next(c)
			}
			if !ok {
				metrics.LoginRateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "Too many login attempts. Please try again later.")
			}
			return next(c)
		}
	}
}
