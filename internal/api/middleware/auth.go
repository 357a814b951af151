package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/boardlab/repair-system/internal/api/metrics"
	"github.com/boardlab/repair-system/internal/core/domain"
	"github.com/boardlab/repair-system/internal/core/ports"
)

// Context keys under which Auth stores the verified token claims.
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
	CtxRole     = "role"
)

// Auth extracts the bearer token, verifies it and injects the decoded claims
// into the echo context. Only the "Bearer <token>" form is accepted; any
// other scheme is treated as an absent token. The user's continued existence
// in the store is not re-checked per request: claims are trusted for the
// token's lifetime.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in. Please log in to get access.")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.TokenVerificationsTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "Your token has expired. Please log in again.")
				}
				metrics.TokenVerificationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token. Please log in again.")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxUsername, claims.Username)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
