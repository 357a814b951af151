package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole enforces a per-route role allow-list. It must run after Auth,
// which is what puts the role into the context.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(CtxRole).(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "You do not have permission to perform this action.")
			}
			return next(c)
		}
	}
}
