package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todolist/task-service/internal/core/domain"
)

// RequireRole enforces role-based access control. It runs after Auth, so the
// caller already has a valid identity; a mismatch is a 403, not a 401.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[string(r)] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}
