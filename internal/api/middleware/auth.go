package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/todolist/task-service/internal/api/metrics"
	"github.com/todolist/task-service/internal/core/ports"
)

// Auth validates the bearer token and injects the resolved identity into
// context. All verification failures produce the same 401 so callers learn
// nothing about which check rejected them.
func Auth(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.AuthRejectionsTotal.WithLabelValues("missing_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.AuthRejectionsTotal.WithLabelValues("bad_header").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			identity := claims.Identity()
			c.Set("user_id", identity.ID)
			c.Set("email", identity.Email)
			c.Set("role", string(identity.Role))

			return next(c)
		}
	}
}
