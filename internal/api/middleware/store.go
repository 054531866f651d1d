package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const storePingTimeout = 2 * time.Second

// RequireStore is the shared pre-flight guard for routes that cannot serve
// without the persistence layer: one connectivity check per request instead
// of ad-hoc checks inside every handler. A failed ping answers 503.
func RequireStore(client *mongo.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), storePingTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return echo.NewHTTPError(http.StatusServiceUnavailable, "store unavailable")
			}
			return next(c)
		}
	}
}
