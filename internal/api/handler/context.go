package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todolist/task-service/internal/core/domain"
)

// ctxIdentity rebuilds the principal the Auth middleware attached to the
// request. A missing or unparseable role means the middleware did not run
// (or the context was tampered with); fail closed with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	rawRole, _ := c.Get("role").(string)
	role, err := domain.ParseRole(rawRole)
	if err != nil {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	id, _ := c.Get("user_id").(string)
	if id == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get("email").(string)
	return domain.Identity{ID: id, Email: email, Role: role}, nil
}
