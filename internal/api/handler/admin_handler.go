package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/todolist/task-service/internal/core/domain"
	"github.com/todolist/task-service/internal/core/ports"
)

// AdminHandler serves the aggregate views. Except for VerifyCode, every
// route sits behind Auth + RequireRole(admin).
type AdminHandler struct {
	admin ports.AdminService
	auth  ports.AuthService
}

func NewAdminHandler(admin ports.AdminService, auth ports.AuthService) *AdminHandler {
	return &AdminHandler{admin: admin, auth: auth}
}

// VerifyCode handles POST /admin/verify. Public: the signup form calls it to
// decide whether to offer the admin flow before any account exists.
//
// @Summary      Check an admin elevation code
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      verifyCodeRequest  true  "Elevation code"
// @Success      200   {object}  verifyCodeResponse
// @Failure      400   {object}  errorResponse
// @Router       /admin/verify [post]
func (h *AdminHandler) VerifyCode(c echo.Context) error {
	var req verifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return c.JSON(http.StatusOK, verifyCodeResponse{
		Valid: h.auth.VerifyElevationCode(req.Code),
	})
}

// Users handles GET /admin/users.
//
// @Summary      List all users
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   publicUser
// @Failure      403  {object}  errorResponse
// @Router       /admin/users [get]
func (h *AdminHandler) Users(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]publicUser, 0, len(users))
	for _, u := range users {
		out = append(out, toPublicUser(u))
	}
	return c.JSON(http.StatusOK, out)
}

// Tasks handles GET /admin/tasks: every task, server-wide.
//
// @Summary      List all tasks
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Task
// @Failure      403  {object}  errorResponse
// @Router       /admin/tasks [get]
func (h *AdminHandler) Tasks(c echo.Context) error {
	tasks, err := h.admin.ListTasks(c.Request().Context())
	if err != nil {
		return err
	}
	if tasks == nil {
		tasks = []*domain.Task{}
	}
	return c.JSON(http.StatusOK, tasks)
}

// Stats handles GET /admin/stats.
//
// @Summary      Aggregate counts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.Stats
// @Failure      403  {object}  errorResponse
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.admin.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
