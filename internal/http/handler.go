package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"task-board-api.com/task-board-api/internal/services"
)

type Handler struct {
	authService  *services.AuthService
	taskService  *services.TaskService
	groupService *services.GroupService
	adminService *services.AdminService
}

func NewHandler(
	authService *services.AuthService,
	taskService *services.TaskService,
	groupService *services.GroupService,
	adminService *services.AdminService,
) *Handler {
	return &Handler{
		authService:  authService,
		taskService:  taskService,
		groupService: groupService,
		adminService: adminService,
	}
}

// respond wraps every successful payload in the common envelope. Failures
// never pass through here; they are shaped by the error handler.
func respond(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, echo.Map{
		"success": true,
		"data":    data,
	})
}

func parseID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid %s", name))
	}
	return uint(id), nil
}
