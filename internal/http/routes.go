package http

import (
	"github.com/labstack/echo/v4"

	middleware "task-board-api.com/task-board-api/internal/http/middlewares"
	model "task-board-api.com/task-board-api/internal/models"
)

// Register wires all routes. Everything except register/login sits behind
// the authentication gate; the admin surface additionally requires the
// ADMIN role before any handler runs.
func Register(e *echo.Echo, h *Handler, authenticate echo.MiddlewareFunc) {
	auth := e.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)

	tasks := e.Group("/tasks", authenticate)
	tasks.POST("", h.CreateTask)
	tasks.GET("", h.ListTasks)
	tasks.GET("/:id", h.GetTask)
	tasks.PUT("/:id", h.UpdateTask)
	tasks.DELETE("/:id", h.DeleteTask)

	groups := e.Group("/groups", authenticate)
	groups.POST("", h.CreateGroup)
	groups.GET("", h.ListGroups)
	groups.GET("/:id", h.GetGroup)
	groups.PUT("/:id", h.UpdateGroup)
	groups.DELETE("/:id", h.DeleteGroup)
	groups.POST("/:id/tasks/:taskId", h.AddTaskToGroup)
	groups.DELETE("/:id/tasks/:taskId", h.RemoveTaskFromGroup)
	groups.DELETE("/:id/tasks", h.RemoveAllTasksFromGroup)
	groups.POST("/move-tasks", h.MoveTasksBetweenGroups)
	groups.POST("/move-task", h.MoveSingleTaskBetweenGroups)

	admin := e.Group("/admin", authenticate, middleware.RequireRole(model.RoleAdmin))
	admin.GET("/users", h.ListUsers)
	admin.GET("/users/:id", h.GetUserOverview)
	admin.PATCH("/users/:id/status", h.UpdateUserStatus)
}
