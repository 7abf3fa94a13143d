package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-board-api.com/task-board-api/internal/data_models"
	middleware "task-board-api.com/task-board-api/internal/http/middlewares"
	"task-board-api.com/task-board-api/internal/http/validators"
)

func (h *Handler) CreateTask(c echo.Context) error {
	var req dto.CreateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateTaskRequest(&req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	task, err := h.taskService.Create(
		c.Request().Context(),
		user.ID,
		req.Title, req.Description, req.StatusCode,
		req.GroupID,
	)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, dto.NewTaskResponse(task))
}

func (h *Handler) ListTasks(c echo.Context) error {
	user := middleware.CurrentUser(c)

	tasks, err := h.taskService.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewTaskResponses(tasks))
}

func (h *Handler) GetTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	task, err := h.taskService.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) UpdateTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateTaskRequest(&req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	task, err := h.taskService.Update(
		c.Request().Context(),
		id, user.ID,
		req.Title, req.Description, req.StatusCode,
	)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewTaskResponse(task))
}

func (h *Handler) DeleteTask(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	if err := h.taskService.Delete(c.Request().Context(), id, user.ID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
