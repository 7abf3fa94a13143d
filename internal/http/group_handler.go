package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-board-api.com/task-board-api/internal/data_models"
	middleware "task-board-api.com/task-board-api/internal/http/middlewares"
	"task-board-api.com/task-board-api/internal/http/validators"
)

func (h *Handler) CreateGroup(c echo.Context) error {
	var req dto.CreateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateCreateGroupRequest(&req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	group, err := h.groupService.Create(c.Request().Context(), user.ID, req.Name)
	if err != nil {
		return err
	}

	return respond(c, http.StatusCreated, dto.NewGroupResponse(group))
}

func (h *Handler) ListGroups(c echo.Context) error {
	user := middleware.CurrentUser(c)

	groups, err := h.groupService.List(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewGroupResponses(groups))
}

func (h *Handler) GetGroup(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	group, err := h.groupService.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewGroupResponse(group))
}

func (h *Handler) UpdateGroup(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateGroupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateGroupRequest(&req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	group, err := h.groupService.Rename(c.Request().Context(), id, user.ID, req.Name)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewGroupResponse(group))
}

func (h *Handler) DeleteGroup(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	if err := h.groupService.Delete(c.Request().Context(), id, user.ID); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *Handler) AddTaskToGroup(c echo.Context) error {
	groupID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	taskID, err := parseID(c, "taskId")
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	group, err := h.groupService.AddTask(c.Request().Context(), groupID, taskID, user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewGroupResponse(group))
}

func (h *Handler) RemoveTaskFromGroup(c echo.Context) error {
	groupID, err := parseID(c, "id")
	if err != nil {
		return err
	}
	taskID, err := parseID(c, "taskId")
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	group, err := h.groupService.RemoveTask(c.Request().Context(), groupID, taskID, user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewGroupResponse(group))
}

func (h *Handler) RemoveAllTasksFromGroup(c echo.Context) error {
	groupID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	group, err := h.groupService.RemoveAllTasks(c.Request().Context(), groupID, user.ID)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewGroupResponse(group))
}

func (h *Handler) MoveTasksBetweenGroups(c echo.Context) error {
	var req dto.MoveTasksRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateMoveTasksRequest(&req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	from, to, err := h.groupService.MoveAllTasks(
		c.Request().Context(),
		req.FromGroupID, req.ToGroupID, user.ID,
	)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.MoveTasksResponse{
		FromGroup: dto.NewGroupResponse(from),
		ToGroup:   dto.NewGroupResponse(to),
	})
}

func (h *Handler) MoveSingleTaskBetweenGroups(c echo.Context) error {
	var req dto.MoveSingleTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateMoveSingleTaskRequest(&req); err != nil {
		return err
	}

	user := middleware.CurrentUser(c)
	group, err := h.groupService.MoveSingleTask(
		c.Request().Context(),
		req.FromGroupID, req.ToGroupID, req.TaskID, user.ID,
	)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.NewGroupResponse(group))
}
