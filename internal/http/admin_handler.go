package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-board-api.com/task-board-api/internal/data_models"
	middleware "task-board-api.com/task-board-api/internal/http/middlewares"
	"task-board-api.com/task-board-api/internal/http/validators"
)

func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.adminService.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	responses := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, dto.NewUserResponse(&users[i]))
	}

	return respond(c, http.StatusOK, responses)
}

func (h *Handler) GetUserOverview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	overview, err := h.adminService.GetUserOverview(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, dto.UserOverviewResponse{
		User:           dto.NewUserResponse(overview.User),
		Groups:         dto.NewGroupResponses(overview.Groups),
		UngroupedTasks: dto.NewTaskResponses(overview.UngroupedTasks),
	})
}

func (h *Handler) UpdateUserStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateUserStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid JSON payload")
	}
	if err := validators.ValidateUpdateUserStatusRequest(&req); err != nil {
		return err
	}

	admin := middleware.CurrentUser(c)
	user, err := h.adminService.UpdateUserStatus(c.Request().Context(), admin.ID, id, *req.IsActive)
	if err != nil {
		return err
	}

	message := "User deactivated successfully"
	if user.IsActive {
		message = "User activated successfully"
	}

	return respond(c, http.StatusOK, echo.Map{"message": message})
}
