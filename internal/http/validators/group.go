package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-board-api.com/task-board-api/internal/data_models"
)

func ValidateCreateGroupRequest(r *dto.CreateGroupRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return nil
}

func ValidateUpdateGroupRequest(r *dto.UpdateGroupRequest) error {
	if r.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	return nil
}

func ValidateMoveTasksRequest(r *dto.MoveTasksRequest) error {
	if r.FromGroupID == 0 || r.ToGroupID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "fromGroupId and toGroupId are required")
	}
	return nil
}

func ValidateMoveSingleTaskRequest(r *dto.MoveSingleTaskRequest) error {
	if r.FromGroupID == 0 || r.ToGroupID == 0 || r.TaskID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "fromGroupId, toGroupId and taskId are required")
	}
	return nil
}
