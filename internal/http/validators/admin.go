package validators

import (
	"net/http"

	"github.com/labstack/echo/v4"

	dto "task-board-api.com/task-board-api/internal/data_models"
)

func ValidateUpdateUserStatusRequest(r *dto.UpdateUserStatusRequest) error {
	if r.IsActive == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "isActive must be boolean")
	}
	return nil
}
