package http

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	apperrors "task-board-api.com/task-board-api/internal/errors"
)

// NewErrorHandler translates errors into the wire envelope exactly once,
// at the outermost boundary. Domain exceptions keep their status and
// message; anything unclassified becomes a 500 with no internal detail.
func NewErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := apperrors.StatusCode(err)
		message := "Internal server error"

		var appErr *apperrors.Exception
		var httpErr *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			message = appErr.Message
		case errors.As(err, &httpErr):
			status = httpErr.Code
			if msg, ok := httpErr.Message.(string); ok {
				message = msg
			}
		default:
			logger.Error().Err(err).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		_ = c.JSON(status, echo.Map{
			"success": false,
			"message": message,
		})
	}
}
