package middleware

import (
	"github.com/labstack/echo/v4"

	apperrors "task-board-api.com/task-board-api/internal/errors"
)

// RequireRole gates a route group on the caller's live role code, as
// resolved by Authenticate. It runs before any resource is loaded, so a
// caller with the wrong role never reaches a service.
func RequireRole(allowed ...string) echo.MiddlewareFunc {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, code := range allowed {
		allowedSet[code] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return apperrors.ErrUnauthorized
			}
			if _, ok := allowedSet[user.RoleCode]; !ok {
				return apperrors.ErrAccessDenied
			}
			return next(c)
		}
	}
}
