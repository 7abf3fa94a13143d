package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	apperrors "task-board-api.com/task-board-api/internal/errors"
	model "task-board-api.com/task-board-api/internal/models"
	repository "task-board-api.com/task-board-api/internal/repositories"
	"task-board-api.com/task-board-api/internal/token"
)

const userContextKey = "authenticated_user"

// Authenticate resolves a bearer token into a verified, active identity.
// The token only names the user; role and active flags are re-read from the
// live records on every request, so deactivating an account or a role cuts
// off access immediately even while old tokens are still unexpired.
func Authenticate(tokens *token.Service, users *repository.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, raw, found := strings.Cut(header, " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				return apperrors.ErrUnauthorized
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				return apperrors.ErrInvalidToken
			}

			user, err := users.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrUnauthorized
				}
				return err
			}

			if !user.IsActive {
				return apperrors.ErrUserDeactivated
			}
			if !user.Role.IsActive {
				return apperrors.ErrRoleDeactivated
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// CurrentUser returns the identity attached by Authenticate. Handlers
// behind the middleware may rely on it being present.
func CurrentUser(c echo.Context) *model.User {
	user, _ := c.Get(userContextKey).(*model.User)
	return user
}
