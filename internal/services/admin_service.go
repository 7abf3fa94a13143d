package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "task-board-api.com/task-board-api/internal/errors"
	model "task-board-api.com/task-board-api/internal/models"
	repository "task-board-api.com/task-board-api/internal/repositories"
)

type AdminService struct {
	users  *repository.UserRepository
	groups *repository.GroupRepository
	tasks  *repository.TaskRepository
}

// UserOverview is the admin's read-only view of one account: the user's
// groups with their tasks, plus tasks not placed in any group.
type UserOverview struct {
	User           *model.User
	Groups         []model.TaskGroup
	UngroupedTasks []model.Task
}

func NewAdminService(
	users *repository.UserRepository,
	groups *repository.GroupRepository,
	tasks *repository.TaskRepository,
) *AdminService {
	return &AdminService{users: users, groups: groups, tasks: tasks}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]model.User, error) {
	return s.users.List(ctx)
}

func (s *AdminService) GetUserOverview(ctx context.Context, userID uint) (*UserOverview, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	groups, err := s.groups.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	ungrouped := make([]model.Task, 0)
	for _, task := range tasks {
		if task.GroupID == nil {
			ungrouped = append(ungrouped, task)
		}
	}

	return &UserOverview{User: user, Groups: groups, UngroupedTasks: ungrouped}, nil
}

// UpdateUserStatus flips the target's active flag. The change bites on the
// target's next authenticated request; already-issued tokens stay
// cryptographically valid but fail the live-status check. Admins cannot
// target themselves.
func (s *AdminService) UpdateUserStatus(ctx context.Context, adminID, targetID uint, isActive bool) (*model.User, error) {
	if adminID == targetID {
		return nil, apperrors.ErrSelfStatusChange
	}

	user, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}

	user.IsActive = isActive
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
