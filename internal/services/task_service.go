package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "task-board-api.com/task-board-api/internal/errors"
	model "task-board-api.com/task-board-api/internal/models"
	repository "task-board-api.com/task-board-api/internal/repositories"
)

type TaskService struct {
	tasks  *repository.TaskRepository
	groups *repository.GroupRepository
	refs   *repository.ReferenceRepository
}

func NewTaskService(
	tasks *repository.TaskRepository,
	groups *repository.GroupRepository,
	refs *repository.ReferenceRepository,
) *TaskService {
	return &TaskService{tasks: tasks, groups: groups, refs: refs}
}

func (s *TaskService) resolveStatus(ctx context.Context, code string) (string, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	status, err := s.refs.FindStatus(ctx, normalized)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidStatus
		}
		return "", err
	}
	if !status.IsActive {
		return "", apperrors.ErrInvalidStatus
	}

	return status.Code, nil
}

// Create stores a new task for the caller. The status code must reference
// an active status row. A supplied group id only has to resolve: placement
// at creation does not require owning the group, every group mutation
// afterwards does.
func (s *TaskService) Create(
	ctx context.Context,
	userID uint,
	title, description, statusCode string,
	groupID *uint,
) (*model.Task, error) {
	if statusCode == "" {
		statusCode = model.StatusTodo
	}

	resolved, err := s.resolveStatus(ctx, statusCode)
	if err != nil {
		return nil, err
	}

	if groupID != nil {
		if _, err := s.groups.FindByID(ctx, *groupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrGroupNotFound
			}
			return nil, err
		}
	}

	task := &model.Task{
		Title:       title,
		Description: description,
		StatusCode:  resolved,
		UserID:      userID,
		GroupID:     groupID,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	return s.tasks.FindByID(ctx, task.ID)
}

func (s *TaskService) List(ctx context.Context, userID uint) ([]model.Task, error) {
	return s.tasks.ListByUser(ctx, userID)
}

func (s *TaskService) Get(ctx context.Context, taskID, userID uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if task.UserID != userID {
		return nil, apperrors.ErrTaskForbidden
	}

	return task, nil
}

// Update merges only the supplied fields into the task. A new status code
// is validated against the active reference rows before it is applied.
func (s *TaskService) Update(
	ctx context.Context,
	taskID, userID uint,
	title, description, statusCode *string,
) (*model.Task, error) {
	task, err := s.Get(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		task.Title = *title
	}
	if description != nil {
		task.Description = *description
	}
	if statusCode != nil {
		resolved, err := s.resolveStatus(ctx, *statusCode)
		if err != nil {
			return nil, err
		}
		task.StatusCode = resolved
	}

	if err := s.tasks.Save(ctx, task); err != nil {
		return nil, err
	}

	return s.tasks.FindByID(ctx, task.ID)
}

// Delete removes the task scoped to the caller's ownership. Zero affected
// rows reports not-found whether the id is missing or owned by someone
// else.
func (s *TaskService) Delete(ctx context.Context, taskID, userID uint) error {
	affected, err := s.tasks.DeleteOwned(ctx, taskID, userID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
