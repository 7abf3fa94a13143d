package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	apperrors "task-board-api.com/task-board-api/internal/errors"
	model "task-board-api.com/task-board-api/internal/models"
	repository "task-board-api.com/task-board-api/internal/repositories"
)

type GroupService struct {
	groups *repository.GroupRepository
	tasks  *repository.TaskRepository
}

func NewGroupService(
	groups *repository.GroupRepository,
	tasks *repository.TaskRepository,
) *GroupService {
	return &GroupService{groups: groups, tasks: tasks}
}

func (s *GroupService) Create(ctx context.Context, userID uint, name string) (*model.TaskGroup, error) {
	group := &model.TaskGroup{Name: name, UserID: userID}
	if err := s.groups.Create(ctx, group); err != nil {
		return nil, err
	}
	return group, nil
}

func (s *GroupService) List(ctx context.Context, userID uint) ([]model.TaskGroup, error) {
	return s.groups.ListByUser(ctx, userID)
}

// Get resolves a group and enforces ownership. Every group mutation goes
// through here first, so a non-owner always sees Forbidden after one read.
func (s *GroupService) Get(ctx context.Context, groupID, userID uint) (*model.TaskGroup, error) {
	group, err := s.groups.FindByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGroupNotFound
		}
		return nil, err
	}

	if group.UserID != userID {
		return nil, apperrors.ErrGroupForbidden
	}

	return group, nil
}

func (s *GroupService) Rename(ctx context.Context, groupID, userID uint, name string) (*model.TaskGroup, error) {
	group, err := s.Get(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	group.Name = name
	if err := s.groups.Save(ctx, group); err != nil {
		return nil, err
	}

	return group, nil
}

func (s *GroupService) Delete(ctx context.Context, groupID, userID uint) error {
	group, err := s.Get(ctx, groupID, userID)
	if err != nil {
		return err
	}
	return s.groups.Delete(ctx, group)
}

// ownedTask loads a task and checks it belongs to the caller. Group
// operations check the task's owner independently of the group's owner:
// both must be the caller.
func (s *GroupService) ownedTask(ctx context.Context, taskID, userID uint) (*model.Task, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if task.UserID != userID {
		return nil, apperrors.ErrGroupForbidden
	}

	return task, nil
}

// AddTask places a task into a group. Re-adding a task to the group it is
// already in is a conflict, not a silent no-op; moving it from a different
// group is allowed.
func (s *GroupService) AddTask(ctx context.Context, groupID, taskID, userID uint) (*model.TaskGroup, error) {
	group, err := s.Get(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	task, err := s.ownedTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if task.GroupID != nil && *task.GroupID == group.ID {
		return nil, apperrors.ErrTaskAlreadyInGroup
	}

	if err := s.tasks.SetGroup(ctx, task.ID, &group.ID); err != nil {
		return nil, err
	}

	return s.groups.FindByID(ctx, group.ID)
}

// RemoveTask detaches a task from the named group. A task that is not
// currently in that exact group is a precondition failure, distinct from a
// missing task.
func (s *GroupService) RemoveTask(ctx context.Context, groupID, taskID, userID uint) (*model.TaskGroup, error) {
	group, err := s.Get(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	task, err := s.ownedTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if task.GroupID == nil || *task.GroupID != group.ID {
		return nil, apperrors.ErrTaskNotInGroup
	}

	if err := s.tasks.SetGroup(ctx, task.ID, nil); err != nil {
		return nil, err
	}

	return s.groups.FindByID(ctx, group.ID)
}

// requireTwoGroups is a global precondition on every between-groups move:
// the caller must own at least two groups in total, independent of which
// two are named.
func (s *GroupService) requireTwoGroups(ctx context.Context, userID uint) error {
	count, err := s.groups.CountByUser(ctx, userID)
	if err != nil {
		return err
	}
	if count < 2 {
		return apperrors.ErrNotEnoughGroups
	}
	return nil
}

// MoveAllTasks reassigns every task of the source group to the destination
// as one atomic batch; no partial move is ever observable.
func (s *GroupService) MoveAllTasks(ctx context.Context, fromGroupID, toGroupID, userID uint) (*model.TaskGroup, *model.TaskGroup, error) {
	if fromGroupID == toGroupID {
		return nil, nil, apperrors.ErrSameGroup
	}

	if err := s.requireTwoGroups(ctx, userID); err != nil {
		return nil, nil, err
	}

	from, err := s.Get(ctx, fromGroupID, userID)
	if err != nil {
		return nil, nil, err
	}
	to, err := s.Get(ctx, toGroupID, userID)
	if err != nil {
		return nil, nil, err
	}

	if len(from.Tasks) == 0 {
		return nil, nil, apperrors.ErrNoTasksToMove
	}

	if err := s.tasks.ReassignGroup(ctx, from.ID, to.ID); err != nil {
		return nil, nil, err
	}

	from, err = s.groups.FindByID(ctx, from.ID)
	if err != nil {
		return nil, nil, err
	}
	to, err = s.groups.FindByID(ctx, to.ID)
	if err != nil {
		return nil, nil, err
	}

	return from, to, nil
}

// MoveSingleTask moves one task between two of the caller's groups. The
// task must currently be in the declared source group.
func (s *GroupService) MoveSingleTask(ctx context.Context, fromGroupID, toGroupID, taskID, userID uint) (*model.TaskGroup, error) {
	if fromGroupID == toGroupID {
		return nil, apperrors.ErrSameGroup
	}

	if err := s.requireTwoGroups(ctx, userID); err != nil {
		return nil, err
	}

	if _, err := s.Get(ctx, fromGroupID, userID); err != nil {
		return nil, err
	}
	to, err := s.Get(ctx, toGroupID, userID)
	if err != nil {
		return nil, err
	}

	task, err := s.ownedTask(ctx, taskID, userID)
	if err != nil {
		return nil, err
	}

	if task.GroupID == nil || *task.GroupID != fromGroupID {
		return nil, apperrors.ErrTaskNotInGroup
	}

	if err := s.tasks.SetGroup(ctx, task.ID, &to.ID); err != nil {
		return nil, err
	}

	return s.groups.FindByID(ctx, to.ID)
}

// RemoveAllTasks detaches every member task at once, leaving them intact
// but ungrouped.
func (s *GroupService) RemoveAllTasks(ctx context.Context, groupID, userID uint) (*model.TaskGroup, error) {
	group, err := s.Get(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}

	if len(group.Tasks) == 0 {
		return nil, apperrors.ErrNoTasksInGroup
	}

	if err := s.tasks.DetachGroup(ctx, group.ID); err != nil {
		return nil, err
	}

	return s.groups.FindByID(ctx, group.ID)
}
