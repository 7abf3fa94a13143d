package services

import (
	"context"
	"testing"

	apperrors "task-board-api.com/task-board-api/internal/errors"
)

func TestGroupService_GetEnforcesOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.register(t, "owner@example.com")
	other := env.register(t, "other@example.com")
	group := env.createGroup(t, owner.ID, "Home")

	if _, err := env.groups.Get(ctx, group.ID, other.ID); err != apperrors.ErrGroupForbidden {
		t.Errorf("expected ErrGroupForbidden, got %v", err)
	}
	if _, err := env.groups.Get(ctx, 9999, owner.ID); err != apperrors.ErrGroupNotFound {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
}

func TestGroupService_AddTaskCrossOwner(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice@example.com")
	bob := env.register(t, "bob@example.com")

	aliceGroup := env.createGroup(t, alice.ID, "Alice group")
	bobTask := env.createTask(t, bob.ID, "bob task", nil)

	// Caller owns the group but not the task.
	if _, err := env.groups.AddTask(ctx, aliceGroup.ID, bobTask.ID, alice.ID); err != apperrors.ErrGroupForbidden {
		t.Errorf("expected ErrGroupForbidden for foreign task, got %v", err)
	}

	// Caller owns the task but not the group.
	if _, err := env.groups.AddTask(ctx, aliceGroup.ID, bobTask.ID, bob.ID); err != apperrors.ErrGroupForbidden {
		t.Errorf("expected ErrGroupForbidden for foreign group, got %v", err)
	}
}

func TestGroupService_AddTaskTwiceConflicts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "a@example.com")
	group := env.createGroup(t, user.ID, "Home")
	task := env.createTask(t, user.ID, "buy milk", nil)

	updated, err := env.groups.AddTask(ctx, group.ID, task.ID, user.ID)
	if err != nil {
		t.Fatalf("failed to add task to group: %v", err)
	}
	if len(updated.Tasks) != 1 {
		t.Errorf("expected 1 task in group, got %d", len(updated.Tasks))
	}

	if _, err := env.groups.AddTask(ctx, group.ID, task.ID, user.ID); err != apperrors.ErrTaskAlreadyInGroup {
		t.Errorf("expected ErrTaskAlreadyInGroup, got %v", err)
	}
}

func TestGroupService_RemoveTaskRequiresMembership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "a@example.com")
	group := env.createGroup(t, user.ID, "Home")
	elsewhere := env.createGroup(t, user.ID, "Work")
	task := env.createTask(t, user.ID, "loose", &elsewhere.ID)

	// In a different group than named: a precondition failure, not 404.
	if _, err := env.groups.RemoveTask(ctx, group.ID, task.ID, user.ID); err != apperrors.ErrTaskNotInGroup {
		t.Errorf("expected ErrTaskNotInGroup, got %v", err)
	}
}

func TestGroupService_MoveRequiresTwoGroups(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "a@example.com")
	only := env.createGroup(t, user.ID, "Only")

	// Fails on the group-count precondition regardless of id validity.
	if _, _, err := env.groups.MoveAllTasks(ctx, only.ID, 9999, user.ID); err != apperrors.ErrNotEnoughGroups {
		t.Errorf("expected ErrNotEnoughGroups, got %v", err)
	}
	if _, err := env.groups.MoveSingleTask(ctx, only.ID, 9999, 1, user.ID); err != apperrors.ErrNotEnoughGroups {
		t.Errorf("expected ErrNotEnoughGroups, got %v", err)
	}
}

func TestGroupService_MoveSameGroup(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "a@example.com")
	group := env.createGroup(t, user.ID, "Home")

	if _, _, err := env.groups.MoveAllTasks(context.Background(), group.ID, group.ID, user.ID); err != apperrors.ErrSameGroup {
		t.Errorf("expected ErrSameGroup, got %v", err)
	}
}

func TestGroupService_MoveAllEmptySource(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "a@example.com")
	from := env.createGroup(t, user.ID, "Empty")
	to := env.createGroup(t, user.ID, "Target")

	if _, _, err := env.groups.MoveAllTasks(ctx, from.ID, to.ID, user.ID); err != apperrors.ErrNoTasksToMove {
		t.Errorf("expected ErrNoTasksToMove, got %v", err)
	}
}

func TestGroupService_MoveAllMovesEveryTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "a@example.com")
	from := env.createGroup(t, user.ID, "Source")
	to := env.createGroup(t, user.ID, "Target")

	env.createTask(t, user.ID, "one", &from.ID)
	env.createTask(t, user.ID, "two", &from.ID)
	env.createTask(t, user.ID, "three", &from.ID)
	env.createTask(t, user.ID, "already there", &to.ID)

	movedFrom, movedTo, err := env.groups.MoveAllTasks(ctx, from.ID, to.ID, user.ID)
	if err != nil {
		t.Fatalf("failed to move tasks: %v", err)
	}

	if len(movedFrom.Tasks) != 0 {
		t.Errorf("expected source group to be empty, got %d tasks", len(movedFrom.Tasks))
	}
	if len(movedTo.Tasks) != 4 {
		t.Errorf("expected destination group to hold 4 tasks, got %d", len(movedTo.Tasks))
	}
}

func TestGroupService_MoveAllForeignGroups(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alice := env.register(t, "alice@example.com")
	bob := env.register(t, "bob@example.com")

	aliceFrom := env.createGroup(t, alice.ID, "Alice source")
	env.createGroup(t, alice.ID, "Alice target")
	bobGroup := env.createGroup(t, bob.ID, "Bob group")
	env.createTask(t, alice.ID, "task", &aliceFrom.ID)

	if _, _, err := env.groups.MoveAllTasks(ctx, aliceFrom.ID, bobGroup.ID, alice.ID); err != apperrors.ErrGroupForbidden {
		t.Errorf("expected ErrGroupForbidden for foreign destination, got %v", err)
	}
}

func TestGroupService_MoveSingleTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "a@example.com")
	from := env.createGroup(t, user.ID, "Source")
	to := env.createGroup(t, user.ID, "Target")
	task := env.createTask(t, user.ID, "movable", &from.ID)
	stray := env.createTask(t, user.ID, "stray", nil)

	// The task must be in the declared source group.
	if _, err := env.groups.MoveSingleTask(ctx, from.ID, to.ID, stray.ID, user.ID); err != apperrors.ErrTaskNotInGroup {
		t.Errorf("expected ErrTaskNotInGroup, got %v", err)
	}

	moved, err := env.groups.MoveSingleTask(ctx, from.ID, to.ID, task.ID, user.ID)
	if err != nil {
		t.Fatalf("failed to move task: %v", err)
	}
	if len(moved.Tasks) != 1 || moved.Tasks[0].ID != task.ID {
		t.Error("expected destination group to hold the moved task")
	}
}

func TestGroupService_RemoveAllTasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "a@example.com")
	group := env.createGroup(t, user.ID, "Home")

	if _, err := env.groups.RemoveAllTasks(ctx, group.ID, user.ID); err != apperrors.ErrNoTasksInGroup {
		t.Errorf("expected ErrNoTasksInGroup for empty group, got %v", err)
	}

	task := env.createTask(t, user.ID, "member", &group.ID)

	cleared, err := env.groups.RemoveAllTasks(ctx, group.ID, user.ID)
	if err != nil {
		t.Fatalf("failed to clear group: %v", err)
	}
	if len(cleared.Tasks) != 0 {
		t.Errorf("expected group to be empty, got %d tasks", len(cleared.Tasks))
	}

	// The task survives, ungrouped.
	detached, err := env.tasks.Get(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("failed to reload task: %v", err)
	}
	if detached.GroupID != nil {
		t.Error("expected task group pointer to be cleared")
	}
}

func TestGroupService_DeleteDetachesTasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.register(t, "a@example.com")
	group := env.createGroup(t, user.ID, "Doomed")
	task := env.createTask(t, user.ID, "survivor", &group.ID)

	if err := env.groups.Delete(ctx, group.ID, user.ID); err != nil {
		t.Fatalf("failed to delete group: %v", err)
	}

	if _, err := env.groups.Get(ctx, group.ID, user.ID); err != apperrors.ErrGroupNotFound {
		t.Errorf("expected deleted group to be gone, got %v", err)
	}

	survivor, err := env.tasks.Get(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("expected task to survive group deletion, got %v", err)
	}
	if survivor.GroupID != nil {
		t.Error("expected surviving task to be ungrouped")
	}
}
