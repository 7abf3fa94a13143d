package services

import (
	"context"
	"testing"

	apperrors "task-board-api.com/task-board-api/internal/errors"
	model "task-board-api.com/task-board-api/internal/models"
)

func TestTaskService_CreateDefaultsAndNormalizesStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.register(t, "a@example.com")

	task, err := env.tasks.Create(ctx, user.ID, "defaulted", "", "", nil)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if task.StatusCode != model.StatusTodo {
		t.Errorf("expected default status %s, got %s", model.StatusTodo, task.StatusCode)
	}

	task, err = env.tasks.Create(ctx, user.ID, "lowercase", "", "in_progress", nil)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	if task.StatusCode != model.StatusInProgress {
		t.Errorf("expected status %s, got %s", model.StatusInProgress, task.StatusCode)
	}
}

func TestTaskService_CreateRejectsUnknownOrInactiveStatus(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.register(t, "a@example.com")

	if _, err := env.tasks.Create(ctx, user.ID, "bad", "", "BOGUS", nil); err != apperrors.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus for unknown code, got %v", err)
	}

	env.db.Model(&model.TaskStatus{}).Where("code = ?", model.StatusDone).Update("is_active", false)

	if _, err := env.tasks.Create(ctx, user.ID, "bad", "", "DONE", nil); err != apperrors.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus for inactive code, got %v", err)
	}
}

// Deactivating a status only blocks new assignments; tasks that already
// carry the code are not retroactively invalidated.
func TestTaskService_DeactivatedStatusKeepsExistingTasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.register(t, "a@example.com")

	task, err := env.tasks.Create(ctx, user.ID, "finished", "", "DONE", nil)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	env.db.Model(&model.TaskStatus{}).Where("code = ?", model.StatusDone).Update("is_active", false)

	loaded, err := env.tasks.Get(ctx, task.ID, user.ID)
	if err != nil {
		t.Fatalf("expected historical task to stay readable, got %v", err)
	}
	if loaded.StatusCode != model.StatusDone {
		t.Errorf("expected status %s to survive deactivation, got %s", model.StatusDone, loaded.StatusCode)
	}

	listed, err := env.tasks.List(ctx, user.ID)
	if err != nil {
		t.Fatalf("failed to list tasks: %v", err)
	}
	if len(listed) != 1 {
		t.Errorf("expected the task to stay listed, got %d tasks", len(listed))
	}

	// A partial update that leaves the status alone still goes through.
	title := "renamed"
	updated, err := env.tasks.Update(ctx, task.ID, user.ID, &title, nil, nil)
	if err != nil {
		t.Fatalf("expected status-preserving update to succeed, got %v", err)
	}
	if updated.Title != "renamed" || updated.StatusCode != model.StatusDone {
		t.Errorf("expected title renamed with status %s, got %s/%s",
			model.StatusDone, updated.Title, updated.StatusCode)
	}

	// Re-assigning the deactivated code is what gets rejected.
	stale := "done"
	if _, err := env.tasks.Update(ctx, task.ID, user.ID, nil, nil, &stale); err != apperrors.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus when re-assigning a deactivated code, got %v", err)
	}
}

func TestTaskService_CreateMissingGroup(t *testing.T) {
	env := newTestEnv(t)
	user := env.register(t, "a@example.com")

	missing := uint(9999)
	if _, err := env.tasks.Create(context.Background(), user.ID, "orphan", "", "", &missing); err != apperrors.ErrGroupNotFound {
		t.Errorf("expected ErrGroupNotFound, got %v", err)
	}
}

// Known gap, kept deliberately: creation only checks that the group
// exists, not that the caller owns it. Every group mutation after creation
// does enforce ownership.
func TestTaskService_CreateDoesNotCheckGroupOwnership(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.register(t, "owner@example.com")
	intruder := env.register(t, "intruder@example.com")
	group := env.createGroup(t, owner.ID, "Private")

	task, err := env.tasks.Create(ctx, intruder.ID, "squatter", "", "", &group.ID)
	if err != nil {
		t.Fatalf("expected creation into a foreign group to succeed, got %v", err)
	}
	if task.GroupID == nil || *task.GroupID != group.ID {
		t.Error("expected task to be placed in the foreign group")
	}
}

func TestTaskService_UpdatePartialMerge(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.register(t, "a@example.com")

	task, err := env.tasks.Create(ctx, user.ID, "original title", "original description", "", nil)
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	newStatus := "done"
	updated, err := env.tasks.Update(ctx, task.ID, user.ID, nil, nil, &newStatus)
	if err != nil {
		t.Fatalf("failed to update task: %v", err)
	}

	if updated.StatusCode != model.StatusDone {
		t.Errorf("expected status %s, got %s", model.StatusDone, updated.StatusCode)
	}
	if updated.Title != "original title" || updated.Description != "original description" {
		t.Error("expected untouched fields to survive a partial update")
	}
}

func TestTaskService_UpdateForeignTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.register(t, "owner@example.com")
	other := env.register(t, "other@example.com")
	task := env.createTask(t, owner.ID, "mine", nil)

	title := "stolen"
	if _, err := env.tasks.Update(ctx, task.ID, other.ID, &title, nil, nil); err != apperrors.ErrTaskForbidden {
		t.Errorf("expected ErrTaskForbidden, got %v", err)
	}
}

func TestTaskService_DeleteConflatesNotFoundAndNotYours(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	owner := env.register(t, "owner@example.com")
	other := env.register(t, "other@example.com")
	task := env.createTask(t, owner.ID, "mine", nil)

	// Valid id, wrong caller: not-found, never forbidden, so existence of
	// foreign tasks is not observable through delete.
	if err := env.tasks.Delete(ctx, task.ID, other.ID); err != apperrors.ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound for foreign task, got %v", err)
	}

	if err := env.tasks.Delete(ctx, 9999, owner.ID); err != apperrors.ErrTaskNotFound {
		t.Errorf("expected ErrTaskNotFound for missing task, got %v", err)
	}

	if err := env.tasks.Delete(ctx, task.ID, owner.ID); err != nil {
		t.Errorf("expected owner delete to succeed, got %v", err)
	}
}
