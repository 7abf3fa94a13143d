package services

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	config "task-board-api.com/task-board-api/internal/configs"
	model "task-board-api.com/task-board-api/internal/models"
	repository "task-board-api.com/task-board-api/internal/repositories"
	"task-board-api.com/task-board-api/internal/token"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	if err := config.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	db     *gorm.DB
	auth   *AuthService
	tasks  *TaskService
	groups *GroupService
	admin  *AdminService
}

func newTestEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	refRepo := repository.NewReferenceRepository(db)
	tokens := token.NewService("test-secret", time.Hour)

	return &testEnv{
		db:     db,
		auth:   NewAuthService(userRepo, refRepo, tokens, bcrypt.MinCost),
		tasks:  NewTaskService(taskRepo, groupRepo, refRepo),
		groups: NewGroupService(groupRepo, taskRepo),
		admin:  NewAdminService(userRepo, groupRepo, taskRepo),
	}
}

func (e *testEnv) register(t *testing.T, email string) *model.User {
	t.Helper()
	user, err := e.auth.Register(context.Background(), email, "secret1", "user")
	if err != nil {
		t.Fatalf("failed to register %s: %v", email, err)
	}
	return user
}

func (e *testEnv) createGroup(t *testing.T, userID uint, name string) *model.TaskGroup {
	t.Helper()
	group, err := e.groups.Create(context.Background(), userID, name)
	if err != nil {
		t.Fatalf("failed to create group %s: %v", name, err)
	}
	return group
}

func (e *testEnv) createTask(t *testing.T, userID uint, title string, groupID *uint) *model.Task {
	t.Helper()
	task, err := e.tasks.Create(context.Background(), userID, title, "", "", groupID)
	if err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return task
}
