package config

import (
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	model "task-board-api.com/task-board-api/internal/models"
)

func New(dsn string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	return db
}

// Migrate creates the schema and seeds the reference tables. Seeding is
// idempotent: existing rows keep their active flag, so an operator who
// deactivated a role or status does not see it flip back on restart.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Role{},
		&model.TaskStatus{},
		&model.User{},
		&model.TaskGroup{},
		&model.Task{},
	)
	if err != nil {
		return err
	}

	roles := []model.Role{
		{Code: model.RoleAdmin, Name: "Administrator", IsActive: true},
		{Code: model.RoleUser, Name: "User", IsActive: true},
	}
	for _, role := range roles {
		err := db.Where(model.Role{Code: role.Code}).
			Attrs(model.Role{Name: role.Name, IsActive: role.IsActive}).
			FirstOrCreate(&model.Role{}).Error
		if err != nil {
			return err
		}
	}

	statuses := []model.TaskStatus{
		{Code: model.StatusTodo, Name: "To Do", IsActive: true},
		{Code: model.StatusInProgress, Name: "In Progress", IsActive: true},
		{Code: model.StatusDone, Name: "Done", IsActive: true},
	}
	for _, status := range statuses {
		err := db.Where(model.TaskStatus{Code: status.Code}).
			Attrs(model.TaskStatus{Name: status.Name, IsActive: status.IsActive}).
			FirstOrCreate(&model.TaskStatus{}).Error
		if err != nil {
			return err
		}
	}

	return nil
}
