package repository

import (
	"context"

	"gorm.io/gorm"

	model "task-board-api.com/task-board-api/internal/models"
)

// ReferenceRepository reads the small reference tables (roles, task
// statuses). Lookups are always by code; callers decide what an inactive
// row means for their operation.
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepository(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

func (r *ReferenceRepository) FindRole(ctx context.Context, code string) (*model.Role, error) {
	var role model.Role
	err := r.db.WithContext(ctx).First(&role, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *ReferenceRepository) FindStatus(ctx context.Context, code string) (*model.TaskStatus, error) {
	var status model.TaskStatus
	err := r.db.WithContext(ctx).First(&status, "code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}
