package repository

import (
	"context"

	"gorm.io/gorm"

	model "task-board-api.com/task-board-api/internal/models"
)

type GroupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) *GroupRepository {
	return &GroupRepository{db: db}
}

func (r *GroupRepository) Create(ctx context.Context, group *model.TaskGroup) error {
	return r.db.WithContext(ctx).Create(group).Error
}

func (r *GroupRepository) FindByID(ctx context.Context, id uint) (*model.TaskGroup, error) {
	var group model.TaskGroup
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id asc")
		}).
		First(&group, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepository) ListByUser(ctx context.Context, userID uint) ([]model.TaskGroup, error) {
	var groups []model.TaskGroup
	err := r.db.WithContext(ctx).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB {
			return db.Order("tasks.id asc")
		}).
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&groups).Error
	return groups, err
}

func (r *GroupRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.TaskGroup{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (r *GroupRepository) Save(ctx context.Context, group *model.TaskGroup) error {
	return r.db.WithContext(ctx).Save(group).Error
}

// Delete detaches member tasks and removes the group in one transaction.
// Tasks survive group deletion with a cleared group pointer.
func (r *GroupRepository) Delete(ctx context.Context, group *model.TaskGroup) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&model.Task{}).
			Where("group_id = ?", group.ID).
			Update("group_id", nil).Error
		if err != nil {
			return err
		}
		return tx.Delete(group).Error
	})
}
