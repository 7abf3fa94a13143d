package repository

import (
	"context"

	"gorm.io/gorm"

	model "task-board-api.com/task-board-api/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).Preload("Group").First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) ListByUser(ctx context.Context, userID uint) ([]model.Task, error) {
	var tasks []model.Task
	err := r.db.WithContext(ctx).
		Preload("Group").
		Where("user_id = ?", userID).
		Order("id asc").
		Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepository) Save(ctx context.Context, task *model.Task) error {
	return r.db.WithContext(ctx).Save(task).Error
}

// SetGroup writes the group pointer through an explicit column update so a
// nil group id clears the pointer instead of being skipped as a zero value.
func (r *TaskRepository) SetGroup(ctx context.Context, taskID uint, groupID *uint) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", taskID).
		Update("group_id", groupID).Error
}

// DeleteOwned removes the task only when both id and owner match. The
// caller cannot distinguish a missing task from someone else's task, which
// keeps existence of foreign tasks unobservable.
func (r *TaskRepository) DeleteOwned(ctx context.Context, id, userID uint) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Task{})
	return res.RowsAffected, res.Error
}

// ReassignGroup moves every task of the source group to the destination in
// one statement inside a transaction, so no reader observes a partial move.
func (r *TaskRepository) ReassignGroup(ctx context.Context, fromGroupID, toGroupID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Task{}).
			Where("group_id = ?", fromGroupID).
			Update("group_id", toGroupID).Error
	})
}

// DetachGroup clears the group pointer of every member task atomically; the
// tasks themselves survive.
func (r *TaskRepository) DetachGroup(ctx context.Context, groupID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Model(&model.Task{}).
			Where("group_id = ?", groupID).
			Update("group_id", nil).Error
	})
}
