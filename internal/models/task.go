package model

import "time"

// Task belongs to exactly one user for its whole lifetime. The group
// pointer is informational placement, not ownership: it is nullable and
// must, when set, reference a group owned by the same user.
type Task struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	StatusCode  string     `gorm:"size:32;not null" json:"statusCode"`
	Status      TaskStatus `gorm:"foreignKey:StatusCode;references:Code" json:"-"`
	UserID      uint       `gorm:"not null;index" json:"userId"`
	GroupID     *uint      `gorm:"index" json:"groupId"`
	Group       *TaskGroup `gorm:"foreignKey:GroupID" json:"-"`
	CreatedAt   time.Time  `json:"createdAt"`
}
