package model

// TaskStatus is a reference row keyed by a stable code. A status must be
// active to be assigned; tasks already carrying a deactivated status are
// left untouched.
type TaskStatus struct {
	Code     string `gorm:"primaryKey;size:32" json:"statusCode"`
	Name     string `gorm:"not null" json:"statusName"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`
}

const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)
