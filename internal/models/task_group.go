package model

// TaskGroup has exactly one owner. Only the owner may read, rename or
// delete it, or move tasks into and out of it. Deleting a group detaches
// its tasks instead of deleting them.
type TaskGroup struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"not null" json:"name"`
	UserID uint   `gorm:"not null;index" json:"userId"`
	Tasks  []Task `gorm:"foreignKey:GroupID" json:"tasks,omitempty"`
}
