package model

import "time"

// User owns its tasks and task groups exclusively. The password hash is
// never serialized. Deactivation is reversible and only ever performed by
// an admin; users are not hard-deleted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	RoleCode     string    `gorm:"size:32;not null" json:"roleCode"`
	Role         Role      `gorm:"foreignKey:RoleCode;references:Code" json:"-"`
	IsActive     bool      `gorm:"not null;default:true" json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}
