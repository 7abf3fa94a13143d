package model

// Role is a reference row, not an enum: new roles can be added and existing
// ones deactivated without a schema change. An inactive role cannot be
// assigned at registration and blocks authentication for its users.
type Role struct {
	Code     string `gorm:"primaryKey;size:32" json:"roleCode"`
	Name     string `gorm:"not null" json:"roleName"`
	IsActive bool   `gorm:"not null;default:true" json:"isActive"`
}

const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)
