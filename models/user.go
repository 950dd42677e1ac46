package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Name               string `json:"name"`
	Email              string `gorm:"uniqueIndex" json:"email"`
	Password           string `json:"-"`
	IsActive           bool   `gorm:"default:true" json:"is_active"`
	DefaultWorkspaceID uint   `json:"default_workspace_id"`

	Memberships []Membership `json:"memberships,omitempty"`
}
