package models

import "gorm.io/gorm"

// Link é um atalho do diretório interno (portais de prefeitura, e-CAC...).
type Link struct {
	gorm.Model
	WorkspaceID uint   `gorm:"index;not null" json:"workspace_id"`
	Category    string `gorm:"size:50;index" json:"category"`
	Label       string `json:"label"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
