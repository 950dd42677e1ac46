package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RuleSet é uma configuração versionada de parâmetros de um simulador.
// WorkspaceID nulo indica a versão global, válida para todos os workspaces
// que não possuem versão própria ativa. No máximo uma linha ativa por par
// (workspace_id, simulator_key).
type RuleSet struct {
	gorm.Model
	WorkspaceID  *uint             `gorm:"index:idx_ruleset_scope" json:"workspace_id"`
	SimulatorKey string            `gorm:"index:idx_ruleset_scope;size:30;not null" json:"simulator_key"`
	Version      int               `gorm:"not null" json:"version"`
	Name         string            `json:"name"`
	Payload      datatypes.JSONMap `json:"payload"`
	IsActive     bool              `gorm:"default:false" json:"is_active"`
	CreatedBy    uint              `json:"created_by"`
}
