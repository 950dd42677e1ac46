package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	PlanoGratuito     = "gratuito"
	PlanoProfissional = "profissional"
	PlanoEscritorio   = "escritorio"

	WorkspaceAtivo        = "ativo"
	WorkspaceInadimplente = "inadimplente"
	WorkspaceCancelado    = "cancelado"

	RoleAdmin       = "admin"
	RoleColaborador = "colaborador"
	RoleLeitor      = "leitor"
)

// Workspace representa um escritório contábil cliente (multi-tenant).
type Workspace struct {
	gorm.Model
	Name         string            `json:"name"`
	Slug         string            `gorm:"uniqueIndex" json:"slug"`
	Plan         string            `json:"plan"`
	Status       string            `json:"status"`
	FeatureFlags datatypes.JSONMap `json:"feature_flags"`
}

type Membership struct {
	gorm.Model
	WorkspaceID uint   `json:"workspace_id"`
	UserID      uint   `json:"user_id"`
	Role        string `json:"role"`
	Status      string `json:"status"`

	Workspace Workspace `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	User      User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
