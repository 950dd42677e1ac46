package models

import "gorm.io/gorm"

const (
	RegimeSimples        = "SIMPLES"
	RegimeLucroPresumido = "LUCRO_PRESUMIDO"
	RegimeLucroReal      = "LUCRO_REAL"

	ClienteAtivo    = "ativo"
	ClienteInativo  = "inativo"
	ClienteSuspenso = "suspenso"
)

// Client é uma empresa atendida pelo escritório (carteira BPO).
type Client struct {
	gorm.Model
	WorkspaceID uint   `gorm:"index;not null" json:"workspace_id"`
	Name        string `json:"name"`
	CNPJ        string `gorm:"size:18" json:"cnpj"`
	Regime      string `gorm:"size:20" json:"regime"`
	Responsible string `json:"responsible"`
	Status      string `gorm:"default:ativo" json:"status"`
}
