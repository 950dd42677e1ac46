package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DocCertidao   = "certidao"
	DocProcuracao = "procuracao"
	DocContrato   = "contrato"
	DocOutro      = "outro"

	SituacaoVigente  = "vigente"
	SituacaoVencendo = "vencendo"
	SituacaoVencido  = "vencido"
)

// Document rastreia validade de certidões e documentos; o arquivo em si
// fica fora do escopo, guardamos apenas metadados e vencimento.
type Document struct {
	gorm.Model
	WorkspaceID uint       `gorm:"index;not null" json:"workspace_id"`
	ClientID    *uint      `gorm:"index" json:"client_id"`
	Title       string     `json:"title"`
	Kind        string     `gorm:"size:20" json:"kind"`
	Number      string     `json:"number"`
	IssuedAt    *time.Time `json:"issued_at"`
	ExpiresAt   *time.Time `gorm:"index" json:"expires_at"`
}

// Situacao deriva o estado do documento a partir do vencimento.
// Sem vencimento cadastrado o documento é considerado vigente;
// "vencendo" cobre os 30 dias anteriores ao vencimento.
func (d Document) Situacao(now time.Time) string {
	if d.ExpiresAt == nil {
		return SituacaoVigente
	}
	switch {
	case d.ExpiresAt.Before(now):
		return SituacaoVencido
	case d.ExpiresAt.Before(now.AddDate(0, 0, 30)):
		return SituacaoVencendo
	default:
		return SituacaoVigente
	}
}
