package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	AssinaturaAtiva        = "ativa"
	AssinaturaInadimplente = "inadimplente"
	AssinaturaCancelada    = "cancelada"

	EventoPagamentoAprovado   = "pagamento.aprovado"
	EventoPagamentoRecusado   = "pagamento.recusado"
	EventoAssinaturaCancelada = "assinatura.cancelada"
)

// Subscription espelha o estado da assinatura no gateway de pagamento.
type Subscription struct {
	gorm.Model
	WorkspaceID       uint       `gorm:"uniqueIndex" json:"workspace_id"`
	Plan              string     `json:"plan"`
	Status            string     `json:"status"`
	GatewayCustomerID string     `gorm:"index" json:"gateway_customer_id"`
	CurrentPeriodEnd  *time.Time `json:"current_period_end"`
}

// PaymentEvent guarda cada webhook recebido do gateway. GatewayID único
// garante idempotência no reprocessamento.
type PaymentEvent struct {
	gorm.Model
	WorkspaceID uint              `gorm:"index" json:"workspace_id"`
	GatewayID   string            `gorm:"uniqueIndex" json:"gateway_id"`
	EventType   string            `gorm:"size:50" json:"event_type"`
	Payload     datatypes.JSONMap `json:"payload"`
	ProcessedAt *time.Time        `json:"processed_at"`
}
