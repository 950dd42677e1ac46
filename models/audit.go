package models

import (
	"time"

	"gorm.io/datatypes"
)

// Ações registradas no log de auditoria.
const (
	AuditRuleSetCreated   = "RULESET_CREATED"
	AuditRuleSetUpdated   = "RULESET_UPDATED"
	AuditRuleSetActivated = "RULESET_ACTIVATED"
	AuditSimulationRun    = "SIMULATION_RUN"
	AuditUserInvited      = "USER_INVITED"
	AuditUserRoleChanged  = "USER_ROLE_CHANGED"
	AuditUserDeactivated  = "USER_DEACTIVATED"
	AuditPaymentEvent     = "PAYMENT_EVENT"
)

// AuditLog é append-only; linhas além da retenção são podadas.
type AuditLog struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	WorkspaceID *uint             `gorm:"index" json:"workspace_id"`
	ActorUserID uint              `json:"actor_user_id"`
	ActorEmail  string            `json:"actor_email"`
	Action      string            `gorm:"size:50;not null;index" json:"action"`
	EntityType  string            `gorm:"size:50" json:"entity_type"`
	EntityID    *uint             `json:"entity_id"`
	Metadata    datatypes.JSONMap `json:"metadata"`
	CreatedAt   time.Time         `gorm:"index" json:"created_at"`
}
