package services

import (
	"log"

	"gorm.io/datatypes"

	"contahub/database"
	"contahub/models"
)

// LogAudit grava uma linha de auditoria em modo best-effort: falha de
// escrita nunca bloqueia a operação principal, só gera um log.
func LogAudit(workspaceID *uint, actorID uint, actorEmail, action, entityType string, entityID *uint, metadata map[string]any) {
	entry := models.AuditLog{
		WorkspaceID: workspaceID,
		ActorUserID: actorID,
		ActorEmail:  actorEmail,
		Action:      action,
		EntityType:  entityType,
		EntityID:    entityID,
		Metadata:    datatypes.JSONMap(metadata),
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		log.Println("auditoria não gravada:", err)
	}
}
