package routes

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"contahub/database"
	"contahub/middleware"
	"contahub/models"
)

func SetupAuditRoutes(app *fiber.App) {
	audit := app.Group("/audit", middleware.JWTMiddleware, middleware.RequireAdmin)
	audit.Get("/", listAudit)
}

func retentionDays() int {
	if v := os.Getenv("AUDIT_RETENTION_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return 90
}

// GET /audit?action=RULESET_ACTIVATED&entity=ruleset
// Lista os eventos do workspace, mais recentes primeiro. A poda da
// retenção roda de forma oportunista antes da listagem; não há job
// agendado para isso.
func listAudit(c *fiber.Ctx) error {
	cutoff := time.Now().AddDate(0, 0, -retentionDays())
	database.DB.Where("created_at < ?", cutoff).Delete(&models.AuditLog{})

	query := database.DB.Where("workspace_id = ?", workspaceID(c))
	if action := c.Query("action"); action != "" {
		query = query.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		query = query.Where("entity_type = ?", entity)
	}

	var entries []models.AuditLog
	query.Order("created_at DESC").Limit(100).Find(&entries)
	return c.JSON(fiber.Map{"audit": entries, "retention_days": retentionDays()})
}
