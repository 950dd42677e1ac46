package routes

import (
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"contahub/database"
	"contahub/middleware"
	"contahub/models"
	"contahub/services"
)

func SetupBillingRoutes(app *fiber.App) {
	billing := app.Group("/billing")
	billing.Get("/subscription", middleware.JWTMiddleware, getSubscription)
	// Webhook chamado pelo gateway: sem JWT, autenticado por segredo
	// compartilhado no cabeçalho X-Webhook-Token.
	billing.Post("/webhook", paymentWebhook)
}

func getSubscription(c *fiber.Ctx) error {
	wsID := workspaceID(c)

	var sub models.Subscription
	err := database.DB.Where("workspace_id = ?", wsID).First(&sub).Error
	if err != nil {
		// Workspace sem assinatura registrada: plano gratuito implícito.
		var ws models.Workspace
		database.DB.First(&ws, wsID)
		return c.JSON(fiber.Map{
			"plan":   ws.Plan,
			"status": models.AssinaturaAtiva,
		})
	}
	return c.JSON(sub)
}

type webhookPayload struct {
	ID          string         `json:"id"`
	Type        string         `json:"type"`
	WorkspaceID uint           `json:"workspace_id"`
	Plan        string         `json:"plan"`
	PeriodEnd   string         `json:"period_end"` // YYYY-MM-DD
	Data        map[string]any `json:"data"`
}

// POST /billing/webhook
// Ingestão de eventos do gateway de pagamento. Idempotente pelo ID do
// evento: reentrega é respondida com 200 sem reprocessar.
func paymentWebhook(c *fiber.Ctx) error {
	if secret := os.Getenv("BILLING_WEBHOOK_TOKEN"); secret != "" && c.Get("X-Webhook-Token") != secret {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Token do webhook inválido"})
	}

	var body webhookPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.ID == "" || body.Type == "" || body.WorkspaceID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "id, type e workspace_id são obrigatórios"})
	}

	var existing models.PaymentEvent
	database.DB.Where("gateway_id = ?", body.ID).First(&existing)
	if existing.ID != 0 {
		return c.JSON(fiber.Map{"message": "Evento já processado"})
	}

	now := time.Now()
	event := models.PaymentEvent{
		WorkspaceID: body.WorkspaceID,
		GatewayID:   body.ID,
		EventType:   body.Type,
		Payload:     datatypes.JSONMap(body.Data),
		ProcessedAt: &now,
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&event).Error; err != nil {
			return err
		}

		var sub models.Subscription
		tx.Where("workspace_id = ?", body.WorkspaceID).First(&sub)
		sub.WorkspaceID = body.WorkspaceID
		if body.Plan != "" {
			sub.Plan = body.Plan
		}

		wsStatus := ""
		switch body.Type {
		case models.EventoPagamentoAprovado:
			sub.Status = models.AssinaturaAtiva
			wsStatus = models.WorkspaceAtivo
			if body.PeriodEnd != "" {
				if end, err := time.Parse("2006-01-02", body.PeriodEnd); err == nil {
					sub.CurrentPeriodEnd = &end
				}
			}
		case models.EventoPagamentoRecusado:
			sub.Status = models.AssinaturaInadimplente
			wsStatus = models.WorkspaceInadimplente
		case models.EventoAssinaturaCancelada:
			sub.Status = models.AssinaturaCancelada
			wsStatus = models.WorkspaceCancelado
		default:
			// Evento desconhecido: guarda para auditoria, não mexe na assinatura.
			return nil
		}

		if err := tx.Save(&sub).Error; err != nil {
			return err
		}
		updates := map[string]any{"status": wsStatus}
		if body.Plan != "" {
			updates["plan"] = body.Plan
		}
		return tx.Model(&models.Workspace{}).Where("id = ?", body.WorkspaceID).Updates(updates).Error
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao processar evento"})
	}

	services.LogAudit(&body.WorkspaceID, 0, "gateway", models.AuditPaymentEvent, "payment_event", &event.ID, map[string]any{
		"gateway_id": body.ID,
		"type":       body.Type,
	})
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Evento processado"})
}
