package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"contahub/database"
	"contahub/middleware"
	"contahub/models"
	"contahub/services"
	"contahub/simulators"
)

func SetupRuleSetRoutes(app *fiber.App) {
	rs := app.Group("/rulesets", middleware.JWTMiddleware)
	rs.Get("/", listRuleSets)
	rs.Get("/active/:key", getActiveRuleSet)
	rs.Get("/:id", getRuleSet)
	rs.Post("/", middleware.RequireAdmin, createRuleSet)
	rs.Put("/:id", middleware.RequireAdmin, updateRuleSet)
	rs.Post("/:id/activate", middleware.RequireAdmin, activateRuleSet)
}

type ruleSetPayload struct {
	SimulatorKey string         `json:"simulator_key"`
	Name         string         `json:"name"`
	Payload      map[string]any `json:"payload"`
}

func workspaceID(c *fiber.Ctx) uint {
	return c.Locals("workspace_id").(uint)
}

func actor(c *fiber.Ctx) (uint, string) {
	userID := c.Locals("user_id").(uint)
	email, _ := c.Locals("email").(string)
	return userID, email
}

// GET /rulesets?simulator=HONORARIOS
// Lista as versões do workspace e as globais, mais recentes primeiro.
func listRuleSets(c *fiber.Ctx) error {
	wsID := workspaceID(c)

	query := database.DB.Where("workspace_id = ? OR workspace_id IS NULL", wsID)
	if key := c.Query("simulator"); key != "" {
		if !simulators.ValidKey(key) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Simulador desconhecido"})
		}
		query = query.Where("simulator_key = ?", key)
	}

	var sets []models.RuleSet
	query.Order("simulator_key, version DESC").Find(&sets)
	return c.JSON(fiber.Map{"rulesets": sets})
}

// GET /rulesets/active/:key
// Payload vigente do simulador, com a origem da resolução
// (workspace, global ou padrão embutido).
func getActiveRuleSet(c *fiber.Ctx) error {
	key := c.Params("key")
	if !simulators.ValidKey(key) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Simulador desconhecido"})
	}

	payload, origem, rs := services.ActiveRuleSet(workspaceID(c), key)
	resp := fiber.Map{"simulator_key": key, "origem": origem, "payload": payload}
	if rs != nil {
		resp["ruleset_id"] = rs.ID
		resp["version"] = rs.Version
		resp["name"] = rs.Name
	}
	return c.JSON(resp)
}

func getRuleSet(c *fiber.Ctx) error {
	var rs models.RuleSet
	err := database.DB.
		Where("id = ? AND (workspace_id = ? OR workspace_id IS NULL)", c.Params("id"), workspaceID(c)).
		First(&rs).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "RuleSet não encontrada"})
	}
	return c.JSON(rs)
}

// POST /rulesets
// Cria nova versão: version = max(existentes) + 1, sempre inativa.
// Payload ausente é semeado com o padrão do simulador.
func createRuleSet(c *fiber.Ctx) error {
	var body ruleSetPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if !simulators.ValidKey(body.SimulatorKey) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Simulador desconhecido"})
	}
	if body.Payload == nil {
		body.Payload = simulators.DefaultPayload(body.SimulatorKey)
	}
	if err := simulators.ValidatePayload(body.SimulatorKey, body.Payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload fora do formato esperado", "details": err.Error()})
	}

	wsID := workspaceID(c)
	userID, email := actor(c)

	var maxVersion int
	database.DB.Model(&models.RuleSet{}).
		Where("workspace_id = ? AND simulator_key = ?", wsID, body.SimulatorKey).
		Select("COALESCE(MAX(version), 0)").
		Scan(&maxVersion)

	rs := models.RuleSet{
		WorkspaceID:  &wsID,
		SimulatorKey: body.SimulatorKey,
		Version:      maxVersion + 1,
		Name:         body.Name,
		Payload:      datatypes.JSONMap(body.Payload),
		IsActive:     false,
		CreatedBy:    userID,
	}
	if err := database.DB.Create(&rs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar RuleSet"})
	}

	services.LogAudit(&wsID, userID, email, models.AuditRuleSetCreated, "ruleset", &rs.ID, map[string]any{
		"simulator_key": rs.SimulatorKey,
		"version":       rs.Version,
	})
	return c.Status(fiber.StatusCreated).JSON(rs)
}

// PUT /rulesets/:id
// Sobrescreve nome e payload no lugar, sem subir a versão, inclusive
// para a versão ativa (ajuste rápido de parâmetros). A
// auditoria registra a alteração para não perder rastro.
func updateRuleSet(c *fiber.Ctx) error {
	wsID := workspaceID(c)

	var rs models.RuleSet
	err := database.DB.Where("id = ? AND workspace_id = ?", c.Params("id"), wsID).First(&rs).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "RuleSet não encontrada"})
	}

	var body ruleSetPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Payload != nil {
		if err := simulators.ValidatePayload(rs.SimulatorKey, body.Payload); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload fora do formato esperado", "details": err.Error()})
		}
		rs.Payload = datatypes.JSONMap(body.Payload)
	}
	if body.Name != "" {
		rs.Name = body.Name
	}

	if err := database.DB.Save(&rs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar RuleSet"})
	}

	userID, email := actor(c)
	services.LogAudit(&wsID, userID, email, models.AuditRuleSetUpdated, "ruleset", &rs.ID, map[string]any{
		"simulator_key": rs.SimulatorKey,
		"version":       rs.Version,
		"is_active":     rs.IsActive,
	})
	return c.JSON(rs)
}

// POST /rulesets/:id/activate
// Desativa todas as versões irmãs do par (workspace, simulador) e ativa
// a escolhida, numa única transação: nunca sobra mais de uma ativa e,
// se algo falhar no meio, nada muda.
func activateRuleSet(c *fiber.Ctx) error {
	wsID := workspaceID(c)

	var rs models.RuleSet
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ? AND (workspace_id = ? OR workspace_id IS NULL)", c.Params("id"), wsID).
			First(&rs).Error; err != nil {
			return err
		}

		siblings := tx.Model(&models.RuleSet{}).Where("simulator_key = ?", rs.SimulatorKey)
		if rs.WorkspaceID == nil {
			siblings = siblings.Where("workspace_id IS NULL")
		} else {
			siblings = siblings.Where("workspace_id = ?", *rs.WorkspaceID)
		}
		if err := siblings.Update("is_active", false).Error; err != nil {
			return err
		}

		return tx.Model(&rs).Update("is_active", true).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "RuleSet não encontrada"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao ativar RuleSet"})
	}

	userID, email := actor(c)
	services.LogAudit(rs.WorkspaceID, userID, email, models.AuditRuleSetActivated, "ruleset", &rs.ID, map[string]any{
		"simulator_key": rs.SimulatorKey,
		"version":       rs.Version,
	})
	return c.JSON(fiber.Map{"message": "RuleSet ativada", "ruleset_id": rs.ID, "version": rs.Version})
}
