package routes

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"contahub/database"
	"contahub/middleware"
	"contahub/models"
	"contahub/services"
	"contahub/utils"
)

func SetupAdminRoutes(app *fiber.App) {
	admin := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireAdmin)
	admin.Get("/users", listUsers)
	admin.Post("/users", inviteUser)
	admin.Put("/users/:id/role", changeUserRole)
	admin.Delete("/users/:id", deactivateUser)
}

type inviteUserPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type memberView struct {
	UserID uint   `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

func listUsers(c *fiber.Ctx) error {
	var memberships []models.Membership
	database.DB.Preload("User").Where("workspace_id = ?", workspaceID(c)).Find(&memberships)

	members := make([]memberView, 0, len(memberships))
	for _, m := range memberships {
		members = append(members, memberView{
			UserID: m.UserID,
			Name:   m.User.Name,
			Email:  m.User.Email,
			Role:   m.Role,
			Status: m.Status,
		})
	}
	return c.JSON(fiber.Map{"users": members})
}

// POST /admin/users
// Convida um usuário para o workspace. Se o e-mail ainda não existe,
// cria a conta com senha temporária (devolvida uma única vez na
// resposta; o envio por e-mail fica fora do escopo da API).
func inviteUser(c *fiber.Ctx) error {
	var body inviteUserPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "E-mail é obrigatório"})
	}
	role := body.Role
	if role == "" {
		role = models.RoleColaborador
	}
	if role != models.RoleAdmin && role != models.RoleColaborador && role != models.RoleLeitor {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Papel inválido"})
	}

	wsID := workspaceID(c)
	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User
	database.DB.Where("email = ?", email).First(&user)

	tempPassword := ""
	if user.ID == 0 {
		tempPassword = uuid.NewString()[:10]
		hash, err := utils.HashPassword(tempPassword)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Não foi possível processar a senha"})
		}
		user = models.User{
			Name:               body.Name,
			Email:              email,
			Password:           hash,
			IsActive:           true,
			DefaultWorkspaceID: wsID,
		}
		if err := database.DB.Create(&user).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar usuário"})
		}
	}

	var existing models.Membership
	database.DB.Where("workspace_id = ? AND user_id = ?", wsID, user.ID).First(&existing)
	if existing.ID != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Usuário já participa do workspace"})
	}

	membership := models.Membership{
		WorkspaceID: wsID,
		UserID:      user.ID,
		Role:        role,
		Status:      "ativo",
	}
	if err := database.DB.Create(&membership).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar vínculo"})
	}

	actorID, actorEmail := actor(c)
	services.LogAudit(&wsID, actorID, actorEmail, models.AuditUserInvited, "user", &user.ID, map[string]any{
		"email": email,
		"role":  role,
	})

	resp := fiber.Map{"user_id": user.ID, "role": role}
	if tempPassword != "" {
		resp["temp_password"] = tempPassword
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func changeUserRole(c *fiber.Ctx) error {
	var body inviteUserPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Role != models.RoleAdmin && body.Role != models.RoleColaborador && body.Role != models.RoleLeitor {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Papel inválido"})
	}

	wsID := workspaceID(c)
	var membership models.Membership
	err := database.DB.Where("workspace_id = ? AND user_id = ?", wsID, c.Params("id")).First(&membership).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado no workspace"})
	}

	membership.Role = body.Role
	if err := database.DB.Save(&membership).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar papel"})
	}

	actorID, actorEmail := actor(c)
	services.LogAudit(&wsID, actorID, actorEmail, models.AuditUserRoleChanged, "user", &membership.UserID, map[string]any{
		"role": body.Role,
	})
	return c.JSON(fiber.Map{"message": "Papel atualizado", "role": body.Role})
}

// DELETE /admin/users/:id
// Desativa o vínculo; a conta só é desativada se não participar de
// nenhum outro workspace.
func deactivateUser(c *fiber.Ctx) error {
	wsID := workspaceID(c)
	actorID, actorEmail := actor(c)

	var membership models.Membership
	err := database.DB.Where("workspace_id = ? AND user_id = ?", wsID, c.Params("id")).First(&membership).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado no workspace"})
	}
	if membership.UserID == actorID {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Não é possível desativar a si mesmo"})
	}

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		membership.Status = "inativo"
		if err := tx.Save(&membership).Error; err != nil {
			return err
		}

		var others int64
		tx.Model(&models.Membership{}).
			Where("user_id = ? AND status = ? AND id <> ?", membership.UserID, "ativo", membership.ID).
			Count(&others)
		if others == 0 {
			return tx.Model(&models.User{}).Where("id = ?", membership.UserID).Update("is_active", false).Error
		}
		return nil
	})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao desativar usuário"})
	}

	services.LogAudit(&wsID, actorID, actorEmail, models.AuditUserDeactivated, "user", &membership.UserID, nil)
	return c.JSON(fiber.Map{"message": "Usuário desativado"})
}
