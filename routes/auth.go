package routes

import (
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"contahub/database"
	"contahub/middleware"
	"contahub/models"
	"contahub/utils"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")
	auth.Post("/register", register)
	auth.Post("/login", login)
	auth.Get("/me", middleware.JWTMiddleware, me)
}

type registerPayload struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	WorkspaceName string `json:"workspace_name"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func register(c *fiber.Ctx) error {
	var body registerPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Email == "" || body.Password == "" || body.WorkspaceName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "E-mail, senha e nome do escritório são obrigatórios"})
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var existing models.User
	database.DB.Where("email = ?", email).First(&existing)
	if existing.ID != 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "E-mail já cadastrado"})
	}

	hash, err := utils.HashPassword(body.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Não foi possível processar a senha"})
	}

	var user models.User
	var workspace models.Workspace
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		workspace = models.Workspace{
			Name:   body.WorkspaceName,
			Slug:   utils.GenerateSlug(body.WorkspaceName),
			Plan:   models.PlanoGratuito,
			Status: models.WorkspaceAtivo,
		}
		if err := tx.Create(&workspace).Error; err != nil {
			return err
		}

		user = models.User{
			Name:     body.Name,
			Email:    email,
			Password: hash,
			IsActive: true,
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		user.DefaultWorkspaceID = workspace.ID
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		membership := models.Membership{
			WorkspaceID: workspace.ID,
			UserID:      user.ID,
			Role:        models.RoleAdmin,
			Status:      "ativo",
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		// A checagem prévia corre com o índice único; se outro cadastro
		// ganhou a corrida, a violação aparece aqui.
		var dup models.User
		database.DB.Where("email = ?", email).First(&dup)
		if dup.ID != 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "E-mail já cadastrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao criar conta"})
	}

	t, err := signToken(user, workspace.ID, models.RoleAdmin)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Não foi possível gerar o token"})
	}
	return c.JSON(fiber.Map{"token": t, "workspace_id": workspace.ID})
}

func login(c *fiber.Ctx) error {
	var body loginPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User
	database.DB.Where("email = ?", email).First(&user)
	if user.ID == 0 || !user.IsActive || !utils.CheckPassword(user.Password, body.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "E-mail ou senha inválidos"})
	}

	var membership models.Membership
	database.DB.Where("user_id = ? AND workspace_id = ? AND status = ?", user.ID, user.DefaultWorkspaceID, "ativo").First(&membership)
	if membership.ID == 0 {
		database.DB.Where("user_id = ? AND status = ?", user.ID, "ativo").First(&membership)
	}
	if membership.ID == 0 {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Usuário sem workspace ativo"})
	}

	t, err := signToken(user, membership.WorkspaceID, membership.Role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Não foi possível gerar o token"})
	}
	return c.JSON(fiber.Map{"token": t, "workspace_id": membership.WorkspaceID})
}

func me(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	var user models.User
	if err := database.DB.Preload("Memberships").First(&user, userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Usuário não encontrado"})
	}
	return c.JSON(user)
}

func signToken(user models.User, workspaceID uint, role string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":      user.ID,
		"workspace_id": workspaceID,
		"role":         role,
		"email":        user.Email,
		"exp":          time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
