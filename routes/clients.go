package routes

import (
	"github.com/gofiber/fiber/v2"

	"contahub/database"
	"contahub/middleware"
	"contahub/models"
)

func SetupClientRoutes(app *fiber.App) {
	clients := app.Group("/clients", middleware.JWTMiddleware)
	clients.Get("/", listClients)
	clients.Post("/", createClient)
	clients.Put("/:id", updateClient)
	clients.Delete("/:id", deleteClient)
}

type clientPayload struct {
	Name        string `json:"name"`
	CNPJ        string `json:"cnpj"`
	Regime      string `json:"regime"`
	Responsible string `json:"responsible"`
	Status      string `json:"status"`
}

func listClients(c *fiber.Ctx) error {
	var clients []models.Client
	query := database.DB.Where("workspace_id = ?", workspaceID(c))
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("name").Find(&clients)
	return c.JSON(fiber.Map{"clients": clients})
}

func createClient(c *fiber.Ctx) error {
	var body clientPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nome é obrigatório"})
	}

	client := models.Client{
		WorkspaceID: workspaceID(c),
		Name:        body.Name,
		CNPJ:        body.CNPJ,
		Regime:      body.Regime,
		Responsible: body.Responsible,
		Status:      models.ClienteAtivo,
	}
	if err := database.DB.Create(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar cliente"})
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

func updateClient(c *fiber.Ctx) error {
	var client models.Client
	err := database.DB.Where("id = ? AND workspace_id = ?", c.Params("id"), workspaceID(c)).First(&client).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cliente não encontrado"})
	}

	var body clientPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Name != "" {
		client.Name = body.Name
	}
	if body.CNPJ != "" {
		client.CNPJ = body.CNPJ
	}
	if body.Regime != "" {
		client.Regime = body.Regime
	}
	if body.Responsible != "" {
		client.Responsible = body.Responsible
	}
	if body.Status != "" {
		client.Status = body.Status
	}

	if err := database.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar cliente"})
	}
	return c.JSON(client)
}

func deleteClient(c *fiber.Ctx) error {
	res := database.DB.Where("id = ? AND workspace_id = ?", c.Params("id"), workspaceID(c)).Delete(&models.Client{})
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Cliente não encontrado"})
	}
	return c.JSON(fiber.Map{"message": "Cliente removido"})
}
