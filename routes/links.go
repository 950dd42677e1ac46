package routes

import (
	"github.com/gofiber/fiber/v2"

	"contahub/database"
	"contahub/middleware"
	"contahub/models"
)

func SetupLinkRoutes(app *fiber.App) {
	links := app.Group("/links", middleware.JWTMiddleware)
	links.Get("/", listLinks)
	links.Post("/", createLink)
	links.Put("/:id", updateLink)
	links.Delete("/:id", deleteLink)
}

type linkPayload struct {
	Category    string `json:"category"`
	Label       string `json:"label"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// GET /links devolve o diretório agrupado por categoria.
func listLinks(c *fiber.Ctx) error {
	var links []models.Link
	database.DB.Where("workspace_id = ?", workspaceID(c)).Order("category, label").Find(&links)

	grouped := make(map[string][]models.Link)
	for _, l := range links {
		grouped[l.Category] = append(grouped[l.Category], l)
	}
	return c.JSON(fiber.Map{"links": grouped})
}

func createLink(c *fiber.Ctx) error {
	var body linkPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Label == "" || body.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Rótulo e URL são obrigatórios"})
	}

	link := models.Link{
		WorkspaceID: workspaceID(c),
		Category:    body.Category,
		Label:       body.Label,
		URL:         body.URL,
		Description: body.Description,
	}
	if link.Category == "" {
		link.Category = "geral"
	}
	if err := database.DB.Create(&link).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar link"})
	}
	return c.Status(fiber.StatusCreated).JSON(link)
}

func updateLink(c *fiber.Ctx) error {
	var link models.Link
	err := database.DB.Where("id = ? AND workspace_id = ?", c.Params("id"), workspaceID(c)).First(&link).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link não encontrado"})
	}

	var body linkPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Category != "" {
		link.Category = body.Category
	}
	if body.Label != "" {
		link.Label = body.Label
	}
	if body.URL != "" {
		link.URL = body.URL
	}
	if body.Description != "" {
		link.Description = body.Description
	}

	if err := database.DB.Save(&link).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar link"})
	}
	return c.JSON(link)
}

func deleteLink(c *fiber.Ctx) error {
	res := database.DB.Where("id = ? AND workspace_id = ?", c.Params("id"), workspaceID(c)).Delete(&models.Link{})
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Link não encontrado"})
	}
	return c.JSON(fiber.Map{"message": "Link removido"})
}
