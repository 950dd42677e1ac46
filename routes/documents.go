package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"contahub/database"
	"contahub/middleware"
	"contahub/models"
)

func SetupDocumentRoutes(app *fiber.App) {
	docs := app.Group("/documents", middleware.JWTMiddleware)
	docs.Get("/", listDocuments)
	docs.Get("/vencimentos", listExpiringDocuments)
	docs.Post("/", createDocument)
	docs.Put("/:id", updateDocument)
	docs.Delete("/:id", deleteDocument)
}

type documentPayload struct {
	ClientID  *uint  `json:"client_id"`
	Title     string `json:"title"`
	Kind      string `json:"kind"`
	Number    string `json:"number"`
	IssuedAt  string `json:"issued_at"`  // YYYY-MM-DD
	ExpiresAt string `json:"expires_at"` // YYYY-MM-DD
}

type documentView struct {
	models.Document
	Situacao string `json:"situacao"`
}

func withSituacao(docs []models.Document) []documentView {
	now := time.Now()
	out := make([]documentView, 0, len(docs))
	for _, d := range docs {
		out = append(out, documentView{Document: d, Situacao: d.Situacao(now)})
	}
	return out
}

func listDocuments(c *fiber.Ctx) error {
	query := database.DB.Where("workspace_id = ?", workspaceID(c))
	if kind := c.Query("kind"); kind != "" {
		query = query.Where("kind = ?", kind)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var docs []models.Document
	query.Order("expires_at").Find(&docs)
	return c.JSON(fiber.Map{"documents": withSituacao(docs)})
}

// GET /documents/vencimentos?dias=30
// Documentos que vencem dentro da janela, incluindo os já vencidos.
func listExpiringDocuments(c *fiber.Ctx) error {
	dias := 30
	if v := c.Query("dias"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Parâmetro dias inválido"})
		}
		dias = n
	}

	limite := time.Now().AddDate(0, 0, dias)
	var docs []models.Document
	database.DB.
		Where("workspace_id = ? AND expires_at IS NOT NULL AND expires_at <= ?", workspaceID(c), limite).
		Order("expires_at").
		Find(&docs)
	return c.JSON(fiber.Map{"documents": withSituacao(docs), "janela_dias": dias})
}

func createDocument(c *fiber.Ctx) error {
	var body documentPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Title == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Título é obrigatório"})
	}

	doc := models.Document{
		WorkspaceID: workspaceID(c),
		ClientID:    body.ClientID,
		Title:       body.Title,
		Kind:        body.Kind,
		Number:      body.Number,
	}
	if doc.Kind == "" {
		doc.Kind = models.DocOutro
	}

	var err error
	if doc.IssuedAt, err = parseOptionalDate(body.IssuedAt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data de emissão inválida (use YYYY-MM-DD)"})
	}
	if doc.ExpiresAt, err = parseOptionalDate(body.ExpiresAt); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data de vencimento inválida (use YYYY-MM-DD)"})
	}

	if err := database.DB.Create(&doc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar documento"})
	}
	return c.Status(fiber.StatusCreated).JSON(documentView{Document: doc, Situacao: doc.Situacao(time.Now())})
}

func updateDocument(c *fiber.Ctx) error {
	var doc models.Document
	err := database.DB.Where("id = ? AND workspace_id = ?", c.Params("id"), workspaceID(c)).First(&doc).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Documento não encontrado"})
	}

	var body documentPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Title != "" {
		doc.Title = body.Title
	}
	if body.Kind != "" {
		doc.Kind = body.Kind
	}
	if body.Number != "" {
		doc.Number = body.Number
	}
	if body.ClientID != nil {
		doc.ClientID = body.ClientID
	}
	if body.IssuedAt != "" {
		if doc.IssuedAt, err = parseOptionalDate(body.IssuedAt); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data de emissão inválida (use YYYY-MM-DD)"})
		}
	}
	if body.ExpiresAt != "" {
		if doc.ExpiresAt, err = parseOptionalDate(body.ExpiresAt); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data de vencimento inválida (use YYYY-MM-DD)"})
		}
	}

	if err := database.DB.Save(&doc).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar documento"})
	}
	return c.JSON(documentView{Document: doc, Situacao: doc.Situacao(time.Now())})
}

func deleteDocument(c *fiber.Ctx) error {
	res := database.DB.Where("id = ? AND workspace_id = ?", c.Params("id"), workspaceID(c)).Delete(&models.Document{})
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Documento não encontrado"})
	}
	return c.JSON(fiber.Map{"message": "Documento removido"})
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
