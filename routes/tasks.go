package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"contahub/database"
	"contahub/middleware"
	"contahub/models"
)

func SetupTaskRoutes(app *fiber.App) {
	tasks := app.Group("/tasks", middleware.JWTMiddleware)
	tasks.Get("/", listTasks)
	tasks.Post("/", createTask)
	tasks.Put("/:id", updateTask)
	tasks.Delete("/:id", deleteTask)
}

type taskPayload struct {
	ClientID   uint   `json:"client_id"`
	Title      string `json:"title"`
	Competence string `json:"competence"`
	DueDate    string `json:"due_date"` // YYYY-MM-DD
	Status     string `json:"status"`
	AssigneeID *uint  `json:"assignee_id"`
}

// GET /tasks?competencia=2026-08&status=pendente
// Tarefas vencidas e não concluídas aparecem marcadas como atrasadas.
func listTasks(c *fiber.Ctx) error {
	query := database.DB.Where("workspace_id = ?", workspaceID(c))
	if comp := c.Query("competencia"); comp != "" {
		query = query.Where("competence = ?", comp)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if clientID := c.Query("client_id"); clientID != "" {
		query = query.Where("client_id = ?", clientID)
	}

	var tasks []models.Task
	query.Order("due_date").Find(&tasks)

	now := time.Now()
	for i := range tasks {
		if tasks[i].Overdue(now) {
			tasks[i].Status = models.TarefaAtrasada
		}
	}
	return c.JSON(fiber.Map{"tasks": tasks})
}

func createTask(c *fiber.Ctx) error {
	var body taskPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Title == "" || body.Competence == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Título e competência são obrigatórios"})
	}

	task := models.Task{
		WorkspaceID: workspaceID(c),
		ClientID:    body.ClientID,
		Title:       body.Title,
		Competence:  body.Competence,
		Status:      models.TarefaPendente,
		AssigneeID:  body.AssigneeID,
	}
	if body.DueDate != "" {
		due, err := time.Parse("2006-01-02", body.DueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data de vencimento inválida (use YYYY-MM-DD)"})
		}
		task.DueDate = &due
	}

	if err := database.DB.Create(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar tarefa"})
	}
	return c.Status(fiber.StatusCreated).JSON(task)
}

func updateTask(c *fiber.Ctx) error {
	var task models.Task
	err := database.DB.Where("id = ? AND workspace_id = ?", c.Params("id"), workspaceID(c)).First(&task).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tarefa não encontrada"})
	}

	var body taskPayload
	if err := c.BodyParser(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
	}
	if body.Title != "" {
		task.Title = body.Title
	}
	if body.Competence != "" {
		task.Competence = body.Competence
	}
	if body.Status != "" {
		task.Status = body.Status
	}
	if body.AssigneeID != nil {
		task.AssigneeID = body.AssigneeID
	}
	if body.DueDate != "" {
		due, err := time.Parse("2006-01-02", body.DueDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Data de vencimento inválida (use YYYY-MM-DD)"})
		}
		task.DueDate = &due
	}

	if err := database.DB.Save(&task).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Erro ao salvar tarefa"})
	}
	return c.JSON(task)
}

func deleteTask(c *fiber.Ctx) error {
	res := database.DB.Where("id = ? AND workspace_id = ?", c.Params("id"), workspaceID(c)).Delete(&models.Task{})
	if res.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tarefa não encontrada"})
	}
	return c.JSON(fiber.Map{"message": "Tarefa removida"})
}
