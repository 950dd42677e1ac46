package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"contahub/database"
	"contahub/routes"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("sem .env, usando variáveis de ambiente")
	}

	database.ConnectDB()

	app := fiber.New()

	// CORS
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": "contahub-api"})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupRuleSetRoutes(app)
	routes.SetupSimulatorRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupTaskRoutes(app)
	routes.SetupDocumentRoutes(app)
	routes.SetupLinkRoutes(app)
	routes.SetupAdminRoutes(app)
	routes.SetupAuditRoutes(app)
	routes.SetupBillingRoutes(app)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3030"
	}
	log.Println("🚀 ContaHub API em http://localhost:" + port)
	log.Fatal(app.Listen(":" + port))
}
