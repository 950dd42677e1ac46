package middleware

import (
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"contahub/models"
)

func JWTMiddleware(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return c.Status(401).JSON(fiber.Map{"error": "Não autorizado"})
	}

	tokenString := strings.Replace(authHeader, "Bearer ", "", 1)
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return c.Status(401).JSON(fiber.Map{"error": "Token inválido"})
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Status(401).JSON(fiber.Map{"error": "Token inválido"})
	}
	userID, okUser := claims["user_id"].(float64)
	wsID, okWs := claims["workspace_id"].(float64)
	if !okUser || !okWs {
		return c.Status(401).JSON(fiber.Map{"error": "Token inválido"})
	}
	c.Locals("user_id", uint(userID))
	c.Locals("workspace_id", uint(wsID))
	if role, ok := claims["role"].(string); ok {
		c.Locals("role", role)
	}
	if email, ok := claims["email"].(string); ok {
		c.Locals("email", email)
	}
	return c.Next()
}

// RequireAdmin exige papel admin no workspace; encadear após JWTMiddleware.
func RequireAdmin(c *fiber.Ctx) error {
	if c.Locals("role") != models.RoleAdmin {
		return c.Status(403).JSON(fiber.Map{"error": "Apenas administradores"})
	}
	return c.Next()
}
