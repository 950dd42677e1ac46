package routes

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEmailDuplicado(t *testing.T) {
	app := setupTestApp(t)
	registerAdmin(t, app)

	status, body := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"name":           "Maria de novo",
		"email":          "maria@escritorio.com.br",
		"password":       "outra-senha-123",
		"workspace_name": "Escritório Duplicado",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "E-mail já cadastrado", body["error"])
}

func TestJWTRejeitaTokenSemWorkspace(t *testing.T) {
	app := setupTestApp(t)
	registerAdmin(t, app)

	// Token com assinatura válida mas sem a claim workspace_id.
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 1,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("segredo-de-teste"))
	require.NoError(t, err)

	status, body := doJSON(t, app, http.MethodGet, "/auth/me", signed, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Token inválido", body["error"])
}
