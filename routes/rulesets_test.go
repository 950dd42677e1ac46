package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"contahub/database"
	"contahub/models"
	"contahub/simulators"
)

func setupTestApp(t *testing.T) *fiber.App {
	t.Helper()
	t.Setenv("JWT_SECRET", "segredo-de-teste")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	database.DB = db

	app := fiber.New()
	SetupAuthRoutes(app)
	SetupRuleSetRoutes(app)
	SetupSimulatorRoutes(app)
	SetupBillingRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func registerAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	status, body := doJSON(t, app, http.MethodPost, "/auth/register", "", map[string]any{
		"name":           "Maria",
		"email":          "maria@escritorio.com.br",
		"password":       "senha-forte-123",
		"workspace_name": "Escritório Modelo",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func activatePath(id int) string {
	return "/rulesets/" + strconv.Itoa(id) + "/activate"
}

func TestCreateRuleSetVersionamento(t *testing.T) {
	app := setupTestApp(t)
	token := registerAdmin(t, app)

	status, first := doJSON(t, app, http.MethodPost, "/rulesets", token, map[string]any{
		"simulator_key": "HONORARIOS",
		"name":          "Tabela 2026",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.EqualValues(t, 1, first["version"])
	assert.Equal(t, false, first["is_active"])

	status, second := doJSON(t, app, http.MethodPost, "/rulesets", token, map[string]any{
		"simulator_key": "HONORARIOS",
		"name":          "Tabela 2026 revisada",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.EqualValues(t, 2, second["version"])
}

func TestCreateRuleSetRejeitaPayloadInvalido(t *testing.T) {
	app := setupTestApp(t)
	token := registerAdmin(t, app)

	status, body := doJSON(t, app, http.MethodPost, "/rulesets", token, map[string]any{
		"simulator_key": "HONORARIOS",
		"name":          "quebrada",
		"payload":       map[string]any{"baseMin": "seiscentos"},
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, body["details"], "baseMin")
}

func TestActivateRuleSetInvariante(t *testing.T) {
	app := setupTestApp(t)
	token := registerAdmin(t, app)

	_, v1 := doJSON(t, app, http.MethodPost, "/rulesets", token, map[string]any{
		"simulator_key": "FATOR_R", "name": "v1",
	})
	_, v2 := doJSON(t, app, http.MethodPost, "/rulesets", token, map[string]any{
		"simulator_key": "FATOR_R", "name": "v2",
	})

	id1 := int(v1["ID"].(float64))
	id2 := int(v2["ID"].(float64))

	// Ativa v1 e depois v2: só v2 pode terminar ativa.
	status, _ := doJSON(t, app, http.MethodPost, activatePath(id1), token, nil)
	require.Equal(t, http.StatusOK, status)
	status, _ = doJSON(t, app, http.MethodPost, activatePath(id2), token, nil)
	require.Equal(t, http.StatusOK, status)

	var ativos []models.RuleSet
	database.DB.Where("simulator_key = ? AND is_active = ?", "FATOR_R", true).Find(&ativos)
	require.Len(t, ativos, 1)
	assert.EqualValues(t, id2, ativos[0].ID)
	assert.Equal(t, 2, ativos[0].Version)
}

func TestUpdateRuleSetNoLugarSemBumpDeVersao(t *testing.T) {
	app := setupTestApp(t)
	token := registerAdmin(t, app)

	_, created := doJSON(t, app, http.MethodPost, "/rulesets", token, map[string]any{
		"simulator_key": "FATOR_R", "name": "Limiar 2026",
	})
	id := int(created["ID"].(float64))

	status, _ := doJSON(t, app, http.MethodPost, activatePath(id), token, nil)
	require.Equal(t, http.StatusOK, status)

	// Ajuste rápido na versão ativa: sobrescreve no lugar.
	status, updated := doJSON(t, app, http.MethodPut, "/rulesets/"+strconv.Itoa(id), token, map[string]any{
		"name": "Limiar 2026 ajustado",
		"payload": map[string]any{
			"threshold":   0.30,
			"annex_if_ge": "III",
			"annex_if_lt": "V",
		},
	})
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, updated["version"])
	assert.Equal(t, true, updated["is_active"])

	var rs models.RuleSet
	require.NoError(t, database.DB.First(&rs, id).Error)
	assert.Equal(t, 1, rs.Version)
	assert.True(t, rs.IsActive)
	thresholdNum, ok := rs.Payload["threshold"].(json.Number)
	require.True(t, ok)
	threshold, err := thresholdNum.Float64()
	require.NoError(t, err)
	assert.InDelta(t, 0.30, threshold, 0.0001)

	var count int64
	database.DB.Model(&models.AuditLog{}).Where("action = ?", models.AuditRuleSetUpdated).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestActiveRuleSetResolucaoGlobal(t *testing.T) {
	app := setupTestApp(t)
	token := registerAdmin(t, app)

	// Linha global (workspace nulo) é semeada por operação, não pela API.
	global := models.RuleSet{
		WorkspaceID:  nil,
		SimulatorKey: "FERIAS",
		Version:      1,
		Name:         "Tabela INSS nacional",
		Payload:      datatypes.JSONMap(simulators.DefaultFeriasPayload()),
		IsActive:     true,
	}
	require.NoError(t, database.DB.Create(&global).Error)

	status, body := doJSON(t, app, http.MethodGet, "/rulesets/active/FERIAS", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "global", body["origem"])
	assert.EqualValues(t, 1, body["version"])
}

func TestActiveRuleSetFallbackPadrao(t *testing.T) {
	app := setupTestApp(t)
	token := registerAdmin(t, app)

	status, body := doJSON(t, app, http.MethodGet, "/rulesets/active/FERIAS", token, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "padrao", body["origem"])
	require.NotNil(t, body["payload"])
}

func TestSimulacaoHonorariosComPadrao(t *testing.T) {
	app := setupTestApp(t)
	token := registerAdmin(t, app)

	status, body := doJSON(t, app, http.MethodPost, "/simulators/HONORARIOS/calcular", token, map[string]any{
		"faturamento":      30000,
		"regime":           "SIMPLES",
		"segmento":         "COMERCIO",
		"num_funcionarios": 3,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "padrao", body["origem"])

	result := body["result"].(map[string]any)
	assert.InDelta(t, 705.0, result["total"].(float64), 0.001)

	// A simulação em si não é persistida; só o evento de auditoria.
	var count int64
	database.DB.Model(&models.AuditLog{}).Where("action = ?", models.AuditSimulationRun).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestSimulacaoRejeitaNegativos(t *testing.T) {
	app := setupTestApp(t)
	token := registerAdmin(t, app)

	status, _ := doJSON(t, app, http.MethodPost, "/simulators/RESCISAO/calcular", token, map[string]any{
		"salario": -1000,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}
