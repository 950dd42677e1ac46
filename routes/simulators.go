package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"contahub/middleware"
	"contahub/models"
	"contahub/services"
	"contahub/simulators"
)

func SetupSimulatorRoutes(app *fiber.App) {
	sim := app.Group("/simulators", middleware.JWTMiddleware)
	sim.Get("/", listSimulators)
	sim.Post("/:key/calcular", runSimulation)
}

func listSimulators(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"simulators": simulators.Keys})
}

type dasRequest struct {
	Anexo   string  `json:"anexo"`
	RBT12   float64 `json:"rbt12"`
	RPA     float64 `json:"rpa"`
	Folha12 float64 `json:"folha12"`
}

// POST /simulators/:key/calcular
// Resolve o payload vigente, roda o motor puro e devolve total +
// detalhamento. O resultado não é persistido; só o fato de a simulação
// ter rodado vai para a auditoria (best-effort).
func runSimulation(c *fiber.Ctx) error {
	key := c.Params("key")
	if !simulators.ValidKey(key) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Simulador desconhecido"})
	}

	wsID := workspaceID(c)
	rawPayload, origem, rs := services.ActiveRuleSet(wsID, key)

	var inputs any
	var result any
	var calcErr string

	switch key {
	case simulators.KeyHonorarios:
		var in simulators.HonorariosInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
		}
		if in.Faturamento < 0 || in.NumFuncionarios < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valores não podem ser negativos"})
		}
		p, err := simulators.ParseHonorariosPayload(rawPayload)
		if err != nil {
			return payloadCorrompido(c, err)
		}
		inputs, result = in, simulators.CalculateHonorarios(in, p)

	case simulators.KeyRescisao:
		var in simulators.RescisaoInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
		}
		if in.Salario < 0 || in.FaltasMes < 0 || in.AnosServico < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valores não podem ser negativos"})
		}
		p, err := simulators.ParseRescisaoPayload(rawPayload)
		if err != nil {
			return payloadCorrompido(c, err)
		}
		inputs, result = in, simulators.CalculateRescisao(in, p)

	case simulators.KeyFerias:
		var in simulators.FeriasInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
		}
		if in.Salario < 0 || in.Dependentes < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valores não podem ser negativos"})
		}
		if in.DiasFerias < 0 || in.DiasFerias > 30 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dias de férias devem estar entre 0 e 30"})
		}
		if in.AdicionalPercent < 0 || in.AdicionalPercent > 40 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Adicional deve estar entre 0 e 40%"})
		}
		p, err := simulators.ParseFeriasPayload(rawPayload)
		if err != nil {
			return payloadCorrompido(c, err)
		}
		inputs, result = in, simulators.CalculateFerias(in, p)

	case simulators.KeyFatorR:
		var in simulators.FatorRInput
		if err := c.BodyParser(&in); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
		}
		if in.RBT12 < 0 || in.Folha12 < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valores não podem ser negativos"})
		}
		p, err := simulators.ParseFatorRPayload(rawPayload)
		if err != nil {
			return payloadCorrompido(c, err)
		}
		inputs, result = in, simulators.CalculateFatorR(in, p)

	case simulators.KeySimplesDAS:
		var req dasRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Payload inválido"})
		}
		if req.RBT12 < 0 || req.RPA < 0 || req.Folha12 < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Valores não podem ser negativos"})
		}

		anexo := req.Anexo
		if anexo == "" || anexo == simulators.AnexoAuto {
			// Anexo automático: classifica primeiro pelo Fator R vigente.
			frPayload, _, _ := services.ActiveRuleSet(wsID, simulators.KeyFatorR)
			fr, err := simulators.ParseFatorRPayload(frPayload)
			if err != nil {
				return payloadCorrompido(c, err)
			}
			anexo = simulators.CalculateFatorR(simulators.FatorRInput{RBT12: req.RBT12, Folha12: req.Folha12}, fr).Anexo
		}

		p, err := simulators.ParseDASPayload(rawPayload)
		if err != nil {
			return payloadCorrompido(c, err)
		}
		res := simulators.CalculateDAS(simulators.DASInput{Anexo: anexo, RBT12: req.RBT12, RPA: req.RPA}, p)
		if res == nil {
			calcErr = "Sem resultado: informe RBT12 e receita do mês maiores que zero"
		}
		inputs, result = req, res
	}

	userID, email := actor(c)
	services.LogAudit(&wsID, userID, email, models.AuditSimulationRun, "simulator", nil, map[string]any{
		"simulator_key": key,
		"origem":        origem,
	})

	resp := fiber.Map{
		"simulator_key": key,
		"origem":        origem,
		"inputs":        inputs,
		"result":        result,
		"created_at":    time.Now().UTC(),
	}
	if rs != nil {
		resp["ruleset_version"] = rs.Version
	}
	if calcErr != "" {
		resp["message"] = calcErr
	}
	return c.JSON(resp)
}

func payloadCorrompido(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "Payload da RuleSet ativa fora do formato esperado",
		"details": err.Error(),
	})
}
