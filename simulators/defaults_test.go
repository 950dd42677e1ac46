package simulators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Todo simulador precisa de um padrão embutido que passe na própria
// validação de payload: é o fallback quando não há RuleSet ativa.
func TestDefaultPayloadsValidos(t *testing.T) {
	for _, key := range Keys {
		t.Run(key, func(t *testing.T) {
			payload := DefaultPayload(key)
			require.NotNil(t, payload)
			assert.NoError(t, ValidatePayload(key, payload))
		})
	}
}

func TestDefaultPayloadChaveDesconhecida(t *testing.T) {
	assert.Nil(t, DefaultPayload("DECIMO_TERCEIRO"))
	assert.False(t, ValidKey("DECIMO_TERCEIRO"))
}

func TestValidatePayloadRejeitaFormatoErrado(t *testing.T) {
	cases := []struct {
		nome    string
		key     string
		payload map[string]any
	}{
		{"honorarios sem piso", KeyHonorarios, map[string]any{
			"regimePercentual": map[string]any{"SIMPLES": 0.018, "LUCRO_PRESUMIDO": 0.022, "LUCRO_REAL": 0.028},
		}},
		{"honorarios piso texto", KeyHonorarios, map[string]any{"baseMin": "600"}},
		{"rescisao sem multa", KeyRescisao, map[string]any{"multaAcordo": 0.2}},
		{"ferias faixas vazias", KeyFerias, map[string]any{
			"inssFaixas": []any{}, "inssAliquotaFinal": 0.14, "inssTeto": 908.85,
		}},
		{"fator r sem anexos", KeyFatorR, map[string]any{"threshold": 0.28}},
		{"das sem anexos", KeySimplesDAS, map[string]any{}},
		{"das faixa incompleta", KeySimplesDAS, map[string]any{
			"anexos": map[string]any{"I": []any{map[string]any{"min": 0.0, "max": 180000.0}}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			assert.Error(t, ValidatePayload(tc.key, tc.payload))
		})
	}
}
