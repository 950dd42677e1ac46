// Package simulators contém os motores de cálculo dos simuladores.
// Funções puras: nenhum acesso a rede ou banco, nenhum pânico para
// entrada numérica bem tipada. A coerção defensiva de entrada fica na
// borda HTTP, nunca aqui dentro.
package simulators

import "fmt"

// Chaves dos simuladores suportados.
const (
	KeyHonorarios = "HONORARIOS"
	KeyRescisao   = "RESCISAO"
	KeyFerias     = "FERIAS"
	KeyFatorR     = "FATOR_R"
	KeySimplesDAS = "SIMPLES_DAS"
)

// Keys lista todas as chaves, na ordem exibida no produto.
var Keys = []string{KeyHonorarios, KeyRescisao, KeyFerias, KeyFatorR, KeySimplesDAS}

func ValidKey(key string) bool {
	for _, k := range Keys {
		if k == key {
			return true
		}
	}
	return false
}

// BreakdownItem é uma linha do detalhamento: fórmula legível + valor.
// Amount é sempre positivo; Sign indica a direção da contribuição.
type BreakdownItem struct {
	Label   string  `json:"label"`
	Base    string  `json:"base"`
	Formula string  `json:"formula"`
	Amount  float64 `json:"amount"`
	Sign    string  `json:"sign"`
}

// Result é o retorno comum dos simuladores com detalhamento
// (honorários, rescisão e férias). TotalAnual só é preenchido
// pelo simulador de honorários.
type Result struct {
	Total      float64         `json:"total"`
	TotalAnual float64         `json:"total_anual,omitempty"`
	Breakdown  []BreakdownItem `json:"breakdown"`
}

func (r *Result) add(label, base, formula string, amount float64) {
	item := BreakdownItem{Label: label, Base: base, Formula: formula, Amount: amount, Sign: "+"}
	if amount < 0 {
		item.Amount = -amount
		item.Sign = "-"
	}
	r.Total += amount
	r.Breakdown = append(r.Breakdown, item)
}

// ValidatePayload verifica se o payload tem o formato esperado pelo
// simulador. Usado em create/update de RuleSet; rejeita, não coage.
func ValidatePayload(key string, raw map[string]any) error {
	switch key {
	case KeyHonorarios:
		_, err := ParseHonorariosPayload(raw)
		return err
	case KeyRescisao:
		_, err := ParseRescisaoPayload(raw)
		return err
	case KeyFerias:
		_, err := ParseFeriasPayload(raw)
		return err
	case KeyFatorR:
		_, err := ParseFatorRPayload(raw)
		return err
	case KeySimplesDAS:
		_, err := ParseDASPayload(raw)
		return err
	default:
		return fmt.Errorf("simulador desconhecido: %s", key)
	}
}

// DefaultPayload devolve o payload padrão do simulador, usado quando o
// workspace não tem RuleSet ativa e como conteúdo inicial ao criar uma
// nova versão. Total sobre o enum: toda chave válida tem padrão.
func DefaultPayload(key string) map[string]any {
	switch key {
	case KeyHonorarios:
		return DefaultHonorariosPayload()
	case KeyRescisao:
		return DefaultRescisaoPayload()
	case KeyFerias:
		return DefaultFeriasPayload()
	case KeyFatorR:
		return DefaultFatorRPayload()
	case KeySimplesDAS:
		return DefaultDASPayload()
	default:
		return nil
	}
}

// toNumber aceita as representações numéricas que chegam via JSON
// decodificado ou mapas literais em código.
func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	default:
		return 0, false
	}
}

func numField(raw map[string]any, key string) (float64, error) {
	v, ok := raw[key]
	if !ok {
		return 0, fmt.Errorf("campo %q ausente", key)
	}
	n, ok := toNumber(v)
	if !ok {
		return 0, fmt.Errorf("campo %q deve ser numérico", key)
	}
	return n, nil
}

func strField(raw map[string]any, key string) (string, error) {
	v, ok := raw[key]
	if !ok {
		return "", fmt.Errorf("campo %q ausente", key)
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", fmt.Errorf("campo %q deve ser texto não vazio", key)
	}
	return s, nil
}

func mapField(raw map[string]any, key string) (map[string]any, error) {
	v, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("campo %q ausente", key)
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("campo %q deve ser um objeto", key)
	}
	return m, nil
}

func numMapField(raw map[string]any, key string, required ...string) (map[string]float64, error) {
	m, err := mapField(raw, key)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, len(m))
	for k, v := range m {
		n, ok := toNumber(v)
		if !ok {
			return nil, fmt.Errorf("campo %q: valor de %q deve ser numérico", key, k)
		}
		out[k] = n
	}
	for _, req := range required {
		if _, ok := out[req]; !ok {
			return nil, fmt.Errorf("campo %q: chave %q ausente", key, req)
		}
	}
	return out, nil
}

func sliceField(raw map[string]any, key string) ([]any, error) {
	v, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("campo %q ausente", key)
	}
	s, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("campo %q deve ser uma lista", key)
	}
	return s, nil
}
