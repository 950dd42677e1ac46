package simulators

import "fmt"

// AnexoAuto resolve o anexo via Fator R antes do cálculo do DAS.
const AnexoAuto = "auto"

type DASInput struct {
	Anexo string  `json:"anexo"`
	RBT12 float64 `json:"rbt12"`
	RPA   float64 `json:"rpa"`
}

// DASBand é uma faixa de faturamento da tabela do Simples Nacional.
type DASBand struct {
	Min             float64 `json:"min"`
	Max             float64 `json:"max"`
	AliquotaNominal float64 `json:"aliquota_nominal"`
	Deducao         float64 `json:"deducao"`
}

type DASPayload struct {
	Anexos map[string][]DASBand
}

type DASResult struct {
	Anexo           string  `json:"anexo"`
	Faixa           DASBand `json:"faixa"`
	FaixaIndex      int     `json:"faixa_index"`
	AliquotaEfetiva float64 `json:"aliquota_efetiva"`
	ValorDAS        float64 `json:"valor_das"`
}

func ParseDASPayload(raw map[string]any) (DASPayload, error) {
	p := DASPayload{Anexos: make(map[string][]DASBand)}

	anexos, err := mapField(raw, "anexos")
	if err != nil {
		return p, err
	}
	if len(anexos) == 0 {
		return p, fmt.Errorf("campo %q não pode ser vazio", "anexos")
	}
	for anexo, v := range anexos {
		lista, ok := v.([]any)
		if !ok || len(lista) == 0 {
			return p, fmt.Errorf("anexo %q deve ser uma lista não vazia de faixas", anexo)
		}
		for i, item := range lista {
			m, ok := item.(map[string]any)
			if !ok {
				return p, fmt.Errorf("anexo %q: faixa %d deve ser um objeto", anexo, i)
			}
			var b DASBand
			if b.Min, err = numField(m, "min"); err != nil {
				return p, fmt.Errorf("anexo %q faixa %d: %w", anexo, i, err)
			}
			if b.Max, err = numField(m, "max"); err != nil {
				return p, fmt.Errorf("anexo %q faixa %d: %w", anexo, i, err)
			}
			if b.AliquotaNominal, err = numField(m, "aliquota_nominal"); err != nil {
				return p, fmt.Errorf("anexo %q faixa %d: %w", anexo, i, err)
			}
			if b.Deducao, err = numField(m, "deducao"); err != nil {
				return p, fmt.Errorf("anexo %q faixa %d: %w", anexo, i, err)
			}
			p.Anexos[anexo] = append(p.Anexos[anexo], b)
		}
	}
	return p, nil
}

func dasBands(aliquotas, deducoes [6]float64) []any {
	limites := [6][2]float64{
		{0, 180000},
		{180000.01, 360000},
		{360000.01, 720000},
		{720000.01, 1800000},
		{1800000.01, 3600000},
		{3600000.01, 4800000},
	}
	bands := make([]any, 0, 6)
	for i := range limites {
		bands = append(bands, map[string]any{
			"min":              limites[i][0],
			"max":              limites[i][1],
			"aliquota_nominal": aliquotas[i],
			"deducao":          deducoes[i],
		})
	}
	return bands
}

// DefaultDASPayload traz as tabelas vigentes dos anexos I a V
// (LC 123/2006, valores em reais e alíquotas nominais).
func DefaultDASPayload() map[string]any {
	return map[string]any{
		"anexos": map[string]any{
			"I": dasBands(
				[6]float64{0.04, 0.073, 0.095, 0.107, 0.143, 0.19},
				[6]float64{0, 5940, 13860, 22500, 87300, 378000}),
			"II": dasBands(
				[6]float64{0.045, 0.078, 0.10, 0.112, 0.147, 0.30},
				[6]float64{0, 5940, 13860, 22500, 85500, 720000}),
			"III": dasBands(
				[6]float64{0.06, 0.112, 0.135, 0.16, 0.21, 0.33},
				[6]float64{0, 9360, 17640, 35640, 125640, 648000}),
			"IV": dasBands(
				[6]float64{0.045, 0.09, 0.102, 0.14, 0.22, 0.33},
				[6]float64{0, 8100, 12420, 39780, 183780, 828000}),
			"V": dasBands(
				[6]float64{0.155, 0.18, 0.195, 0.205, 0.23, 0.305},
				[6]float64{0, 4500, 9900, 17100, 62100, 540000}),
		},
	}
}

// CalculateDAS calcula a guia mensal do Simples Nacional. Seleciona a
// faixa cujo intervalo [min, max] contém o RBT12 (limite superior
// inclusivo); acima da última faixa, usa a última. Devolve nil quando
// RBT12 ou RPA é zero, ou quando o anexo não existe no payload.
func CalculateDAS(in DASInput, p DASPayload) *DASResult {
	if in.RBT12 <= 0 || in.RPA <= 0 {
		return nil
	}
	bands := p.Anexos[in.Anexo]
	if len(bands) == 0 {
		return nil
	}

	idx := len(bands) - 1
	for i, b := range bands {
		if in.RBT12 >= b.Min && in.RBT12 <= b.Max {
			idx = i
			break
		}
	}
	faixa := bands[idx]

	efetiva := (in.RBT12*faixa.AliquotaNominal - faixa.Deducao) / in.RBT12
	return &DASResult{
		Anexo:           in.Anexo,
		Faixa:           faixa,
		FaixaIndex:      idx,
		AliquotaEfetiva: efetiva,
		ValorDAS:        in.RPA * efetiva,
	}
}
