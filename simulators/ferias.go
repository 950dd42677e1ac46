package simulators

import (
	"fmt"
	"math"
)

type FeriasInput struct {
	Salario          float64 `json:"salario"`
	DiasFerias       int     `json:"dias_ferias"`
	AbonoPecuniario  bool    `json:"abono_pecuniario"`
	Dependentes      int     `json:"dependentes"`
	AdicionalPercent float64 `json:"adicional_percent"`
}

// InssFaixa é uma faixa da tabela progressiva: a alíquota vale para
// bases até Limite.
type InssFaixa struct {
	Limite   float64
	Aliquota float64
}

type FeriasPayload struct {
	InssFaixas        []InssFaixa
	InssAliquotaFinal float64
	InssTeto          float64
}

func ParseFeriasPayload(raw map[string]any) (FeriasPayload, error) {
	var p FeriasPayload
	var err error

	faixas, err := sliceField(raw, "inssFaixas")
	if err != nil {
		return p, err
	}
	if len(faixas) == 0 {
		return p, fmt.Errorf("campo %q não pode ser vazio", "inssFaixas")
	}
	for i, item := range faixas {
		m, ok := item.(map[string]any)
		if !ok {
			return p, fmt.Errorf("campo \"inssFaixas\"[%d] deve ser um objeto", i)
		}
		var f InssFaixa
		if f.Limite, err = numField(m, "limite"); err != nil {
			return p, fmt.Errorf("inssFaixas[%d]: %w", i, err)
		}
		if f.Aliquota, err = numField(m, "aliquota"); err != nil {
			return p, fmt.Errorf("inssFaixas[%d]: %w", i, err)
		}
		p.InssFaixas = append(p.InssFaixas, f)
	}

	if p.InssAliquotaFinal, err = numField(raw, "inssAliquotaFinal"); err != nil {
		return p, err
	}
	if p.InssTeto, err = numField(raw, "inssTeto"); err != nil {
		return p, err
	}
	return p, nil
}

func DefaultFeriasPayload() map[string]any {
	return map[string]any{
		"inssFaixas": []any{
			map[string]any{"limite": 1412.0, "aliquota": 0.075},
			map[string]any{"limite": 2666.68, "aliquota": 0.09},
			map[string]any{"limite": 4000.03, "aliquota": 0.12},
		},
		"inssAliquotaFinal": 0.14,
		"inssTeto":          908.85,
	}
}

// aliquotaInss devolve a alíquota da faixa em que a base cai.
func (p FeriasPayload) aliquotaInss(base float64) float64 {
	for _, f := range p.InssFaixas {
		if base <= f.Limite {
			return f.Aliquota
		}
	}
	return p.InssAliquotaFinal
}

// CalculateFerias estima o líquido de férias. O número de dependentes é
// informativo e não entra na fórmula. O desconto estilo INSS incide
// sobre o bruto acumulado, limitado ao teto.
func CalculateFerias(in FeriasInput, p FeriasPayload) Result {
	var r Result

	diasGozados := float64(in.DiasFerias)
	diasAbono := 0.0
	if in.AbonoPecuniario {
		diasGozados = math.Max(float64(in.DiasFerias-10), 20)
		diasAbono = math.Min(float64(in.DiasFerias)/3, 10)
	}
	valorDiario := in.Salario / 30

	ferias := valorDiario * diasGozados
	r.add("Salário de férias",
		fmt.Sprintf("%.0f dia(s) gozados", diasGozados),
		fmt.Sprintf("(%.2f ÷ 30) × %.0f", in.Salario, diasGozados),
		ferias)

	terco := ferias / 3
	r.add("1/3 constitucional",
		fmt.Sprintf("Férias R$ %.2f", ferias),
		fmt.Sprintf("%.2f ÷ 3", ferias),
		terco)

	if in.AbonoPecuniario {
		abono := valorDiario * diasAbono
		r.add("Abono pecuniário",
			fmt.Sprintf("%.1f dia(s) vendidos", diasAbono),
			fmt.Sprintf("(%.2f ÷ 30) × %.1f", in.Salario, diasAbono),
			abono)
		r.add("1/3 sobre o abono",
			fmt.Sprintf("Abono R$ %.2f", abono),
			fmt.Sprintf("%.2f ÷ 3", abono),
			abono/3)
	}

	if in.AdicionalPercent > 0 {
		adicional := (ferias + terco) * in.AdicionalPercent / 100
		r.add("Adicionais",
			fmt.Sprintf("%.0f%% sobre férias + 1/3", in.AdicionalPercent),
			fmt.Sprintf("(%.2f + %.2f) × %.0f%%", ferias, terco, in.AdicionalPercent),
			adicional)
	}

	baseInss := r.Total
	aliquota := p.aliquotaInss(baseInss)
	desconto := math.Min(baseInss*aliquota, p.InssTeto)
	r.add("Desconto INSS",
		fmt.Sprintf("Base R$ %.2f", baseInss),
		fmt.Sprintf("MIN(%.2f × %.4f, %.2f)", baseInss, aliquota, p.InssTeto),
		-desconto)

	return r
}
