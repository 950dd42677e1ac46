package simulators

import "fmt"

// Tipos de desligamento aceitos pelo simulador de rescisão.
const (
	RescisaoSemJustaCausa = "SEM_JUSTA_CAUSA"
	RescisaoAcordo        = "ACORDO"
)

type RescisaoInput struct {
	Salario               float64 `json:"salario"`
	IncluirFerias         bool    `json:"incluir_ferias"`
	IncluirDecimoTerceiro bool    `json:"incluir_decimo_terceiro"`
	FaltasMes             int     `json:"faltas_mes"`
	AnosServico           int     `json:"anos_servico"`
	TipoRescisao          string  `json:"tipo_rescisao"`
}

type RescisaoPayload struct {
	MultaFGTS             float64
	MultaAcordo           float64
	DiasAvisoPrevioBase   float64
	DiasAvisoPrevioPorAno float64
}

func ParseRescisaoPayload(raw map[string]any) (RescisaoPayload, error) {
	var p RescisaoPayload
	var err error

	if p.MultaFGTS, err = numField(raw, "multaFgts"); err != nil {
		return p, err
	}
	if p.MultaAcordo, err = numField(raw, "multaAcordo"); err != nil {
		return p, err
	}
	if p.DiasAvisoPrevioBase, err = numField(raw, "diasAvisoPrevioBase"); err != nil {
		return p, err
	}
	if p.DiasAvisoPrevioPorAno, err = numField(raw, "diasAvisoPrevioPorAno"); err != nil {
		return p, err
	}
	return p, nil
}

func DefaultRescisaoPayload() map[string]any {
	return map[string]any{
		"multaFgts":             0.4,
		"multaAcordo":           0.2,
		"diasAvisoPrevioBase":   30.0,
		"diasAvisoPrevioPorAno": 3.0,
	}
}

// CalculateRescisao estima as verbas rescisórias. Cada verba que
// contribui vira uma linha assinada do detalhamento.
func CalculateRescisao(in RescisaoInput, p RescisaoPayload) Result {
	var r Result
	diario := in.Salario / 30

	r.add("Saldo de salário",
		fmt.Sprintf("Salário R$ %.2f", in.Salario),
		fmt.Sprintf("%.2f", in.Salario),
		in.Salario)

	if in.FaltasMes > 0 {
		r.add("Desconto de faltas",
			fmt.Sprintf("%d falta(s)", in.FaltasMes),
			fmt.Sprintf("%d × (%.2f ÷ 30)", in.FaltasMes, in.Salario),
			-float64(in.FaltasMes)*diario)
	}

	if in.IncluirFerias {
		r.add("Férias + 1/3 constitucional",
			fmt.Sprintf("Salário R$ %.2f", in.Salario),
			fmt.Sprintf("%.2f + %.2f ÷ 3", in.Salario, in.Salario),
			in.Salario+in.Salario/3)
	}

	if in.IncluirDecimoTerceiro {
		r.add("13º salário proporcional",
			fmt.Sprintf("Salário R$ %.2f", in.Salario),
			fmt.Sprintf("%.2f", in.Salario),
			in.Salario)
	}

	dias := p.DiasAvisoPrevioBase + float64(in.AnosServico)*p.DiasAvisoPrevioPorAno
	if dias > 0 {
		r.add("Aviso prévio indenizado",
			fmt.Sprintf("%.0f dia(s)", dias),
			fmt.Sprintf("%.0f × (%.2f ÷ 30)", dias, in.Salario),
			dias*diario)
	}

	multa := p.MultaFGTS
	if in.TipoRescisao == RescisaoAcordo {
		multa = p.MultaAcordo
	}
	if valorMulta := in.Salario * multa; valorMulta != 0 {
		r.add("Multa do FGTS",
			fmt.Sprintf("Salário R$ %.2f", in.Salario),
			fmt.Sprintf("%.2f × %.2f", in.Salario, multa),
			valorMulta)
	}

	return r
}
