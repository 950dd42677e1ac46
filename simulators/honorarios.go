package simulators

import (
	"fmt"
	"math"
)

// Regimes tributários e segmentos aceitos pelo simulador de honorários.
const (
	RegimeSimples        = "SIMPLES"
	RegimeLucroPresumido = "LUCRO_PRESUMIDO"
	RegimeLucroReal      = "LUCRO_REAL"

	SegmentoComercio  = "COMERCIO"
	SegmentoPrestador = "PRESTADOR"
	SegmentoIndustria = "INDUSTRIA"
)

type HonorariosInput struct {
	Faturamento       float64 `json:"faturamento"`
	Regime            string  `json:"regime"`
	Segmento          string  `json:"segmento"`
	NumFuncionarios   int     `json:"num_funcionarios"`
	SistemaFinanceiro bool    `json:"sistema_financeiro"`
	PontoEletronico   bool    `json:"ponto_eletronico"`
}

type HonorariosPayload struct {
	BaseMin                   float64
	RegimePercentual          map[string]float64
	FatorSegmento             map[string]float64
	AdicFuncionario           float64
	DescontoSistemaFinanceiro float64
	DescontoPontoEletronico   float64
}

func ParseHonorariosPayload(raw map[string]any) (HonorariosPayload, error) {
	var p HonorariosPayload
	var err error

	if p.BaseMin, err = numField(raw, "baseMin"); err != nil {
		return p, err
	}
	if p.RegimePercentual, err = numMapField(raw, "regimePercentual",
		RegimeSimples, RegimeLucroPresumido, RegimeLucroReal); err != nil {
		return p, err
	}
	if p.FatorSegmento, err = numMapField(raw, "fatorSegmento",
		SegmentoComercio, SegmentoPrestador, SegmentoIndustria); err != nil {
		return p, err
	}
	if p.AdicFuncionario, err = numField(raw, "adicFuncionario"); err != nil {
		return p, err
	}
	if p.DescontoSistemaFinanceiro, err = numField(raw, "descontoSistemaFinanceiro"); err != nil {
		return p, err
	}
	if p.DescontoPontoEletronico, err = numField(raw, "descontoPontoEletronico"); err != nil {
		return p, err
	}
	return p, nil
}

func DefaultHonorariosPayload() map[string]any {
	return map[string]any{
		"baseMin": 600.0,
		"regimePercentual": map[string]any{
			RegimeSimples:        0.018,
			RegimeLucroPresumido: 0.022,
			RegimeLucroReal:      0.028,
		},
		"fatorSegmento": map[string]any{
			SegmentoComercio:  1.0,
			SegmentoPrestador: 1.15,
			SegmentoIndustria: 1.25,
		},
		"adicFuncionario":           35.0,
		"descontoSistemaFinanceiro": 0.05,
		"descontoPontoEletronico":   0.05,
	}
}

// CalculateHonorarios estima o honorário mensal do escritório.
// valorBase respeita o piso (baseMin); o ajuste de segmento é aplicado
// sobre o valor base; descontos incidem sobre o subtotal antes de
// qualquer desconto.
func CalculateHonorarios(in HonorariosInput, p HonorariosPayload) Result {
	var r Result

	rate := p.RegimePercentual[in.Regime]
	valorBase := math.Max(p.BaseMin, in.Faturamento*rate)
	r.add("Valor base",
		fmt.Sprintf("Faturamento R$ %.2f", in.Faturamento),
		fmt.Sprintf("MAX(%.2f, %.2f × %.4f)", p.BaseMin, in.Faturamento, rate),
		valorBase)

	fator, ok := p.FatorSegmento[in.Segmento]
	if !ok {
		fator = 1
	}
	ajuste := valorBase * (fator - 1)
	r.add("Ajuste de segmento",
		in.Segmento,
		fmt.Sprintf("%.2f × (%.2f − 1)", valorBase, fator),
		ajuste)

	valorFuncionarios := float64(in.NumFuncionarios) * p.AdicFuncionario
	r.add("Adicional por funcionário",
		fmt.Sprintf("%d funcionário(s)", in.NumFuncionarios),
		fmt.Sprintf("%d × %.2f", in.NumFuncionarios, p.AdicFuncionario),
		valorFuncionarios)

	subtotal := valorBase + ajuste + valorFuncionarios

	if in.SistemaFinanceiro {
		r.add("Desconto sistema financeiro",
			fmt.Sprintf("Subtotal R$ %.2f", subtotal),
			fmt.Sprintf("%.2f × %.4f", subtotal, p.DescontoSistemaFinanceiro),
			-subtotal*p.DescontoSistemaFinanceiro)
	}
	if in.PontoEletronico {
		r.add("Desconto ponto eletrônico",
			fmt.Sprintf("Subtotal R$ %.2f", subtotal),
			fmt.Sprintf("%.2f × %.4f", subtotal, p.DescontoPontoEletronico),
			-subtotal*p.DescontoPontoEletronico)
	}

	r.TotalAnual = r.Total * 12
	return r
}
