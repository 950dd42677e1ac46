package simulators

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func honorariosDefaults(t *testing.T) HonorariosPayload {
	t.Helper()
	p, err := ParseHonorariosPayload(DefaultHonorariosPayload())
	require.NoError(t, err)
	return p
}

func TestCalculateHonorariosCenarioCompleto(t *testing.T) {
	p := honorariosDefaults(t)

	// 30000 × 1,8% = 540, abaixo do piso de 600.
	in := HonorariosInput{
		Faturamento:     30000,
		Regime:          RegimeSimples,
		Segmento:        SegmentoComercio,
		NumFuncionarios: 3,
	}
	r := CalculateHonorarios(in, p)

	assert.InDelta(t, 705.0, r.Total, 0.001)
	assert.InDelta(t, 8460.0, r.TotalAnual, 0.001)
	require.Len(t, r.Breakdown, 3)
	assert.InDelta(t, 600.0, r.Breakdown[0].Amount, 0.001)
	assert.InDelta(t, 0.0, r.Breakdown[1].Amount, 0.001)
	assert.InDelta(t, 105.0, r.Breakdown[2].Amount, 0.001)
}

func TestCalculateHonorariosIdentidadeAlgebrica(t *testing.T) {
	p := honorariosDefaults(t)

	cases := []struct {
		nome         string
		faturamento  float64
		regime       string
		segmento     string
		funcionarios int
	}{
		{"piso comercio", 10000, RegimeSimples, SegmentoComercio, 0},
		{"acima do piso prestador", 80000, RegimeLucroPresumido, SegmentoPrestador, 5},
		{"industria lucro real", 250000, RegimeLucroReal, SegmentoIndustria, 12},
		{"faturamento zero", 0, RegimeSimples, SegmentoPrestador, 2},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			in := HonorariosInput{
				Faturamento:     tc.faturamento,
				Regime:          tc.regime,
				Segmento:        tc.segmento,
				NumFuncionarios: tc.funcionarios,
			}
			r := CalculateHonorarios(in, p)

			// Sem descontos: total = MAX(piso, fat×taxa) × fator + n×adicional.
			valorBase := math.Max(p.BaseMin, tc.faturamento*p.RegimePercentual[tc.regime])
			esperado := valorBase*p.FatorSegmento[tc.segmento] + float64(tc.funcionarios)*p.AdicFuncionario
			assert.InDelta(t, esperado, r.Total, 0.001)
		})
	}
}

func TestCalculateHonorariosDesconto(t *testing.T) {
	p := honorariosDefaults(t)
	in := HonorariosInput{
		Faturamento:     50000,
		Regime:          RegimeLucroPresumido,
		Segmento:        SegmentoPrestador,
		NumFuncionarios: 4,
	}

	sem := CalculateHonorarios(in, p)

	in.SistemaFinanceiro = true
	com := CalculateHonorarios(in, p)

	// Desconto incide sobre o subtotal pré-desconto, que aqui é o total sem descontos.
	assert.InDelta(t, sem.Total*p.DescontoSistemaFinanceiro, sem.Total-com.Total, 0.001)
	assert.Less(t, com.Total, sem.Total)

	ultima := com.Breakdown[len(com.Breakdown)-1]
	assert.Equal(t, "-", ultima.Sign)
}
