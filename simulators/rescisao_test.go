package simulators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rescisaoDefaults(t *testing.T) RescisaoPayload {
	t.Helper()
	p, err := ParseRescisaoPayload(DefaultRescisaoPayload())
	require.NoError(t, err)
	return p
}

func TestCalculateRescisaoVerbas(t *testing.T) {
	p := rescisaoDefaults(t)

	in := RescisaoInput{
		Salario:               3000,
		IncluirFerias:         true,
		IncluirDecimoTerceiro: true,
		AnosServico:           2,
		TipoRescisao:          RescisaoSemJustaCausa,
	}
	r := CalculateRescisao(in, p)

	// saldo 3000 + férias 4000 + 13º 3000 + aviso 36d×100 + multa 40%.
	assert.InDelta(t, 3000+4000+3000+3600+1200, r.Total, 0.001)
	require.Len(t, r.Breakdown, 5)
	for _, item := range r.Breakdown {
		assert.Equal(t, "+", item.Sign)
	}
}

func TestCalculateRescisaoFaltas(t *testing.T) {
	p := rescisaoDefaults(t)
	in := RescisaoInput{Salario: 2700, FaltasMes: 3, TipoRescisao: RescisaoSemJustaCausa}

	base := CalculateRescisao(in, p)
	in.FaltasMes = 4
	mais := CalculateRescisao(in, p)

	// Uma falta a mais custa exatamente um trigésimo do salário.
	assert.InDelta(t, in.Salario/30, base.Total-mais.Total, 0.001)
}

func TestCalculateRescisaoAcordo(t *testing.T) {
	p := rescisaoDefaults(t)
	in := RescisaoInput{Salario: 5000, TipoRescisao: RescisaoAcordo}

	r := CalculateRescisao(in, p)

	var multa float64
	for _, item := range r.Breakdown {
		if item.Label == "Multa do FGTS" {
			multa = item.Amount
		}
	}
	assert.InDelta(t, 5000*p.MultaAcordo, multa, 0.001)
}
