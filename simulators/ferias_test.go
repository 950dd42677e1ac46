package simulators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feriasDefaults(t *testing.T) FeriasPayload {
	t.Helper()
	p, err := ParseFeriasPayload(DefaultFeriasPayload())
	require.NoError(t, err)
	return p
}

func TestCalculateFeriasCenarioCompleto(t *testing.T) {
	p := feriasDefaults(t)

	in := FeriasInput{Salario: 3000, DiasFerias: 30}
	r := CalculateFerias(in, p)

	// Bruto 4000 cai na faixa de 12%: desconto 480, líquido 3520.
	assert.InDelta(t, 3520.0, r.Total, 0.001)

	inss := r.Breakdown[len(r.Breakdown)-1]
	assert.Equal(t, "-", inss.Sign)
	assert.InDelta(t, 480.0, inss.Amount, 0.001)
}

func TestCalculateFeriasDeterminismo(t *testing.T) {
	p := feriasDefaults(t)
	in := FeriasInput{
		Salario:          4200,
		DiasFerias:       20,
		AbonoPecuniario:  true,
		Dependentes:      2,
		AdicionalPercent: 20,
	}

	a := CalculateFerias(in, p)
	b := CalculateFerias(in, p)

	assert.Equal(t, a.Total, b.Total)
	assert.Equal(t, a.Breakdown, b.Breakdown)
}

func TestCalculateFeriasAbono(t *testing.T) {
	p := feriasDefaults(t)

	in := FeriasInput{Salario: 3000, DiasFerias: 30, AbonoPecuniario: true}
	r := CalculateFerias(in, p)

	// 20 dias gozados + 10 vendidos: 2000 + 666,67 + 1000 + 333,33 = 4000 bruto.
	assert.InDelta(t, 4000.0-480.0, r.Total, 0.01)
	require.Len(t, r.Breakdown, 5)
	assert.Equal(t, "Abono pecuniário", r.Breakdown[2].Label)
	assert.InDelta(t, 1000.0, r.Breakdown[2].Amount, 0.001)
}

func TestCalculateFeriasDependentesNaoAlteram(t *testing.T) {
	p := feriasDefaults(t)

	sem := CalculateFerias(FeriasInput{Salario: 3500, DiasFerias: 30}, p)
	com := CalculateFerias(FeriasInput{Salario: 3500, DiasFerias: 30, Dependentes: 4}, p)

	assert.Equal(t, sem.Total, com.Total)
}

func TestCalculateFeriasTetoInss(t *testing.T) {
	p := feriasDefaults(t)

	r := CalculateFerias(FeriasInput{Salario: 15000, DiasFerias: 30}, p)

	inss := r.Breakdown[len(r.Breakdown)-1]
	assert.InDelta(t, p.InssTeto, inss.Amount, 0.001)
}
