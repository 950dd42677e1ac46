package simulators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dasDefaults(t *testing.T) DASPayload {
	t.Helper()
	p, err := ParseDASPayload(DefaultDASPayload())
	require.NoError(t, err)
	return p
}

func TestCalculateDASFaixaEfetiva(t *testing.T) {
	p := dasDefaults(t)

	// Anexo I, 2ª faixa: (360000 × 7,3% − 5940) ÷ 360000 = 5,65%.
	r := CalculateDAS(DASInput{Anexo: "I", RBT12: 360000, RPA: 30000}, p)
	require.NotNil(t, r)
	assert.Equal(t, 1, r.FaixaIndex)
	assert.InDelta(t, 0.0565, r.AliquotaEfetiva, 0.0001)
	assert.InDelta(t, 30000*0.0565, r.ValorDAS, 0.01)
}

func TestCalculateDASLimiteDeFaixa(t *testing.T) {
	p := dasDefaults(t)

	// Exatamente no teto da 1ª faixa: a própria faixa é selecionada.
	r := CalculateDAS(DASInput{Anexo: "I", RBT12: 180000, RPA: 15000}, p)
	require.NotNil(t, r)
	assert.Equal(t, 0, r.FaixaIndex)

	// Um centavo acima já cai na 2ª.
	r = CalculateDAS(DASInput{Anexo: "I", RBT12: 180000.01, RPA: 15000}, p)
	require.NotNil(t, r)
	assert.Equal(t, 1, r.FaixaIndex)
}

func TestCalculateDASAcimaDaUltimaFaixa(t *testing.T) {
	p := dasDefaults(t)

	r := CalculateDAS(DASInput{Anexo: "III", RBT12: 10000000, RPA: 500000}, p)
	require.NotNil(t, r)
	assert.Equal(t, 5, r.FaixaIndex)
}

func TestCalculateDASSemResultado(t *testing.T) {
	p := dasDefaults(t)

	assert.Nil(t, CalculateDAS(DASInput{Anexo: "I", RBT12: 0, RPA: 10000}, p))
	assert.Nil(t, CalculateDAS(DASInput{Anexo: "I", RBT12: 100000, RPA: 0}, p))
	assert.Nil(t, CalculateDAS(DASInput{Anexo: "IX", RBT12: 100000, RPA: 10000}, p))
}
