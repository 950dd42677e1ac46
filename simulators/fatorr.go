package simulators

type FatorRInput struct {
	RBT12   float64 `json:"rbt12"`
	Folha12 float64 `json:"folha12"`
}

type FatorRPayload struct {
	Threshold float64
	AnnexIfGE string
	AnnexIfLT string
}

type FatorRResult struct {
	FatorR float64 `json:"fator_r"`
	Anexo  string  `json:"anexo"`
}

func ParseFatorRPayload(raw map[string]any) (FatorRPayload, error) {
	var p FatorRPayload
	var err error

	if p.Threshold, err = numField(raw, "threshold"); err != nil {
		return p, err
	}
	if p.AnnexIfGE, err = strField(raw, "annex_if_ge"); err != nil {
		return p, err
	}
	if p.AnnexIfLT, err = strField(raw, "annex_if_lt"); err != nil {
		return p, err
	}
	return p, nil
}

func DefaultFatorRPayload() map[string]any {
	return map[string]any{
		"threshold":   0.28,
		"annex_if_ge": "III",
		"annex_if_lt": "V",
	}
}

// CalculateFatorR classifica o anexo pela razão folha/receita dos
// últimos 12 meses. Exatamente no limiar o anexo favorável prevalece
// (comparação >=). Receita zero resulta em fator 0.
func CalculateFatorR(in FatorRInput, p FatorRPayload) FatorRResult {
	fator := 0.0
	if in.RBT12 > 0 {
		fator = in.Folha12 / in.RBT12
	}
	anexo := p.AnnexIfLT
	if fator >= p.Threshold {
		anexo = p.AnnexIfGE
	}
	return FatorRResult{FatorR: fator, Anexo: anexo}
}
