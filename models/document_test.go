package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDocumentSituacao(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	em := func(dias int) *time.Time {
		d := now.AddDate(0, 0, dias)
		return &d
	}

	cases := []struct {
		nome     string
		expira   *time.Time
		situacao string
	}{
		{"sem vencimento", nil, SituacaoVigente},
		{"vence em 90 dias", em(90), SituacaoVigente},
		{"vence em 10 dias", em(10), SituacaoVencendo},
		{"venceu ontem", em(-1), SituacaoVencido},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			doc := Document{ExpiresAt: tc.expira}
			assert.Equal(t, tc.situacao, doc.Situacao(now))
		})
	}
}
