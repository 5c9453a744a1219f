package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Jazyell94/delivery-system/models"
)

func TestNextStatus(t *testing.T) {
	cases := []struct {
		atual    models.Status
		esperado models.Status
	}{
		{models.StatusPendente, models.StatusEmAndamento},
		{models.StatusEmAndamento, models.StatusSaiuParaEntrega},
		{models.StatusSaiuParaEntrega, models.StatusEntregue},
		{models.StatusEntregue, models.StatusEntregue},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.esperado, models.NextStatus(tc.atual), "next(%q)", tc.atual)
	}
}

func TestNextStatusTerminalIsIdempotent(t *testing.T) {
	s := models.StatusEntregue
	for i := 0; i < 3; i++ {
		s = models.NextStatus(s)
		assert.Equal(t, models.StatusEntregue, s)
	}
}

func TestNextStatusUnknownPassesThrough(t *testing.T) {
	assert.Equal(t, models.Status("cancelado"), models.NextStatus("cancelado"))
	assert.Equal(t, models.Status(""), models.NextStatus(""))
}

func TestFormaPagamentoValida(t *testing.T) {
	assert.True(t, models.FormaPagamentoValida(models.PagamentoCartao))
	assert.True(t, models.FormaPagamentoValida(models.PagamentoPix))
	assert.True(t, models.FormaPagamentoValida(models.PagamentoDinheiro))
	assert.False(t, models.FormaPagamentoValida("Cheque"))
	assert.False(t, models.FormaPagamentoValida(""))
}
