package financeiro_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Financeiro-api/internal/domain"
	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	"github.com/jhoicas/Financeiro-api/internal/domain/financeiro"
)

func TestParseStatusFinanceiro(t *testing.T) {
	cases := map[string]financeiro.StatusFinanceiro{
		"":  financeiro.StatusTodos,
		"1": financeiro.StatusReal,
		"2": financeiro.StatusProvisao,
		"3": financeiro.StatusTodos,
	}
	for in, want := range cases {
		got, err := financeiro.ParseStatusFinanceiro(in)
		require.NoError(t, err, "valor %q", in)
		assert.Equal(t, want, got, "valor %q", in)
	}

	_, err := financeiro.ParseStatusFinanceiro("4")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestParseTipoFinanceiro(t *testing.T) {
	cases := map[string]financeiro.TipoFinanceiro{
		"":  financeiro.TipoTodos,
		"1": financeiro.TipoAberto,
		"2": financeiro.TipoBaixado,
		"3": financeiro.TipoTodos,
	}
	for in, want := range cases {
		got, err := financeiro.ParseTipoFinanceiro(in)
		require.NoError(t, err, "valor %q", in)
		assert.Equal(t, want, got, "valor %q", in)
	}

	_, err := financeiro.ParseTipoFinanceiro("abc")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestTally_SumasCoincidenConTotal(t *testing.T) {
	titulos := []*entity.Titulo{
		{NuFin: 1, Provisao: "N", RecDesp: 1},
		{NuFin: 2, Provisao: "S", RecDesp: 1},
		{NuFin: 3, Provisao: "N", RecDesp: 0},
		{NuFin: 4, Provisao: "", RecDesp: -1}, // valores inesperados cuentan como provisão / baixado
	}

	got := financeiro.Tally(titulos)

	assert.Equal(t, financeiro.Totais{Real: 2, Provisao: 2, Aberto: 2, Baixado: 2}, got)
	assert.Equal(t, len(titulos), got.Real+got.Provisao)
	assert.Equal(t, len(titulos), got.Aberto+got.Baixado)
}

func TestTally_Vacio(t *testing.T) {
	assert.Equal(t, financeiro.Totais{}, financeiro.Tally(nil))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Provisão", financeiro.StatusProvisao.Label())
	assert.Equal(t, "Baixado", financeiro.TipoBaixado.Label())
	assert.Equal(t, "Todos", financeiro.TipoTodos.Label())
	assert.Equal(t, "2", financeiro.StatusProvisao.String())
}
