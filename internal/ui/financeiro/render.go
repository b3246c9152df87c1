package financeiro

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Financeiro-api/internal/application/dto"
	"github.com/jhoicas/Financeiro-api/pkg/format"
)

// RenderTable escribe la lista completa, sin paginar.
func RenderTable(w io.Writer, titulos []dto.TituloDTO) error {
	if len(titulos) == 0 {
		_, err := fmt.Fprintln(w, msgNenhumTitulo)
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Nº Título\tParceiro\tValor\tVencimento\tNegociação\tTipo\tStatus\tFinanceiro")
	for _, t := range titulos {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.NroTitulo,
			t.Parceiro,
			format.BRL(t.Valor),
			format.DateISO(t.DataVencimento),
			format.DateISO(t.DataNegociacao),
			orEmpty(t.TipoTitulo),
			t.Status,
			t.TipoFinanceiro,
		)
	}
	return tw.Flush()
}

// Badges línea de resumen: "2 Real 1 Provisão • 1 Aberto 2 Baixado".
func Badges(t dto.TotaisDTO) string {
	return fmt.Sprintf("%d Real %d Provisão • %d Aberto %d Baixado", t.Real, t.Provisao, t.Aberto, t.Baixado)
}

// RenderDetails escribe el detalle de un título con sus datos de boleto.
func RenderDetails(w io.Writer, t dto.TituloDTO) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Nº Título", t.NroTitulo},
		{"Parceiro", fmt.Sprintf("%s (%s)", t.Parceiro, t.CodParceiro)},
		{"Valor", format.BRL(t.Valor)},
		{"Valor baixa", format.BRL(t.ValorBaixa)},
		{"Juros", format.BRL(t.ValorJuros)},
		{"Vencimento", format.DateISO(t.DataVencimento)},
		{"Negociação", format.DateISO(t.DataNegociacao)},
		{"Status", t.Status},
		{"Tipo financeiro", t.TipoFinanceiro},
		{"Tipo de título", orEmpty(t.TipoTitulo)},
		{"Parcela", orEmpty(t.NumeroParcela)},
		{"Conta bancária", orEmpty(t.ContaBancaria)},
		{"Histórico", orEmpty(t.Historico)},
		{"Origem", orEmpty(t.OrigemFinanceiro)},
		{"Empresa", fmt.Sprint(t.CodigoEmpresa)},
		{"Natureza", fmt.Sprint(t.CodigoNatureza)},
	}
	if ShowBoleto(t) {
		rows = append(rows,
			[2]string{"Nosso número", format.Opt(t.Boleto.NossoNumero)},
			[2]string{"Linha digitável", format.Opt(t.Boleto.LinhaDigitavel)},
			[2]string{"Código de barras", format.Opt(t.Boleto.CodigoBarras)},
			[2]string{"Remessa", format.Opt(t.Boleto.NumeroRemessa)},
		)
	}
	for _, r := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", r[0], r[1])
	}
	return tw.Flush()
}

// Total suma de valores de la lista.
func Total(titulos []dto.TituloDTO) decimal.Decimal {
	sum := decimal.Zero
	for _, t := range titulos {
		sum = sum.Add(t.Valor)
	}
	return sum
}

func orEmpty(s string) string {
	if strings.TrimSpace(s) == "" {
		return format.Empty
	}
	return s
}
