// Package pdf genera el relatório de títulos a receber en PDF con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título del relatório  │  Fecha de generación        │
//	│  FILTROS: parceiro / período / tipo / status                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nº | Parceiro | Vencimento | Negociação | Valor | Tipo│
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Real / Provisão / Aberto / Baixado / Soma          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	appfin "github.com/jhoicas/Financeiro-api/internal/application/financeiro"
	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	"github.com/jhoicas/Financeiro-api/pkg/format"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 35, Green: 55, Blue: 79}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ appfin.TitulosExporter = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa financeiro.TitulosExporter usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// ContentType MIME del archivo generado.
func (g *MarotoReportGenerator) ContentType() string { return "application/pdf" }

// Extension extensión usada como clave de formato.
func (g *MarotoReportGenerator) Extension() string { return "pdf" }

// Export genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) Export(_ context.Context, report appfin.TitulosReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Títulos a Receber", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(filtrosRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	if len(report.Titulos) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhum título encontrado.", props.Text{Align: align.Center, Top: 3, Color: colorGray}),
		)))
	}
	for _, t := range report.Titulos {
		m.AddRows(tableDetailRow(t))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report appfin.TitulosReport) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Financeiro", props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Títulos a receber", props.Text{Size: 9, Top: 8, Color: colorGray}),
		),
		col.New(4).Add(
			text.New("Gerado em "+report.GeradoEm.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func filtrosRow(report appfin.TitulosReport) core.Row {
	f := report.Filtro
	parceiro := "Todos"
	if f.CodParc != nil {
		parceiro = strconv.FormatInt(*f.CodParc, 10)
	}
	periodo := format.DateISO(f.DataInicio) + " a " + format.DateISO(f.DataFim)
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf("Parceiro: %s   |   Negociação: %s   |   Tipo: %s   |   Status: %s",
			parceiro, periodo, f.Tipo.Label(), f.Status.Label(),
		), props.Text{Size: 8, Top: 2, Color: colorGray}),
	))
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Nº Título", 1, align.Left),
		h("Parceiro", 4, align.Left),
		h("Vencimento", 2, align.Center),
		h("Negociação", 2, align.Center),
		h("Valor", 2, align.Right),
		h("Tipo", 1, align.Center),
	).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

func tableDetailRow(t *entity.Titulo) core.Row {
	tipo := "Prov."
	if t.IsReal() {
		tipo = "Real"
	}
	cell := func(s string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
	}
	return row.New(6).Add(
		cell(strconv.FormatInt(t.NuFin, 10), 1, align.Left),
		cell(t.NomeParc, 4, align.Left),
		cell(format.Date(t.DtVenc), 2, align.Center),
		cell(format.Date(t.DtNeg), 2, align.Center),
		cell(format.BRL(t.VlrDesdob), 2, align.Right),
		cell(tipo, 1, align.Center),
	)
}

func totalsRow(report appfin.TitulosReport) core.Row {
	soma := decimal.Zero
	for _, t := range report.Titulos {
		soma = soma.Add(t.VlrDesdob)
	}
	tot := report.Totais
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Right: 2, Align: align.Right})
	}
	return row.New(12).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("%d Real   %d Provisão   •   %d Aberto   %d Baixado",
				tot.Real, tot.Provisao, tot.Aberto, tot.Baixado,
			), props.Text{Size: 9, Top: 3, Color: colorPrimary}),
		),
		col.New(4).Add(label("Total: "+format.BRL(soma))),
	)
}
