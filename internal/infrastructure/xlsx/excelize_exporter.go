// Package xlsx exporta la lista de títulos a una planilla Excel usando excelize.
package xlsx

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	appfin "github.com/jhoicas/Financeiro-api/internal/application/financeiro"
	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	"github.com/jhoicas/Financeiro-api/pkg/format"
)

const (
	sheetTitulos = "Titulos"
	sheetTotais  = "Totais"

	contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var _ appfin.TitulosExporter = (*ExcelizeExporter)(nil)

var headers = []string{
	"Nº Título", "Cód. Parceiro", "Parceiro", "Vencimento", "Negociação",
	"Valor", "Valor Baixa", "Juros", "Status", "Tipo Financeiro", "Tipo Título", "Nosso Número",
}

// ExcelizeExporter implementa financeiro.TitulosExporter.
type ExcelizeExporter struct{}

// NewExcelizeExporter construye el exportador.
func NewExcelizeExporter() *ExcelizeExporter { return &ExcelizeExporter{} }

// ContentType MIME del archivo generado.
func (e *ExcelizeExporter) ContentType() string { return contentType }

// Extension extensión usada como clave de formato.
func (e *ExcelizeExporter) Extension() string { return "xlsx" }

// Export genera el libro con una hoja de títulos y otra de totales.
func (e *ExcelizeExporter) Export(_ context.Context, report appfin.TitulosReport) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheetTitulos); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"23374F"}, Pattern: 1},
	})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo moneda: %w", err)
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetTitulos, cell, h); err != nil {
			return nil, fmt.Errorf("xlsx: cabecera: %w", err)
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetCellStyle(sheetTitulos, "A1", lastCol+"1", headerStyle); err != nil {
		return nil, fmt.Errorf("xlsx: estilo cabecera: %w", err)
	}

	for i, t := range report.Titulos {
		if err := writeRow(f, i+2, t); err != nil {
			return nil, err
		}
	}
	if n := len(report.Titulos); n > 0 {
		last := strconv.Itoa(n + 1)
		if err := f.SetCellStyle(sheetTitulos, "F2", "H"+last, moneyStyle); err != nil {
			return nil, fmt.Errorf("xlsx: estilo moneda: %w", err)
		}
	}
	_ = f.SetColWidth(sheetTitulos, "A", "B", 14)
	_ = f.SetColWidth(sheetTitulos, "C", "C", 40)
	_ = f.SetColWidth(sheetTitulos, "D", "L", 16)

	if err := writeTotais(f, report); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, row int, t *entity.Titulo) error {
	status := "Baixado"
	if t.IsAberto() {
		status = "Aberto"
	}
	tipo := "Provisão"
	if t.IsReal() {
		tipo = "Real"
	}
	values := []any{
		t.NuFin,
		t.CodParc,
		t.NomeParc,
		format.Date(t.DtVenc),
		format.Date(t.DtNeg),
		t.VlrDesdob.InexactFloat64(),
		t.VlrBaixa.InexactFloat64(),
		t.VlrJuro.InexactFloat64(),
		status,
		tipo,
		t.TipoTitulo,
		format.Opt(t.Boleto.NossoNumero),
	}
	cell, _ := excelize.CoordinatesToCellName(1, row)
	if err := f.SetSheetRow(sheetTitulos, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", row, err)
	}
	return nil
}

func writeTotais(f *excelize.File, report appfin.TitulosReport) error {
	if _, err := f.NewSheet(sheetTotais); err != nil {
		return fmt.Errorf("xlsx: hoja totales: %w", err)
	}
	rows := [][]any{
		{"Gerado em", report.GeradoEm.Format("02/01/2006 15:04")},
		{"Títulos", len(report.Titulos)},
		{"Real", report.Totais.Real},
		{"Provisão", report.Totais.Provisao},
		{"Aberto", report.Totais.Aberto},
		{"Baixado", report.Totais.Baixado},
	}
	for i, r := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheetTotais, cell, &r); err != nil {
			return fmt.Errorf("xlsx: totales: %w", err)
		}
	}
	_ = f.SetColWidth(sheetTotais, "A", "A", 14)
	return nil
}
