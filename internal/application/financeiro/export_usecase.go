package financeiro

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/Financeiro-api/internal/application/dto"
	"github.com/jhoicas/Financeiro-api/internal/domain"
	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
)

// ExportFile archivo generado listo para enviarse como adjunto.
type ExportFile struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ExportUseCase exporta la misma consulta de la pantalla a XLSX o PDF.
type ExportUseCase struct {
	titulos   *TitulosReceberUseCase
	exporters map[string]TitulosExporter
	now       func() time.Time
}

// NewExportUseCase registra los exportadores por su extensión ("xlsx", "pdf").
func NewExportUseCase(titulos *TitulosReceberUseCase, exporters ...TitulosExporter) *ExportUseCase {
	m := make(map[string]TitulosExporter, len(exporters))
	for _, e := range exporters {
		m[e.Extension()] = e
	}
	return &ExportUseCase{titulos: titulos, exporters: m, now: time.Now}
}

// Export ejecuta la búsqueda con los filtros recibidos y genera el archivo.
// Un formato desconocido es domain.ErrInvalidInput.
func (uc *ExportUseCase) Export(ctx context.Context, session entity.Session, req dto.ExportRequest) (*ExportFile, error) {
	formato := strings.ToLower(strings.TrimSpace(req.Formato))
	if formato == "" {
		formato = "xlsx"
	}
	exporter, ok := uc.exporters[formato]
	if !ok {
		return nil, fmt.Errorf("%w: formato %q (use xlsx ou pdf)", domain.ErrInvalidInput, req.Formato)
	}

	titulos, totais, filtro, err := uc.titulos.Find(ctx, session, req.TitulosReceberRequest)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	content, err := exporter.Export(ctx, TitulosReport{
		Titulos:  titulos,
		Totais:   totais,
		Filtro:   filtro,
		GeradoEm: now,
	})
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", formato, err)
	}

	return &ExportFile{
		Content:     content,
		ContentType: exporter.ContentType(),
		Filename:    fmt.Sprintf("titulos_receber_%s.%s", now.Format("20060102_150405"), exporter.Extension()),
	}, nil
}
