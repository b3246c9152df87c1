package financeiro

import (
	"context"
	"time"

	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	domfin "github.com/jhoicas/Financeiro-api/internal/domain/financeiro"
	"github.com/jhoicas/Financeiro-api/internal/domain/repository"
)

// TitulosReport datos de entrada de un exportador.
type TitulosReport struct {
	Titulos  []*entity.Titulo
	Totais   domfin.Totais
	Filtro   repository.TituloFilter
	GeradoEm time.Time
}

// TitulosExporter genera un archivo descargable con la lista de títulos.
// Lo implementan infrastructure/xlsx y infrastructure/pdf.
type TitulosExporter interface {
	Export(ctx context.Context, report TitulosReport) ([]byte, error)
	ContentType() string
	Extension() string
}
