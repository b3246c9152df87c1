package repository

import (
	"context"

	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	"github.com/jhoicas/Financeiro-api/internal/domain/financeiro"
)

// TituloFilter criterios de búsqueda de títulos a receber.
// Los campos puntero/vacíos no generan predicado.
type TituloFilter struct {
	IDEmpresa  int64
	CodParc    *int64
	DataInicio string // YYYY-MM-DD, inclusiva
	DataFim    string // YYYY-MM-DD, inclusiva
	Status     financeiro.StatusFinanceiro
	Tipo       financeiro.TipoFinanceiro
}

// TituloRepository puerto de lectura sobre la vista financiera del ERP.
type TituloRepository interface {
	FindTitulosReceber(ctx context.Context, f TituloFilter) ([]*entity.Titulo, error)
}
