package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier lectura sobre pool o tx. El servicio es de solo lectura: no expone Exec.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}
