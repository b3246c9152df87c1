package postgres_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Financeiro-api/internal/domain/financeiro"
	"github.com/jhoicas/Financeiro-api/internal/domain/repository"
	"github.com/jhoicas/Financeiro-api/internal/infrastructure/postgres"
)

const basePredicates = "ID_SISTEMA = $1 AND SANKHYA_ATUAL = 'S'"

func int64Ptr(v int64) *int64 { return &v }

func TestBuildWhere_SoloBase(t *testing.T) {
	where, args := postgres.BuildWhere(repository.TituloFilter{
		IDEmpresa: 7,
		Status:    financeiro.StatusTodos,
		Tipo:      financeiro.TipoTodos,
	})
	assert.Equal(t, basePredicates, where)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestBuildWhere_EjemploStatusRealTipoBaixado(t *testing.T) {
	where, args := postgres.BuildWhere(repository.TituloFilter{
		IDEmpresa: 7,
		Status:    financeiro.StatusReal,
		Tipo:      financeiro.TipoBaixado,
	})
	assert.Equal(t, basePredicates+" AND PROVISAO = 'N' AND RECDESP = 0", where)
	assert.Len(t, args, 1, "los filtros tri-estado no agregan binds")
}

func TestBuildWhere_TodosLosFiltros(t *testing.T) {
	where, args := postgres.BuildWhere(repository.TituloFilter{
		IDEmpresa:  7,
		CodParc:    int64Ptr(1234),
		DataInicio: "2024-01-01",
		DataFim:    "2024-01-31",
		Status:     financeiro.StatusProvisao,
		Tipo:       financeiro.TipoAberto,
	})
	assert.Equal(t, basePredicates+
		" AND CODPARC = $2"+
		" AND DTNEG >= TO_DATE($3, 'YYYY-MM-DD')"+
		" AND DTNEG <= TO_DATE($4, 'YYYY-MM-DD')"+
		" AND PROVISAO = 'S'"+
		" AND RECDESP = 1", where)
	assert.Equal(t, []any{int64(7), int64(1234), "2024-01-01", "2024-01-31"}, args)
}

// Cada combinación de filtros produce exactamente un predicado por filtro presente.
func TestBuildWhere_UnPredicadoPorFiltro(t *testing.T) {
	statuses := []financeiro.StatusFinanceiro{financeiro.StatusReal, financeiro.StatusProvisao, financeiro.StatusTodos}
	tipos := []financeiro.TipoFinanceiro{financeiro.TipoAberto, financeiro.TipoBaixado, financeiro.TipoTodos}

	for mask := 0; mask < 8; mask++ {
		for _, st := range statuses {
			for _, tp := range tipos {
				f := repository.TituloFilter{IDEmpresa: 1, Status: st, Tipo: tp}
				want := 2
				if mask&1 != 0 {
					f.CodParc = int64Ptr(10)
					want++
				}
				if mask&2 != 0 {
					f.DataInicio = "2024-02-01"
					want++
				}
				if mask&4 != 0 {
					f.DataFim = "2024-02-29"
					want++
				}
				if st != financeiro.StatusTodos {
					want++
				}
				if tp != financeiro.TipoTodos {
					want++
				}

				where, args := postgres.BuildWhere(f)
				parts := strings.Split(where, " AND ")
				assert.Len(t, parts, want, "where=%s", where)
				assert.Equal(t, "ID_SISTEMA = $1", parts[0])
				assert.Equal(t, "SANKHYA_ATUAL = 'S'", parts[1])
				assert.Len(t, args, 1+bitCount(mask))
				assert.Equal(t, st == financeiro.StatusTodos, !strings.Contains(where, "PROVISAO"))
				assert.Equal(t, tp == financeiro.TipoTodos, !strings.Contains(where, "RECDESP"))
			}
		}
	}
}

func bitCount(n int) int {
	c := 0
	for ; n > 0; n >>= 1 {
		c += n & 1
	}
	return c
}

func TestBuildTitulosQuery_OrdenSinLimite(t *testing.T) {
	query, _ := postgres.BuildTitulosQuery(repository.TituloFilter{IDEmpresa: 1})
	assert.Contains(t, query, "FROM AS_FINANCEIRO")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(query), "ORDER BY DTVENC DESC"))
	assert.NotContains(t, strings.ToUpper(query), "LIMIT")
}

// ── Querier falso ─────────────────────────────────────────────────────────────

// Pool y tx siguen sirviendo como Querier; el fake solo necesita Query.
var (
	_ postgres.Querier = (*pgxpool.Pool)(nil)
	_ postgres.Querier = (pgx.Tx)(nil)
	_ postgres.Querier = failingQuerier{}
)

type failingQuerier struct{ err error }

func (f failingQuerier) Query(context.Context, string, ...any) (pgx.Rows, error) { return nil, f.err }

func TestFindTitulosReceber_PropagaErrorDeConsulta(t *testing.T) {
	boom := errors.New("ORA-00942: tabela ou view não existe")
	repo := postgres.NewTituloRepository(failingQuerier{err: boom})

	_, err := repo.FindTitulosReceber(context.Background(), repository.TituloFilter{IDEmpresa: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "ORA-00942")
}
