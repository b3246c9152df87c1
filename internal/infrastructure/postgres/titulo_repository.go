package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	"github.com/jhoicas/Financeiro-api/internal/domain/financeiro"
	"github.com/jhoicas/Financeiro-api/internal/domain/repository"
)

var _ repository.TituloRepository = (*TituloRepo)(nil)

const selectTitulos = `
	SELECT
	    NUFIN,
	    CODPARC,
	    COALESCE(NOMEPARC, '')        AS NOMEPARC,
	    DTVENC,
	    DTNEG,
	    COALESCE(VLRDESDOB, 0)        AS VLRDESDOB,
	    COALESCE(VLRBAIXA, 0)         AS VLRBAIXA,
	    COALESCE(VLRJURO, 0)          AS VLRJURO,
	    COALESCE(PROVISAO, '')        AS PROVISAO,
	    COALESCE(RECDESP, 0)          AS RECDESP,
	    NUNOTA,
	    NUMNOTA,
	    CODTIPOPER,
	    COALESCE(DESDOBRAMENTO::TEXT, '') AS DESDOBRAMENTO,
	    COALESCE(DESCRTIPTIT, '')     AS DESCRTIPTIT,
	    COALESCE(CODCTABCOINT::TEXT, '') AS CODCTABCOINT,
	    COALESCE(HISTORICO, '')       AS HISTORICO,
	    COALESCE(CODEMP, 0)           AS CODEMP,
	    COALESCE(CODNAT, 0)           AS CODNAT,
	    COALESCE(ORIGEM, '')          AS ORIGEM,
	    CODIGOBARRA::TEXT    AS CODIGOBARRA,
	    NOSSONUM::TEXT       AS NOSSONUM,
	    LINHADIGITAVEL::TEXT AS LINHADIGITAVEL,
	    NUMREMESSA::TEXT     AS NUMREMESSA
	FROM AS_FINANCEIRO`

// TituloRepo lee títulos de la vista AS_FINANCEIRO (réplica del ERP Sankhya).
type TituloRepo struct {
	q Querier
}

// NewTituloRepository construye el adaptador sobre pool o tx.
func NewTituloRepository(q Querier) *TituloRepo {
	return &TituloRepo{q: q}
}

// BuildWhere arma los predicados y los binds en orden. Tenant y SANKHYA_ATUAL siempre van;
// cada filtro opcional agrega exactamente un predicado.
func BuildWhere(f repository.TituloFilter) (string, []any) {
	args := []any{f.IDEmpresa}
	criterios := []string{"ID_SISTEMA = $1", "SANKHYA_ATUAL = 'S'"}

	bind := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.CodParc != nil {
		criterios = append(criterios, "CODPARC = "+bind(*f.CodParc))
	}
	if f.DataInicio != "" {
		criterios = append(criterios, "DTNEG >= TO_DATE("+bind(f.DataInicio)+", 'YYYY-MM-DD')")
	}
	if f.DataFim != "" {
		criterios = append(criterios, "DTNEG <= TO_DATE("+bind(f.DataFim)+", 'YYYY-MM-DD')")
	}

	switch f.Status {
	case financeiro.StatusReal:
		criterios = append(criterios, "PROVISAO = 'N'")
	case financeiro.StatusProvisao:
		criterios = append(criterios, "PROVISAO = 'S'")
	}

	switch f.Tipo {
	case financeiro.TipoAberto:
		criterios = append(criterios, "RECDESP = 1")
	case financeiro.TipoBaixado:
		criterios = append(criterios, "RECDESP = 0")
	}

	return strings.Join(criterios, " AND "), args
}

// BuildTitulosQuery devuelve la consulta completa, ordenada por vencimiento descendente y sin límite.
func BuildTitulosQuery(f repository.TituloFilter) (string, []any) {
	where, args := BuildWhere(f)
	return selectTitulos + "\n\tWHERE " + where + "\n\tORDER BY DTVENC DESC", args
}

// FindTitulosReceber ejecuta la consulta y escanea todas las filas.
func (r *TituloRepo) FindTitulosReceber(ctx context.Context, f repository.TituloFilter) ([]*entity.Titulo, error) {
	query, args := BuildTitulosQuery(f)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("titulos.FindTitulosReceber: %w", err)
	}
	defer rows.Close()

	list := []*entity.Titulo{}
	for rows.Next() {
		var t entity.Titulo
		if err := rows.Scan(
			&t.NuFin,
			&t.CodParc,
			&t.NomeParc,
			&t.DtVenc,
			&t.DtNeg,
			&t.VlrDesdob,
			&t.VlrBaixa,
			&t.VlrJuro,
			&t.Provisao,
			&t.RecDesp,
			&t.NuNota,
			&t.NumNota,
			&t.CodTipOper,
			&t.Desdobramento,
			&t.TipoTitulo,
			&t.ContaBancaria,
			&t.Historico,
			&t.CodEmp,
			&t.CodNat,
			&t.Origem,
			&t.Boleto.CodigoBarras,
			&t.Boleto.NossoNumero,
			&t.Boleto.LinhaDigitavel,
			&t.Boleto.NumeroRemessa,
		); err != nil {
			return nil, fmt.Errorf("titulos.FindTitulosReceber scan: %w", err)
		}
		list = append(list, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("titulos.FindTitulosReceber rows: %w", err)
	}
	return list, nil
}
