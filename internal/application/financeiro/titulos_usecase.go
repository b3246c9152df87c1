// Package financeiro orquesta la consulta de títulos a receber: valida filtros,
// arma el criterio de búsqueda, consulta el repositorio y totaliza.
package financeiro

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/Financeiro-api/internal/application/dto"
	"github.com/jhoicas/Financeiro-api/internal/domain"
	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	domfin "github.com/jhoicas/Financeiro-api/internal/domain/financeiro"
	"github.com/jhoicas/Financeiro-api/internal/domain/repository"
	"github.com/jhoicas/Financeiro-api/pkg/logger"
)

const dateLayout = "2006-01-02"

// TitulosReceberUseCase consulta de títulos a receber por empresa.
type TitulosReceberUseCase struct {
	repo repository.TituloRepository
	log  *logger.Logger
}

// NewTitulosReceberUseCase construye el caso de uso.
func NewTitulosReceberUseCase(repo repository.TituloRepository, log *logger.Logger) *TitulosReceberUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TitulosReceberUseCase{repo: repo, log: log.Component("FINANCEIRO")}
}

// BuildFilter valida sesión y parámetros y devuelve el criterio de búsqueda.
//
// Retorna:
//   - domain.ErrInvalidTenant si la sesión no trae ID_EMPRESA numérico.
//   - domain.ErrInvalidInput  si algún parámetro no tiene el formato esperado.
func BuildFilter(session entity.Session, req dto.TitulosReceberRequest) (repository.TituloFilter, error) {
	var f repository.TituloFilter

	idEmpresa, err := strconv.ParseInt(strings.TrimSpace(session.IDEmpresa), 10, 64)
	if err != nil {
		return f, domain.ErrInvalidTenant
	}
	f.IDEmpresa = idEmpresa

	if cod := strings.TrimSpace(req.CodParceiro); cod != "" {
		n, err := strconv.ParseInt(cod, 10, 64)
		if err != nil {
			return f, fmt.Errorf("%w: codParceiro %q", domain.ErrInvalidInput, req.CodParceiro)
		}
		f.CodParc = &n
	}

	if f.DataInicio, err = parseDate("dataNegociacaoInicio", req.DataNegociacaoInicio); err != nil {
		return f, err
	}
	if f.DataFim, err = parseDate("dataNegociacaoFinal", req.DataNegociacaoFinal); err != nil {
		return f, err
	}

	if f.Status, err = domfin.ParseStatusFinanceiro(strings.TrimSpace(req.StatusFinanceiro)); err != nil {
		return f, err
	}
	if f.Tipo, err = domfin.ParseTipoFinanceiro(strings.TrimSpace(req.TipoFinanceiro)); err != nil {
		return f, err
	}
	return f, nil
}

// parseDate solo valida el formato; la conversión a DATE la hace la base (TO_DATE).
func parseDate(name, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %s %q (formato YYYY-MM-DD)", domain.ErrInvalidInput, name, s)
	}
	return s, nil
}

// Find ejecuta la búsqueda y devuelve las entidades con sus totales.
func (uc *TitulosReceberUseCase) Find(
	ctx context.Context,
	session entity.Session,
	req dto.TitulosReceberRequest,
) ([]*entity.Titulo, domfin.Totais, repository.TituloFilter, error) {
	uc.log.Debug().
		Str("codParceiro", req.CodParceiro).
		Str("dataInicio", req.DataNegociacaoInicio).
		Str("dataFim", req.DataNegociacaoFinal).
		Str("tipoFinanceiro", req.TipoFinanceiro).
		Str("statusFinanceiro", req.StatusFinanceiro).
		Msg("parâmetros recebidos")

	f, err := BuildFilter(session, req)
	if err != nil {
		return nil, domfin.Totais{}, f, err
	}

	titulos, err := uc.repo.FindTitulosReceber(ctx, f)
	if err != nil {
		uc.log.Error().Err(err).Int64("idEmpresa", f.IDEmpresa).Msg("erro ao buscar títulos")
		return nil, domfin.Totais{}, f, err
	}

	totais := domfin.Tally(titulos)
	uc.log.Debug().
		Int64("idEmpresa", f.IDEmpresa).
		Int("titulos", len(titulos)).
		Int("real", totais.Real).
		Int("provisao", totais.Provisao).
		Int("aberto", totais.Aberto).
		Int("baixado", totais.Baixado).
		Msg("totais calculados")
	return titulos, totais, f, nil
}

// List devuelve la respuesta JSON de la pantalla. titulos nunca es nil.
func (uc *TitulosReceberUseCase) List(
	ctx context.Context,
	session entity.Session,
	req dto.TitulosReceberRequest,
) (*dto.TitulosReceberResponse, error) {
	titulos, totais, _, err := uc.Find(ctx, session, req)
	if err != nil {
		return nil, err
	}
	out := make([]dto.TituloDTO, 0, len(titulos))
	for _, t := range titulos {
		out = append(out, ToTituloDTO(t))
	}
	return &dto.TitulosReceberResponse{
		Titulos: out,
		Totais: dto.TotaisDTO{
			Real:     totais.Real,
			Provisao: totais.Provisao,
			Aberto:   totais.Aberto,
			Baixado:  totais.Baixado,
		},
	}, nil
}

// ToTituloDTO convierte la fila del ERP al modelo de la pantalla.
func ToTituloDTO(t *entity.Titulo) dto.TituloDTO {
	status := "Baixado"
	if t.IsAberto() {
		status = "Aberto"
	}
	tipo := "Provisão"
	if t.IsReal() {
		tipo = "Real"
	}
	return dto.TituloDTO{
		NroTitulo:        strconv.FormatInt(t.NuFin, 10),
		Parceiro:         t.NomeParc,
		CodParceiro:      strconv.FormatInt(t.CodParc, 10),
		Valor:            t.VlrDesdob,
		ValorBaixa:       t.VlrBaixa,
		ValorJuros:       t.VlrJuro,
		DataVencimento:   formatDate(t.DtVenc),
		DataNegociacao:   formatDate(t.DtNeg),
		Status:           status,
		TipoFinanceiro:   tipo,
		TipoTitulo:       t.TipoTitulo,
		ContaBancaria:    t.ContaBancaria,
		Historico:        t.Historico,
		NumeroParcela:    t.Desdobramento,
		OrigemFinanceiro: t.Origem,
		CodigoEmpresa:    t.CodEmp,
		CodigoNatureza:   t.CodNat,
		NuNota:           t.NuNota,
		NumNota:          t.NumNota,
		CodTipOper:       t.CodTipOper,
		Boleto: dto.BoletoDTO{
			CodigoBarras:   t.Boleto.CodigoBarras,
			NossoNumero:    t.Boleto.NossoNumero,
			LinhaDigitavel: t.Boleto.LinhaDigitavel,
			NumeroRemessa:  t.Boleto.NumeroRemessa,
		},
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}
