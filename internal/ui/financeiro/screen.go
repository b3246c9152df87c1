// Package financeiro es la pantalla de títulos a receber: busca de parceiros sobre el caché,
// filtros, búsqueda contra el portal, detalle y descarga de boletos.
package financeiro

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/Financeiro-api/internal/application/dto"
	"github.com/jhoicas/Financeiro-api/internal/domain"
	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	domfin "github.com/jhoicas/Financeiro-api/internal/domain/financeiro"
	"github.com/jhoicas/Financeiro-api/pkg/logger"
)

// Mensajes que ve el usuario.
const (
	msgNenhumTitulo  = "Nenhum título encontrado"
	msgErroTitulos   = "Erro ao carregar títulos. Tente novamente."
	msgBoletoOK      = "Boleto baixado com sucesso!"
	msgErroBoleto    = "Erro ao baixar boleto. Tente novamente."
	msgTitulosFormat = "%d título(s) encontrado(s)"
)

// Screen estado de la pantalla. Seguro para uso concurrente.
type Screen struct {
	cache  CacheProvider
	api    TitulosAPI
	notify Notifier
	log    *logger.Logger

	mu          sync.Mutex
	parceiros   []entity.Parceiro // snapshot del caché
	sugestoes   []entity.Parceiro
	searchText  string
	selecionado string // CODPARC

	dataInicio string
	dataFim    string
	tipo       domfin.TipoFinanceiro
	status     domfin.StatusFinanceiro

	titulos  []dto.TituloDTO
	totais   dto.TotaisDTO
	loading  bool
	detalhes *dto.TituloDTO
}

// NewScreen arma la pantalla con filtros en "Todos".
func NewScreen(cache CacheProvider, api TitulosAPI, notify Notifier, log *logger.Logger) *Screen {
	if log == nil {
		log = logger.Nop()
	}
	return &Screen{
		cache:   cache,
		api:     api,
		notify:  notify,
		log:     log.Component("SCREEN"),
		tipo:    domfin.TipoTodos,
		status:  domfin.StatusTodos,
		titulos: []dto.TituloDTO{},
	}
}

// ── Parceiros ─────────────────────────────────────────────────────────────────

// LoadPartners lee el caché una vez. Un payload corrupto se descarta y la clave se elimina.
func (s *Screen) LoadPartners() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.parceiros = nil
	raw, ok := s.cache.Get(CachedParceirosKey)
	if !ok {
		s.log.Warn().Msg("cache de parceiros vazio")
		return 0
	}
	parceiros, skipped, err := DecodePartners(raw)
	if err != nil {
		s.log.Error().Err(err).Msg("erro ao parsear cache de parceiros")
		if rmErr := s.cache.Remove(CachedParceirosKey); rmErr != nil {
			s.log.Warn().Err(rmErr).Msg("não foi possível remover o cache")
		}
		return 0
	}
	if skipped > 0 {
		s.log.Debug().Int("descartados", skipped).Msg("parceiros ilegíveis ignorados")
	}
	s.parceiros = parceiros
	s.log.Debug().Int("parceiros", len(parceiros)).Msg("parceiros do cache")
	return len(parceiros)
}

// SearchPartners actualiza el texto de búsqueda y las sugerencias. Editar el texto descarta la selección.
func (s *Screen) SearchPartners(term string) []entity.Parceiro {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.searchText = term
	s.selecionado = ""
	s.sugestoes = FilterPartners(s.parceiros, term)
	return append([]entity.Parceiro(nil), s.sugestoes...)
}

// SelectPartner confirma un parceiro de las sugerencias actuales.
func (s *Screen) SelectPartner(codParc string) (entity.Parceiro, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, p := range s.sugestoes {
		if p.CodParc == codParc {
			s.selecionado = p.CodParc
			s.searchText = p.NomeParc
			s.sugestoes = nil
			return p, nil
		}
	}
	return entity.Parceiro{}, fmt.Errorf("%w: parceiro %q", domain.ErrNotFound, codParc)
}

// ── Filtros ───────────────────────────────────────────────────────────────────

// SetDateRange fechas YYYY-MM-DD; vacío quita el límite.
func (s *Screen) SetDateRange(inicio, fim string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dataInicio, s.dataFim = inicio, fim
}

func (s *Screen) SetTipoFinanceiro(t domfin.TipoFinanceiro) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tipo = t
}

func (s *Screen) SetStatusFinanceiro(st domfin.StatusFinanceiro) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = st
}

// CanSearch hay parceiro seleccionado y ninguna búsqueda en curso.
func (s *Screen) CanSearch() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selecionado != "" && !s.loading
}

// ── Búsqueda ──────────────────────────────────────────────────────────────────

// Search consulta el portal con el parceiro y los filtros actuales.
// Si falla, la lista anterior se conserva.
func (s *Screen) Search(ctx context.Context) error {
	s.mu.Lock()
	if s.selecionado == "" {
		s.mu.Unlock()
		s.notify.Error(domain.ErrPartnerRequired.Error())
		return domain.ErrPartnerRequired
	}
	q := Query{
		CodParceiro:          s.selecionado,
		DataNegociacaoInicio: s.dataInicio,
		DataNegociacaoFinal:  s.dataFim,
		TipoFinanceiro:       s.tipo.String(),
		StatusFinanceiro:     s.status.String(),
	}
	s.loading = true
	s.mu.Unlock()

	resp, err := s.api.ListTitulos(ctx, q)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.mu.Unlock()
		s.log.Error().Err(err).Str("codParceiro", q.CodParceiro).Msg("erro ao carregar títulos")
		s.notify.Error(msgErroTitulos)
		return err
	}
	s.titulos = resp.Titulos
	if s.titulos == nil {
		s.titulos = []dto.TituloDTO{}
	}
	s.totais = resp.Totais
	n := len(s.titulos)
	s.mu.Unlock()

	if n > 0 {
		s.notify.Success(fmt.Sprintf(msgTitulosFormat, n))
	} else {
		s.notify.Info(msgNenhumTitulo)
	}
	return nil
}

// ── Detalle y boleto ──────────────────────────────────────────────────────────

// OpenDetails abre el detalle de un título de la lista actual.
func (s *Screen) OpenDetails(nroTitulo string) (dto.TituloDTO, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.titulos {
		if s.titulos[i].NroTitulo == nroTitulo {
			t := s.titulos[i]
			s.detalhes = &t
			return t, nil
		}
	}
	return dto.TituloDTO{}, fmt.Errorf("%w: título %q", domain.ErrNotFound, nroTitulo)
}

func (s *Screen) CloseDetails() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detalhes = nil
}

// ShowBoleto el botón de boleto solo aparece para títulos tipo Boleto con nosso número.
func ShowBoleto(t dto.TituloDTO) bool {
	return t.TipoTitulo == entity.TipoTituloBoleto && t.Boleto.NossoNumero != nil && *t.Boleto.NossoNumero != ""
}

// DownloadBoleto baja el PDF y lo escribe como boleto_{nroTitulo}.pdf en dir. Sin reintentos.
func (s *Screen) DownloadBoleto(ctx context.Context, t dto.TituloDTO, dir string) (string, error) {
	content, err := s.api.DownloadBoleto(ctx, t.NroTitulo)
	if err == nil {
		path := filepath.Join(dir, fmt.Sprintf("boleto_%s.pdf", t.NroTitulo))
		if err = os.WriteFile(path, content, 0o644); err == nil {
			s.notify.Success(msgBoletoOK)
			return path, nil
		}
	}
	s.log.Error().Err(err).Str("nroTitulo", t.NroTitulo).Msg("erro ao baixar boleto")
	s.notify.Error(msgErroBoleto)
	return "", err
}

// ── Snapshot ──────────────────────────────────────────────────────────────────

// State copia del estado visible de la pantalla.
type State struct {
	SearchText  string
	Sugestoes   []entity.Parceiro
	Selecionado string
	DataInicio  string
	DataFim     string
	Tipo        domfin.TipoFinanceiro
	Status      domfin.StatusFinanceiro
	Titulos     []dto.TituloDTO
	Totais      dto.TotaisDTO
	Loading     bool
	Detalhes    *dto.TituloDTO
}

func (s *Screen) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := State{
		SearchText:  s.searchText,
		Sugestoes:   append([]entity.Parceiro(nil), s.sugestoes...),
		Selecionado: s.selecionado,
		DataInicio:  s.dataInicio,
		DataFim:     s.dataFim,
		Tipo:        s.tipo,
		Status:      s.status,
		Titulos:     append([]dto.TituloDTO{}, s.titulos...),
		Totais:      s.totais,
		Loading:     s.loading,
	}
	if s.detalhes != nil {
		d := *s.detalhes
		st.Detalhes = &d
	}
	return st
}
