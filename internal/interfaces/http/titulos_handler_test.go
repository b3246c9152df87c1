package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appfin "github.com/jhoicas/Financeiro-api/internal/application/financeiro"
	"github.com/jhoicas/Financeiro-api/internal/domain/entity"
	"github.com/jhoicas/Financeiro-api/internal/domain/repository"
	"github.com/jhoicas/Financeiro-api/internal/infrastructure/session"
	apphttp "github.com/jhoicas/Financeiro-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/Financeiro-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testSecret = "test-secret-key-for-unit-tests"
	testCookie = "user"
	testIssuer = "financeiro-test"
)

type fakeRepo struct {
	titulos []*entity.Titulo
	err     error
	calls   int
	got     repository.TituloFilter
}

func (f *fakeRepo) FindTitulosReceber(_ context.Context, filter repository.TituloFilter) ([]*entity.Titulo, error) {
	f.calls++
	f.got = filter
	return f.titulos, f.err
}

type fakeExporter struct{}

func (fakeExporter) Export(_ context.Context, r appfin.TitulosReport) ([]byte, error) {
	return []byte("rows:" + strconv.Itoa(len(r.Titulos))), nil
}
func (fakeExporter) ContentType() string { return "text/plain" }
func (fakeExporter) Extension() string   { return "txt" }

// buildTestApp monta el router real con el resolver JWT y un repositorio falso.
func buildTestApp(repo *fakeRepo) *fiber.App {
	app := fiber.New()
	titulos := appfin.NewTitulosReceberUseCase(repo, nil)
	apphttp.Router(app, apphttp.RouterDeps{
		TitulosUC:         titulos,
		ExportUC:          appfin.NewExportUseCase(titulos, fakeExporter{}),
		Sessions:          session.NewJWTResolver(testSecret),
		SessionCookieName: testCookie,
	})
	return app
}

func tokenFor(t *testing.T, idEmpresa string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testSecret, "1", idEmpresa, "Maria", testIssuer, 60)
	require.NoError(t, err)
	return tok
}

// portalToken firma el claim ID_EMPRESA con el tipo que use el portal (número, texto u otro).
func portalToken(t *testing.T, idEmpresa any) string {
	t.Helper()
	tok, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, gojwt.MapClaims{
		"user_id":    "1",
		"ID_EMPRESA": idEmpresa,
		"exp":        time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return tok
}

func doGet(t *testing.T, app *fiber.App, target, cookie string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: cookie})
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

func titulo(nufin int64, provisao string, recdesp int) *entity.Titulo {
	venc := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	return &entity.Titulo{
		NuFin:     nufin,
		CodParc:   1234,
		NomeParc:  "ACME LTDA",
		DtVenc:    &venc,
		VlrDesdob: decimal.RequireFromString("150.50"),
		Provisao:  provisao,
		RecDesp:   recdesp,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestList_SinCookie401(t *testing.T) {
	repo := &fakeRepo{}
	resp := doGet(t, buildTestApp(repo), "/api/sankhya/titulos-receber?codParceiro=1&statusFinanceiro=9", "")

	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	body := decode(t, resp)
	assert.NotEmpty(t, body["error"])
	assert.Zero(t, repo.calls, "sin sesión no se consulta la base")
}

func TestList_CookieInvalida401(t *testing.T) {
	resp := doGet(t, buildTestApp(&fakeRepo{}), "/api/sankhya/titulos-receber", "no-es-un-jwt")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_SESSION", decode(t, resp)["code"])
}

func TestList_SinEmpresa400(t *testing.T) {
	repo := &fakeRepo{}
	resp := doGet(t, buildTestApp(repo), "/api/sankhya/titulos-receber", tokenFor(t, ""))

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_TENANT", decode(t, resp)["code"])
	assert.Zero(t, repo.calls)
}

func TestList_EmpresaNoNumerica400(t *testing.T) {
	resp := doGet(t, buildTestApp(&fakeRepo{}), "/api/sankhya/titulos-receber", tokenFor(t, "abc"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestList_EmpresaNumericaEnCookie(t *testing.T) {
	repo := &fakeRepo{}
	resp := doGet(t, buildTestApp(repo), "/api/sankhya/titulos-receber", portalToken(t, 7))

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, int64(7), repo.got.IDEmpresa)
}

func TestList_EmpresaIlegibleEnCookie400(t *testing.T) {
	for _, v := range []any{true, map[string]any{"id": 7}, 7.5} {
		repo := &fakeRepo{}
		resp := doGet(t, buildTestApp(repo), "/api/sankhya/titulos-receber", portalToken(t, v))

		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "ID_EMPRESA=%v", v)
		assert.Equal(t, "INVALID_TENANT", decode(t, resp)["code"])
		assert.Zero(t, repo.calls)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Lista
// ──────────────────────────────────────────────────────────────────────────────

func TestList_SinResultadosDevuelveListaVacia(t *testing.T) {
	resp := doGet(t, buildTestApp(&fakeRepo{}), "/api/sankhya/titulos-receber", tokenFor(t, "7"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"titulos":[]`)
	assert.Contains(t, string(body), `"totais":{"real":0,"provisao":0,"aberto":0,"baixado":0}`)
}

func TestList_FiltrosYTotales(t *testing.T) {
	repo := &fakeRepo{titulos: []*entity.Titulo{
		titulo(1, "N", 1),
		titulo(2, "S", 0),
		titulo(3, "N", 0),
	}}
	target := "/api/sankhya/titulos-receber?codParceiro=1234&dataNegociacaoInicio=2024-01-01" +
		"&dataNegociacaoFinal=2024-01-31&tipoFinanceiro=1&statusFinanceiro=2"
	resp := doGet(t, buildTestApp(repo), target, tokenFor(t, "7"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, int64(7), repo.got.IDEmpresa)
	require.NotNil(t, repo.got.CodParc)
	assert.Equal(t, int64(1234), *repo.got.CodParc)
	assert.Equal(t, "2024-01-01", repo.got.DataInicio)
	assert.Equal(t, "2024-01-31", repo.got.DataFim)

	body := decode(t, resp)
	titulos := body["titulos"].([]any)
	assert.Len(t, titulos, 3)
	first := titulos[0].(map[string]any)
	assert.Equal(t, "1", first["nroTitulo"])
	assert.Equal(t, "ACME LTDA", first["parceiro"])
	assert.Equal(t, "2024-03-10", first["dataVencimento"])

	totais := body["totais"].(map[string]any)
	assert.EqualValues(t, 2, totais["real"])
	assert.EqualValues(t, 1, totais["provisao"])
	assert.EqualValues(t, 1, totais["aberto"])
	assert.EqualValues(t, 2, totais["baixado"])
}

func TestList_ParametrosInvalidos400(t *testing.T) {
	cases := []string{
		"codParceiro=abc",
		"dataNegociacaoInicio=01/02/2024",
		"dataNegociacaoFinal=2024-13-01",
		"statusFinanceiro=4",
		"tipoFinanceiro=x",
	}
	for _, q := range cases {
		t.Run(q, func(t *testing.T) {
			repo := &fakeRepo{}
			resp := doGet(t, buildTestApp(repo), "/api/sankhya/titulos-receber?"+q, tokenFor(t, "7"))
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "VALIDATION", decode(t, resp)["code"])
			assert.Zero(t, repo.calls)
		})
	}
}

func TestList_ErrorDeBase500(t *testing.T) {
	repo := &fakeRepo{err: errors.New("ORA-00942: table or view does not exist")}
	resp := doGet(t, buildTestApp(repo), "/api/sankhya/titulos-receber", tokenFor(t, "7"))

	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "ORA-00942: table or view does not exist", decode(t, resp)["error"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Export
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_Adjunto(t *testing.T) {
	repo := &fakeRepo{titulos: []*entity.Titulo{titulo(1, "N", 1), titulo(2, "S", 0)}}
	resp := doGet(t, buildTestApp(repo), "/api/sankhya/titulos-receber/export?formato=txt&codParceiro=1234", tokenFor(t, "7"))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "text/plain", resp.Header.Get(fiber.HeaderContentType))
	disp := resp.Header.Get(fiber.HeaderContentDisposition)
	assert.True(t, strings.HasPrefix(disp, "attachment;"), disp)
	assert.Contains(t, disp, "titulos_receber_")
	assert.Contains(t, disp, ".txt")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "rows:2", string(body))
}

func TestExport_FormatoDesconocido400(t *testing.T) {
	repo := &fakeRepo{}
	resp := doGet(t, buildTestApp(repo), "/api/sankhya/titulos-receber/export?formato=docx", tokenFor(t, "7"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Zero(t, repo.calls)
}

func TestExport_SinCookie401(t *testing.T) {
	resp := doGet(t, buildTestApp(&fakeRepo{}), "/api/sankhya/titulos-receber/export", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
