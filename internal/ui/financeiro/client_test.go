package financeiro_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Financeiro-api/internal/application/dto"
	uifin "github.com/jhoicas/Financeiro-api/internal/ui/financeiro"
)

// startPortal levanta un portal falso en un puerto efímero.
func startPortal(t *testing.T, app *fiber.App) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()
	t.Cleanup(func() { _ = app.Shutdown() })
	return "http://" + ln.Addr().String()
}

func TestHTTPClient_ListTitulos(t *testing.T) {
	var gotQuery, gotCookie string
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/api/sankhya/titulos-receber", func(c *fiber.Ctx) error {
		gotQuery = string(c.Request().URI().QueryString())
		gotCookie = c.Cookies("user")
		return c.JSON(fiber.Map{
			"titulos": []fiber.Map{{"nroTitulo": "1", "valor": "150.5", "boleto": fiber.Map{"nossoNumero": "9"}}},
			"totais":  fiber.Map{"real": 1, "provisao": 0, "aberto": 1, "baixado": 0},
		})
	})
	base := startPortal(t, app)

	client := uifin.NewHTTPClient(base+"/", "user", "tok", 5*time.Second)
	resp, err := client.ListTitulos(context.Background(), uifin.Query{
		CodParceiro: "1234", TipoFinanceiro: "3", StatusFinanceiro: "1",
	})
	require.NoError(t, err)

	assert.Equal(t, "codParceiro=1234&statusFinanceiro=1&tipoFinanceiro=3", gotQuery)
	assert.Equal(t, "tok", gotCookie)
	require.Len(t, resp.Titulos, 1)
	assert.Equal(t, "150.5", resp.Titulos[0].Valor.String())
	require.NotNil(t, resp.Titulos[0].Boleto.NossoNumero)
	assert.Equal(t, 1, resp.Totais.Real)
}

func TestHTTPClient_Errores(t *testing.T) {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/api/sankhya/titulos-receber", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Usuário não autenticado"})
	})
	app.Get("/api/sankhya/boleto/:id", func(c *fiber.Ctx) error {
		if c.Params("id") == "404" {
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.Send([]byte("%PDF-" + c.Params("id")))
	})
	base := startPortal(t, app)
	client := uifin.NewHTTPClient(base, "user", "", 5*time.Second)

	_, err := client.ListTitulos(context.Background(), uifin.Query{CodParceiro: "1"})
	var apiErr *uifin.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusUnauthorized, apiErr.Status)
	assert.Equal(t, "Usuário não autenticado", apiErr.Message)

	pdf, err := client.DownloadBoleto(context.Background(), "55")
	require.NoError(t, err)
	assert.Equal(t, "%PDF-55", string(pdf))

	_, err = client.DownloadBoleto(context.Background(), "404")
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, fiber.StatusNotFound, apiErr.Status)
}

func TestHTTPClient_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := uifin.NewHTTPClient("http://127.0.0.1:1", "user", "", time.Second).ListTitulos(ctx, uifin.Query{})
	assert.ErrorIs(t, err, context.Canceled)
}
