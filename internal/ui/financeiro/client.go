package financeiro

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Financeiro-api/internal/application/dto"
)

// TitulosAPI endpoints del portal que usa la pantalla.
type TitulosAPI interface {
	ListTitulos(ctx context.Context, q Query) (*dto.TitulosReceberResponse, error)
	DownloadBoleto(ctx context.Context, nroTitulo string) ([]byte, error)
}

// Query filtros que envía la pantalla. Tipo y Status siempre se envían.
type Query struct {
	CodParceiro          string
	DataNegociacaoInicio string
	DataNegociacaoFinal  string
	TipoFinanceiro       string
	StatusFinanceiro     string
}

// Encode arma el query string en el orden en que lo envía el portal.
func (q Query) Encode() string {
	v := url.Values{}
	v.Set("codParceiro", q.CodParceiro)
	v.Set("tipoFinanceiro", q.TipoFinanceiro)
	v.Set("statusFinanceiro", q.StatusFinanceiro)
	if q.DataNegociacaoInicio != "" {
		v.Set("dataNegociacaoInicio", q.DataNegociacaoInicio)
	}
	if q.DataNegociacaoFinal != "" {
		v.Set("dataNegociacaoFinal", q.DataNegociacaoFinal)
	}
	return v.Encode()
}

// APIError respuesta no-2xx del portal.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("portal: status %d", e.Status)
	}
	return fmt.Sprintf("portal: status %d: %s", e.Status, e.Message)
}

// HTTPClient implementación de TitulosAPI sobre fiber.Agent.
type HTTPClient struct {
	baseURL    string
	cookieName string
	token      string
	timeout    time.Duration
}

// NewHTTPClient baseURL sin barra final; token es el valor de la cookie de sesión.
func NewHTTPClient(baseURL, cookieName, token string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		cookieName: cookieName,
		token:      token,
		timeout:    timeout,
	}
}

func (c *HTTPClient) ListTitulos(ctx context.Context, q Query) (*dto.TitulosReceberResponse, error) {
	body, err := c.get(ctx, "/api/sankhya/titulos-receber?"+q.Encode())
	if err != nil {
		return nil, err
	}
	var out dto.TitulosReceberResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("portal: respuesta inválida: %w", err)
	}
	if out.Titulos == nil {
		out.Titulos = []dto.TituloDTO{}
	}
	return &out, nil
}

func (c *HTTPClient) DownloadBoleto(ctx context.Context, nroTitulo string) ([]byte, error) {
	return c.get(ctx, "/api/sankhya/boleto/"+url.PathEscape(nroTitulo))
}

// get el Agent de fiber no acepta context: se respeta la cancelación previa y el deadline como timeout.
func (c *HTTPClient) get(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	timeout := c.timeout
	if dl, ok := ctx.Deadline(); ok {
		if left := time.Until(dl); left < timeout {
			timeout = left
		}
	}

	a := fiber.Get(c.baseURL + path)
	a.Timeout(timeout)
	if c.token != "" {
		a.Cookie(c.cookieName, c.token)
	}
	code, body, errs := a.Bytes()
	if len(errs) > 0 {
		return nil, fmt.Errorf("portal: %w", errors.Join(errs...))
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		var e dto.ErrorResponse
		_ = json.Unmarshal(body, &e)
		return nil, &APIError{Status: code, Message: e.Error}
	}
	return body, nil
}
