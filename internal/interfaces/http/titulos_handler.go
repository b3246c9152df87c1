package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	appfin "github.com/jhoicas/Financeiro-api/internal/application/financeiro"
	"github.com/jhoicas/Financeiro-api/internal/application/dto"
	"github.com/jhoicas/Financeiro-api/internal/domain"
)

// TitulosHandler maneja los endpoints de títulos a receber.
type TitulosHandler struct {
	uc     *appfin.TitulosReceberUseCase
	export *appfin.ExportUseCase
}

// NewTitulosHandler construye el handler.
func NewTitulosHandler(uc *appfin.TitulosReceberUseCase, export *appfin.ExportUseCase) *TitulosHandler {
	return &TitulosHandler{uc: uc, export: export}
}

// List godoc
// @Summary      Títulos a receber del parceiro
// @Description  Lista todos los títulos de la empresa de la sesión, ordenados por vencimiento descendente,
//               con los contadores real/provisão/aberto/baixado. Sin paginación.
// @Tags         financeiro
// @Produce      json
// @Param        codParceiro           query  int     false  "Código del parceiro (CODPARC)"
// @Param        dataNegociacaoInicio  query  string  false  "Negociación desde (YYYY-MM-DD, inclusiva)"
// @Param        dataNegociacaoFinal   query  string  false  "Negociación hasta (YYYY-MM-DD, inclusiva)"
// @Param        tipoFinanceiro        query  int     false  "1=Aberto, 2=Baixado, 3=Todos"
// @Param        statusFinanceiro      query  int     false  "1=Real, 2=Provisão, 3=Todos"
// @Success      200  {object}  dto.TitulosReceberResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sankhya/titulos-receber [get]
func (h *TitulosHandler) List(c *fiber.Ctx) error {
	session := GetSession(c)
	if session == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Usuário não autenticado", Code: "UNAUTHENTICATED",
		})
	}

	var req dto.TitulosReceberRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "parâmetros de consulta inválidos", Code: "INVALID_PARAMS",
		})
	}

	resp, err := h.uc.List(c.UserContext(), *session, req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(resp)
}

// Export godoc
// @Summary      Exporta títulos a receber
// @Description  Mismos filtros que la lista; devuelve XLSX o PDF como adjunto.
// @Tags         financeiro
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet,application/pdf
// @Param        formato  query  string  false  "xlsx (default) | pdf"
// @Success      200
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/sankhya/titulos-receber/export [get]
func (h *TitulosHandler) Export(c *fiber.Ctx) error {
	session := GetSession(c)
	if session == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: "Usuário não autenticado", Code: "UNAUTHENTICATED",
		})
	}

	var req dto.ExportRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "parâmetros de consulta inválidos", Code: "INVALID_PARAMS",
		})
	}

	file, err := h.export.Export(c.UserContext(), *session, req)
	if err != nil {
		return writeError(c, err)
	}
	c.Attachment(file.Filename)
	c.Set(fiber.HeaderContentType, file.ContentType)
	return c.Send(file.Content)
}

// writeError traduce errores de dominio a HTTP. Lo demás es falla de la base (500, mensaje tal cual).
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: err.Error(), Code: "UNAUTHENTICATED"})
	case errors.Is(err, domain.ErrInvalidTenant):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Empresa não identificada", Code: "INVALID_TENANT"})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error(), Code: "VALIDATION"})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
}
