package http

import (
	"github.com/gofiber/fiber/v2"

	appfin "github.com/jhoicas/Financeiro-api/internal/application/financeiro"
	"github.com/jhoicas/Financeiro-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	TitulosUC         *appfin.TitulosReceberUseCase
	ExportUC          *appfin.ExportUseCase
	Sessions          SessionResolver
	SessionCookieName string
	Log               *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Log != nil {
		app.Use(RequestID(), RequestLogger(deps.Log))
	}

	api := app.Group("/api")

	// Rutas del portal Sankhya (requieren cookie de sesión)
	sankhya := api.Group("/sankhya", SessionMiddleware(deps.SessionCookieName, deps.Sessions))

	titulosHandler := NewTitulosHandler(deps.TitulosUC, deps.ExportUC)
	sankhya.Get("/titulos-receber", titulosHandler.List)
	sankhya.Get("/titulos-receber/export", titulosHandler.Export)
}
