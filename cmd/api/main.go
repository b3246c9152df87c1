package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	appfin "github.com/jhoicas/Financeiro-api/internal/application/financeiro"
	infrapdf "github.com/jhoicas/Financeiro-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Financeiro-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Financeiro-api/internal/infrastructure/session"
	infraxlsx "github.com/jhoicas/Financeiro-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/Financeiro-api/internal/interfaces/http"
	"github.com/jhoicas/Financeiro-api/pkg/config"
	"github.com/jhoicas/Financeiro-api/pkg/logger"

	_ "github.com/jhoicas/Financeiro-api/docs"
)

// @title        Financeiro API
// @version      1.0
// @description  Consulta de títulos a receber sobre la vista financiera del ERP Sankhya.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	tituloRepo := postgres.NewTituloRepository(pool)
	titulosUC := appfin.NewTitulosReceberUseCase(tituloRepo, log)

	// Exportación: XLSX (excelize) y PDF (maroto)
	exportUC := appfin.NewExportUseCase(titulosUC,
		infraxlsx.NewExcelizeExporter(),
		infrapdf.NewMarotoReportGenerator(),
	)

	if cfg.Session.Secret == "" {
		log.Warn().Msg("SESSION_SECRET vacío: ninguna cookie de sesión será aceptada")
	}
	sessions := session.NewJWTResolver(cfg.Session.Secret)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Financeiro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "db_down", "service": cfg.App.Name})
		}
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		TitulosUC:         titulosUC,
		ExportUC:          exportUC,
		Sessions:          sessions,
		SessionCookieName: cfg.Session.CookieName,
		Log:               log.Component("HTTP"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
