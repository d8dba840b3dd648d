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

	"github.com/jhoicas/Recibos-api/internal/application/receipt"
	"github.com/jhoicas/Recibos-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/Recibos-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Recibos-api/internal/infrastructure/raster"
	httpRouter "github.com/jhoicas/Recibos-api/internal/interfaces/http"
	"github.com/jhoicas/Recibos-api/pkg/config"
	"github.com/jhoicas/Recibos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Sesiones en memoria: no hay persistencia entre reinicios por diseño.
	sessionRepo := memory.NewSessionRepository(time.Duration(cfg.Session.TTLMinutes) * time.Minute)
	defer sessionRepo.Stop()

	receiptUC := receipt.NewUseCase(sessionRepo)

	// Exportaciones: PDF (Maroto) y JPEG (rasterizador propio) sobre el
	// mismo modelo de documento.
	pdfGenerator := infrapdf.NewMarotoDocumentGenerator()
	imageRenderer, err := raster.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar rasterizador JPEG")
	}
	exportUC := receipt.NewExportUseCase(sessionRepo, pdfGenerator, imageRenderer)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // las exportaciones pueden tardar
		IdleTimeout:  time.Second * 60,
		BodyLimit:    8 * 1024 * 1024, // margen para logos grandes
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Recibos API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ReceiptUC: receiptUC,
		ExportUC:  exportUC,
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
