// @title        Supply Chain Analytics API
// @version      1.0
// @description  Visor de solo lectura del análisis exploratorio del dataset de supply chain.
// @BasePath     /
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

	_ "github.com/jhoicas/supplychain-analytics/docs"
	"github.com/jhoicas/supplychain-analytics/internal/application/report"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/chart"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/supplychain-analytics/internal/infrastructure/pdf"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/source"
	httpRouter "github.com/jhoicas/supplychain-analytics/internal/interfaces/http"
	"github.com/jhoicas/supplychain-analytics/pkg/config"
	"github.com/jhoicas/supplychain-analytics/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

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
		Str("source", cfg.Dataset.Source).
		Msg("iniciando aplicación")

	ctx := context.Background()
	src, closeSource, err := source.Open(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("origen del dataset")
	}
	defer closeSource()

	m := metrics.New()

	// El PDF siempre embebe PNG, aunque el visor sirva SVG.
	pngRenderer, err := chart.NewRenderer(chart.FormatPNG, cfg.Output.ChartWidth, cfg.Output.ChartHeight)
	if err != nil {
		log.Fatal().Err(err).Msg("renderer PNG")
	}
	renderer := pngRenderer
	if cfg.Output.ChartFormat != chart.FormatPNG {
		renderer, err = chart.NewRenderer(cfg.Output.ChartFormat, cfg.Output.ChartWidth, cfg.Output.ChartHeight)
		if err != nil {
			log.Fatal().Err(err).Msg("renderer de gráficos")
		}
	}

	reportUC := report.NewReportUseCase(src, infrapdf.NewMarotoPDFGenerator(), pngRenderer, m, report.Options{
		PreviewRows: cfg.Report.PreviewRows,
		TopDefects:  cfg.Report.TopDefects,
	})

	start := time.Now()
	rep, err := reportUC.Build(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("construir reporte")
	}
	charts, err := report.RenderCharts(ctx, renderer, report.Charts(rep))
	if err != nil {
		log.Fatal().Err(err).Msg("dibujar gráficos")
	}
	log.Info().
		Str("run_id", rep.RunID).
		Int("charts", len(charts)).
		Dur("duration", time.Since(start)).
		Msg("reporte construido")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Supply Chain Analytics API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "run_id": rep.RunID})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Report:         rep,
		Charts:         charts,
		ChartFormat:    renderer.Extension(),
		PDF:            reportUC,
		Metrics:        m,
		MetricsHandler: m.Handler(),
	})

	go func() {
		log.Info().Str("addr", cfg.HTTP.Addr()).Msg("servidor HTTP escuchando")
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
