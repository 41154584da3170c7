package http

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
)

// pdfBuilder lo implementa *report.ReportUseCase.
type pdfBuilder interface {
	BuildPDF(ctx context.Context, r *dto.ReportDTO) ([]byte, error)
}

// RouterDeps dependencias para el router. El reporte y los gráficos se construyen una
// vez al arrancar y se sirven desde memoria.
type RouterDeps struct {
	Report         *dto.ReportDTO
	Charts         []dto.RenderedChart
	ChartFormat    string // png | svg
	PDF            pdfBuilder
	Metrics        requestRecorder // nil = sin middleware de métricas
	MetricsHandler http.Handler    // nil = sin /metrics
}

// Router registra las rutas del visor.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Metrics != nil {
		app.Use(MetricsMiddleware(deps.Metrics))
	}
	if deps.MetricsHandler != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.MetricsHandler))
	}

	api := app.Group("/api")

	reportHandler := NewReportHandler(deps.Report, deps.PDF)
	api.Get("/report", reportHandler.Get)
	api.Get("/report.pdf", reportHandler.GetPDF)
	api.Get("/report/:section", reportHandler.GetSection)

	chartHandler := NewChartHandler(deps.Charts, deps.ChartFormat)
	api.Get("/charts", chartHandler.List)
	api.Get("/charts/:name", chartHandler.Get)
}
