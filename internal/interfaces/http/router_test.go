package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/metrics"
	apphttp "github.com/jhoicas/supplychain-analytics/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakePDF struct {
	data []byte
	err  error
}

func (f *fakePDF) BuildPDF(_ context.Context, _ *dto.ReportDTO) ([]byte, error) {
	return f.data, f.err
}

type recorded struct {
	method, endpoint string
	status           int
}

type fakeRecorder struct {
	mu    sync.Mutex
	calls []recorded
}

func (f *fakeRecorder) RecordRequest(method, endpoint string, status int, _ time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, recorded{method, endpoint, status})
}

func testReport() *dto.ReportDTO {
	return &dto.ReportDTO{
		RunID: "run-1",
		Overview: dto.DatasetOverviewDTO{
			Source: "data/SCA.csv", Rows: 100, Columns: 24,
		},
		Products: dto.ProductSectionDTO{
			TypeDistribution: []dto.CategoryCountDTO{{Category: "haircare", Count: 34}},
		},
	}
}

func testCharts() []dto.RenderedChart {
	return []dto.RenderedChart{
		{Name: "sales_by_product_type", Section: "products", Title: "Sales by Product Type", Extension: "png", Data: []byte("\x89PNG-a")},
		{Name: "inspection_results", Section: "quality", Title: "Inspection Results", Extension: "png", Data: []byte("\x89PNG-b")},
	}
}

// buildTestApp arma la app con el router completo.
func buildTestApp(deps apphttp.RouterDeps) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})
	apphttp.Router(app, deps)
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, []byte) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func defaultDeps() apphttp.RouterDeps {
	return apphttp.RouterDeps{
		Report:      testReport(),
		Charts:      testCharts(),
		ChartFormat: "png",
		PDF:         &fakePDF{data: []byte("%PDF-1.3 fake")},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Reporte
// ──────────────────────────────────────────────────────────────────────────────

func TestReport_DevuelveReporteCompleto(t *testing.T) {
	resp, body := get(t, buildTestApp(defaultDeps()), "/api/report")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.ReportDTO
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "run-1", got.RunID)
	assert.Equal(t, 100, got.Overview.Rows)
}

func TestReport_SeccionConocida(t *testing.T) {
	resp, body := get(t, buildTestApp(defaultDeps()), "/api/report/products")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.ProductSectionDTO
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got.TypeDistribution, 1)
	assert.Equal(t, 34, got.TypeDistribution[0].Count)
}

func TestReport_SeccionDesconocida404(t *testing.T) {
	resp, body := get(t, buildTestApp(defaultDeps()), "/api/report/finanzas")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "UNKNOWN_SECTION", got.Code)
}

func TestReport_SinReporte404(t *testing.T) {
	deps := defaultDeps()
	deps.Report = nil
	resp, _ := get(t, buildTestApp(deps), "/api/report")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestPDF_Descarga(t *testing.T) {
	resp, body := get(t, buildTestApp(defaultDeps()), "/api/report.pdf")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "%PDF-1.3 fake", string(body))
}

func TestPDF_ErrorDelGenerador500(t *testing.T) {
	deps := defaultDeps()
	deps.PDF = &fakePDF{err: errors.New("maroto: fallo")}
	resp, body := get(t, buildTestApp(deps), "/api/report.pdf")
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "INTERNAL", got.Code)
}

func TestPDF_SinGenerador404(t *testing.T) {
	deps := defaultDeps()
	deps.PDF = nil
	resp, _ := get(t, buildTestApp(deps), "/api/report.pdf")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gráficos
// ──────────────────────────────────────────────────────────────────────────────

func TestCharts_Lista(t *testing.T) {
	resp, body := get(t, buildTestApp(defaultDeps()), "/api/charts")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got dto.ChartListResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "png", got.Format)
	require.Len(t, got.Charts, 2)
	assert.Equal(t, "sales_by_product_type", got.Charts[0].Name)
	assert.Equal(t, "/api/charts/inspection_results", got.Charts[1].URL)
}

func TestCharts_ImagenConContentType(t *testing.T) {
	resp, body := get(t, buildTestApp(defaultDeps()), "/api/charts/inspection_results")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get(fiber.HeaderContentType))
	assert.Equal(t, "\x89PNG-b", string(body))
}

func TestCharts_SVG(t *testing.T) {
	deps := defaultDeps()
	deps.ChartFormat = "svg"
	deps.Charts = []dto.RenderedChart{{Name: "x", Extension: "svg", Data: []byte("<svg/>")}}
	resp, _ := get(t, buildTestApp(deps), "/api/charts/x")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get(fiber.HeaderContentType))
}

func TestCharts_Inexistente404(t *testing.T) {
	resp, body := get(t, buildTestApp(defaultDeps()), "/api/charts/no_existe")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	var got dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, "NOT_FOUND", got.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestMetricsMiddleware_RegistraPatronDeRuta(t *testing.T) {
	rec := &fakeRecorder{}
	deps := defaultDeps()
	deps.Metrics = rec
	app := buildTestApp(deps)

	get(t, app, "/api/charts/inspection_results")
	get(t, app, "/api/report/finanzas")

	rec.mu.Lock()
	defer rec.mu.Unlock()
	require.Len(t, rec.calls, 2)
	assert.Equal(t, recorded{http.MethodGet, "/api/charts/:name", http.StatusOK}, rec.calls[0])
	assert.Equal(t, recorded{http.MethodGet, "/api/report/:section", http.StatusNotFound}, rec.calls[1])
}

func TestMetrics_EndpointPrometheus(t *testing.T) {
	m := metrics.New()
	deps := defaultDeps()
	deps.Metrics = m
	deps.MetricsHandler = m.Handler()
	app := buildTestApp(deps)

	get(t, app, "/api/report")
	resp, body := get(t, app, "/metrics")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `http_requests_total{endpoint="/api/report",method="GET",status="2xx"} 1`)
}
