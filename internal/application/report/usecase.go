// Package report arma el reporte completo del dataset: todas las agregaciones, la
// lista de gráficos y el PDF.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/supplychain-analytics/internal/application/analysis"
	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
	"github.com/jhoicas/supplychain-analytics/internal/domain/inventory"
	"github.com/jhoicas/supplychain-analytics/internal/domain/repository"
)

// Options parámetros del reporte.
type Options struct {
	PreviewRows int // filas de df.head(); default 5
	TopDefects  int // N de top/bottom defectuosos; default 3
}

// ReportUseCase carga el dataset y construye el reporte.
//
// Fuente de datos: DatasetSource (CSV o PostgreSQL). El dataset se carga en cada
// Build; el caller decide si cachea el resultado.
type ReportUseCase struct {
	source   repository.DatasetSource
	pdf      ReportPDFGenerator
	png      ChartRenderer
	observer BuildObserver
	opts     Options
	now      func() time.Time
}

// NewReportUseCase construye el caso de uso. pdf, png y observer pueden ser nil:
// sin pdf/png BuildPDF devuelve error; sin observer no se registran métricas.
func NewReportUseCase(
	source repository.DatasetSource,
	pdf ReportPDFGenerator,
	png ChartRenderer,
	observer BuildObserver,
	opts Options,
) *ReportUseCase {
	if opts.PreviewRows <= 0 {
		opts.PreviewRows = 5
	}
	if opts.TopDefects <= 0 {
		opts.TopDefects = 3
	}
	return &ReportUseCase{source: source, pdf: pdf, png: png, observer: observer, opts: opts, now: time.Now}
}

// Build carga el dataset, calcula las columnas derivadas y todas las secciones.
func (uc *ReportUseCase) Build(ctx context.Context) (report *dto.ReportDTO, err error) {
	start := uc.now()
	if uc.observer != nil {
		defer func() { uc.observer.ObserveReportBuild(uc.now().Sub(start), err) }()
	}

	ds, err := uc.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("report: cargar dataset: %w", err)
	}
	if ds.Len() == 0 {
		return nil, fmt.Errorf("report: %w", domain.ErrEmptyDataset)
	}
	inventory.DeriveAll(ds)

	return uc.FromDataset(ds), nil
}

// FromDataset calcula todas las secciones sobre un dataset que ya tiene las columnas
// derivadas. Asigna un RunID nuevo.
func (uc *ReportUseCase) FromDataset(ds *entity.Dataset) *dto.ReportDTO {
	return &dto.ReportDTO{
		RunID:       uuid.New().String(),
		GeneratedAt: uc.now().UTC().Format(time.RFC3339),
		Overview:    analysis.Overview(ds, uc.opts.PreviewRows),
		Products: dto.ProductSectionDTO{
			Summary:          analysis.ProductSummary(ds),
			SalesByType:      analysis.SalesByProductType(ds),
			TypeDistribution: analysis.ProductTypeDistribution(ds),
			PriceRevenue:     analysis.PriceRevenue(ds),
		},
		Demographics: dto.DemographicsSectionDTO{
			RevenueByDemographic:  analysis.RevenueByDemographic(ds),
			SalesByProductAndDemo: analysis.SalesByProductAndDemographic(ds),
			SupplierByDemographic: analysis.SupplierByDemographic(ds),
			SupplierPreference:    analysis.SupplierPreference(ds),
		},
		Inventory: dto.InventorySectionDTO{
			Summary:       analysis.InventorySummary(ds),
			Turnover:      analysis.InventoryTurnover(ds),
			RevenueBySKU:  analysis.SKUSeries(ds, analysis.MetricRevenue),
			StockBySKU:    analysis.SKUSeries(ds, analysis.MetricStock),
			OrderQtyBySKU: analysis.SKUSeries(ds, analysis.MetricOrders),
		},
		Suppliers: dto.SupplierSectionDTO{
			Summary: analysis.SupplierSummary(ds),
		},
		Shipping: dto.ShippingSectionDTO{
			ByCarrier:                 analysis.ShippingSummary(ds),
			TransportationCostsByMode: analysis.TransportationCostsByMode(ds),
		},
		Quality: dto.QualitySectionDTO{
			Summary:                analysis.QualitySummary(ds),
			InspectionResults:      analysis.InspectionResultCounts(ds),
			DefectsByTransportMode: analysis.DefectsByTransportMode(ds),
			DefectsByProductType:   analysis.DefectsByProductType(ds),
			DefectExtremes:         analysis.DefectExtremes(ds, uc.opts.TopDefects),
		},
	}
}

// Section devuelve una sección del reporte por nombre.
func Section(r *dto.ReportDTO, name string) (any, error) {
	switch name {
	case SectionOverview:
		return r.Overview, nil
	case SectionProducts:
		return r.Products, nil
	case SectionDemographics:
		return r.Demographics, nil
	case SectionInventory:
		return r.Inventory, nil
	case SectionSuppliers:
		return r.Suppliers, nil
	case SectionShipping:
		return r.Shipping, nil
	case SectionQuality:
		return r.Quality, nil
	}
	return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownSection)
}

// RenderCharts dibuja todos los specs en paralelo (una goroutine por gráfico) y los
// devuelve en el mismo orden. Ante el primer error cancela el resto y lo devuelve.
func RenderCharts(ctx context.Context, renderer ChartRenderer, specs []dto.ChartSpec) ([]dto.RenderedChart, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		index int
		chart dto.RenderedChart
		err   error
	}
	results := make(chan result, len(specs))
	for i, spec := range specs {
		go func() {
			if err := ctx.Err(); err != nil {
				results <- result{index: i, err: err}
				return
			}
			c, err := renderer.Render(spec)
			results <- result{index: i, chart: c, err: err}
		}()
	}

	out := make([]dto.RenderedChart, len(specs))
	var firstErr error
	for range specs {
		res := <-results
		if res.err != nil {
			if firstErr == nil || (errors.Is(firstErr, context.Canceled) && !errors.Is(res.err, context.Canceled)) {
				firstErr = res.err
			}
			cancel()
			continue
		}
		out[res.index] = res.chart
	}
	if firstErr != nil {
		return nil, fmt.Errorf("report: dibujar gráficos: %w", firstErr)
	}
	return out, nil
}

// BuildPDF dibuja los gráficos en PNG y arma el PDF del reporte.
func (uc *ReportUseCase) BuildPDF(ctx context.Context, r *dto.ReportDTO) ([]byte, error) {
	if uc.pdf == nil || uc.png == nil {
		return nil, fmt.Errorf("report: generador de PDF no configurado: %w", domain.ErrInvalidInput)
	}
	charts, err := RenderCharts(ctx, uc.png, Charts(r))
	if err != nil {
		return nil, err
	}
	return uc.PDFFromCharts(ctx, r, charts)
}

// PDFFromCharts arma el PDF con gráficos ya dibujados en PNG, sin volver a renderizarlos.
func (uc *ReportUseCase) PDFFromCharts(ctx context.Context, r *dto.ReportDTO, charts []dto.RenderedChart) ([]byte, error) {
	if uc.pdf == nil {
		return nil, fmt.Errorf("report: generador de PDF no configurado: %w", domain.ErrInvalidInput)
	}
	data, err := uc.pdf.GenerateReportPDF(ctx, r, charts)
	if err != nil {
		return nil, fmt.Errorf("report: generar PDF: %w", err)
	}
	return data, nil
}
