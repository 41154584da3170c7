package report_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/application/report"
	"github.com/jhoicas/supplychain-analytics/internal/domain"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/chart"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeSource struct {
	ds  *entity.Dataset
	err error
}

func (f *fakeSource) Load(context.Context) (*entity.Dataset, error) { return f.ds, f.err }

type fakeRenderer struct {
	calls  atomic.Int32
	failOn string
}

func (f *fakeRenderer) Extension() string { return "png" }

func (f *fakeRenderer) Render(spec dto.ChartSpec) (dto.RenderedChart, error) {
	f.calls.Add(1)
	if spec.Name == f.failOn {
		return dto.RenderedChart{}, domain.ErrInvalidInput
	}
	return dto.RenderedChart{Name: spec.Name, Section: spec.Section, Extension: "png", Data: []byte(spec.Name)}, nil
}

type fakePDF struct {
	charts []dto.RenderedChart
}

func (f *fakePDF) GenerateReportPDF(_ context.Context, _ *dto.ReportDTO, charts []dto.RenderedChart) ([]byte, error) {
	f.charts = charts
	return []byte("%PDF-fake"), nil
}

type fakeObserver struct {
	calls int
	err   error
}

func (f *fakeObserver) ObserveReportBuild(_ time.Duration, err error) {
	f.calls++
	f.err = err
}

func record(pt, sku, demo, sup string, sold, stock int, defect string) entity.SKURecord {
	return entity.SKURecord{
		ProductType:          pt,
		SKU:                  sku,
		Price:                decimal.NewFromInt(10),
		Availability:         stock / 2,
		ProductsSold:         sold,
		RevenueGenerated:     decimal.NewFromInt(int64(sold * 10)),
		CustomerDemographics: demo,
		StockLevels:          stock,
		OrderQuantities:      5,
		ShippingTimes:        2,
		ShippingCarrier:      "Carrier A",
		ShippingCosts:        decimal.NewFromInt(3),
		SupplierName:         sup,
		LeadTime:             10,
		ProductionVolumes:    100,
		ManufacturingCosts:   decimal.NewFromInt(4),
		InspectionResults:    "Pass",
		DefectRates:          decimal.RequireFromString(defect),
		TransportationMode:   "Road",
		Costs:                decimal.NewFromInt(50),
	}
}

func dataset() *entity.Dataset {
	return &entity.Dataset{
		Source:  "data/SCA.csv",
		Columns: entity.RequiredColumns,
		Records: []entity.SKURecord{
			record("haircare", "SKU0", "Female", "Supplier 1", 100, 10, "1.2"),
			record("skincare", "SKU1", "Male", "Supplier 2", 50, 0, "3.4"),
			record("cosmetics", "SKU2", "Non-binary", "Supplier 1", 30, 15, "0.2"),
			record("skincare", "SKU3", "Female", "Supplier 3", 80, 40, "2.5"),
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Build
// ──────────────────────────────────────────────────────────────────────────────

func TestBuild_ArmaTodasLasSecciones(t *testing.T) {
	obs := &fakeObserver{}
	uc := report.NewReportUseCase(&fakeSource{ds: dataset()}, nil, nil, obs, report.Options{})

	r, err := uc.Build(context.Background())
	require.NoError(t, err)

	_, err = uuid.Parse(r.RunID)
	assert.NoError(t, err)
	_, err = time.Parse(time.RFC3339, r.GeneratedAt)
	assert.NoError(t, err)

	assert.Equal(t, 4, r.Overview.Rows)
	assert.Len(t, r.Overview.Preview, 4)
	assert.Len(t, r.Products.SalesByType, 3)
	assert.Len(t, r.Inventory.Turnover, 4)
	assert.Len(t, r.Quality.DefectExtremes.Top, 3)
	assert.Equal(t, "SKU1", r.Quality.DefectExtremes.Top[0].SKU)

	// Columnas derivadas calculadas antes de agregar.
	assert.Equal(t, 5, r.Overview.Preview[0].StockAvailabilityDiff)
	assert.True(t, r.Overview.Preview[0].InventoryTurnoverRatio.Valid)
	assert.False(t, r.Overview.Preview[1].InventoryTurnoverRatio.Valid)

	assert.Equal(t, 1, obs.calls)
	assert.NoError(t, obs.err)
}

func TestBuild_ErrorDeCarga(t *testing.T) {
	obs := &fakeObserver{}
	uc := report.NewReportUseCase(&fakeSource{err: domain.ErrNotFound}, nil, nil, obs, report.Options{})

	_, err := uc.Build(context.Background())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, obs.err, domain.ErrNotFound)
}

func TestBuild_DatasetVacio(t *testing.T) {
	uc := report.NewReportUseCase(&fakeSource{ds: &entity.Dataset{}}, nil, nil, nil, report.Options{})
	_, err := uc.Build(context.Background())
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}

func TestSection(t *testing.T) {
	uc := report.NewReportUseCase(&fakeSource{ds: dataset()}, nil, nil, nil, report.Options{})
	r, err := uc.Build(context.Background())
	require.NoError(t, err)

	for _, name := range report.Sections {
		got, err := report.Section(r, name)
		require.NoError(t, err, name)
		assert.NotNil(t, got)
	}
	got, err := report.Section(r, report.SectionSuppliers)
	require.NoError(t, err)
	assert.Equal(t, r.Suppliers, got)

	_, err = report.Section(r, "marketing")
	assert.ErrorIs(t, err, domain.ErrUnknownSection)
}

// ──────────────────────────────────────────────────────────────────────────────
// Charts
// ──────────────────────────────────────────────────────────────────────────────

func TestCharts_NombresUnicosYColoresDeProducto(t *testing.T) {
	uc := report.NewReportUseCase(&fakeSource{ds: dataset()}, nil, nil, nil, report.Options{})
	r, err := uc.Build(context.Background())
	require.NoError(t, err)

	specs := report.Charts(r)
	seen := make(map[string]bool)
	byName := make(map[string]dto.ChartSpec)
	for _, s := range specs {
		assert.False(t, seen[s.Name], "nombre repetido: %s", s.Name)
		seen[s.Name] = true
		byName[s.Name] = s
		assert.Contains(t, report.Sections, s.Section)
	}

	// Una faceta de preferencia por demografía.
	for _, demo := range []string{"female", "male", "non_binary"} {
		assert.True(t, seen["supplier_preference_"+demo], demo)
	}

	sales := byName["sales_by_product_type"]
	require.Len(t, sales.Slices, 3)
	colors := map[string]string{}
	for _, s := range sales.Slices {
		colors[s.Label] = s.Color
	}
	assert.Equal(t, map[string]string{"haircare": "#ADD8E6", "skincare": "#90EE90", "cosmetics": "#FFA500"}, colors)

	// Turnover: orden haircare, skincare, cosmetics y SKU1 (stock 0) fuera del gráfico.
	turnover := byName["inventory_turnover"]
	var labels []string
	for _, s := range turnover.Slices {
		labels = append(labels, s.Label)
	}
	assert.Equal(t, []string{"SKU0", "SKU3", "SKU2"}, labels)

	extremes := byName["defect_extremes"]
	assert.Equal(t, dto.ChartGradientBar, extremes.Kind)
	assert.Len(t, extremes.Slices, 6)
	assert.True(t, strings.HasPrefix(extremes.Title, "Top 3"))
}

func chartsOf(t *testing.T, ds *entity.Dataset) map[string]dto.ChartSpec {
	t.Helper()
	uc := report.NewReportUseCase(&fakeSource{ds: ds}, nil, nil, nil, report.Options{})
	r, err := uc.Build(context.Background())
	require.NoError(t, err)
	byName := make(map[string]dto.ChartSpec)
	for _, s := range report.Charts(r) {
		byName[s.Name] = s
	}
	return byName
}

func TestCharts_SinDefectosOmiteDonasEnCero(t *testing.T) {
	ds := dataset()
	for i := range ds.Records {
		ds.Records[i].DefectRates = decimal.Zero
	}
	uc := report.NewReportUseCase(&fakeSource{ds: ds}, nil, nil, nil, report.Options{})
	r, err := uc.Build(context.Background())
	require.NoError(t, err)

	specs := report.Charts(r)
	var names []string
	for _, s := range specs {
		names = append(names, s.Name)
	}
	assert.NotContains(t, names, "defects_by_transport_mode")
	assert.NotContains(t, names, "defects_by_product_type")
	assert.Contains(t, names, "inspection_results")

	// El resto del reporte se dibuja completo con el renderer real.
	renderer, err := chart.NewRenderer(chart.FormatPNG, 400, 300)
	require.NoError(t, err)
	got, err := report.RenderCharts(context.Background(), renderer, specs)
	require.NoError(t, err)
	assert.Len(t, got, len(specs))
}

func TestCharts_ProductTypeSinColorFijoConservaSuColor(t *testing.T) {
	ds := &entity.Dataset{
		Source:  "data/SCA.csv",
		Columns: entity.RequiredColumns,
		Records: []entity.SKURecord{
			record("food", "SKU0", "Female", "Supplier 1", 100, 10, "1.2"),
			record("toys", "SKU1", "Male", "Supplier 2", 50, 20, "3.4"),
			record("food", "SKU2", "Female", "Supplier 1", 30, 15, "0.2"),
			record("toys", "SKU3", "Female", "Supplier 3", 80, 40, "2.5"),
		},
	}
	turnover := chartsOf(t, ds)["inventory_turnover"]
	require.Len(t, turnover.Slices, 4)

	colors := make(map[string][]string)
	for _, s := range turnover.Slices {
		colors[s.Color] = append(colors[s.Color], s.Label)
	}
	assert.Equal(t, map[string][]string{
		"#636EFA": {"SKU0", "SKU2"},
		"#EF553B": {"SKU1", "SKU3"},
	}, colors)
}

func TestCharts_FacetasConSlugRepetidoNoChocan(t *testing.T) {
	ds := dataset()
	ds.Records[0].CustomerDemographics = "Non binary"
	ds.Records[2].CustomerDemographics = "Non-binary"

	byName := chartsOf(t, ds)
	first, ok := byName["supplier_preference_non_binary"]
	require.True(t, ok)
	second, ok := byName["supplier_preference_non_binary_2"]
	require.True(t, ok)
	assert.ElementsMatch(t,
		[]string{"Supplier Preference: Non binary", "Supplier Preference: Non-binary"},
		[]string{first.Title, second.Title})
}

func TestRenderCharts_ConservaElOrden(t *testing.T) {
	specs := []dto.ChartSpec{{Name: "a"}, {Name: "b"}, {Name: "c"}, {Name: "d"}}
	r := &fakeRenderer{}

	got, err := report.RenderCharts(context.Background(), r, specs)
	require.NoError(t, err)
	require.Len(t, got, 4)
	for i, c := range got {
		assert.Equal(t, specs[i].Name, c.Name)
	}
	assert.EqualValues(t, 4, r.calls.Load())
}

func TestRenderCharts_DevuelveElError(t *testing.T) {
	specs := []dto.ChartSpec{{Name: "a"}, {Name: "b"}, {Name: "c"}}
	_, err := report.RenderCharts(context.Background(), &fakeRenderer{failOn: "b"}, specs)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestBuildPDF(t *testing.T) {
	pdf := &fakePDF{}
	uc := report.NewReportUseCase(&fakeSource{ds: dataset()}, pdf, &fakeRenderer{}, nil, report.Options{})
	r, err := uc.Build(context.Background())
	require.NoError(t, err)

	data, err := uc.BuildPDF(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
	assert.Len(t, pdf.charts, len(report.Charts(r)))
}

func TestPDFFromCharts_NoVuelveARenderizar(t *testing.T) {
	pdf := &fakePDF{}
	png := &fakeRenderer{}
	uc := report.NewReportUseCase(&fakeSource{ds: dataset()}, pdf, png, nil, report.Options{})
	r, err := uc.Build(context.Background())
	require.NoError(t, err)

	charts := []dto.RenderedChart{{Name: "sales_by_product_type", Extension: "png", Data: []byte("x")}}
	data, err := uc.PDFFromCharts(context.Background(), r, charts)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(data))
	assert.Equal(t, charts, pdf.charts)
	assert.Zero(t, png.calls.Load())
}

func TestPDFFromCharts_SinGenerador(t *testing.T) {
	uc := report.NewReportUseCase(&fakeSource{ds: dataset()}, nil, &fakeRenderer{}, nil, report.Options{})
	_, err := uc.PDFFromCharts(context.Background(), &dto.ReportDTO{}, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBuildPDF_SinGenerador(t *testing.T) {
	uc := report.NewReportUseCase(&fakeSource{ds: dataset()}, nil, nil, nil, report.Options{})
	_, err := uc.BuildPDF(context.Background(), &dto.ReportDTO{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
