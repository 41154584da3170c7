package chart_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/chart"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

func newRenderer(t *testing.T, format string) *chart.Renderer {
	t.Helper()
	r, err := chart.NewRenderer(format, 640, 400)
	require.NoError(t, err)
	return r
}

func productSlices() []dto.ChartSlice {
	return []dto.ChartSlice{
		{Label: "cosmetics", Value: 11757, Color: "#FFA500"},
		{Label: "haircare", Value: 13611, Color: "#ADD8E6"},
		{Label: "skincare", Value: 20731, Color: "#90EE90"},
	}
}

func TestRender_TodosLosTiposGeneranPNG(t *testing.T) {
	r := newRenderer(t, "png")

	series := []dto.ChartSeries{
		{Name: "haircare", Color: "#ADD8E6", Points: []dto.ChartPoint{{X: 0, Y: 10, Size: 5}, {X: 1, Y: 20, Size: 50}}},
		{Name: "skincare", Points: []dto.ChartPoint{{X: 2, Y: 15, Size: 25}}},
	}
	groups := []dto.ChartGroup{
		{Label: "Female", Values: []dto.ChartSlice{{Label: "haircare", Value: 3}, {Label: "skincare", Value: 4}}},
		{Label: "Male", Values: []dto.ChartSlice{{Label: "haircare", Value: 1}, {Label: "skincare", Value: 6}}},
	}
	specs := []dto.ChartSpec{
		{Name: "pie", Kind: dto.ChartDonut, Slices: productSlices()},
		{Name: "donut", Kind: dto.ChartDonut, Hole: 0.5, Slices: productSlices()},
		{Name: "bar", Kind: dto.ChartBar, Slices: productSlices()},
		{Name: "gradient", Kind: dto.ChartGradientBar, Slices: productSlices()},
		{Name: "grouped", Kind: dto.ChartGroupedBar, Groups: groups},
		{Name: "stacked", Kind: dto.ChartStackedBar, Groups: groups},
		{Name: "scatter", Kind: dto.ChartScatter, XLabel: "x", YLabel: "y", Series: series},
		{Name: "lines", Kind: dto.ChartLines, Series: series, XTicks: []dto.ChartTick{{Value: 0, Label: "SKU0"}, {Value: 1, Label: "SKU1"}, {Value: 2, Label: "SKU2"}}},
	}
	for _, spec := range specs {
		t.Run(spec.Name, func(t *testing.T) {
			spec.Title = "Test " + spec.Name
			got, err := r.Render(spec)
			require.NoError(t, err)
			assert.Equal(t, spec.Name, got.Name)
			assert.Equal(t, "png", got.Extension)
			assert.True(t, bytes.HasPrefix(got.Data, pngSignature), "no es un PNG")
		})
	}
}

func TestStackedBar_ColumnasConTotalesDistintos(t *testing.T) {
	r := newRenderer(t, "png")
	spec := dto.ChartSpec{Name: "stacked", Kind: dto.ChartStackedBar, Title: "Supplier by demographic", Groups: []dto.ChartGroup{
		{Label: "Supplier 1", Values: []dto.ChartSlice{{Label: "Female", Value: 10}, {Label: "Male", Value: 17}}},
		{Label: "Supplier 2", Values: []dto.ChartSlice{{Label: "Female", Value: 0}, {Label: "Male", Value: 0}}},
		{Label: "Supplier 3", Values: []dto.ChartSlice{{Label: "Female", Value: 1}, {Label: "Male", Value: 2}}},
	}}
	got, err := r.Render(spec)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(got.Data, pngSignature))
}

func TestRender_SVG(t *testing.T) {
	r := newRenderer(t, "SVG")
	assert.Equal(t, "svg", r.Extension())

	got, err := r.Render(dto.ChartSpec{Name: "bar", Kind: dto.ChartBar, Slices: productSlices()})
	require.NoError(t, err)
	assert.Contains(t, string(got.Data), "<svg")
}

func TestRender_EntradaVacia(t *testing.T) {
	r := newRenderer(t, "png")
	for _, kind := range []dto.ChartKind{dto.ChartDonut, dto.ChartBar, dto.ChartGroupedBar, dto.ChartStackedBar, dto.ChartScatter, dto.ChartLines, dto.ChartGradientBar} {
		_, err := r.Render(dto.ChartSpec{Name: "vacio", Kind: kind})
		assert.ErrorIs(t, err, domain.ErrEmptyDataset, string(kind))
	}
}

func TestDonut_TodoCeroEsInvalido(t *testing.T) {
	r := newRenderer(t, "png")
	_, err := r.Render(dto.ChartSpec{Name: "cero", Kind: dto.ChartDonut, Slices: []dto.ChartSlice{{Label: "a"}, {Label: "b"}}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRender_TipoDesconocido(t *testing.T) {
	_, err := newRenderer(t, "png").Render(dto.ChartSpec{Name: "x", Kind: "radar"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewRenderer_FormatoInvalido(t *testing.T) {
	_, err := chart.NewRenderer("gif", 0, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestChartSet_WriteAll(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	set := chart.NewChartSet(dir, nil)

	paths, err := set.WriteAll([]dto.RenderedChart{
		{Name: "a", Extension: "png", Data: []byte("uno")},
		{Name: "b", Extension: "svg", Data: []byte("dos")},
	})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.svg")}, paths)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "dos", string(data))
}
