// Package chart dibuja los dto.ChartSpec del reporte con go-chart.
//
// Cada tipo de gráfico tiene su método (Donut, Bar, GroupedBar, ...) y Render elige
// según spec.Kind. Barras, porciones y marcadores llevan borde negro; los colores
// que el spec no fija salen de la paleta cualitativa.
package chart

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain"
)

// Formatos de salida soportados.
const (
	FormatPNG = "png"
	FormatSVG = "svg"
)

// Palette paleta cualitativa por defecto (mismo orden que Plotly).
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

var borderColor = drawing.ColorBlack

// Renderer dibuja gráficos en PNG o SVG con un tamaño fijo.
type Renderer struct {
	format string
	width  int
	height int
}

// NewRenderer construye el renderer. Un formato vacío equivale a png; tamaños <= 0
// toman 1024x600.
func NewRenderer(format string, width, height int) (*Renderer, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatPNG
	}
	if format != FormatPNG && format != FormatSVG {
		return nil, fmt.Errorf("chart: formato %q: %w", format, domain.ErrInvalidInput)
	}
	if width <= 0 {
		width = 1024
	}
	if height <= 0 {
		height = 600
	}
	return &Renderer{format: format, width: width, height: height}, nil
}

// Extension png | svg.
func (r *Renderer) Extension() string { return r.format }

// Render dibuja el spec según su Kind.
func (r *Renderer) Render(spec dto.ChartSpec) (dto.RenderedChart, error) {
	var (
		data []byte
		err  error
	)
	switch spec.Kind {
	case dto.ChartDonut:
		data, err = r.Donut(spec)
	case dto.ChartBar:
		data, err = r.Bar(spec)
	case dto.ChartGroupedBar:
		data, err = r.GroupedBar(spec)
	case dto.ChartStackedBar:
		data, err = r.StackedBar(spec)
	case dto.ChartScatter:
		data, err = r.Scatter(spec)
	case dto.ChartLines:
		data, err = r.CategoryLines(spec)
	case dto.ChartGradientBar:
		data, err = r.GradientBar(spec)
	default:
		err = fmt.Errorf("tipo de gráfico %q: %w", spec.Kind, domain.ErrInvalidInput)
	}
	if err != nil {
		return dto.RenderedChart{}, fmt.Errorf("chart: %s: %w", spec.Name, err)
	}
	return dto.RenderedChart{
		Name:      spec.Name,
		Section:   spec.Section,
		Title:     spec.Title,
		Extension: r.format,
		Data:      data,
	}, nil
}

// renderable cubre Chart, PieChart, DonutChart, BarChart y StackedBarChart.
type renderable interface {
	Render(rp gochart.RendererProvider, w io.Writer) error
}

func (r *Renderer) encode(c renderable) ([]byte, error) {
	provider := gochart.PNG
	if r.format == FormatSVG {
		provider = gochart.SVG
	}
	var buf bytes.Buffer
	if err := c.Render(provider, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ── Colores ───────────────────────────────────────────────────────────────────

// colorOf convierte un hex CSS ("#ADD8E6") o cae a la paleta por posición.
func colorOf(hex string, i int) drawing.Color {
	if hex == "" {
		hex = Palette[i%len(Palette)]
	}
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

func filled(c drawing.Color) gochart.Style {
	return gochart.Style{
		FillColor:   c,
		StrokeColor: borderColor,
		StrokeWidth: 1,
	}
}

func background() gochart.Style {
	return gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}}
}
