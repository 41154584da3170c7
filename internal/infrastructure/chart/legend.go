package chart

import (
	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// legend leyenda de cuadros de color para los gráficos de barras, que en go-chart
// no tienen leyenda propia. Las etiquetas se registran en orden de aparición.
type legend struct {
	labels []string
	colors map[string]drawing.Color
}

func newLegend() *legend {
	return &legend{colors: make(map[string]drawing.Color)}
}

// color devuelve el color asignado a label; la primera vez lo toma de hex o de la paleta.
func (l *legend) color(label, hex string) drawing.Color {
	if c, ok := l.colors[label]; ok {
		return c
	}
	c := colorOf(hex, len(l.labels))
	l.labels = append(l.labels, label)
	l.colors[label] = c
	return c
}

// render dibuja la leyenda en la esquina superior derecha del canvas.
func (l *legend) render(r gochart.Renderer, canvas gochart.Box, defaults gochart.Style) {
	if len(l.labels) == 0 {
		return
	}
	const (
		swatch  = 10
		spacing = 4
		padding = 6
	)
	textStyle := gochart.Style{
		Font:      defaults.Font,
		FontSize:  8,
		FontColor: drawing.ColorBlack,
	}
	textStyle.WriteTextOptionsToRenderer(r)

	width := 0
	for _, label := range l.labels {
		width = max(width, r.MeasureText(label).Width())
	}
	lineHeight := swatch + spacing
	box := gochart.Box{
		Top:    canvas.Top + padding,
		Right:  canvas.Right - padding,
		Left:   canvas.Right - padding - (swatch + spacing + width + 2*padding),
		Bottom: canvas.Top + padding + len(l.labels)*lineHeight + padding,
	}
	gochart.Draw.Box(r, box, gochart.Style{
		FillColor:   drawing.ColorWhite.WithAlpha(220),
		StrokeColor: drawing.ColorBlack,
		StrokeWidth: 1,
	})

	y := box.Top + padding
	for _, label := range l.labels {
		gochart.Draw.Box(r, gochart.Box{
			Top:    y,
			Left:   box.Left + padding,
			Right:  box.Left + padding + swatch,
			Bottom: y + swatch,
		}, filled(l.colors[label]))
		gochart.Draw.Text(r, label, box.Left+padding+swatch+spacing, y+swatch, textStyle)
		y += lineHeight
	}
}
