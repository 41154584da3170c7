package chart

import (
	"math"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain"
)

// ── Porciones ─────────────────────────────────────────────────────────────────

// Donut dibuja spec.Slices como dona; con Hole = 0 dibuja un pie.
func (r *Renderer) Donut(spec dto.ChartSpec) ([]byte, error) {
	if len(spec.Slices) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	values := make([]gochart.Value, 0, len(spec.Slices))
	total := 0.0
	for i, s := range spec.Slices {
		if s.Value < 0 || math.IsNaN(s.Value) {
			return nil, domain.ErrInvalidInput
		}
		total += s.Value
		values = append(values, gochart.Value{
			Label: s.Label,
			Value: s.Value,
			Style: filled(colorOf(s.Color, i)),
		})
	}
	if total == 0 {
		return nil, domain.ErrInvalidInput
	}

	if spec.Hole <= 0 {
		return r.encode(gochart.PieChart{
			Title:      spec.Title,
			Width:      r.width,
			Height:     r.height,
			Background: background(),
			Values:     values,
		})
	}
	return r.encode(gochart.DonutChart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: background(),
		Values:     values,
	})
}

// ── Barras ────────────────────────────────────────────────────────────────────

// Bar una barra por slice, con el color de la slice o de la paleta.
func (r *Renderer) Bar(spec dto.ChartSpec) ([]byte, error) {
	if len(spec.Slices) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	bars := make([]gochart.Value, 0, len(spec.Slices))
	for i, s := range spec.Slices {
		bars = append(bars, gochart.Value{Label: s.Label, Value: s.Value, Style: filled(colorOf(s.Color, i))})
	}
	return r.encode(r.barChart(spec, bars, nil))
}

// GradientBar barras coloreadas por valor con la escala Viridis.
func (r *Renderer) GradientBar(spec dto.ChartSpec) ([]byte, error) {
	if len(spec.Slices) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range spec.Slices {
		lo, hi = math.Min(lo, s.Value), math.Max(hi, s.Value)
	}
	bars := make([]gochart.Value, 0, len(spec.Slices))
	for _, s := range spec.Slices {
		c := gochart.Viridis(0.5, 0, 1)
		if hi > lo {
			c = gochart.Viridis(s.Value, lo, hi)
		}
		bars = append(bars, gochart.Value{Label: s.Label, Value: s.Value, Style: filled(c)})
	}
	return r.encode(r.barChart(spec, bars, nil))
}

// GroupedBar barras lado a lado por grupo. El color de cada barra sale de su
// etiqueta, así una misma categoría conserva el color en todos los grupos.
func (r *Renderer) GroupedBar(spec dto.ChartSpec) ([]byte, error) {
	if len(spec.Groups) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	legend := newLegend()
	var bars []gochart.Value
	for gi, g := range spec.Groups {
		if gi > 0 {
			bars = append(bars, gochart.Value{Style: gochart.Style{
				FillColor:   drawing.ColorTransparent,
				StrokeColor: drawing.ColorTransparent,
			}})
		}
		for vi, v := range g.Values {
			c := legend.color(v.Label, v.Color)
			label := ""
			if vi == len(g.Values)/2 {
				label = g.Label
			}
			bars = append(bars, gochart.Value{Label: label, Value: v.Value, Style: filled(c)})
		}
	}
	if len(bars) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return r.encode(r.barChart(spec, bars, legend))
}

// StackedBar una columna por grupo con sus valores apilados en valores absolutos:
// la altura de cada columna es el total del grupo. Las columnas se dibujan como
// elemento sobre un gochart.Chart; la serie sin trazo solo fija los ejes.
func (r *Renderer) StackedBar(spec dto.ChartSpec) ([]byte, error) {
	type column struct {
		label  string
		spans  [][2]float64
		colors []drawing.Color
	}
	legend := newLegend()
	var columns []column
	top := 0.0
	for _, g := range spec.Groups {
		values := make([]float64, 0, len(g.Values))
		colors := make([]drawing.Color, 0, len(g.Values))
		for _, v := range g.Values {
			values = append(values, v.Value)
			colors = append(colors, legend.color(v.Label, v.Color))
		}
		spans, total := stackLayout(values)
		if total <= 0 {
			continue
		}
		top = math.Max(top, total)
		columns = append(columns, column{label: g.Label, spans: spans, colors: colors})
	}
	if len(columns) == 0 {
		return nil, domain.ErrEmptyDataset
	}

	n := float64(len(columns))
	xr := &gochart.ContinuousRange{Min: -0.5, Max: n - 0.5}
	yr := &gochart.ContinuousRange{Min: 0, Max: top * 1.05}
	ticks := []gochart.Tick{{Value: -0.5}}
	for i, c := range columns {
		ticks = append(ticks, gochart.Tick{Value: float64(i), Label: c.label})
	}
	ticks = append(ticks, gochart.Tick{Value: n - 0.5})
	xAxis := gochart.XAxis{Name: spec.XLabel, Range: xr, Ticks: ticks}
	if len(columns) > 20 {
		xAxis.Style = gochart.Style{TextRotationDegrees: 90, FontSize: 7}
	}

	draw := func(rd gochart.Renderer, canvas gochart.Box, _ gochart.Style) {
		half := max(1, (xr.Translate(1)-xr.Translate(0))/3)
		for i, c := range columns {
			x := canvas.Left + xr.Translate(float64(i))
			for j, span := range c.spans {
				if span[1] <= span[0] {
					continue
				}
				gochart.Draw.Box(rd, gochart.Box{
					Top:    canvas.Bottom - yr.Translate(span[1]),
					Left:   x - half,
					Right:  x + half,
					Bottom: canvas.Bottom - yr.Translate(span[0]),
				}, filled(c.colors[j]))
			}
		}
	}

	return r.encode(gochart.Chart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 48}},
		XAxis:      xAxis,
		YAxis:      gochart.YAxis{Name: spec.YLabel, Range: yr},
		Series: []gochart.Series{gochart.ContinuousSeries{
			Style:   gochart.Style{StrokeWidth: gochart.Disabled},
			XValues: []float64{-0.5, n - 0.5},
			YValues: []float64{0, top},
		}},
		Elements: []gochart.Renderable{draw, legend.render},
	})
}

// stackLayout tramos [desde, hasta] de cada valor apilado sobre los anteriores y el
// total de la columna. Los valores negativos o NaN ocupan un tramo vacío.
func stackLayout(values []float64) (spans [][2]float64, total float64) {
	spans = make([][2]float64, 0, len(values))
	for _, v := range values {
		if v < 0 || math.IsNaN(v) {
			v = 0
		}
		spans = append(spans, [2]float64{total, total + v})
		total += v
	}
	return spans, total
}

func (r *Renderer) barChart(spec dto.ChartSpec, bars []gochart.Value, legend *legend) gochart.BarChart {
	lo, hi := 0.0, 0.0
	for _, b := range bars {
		lo, hi = math.Min(lo, b.Value), math.Max(hi, b.Value)
	}
	if hi == lo {
		hi = lo + 1
	}
	slot := r.slot(len(bars))
	width := max(1, slot*2/3)

	xStyle := gochart.Style{}
	if len(bars) > 20 {
		xStyle.TextRotationDegrees = 90
		xStyle.FontSize = 7
	}
	bc := gochart.BarChart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: background(),
		BarWidth:   width,
		BarSpacing: max(1, slot-width),
		XAxis:      xStyle,
		YAxis: gochart.YAxis{
			Name:  spec.YLabel,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi * 1.05},
		},
		Bars: bars,
	}
	if legend != nil {
		bc.Elements = []gochart.Renderable{legend.render}
	}
	return bc
}

// slot ancho disponible por barra descontando el eje Y y los márgenes.
func (r *Renderer) slot(n int) int {
	plot := r.width - 140
	if n <= 0 || plot <= 0 {
		return 1
	}
	return max(2, min(plot/n, 120))
}

// ── Series ────────────────────────────────────────────────────────────────────

// Scatter una serie de puntos por ChartSeries. Si algún punto trae Size se dibuja
// como burbujas con radio proporcional a la raíz del tamaño.
func (r *Renderer) Scatter(spec dto.ChartSpec) ([]byte, error) {
	xr, yr, err := bounds(spec.Series)
	if err != nil {
		return nil, err
	}
	maxSize := 0.0
	for _, s := range spec.Series {
		for _, p := range s.Points {
			maxSize = math.Max(maxSize, p.Size)
		}
	}

	series := make([]gochart.Series, 0, len(spec.Series))
	for i, s := range spec.Series {
		xs, ys, sizes := split(s.Points)
		c := colorOf(s.Color, i)
		style := gochart.Style{
			StrokeWidth: gochart.Disabled,
			DotWidth:    5,
			DotColor:    c.WithAlpha(200),
		}
		if maxSize > 0 {
			style.DotWidthProvider = func(_, _ gochart.Range, index int, _, _ float64) float64 {
				return bubbleRadius(sizes[index], maxSize)
			}
		}
		series = append(series, gochart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys, Style: style})
	}

	ch := gochart.Chart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      gochart.XAxis{Name: spec.XLabel, Range: xr},
		YAxis:      gochart.YAxis{Name: spec.YLabel, Range: yr},
		Series:     series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return r.encode(ch)
}

// CategoryLines líneas con marcadores sobre un eje X categórico (spec.XTicks).
func (r *Renderer) CategoryLines(spec dto.ChartSpec) ([]byte, error) {
	xr, yr, err := bounds(spec.Series)
	if err != nil {
		return nil, err
	}
	series := make([]gochart.Series, 0, len(spec.Series))
	for i, s := range spec.Series {
		xs, ys, _ := split(s.Points)
		c := colorOf(s.Color, i)
		series = append(series, gochart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: gochart.Style{
				StrokeColor: c,
				StrokeWidth: 2,
				DotColor:    c,
				DotWidth:    3,
			},
		})
	}

	ticks := make([]gochart.Tick, 0, len(spec.XTicks))
	for _, t := range spec.XTicks {
		ticks = append(ticks, gochart.Tick{Value: t.Value, Label: t.Label})
	}
	xAxis := gochart.XAxis{Name: spec.XLabel, Range: xr, Ticks: ticks}
	if len(ticks) > 20 {
		xAxis.Style = gochart.Style{TextRotationDegrees: 90, FontSize: 7}
	}

	ch := gochart.Chart{
		Title:      spec.Title,
		Width:      r.width,
		Height:     r.height,
		Background: gochart.Style{Padding: gochart.Box{Top: 40, Left: 16, Right: 16, Bottom: 48}},
		XAxis:      xAxis,
		YAxis:      gochart.YAxis{Name: spec.YLabel, Range: yr},
		Series:     series,
	}
	ch.Elements = []gochart.Renderable{gochart.Legend(&ch)}
	return r.encode(ch)
}

func split(points []dto.ChartPoint) (xs, ys, sizes []float64) {
	xs = make([]float64, 0, len(points))
	ys = make([]float64, 0, len(points))
	sizes = make([]float64, 0, len(points))
	for _, p := range points {
		xs = append(xs, p.X)
		ys = append(ys, p.Y)
		sizes = append(sizes, p.Size)
	}
	return xs, ys, sizes
}

// bounds rangos de ejes con un 5 % de margen. Un rango degenerado (un solo punto o
// todos iguales) se abre en ±1 para que go-chart no falle.
func bounds(series []dto.ChartSeries) (x, y *gochart.ContinuousRange, err error) {
	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	n := 0
	for _, s := range series {
		for _, p := range s.Points {
			xmin, xmax = math.Min(xmin, p.X), math.Max(xmax, p.X)
			ymin, ymax = math.Min(ymin, p.Y), math.Max(ymax, p.Y)
			n++
		}
	}
	if n == 0 {
		return nil, nil, domain.ErrEmptyDataset
	}
	return padded(xmin, xmax), padded(ymin, ymax), nil
}

func padded(lo, hi float64) *gochart.ContinuousRange {
	if hi == lo {
		return &gochart.ContinuousRange{Min: lo - 1, Max: hi + 1}
	}
	pad := (hi - lo) * 0.05
	return &gochart.ContinuousRange{Min: lo - pad, Max: hi + pad}
}

// bubbleRadius entre 3 y 20 px; el área crece con el tamaño.
func bubbleRadius(size, maxSize float64) float64 {
	if size <= 0 || maxSize <= 0 {
		return 3
	}
	return 3 + 17*math.Sqrt(size/maxSize)
}
