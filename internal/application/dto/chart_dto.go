package dto

// ChartKind tipo de gráfico que sabe dibujar un ChartRenderer.
type ChartKind string

const (
	ChartDonut       ChartKind = "donut"        // Slices; Hole = 0 dibuja un pie
	ChartBar         ChartKind = "bar"          // Slices, una barra por slice
	ChartGroupedBar  ChartKind = "grouped_bar"  // Groups lado a lado
	ChartStackedBar  ChartKind = "stacked_bar"  // Groups apilados
	ChartScatter     ChartKind = "scatter"      // Series de puntos, Size opcional (burbuja)
	ChartLines       ChartKind = "lines"        // Series con línea + marcadores sobre XTicks
	ChartGradientBar ChartKind = "gradient_bar" // Slices coloreadas por valor (Viridis)
)

// ChartSpec describe un gráfico de forma independiente de la librería que lo dibuja.
// Los colores son hex CSS ("#ADD8E6"); vacío = paleta por defecto del renderer.
type ChartSpec struct {
	Name    string    `json:"name"`    // nombre de archivo sin extensión
	Section string    `json:"section"` // sección del reporte a la que pertenece
	Title   string    `json:"title"`
	Kind    ChartKind `json:"kind"`
	XLabel  string    `json:"x_label,omitempty"`
	YLabel  string    `json:"y_label,omitempty"`
	Hole    float64   `json:"hole,omitempty"` // fracción del radio vacía en donuts (0.3, 0.5)

	Slices []ChartSlice  `json:"slices,omitempty"`
	Groups []ChartGroup  `json:"groups,omitempty"`
	Series []ChartSeries `json:"series,omitempty"`
	XTicks []ChartTick   `json:"x_ticks,omitempty"`
}

// ChartSlice un valor etiquetado (porción, barra o segmento de barra).
type ChartSlice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Color string  `json:"color,omitempty"`
}

// ChartGroup una categoría del eje X con varios valores (barras agrupadas o apiladas).
type ChartGroup struct {
	Label  string       `json:"label"`
	Values []ChartSlice `json:"values"`
}

// ChartSeries serie de puntos con nombre y color propios (leyenda).
type ChartSeries struct {
	Name   string       `json:"name"`
	Color  string       `json:"color,omitempty"`
	Points []ChartPoint `json:"points"`
}

// ChartPoint punto de una serie. Size > 0 escala el marcador (gráfico de burbujas).
type ChartPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size,omitempty"`
	Label string  `json:"label,omitempty"`
}

// ChartTick etiqueta de un eje categórico.
type ChartTick struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

// RenderedChart gráfico ya dibujado.
type RenderedChart struct {
	Name      string
	Section   string
	Title     string
	Extension string // png | svg
	Data      []byte
}
