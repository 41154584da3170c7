// Package pdf genera el reporte de análisis de cadena de suministro en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + dataset     │  Run ID + Fecha              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  OVERVIEW: filas / columnas                                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SECCIÓN: título                                             │
//	│  TABLA: resumen de la sección (primeras filas)               │
//	│  GRÁFICOS: uno por fila, PNG                                 │
//	│  ... una vez por sección ...                                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: leyenda                                             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/application/report"
)

var _ report.ReportPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

// maxTableRows filas por tabla de resumen; las tablas por fila del dataset se recortan.
const maxTableRows = 10

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa report.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateReportPDF genera el PDF y devuelve sus bytes. Solo se embeben los gráficos PNG.
func (g *MarotoPDFGenerator) GenerateReportPDF(
	ctx context.Context,
	r *dto.ReportDTO,
	charts []dto.RenderedChart,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Supply Chain Analysis", true).
		WithAuthor("supplychain-analytics", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(r))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(overviewRow(r.Overview))

	bySection := make(map[string][]dto.RenderedChart)
	for _, c := range charts {
		if c.Extension == "png" {
			bySection[c.Section] = append(bySection[c.Section], c)
		}
	}

	for _, section := range report.Sections[1:] {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
		m.AddRows(sectionTitleRow(report.SectionTitle(section)))
		headers, rows := sectionTable(r, section)
		m.AddRows(tableRows(headers, rows)...)
		for _, c := range bySection[section] {
			m.AddRows(chartRows(c)...)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(r))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + dataset (izq) y run ID + fecha (der).
func headerRow(r *dto.ReportDTO) core.Row {
	fecha := r.GeneratedAt
	if t, err := time.Parse(time.RFC3339, r.GeneratedAt); err == nil {
		fecha = t.Format("02/01/2006 15:04 MST")
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Supply Chain Analysis", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Dataset: "+nonEmpty(r.Overview.Source, "—"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE ANÁLISIS", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Run "+shortID(r.RunID), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// overviewRow: forma del dataset (df.shape).
func overviewRow(o dto.DatasetOverviewDTO) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("DATASET", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Number of rows: %d   |   Number of columns: %d", o.Rows, o.Columns),
				props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionTitleRow(title string) core.Row {
	return row.New(9).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 11, Color: colorPrimary, Top: 2,
		}),
	))
}

// tableRows: cabecera con fondo de color + una fila por registro. Las columnas se
// reparten las 12 unidades de la grilla; el resto va a la primera.
func tableRows(headers []string, data [][]string) []core.Row {
	if len(headers) == 0 {
		return nil
	}
	sizes := colSizes(len(headers))

	header := row.New(7)
	for i, h := range headers {
		header.Add(col.New(sizes[i]).Add(text.New(h, props.Text{
			Style: fontstyle.Bold, Size: 7.5, Align: alignFor(i),
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	header.WithStyle(&props.Cell{BackgroundColor: colorPrimary})

	rows := []core.Row{header}
	for _, d := range data {
		r := row.New(6)
		for i, v := range d {
			r.Add(col.New(sizes[i]).Add(text.New(v, props.Text{
				Size: 7.5, Align: alignFor(i), Top: 1, Left: 1, Right: 1,
			})))
		}
		rows = append(rows, r)
	}
	return append(rows, row.New(3))
}

// chartRows: título del gráfico + imagen a todo el ancho.
func chartRows(c dto.RenderedChart) []core.Row {
	return []core.Row{
		row.New(6).Add(col.New(12).Add(text.New(c.Title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1,
		}))),
		row.New(95).Add(col.New(12).Add(image.NewFromBytes(c.Data, extension.Png, props.Rect{
			Percent: 100,
			Center:  true,
		}))),
	}
}

// footerRow: leyenda final.
func footerRow(r *dto.ReportDTO) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Reporte generado automáticamente a partir de "+nonEmpty(r.Overview.Source, "el dataset")+
				". Run ID "+r.RunID+".",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── Tablas por sección ────────────────────────────────────────────────────────

func sectionTable(r *dto.ReportDTO, section string) ([]string, [][]string) {
	var rows [][]string
	switch section {
	case report.SectionProducts:
		for _, p := range r.Products.Summary {
			rows = append(rows, []string{p.ProductType, p.SKU, money(p.RevenueGenerated), strconv.Itoa(p.ProductsSold), money(p.AvgPrice)})
		}
		return []string{"Product type", "SKU", "Revenue", "Sold", "Avg price"}, head(rows)

	case report.SectionDemographics:
		for _, p := range r.Demographics.SupplierPreference {
			rows = append(rows, []string{p.Demographic, p.Supplier, p.ProductType, strconv.Itoa(p.ProductCount)})
		}
		return []string{"Demographic", "Supplier", "Product type", "Products"}, head(rows)

	case report.SectionInventory:
		for _, t := range r.Inventory.Turnover {
			ratio := "n/a"
			switch {
			case t.Ratio.Valid:
				ratio = t.Ratio.Decimal.StringFixed(2)
			case t.Unbounded:
				ratio = "inf"
			}
			rows = append(rows, []string{t.SKU, t.ProductType, strconv.Itoa(t.ProductsSold), strconv.Itoa(t.StockLevels), ratio})
		}
		return []string{"SKU", "Product type", "Sold", "Stock", "Turnover"}, head(rows)

	case report.SectionSuppliers:
		for _, s := range r.Suppliers.Summary {
			rows = append(rows, []string{s.Supplier, s.AvgLeadTime.StringFixed(1), formatThousands(strconv.Itoa(s.TotalProduction)),
				money(s.AvgManufacturingCosts), s.AvgDefectRate.StringFixed(2)})
		}
		return []string{"Supplier", "Avg lead time", "Production", "Avg mfg cost", "Avg defect %"}, head(rows)

	case report.SectionShipping:
		for _, s := range r.Shipping.ByCarrier {
			rows = append(rows, []string{s.Carrier, strconv.Itoa(s.TotalShippingTimes), money(s.TotalShippingCosts), money(s.TotalTransportationCosts)})
		}
		return []string{"Carrier", "Shipping times", "Shipping costs", "Transport costs"}, head(rows)

	case report.SectionQuality:
		ext := r.Quality.DefectExtremes
		for i, s := range ext.Top {
			rows = append(rows, []string{"Top " + strconv.Itoa(i+1), s.SKU, s.DefectRate.StringFixed(2)})
		}
		for i, s := range ext.Bottom {
			rows = append(rows, []string{"Bottom " + strconv.Itoa(len(ext.Bottom)-i), s.SKU, s.DefectRate.StringFixed(2)})
		}
		return []string{"Rank", "SKU", "Defect rate %"}, rows
	}
	return nil, nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

func head(rows [][]string) [][]string {
	if len(rows) > maxTableRows {
		return rows[:maxTableRows]
	}
	return rows
}

func colSizes(n int) []int {
	sizes := make([]int, n)
	for i := range sizes {
		sizes[i] = 12 / n
	}
	sizes[0] += 12 % n
	return sizes
}

// alignFor: primera columna a la izquierda, el resto (numéricas) a la derecha.
func alignFor(i int) align.Type {
	if i == 0 {
		return align.Left
	}
	return align.Right
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}

// money formatea con dos decimales y separador de miles: 8661.996792 → "$8,662.00".
func money(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")
	return sign + "$" + formatThousands(intPart) + "." + frac
}

// formatThousands inserta comas de miles en un string numérico sin decimales.
// Ej: "25000" → "25,000", "1000000" → "1,000,000"
func formatThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(s) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return string(buf)
}
