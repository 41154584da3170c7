package report

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
)

// Secciones del reporte. Son también los valores válidos de /api/report/:section.
const (
	SectionOverview     = "overview"
	SectionProducts     = "products"
	SectionDemographics = "demographics"
	SectionInventory    = "inventory"
	SectionSuppliers    = "suppliers"
	SectionShipping     = "shipping"
	SectionQuality      = "quality"
)

// Sections en el orden en que se imprimen y se arman en el PDF.
var Sections = []string{
	SectionOverview, SectionProducts, SectionDemographics, SectionInventory,
	SectionSuppliers, SectionShipping, SectionQuality,
}

// sectionTitles encabezados de cada sección en consola y PDF.
var sectionTitles = map[string]string{
	SectionOverview:     "Dataset Overview",
	SectionProducts:     "Product Performance Analysis",
	SectionDemographics: "Customer Demographics Analysis",
	SectionInventory:    "Stock and Inventory Analysis",
	SectionSuppliers:    "Supplier Analysis",
	SectionShipping:     "Shipping and Logistics Analysis",
	SectionQuality:      "Quality Control Analysis",
}

// SectionTitle encabezado legible de una sección.
func SectionTitle(section string) string {
	if t, ok := sectionTitles[section]; ok {
		return t
	}
	return section
}

// Charts arma la lista de gráficos del reporte. Los nombres son únicos y estables:
// sirven de nombre de archivo y de clave en /api/charts/:name.
func Charts(r *dto.ReportDTO) []dto.ChartSpec {
	var specs []dto.ChartSpec
	specs = append(specs, productCharts(r.Products)...)
	specs = append(specs, demographicCharts(r.Demographics)...)
	specs = append(specs, inventoryCharts(r.Inventory)...)
	specs = append(specs, supplierCharts(r.Suppliers)...)
	specs = append(specs, shippingCharts(r.Shipping)...)
	specs = append(specs, qualityCharts(r.Quality)...)

	// Un gráfico sin datos (p. ej. todos los SKUs sin stock, o una dona cuyas
	// porciones suman cero) no se dibuja.
	return slices.DeleteFunc(specs, func(s dto.ChartSpec) bool {
		if s.Kind == dto.ChartDonut && sliceTotal(s.Slices) <= 0 {
			return true
		}
		return len(s.Slices) == 0 && len(s.Groups) == 0 && len(s.Series) == 0
	})
}

func sliceTotal(parts []dto.ChartSlice) float64 {
	var total float64
	for _, s := range parts {
		total += s.Value
	}
	return total
}

// ── Producto ──────────────────────────────────────────────────────────────────

func productCharts(p dto.ProductSectionDTO) []dto.ChartSpec {
	sales := dto.ChartSpec{
		Name: "sales_by_product_type", Section: SectionProducts, Kind: dto.ChartDonut, Hole: 0.3,
		Title: "Sales Distribution by Product Type",
	}
	for i, s := range p.SalesByType {
		sales.Slices = append(sales.Slices, dto.ChartSlice{Label: s.Category, Value: f(s.Value), Color: productColor(s.Category, i)})
	}

	revSold := dto.ChartSpec{
		Name: "revenue_vs_products_sold", Section: SectionProducts, Kind: dto.ChartScatter,
		Title:  "Revenue vs Number of Products Sold by Product Type",
		XLabel: "Number of products sold", YLabel: "Revenue generated",
	}
	revSold.Series = seriesByProduct(len(p.Summary), func(i int) (string, dto.ChartPoint) {
		s := p.Summary[i]
		return s.ProductType, dto.ChartPoint{X: float64(s.ProductsSold), Y: f(s.RevenueGenerated), Size: f(s.AvgPrice), Label: s.SKU}
	})

	revPrice := dto.ChartSpec{
		Name: "revenue_vs_price", Section: SectionProducts, Kind: dto.ChartScatter,
		Title:  "Revenue Generated vs Price by Product Type",
		XLabel: "Price", YLabel: "Revenue generated",
	}
	revPrice.Series = seriesByProduct(len(p.PriceRevenue), func(i int) (string, dto.ChartPoint) {
		s := p.PriceRevenue[i]
		return s.ProductType, dto.ChartPoint{X: f(s.Price), Y: f(s.RevenueGenerated), Size: float64(s.ProductsSold), Label: s.SKU}
	})

	dist := dto.ChartSpec{
		Name: "product_type_distribution", Section: SectionProducts, Kind: dto.ChartDonut, Hole: 0.3,
		Title: "Distribution of Product Types in Inventory",
	}
	for i, c := range p.TypeDistribution {
		dist.Slices = append(dist.Slices, dto.ChartSlice{Label: c.Category, Value: float64(c.Count), Color: paletteColor(i)})
	}
	return []dto.ChartSpec{sales, revSold, revPrice, dist}
}

// seriesByProduct agrupa n puntos en una serie por product type, en el orden fijo de
// productos y con sus colores.
func seriesByProduct(n int, point func(i int) (string, dto.ChartPoint)) []dto.ChartSeries {
	index := make(map[string]int)
	var series []dto.ChartSeries
	for i := 0; i < n; i++ {
		pt, p := point(i)
		pos, ok := index[pt]
		if !ok {
			pos = len(series)
			index[pt] = pos
			series = append(series, dto.ChartSeries{Name: pt})
		}
		series[pos].Points = append(series[pos].Points, p)
	}
	sortByProduct(series, func(s dto.ChartSeries) string { return s.Name })
	for i := range series {
		series[i].Color = productColor(series[i].Name, i)
	}
	return series
}

func sortByProduct[T any](items []T, name func(T) string) {
	slices.SortStableFunc(items, func(a, b T) int {
		if c := cmp.Compare(productRank(name(a)), productRank(name(b))); c != 0 {
			return c
		}
		return strings.Compare(name(a), name(b))
	})
}

// ── Demografía ────────────────────────────────────────────────────────────────

func demographicCharts(d dto.DemographicsSectionDTO) []dto.ChartSpec {
	revenue := dto.ChartSpec{
		Name: "revenue_by_demographic", Section: SectionDemographics, Kind: dto.ChartDonut, Hole: 0.3,
		Title: "Revenue Distribution by Customer Demographics",
	}
	for i, c := range d.RevenueByDemographic {
		revenue.Slices = append(revenue.Slices, dto.ChartSlice{Label: c.Category, Value: f(c.Value), Color: paletteColor(i)})
	}

	// Grupos = demografía, barras = product type.
	salesCells := make([]cell, 0, len(d.SalesByProductAndDemo))
	for _, c := range d.SalesByProductAndDemo {
		salesCells = append(salesCells, cell{group: c.Category, label: c.Group, value: f(c.Value)})
	}
	sales := dto.ChartSpec{
		Name: "sales_by_product_and_demographic", Section: SectionDemographics, Kind: dto.ChartGroupedBar,
		Title:  "Product Sales by Product Type and Customer Demographics",
		XLabel: "Customer Demographics", YLabel: "Total Units Sold",
		Groups: pivot(salesCells, productColor),
	}

	// Columnas = proveedor, segmentos = demografía.
	supplierCells := make([]cell, 0, len(d.SupplierByDemographic))
	for _, c := range d.SupplierByDemographic {
		supplierCells = append(supplierCells, cell{group: c.Group, label: c.Category, value: float64(c.Count)})
	}
	suppliers := dto.ChartSpec{
		Name: "supplier_by_demographic", Section: SectionDemographics, Kind: dto.ChartStackedBar,
		Title:  "Supplier Distribution by Customer Demographics",
		XLabel: "Supplier", YLabel: "Number of Products",
		Groups: pivot(supplierCells, func(_ string, i int) string { return paletteColor(i) }),
	}

	specs := []dto.ChartSpec{revenue, sales, suppliers}
	specs = append(specs, supplierPreferenceFacets(d.SupplierPreference)...)
	return specs
}

// supplierPreferenceFacets un gráfico de barras agrupadas (proveedor × product type)
// por cada demografía.
func supplierPreferenceFacets(prefs []dto.SupplierPreferenceDTO) []dto.ChartSpec {
	var demos []string
	byDemo := make(map[string][]cell)
	for _, p := range prefs {
		if _, ok := byDemo[p.Demographic]; !ok {
			demos = append(demos, p.Demographic)
		}
		byDemo[p.Demographic] = append(byDemo[p.Demographic], cell{group: p.Supplier, label: p.ProductType, value: float64(p.ProductCount)})
	}
	specs := make([]dto.ChartSpec, 0, len(demos))
	used := make(map[string]bool)
	for _, demo := range demos {
		// Demografías distintas pueden dar el mismo slug ("Non-binary", "Non binary").
		base := "supplier_preference_" + slug(demo)
		name := base
		for n := 2; used[name]; n++ {
			name = base + "_" + strconv.Itoa(n)
		}
		used[name] = true
		specs = append(specs, dto.ChartSpec{
			Name:    name,
			Section: SectionDemographics,
			Kind:    dto.ChartGroupedBar,
			Title:   "Supplier Preference: " + demo,
			XLabel:  "Supplier",
			YLabel:  "Number of Products",
			Groups:  pivot(byDemo[demo], productColor),
		})
	}
	return specs
}

// cell un valor de una tabla cruzada.
type cell struct {
	group, label string
	value        float64
}

// pivot arma grupos ordenados por nombre con una barra por etiqueta; las etiquetas
// siguen el orden de productos y luego el alfabético. Las combinaciones ausentes van
// en cero para que todos los grupos tengan las mismas barras.
func pivot(cells []cell, color func(label string, i int) string) []dto.ChartGroup {
	var groups, labels []string
	values := make(map[[2]string]float64)
	for _, c := range cells {
		if !slices.Contains(groups, c.group) {
			groups = append(groups, c.group)
		}
		if !slices.Contains(labels, c.label) {
			labels = append(labels, c.label)
		}
		values[[2]string{c.group, c.label}] += c.value
	}
	slices.Sort(groups)
	sortByProduct(labels, func(s string) string { return s })

	out := make([]dto.ChartGroup, 0, len(groups))
	for _, g := range groups {
		cg := dto.ChartGroup{Label: g}
		for i, l := range labels {
			cg.Values = append(cg.Values, dto.ChartSlice{Label: l, Value: values[[2]string{g, l}], Color: color(l, i)})
		}
		out = append(out, cg)
	}
	return out
}

// ── Inventario ────────────────────────────────────────────────────────────────

func inventoryCharts(inv dto.InventorySectionDTO) []dto.ChartSpec {
	specs := []dto.ChartSpec{
		skuLines("revenue_by_sku", "Revenue Generated by SKU", "Revenue Generated ($)", inv.RevenueBySKU),
		skuLines("stock_levels_by_sku", "Stock Levels by SKU", "Stock Levels", inv.StockBySKU),
		skuLines("order_quantities_by_sku", "Order Quantities by SKU", "Order Quantities", inv.OrderQtyBySKU),
	}

	turnover := slices.Clone(inv.Turnover)
	sortByProduct(turnover, func(t dto.TurnoverRowDTO) string { return t.ProductType })
	bar := dto.ChartSpec{
		Name: "inventory_turnover", Section: SectionInventory, Kind: dto.ChartBar,
		Title:  "Inventory Turnover Ratio by SKU",
		XLabel: "SKU", YLabel: "Inventory Turnover Ratio",
	}
	color := productColorer()
	for _, t := range turnover {
		if !t.Ratio.Valid {
			continue
		}
		bar.Slices = append(bar.Slices, dto.ChartSlice{Label: t.SKU, Value: f(t.Ratio.Decimal), Color: color(t.ProductType)})
	}
	return append(specs, bar)
}

// skuLines una línea por product type sobre el eje de SKUs en orden del dataset.
func skuLines(name, title, yLabel string, series []dto.SKUSeriesDTO) dto.ChartSpec {
	spec := dto.ChartSpec{
		Name: name, Section: SectionInventory, Kind: dto.ChartLines,
		Title: title, XLabel: "SKU", YLabel: yLabel,
	}
	var ticks []dto.ChartTick
	for _, s := range series {
		cs := dto.ChartSeries{Name: s.ProductType}
		for _, p := range s.Points {
			cs.Points = append(cs.Points, dto.ChartPoint{X: float64(p.Index), Y: f(p.Value), Label: p.SKU})
			ticks = append(ticks, dto.ChartTick{Value: float64(p.Index), Label: p.SKU})
		}
		spec.Series = append(spec.Series, cs)
	}
	sortByProduct(spec.Series, func(s dto.ChartSeries) string { return s.Name })
	for i := range spec.Series {
		spec.Series[i].Color = productColor(spec.Series[i].Name, i)
	}
	slices.SortFunc(ticks, func(a, b dto.ChartTick) int { return cmp.Compare(a.Value, b.Value) })
	spec.XTicks = ticks
	return spec
}

// ── Proveedores ───────────────────────────────────────────────────────────────

func supplierCharts(s dto.SupplierSectionDTO) []dto.ChartSpec {
	scatter := dto.ChartSpec{
		Name: "lead_time_vs_defect_rate", Section: SectionSuppliers, Kind: dto.ChartScatter,
		Title:  "Supplier Lead Time vs Defect Rates",
		XLabel: "Average Lead Time (days)", YLabel: "Average Defect Rate (%)",
	}
	bar := dto.ChartSpec{
		Name: "defect_rate_by_supplier", Section: SectionSuppliers, Kind: dto.ChartBar,
		Title:  "Average Defect Rates by Supplier",
		XLabel: "Supplier", YLabel: "Average Defect Rate (%)",
	}
	for i, sup := range s.Summary {
		scatter.Series = append(scatter.Series, dto.ChartSeries{
			Name:  sup.Supplier,
			Color: paletteColor(i),
			Points: []dto.ChartPoint{{
				X:     f(sup.AvgLeadTime),
				Y:     f(sup.AvgDefectRate),
				Size:  float64(sup.TotalProduction),
				Label: sup.Supplier,
			}},
		})
		bar.Slices = append(bar.Slices, dto.ChartSlice{Label: sup.Supplier, Value: f(sup.AvgDefectRate), Color: paletteColor(i)})
	}
	return []dto.ChartSpec{scatter, bar}
}

// ── Envíos ────────────────────────────────────────────────────────────────────

func shippingCharts(s dto.ShippingSectionDTO) []dto.ChartSpec {
	carriers := dto.ChartSpec{
		Name: "shipping_costs_by_carrier", Section: SectionShipping, Kind: dto.ChartBar,
		Title:  "Total Shipping Costs by Carrier",
		XLabel: "Shipping Carrier", YLabel: "Shipping Costs ($)",
	}
	for i, c := range s.ByCarrier {
		carriers.Slices = append(carriers.Slices, dto.ChartSlice{Label: c.Carrier, Value: f(c.TotalShippingCosts), Color: paletteColor(i)})
	}
	modes := dto.ChartSpec{
		Name: "transportation_costs_by_mode", Section: SectionShipping, Kind: dto.ChartDonut, Hole: 0.5,
		Title: "Transportation Costs by Mode",
	}
	for i, m := range s.TransportationCostsByMode {
		modes.Slices = append(modes.Slices, dto.ChartSlice{Label: m.Category, Value: f(m.Value), Color: paletteColor(i)})
	}
	return []dto.ChartSpec{carriers, modes}
}

// ── Calidad ───────────────────────────────────────────────────────────────────

func qualityCharts(q dto.QualitySectionDTO) []dto.ChartSpec {
	inspection := dto.ChartSpec{
		Name: "inspection_results", Section: SectionQuality, Kind: dto.ChartDonut, Hole: 0.3,
		Title: "Inspection Results",
	}
	for i, c := range q.InspectionResults {
		inspection.Slices = append(inspection.Slices, dto.ChartSlice{Label: c.Category, Value: float64(c.Count), Color: paletteColor(i)})
	}
	byMode := dto.ChartSpec{
		Name: "defects_by_transport_mode", Section: SectionQuality, Kind: dto.ChartDonut, Hole: 0.3,
		Title: "Average Defect Rates by Mode of Transportation",
	}
	for i, c := range q.DefectsByTransportMode {
		byMode.Slices = append(byMode.Slices, dto.ChartSlice{Label: c.Category, Value: f(c.Value), Color: paletteColor(i)})
	}
	byProduct := dto.ChartSpec{
		Name: "defects_by_product_type", Section: SectionQuality, Kind: dto.ChartDonut, Hole: 0.3,
		Title: "Average Defect Rates by Product Type",
	}
	for i, c := range q.DefectsByProductType {
		byProduct.Slices = append(byProduct.Slices, dto.ChartSlice{Label: c.Category, Value: f(c.Value), Color: productColor(c.Category, i)})
	}

	n := len(q.DefectExtremes.Top)
	extremes := dto.ChartSpec{
		Name: "defect_extremes", Section: SectionQuality, Kind: dto.ChartGradientBar,
		Title:  "Top " + strconv.Itoa(n) + " Most Defective vs Bottom " + strconv.Itoa(len(q.DefectExtremes.Bottom)) + " Least Defective SKUs",
		XLabel: "SKU", YLabel: "Defect Rate (%)",
	}
	for _, s := range append(slices.Clone(q.DefectExtremes.Top), q.DefectExtremes.Bottom...) {
		extremes.Slices = append(extremes.Slices, dto.ChartSlice{Label: s.SKU, Value: f(s.DefectRate)})
	}
	return []dto.ChartSpec{inspection, byMode, byProduct, extremes}
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func f(d decimal.Decimal) float64 { return d.InexactFloat64() }

// slug nombre apto para archivo: minúsculas y '_' en lugar de lo que no sea letra o dígito.
func slug(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	if b.Len() == 0 {
		return "unknown"
	}
	return b.String()
}
