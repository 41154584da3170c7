// Package console imprime el reporte como tablas alineadas en texto plano.
package console

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/application/report"
	"github.com/jhoicas/supplychain-analytics/internal/domain"
)

// Printer escribe las secciones del reporte en w.
type Printer struct {
	w       io.Writer
	p       *message.Printer
	preview int
}

// NewPrinter construye el printer. preview es el número de filas que se muestran de
// las tablas por fila del dataset (las agrupadas se imprimen completas).
func NewPrinter(w io.Writer, preview int) *Printer {
	if preview <= 0 {
		preview = 5
	}
	return &Printer{w: w, p: message.NewPrinter(language.English), preview: preview}
}

// PrintReport imprime todas las secciones en orden.
func (pr *Printer) PrintReport(r *dto.ReportDTO) error {
	for _, s := range report.Sections {
		if err := pr.PrintSection(r, s); err != nil {
			return err
		}
	}
	return nil
}

// PrintSection imprime una sección por nombre.
func (pr *Printer) PrintSection(r *dto.ReportDTO, section string) error {
	switch section {
	case report.SectionOverview:
		return pr.overview(r.Overview)
	case report.SectionProducts:
		return pr.products(r.Products)
	case report.SectionDemographics:
		return pr.demographics(r.Demographics)
	case report.SectionInventory:
		return pr.inventory(r.Inventory)
	case report.SectionSuppliers:
		return pr.suppliers(r.Suppliers)
	case report.SectionShipping:
		return pr.shipping(r.Shipping)
	case report.SectionQuality:
		return pr.quality(r.Quality)
	}
	return fmt.Errorf("console: %q: %w", section, domain.ErrUnknownSection)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (pr *Printer) overview(o dto.DatasetOverviewDTO) error {
	fmt.Fprintln(pr.w, "Dataset Preview:")
	t := pr.table("Product type", "SKU", "Price", "Availability", "Products sold", "Revenue", "Demographics", "Stock", "Supplier", "Defect rate")
	for _, r := range o.Preview {
		t.row(r.ProductType, r.SKU, pr.dec(r.Price), pr.num(r.Availability), pr.num(r.ProductsSold),
			pr.dec(r.RevenueGenerated), r.CustomerDemographics, pr.num(r.StockLevels), r.SupplierName, pr.dec(r.DefectRates))
	}
	if err := t.flush(); err != nil {
		return err
	}
	fmt.Fprintf(pr.w, "Number of rows: %s\n", pr.num(o.Rows))
	fmt.Fprintf(pr.w, "Number of columns: %s\n", pr.num(o.Columns))
	return nil
}

func (pr *Printer) products(p dto.ProductSectionDTO) error {
	pr.banner(report.SectionTitle(report.SectionProducts))
	t := pr.table("Product type", "SKU", "Revenue generated", "Products sold", "Price")
	for _, s := range head(p.Summary, pr.preview) {
		t.row(s.ProductType, s.SKU, pr.dec(s.RevenueGenerated), pr.num(s.ProductsSold), pr.dec(s.AvgPrice))
	}
	if err := t.flush(); err != nil {
		return err
	}

	fmt.Fprintln(pr.w, "\nSales by product type:")
	if err := pr.totals("Product type", "Products sold", p.SalesByType); err != nil {
		return err
	}
	fmt.Fprintln(pr.w, "\nProduct type distribution:")
	return pr.counts("Product type", "Count", p.TypeDistribution)
}

func (pr *Printer) demographics(d dto.DemographicsSectionDTO) error {
	pr.banner(report.SectionTitle(report.SectionDemographics))
	fmt.Fprintln(pr.w, "Revenue by customer demographics:")
	if err := pr.totals("Customer demographics", "Revenue generated", d.RevenueByDemographic); err != nil {
		return err
	}

	fmt.Fprintln(pr.w, "\nProducts sold by product type and demographics:")
	t := pr.table("Product type", "Customer demographics", "Products sold")
	for _, c := range d.SalesByProductAndDemo {
		t.row(c.Group, c.Category, pr.dec(c.Value))
	}
	if err := t.flush(); err != nil {
		return err
	}

	fmt.Fprintln(pr.w, "\nSuppliers by demographics:")
	t = pr.table("Supplier", "Customer demographics", "Count")
	for _, c := range d.SupplierByDemographic {
		t.row(c.Group, c.Category, pr.num(c.Count))
	}
	if err := t.flush(); err != nil {
		return err
	}

	fmt.Fprintln(pr.w, "\nSupplier preference:")
	t = pr.table("Customer demographics", "Supplier", "Product type", "Product count")
	for _, p := range d.SupplierPreference {
		t.row(p.Demographic, p.Supplier, p.ProductType, pr.num(p.ProductCount))
	}
	return t.flush()
}

func (pr *Printer) inventory(inv dto.InventorySectionDTO) error {
	pr.banner(report.SectionTitle(report.SectionInventory))
	t := pr.table("SKU", "Stock levels", "Availability", "Stock - availability", "Order quantities")
	for _, r := range head(inv.Summary, pr.preview) {
		t.row(r.SKU, pr.num(r.StockLevels), pr.num(r.Availability), pr.num(r.StockAvailabilityDiff), pr.num(r.OrderQuantities))
	}
	if err := t.flush(); err != nil {
		return err
	}

	pr.banner("Inventory Turnover Ratio Calculation")
	t = pr.table("SKU", "Product type", "Products sold", "Stock levels", "Turnover ratio")
	for _, r := range head(inv.Turnover, pr.preview) {
		ratio := "n/a"
		switch {
		case r.Ratio.Valid:
			ratio = pr.dec(r.Ratio.Decimal)
		case r.Unbounded:
			ratio = "inf"
		}
		t.row(r.SKU, r.ProductType, pr.num(r.ProductsSold), pr.num(r.StockLevels), ratio)
	}
	return t.flush()
}

func (pr *Printer) suppliers(s dto.SupplierSectionDTO) error {
	pr.banner(report.SectionTitle(report.SectionSuppliers))
	t := pr.table("Supplier", "Lead time", "Production volumes", "Manufacturing costs", "Defect rates")
	for _, r := range s.Summary {
		t.row(r.Supplier, pr.dec(r.AvgLeadTime), pr.num(r.TotalProduction), pr.dec(r.AvgManufacturingCosts), pr.dec(r.AvgDefectRate))
	}
	return t.flush()
}

func (pr *Printer) shipping(s dto.ShippingSectionDTO) error {
	pr.banner(report.SectionTitle(report.SectionShipping))
	t := pr.table("Carrier", "Shipping times", "Shipping costs", "Costs")
	for _, r := range s.ByCarrier {
		t.row(r.Carrier, pr.num(r.TotalShippingTimes), pr.dec(r.TotalShippingCosts), pr.dec(r.TotalTransportationCosts))
	}
	if err := t.flush(); err != nil {
		return err
	}
	fmt.Fprintln(pr.w, "\nTransportation costs by mode:")
	return pr.totals("Transportation mode", "Costs", s.TransportationCostsByMode)
}

func (pr *Printer) quality(q dto.QualitySectionDTO) error {
	pr.banner(report.SectionTitle(report.SectionQuality))
	t := pr.table("SKU", "Inspection results", "Defect rates")
	for _, r := range head(q.Summary, pr.preview) {
		t.row(r.SKU, r.InspectionResult, pr.dec(r.DefectRate))
	}
	if err := t.flush(); err != nil {
		return err
	}

	fmt.Fprintln(pr.w, "\nInspection results:")
	if err := pr.counts("Inspection result", "Count", q.InspectionResults); err != nil {
		return err
	}
	fmt.Fprintln(pr.w, "\nAverage defect rate by transportation mode:")
	if err := pr.totals("Transportation mode", "Defect rate", q.DefectsByTransportMode); err != nil {
		return err
	}
	fmt.Fprintln(pr.w, "\nAverage defect rate by product type:")
	if err := pr.totals("Product type", "Defect rate", q.DefectsByProductType); err != nil {
		return err
	}

	fmt.Fprintf(pr.w, "\nTop %d most defective SKUs:\n", len(q.DefectExtremes.Top))
	if err := pr.defects(q.DefectExtremes.Top); err != nil {
		return err
	}
	fmt.Fprintf(pr.w, "\nBottom %d least defective SKUs:\n", len(q.DefectExtremes.Bottom))
	return pr.defects(q.DefectExtremes.Bottom)
}

// ── Tablas ────────────────────────────────────────────────────────────────────

func (pr *Printer) banner(title string) {
	fmt.Fprintf(pr.w, "\n=== %s ===\n", title)
}

func (pr *Printer) totals(key, value string, rows []dto.CategoryTotalDTO) error {
	t := pr.table(key, value)
	for _, r := range rows {
		t.row(r.Category, pr.dec(r.Value))
	}
	return t.flush()
}

func (pr *Printer) counts(key, value string, rows []dto.CategoryCountDTO) error {
	t := pr.table(key, value)
	for _, r := range rows {
		t.row(r.Category, pr.num(r.Count))
	}
	return t.flush()
}

func (pr *Printer) defects(rows []dto.SKUDefectDTO) error {
	t := pr.table("SKU", "Defect rates")
	for _, r := range rows {
		t.row(r.SKU, pr.dec(r.DefectRate))
	}
	return t.flush()
}

type table struct {
	tw *tabwriter.Writer
}

func (pr *Printer) table(headers ...string) *table {
	t := &table{tw: tabwriter.NewWriter(pr.w, 0, 0, 2, ' ', tabwriter.AlignRight)}
	t.row(headers...)
	return t
}

func (t *table) row(cells ...string) {
	fmt.Fprintln(t.tw, strings.Join(cells, "\t")+"\t")
}

func (t *table) flush() error {
	if err := t.tw.Flush(); err != nil {
		return fmt.Errorf("console: escribir tabla: %w", err)
	}
	return nil
}

// ── Formato ───────────────────────────────────────────────────────────────────

func (pr *Printer) dec(d decimal.Decimal) string {
	return pr.p.Sprintf("%.2f", d.InexactFloat64())
}

func (pr *Printer) num(n int) string {
	return pr.p.Sprintf("%d", n)
}

func head[T any](rows []T, n int) []T {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}
