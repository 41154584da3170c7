package dto

import "github.com/shopspring/decimal"

// ── Genéricos ─────────────────────────────────────────────────────────────────

// CategoryTotalDTO total (suma o promedio, según la consulta) por categoría.
type CategoryTotalDTO struct {
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// CategoryCountDTO número de filas por categoría.
type CategoryCountDTO struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// CrossTotalDTO total por par (grupo, categoría). Ej: (product type, demografía).
type CrossTotalDTO struct {
	Group    string          `json:"group"`
	Category string          `json:"category"`
	Value    decimal.Decimal `json:"value"`
}

// CrossCountDTO número de filas por par (grupo, categoría).
type CrossCountDTO struct {
	Group    string `json:"group"`
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// ── Producto ──────────────────────────────────────────────────────────────────

// ProductSummaryDTO agregado por (product type, SKU).
type ProductSummaryDTO struct {
	ProductType      string          `json:"product_type"`
	SKU              string          `json:"sku"`
	RevenueGenerated decimal.Decimal `json:"revenue_generated"` // suma
	ProductsSold     int             `json:"products_sold"`     // suma
	AvgPrice         decimal.Decimal `json:"avg_price"`         // promedio
}

// PricePointDTO una fila vista como punto precio/ingreso (scatter fila a fila).
type PricePointDTO struct {
	SKU              string          `json:"sku"`
	ProductType      string          `json:"product_type"`
	Price            decimal.Decimal `json:"price"`
	RevenueGenerated decimal.Decimal `json:"revenue_generated"`
	ProductsSold     int             `json:"products_sold"`
}

// ── Demografía ────────────────────────────────────────────────────────────────

// SupplierPreferenceDTO conteo por (proveedor, demografía, product type).
type SupplierPreferenceDTO struct {
	Supplier     string `json:"supplier"`
	Demographic  string `json:"demographic"`
	ProductType  string `json:"product_type"`
	ProductCount int    `json:"product_count"`
}

// ── Inventario ────────────────────────────────────────────────────────────────

// InventoryRowDTO stock vs disponibilidad de un SKU.
type InventoryRowDTO struct {
	SKU                   string `json:"sku"`
	StockLevels           int    `json:"stock_levels"`
	Availability          int    `json:"availability"`
	StockAvailabilityDiff int    `json:"stock_availability_diff"` // stock - disponibilidad
	OrderQuantities       int    `json:"order_quantities"`
}

// TurnoverRowDTO rotación de inventario de un SKU.
type TurnoverRowDTO struct {
	SKU          string              `json:"sku"`
	ProductType  string              `json:"product_type"`
	ProductsSold int                 `json:"products_sold"`
	StockLevels  int                 `json:"stock_levels"`
	Ratio        decimal.NullDecimal `json:"inventory_turnover_ratio"` // null si stock = 0
	Unbounded    bool                `json:"unbounded,omitempty"`      // stock 0 con ventas
}

// SKUPointDTO valor de una métrica para un SKU. Index es la posición de la fila
// en el dataset y sirve de eje X compartido entre series.
type SKUPointDTO struct {
	Index int             `json:"index"`
	SKU   string          `json:"sku"`
	Value decimal.Decimal `json:"value"`
}

// SKUSeriesDTO serie de una métrica por SKU para un product type.
type SKUSeriesDTO struct {
	ProductType string        `json:"product_type"`
	Points      []SKUPointDTO `json:"points"`
}

// ── Proveedores ───────────────────────────────────────────────────────────────

// SupplierSummaryDTO agregado por proveedor.
type SupplierSummaryDTO struct {
	Supplier              string          `json:"supplier"`
	AvgLeadTime           decimal.Decimal `json:"avg_lead_time"`
	TotalProduction       int             `json:"total_production_volumes"`
	AvgManufacturingCosts decimal.Decimal `json:"avg_manufacturing_costs"`
	AvgDefectRate         decimal.Decimal `json:"avg_defect_rate"`
}

// ── Envíos ────────────────────────────────────────────────────────────────────

// ShippingSummaryDTO agregado por transportista.
type ShippingSummaryDTO struct {
	Carrier                  string          `json:"carrier"`
	TotalShippingTimes       int             `json:"total_shipping_times"`
	TotalShippingCosts       decimal.Decimal `json:"total_shipping_costs"`
	TotalTransportationCosts decimal.Decimal `json:"total_transportation_costs"`
}

// ── Calidad ───────────────────────────────────────────────────────────────────

// QualityRowDTO resultado de inspección y tasa de defectos de un SKU.
type QualityRowDTO struct {
	SKU              string          `json:"sku"`
	InspectionResult string          `json:"inspection_result"`
	DefectRate       decimal.Decimal `json:"defect_rate"`
}

// SKUDefectDTO SKU con su tasa de defectos.
type SKUDefectDTO struct {
	SKU        string          `json:"sku"`
	DefectRate decimal.Decimal `json:"defect_rate"`
}

// DefectExtremesDTO los N SKUs más defectuosos y los N menos defectuosos.
// Ambas listas van en orden descendente de tasa (Bottom = cola del orden).
type DefectExtremesDTO struct {
	Top    []SKUDefectDTO `json:"top"`
	Bottom []SKUDefectDTO `json:"bottom"`
}
