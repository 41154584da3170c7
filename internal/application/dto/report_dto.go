package dto

import "github.com/shopspring/decimal"

// ReportDTO respuesta de GET /api/report: todas las secciones del análisis.
type ReportDTO struct {
	RunID       string `json:"run_id"`
	GeneratedAt string `json:"generated_at"` // RFC3339

	Overview     DatasetOverviewDTO     `json:"overview"`
	Products     ProductSectionDTO      `json:"products"`
	Demographics DemographicsSectionDTO `json:"demographics"`
	Inventory    InventorySectionDTO    `json:"inventory"`
	Suppliers    SupplierSectionDTO     `json:"suppliers"`
	Shipping     ShippingSectionDTO     `json:"shipping"`
	Quality      QualitySectionDTO      `json:"quality"`
}

// DatasetOverviewDTO forma y preview del dataset (df.shape + df.head()).
type DatasetOverviewDTO struct {
	Source      string      `json:"source"`
	Rows        int         `json:"rows"`
	Columns     int         `json:"columns"`
	ColumnNames []string    `json:"column_names"`
	Preview     []SKURowDTO `json:"preview"`
}

// SKURowDTO una fila completa del dataset, con las columnas derivadas.
type SKURowDTO struct {
	ProductType            string              `json:"product_type"`
	SKU                    string              `json:"sku"`
	Price                  decimal.Decimal     `json:"price"`
	Availability           int                 `json:"availability"`
	ProductsSold           int                 `json:"products_sold"`
	RevenueGenerated       decimal.Decimal     `json:"revenue_generated"`
	CustomerDemographics   string              `json:"customer_demographics"`
	StockLevels            int                 `json:"stock_levels"`
	OrderQuantities        int                 `json:"order_quantities"`
	ShippingCarrier        string              `json:"shipping_carrier"`
	SupplierName           string              `json:"supplier_name"`
	DefectRates            decimal.Decimal     `json:"defect_rates"`
	TransportationMode     string              `json:"transportation_mode"`
	StockAvailabilityDiff  int                 `json:"stock_availability_diff"`
	InventoryTurnoverRatio decimal.NullDecimal `json:"inventory_turnover_ratio"`
}

// ProductSectionDTO análisis de desempeño de producto.
type ProductSectionDTO struct {
	Summary          []ProductSummaryDTO `json:"summary"`
	SalesByType      []CategoryTotalDTO  `json:"sales_by_product_type"`
	TypeDistribution []CategoryCountDTO  `json:"product_type_distribution"`
	PriceRevenue     []PricePointDTO     `json:"price_revenue"`
}

// DemographicsSectionDTO análisis por demografía del cliente.
type DemographicsSectionDTO struct {
	RevenueByDemographic  []CategoryTotalDTO      `json:"revenue_by_demographic"`
	SalesByProductAndDemo []CrossTotalDTO         `json:"sales_by_product_and_demographic"` // Group = product type
	SupplierByDemographic []CrossCountDTO         `json:"supplier_by_demographic"`          // Group = proveedor
	SupplierPreference    []SupplierPreferenceDTO `json:"supplier_preference"`
}

// InventorySectionDTO stock, rotación y series por SKU.
type InventorySectionDTO struct {
	Summary       []InventoryRowDTO `json:"summary"`
	Turnover      []TurnoverRowDTO  `json:"turnover"`
	RevenueBySKU  []SKUSeriesDTO    `json:"revenue_by_sku"`
	StockBySKU    []SKUSeriesDTO    `json:"stock_levels_by_sku"`
	OrderQtyBySKU []SKUSeriesDTO    `json:"order_quantities_by_sku"`
}

// SupplierSectionDTO análisis de proveedores.
type SupplierSectionDTO struct {
	Summary []SupplierSummaryDTO `json:"summary"`
}

// ShippingSectionDTO envíos y logística.
type ShippingSectionDTO struct {
	ByCarrier                 []ShippingSummaryDTO `json:"by_carrier"`
	TransportationCostsByMode []CategoryTotalDTO   `json:"transportation_costs_by_mode"`
}

// QualitySectionDTO control de calidad.
type QualitySectionDTO struct {
	Summary                []QualityRowDTO    `json:"summary"`
	InspectionResults      []CategoryCountDTO `json:"inspection_results"`
	DefectsByTransportMode []CategoryTotalDTO `json:"defects_by_transport_mode"` // promedio
	DefectsByProductType   []CategoryTotalDTO `json:"defects_by_product_type"`   // promedio
	DefectExtremes         DefectExtremesDTO  `json:"defect_extremes"`
}
