package entity

import "github.com/shopspring/decimal"

// SKURecord representa una fila del dataset de cadena de suministro: un SKU con sus
// datos de venta, stock, proveedor, envío y calidad.
// Los montos y la tasa de defectos usan decimal para que las sumas por grupo
// coincidan exactamente con la suma fila a fila.
type SKURecord struct {
	ProductType           string
	SKU                   string
	Price                 decimal.Decimal
	Availability          int
	ProductsSold          int
	RevenueGenerated      decimal.Decimal
	CustomerDemographics  string
	StockLevels           int
	LeadTimes             int // plazo al cliente (opcional)
	OrderQuantities       int
	ShippingTimes         int
	ShippingCarrier       string
	ShippingCosts         decimal.Decimal
	SupplierName          string
	Location              string // opcional
	LeadTime              int    // plazo del proveedor (días)
	ProductionVolumes     int
	ManufacturingLeadTime int // opcional
	ManufacturingCosts    decimal.Decimal
	InspectionResults     string
	DefectRates           decimal.Decimal
	TransportationMode    string
	Route                 string          // opcional
	Costs                 decimal.Decimal // costo de transporte

	// Columnas derivadas (ver inventory.Derive).
	StockAvailabilityDiff  int
	InventoryTurnoverRatio decimal.NullDecimal // inválido si StockLevels == 0
}
