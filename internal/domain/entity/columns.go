package entity

import "strings"

// Nombres canónicos de las columnas del dataset (cabecera del CSV original).
const (
	ColProductType           = "Product type"
	ColSKU                   = "SKU"
	ColPrice                 = "Price"
	ColAvailability          = "Availability"
	ColProductsSold          = "Number of products sold"
	ColRevenueGenerated      = "Revenue generated"
	ColCustomerDemographics  = "Customer demographics"
	ColStockLevels           = "Stock levels"
	ColLeadTimes             = "Lead times"
	ColOrderQuantities       = "Order quantities"
	ColShippingTimes         = "Shipping times"
	ColShippingCarriers      = "Shipping carriers"
	ColShippingCosts         = "Shipping costs"
	ColSupplierName          = "Supplier name"
	ColLocation              = "Location"
	ColLeadTime              = "Lead time"
	ColProductionVolumes     = "Production volumes"
	ColManufacturingLeadTime = "Manufacturing lead time"
	ColManufacturingCosts    = "Manufacturing costs"
	ColInspectionResults     = "Inspection results"
	ColDefectRates           = "Defect rates"
	ColTransportationModes   = "Transportation modes"
	ColRoutes                = "Routes"
	ColCosts                 = "Costs"
)

// AllColumns todas las columnas conocidas en el orden del CSV original.
var AllColumns = []string{
	ColProductType, ColSKU, ColPrice, ColAvailability, ColProductsSold,
	ColRevenueGenerated, ColCustomerDemographics, ColStockLevels, ColLeadTimes,
	ColOrderQuantities, ColShippingTimes, ColShippingCarriers, ColShippingCosts,
	ColSupplierName, ColLocation, ColLeadTime, ColProductionVolumes,
	ColManufacturingLeadTime, ColManufacturingCosts, ColInspectionResults,
	ColDefectRates, ColTransportationModes, ColRoutes, ColCosts,
}

// RequiredColumns columnas que usa alguna agregación; si falta una, la carga falla.
var RequiredColumns = []string{
	ColProductType, ColSKU, ColPrice, ColAvailability, ColProductsSold,
	ColRevenueGenerated, ColCustomerDemographics, ColStockLevels, ColOrderQuantities,
	ColShippingTimes, ColShippingCarriers, ColShippingCosts, ColSupplierName,
	ColLeadTime, ColProductionVolumes, ColManufacturingCosts, ColInspectionResults,
	ColDefectRates, ColTransportationModes, ColCosts,
}

// OptionalColumns se leen si están presentes.
var OptionalColumns = []string{
	ColLeadTimes, ColLocation, ColManufacturingLeadTime, ColRoutes,
}

// NormalizeColumn convierte un nombre de columna a su forma de comparación:
// minúsculas, sin espacios en los extremos y con '_' equivalente a ' '.
// "Product_type", "product type" y " Product Type " son la misma columna.
func NormalizeColumn(name string) string {
	name = strings.TrimPrefix(name, "\ufeff")
	name = strings.ReplaceAll(name, "_", " ")
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}
