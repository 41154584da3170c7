package analysis

import (
	"slices"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

// Overview forma del dataset y sus primeras n filas.
func Overview(ds *entity.Dataset, n int) dto.DatasetOverviewDTO {
	rows, cols := ds.Shape()
	head := ds.Head(n)
	preview := make([]dto.SKURowDTO, 0, len(head))
	for _, r := range head {
		preview = append(preview, ToSKURow(r))
	}
	return dto.DatasetOverviewDTO{
		Source:      ds.Source,
		Rows:        rows,
		Columns:     cols,
		ColumnNames: slices.Clone(ds.Columns),
		Preview:     preview,
	}
}

// ToSKURow convierte un registro a su DTO de fila.
func ToSKURow(r entity.SKURecord) dto.SKURowDTO {
	return dto.SKURowDTO{
		ProductType:            r.ProductType,
		SKU:                    r.SKU,
		Price:                  r.Price,
		Availability:           r.Availability,
		ProductsSold:           r.ProductsSold,
		RevenueGenerated:       r.RevenueGenerated,
		CustomerDemographics:   r.CustomerDemographics,
		StockLevels:            r.StockLevels,
		OrderQuantities:        r.OrderQuantities,
		ShippingCarrier:        r.ShippingCarrier,
		SupplierName:           r.SupplierName,
		DefectRates:            r.DefectRates,
		TransportationMode:     r.TransportationMode,
		StockAvailabilityDiff:  r.StockAvailabilityDiff,
		InventoryTurnoverRatio: r.InventoryTurnoverRatio,
	}
}
