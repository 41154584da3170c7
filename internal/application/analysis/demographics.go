package analysis

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

// RevenueByDemographic ingreso total por demografía del cliente.
func RevenueByDemographic(ds *entity.Dataset) []dto.CategoryTotalDTO {
	return sumDecimalBy(ds, demographic, func(r *entity.SKURecord) decimal.Decimal { return r.RevenueGenerated })
}

// SalesByProductAndDemographic unidades vendidas por (product type, demografía).
// Group = product type, Category = demografía.
func SalesByProductAndDemographic(ds *entity.Dataset) []dto.CrossTotalDTO {
	groups := groupRows(ds.Records, by2(productType, demographic))
	out := make([]dto.CrossTotalDTO, 0, len(groups))
	for _, g := range groups {
		sold := sumInt(g.rows, func(r *entity.SKURecord) int { return r.ProductsSold })
		out = append(out, dto.CrossTotalDTO{
			Group:    g.key[0],
			Category: g.key[1],
			Value:    decimal.NewFromInt(int64(sold)),
		})
	}
	return out
}

// SupplierByDemographic número de SKUs por (proveedor, demografía).
func SupplierByDemographic(ds *entity.Dataset) []dto.CrossCountDTO {
	groups := groupRows(ds.Records, by2(supplier, demographic))
	out := make([]dto.CrossCountDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CrossCountDTO{Group: g.key[0], Category: g.key[1], Count: len(g.rows)})
	}
	return out
}

// SupplierPreference número de SKUs por (proveedor, demografía, product type),
// ordenado por demografía ascendente y luego conteo descendente.
func SupplierPreference(ds *entity.Dataset) []dto.SupplierPreferenceDTO {
	groups := groupRows(ds.Records, func(r *entity.SKURecord) groupKey {
		return groupKey{r.SupplierName, r.CustomerDemographics, r.ProductType}
	})
	out := make([]dto.SupplierPreferenceDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.SupplierPreferenceDTO{
			Supplier:     g.key[0],
			Demographic:  g.key[1],
			ProductType:  g.key[2],
			ProductCount: len(g.rows),
		})
	}
	slices.SortStableFunc(out, func(a, b dto.SupplierPreferenceDTO) int {
		if c := strings.Compare(a.Demographic, b.Demographic); c != 0 {
			return c
		}
		return b.ProductCount - a.ProductCount
	})
	return out
}
