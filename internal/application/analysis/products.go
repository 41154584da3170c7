package analysis

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

// ProductSummary agrupa por (product type, SKU): ingreso total, unidades vendidas y
// precio promedio.
func ProductSummary(ds *entity.Dataset) []dto.ProductSummaryDTO {
	groups := groupRows(ds.Records, by2(productType, func(r *entity.SKURecord) string { return r.SKU }))
	out := make([]dto.ProductSummaryDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.ProductSummaryDTO{
			ProductType:      g.key[0],
			SKU:              g.key[1],
			RevenueGenerated: sumDecimal(g.rows, func(r *entity.SKURecord) decimal.Decimal { return r.RevenueGenerated }),
			ProductsSold:     sumInt(g.rows, func(r *entity.SKURecord) int { return r.ProductsSold }),
			AvgPrice:         meanDecimal(g.rows, func(r *entity.SKURecord) decimal.Decimal { return r.Price }),
		})
	}
	return out
}

// SalesByProductType unidades vendidas por product type.
func SalesByProductType(ds *entity.Dataset) []dto.CategoryTotalDTO {
	return sumIntBy(ds, productType, func(r *entity.SKURecord) int { return r.ProductsSold })
}

// ProductTypeDistribution número de SKUs por product type, de mayor a menor
// (value_counts). Empates por nombre ascendente.
func ProductTypeDistribution(ds *entity.Dataset) []dto.CategoryCountDTO {
	out := countBy(ds, productType)
	slices.SortStableFunc(out, func(a, b dto.CategoryCountDTO) int {
		if a.Count != b.Count {
			return b.Count - a.Count
		}
		return strings.Compare(a.Category, b.Category)
	})
	return out
}

// PriceRevenue una entrada por fila, en el orden del dataset.
func PriceRevenue(ds *entity.Dataset) []dto.PricePointDTO {
	out := make([]dto.PricePointDTO, 0, len(ds.Records))
	for _, r := range ds.Records {
		out = append(out, dto.PricePointDTO{
			SKU:              r.SKU,
			ProductType:      r.ProductType,
			Price:            r.Price,
			RevenueGenerated: r.RevenueGenerated,
			ProductsSold:     r.ProductsSold,
		})
	}
	return out
}
