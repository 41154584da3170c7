package analysis

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
	"github.com/jhoicas/supplychain-analytics/internal/domain/inventory"
)

// InventorySummary stock, disponibilidad, diferencia y cantidad pedida por fila.
// Requiere que el dataset tenga las columnas derivadas calculadas.
func InventorySummary(ds *entity.Dataset) []dto.InventoryRowDTO {
	out := make([]dto.InventoryRowDTO, 0, len(ds.Records))
	for _, r := range ds.Records {
		out = append(out, dto.InventoryRowDTO{
			SKU:                   r.SKU,
			StockLevels:           r.StockLevels,
			Availability:          r.Availability,
			StockAvailabilityDiff: r.StockAvailabilityDiff,
			OrderQuantities:       r.OrderQuantities,
		})
	}
	return out
}

// InventoryTurnover rotación por SKU ordenada por product type ascendente y rotación
// descendente. Dentro de cada product type, un SKU con ventas y stock 0 (rotación
// infinita) va primero; uno sin ventas ni stock (indeterminada) va al final.
func InventoryTurnover(ds *entity.Dataset) []dto.TurnoverRowDTO {
	out := make([]dto.TurnoverRowDTO, 0, len(ds.Records))
	for _, r := range ds.Records {
		out = append(out, dto.TurnoverRowDTO{
			SKU:          r.SKU,
			ProductType:  r.ProductType,
			ProductsSold: r.ProductsSold,
			StockLevels:  r.StockLevels,
			Ratio:        r.InventoryTurnoverRatio,
			Unbounded:    inventory.TurnoverUnbounded(r.ProductsSold, r.StockLevels),
		})
	}
	slices.SortStableFunc(out, func(a, b dto.TurnoverRowDTO) int {
		if c := strings.Compare(a.ProductType, b.ProductType); c != 0 {
			return c
		}
		if c := turnoverRank(a) - turnoverRank(b); c != 0 {
			return c
		}
		if a.Ratio.Valid && b.Ratio.Valid {
			return b.Ratio.Decimal.Cmp(a.Ratio.Decimal)
		}
		return 0
	})
	return out
}

// turnoverRank 0 infinita, 1 definida, 2 indeterminada.
func turnoverRank(t dto.TurnoverRowDTO) int {
	switch {
	case t.Unbounded:
		return 0
	case t.Ratio.Valid:
		return 1
	}
	return 2
}

// SKUSeries una serie por product type con el valor de la métrica para cada SKU,
// en el orden del dataset. Las series salen ordenadas por product type.
func SKUSeries(ds *entity.Dataset, metric func(r *entity.SKURecord) decimal.Decimal) []dto.SKUSeriesDTO {
	byType := make(map[string]int)
	var series []dto.SKUSeriesDTO
	for i, r := range ds.Records {
		pos, ok := byType[r.ProductType]
		if !ok {
			pos = len(series)
			byType[r.ProductType] = pos
			series = append(series, dto.SKUSeriesDTO{ProductType: r.ProductType})
		}
		series[pos].Points = append(series[pos].Points, dto.SKUPointDTO{
			Index: i,
			SKU:   r.SKU,
			Value: metric(&ds.Records[i]),
		})
	}
	slices.SortFunc(series, func(a, b dto.SKUSeriesDTO) int { return strings.Compare(a.ProductType, b.ProductType) })
	return series
}

// Métricas por SKU de los gráficos de línea.
var (
	MetricRevenue = func(r *entity.SKURecord) decimal.Decimal { return r.RevenueGenerated }
	MetricStock   = func(r *entity.SKURecord) decimal.Decimal { return decimal.NewFromInt(int64(r.StockLevels)) }
	MetricOrders  = func(r *entity.SKURecord) decimal.Decimal { return decimal.NewFromInt(int64(r.OrderQuantities)) }
)
