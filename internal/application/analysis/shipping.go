package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

// ShippingSummary por transportista: suma de tiempos de envío, costos de envío y
// costos de transporte.
func ShippingSummary(ds *entity.Dataset) []dto.ShippingSummaryDTO {
	groups := groupRows(ds.Records, by1(carrier))
	out := make([]dto.ShippingSummaryDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.ShippingSummaryDTO{
			Carrier:                  g.key[0],
			TotalShippingTimes:       sumInt(g.rows, func(r *entity.SKURecord) int { return r.ShippingTimes }),
			TotalShippingCosts:       sumDecimal(g.rows, func(r *entity.SKURecord) decimal.Decimal { return r.ShippingCosts }),
			TotalTransportationCosts: sumDecimal(g.rows, func(r *entity.SKURecord) decimal.Decimal { return r.Costs }),
		})
	}
	return out
}

// TransportationCostsByMode costo de transporte total por modo.
func TransportationCostsByMode(ds *entity.Dataset) []dto.CategoryTotalDTO {
	return sumDecimalBy(ds, transport, func(r *entity.SKURecord) decimal.Decimal { return r.Costs })
}
