package analysis

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

// SupplierSummary por proveedor: lead time promedio, volumen de producción total,
// costo de manufactura promedio y tasa de defectos promedio.
func SupplierSummary(ds *entity.Dataset) []dto.SupplierSummaryDTO {
	groups := groupRows(ds.Records, by1(supplier))
	out := make([]dto.SupplierSummaryDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.SupplierSummaryDTO{
			Supplier:              g.key[0],
			AvgLeadTime:           meanInt(g.rows, func(r *entity.SKURecord) int { return r.LeadTime }),
			TotalProduction:       sumInt(g.rows, func(r *entity.SKURecord) int { return r.ProductionVolumes }),
			AvgManufacturingCosts: meanDecimal(g.rows, func(r *entity.SKURecord) decimal.Decimal { return r.ManufacturingCosts }),
			AvgDefectRate:         meanDecimal(g.rows, func(r *entity.SKURecord) decimal.Decimal { return r.DefectRates }),
		})
	}
	return out
}
