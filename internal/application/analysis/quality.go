package analysis

import (
	"slices"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

// QualitySummary resultado de inspección y tasa de defectos por fila.
func QualitySummary(ds *entity.Dataset) []dto.QualityRowDTO {
	out := make([]dto.QualityRowDTO, 0, len(ds.Records))
	for _, r := range ds.Records {
		out = append(out, dto.QualityRowDTO{SKU: r.SKU, InspectionResult: r.InspectionResults, DefectRate: r.DefectRates})
	}
	return out
}

// InspectionResultCounts número de SKUs por resultado de inspección.
func InspectionResultCounts(ds *entity.Dataset) []dto.CategoryCountDTO {
	return countBy(ds, inspection)
}

// DefectsByTransportMode tasa de defectos promedio por modo de transporte.
func DefectsByTransportMode(ds *entity.Dataset) []dto.CategoryTotalDTO {
	return meanDecimalBy(ds, transport, defectRate)
}

// DefectsByProductType tasa de defectos promedio por product type.
func DefectsByProductType(ds *entity.Dataset) []dto.CategoryTotalDTO {
	return meanDecimalBy(ds, productType, defectRate)
}

// DefectExtremes ordena los SKUs por tasa de defectos descendente (orden estable) y
// devuelve los n primeros (Top) y los n últimos (Bottom). Con menos de 2n filas las
// listas se solapan, igual que head(n)/tail(n).
func DefectExtremes(ds *entity.Dataset, n int) dto.DefectExtremesDTO {
	sorted := make([]dto.SKUDefectDTO, 0, len(ds.Records))
	for _, r := range ds.Records {
		sorted = append(sorted, dto.SKUDefectDTO{SKU: r.SKU, DefectRate: r.DefectRates})
	}
	slices.SortStableFunc(sorted, func(a, b dto.SKUDefectDTO) int { return b.DefectRate.Cmp(a.DefectRate) })

	if n < 0 {
		n = 0
	}
	if n > len(sorted) {
		n = len(sorted)
	}
	return dto.DefectExtremesDTO{
		Top:    slices.Clone(sorted[:n]),
		Bottom: slices.Clone(sorted[len(sorted)-n:]),
	}
}

func defectRate(r *entity.SKURecord) decimal.Decimal { return r.DefectRates }
