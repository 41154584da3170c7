// Package analysis contiene las consultas de agregación sobre el dataset en memoria.
//
// Cada consulta es una función pura group-by + reducción: recibe el dataset y devuelve
// DTOs. Las claves de grupo salen en orden ascendente (como pandas groupby) salvo que la
// consulta pida otro orden; todos los ordenamientos son estables.
package analysis

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

// groupKey clave compuesta de hasta tres columnas; las posiciones no usadas quedan vacías.
type groupKey [3]string

type group struct {
	key  groupKey
	rows []*entity.SKURecord
}

// groupRows agrupa las filas por key y devuelve los grupos ordenados por clave
// (comparación lexicográfica columna a columna). Dentro de cada grupo las filas
// mantienen el orden del dataset.
func groupRows(records []entity.SKURecord, key func(r *entity.SKURecord) groupKey) []group {
	index := make(map[groupKey]int)
	var groups []group
	for i := range records {
		r := &records[i]
		k := key(r)
		pos, ok := index[k]
		if !ok {
			pos = len(groups)
			index[k] = pos
			groups = append(groups, group{key: k})
		}
		groups[pos].rows = append(groups[pos].rows, r)
	}
	slices.SortFunc(groups, func(a, b group) int { return compareKeys(a.key, b.key) })
	return groups
}

func compareKeys(a, b groupKey) int {
	for i := range a {
		if c := strings.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

func by1(f func(r *entity.SKURecord) string) func(r *entity.SKURecord) groupKey {
	return func(r *entity.SKURecord) groupKey { return groupKey{f(r)} }
}

func by2(f, g func(r *entity.SKURecord) string) func(r *entity.SKURecord) groupKey {
	return func(r *entity.SKURecord) groupKey { return groupKey{f(r), g(r)} }
}

// ── Selectores de columna ─────────────────────────────────────────────────────

func productType(r *entity.SKURecord) string { return r.ProductType }
func demographic(r *entity.SKURecord) string { return r.CustomerDemographics }
func supplier(r *entity.SKURecord) string    { return r.SupplierName }
func carrier(r *entity.SKURecord) string     { return r.ShippingCarrier }
func transport(r *entity.SKURecord) string   { return r.TransportationMode }
func inspection(r *entity.SKURecord) string  { return r.InspectionResults }

// ── Reducciones ───────────────────────────────────────────────────────────────

func sumDecimal(rows []*entity.SKURecord, f func(r *entity.SKURecord) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(f(r))
	}
	return total
}

func meanDecimal(rows []*entity.SKURecord, f func(r *entity.SKURecord) decimal.Decimal) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	return sumDecimal(rows, f).Div(decimal.NewFromInt(int64(len(rows))))
}

func sumInt(rows []*entity.SKURecord, f func(r *entity.SKURecord) int) int {
	total := 0
	for _, r := range rows {
		total += f(r)
	}
	return total
}

func meanInt(rows []*entity.SKURecord, f func(r *entity.SKURecord) int) decimal.Decimal {
	if len(rows) == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(sumInt(rows, f))).Div(decimal.NewFromInt(int64(len(rows))))
}

// ── Consultas de una sola clave ───────────────────────────────────────────────

func sumDecimalBy(ds *entity.Dataset, key func(r *entity.SKURecord) string, value func(r *entity.SKURecord) decimal.Decimal) []dto.CategoryTotalDTO {
	groups := groupRows(ds.Records, by1(key))
	out := make([]dto.CategoryTotalDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CategoryTotalDTO{Category: g.key[0], Value: sumDecimal(g.rows, value)})
	}
	return out
}

func meanDecimalBy(ds *entity.Dataset, key func(r *entity.SKURecord) string, value func(r *entity.SKURecord) decimal.Decimal) []dto.CategoryTotalDTO {
	groups := groupRows(ds.Records, by1(key))
	out := make([]dto.CategoryTotalDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CategoryTotalDTO{Category: g.key[0], Value: meanDecimal(g.rows, value)})
	}
	return out
}

func sumIntBy(ds *entity.Dataset, key func(r *entity.SKURecord) string, value func(r *entity.SKURecord) int) []dto.CategoryTotalDTO {
	groups := groupRows(ds.Records, by1(key))
	out := make([]dto.CategoryTotalDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CategoryTotalDTO{Category: g.key[0], Value: decimal.NewFromInt(int64(sumInt(g.rows, value)))})
	}
	return out
}

func countBy(ds *entity.Dataset, key func(r *entity.SKURecord) string) []dto.CategoryCountDTO {
	groups := groupRows(ds.Records, by1(key))
	out := make([]dto.CategoryCountDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.CategoryCountDTO{Category: g.key[0], Count: len(g.rows)})
	}
	return out
}
