package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/supplychain-analytics/internal/domain"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
	"github.com/jhoicas/supplychain-analytics/internal/domain/repository"
)

var _ repository.DatasetSource = (*DatasetRepo)(nil)

// DatasetRepo lee el dataset desde una tabla con una columna por campo del CSV
// (nombres en snake_case, ver migrations/001_supply_chain_records.sql).
type DatasetRepo struct {
	pool  *pgxpool.Pool
	table string
}

// NewDatasetRepository construye el adaptador de solo lectura.
func NewDatasetRepository(pool *pgxpool.Pool, table string) *DatasetRepo {
	return &DatasetRepo{pool: pool, table: table}
}

// SQLColumn nombre de columna SQL de una columna canónica: "Number of products sold"
// → "number_of_products_sold".
func SQLColumn(col string) string {
	return strings.ReplaceAll(entity.NormalizeColumn(col), " ", "_")
}

// selectQuery arma el SELECT en el orden de entity.AllColumns. Las columnas opcionales
// pueden ser NULL y se leen como cero. El orden por largo y luego SKU reproduce el del
// CSV (SKU0, SKU1, ..., SKU10).
func selectQuery(table string) string {
	optional := make(map[string]bool, len(entity.OptionalColumns))
	for _, c := range entity.OptionalColumns {
		optional[c] = true
	}
	sku := pgx.Identifier{SQLColumn(entity.ColSKU)}.Sanitize()
	cols := make([]string, 0, len(entity.AllColumns))
	for _, c := range entity.AllColumns {
		name := pgx.Identifier{SQLColumn(c)}.Sanitize()
		switch {
		case !optional[c]:
			cols = append(cols, name)
		case c == entity.ColLocation || c == entity.ColRoutes:
			cols = append(cols, "COALESCE("+name+", '')")
		default:
			cols = append(cols, "COALESCE("+name+", 0)")
		}
	}
	return "SELECT " + strings.Join(cols, ", ") +
		" FROM " + pgx.Identifier(strings.Split(table, ".")).Sanitize() +
		" ORDER BY length(" + sku + "), " + sku
}

// Load lee todas las filas de la tabla.
func (r *DatasetRepo) Load(ctx context.Context) (*entity.Dataset, error) {
	rows, err := r.pool.Query(ctx, selectQuery(r.table))
	switch {
	case isUndefinedTable(err):
		return nil, fmt.Errorf("postgres: tabla %s: %w", r.table, domain.ErrNotFound)
	case isUndefinedColumn(err):
		return nil, fmt.Errorf("postgres: %s: %w: %v", r.table, domain.ErrMissingColumn, err)
	case err != nil:
		return nil, fmt.Errorf("postgres: consultar %s: %w", r.table, err)
	}
	defer rows.Close()

	ds := &entity.Dataset{
		Source:  "postgres:" + r.table,
		Columns: append([]string(nil), entity.AllColumns...),
	}
	for rows.Next() {
		var rec entity.SKURecord
		if err := rows.Scan(
			&rec.ProductType, &rec.SKU, &rec.Price, &rec.Availability, &rec.ProductsSold,
			&rec.RevenueGenerated, &rec.CustomerDemographics, &rec.StockLevels, &rec.LeadTimes,
			&rec.OrderQuantities, &rec.ShippingTimes, &rec.ShippingCarrier, &rec.ShippingCosts,
			&rec.SupplierName, &rec.Location, &rec.LeadTime, &rec.ProductionVolumes,
			&rec.ManufacturingLeadTime, &rec.ManufacturingCosts, &rec.InspectionResults,
			&rec.DefectRates, &rec.TransportationMode, &rec.Route, &rec.Costs,
		); err != nil {
			return nil, fmt.Errorf("postgres: leer fila %d: %w", len(ds.Records)+1, err)
		}
		ds.Records = append(ds.Records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres: iterar %s: %w", r.table, err)
	}
	if len(ds.Records) == 0 {
		return nil, fmt.Errorf("postgres: %s: %w", r.table, domain.ErrEmptyDataset)
	}
	return ds, nil
}
