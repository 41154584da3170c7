package postgres

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

func TestSQLColumn(t *testing.T) {
	assert.Equal(t, "number_of_products_sold", SQLColumn(entity.ColProductsSold))
	assert.Equal(t, "sku", SQLColumn(entity.ColSKU))
	assert.Equal(t, "transportation_modes", SQLColumn(entity.ColTransportationModes))
}

func TestSelectQuery(t *testing.T) {
	q := selectQuery("analytics.supply_chain_records")

	assert.True(t, strings.HasPrefix(q, `SELECT "product_type", "sku", "price"`))
	assert.Contains(t, q, `COALESCE("lead_times", 0)`)
	assert.Contains(t, q, `COALESCE("location", '')`)
	assert.Contains(t, q, `COALESCE("routes", '')`)
	assert.Contains(t, q, `FROM "analytics"."supply_chain_records"`)
	assert.True(t, strings.HasSuffix(q, `ORDER BY length("sku"), "sku"`))
	// 23 separadores de columna + la coma interna de cada COALESCE.
	selectList := strings.Split(q, " FROM ")[0]
	assert.Equal(t, len(entity.AllColumns)-1+len(entity.OptionalColumns), strings.Count(selectList, ", "))
}

func TestErroresPostgres(t *testing.T) {
	assert.True(t, isUndefinedTable(&pgconn.PgError{Code: "42P01"}))
	assert.False(t, isUndefinedTable(&pgconn.PgError{Code: "42703"}))
	assert.True(t, isUndefinedColumn(&pgconn.PgError{Code: "42703"}))
	assert.True(t, isUndefinedTable(errors.New(`relation "x" does not exist (SQLSTATE 42P01)`)))
	assert.False(t, isUndefinedTable(nil))
}
