package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
	"github.com/jhoicas/supplychain-analytics/internal/domain/inventory"
)

func TestTurnoverRatio(t *testing.T) {
	tests := []struct {
		name          string
		sold, stock   int
		want          string
		wantUndefined bool
	}{
		{name: "exacto", sold: 802, stock: 2, want: "401"},
		{name: "fraccion", sold: 1, stock: 4, want: "0.25"},
		{name: "sin ventas", sold: 0, stock: 10, want: "0"},
		{name: "stock cero", sold: 10, stock: 0, wantUndefined: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := inventory.TurnoverRatio(tt.sold, tt.stock)
			if tt.wantUndefined {
				assert.False(t, got.Valid)
				return
			}
			require.True(t, got.Valid)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got.Decimal), "got %s", got.Decimal)
		})
	}
}

func TestTurnoverUnbounded_SoloConVentasYStockCero(t *testing.T) {
	assert.True(t, inventory.TurnoverUnbounded(10, 0))
	assert.False(t, inventory.TurnoverUnbounded(0, 0), "sin ventas ni stock es indeterminada")
	assert.False(t, inventory.TurnoverUnbounded(10, 5))
}

func TestStockAvailabilityDiff(t *testing.T) {
	assert.Equal(t, 3, inventory.StockAvailabilityDiff(58, 55))
	assert.Equal(t, -42, inventory.StockAvailabilityDiff(53, 95))
}

func TestDerive_EsIdempotente(t *testing.T) {
	ds := &entity.Dataset{Records: []entity.SKURecord{
		{SKU: "SKU0", StockLevels: 58, Availability: 55, ProductsSold: 802},
		{SKU: "SKU1", StockLevels: 0, Availability: 10, ProductsSold: 5},
	}}

	inventory.DeriveAll(ds)
	first := append([]entity.SKURecord(nil), ds.Records...)
	inventory.DeriveAll(ds)

	assert.Equal(t, first, ds.Records)
	assert.Equal(t, 3, ds.Records[0].StockAvailabilityDiff)
	assert.Equal(t, -10, ds.Records[1].StockAvailabilityDiff)
	assert.False(t, ds.Records[1].InventoryTurnoverRatio.Valid)
}

func TestDerive_NoTocaColumnasDeEntrada(t *testing.T) {
	r := entity.SKURecord{SKU: "SKU7", StockLevels: 4, Availability: 1, ProductsSold: 2, Price: decimal.NewFromInt(9)}
	want := r
	inventory.Derive(&r)

	r.StockAvailabilityDiff, r.InventoryTurnoverRatio = 0, decimal.NullDecimal{}
	assert.Equal(t, want, r)
}
