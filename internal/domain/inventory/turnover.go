package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

// TurnoverRatio calcula la rotación de inventario (servicio de dominio).
// Rotación = UnidadesVendidas / NivelDeStock
// Con stock 0 la rotación no está definida y se devuelve un NullDecimal inválido.
func TurnoverRatio(sold, stock int) decimal.NullDecimal {
	if stock == 0 {
		return decimal.NullDecimal{}
	}
	ratio := decimal.NewFromInt(int64(sold)).Div(decimal.NewFromInt(int64(stock)))
	return decimal.NewNullDecimal(ratio)
}

// TurnoverUnbounded indica que la rotación crece sin límite: hay ventas pero el stock
// es 0. Con ventas y stock en 0 la rotación es indeterminada y devuelve false.
func TurnoverUnbounded(sold, stock int) bool {
	return stock == 0 && sold > 0
}

// StockAvailabilityDiff diferencia entre stock y disponibilidad publicada.
func StockAvailabilityDiff(stock, availability int) int {
	return stock - availability
}

// Derive completa las columnas derivadas de un registro. Es una función pura de los
// campos de entrada: aplicarla dos veces deja el registro igual.
func Derive(r *entity.SKURecord) {
	r.StockAvailabilityDiff = StockAvailabilityDiff(r.StockLevels, r.Availability)
	r.InventoryTurnoverRatio = TurnoverRatio(r.ProductsSold, r.StockLevels)
}

// DeriveAll aplica Derive a todas las filas del dataset.
func DeriveAll(ds *entity.Dataset) {
	for i := range ds.Records {
		Derive(&ds.Records[i])
	}
}
