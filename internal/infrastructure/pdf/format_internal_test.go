package pdf

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMoney(t *testing.T) {
	assert.Equal(t, "$8,662.00", money(decimal.RequireFromString("8661.996792")))
	assert.Equal(t, "$12.50", money(decimal.RequireFromString("12.5")))
	assert.Equal(t, "-$1,000,000.00", money(decimal.NewFromInt(-1000000)))
}

func TestColSizes_SumanDoce(t *testing.T) {
	for n := 1; n <= 6; n++ {
		total := 0
		for _, s := range colSizes(n) {
			total += s
		}
		assert.Equal(t, 12, total, "n=%d", n)
	}
}
