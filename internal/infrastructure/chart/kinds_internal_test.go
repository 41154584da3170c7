package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStackLayout_TramosAbsolutos(t *testing.T) {
	spans, total := stackLayout([]float64{3, 4, 1})
	assert.Equal(t, [][2]float64{{0, 3}, {3, 7}, {7, 8}}, spans)
	assert.Equal(t, 8.0, total, "la columna mide la suma, no el 100 %")
}

func TestStackLayout_NegativosYNaNNoOcupan(t *testing.T) {
	spans, total := stackLayout([]float64{2, -1, math.NaN(), 5})
	assert.Equal(t, [][2]float64{{0, 2}, {2, 2}, {2, 2}, {2, 7}}, spans)
	assert.Equal(t, 7.0, total)
}
