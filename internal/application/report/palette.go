package report

import "slices"

// Colores fijos por product type, compartidos por todos los gráficos que colorean
// por producto.
var productColors = map[string]string{
	"haircare":  "#ADD8E6",
	"skincare":  "#90EE90",
	"cosmetics": "#FFA500",
}

// productOrder orden de las categorías de producto en leyendas y barras.
var productOrder = []string{"haircare", "skincare", "cosmetics"}

// qualitative paleta para categorías sin color fijo.
var qualitative = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// productColor color de un product type; los desconocidos toman la paleta cualitativa
// según su posición i.
func productColor(productType string, i int) string {
	if c, ok := productColors[productType]; ok {
		return c
	}
	return qualitative[i%len(qualitative)]
}

// productColorer devuelve un asignador de colores por product type: cada tipo sin
// color fijo toma el siguiente color de la paleta la primera vez que aparece y lo
// conserva en las barras siguientes.
func productColorer() func(productType string) string {
	index := make(map[string]int)
	return func(productType string) string {
		i, ok := index[productType]
		if !ok {
			i = len(index)
			index[productType] = i
		}
		return productColor(productType, i)
	}
}

func paletteColor(i int) string { return qualitative[i%len(qualitative)] }

// productRank posición de un product type en productOrder; los demás van después.
func productRank(productType string) int {
	if i := slices.Index(productOrder, productType); i >= 0 {
		return i
	}
	return len(productOrder)
}
