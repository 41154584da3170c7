package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/domain"
)

var contentTypes = map[string]string{
	"png": "image/png",
	"svg": "image/svg+xml",
}

// ChartHandler sirve los gráficos ya dibujados.
type ChartHandler struct {
	format string
	charts []dto.RenderedChart
	byName map[string]int
}

// NewChartHandler construye el handler e indexa los gráficos por nombre.
func NewChartHandler(charts []dto.RenderedChart, format string) *ChartHandler {
	byName := make(map[string]int, len(charts))
	for i, ch := range charts {
		byName[ch.Name] = i
	}
	return &ChartHandler{format: format, charts: charts, byName: byName}
}

// List godoc
// @Summary      Gráficos disponibles
// @Tags         charts
// @Produce      json
// @Success      200  {object}  dto.ChartListResponse
// @Router       /api/charts [get]
func (h *ChartHandler) List(c *fiber.Ctx) error {
	resp := dto.ChartListResponse{Format: h.format, Charts: make([]dto.ChartInfo, 0, len(h.charts))}
	for _, ch := range h.charts {
		resp.Charts = append(resp.Charts, dto.ChartInfo{
			Name:    ch.Name,
			Title:   ch.Title,
			Section: ch.Section,
			URL:     "/api/charts/" + ch.Name,
		})
	}
	return c.JSON(resp)
}

// Get godoc
// @Summary      Imagen de un gráfico
// @Tags         charts
// @Produce      image/png
// @Produce      image/svg+xml
// @Param        name  path  string  true  "Nombre del gráfico (ej: sales_by_product_type)"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/charts/{name} [get]
func (h *ChartHandler) Get(c *fiber.Ctx) error {
	name := c.Params("name")
	i, ok := h.byName[name]
	if !ok {
		return writeError(c, fmt.Errorf("gráfico %q: %w", name, domain.ErrNotFound))
	}
	ch := h.charts[i]
	if ct, ok := contentTypes[ch.Extension]; ok {
		c.Set(fiber.HeaderContentType, ct)
	}
	return c.Send(ch.Data)
}
