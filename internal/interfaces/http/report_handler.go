package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/internal/application/report"
	"github.com/jhoicas/supplychain-analytics/internal/domain"
)

// ReportHandler sirve el reporte ya construido.
type ReportHandler struct {
	report *dto.ReportDTO
	pdf    pdfBuilder
}

// NewReportHandler construye el handler. pdf puede ser nil (GET /api/report.pdf → 404).
func NewReportHandler(r *dto.ReportDTO, pdf pdfBuilder) *ReportHandler {
	return &ReportHandler{report: r, pdf: pdf}
}

// Get godoc
// @Summary      Reporte completo
// @Description  Todas las secciones del análisis del dataset de supply chain.
// @Tags         report
// @Produce      json
// @Success      200  {object}  dto.ReportDTO
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/report [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	if h.report == nil {
		return writeError(c, fmt.Errorf("reporte no disponible: %w", domain.ErrNotFound))
	}
	return c.JSON(h.report)
}

// GetSection godoc
// @Summary      Una sección del reporte
// @Tags         report
// @Produce      json
// @Param        section  path  string  true  "overview | products | demographics | inventory | suppliers | shipping | quality"
// @Success      200  {object}  object
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/report/{section} [get]
func (h *ReportHandler) GetSection(c *fiber.Ctx) error {
	if h.report == nil {
		return writeError(c, fmt.Errorf("reporte no disponible: %w", domain.ErrNotFound))
	}
	section, err := report.Section(h.report, c.Params("section"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(section)
}

// GetPDF godoc
// @Summary      Reporte en PDF
// @Description  Arma el PDF con las tablas de cada sección y los gráficos en PNG.
// @Tags         report
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/report.pdf [get]
func (h *ReportHandler) GetPDF(c *fiber.Ctx) error {
	if h.report == nil || h.pdf == nil {
		return writeError(c, fmt.Errorf("PDF no disponible: %w", domain.ErrNotFound))
	}
	data, err := h.pdf.BuildPDF(c.UserContext(), h.report)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="supply-chain-report.pdf"`)
	return c.Send(data)
}
