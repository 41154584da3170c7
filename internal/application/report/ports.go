package report

import (
	"context"
	"time"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
)

// ChartRenderer dibuja un gráfico (implementado en infrastructure/chart).
type ChartRenderer interface {
	Render(spec dto.ChartSpec) (dto.RenderedChart, error)
	Extension() string
}

// ReportPDFGenerator arma el PDF del reporte con los gráficos ya dibujados en PNG
// (implementado en infrastructure/pdf).
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, report *dto.ReportDTO, charts []dto.RenderedChart) ([]byte, error)
}

// BuildObserver recibe la duración de cada construcción del reporte (métricas).
type BuildObserver interface {
	ObserveReportBuild(d time.Duration, err error)
}
