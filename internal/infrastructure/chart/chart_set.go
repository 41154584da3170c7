package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/supplychain-analytics/internal/application/dto"
	"github.com/jhoicas/supplychain-analytics/pkg/logger"
)

// ChartSet escribe gráficos ya dibujados en un directorio como <name>.<ext>.
type ChartSet struct {
	dir string
	log *logger.Logger
}

// NewChartSet construye el writer; el directorio se crea al escribir.
func NewChartSet(dir string, log *logger.Logger) *ChartSet {
	if log == nil {
		log = logger.Nop()
	}
	return &ChartSet{dir: dir, log: log}
}

// WriteAll escribe todos los gráficos y devuelve las rutas en el mismo orden.
func (s *ChartSet) WriteAll(charts []dto.RenderedChart) ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("chart: crear %s: %w", s.dir, err)
	}
	paths := make([]string, 0, len(charts))
	for _, c := range charts {
		path := filepath.Join(s.dir, c.Name+"."+c.Extension)
		if err := os.WriteFile(path, c.Data, 0o644); err != nil {
			return paths, fmt.Errorf("chart: escribir %s: %w", path, err)
		}
		s.log.Debug().Str("chart", c.Name).Int("bytes", len(c.Data)).Str("path", path).Msg("gráfico escrito")
		paths = append(paths, path)
	}
	return paths, nil
}
