// Package source elige el origen del dataset (CSV o PostgreSQL) según la configuración.
package source

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/supplychain-analytics/internal/domain"
	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
	"github.com/jhoicas/supplychain-analytics/internal/domain/repository"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/csvfile"
	"github.com/jhoicas/supplychain-analytics/internal/infrastructure/postgres"
	"github.com/jhoicas/supplychain-analytics/pkg/config"
	"github.com/jhoicas/supplychain-analytics/pkg/logger"
)

// Open construye el DatasetSource configurado. close libera el pool de PostgreSQL
// (no-op para CSV) y nunca es nil.
func Open(ctx context.Context, cfg *config.Config, log *logger.Logger) (src repository.DatasetSource, close func(), err error) {
	close = func() {}
	switch cfg.Dataset.Source {
	case "csv":
		src = csvfile.NewDatasetLoader(csvfile.Options{
			Path:      cfg.Dataset.Path,
			Encoding:  cfg.Dataset.Encoding,
			Delimiter: []rune(cfg.Dataset.Delimiter)[0],
		})
	case "postgres":
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, close, fmt.Errorf("source: conexión a PostgreSQL: %w", err)
		}
		close = pool.Close
		src = postgres.NewDatasetRepository(pool, cfg.Dataset.Table)
	default:
		return nil, close, fmt.Errorf("source: %q: %w", cfg.Dataset.Source, domain.ErrInvalidInput)
	}
	return WithLogging(src, log), close, nil
}

// WithLogging registra cada carga (filas, columnas, duración) o su error.
func WithLogging(src repository.DatasetSource, log *logger.Logger) repository.DatasetSource {
	if log == nil {
		return src
	}
	return &loggedSource{next: src, log: log}
}

type loggedSource struct {
	next repository.DatasetSource
	log  *logger.Logger
}

func (s *loggedSource) Load(ctx context.Context) (*entity.Dataset, error) {
	start := time.Now()
	ds, err := s.next.Load(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("carga del dataset")
		return nil, err
	}
	rows, cols := ds.Shape()
	s.log.Info().
		Str("source", ds.Source).
		Int("rows", rows).
		Int("columns", cols).
		Dur("duration", time.Since(start)).
		Msg("dataset cargado")
	return ds, nil
}
