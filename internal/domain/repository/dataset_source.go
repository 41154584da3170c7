package repository

import (
	"context"

	"github.com/jhoicas/supplychain-analytics/internal/domain/entity"
)

// DatasetSource carga el dataset completo en memoria.
// Las implementaciones son read-only y devuelven el dataset ya validado
// (columnas requeridas presentes, valores numéricos parseados), sin columnas derivadas.
type DatasetSource interface {
	Load(ctx context.Context) (*entity.Dataset, error)
}
