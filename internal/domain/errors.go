package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound       = errors.New("recurso no encontrado")
	ErrMissingColumn  = errors.New("columna requerida ausente")
	ErrInvalidValue   = errors.New("valor inválido en el dataset")
	ErrEmptyDataset   = errors.New("el dataset no contiene filas")
	ErrInvalidInput   = errors.New("entrada inválida")
	ErrUnknownSection = errors.New("sección de reporte desconocida")
)

// ColumnError indica qué columnas faltan en la cabecera del dataset.
type ColumnError struct {
	Columns []string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("%s: %v", ErrMissingColumn.Error(), e.Columns)
}

func (e *ColumnError) Unwrap() error { return ErrMissingColumn }

// ValueError describe una celda que no se pudo convertir al tipo de la columna.
// Line es 1-based y cuenta la cabecera (igual que un editor de texto).
type ValueError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("línea %d, columna %q: valor %q: %v", e.Line, e.Column, e.Value, e.Err)
}

// Unwrap permite errors.Is(err, ErrInvalidValue) y también llegar al error de parseo original.
func (e *ValueError) Unwrap() []error { return []error{ErrInvalidValue, e.Err} }
